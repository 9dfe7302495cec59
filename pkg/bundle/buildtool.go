package bundle

// RepositoryKind names a package repository a build tool can resolve from.
type RepositoryKind string

const (
	RepoJCenter      RepositoryKind = "jcenter"
	RepoMavenCentral RepositoryKind = "mavenCentral"
	RepoMavenLocal   RepositoryKind = "mavenLocal"
	// RepoLocalLib is the project's own libs/ directory.
	RepoLocalLib RepositoryKind = "localLib"
)

// StandardRepositories are registered, in this order, before any bundle
// contributes dependencies.
var StandardRepositories = []RepositoryKind{RepoJCenter, RepoMavenCentral, RepoMavenLocal}

// DefaultConfiguration is the build configuration dependencies are added to
// when a bundle does not name one.
const DefaultConfiguration = "compile"

// Dependency is one build-tool dependency declaration. Either the Maven
// coordinates or File is set.
type Dependency struct {
	Configuration string
	Group         string
	Name          string
	Version       string
	// File is a jar path relative to the local library repository.
	File string
}

// Coordinate returns "group:name:version", or the file for local jars.
func (d Dependency) Coordinate() string {
	if d.File != "" {
		return d.File
	}
	if d.Version == "" {
		return d.Group + ":" + d.Name
	}
	return d.Group + ":" + d.Name + ":" + d.Version
}

// BuildTool is the narrow surface of the external build tool that bundles
// write to during pre-compile.
type BuildTool interface {
	AddRepository(kind RepositoryKind)
	AddDependency(dep Dependency)
}
