// Package gradle collects bundle build dependencies into a Gradle script.
//
// [Script] implements [bundle.BuildTool]. Its content is written into a
// managed block of the project's build.gradle, delimited by marker comments;
// everything outside the block is left untouched:
//
//	// prebuild:begin
//	repositories {
//	    jcenter()
//	    flatDir { dirs 'libs' }
//	}
//
//	dependencies {
//	    compile 'org.develnext.jphp:jphp-runtime:1.3.1'
//	    compile files('libs/sqlite-jdbc-3.21.0.jar')
//	}
//	// prebuild:end
package gradle

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/matzehuels/prebuild/pkg/bundle"
	"github.com/matzehuels/prebuild/pkg/errors"
)

const (
	// DefaultFile is the build script name.
	DefaultFile = "build.gradle"

	// LocalLibDir is the project directory backing [bundle.RepoLocalLib].
	LocalLibDir = "libs"

	BeginMarker = "// prebuild:begin"
	EndMarker   = "// prebuild:end"
)

// Script accumulates repositories and dependencies in insertion order,
// ignoring duplicates.
type Script struct {
	repos []bundle.RepositoryKind
	deps  []bundle.Dependency
	seen  map[string]bool
}

// New returns an empty script.
func New() *Script {
	return &Script{seen: make(map[string]bool)}
}

// AddRepository adds kind once.
func (s *Script) AddRepository(kind bundle.RepositoryKind) {
	if key := "repo:" + string(kind); !s.seen[key] {
		s.seen[key] = true
		s.repos = append(s.repos, kind)
	}
}

// AddDependency adds dep once per configuration and coordinate.
func (s *Script) AddDependency(dep bundle.Dependency) {
	if dep.Configuration == "" {
		dep.Configuration = bundle.DefaultConfiguration
	}
	if key := "dep:" + dep.Configuration + ":" + dep.Coordinate(); !s.seen[key] {
		s.seen[key] = true
		s.deps = append(s.deps, dep)
	}
}

// Repositories returns the added repositories in order.
func (s *Script) Repositories() []bundle.RepositoryKind {
	return append([]bundle.RepositoryKind(nil), s.repos...)
}

// Dependencies returns the added dependencies in order.
func (s *Script) Dependencies() []bundle.Dependency {
	return append([]bundle.Dependency(nil), s.deps...)
}

// Render returns the managed block, markers included.
func (s *Script) Render() string {
	var buf bytes.Buffer
	buf.WriteString(BeginMarker + "\n")

	buf.WriteString("repositories {\n")
	for _, r := range s.repos {
		fmt.Fprintf(&buf, "    %s\n", repository(r))
	}
	buf.WriteString("}\n\n")

	buf.WriteString("dependencies {\n")
	for _, d := range s.deps {
		if d.File != "" {
			fmt.Fprintf(&buf, "    %s files('%s/%s')\n", d.Configuration, LocalLibDir, d.File)
			continue
		}
		fmt.Fprintf(&buf, "    %s '%s'\n", d.Configuration, d.Coordinate())
	}
	buf.WriteString("}\n")

	buf.WriteString(EndMarker + "\n")
	return buf.String()
}

func repository(kind bundle.RepositoryKind) string {
	if kind == bundle.RepoLocalLib {
		return fmt.Sprintf("flatDir { dirs '%s' }", LocalLibDir)
	}
	return string(kind) + "()"
}

// Apply replaces the managed block of script, appending one when absent.
func (s *Script) Apply(script []byte) []byte {
	text := string(script)
	block := s.Render()

	begin := strings.Index(text, BeginMarker)
	if begin >= 0 {
		if rel := strings.Index(text[begin:], EndMarker); rel >= 0 {
			end := begin + rel + len(EndMarker)
			if end < len(text) && text[end] == '\n' {
				end++
			}
			return []byte(text[:begin] + block + text[end:])
		}
	}

	switch {
	case text == "":
	case strings.HasSuffix(text, "\n\n"):
	case strings.HasSuffix(text, "\n"):
		text += "\n"
	default:
		text += "\n\n"
	}
	return []byte(text + block)
}

// Save writes the managed block into the script at path.
func (s *Script) Save(path string) error {
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeFileIO, err, "read %s", path)
	}
	out := s.Apply(data)
	if bytes.Equal(out, data) {
		return nil
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeFileIO, err, "write %s", path)
	}
	return nil
}

var _ bundle.BuildTool = (*Script)(nil)
