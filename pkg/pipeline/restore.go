package pipeline

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/prebuild/pkg/errors"
	"github.com/matzehuels/prebuild/pkg/project"
)

// SourceExt marks the pristine copy of a generated source file.
const SourceExt = ".source"

// RestoreSources overwrites every file below the project source directory
// that has a "<name>.source" sibling with that sibling's content. It returns
// the restored project-relative paths. A missing source directory restores
// nothing.
func RestoreSources(p *project.Project) ([]string, error) {
	root := p.File(project.SourceDir)
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var restored []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrap(errors.ErrCodeFileIO, err, "scan %s", path)
		}
		if !d.Type().IsRegular() || d.Name() == SourceExt || !strings.HasSuffix(d.Name(), SourceExt) {
			return nil
		}
		target := strings.TrimSuffix(path, SourceExt)

		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrap(errors.ErrCodeFileIO, err, "read %s", path)
		}
		if err := os.WriteFile(target, data, 0644); err != nil {
			return errors.Wrap(errors.ErrCodeFileIO, err, "restore %s", target)
		}
		if rel, ok := p.Relative(target); ok {
			restored = append(restored, rel)
		}
		return nil
	})
	return restored, err
}
