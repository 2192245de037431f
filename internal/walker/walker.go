package walker

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/skelly-dev/skelly/internal/platform"
)

// Entry is one template file found below the walk root.
type Entry struct {
	SourcePath   string      // path on the walked filesystem
	RelativePath string      // SourcePath with the root prefix removed
	Mode         os.FileMode // permission bits, platform.DefaultFileMode if unknown
	HasMode      bool        // false when Mode is the fallback
}

type options struct {
	exclude []string
}

// Option configures Walk.
type Option func(*options)

// WithExclude skips files and directories whose slash-separated relative
// path matches any of the doublestar patterns.
func WithExclude(patterns ...string) Option {
	return func(o *options) {
		o.exclude = append(o.exclude, patterns...)
	}
}

var errStop = errors.New("walk stopped")

// Walk yields every non-directory file below root in lexical order. A
// symlink is yielded with its target's mode; a symlink to a directory is
// skipped. A traversal error is yielded once and ends the sequence.
func Walk(fsys afero.Fs, root string, opts ...Option) iter.Seq2[Entry, error] {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	return func(yield func(Entry, error) bool) {
		err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if path == root {
				return nil
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return fmt.Errorf("relativizing %s to %s: %w", path, root, err)
			}

			excluded, err := o.excluded(filepath.ToSlash(rel))
			if err != nil {
				return err
			}
			if info.IsDir() {
				if excluded {
					return filepath.SkipDir
				}
				return nil
			}
			if excluded {
				return nil
			}

			// Links are judged by their target. Linked directories are not
			// followed.
			if info.Mode()&os.ModeSymlink != 0 {
				target, err := fsys.Stat(path)
				if err != nil {
					return fmt.Errorf("resolving link %s: %w", path, err)
				}
				if target.IsDir() {
					return nil
				}
				info = target
			}

			mode, ok := platform.SourceMode(info)
			entry := Entry{
				SourcePath:   path,
				RelativePath: rel,
				Mode:         mode,
				HasMode:      ok,
			}
			if !yield(entry, nil) {
				return errStop
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStop) {
			yield(Entry{}, fmt.Errorf("walking %s: %w", root, err))
		}
	}
}

func (o *options) excluded(rel string) (bool, error) {
	for _, pattern := range o.exclude {
		ok, err := doublestar.Match(pattern, rel)
		if err != nil {
			return false, fmt.Errorf("exclude pattern %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Read returns the raw content of entry. Errors are returned unwrapped;
// callers name the entry.
func Read(fsys afero.Fs, entry Entry) ([]byte, error) {
	return afero.ReadFile(fsys, entry.SourcePath)
}
