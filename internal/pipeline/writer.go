package pipeline

import (
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/skelly-dev/skelly/internal/platform"
)

// FileWriter writes rendered files below outputRoot on fsys, creating parent
// directories as needed and copying the source file's permission bits.
func FileWriter(fsys afero.Fs, outputRoot string) Writer {
	return func(r Rendered) error {
		target := filepath.Join(outputRoot, r.Path)
		dir := filepath.Dir(target)
		mode := r.Source.Mode
		if !r.Source.HasMode {
			mode = platform.DefaultFileMode
		}

		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return &Error{Op: "create directory", Path: dir, Err: err}
		}
		if err := afero.WriteFile(fsys, target, r.Content, mode); err != nil {
			return &Error{Op: "write file", Path: target, Err: err}
		}
		// WriteFile leaves the mode of an existing file untouched.
		if err := platform.Chmod(fsys, target, mode); err != nil {
			return &Error{Op: "set permissions on", Path: target, Err: err}
		}
		return nil
	}
}

// StreamWriter concatenates rendered contents onto w.
func StreamWriter(w io.Writer) Writer {
	return func(r Rendered) error {
		if _, err := w.Write(r.Content); err != nil {
			return &Error{Op: "write output", Err: err}
		}
		return nil
	}
}
