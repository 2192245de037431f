package pipeline

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"

	"github.com/skelly-dev/skelly/internal/inputs"
	"github.com/skelly-dev/skelly/internal/render"
	"github.com/skelly-dev/skelly/internal/walker"
)

// FileReader reads entries from fsys and renders their content and relative
// path against set. Binary files are passed through unrendered; their
// paths are still rendered.
func FileReader(fsys afero.Fs, set *inputs.Set) Reader {
	return func(entry walker.Entry) (Rendered, error) {
		data, err := walker.Read(fsys, entry)
		if err != nil {
			return Rendered{}, &Error{Op: "read template", Path: entry.SourcePath, Err: err}
		}

		content := data
		if IsText(data) {
			out, err := render.Render(string(data), set)
			if err != nil {
				return Rendered{}, &Error{Op: "render file", Path: entry.SourcePath, Err: err}
			}
			content = []byte(out)
		}

		path, err := RenderPath(entry.RelativePath, set)
		if err != nil {
			return Rendered{}, &Error{Op: "render path", Path: entry.SourcePath, Err: err}
		}

		return Rendered{Source: entry, Path: path, Content: content}, nil
	}
}

// RenderPath renders a relative path and checks that the result still
// names a file inside the output root.
func RenderPath(rel string, set *inputs.Set) (string, error) {
	out, err := render.Render(filepath.ToSlash(rel), set)
	if err != nil {
		return "", err
	}
	path := filepath.Clean(filepath.FromSlash(out))
	if out == "" || !filepath.IsLocal(path) {
		return "", fmt.Errorf("rendered path %q is not inside the output directory", out)
	}
	return path, nil
}

// IsText reports whether data looks like text and should be rendered.
func IsText(data []byte) bool {
	for m := mimetype.Detect(data); m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

// RenderText renders everything read from r against set and writes the
// result to w.
func RenderText(r io.Reader, w io.Writer, set *inputs.Set) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return &Error{Op: "read standard input", Err: err}
	}
	out, err := render.Render(string(data), set)
	if err != nil {
		return &Error{Op: "render template", Err: err}
	}
	if _, err := io.WriteString(w, out); err != nil {
		return &Error{Op: "write output", Err: err}
	}
	return nil
}
