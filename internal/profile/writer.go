package profile

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"

	"github.com/sells-group/brandkit-cli/internal/model"
)

// Writer persists rendered profile artifacts, one YAML file per slug.
// Writes are atomic (temp file then rename) so the deploy automation
// never observes a partially written artifact.
type Writer struct {
	dir string
}

// NewWriter creates a Writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Path returns the artifact location for a slug.
func (w *Writer) Path(slug string) string {
	return filepath.Join(w.dir, slug+".yaml")
}

// Exists reports whether an artifact already exists for the slug.
func (w *Writer) Exists(slug string) bool {
	_, err := os.Stat(w.Path(slug))
	return err == nil
}

// Write renders the profile and writes it atomically, returning the
// artifact path.
func (w *Writer) Write(p *model.Profile) (string, error) {
	data, err := Render(p)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", eris.Wrap(err, "profile: create output dir")
	}

	tmp, err := os.CreateTemp(w.dir, "."+p.Slug+"-*.yaml")
	if err != nil {
		return "", eris.Wrap(err, "profile: create temp file")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", eris.Wrap(err, "profile: write temp file")
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return "", eris.Wrap(err, "profile: chmod temp file")
	}
	if err := tmp.Close(); err != nil {
		return "", eris.Wrap(err, "profile: close temp file")
	}

	target := w.Path(p.Slug)
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", eris.Wrap(err, "profile: rename artifact")
	}
	return target, nil
}
