package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

var ErrNoFile = errors.New("no file attached")

// Receiver stores uploaded files under a fixed root directory. Stored names
// follow the pattern {field}-{unixMillis}-{originalName} so two uploads of the
// same file do not collide.
type Receiver struct {
	root string
}

func NewReceiver(root string) (*Receiver, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", root, err)
	}
	return &Receiver{root: root}, nil
}

func (rc *Receiver) Root() string {
	return rc.root
}

// SaveFromRequest extracts the named multipart field from the request and
// persists it, returning the stored path. A request without the field fails
// with ErrNoFile.
func (rc *Receiver) SaveFromRequest(r *http.Request, field string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", fmt.Errorf("%w: field %q", ErrNoFile, field)
		}
		return "", fmt.Errorf("failed to read multipart field %q: %w", field, err)
	}
	defer file.Close()

	return rc.Save(field, header.Filename, file)
}

// Save streams src to disk and returns the stored path.
func (rc *Receiver) Save(field, originalName string, src multipart.File) (string, error) {
	name := fmt.Sprintf("%s-%d-%s", field, time.Now().UnixMilli(), filepath.Base(originalName))
	path := filepath.Join(rc.root, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return path, nil
}
