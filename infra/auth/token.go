package auth

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/CrestNiraj12/schoolreview/domain"
)

// TokenProvider supplies the opaque API token for authenticated calls.
type TokenProvider interface {
	AccessToken() (string, error)
}

// FileTokenProvider reads a token from a file on disk.
// A missing file means the viewer is anonymous.
type FileTokenProvider struct {
	path string
}

// NewFileTokenProvider creates a TokenProvider that reads from the given file path.
func NewFileTokenProvider(path string) *FileTokenProvider {
	return &FileTokenProvider{path: path}
}

// AccessToken reads and returns the token, trimming whitespace.
func (f *FileTokenProvider) AccessToken() (string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("no token at %s: %w", f.path, domain.ErrUnauthorized)
	}
	if err != nil {
		return "", fmt.Errorf("reading token from %s: %w", f.path, err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("token file %s is empty: %w", f.path, domain.ErrUnauthorized)
	}

	return token, nil
}

// Anonymous never has a token.
type Anonymous struct{}

func (Anonymous) AccessToken() (string, error) { return "", domain.ErrUnauthorized }
