// Package docfile reads linked planning documents from disk.
package docfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jbw/roadmap/internal/domain"
)

// Reader implements domain.DocReader against the filesystem. Link URLs
// are resolved relative to the workspace root's parent directory, the
// convention the roadmap data uses for `../docs/...` style references.
type Reader struct {
	baseDir string
}

// New creates a Reader resolving against the parent of workspaceRoot.
func New(workspaceRoot string) *Reader {
	return &Reader{baseDir: filepath.Dir(filepath.Clean(workspaceRoot))}
}

// NewWithBase creates a Reader with an explicit base directory.
func NewWithBase(baseDir string) *Reader {
	return &Reader{baseDir: baseDir}
}

// Read returns the contents of the document at url.
func (r *Reader) Read(url string) (string, error) {
	path := r.resolve(url)
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", domain.ErrDocNotFound, path)
		}
		return "", fmt.Errorf("read document: %w", err)
	}
	return string(content), nil
}

// resolve maps a link URL to an absolute path under the base directory.
func (r *Reader) resolve(url string) string {
	if filepath.IsAbs(url) {
		return filepath.Clean(url)
	}
	rel := strings.TrimPrefix(url, "../")
	return filepath.Join(r.baseDir, rel)
}

// Ensure Reader implements DocReader.
var _ domain.DocReader = (*Reader)(nil)
