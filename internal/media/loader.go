// Package media turns user-chosen files into inline model payloads.
package media

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/cutcoach/internal/domain"
)

var (
	// ErrNotRegular indicates the path is a directory or device.
	ErrNotRegular = errors.New("not a regular file")

	// ErrChanged indicates the file size differs from when it was chosen.
	ErrChanged = errors.New("file changed since it was selected")
)

// Video containers the model accepts, keyed by lower-case extension.
// Go's built-in table lacks most of these.
var videoTypes = map[string]string{
	".mp4":  "video/mp4",
	".m4v":  "video/x-m4v",
	".mov":  "video/quicktime",
	".webm": "video/webm",
	".mkv":  "video/x-matroska",
	".avi":  "video/x-msvideo",
	".mpeg": "video/mpeg",
	".mpg":  "video/mpeg",
	".flv":  "video/x-flv",
	".3gp":  "video/3gpp",
	".wmv":  "video/x-ms-wmv",
}

// Stat resolves path (expanding a leading ~) and returns a FileRef with the
// size taken from the filesystem. No file content is read.
func Stat(path string) (domain.FileRef, error) {
	path = ExpandHome(strings.TrimSpace(path))
	info, err := os.Stat(path)
	if err != nil {
		return domain.FileRef{}, err
	}
	if !info.Mode().IsRegular() {
		return domain.FileRef{}, fmt.Errorf("%s: %w", path, ErrNotRegular)
	}
	return domain.FileRef{Path: path, Size: info.Size()}, nil
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Loader reads files from the local filesystem.
type Loader struct{}

// NewLoader returns a filesystem Loader.
func NewLoader() Loader { return Loader{} }

// Load reads ref into memory and detects its MIME type.
func (Loader) Load(ref domain.FileRef) (domain.Media, error) {
	data, err := os.ReadFile(ref.Path)
	if err != nil {
		return domain.Media{}, err
	}
	if int64(len(data)) != ref.Size {
		return domain.Media{}, fmt.Errorf("%s: %w", ref.Path, ErrChanged)
	}
	return domain.Media{
		Name:     filepath.Base(ref.Path),
		MIMEType: DetectType(ref.Path, data),
		Data:     data,
	}, nil
}

// DetectType picks a MIME type from the extension, falling back to content
// sniffing. Parameters such as charset are dropped.
func DetectType(name string, data []byte) string {
	ext := strings.ToLower(filepath.Ext(name))
	if t, ok := videoTypes[ext]; ok {
		return t
	}
	t := mime.TypeByExtension(ext)
	if t == "" {
		t = http.DetectContentType(data)
	}
	if base, _, err := mime.ParseMediaType(t); err == nil {
		return base
	}
	return t
}
