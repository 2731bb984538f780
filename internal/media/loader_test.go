package media

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/cutcoach/internal/domain"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestStat_ReportsSize(t *testing.T) {
	path := writeFile(t, "ref.mp4", make([]byte, 1234))

	ref, err := Stat("  " + path + " ")
	require.NoError(t, err)
	assert.Equal(t, domain.FileRef{Path: path, Size: 1234}, ref)
}

func TestStat_Directory(t *testing.T) {
	_, err := Stat(t.TempDir())
	assert.ErrorIs(t, err, ErrNotRegular)
}

func TestStat_Missing(t *testing.T) {
	_, err := Stat(filepath.Join(t.TempDir(), "nope.mp4"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/editor")
	assert.Equal(t, "/home/editor/clips/a.mp4", ExpandHome("~/clips/a.mp4"))
	assert.Equal(t, "/home/editor", ExpandHome("~"))
	assert.Equal(t, "/tmp/~x", ExpandHome("/tmp/~x"))
	assert.Equal(t, "~other/x", ExpandHome("~other/x"))
}

func TestLoad_ReadsAndTypes(t *testing.T) {
	path := writeFile(t, "Homework.MOV", []byte("moov"))
	ref, err := Stat(path)
	require.NoError(t, err)

	m, err := NewLoader().Load(ref)
	require.NoError(t, err)
	assert.Equal(t, "Homework.MOV", m.Name)
	assert.Equal(t, "video/quicktime", m.MIMEType)
	assert.Equal(t, []byte("moov"), m.Data)
	assert.Equal(t, int64(4), m.Size())
}

func TestLoad_SizeChanged(t *testing.T) {
	path := writeFile(t, "a.mp4", []byte("abc"))
	_, err := NewLoader().Load(domain.FileRef{Path: path, Size: 10})
	assert.ErrorIs(t, err, ErrChanged)
}

func TestDetectType(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"clip.mp4", nil, "video/mp4"},
		{"clip.webm", nil, "video/webm"},
		{"still.png", nil, "image/png"},
		{"noext", png, "image/png"},
		{"notes", []byte("plain words"), "text/plain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectType(tt.name, tt.data))
		})
	}
}
