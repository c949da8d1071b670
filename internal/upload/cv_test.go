package upload

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parttimejobs/internal/apperr"
	"parttimejobs/pkg/config"
)

func newTestStore(t *testing.T, maxSize int64) (*CVStore, string) {
	t.Helper()
	root := t.TempDir()
	return NewCVStore(&config.UploadConfig{Dir: root, MaxSizeBytes: maxSize}), root
}

// fileHeader builds a real multipart.FileHeader the way echo would hand it
// to the handler.
func fileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func TestCVStoreSave(t *testing.T) {
	store, root := newTestStore(t, 1<<20)

	path, err := store.Save(7, fileHeader(t, "resume.PDF", "%PDF-1.4 fake"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/uploads/cvs/7_"), path)
	assert.True(t, strings.HasSuffix(path, ".pdf"), path)

	onDisk := filepath.Join(root, strings.TrimPrefix(path, "/"))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(data))
}

func TestCVStoreSave_RejectsExtension(t *testing.T) {
	store, _ := newTestStore(t, 1<<20)

	_, err := store.Save(7, fileHeader(t, "malware.exe", "nope"))
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeValidation))
	assert.Equal(t, "Only PDF, DOC and DOCX files are allowed", apperr.MessageOf(err))
}

func TestCVStoreSave_RejectsOversize(t *testing.T) {
	store, _ := newTestStore(t, 10)

	_, err := store.Save(7, fileHeader(t, "resume.pdf", strings.Repeat("x", 100)))
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeValidation))
}

func TestCVStoreSave_UniqueNames(t *testing.T) {
	store, _ := newTestStore(t, 1<<20)

	first, err := store.Save(7, fileHeader(t, "resume.pdf", "one"))
	require.NoError(t, err)
	second, err := store.Save(7, fileHeader(t, "resume.pdf", "two"))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestCVStoreRemove(t *testing.T) {
	store, root := newTestStore(t, 1<<20)

	path, err := store.Save(7, fileHeader(t, "resume.pdf", "bye"))
	require.NoError(t, err)
	require.NoError(t, store.Remove(path))

	_, err = os.Stat(filepath.Join(root, strings.TrimPrefix(path, "/")))
	assert.True(t, os.IsNotExist(err))

	// Removing again is not an error.
	require.NoError(t, store.Remove(path))
}

func TestCVStoreRemove_IgnoresForeignPaths(t *testing.T) {
	store, _ := newTestStore(t, 1<<20)
	require.NoError(t, store.Remove("/etc/passwd"))
	require.NoError(t, store.Remove(""))
}
