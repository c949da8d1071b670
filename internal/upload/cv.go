// Package upload stores CV files uploaded by students under the public
// uploads directory and hands back the web path persisted on the profile.
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"parttimejobs/internal/apperr"
	"parttimejobs/pkg/config"
)

// cvSubdir is the web-visible directory CV paths are served from.
const cvSubdir = "uploads/cvs"

var allowedExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

// CVStore writes CV files below a filesystem root. Stored names are
// <studentID>_<uuid><ext> so concurrent uploads never collide.
type CVStore struct {
	root    string
	maxSize int64
}

func NewCVStore(cfg *config.UploadConfig) *CVStore {
	return &CVStore{root: cfg.Dir, maxSize: cfg.MaxSizeBytes}
}

// Save validates and persists an uploaded CV, returning the public path to
// store on the student profile (e.g. /uploads/cvs/7_a1b2….pdf).
func (s *CVStore) Save(studentID uint, fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", apperr.Validation("Only PDF, DOC and DOCX files are allowed")
	}
	if fh.Size > s.maxSize {
		return "", apperr.Validation(fmt.Sprintf("File size exceeds the %dMB limit", s.maxSize/(1024*1024)))
	}

	src, err := fh.Open()
	if err != nil {
		return "", apperr.Internal("opening uploaded file", err)
	}
	defer src.Close()

	dir := filepath.Join(s.root, cvSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", apperr.Internal("creating upload directory", err)
	}

	name := fmt.Sprintf("%d_%s%s", studentID, uuid.New().String(), ext)
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", apperr.Internal("creating file", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", apperr.Internal("writing file", err)
	}

	return "/" + cvSubdir + "/" + name, nil
}

// Remove deletes a previously stored CV by its public path. A missing file
// is not an error; the row may point at a file cleaned up out of band.
func (s *CVStore) Remove(publicPath string) error {
	trimmed := strings.TrimPrefix(publicPath, "/")
	if !strings.HasPrefix(trimmed, cvSubdir+"/") {
		return nil
	}
	name := filepath.Base(trimmed)
	err := os.Remove(filepath.Join(s.root, cvSubdir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
