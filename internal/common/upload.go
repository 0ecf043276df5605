package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/clubhub/pkg/storage"
)

// FormFiles opens the named multipart files that are present. Non-multipart
// requests yield no files. The returned func closes everything opened.
func FormFiles(c *gin.Context, fields ...string) (map[string]*storage.File, func(), error) {
	files := make(map[string]*storage.File)
	var closers []func() error
	closeAll := func() {
		for _, fn := range closers {
			_ = fn()
		}
	}

	if c.ContentType() != gin.MIMEMultipartPOSTForm {
		return files, closeAll, nil
	}
	for _, field := range fields {
		fh, err := c.FormFile(field)
		if errors.Is(err, http.ErrMissingFile) {
			continue
		}
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		closers = append(closers, f.Close)
		files[field] = &storage.File{Name: fh.Filename, Body: f}
	}
	return files, closeAll, nil
}
