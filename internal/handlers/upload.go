package handlers

import (
	"fmt"
	"net/http"

	"github.com/darkred-portfolio/backend/internal/storage"
	"github.com/darkred-portfolio/backend/pkg/response"
	"github.com/gin-gonic/gin"
)

// uploadFormField is the multipart field carrying the file.
const uploadFormField = "file"

// Uploads stores multipart files through the configured backend.
type Uploads struct {
	uploader storage.Uploader
	maxBytes int64
}

func NewUploads(uploader storage.Uploader, maxBytes int64) *Uploads {
	return &Uploads{uploader: uploader, maxBytes: maxBytes}
}

// save reads the "file" field, validates it for kind and returns its public
// URL. On failure the response has already been written.
func (u *Uploads) save(c *gin.Context, kind storage.Kind) (string, bool) {
	if u == nil || u.uploader == nil {
		response.ServerError(c, "uploads are not configured")
		return "", false
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, u.maxBytes+1<<20)
	header, err := c.FormFile(uploadFormField)
	if err != nil {
		response.BadRequest(c, "file is required")
		return "", false
	}
	if header.Size > u.maxBytes {
		response.BadRequest(c, fmt.Sprintf("file exceeds the %d MB limit", u.maxBytes>>20))
		return "", false
	}

	objectName, err := storage.ObjectName(kind, header.Filename)
	if err != nil {
		handleServiceError(c, err, "")
		return "", false
	}

	f, err := header.Open()
	if err != nil {
		response.Error(c, err)
		return "", false
	}
	defer f.Close()

	url, err := u.uploader.Upload(c.Request.Context(), objectName, header.Header.Get("Content-Type"), f)
	if err != nil {
		response.Error(c, err)
		return "", false
	}
	return url, true
}
