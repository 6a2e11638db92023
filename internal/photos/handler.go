package photos

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"cvbuilder/internal/shared/server/respond"
)

const maxPhotoBytes = 10 << 20 // 10MB

// Handler wires HTTP handlers to the photo store.
type Handler struct {
	Store *Store
}

// NewHandler constructs a Handler.
func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

// RegisterRoutes attaches photo routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/photo", h.upload)
	rg.GET("/photos/:name", h.serve)
}

type uploadResponse struct {
	OK   bool   `json:"ok"`
	Path string `json:"path"`
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPhotoBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "unable to read file", nil)
		return
	}
	defer file.Close()

	name, err := h.Store.Save(c.Request.Context(), file)
	if err != nil {
		if errors.Is(err, ErrNotImage) {
			respond.Error(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "failed to store photo", err)
		return
	}

	// The returned path drops straight into header.photo.
	respond.OK(c, uploadResponse{OK: true, Path: path.Join("photos", name)})
}

func (h *Handler) serve(c *gin.Context) {
	name := c.Param("name")

	reader, err := h.Store.Open(c.Request.Context(), name)
	if err != nil {
		respond.Error(c, http.StatusNotFound, "photo not found", nil)
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}
