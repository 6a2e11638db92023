package documents

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cvbuilder/internal/shared/server/respond"
)

// maxDocumentBytes caps inbound document payloads. CV documents are a
// few kilobytes; anything near this limit is not a CV.
const maxDocumentBytes = 1 << 20

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/data", h.data)
	rg.POST("/save", h.save)
	rg.POST("/validate", h.validate)
}

func (h *Handler) data(c *gin.Context) {
	text, err := h.Svc.Load(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "failed to load document", err)
		return
	}
	respond.OK(c, documentResponse{YAML: text})
}

func (h *Handler) save(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	if err := h.Svc.Save(c.Request.Context(), req.YAML); err != nil {
		var invalid *InvalidDocumentError
		if errors.As(err, &invalid) {
			respond.Error(c, http.StatusBadRequest, invalid.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "failed to save document", err)
		return
	}

	respond.OK(c, statusResponse{OK: true})
}

func (h *Handler) validate(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	// Validation problems are reported in-band with status 200. Only
	// transport-level failures surface as HTTP errors, so the editor
	// can poll this endpoint on every edit.
	if _, err := h.Svc.Validate(req.YAML); err != nil {
		respond.OK(c, statusResponse{OK: false, Error: err.Error()})
		return
	}

	respond.OK(c, statusResponse{OK: true})
}

func (h *Handler) bind(c *gin.Context) (documentRequest, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxDocumentBytes)

	var req documentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return documentRequest{}, false
	}
	return req, true
}
