package generate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"cvbuilder/internal/shared/server/respond"
	"cvbuilder/internal/shared/util"
)

const maxGenerateBytes = 1 << 20

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the generate route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.generate)
}

type generateRequest struct {
	YAML string `json:"yaml"`
}

func (h *Handler) generate(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxGenerateBytes)

	var req generateRequest
	if err := decodeOptionalJSON(c.Request.Body, &req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	result, err := h.Svc.Generate(c.Request.Context(), req.YAML)
	if err != nil {
		// The diagnostic goes to the client verbatim; the editor shows
		// it next to the offending document.
		respond.Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	name, err := util.SanitizeFileName(result.Filename)
	if err != nil {
		name = "cv.pdf"
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Status(http.StatusOK)
	_, _ = c.Writer.Write(result.PDF)
}

// decodeOptionalJSON decodes a JSON body, treating an empty body as a
// zero value rather than an error.
func decodeOptionalJSON(body io.ReadCloser, out any) error {
	if body == nil {
		return nil
	}
	var errInvalidJSON = errors.New("invalid json body")
	decoder := json.NewDecoder(body)
	if err := decoder.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errInvalidJSON
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return errInvalidJSON
	}
	return nil
}
