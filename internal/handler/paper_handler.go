package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paperforge/paperforge-backend/internal/model"
	"github.com/paperforge/paperforge-backend/internal/response"
	"github.com/paperforge/paperforge-backend/internal/service"
	"github.com/paperforge/paperforge-backend/internal/validator"
)

// PaperHandler handles paper generation endpoints.
type PaperHandler struct {
	paperService *service.PaperService
}

// NewPaperHandler creates a new PaperHandler.
func NewPaperHandler(paperService *service.PaperService) *PaperHandler {
	return &PaperHandler{paperService: paperService}
}

// GeneratePaper godoc
// POST /api/v1/papers/generate
// Renders the posted paper into a downloadable PDF document.
func (h *PaperHandler) GeneratePaper(c *gin.Context) {
	var req model.GeneratePaperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			response.Fail(c, http.StatusRequestEntityTooLarge, response.ErrPayloadTooLarge)
			return
		}
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, validator.TranslateErrors(err))
		return
	}

	doc, err := h.paperService.Generate(c.Request.Context(), req.ToPaper())
	if err != nil {
		response.FailWithFields(c, http.StatusInternalServerError, response.ErrRenderFailed,
			map[string]string{"detail": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="question-paper.pdf"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}
