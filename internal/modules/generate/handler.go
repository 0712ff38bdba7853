package generate

import (
	"github.com/gin-gonic/gin"

	"github.com/Karimk94/translator-core/internal/modules/prompt"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.generate)
}

// POST /generate — SSE streaming
func (h *Handler) generate(c *gin.Context) {
	var dto generateDTO
	// Permissive by contract: a malformed or empty body degrades to the
	// field defaults, never to an HTTP error status.
	_ = c.ShouldBindJSON(&dto)

	task := prompt.Task(dto.Task)
	if dto.Task == "" {
		task = prompt.DefaultTask
	}

	h.svc.StreamGenerate(c, dto.Text, task)
}
