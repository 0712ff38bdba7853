package generate

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Karimk94/translator-core/internal/middleware"
	"github.com/Karimk94/translator-core/internal/modules/language"
	"github.com/Karimk94/translator-core/internal/modules/prompt"
	"github.com/Karimk94/translator-core/internal/modules/relay"
)

// Service runs the per-request pipeline: detect source language, build the
// task prompt, relay the backend stream to the caller. It holds no
// per-request state; concurrent requests are independent.
type Service struct {
	relay *relay.Client
	log   *zap.Logger
}

func NewService(relayClient *relay.Client, log *zap.Logger) *Service {
	return &Service{relay: relayClient, log: log}
}

// StreamGenerate writes SSE frames to the gin.Context directly. The
// response status is always 200; failures surface only as the [ERROR]
// sentinel inside the stream.
func (s *Service) StreamGenerate(c *gin.Context, text string, task prompt.Task) {
	source := language.Detect(text)
	builtPrompt := prompt.Build(text, task, source)

	s.log.Debug("generate request",
		zap.String("task", string(task)),
		zap.String("source", string(source)),
		zap.String("request_id", middleware.RequestID(c)),
	)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	// Flush per frame to preserve the live-typing effect; buffering until
	// the stream ends would defeat the endpoint.
	for frame := range s.relay.Generate(c.Request.Context(), builtPrompt) {
		fmt.Fprintf(c.Writer, "data: %s\n\n", frame)
		c.Writer.Flush()
	}
}
