package handler

import (
	"errors"
	"net/http"

	"github.com/Darshan-Yash/Periodic-table/internal/services"
	"github.com/Darshan-Yash/Periodic-table/internal/transport/httpdto"
	ptable_errors "github.com/Darshan-Yash/Periodic-table/pkg/errors"

	"github.com/gin-gonic/gin"
)

// AskHandler proxies questions to the AI provider.
type AskHandler struct {
	service *services.AskService
}

func NewAskHandler(service *services.AskService) *AskHandler {
	return &AskHandler{service: service}
}

// Ask handles POST /api/ask.
func (h *AskHandler) Ask(c *gin.Context) {
	var req httpdto.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Invalid request body"))
		return
	}

	res, err := h.service.Answer(c.Request.Context(), req.Question)
	if err != nil {
		switch {
		case errors.Is(err, ptable_errors.ErrMisconfigured):
			c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("OpenRouter API key not configured"))
		case errors.Is(err, ptable_errors.ErrUpstreamTimeout):
			c.JSON(http.StatusGatewayTimeout, httpdto.NewErrorResponse("Request to AI service timed out"))
		default:
			writeError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, httpdto.NewAskResponse(res.Answer, res.ElementContext))
}
