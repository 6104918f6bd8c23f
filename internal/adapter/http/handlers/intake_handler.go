package handlers

import (
	"errors"
	"net/http"

	request "github.com/Iris-Sagastume/construct-ia/internal/adapter/http/dto/request"
	response "github.com/Iris-Sagastume/construct-ia/internal/adapter/http/dto/response"
	"github.com/Iris-Sagastume/construct-ia/internal/usecase"
	"github.com/Iris-Sagastume/construct-ia/pkg"

	"github.com/gin-gonic/gin"
)

// IntakeHandler drives assistant sessions message by message.
type IntakeHandler struct {
	usecase usecase.IIntakeUseCase
}

func NewIntakeHandler(uc usecase.IIntakeUseCase) *IntakeHandler {
	return &IntakeHandler{usecase: uc}
}

// StartSession godoc
// @Summary      Start an assistant session
// @Tags         assistant
// @Produce      json
// @Success      201  {object}  response.SessionResponse
// @Router       /assistant/sessions [post]
func (h *IntakeHandler) StartSession(c *gin.Context) {
	snap, msgs, err := h.usecase.Start(c.Request.Context())
	if err != nil {
		writeError(c, mapIntakeError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(snap, msgs))
}

// GetSession godoc
// @Summary      Current session snapshot
// @Tags         assistant
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Success      200  {object}  response.SessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /assistant/sessions/{session_id} [get]
func (h *IntakeHandler) GetSession(c *gin.Context) {
	snap, err := h.usecase.Get(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, mapIntakeError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(snap, nil))
}

// SendMessage godoc
// @Summary      Send one customer message
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        session_id  path  string                      true  "Session ID"
// @Param        body        body  request.SendMessageRequest  true  "Message"
// @Success      200  {object}  response.SessionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /assistant/sessions/{session_id}/messages [post]
func (h *IntakeHandler) SendMessage(c *gin.Context) {
	var payload request.SendMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	snap, msgs, err := h.usecase.Send(c.Request.Context(), c.Param("session_id"), payload.Text)
	if err != nil {
		writeError(c, mapIntakeError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(snap, msgs))
}

// ResetSession godoc
// @Summary      Restart the conversation
// @Tags         assistant
// @Produce      json
// @Param        session_id  path  string  true  "Session ID"
// @Success      200  {object}  response.SessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /assistant/sessions/{session_id}/reset [post]
func (h *IntakeHandler) ResetSession(c *gin.Context) {
	snap, msgs, err := h.usecase.Reset(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeError(c, mapIntakeError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(snap, msgs))
}

func mapIntakeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Assistant session not found or expired", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
