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

type PreQuoteHandler struct {
	usecase usecase.IPreQuoteUseCase
}

func NewPreQuoteHandler(uc usecase.IPreQuoteUseCase) *PreQuoteHandler {
	return &PreQuoteHandler{usecase: uc}
}

// CreatePreQuote godoc
// @Summary      Register a pre-quote
// @Tags         pre-quotes
// @Accept       json
// @Produce      json
// @Param        body  body  request.CreatePreQuoteRequest  true  "Pre-quote"
// @Success      201  {object}  response.PreQuoteResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /assistant/pre-quotes [post]
func (h *PreQuoteHandler) CreatePreQuote(c *gin.Context) {
	var payload request.CreatePreQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	q, err := h.usecase.CreatePreQuote(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapPreQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPreQuote(q))
}

// ListPreQuotes godoc
// @Summary      List a customer's pre-quotes
// @Tags         pre-quotes
// @Produce      json
// @Param        email  query  string  true  "Contact email"
// @Success      200  {array}  response.PreQuoteResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /assistant/pre-quotes [get]
func (h *PreQuoteHandler) ListPreQuotes(c *gin.Context) {
	items, err := h.usecase.ListByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		writeError(c, mapPreQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPreQuotes(items))
}

// GetPreQuote godoc
// @Summary      Get a pre-quote by ticket
// @Tags         pre-quotes
// @Produce      json
// @Param        ticket  path   string  true   "Ticket"
// @Param        email   query  string  false  "Contact email the ticket must belong to"
// @Success      200  {object}  response.PreQuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /assistant/pre-quotes/{ticket} [get]
func (h *PreQuoteHandler) GetPreQuote(c *gin.Context) {
	q, err := h.usecase.GetByTicket(c.Request.Context(), c.Param("ticket"), c.Query("email"))
	if err != nil {
		writeError(c, mapPreQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPreQuote(q))
}

// UpdatePreQuoteStatus godoc
// @Summary      Change a pre-quote status
// @Tags         pre-quotes
// @Accept       json
// @Produce      json
// @Param        ticket  path  string                               true  "Ticket"
// @Param        body    body  request.UpdatePreQuoteStatusRequest  true  "Status"
// @Success      200  {object}  response.PreQuoteResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /assistant/pre-quotes/{ticket}/status [patch]
func (h *PreQuoteHandler) UpdatePreQuoteStatus(c *gin.Context) {
	var payload request.UpdatePreQuoteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	q, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("ticket"), payload.ResolveStatus())
	if err != nil {
		writeError(c, mapPreQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPreQuote(q))
}

// ListAllyPreQuotes godoc
// @Summary      Pre-quotes that reference the caller's approved partner
// @Tags         allies
// @Produce      json
// @Param        email  query  string  true  "Partner email"
// @Success      200  {array}  response.AllyPreQuoteResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /allies/pre-quotes [get]
func (h *PreQuoteHandler) ListAllyPreQuotes(c *gin.Context) {
	items, err := h.usecase.ListForAlly(c.Request.Context(), c.Query("email"))
	if err != nil {
		writeError(c, mapPreQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAllyPreQuotes(items))
}

func mapPreQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTicket),
		errors.Is(err, usecase.ErrInvalidEmail),
		errors.Is(err, usecase.ErrInvalidContactPhone),
		errors.Is(err, usecase.ErrInvalidContactMode),
		errors.Is(err, usecase.ErrInvalidEstimatedCost),
		errors.Is(err, usecase.ErrInvalidHouseDesignID),
		errors.Is(err, usecase.ErrInvalidPreQuoteState):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPreQuoteAlreadyExists):
		return pkg.NewDomainErrorSimple("PRE_QUOTE_ALREADY_EXISTS", "A pre-quote with this ticket already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrPreQuoteNotFound):
		return pkg.NewDomainErrorSimple("PRE_QUOTE_NOT_FOUND", "Pre-quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrHouseDesignNotFound):
		return pkg.NewDomainErrorSimple("HOUSE_DESIGN_NOT_FOUND", "House design not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
