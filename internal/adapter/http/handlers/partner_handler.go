package handlers

import (
	"errors"
	"net/http"

	request "github.com/Iris-Sagastume/construct-ia/internal/adapter/http/dto/request"
	response "github.com/Iris-Sagastume/construct-ia/internal/adapter/http/dto/response"
	"github.com/Iris-Sagastume/construct-ia/internal/domain/entities"
	"github.com/Iris-Sagastume/construct-ia/internal/usecase"
	"github.com/Iris-Sagastume/construct-ia/pkg"

	"github.com/gin-gonic/gin"
)

// PartnerHandler handles partner onboarding requests ("solicitudes").
type PartnerHandler struct {
	usecase usecase.IPartnerUseCase
}

func NewPartnerHandler(uc usecase.IPartnerUseCase) *PartnerHandler {
	return &PartnerHandler{usecase: uc}
}

// CreateSolicitud godoc
// @Summary      Submit a partner request
// @Tags         solicitudes
// @Accept       json
// @Produce      json
// @Param        body  body  request.CreatePartnerRequest  true  "Partner request"
// @Success      201  {object}  response.PartnerResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /solicitudes [post]
func (h *PartnerHandler) CreateSolicitud(c *gin.Context) {
	var payload request.CreatePartnerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	p, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapPartnerError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPartner(p))
}

// ListSolicitudes godoc
// @Summary      List partner requests
// @Tags         solicitudes
// @Produce      json
// @Param        estado  query  string  false  "PENDIENTE, APROBADA or RECHAZADA"
// @Success      200  {array}  response.PartnerResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /solicitudes [get]
func (h *PartnerHandler) ListSolicitudes(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context(), entities.PartnerStatus(c.Query("estado")))
	if err != nil {
		writeError(c, mapPartnerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPartners(items))
}

// ListMySolicitudes godoc
// @Summary      List the partner requests submitted with an email
// @Tags         solicitudes
// @Produce      json
// @Param        email  query  string  true  "Partner email"
// @Success      200  {array}  response.PartnerResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /solicitudes/my [get]
func (h *PartnerHandler) ListMySolicitudes(c *gin.Context) {
	items, err := h.usecase.ListByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		writeError(c, mapPartnerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPartners(items))
}

// GetSolicitud godoc
// @Summary      Get a partner request
// @Tags         solicitudes
// @Produce      json
// @Param        id  path  string  true  "Partner request ID"
// @Success      200  {object}  response.PartnerResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /solicitudes/{id} [get]
func (h *PartnerHandler) GetSolicitud(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPartnerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPartner(p))
}

// UpdateSolicitud godoc
// @Summary      Update a partner request
// @Tags         solicitudes
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "Partner request ID"
// @Param        body  body  request.UpdatePartnerRequest  true  "Fields to change"
// @Success      200  {object}  response.PartnerResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /solicitudes/{id} [put]
func (h *PartnerHandler) UpdateSolicitud(c *gin.Context) {
	var payload request.UpdatePartnerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	p, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeError(c, mapPartnerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPartner(p))
}

// DeleteSolicitud godoc
// @Summary      Delete a partner request
// @Tags         solicitudes
// @Param        id  path  string  true  "Partner request ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /solicitudes/{id} [delete]
func (h *PartnerHandler) DeleteSolicitud(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapPartnerError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// GetCatalog godoc
// @Summary      Options the assistant offers right now
// @Tags         assistant
// @Produce      json
// @Success      200  {object}  entities.Catalog
// @Router       /assistant/catalog [get]
func (h *PartnerHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Catalog(c.Request.Context()))
}

func mapPartnerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPartnerID),
		errors.Is(err, usecase.ErrInvalidPartnerKind),
		errors.Is(err, usecase.ErrInvalidPartnerName),
		errors.Is(err, usecase.ErrInvalidPartnerStatus),
		errors.Is(err, usecase.ErrInvalidEmail):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPartnerNotFound):
		return pkg.NewDomainErrorSimple("SOLICITUD_NOT_FOUND", "Partner request not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
