package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	request "github.com/Iris-Sagastume/construct-ia/internal/adapter/http/dto/request"
	response "github.com/Iris-Sagastume/construct-ia/internal/adapter/http/dto/response"
	"github.com/Iris-Sagastume/construct-ia/internal/usecase"
	"github.com/Iris-Sagastume/construct-ia/pkg"

	"github.com/gin-gonic/gin"
)

// HouseDesignHandler serves generated designs and their PDF report.
type HouseDesignHandler struct {
	usecase     usecase.IHouseDesignUseCase
	designsPath string
}

// NewHouseDesignHandler takes the public prefix of the design routes, used to
// build the pdf_url of each response.
func NewHouseDesignHandler(uc usecase.IHouseDesignUseCase, designsPath string) *HouseDesignHandler {
	return &HouseDesignHandler{usecase: uc, designsPath: designsPath}
}

// GenerateHouseImage godoc
// @Summary      Generate a house design from the house form
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body  request.HouseDesignRequest  true  "House attributes"
// @Success      201  {object}  response.HouseDesignResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /ai/house-image [post]
func (h *HouseDesignHandler) GenerateHouseImage(c *gin.Context) {
	var payload request.HouseDesignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	d, err := h.usecase.GenerateDesign(c.Request.Context(), payload.ToAttributes())
	if err != nil {
		writeError(c, mapHouseDesignError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromHouseDesign(d, h.designsPath))
}

// GetHouseDesign godoc
// @Summary      Get a stored house design
// @Tags         ai
// @Produce      json
// @Param        id  path  string  true  "House design ID"
// @Success      200  {object}  response.HouseDesignResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /ai/house-design/{id} [get]
func (h *HouseDesignHandler) GetHouseDesign(c *gin.Context) {
	d, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapHouseDesignError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromHouseDesign(d, h.designsPath))
}

// DownloadPdf godoc
// @Summary      Download the house design report
// @Tags         ai
// @Produce      application/pdf
// @Param        id  path  string  true  "House design ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /ai/house-design/{id}/pdf [get]
func (h *HouseDesignHandler) DownloadPdf(c *gin.Context) {
	doc, err := h.usecase.RenderPdf(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("[ai][handler] pdf failed id=%s err=%v", c.Param("id"), err)
		writeError(c, mapHouseDesignError(err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}

func mapHouseDesignError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidHouseDesignID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrHouseDesignNotFound):
		return pkg.NewDomainErrorSimple("HOUSE_DESIGN_NOT_FOUND", "House design not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPdfGeneration):
		return pkg.NewDomainError("PDF_GENERATION_FAILED", "Could not generate the house design PDF", err, http.StatusInternalServerError)
	default:
		return internalError(err)
	}
}
