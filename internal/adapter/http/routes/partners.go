package routes

import (
	"github.com/Iris-Sagastume/construct-ia/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSolicitudes = "/solicitudes"
	PathAllies      = "/allies"
)

func addPartnerRoutes(rg *gin.RouterGroup, partnerHandler *handlers.PartnerHandler, preQuoteHandler *handlers.PreQuoteHandler) {
	solicitudes := rg.Group(PathSolicitudes)
	{
		solicitudes.POST("", partnerHandler.CreateSolicitud)
		solicitudes.GET("", partnerHandler.ListSolicitudes)
		solicitudes.GET("/my", partnerHandler.ListMySolicitudes)
		solicitudes.GET("/:id", partnerHandler.GetSolicitud)
		solicitudes.PUT("/:id", partnerHandler.UpdateSolicitud)
		solicitudes.DELETE("/:id", partnerHandler.DeleteSolicitud)
	}

	allies := rg.Group(PathAllies)
	allies.GET(PathPreQuotes, preQuoteHandler.ListAllyPreQuotes)
}
