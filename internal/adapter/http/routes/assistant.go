package routes

import (
	"github.com/Iris-Sagastume/construct-ia/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAssistant = "/assistant"
	PathSessions  = "/sessions"
	PathPreQuotes = "/pre-quotes"
)

func addAssistantRoutes(
	rg *gin.RouterGroup,
	intakeHandler *handlers.IntakeHandler,
	preQuoteHandler *handlers.PreQuoteHandler,
	partnerHandler *handlers.PartnerHandler,
) {
	assistant := rg.Group(PathAssistant)
	assistant.GET("/catalog", partnerHandler.GetCatalog)

	sessions := assistant.Group(PathSessions)
	{
		sessions.POST("", intakeHandler.StartSession)
		sessions.GET("/:session_id", intakeHandler.GetSession)
		sessions.POST("/:session_id/messages", intakeHandler.SendMessage)
		sessions.POST("/:session_id/reset", intakeHandler.ResetSession)
	}

	preQuotes := assistant.Group(PathPreQuotes)
	{
		preQuotes.POST("", preQuoteHandler.CreatePreQuote)
		preQuotes.GET("", preQuoteHandler.ListPreQuotes)
		preQuotes.GET("/:ticket", preQuoteHandler.GetPreQuote)
		preQuotes.PATCH("/:ticket/status", preQuoteHandler.UpdatePreQuoteStatus)
	}
}
