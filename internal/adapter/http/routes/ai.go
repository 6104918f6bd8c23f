package routes

import (
	"github.com/Iris-Sagastume/construct-ia/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAI          = "/ai"
	PathHouseDesign = "/house-design"
)

func addAIRoutes(rg *gin.RouterGroup, houseDesignHandler *handlers.HouseDesignHandler) {
	ai := rg.Group(PathAI)
	{
		ai.POST("/house-image", houseDesignHandler.GenerateHouseImage)
		ai.GET(PathHouseDesign+"/:id", houseDesignHandler.GetHouseDesign)
		ai.GET(PathHouseDesign+"/:id/pdf", houseDesignHandler.DownloadPdf)
	}
}
