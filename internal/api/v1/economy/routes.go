package economy

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, handler *Handler) {
	router.POST("/economy/create", handler.Create)
	router.GET("/economy/by/id", handler.ByID)
	router.GET("/economy/by/name", handler.ByName)
	router.GET("/economy/multiplier/increase", handler.WithIncreaseMultiplier)
	router.GET("/economy/multiplier/decrease", handler.WithDecreaseMultiplier)
}
