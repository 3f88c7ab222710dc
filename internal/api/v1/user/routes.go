package user

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, handler *Handler) {
	router.POST("/user/create", handler.Create)
	router.GET("/user/by/id", handler.ByID)
	router.GET("/user/by/identifier", handler.ByIdentifier)
	router.GET("/user/suspended", handler.Suspended)
	router.GET("/user/created/before", handler.CreatedBefore)
	router.GET("/user/created/after", handler.CreatedAfter)
}
