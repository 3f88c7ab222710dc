package transaction

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, handler *Handler) {
	router.POST("/transaction/create", handler.Create)
	router.GET("/transaction/account/all/allTime", handler.AllOfAccount)
	router.GET("/transaction/account/all/recent", handler.RecentOfAccount)
	router.GET("/transaction/account/type/allTime", handler.AllOfAccountByType)
	router.GET("/transaction/account/type/recent", handler.RecentOfAccountByType)
}
