package account

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, handler *Handler) {
	router.POST("/account/create", handler.Create)
	router.POST("/account/worth/increase", handler.IncreaseWorth)
	router.POST("/account/worth/decrease", handler.DecreaseWorth)
	router.GET("/account/get/single", handler.Single)
	router.GET("/account/get/multi/economy", handler.ByEconomy)
	router.GET("/account/get/multi/amount/above", handler.AboveAmount)
	router.GET("/account/get/multi/amount/under", handler.UnderAmount)
}
