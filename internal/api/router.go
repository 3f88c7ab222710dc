package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lukasringel/economy-service/config"
	"github.com/lukasringel/economy-service/internal/api/v1/account"
	"github.com/lukasringel/economy-service/internal/api/v1/economy"
	"github.com/lukasringel/economy-service/internal/api/v1/transaction"
	"github.com/lukasringel/economy-service/internal/api/v1/user"
	"github.com/lukasringel/economy-service/internal/middleware"
	"github.com/lukasringel/economy-service/internal/services"
	"github.com/lukasringel/economy-service/internal/utils"
)

// Services bundles the components the transport layer exposes.
type Services struct {
	Registry     *services.EconomyRegistry
	Ledger       *services.AccountLedger
	Users        *services.UserCache
	Transactions *services.TransactionLog
}

// NewRouter builds the gin engine with every route behind the service token.
func NewRouter(cfg *config.Config, svc Services) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        300,
	}))

	authorized := router.Group("/")
	authorized.Use(middleware.ServiceTokenAuth(cfg.ServiceToken))
	{
		economy.RegisterRoutes(authorized, economy.NewHandler(svc.Registry))
		account.RegisterRoutes(authorized, account.NewHandler(svc.Ledger))
		user.RegisterRoutes(authorized, user.NewHandler(svc.Users))
		transaction.RegisterRoutes(authorized, transaction.NewHandler(svc.Transactions))

		// Operator command: reload economies and drop every cached user.
		authorized.POST("/refresh", func(c *gin.Context) {
			if err := svc.Registry.Refresh(); err != nil {
				utils.RespondServiceError(c, err)
				return
			}
			svc.Users.InvalidateAll()
			c.JSON(http.StatusOK, utils.NewSuccessResponse("Caches refreshed successfully", nil))
		})
	}

	return router
}
