package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rafflehouse/raffle-backend/internal/config"
	"github.com/rafflehouse/raffle-backend/internal/handlers"
	"github.com/rafflehouse/raffle-backend/internal/middleware"
	"github.com/rafflehouse/raffle-backend/internal/utils"
)

// HandlerDependencies bundles the handlers wired in main
type HandlerDependencies struct {
	AuthHandler   *handlers.AuthHandler
	GameHandler   *handlers.GameHandler
	TicketHandler *handlers.TicketHandler
	PrizeHandler  *handlers.PrizeHandler
	PlayerHandler *handlers.PlayerHandler
	TopupHandler  *handlers.TopupHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		auth := public.Group("/auth")
		{
			auth.POST("/player/register", deps.AuthHandler.RegisterPlayer)
			auth.POST("/player/login", deps.AuthHandler.LoginPlayer)
			auth.POST("/operator/login", deps.AuthHandler.LoginOperator)
		}
	}

	// Authenticated routes (players and operators)
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		games := protected.Group("/games")
		{
			games.GET("", deps.GameHandler.ListGames)
			games.GET("/:code", deps.GameHandler.GetGame)
			games.POST("/:code/tickets", deps.TicketHandler.Purchase)
		}

		me := protected.Group("/me")
		{
			me.GET("", deps.PlayerHandler.Me)
			me.GET("/tickets", deps.TicketHandler.MyTickets)
			me.GET("/prizes", deps.PrizeHandler.MyPrizes)
			me.GET("/topups", deps.TopupHandler.History)
			me.POST("/topups", deps.TopupHandler.Topup)
		}

		protected.POST("/prizes/:id/notify-shipment", deps.PrizeHandler.NotifyShipment)
	}

	// Operator routes
	operator := router.Group("/api/v1/operator")
	operator.Use(middleware.JWTAuthMiddleware(cfg), middleware.RequireRole(utils.RoleOperator))
	{
		games := operator.Group("/games")
		{
			games.POST("", deps.GameHandler.CreateGame)
			games.POST("/:code/start", deps.GameHandler.StartGame)
			games.POST("/:code/stop", deps.GameHandler.StopGame)
			games.POST("/:code/finish", deps.GameHandler.FinishGame)
			games.POST("/:code/cancel", deps.GameHandler.CancelGame)
			games.PUT("/:code/purchasing", deps.GameHandler.SetPurchasing)
			games.GET("/:code/tickets", deps.TicketHandler.GameTickets)
			games.GET("/:code/prizes", deps.PrizeHandler.GamePrizes)
			games.GET("/:code/audit", deps.GameHandler.GetAuditTrail)
			games.POST("/:code/tickets/:number/prize", deps.PrizeHandler.Award)
		}

		operator.PUT("/prizes/:id/shipment-status", deps.PrizeHandler.SetShipmentStatus)
	}

	return router
}
