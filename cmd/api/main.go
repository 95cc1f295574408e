package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rafflehouse/raffle-backend/api/routes"
	"github.com/rafflehouse/raffle-backend/internal/config"
	"github.com/rafflehouse/raffle-backend/internal/handlers"
	"github.com/rafflehouse/raffle-backend/internal/repositories"
	mongorepo "github.com/rafflehouse/raffle-backend/internal/repositories/mongodb"
	"github.com/rafflehouse/raffle-backend/internal/services"
	mongodb "github.com/rafflehouse/raffle-backend/pkg/mongodb"
)

func main() {
	config.LoadDotenv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT secret is not configured")
	}

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Repositories
	var playerRepo repositories.PlayerRepository = mongorepo.NewPlayerRepository(db)
	var gameRepo repositories.GameRepository = mongorepo.NewGameRepository(db)
	var ticketRepo repositories.TicketRepository = mongorepo.NewTicketRepository(db)
	var prizeRepo repositories.PrizeRepository = mongorepo.NewPrizeRepository(db)
	var operatorRepo repositories.OperatorRepository = mongorepo.NewOperatorRepository(db)
	var topupRepo repositories.TopupRepository = mongorepo.NewTopupRepository(db)
	var auditRepo repositories.AuditEventRepository = mongorepo.NewAuditEventRepository(db)
	var activeGame repositories.ActiveGameRegister = mongorepo.NewActiveGameRegister(db)

	// Services
	authService := services.NewAuthService(playerRepo, operatorRepo, cfg)
	gameService := services.NewGameService(gameRepo, ticketRepo, prizeRepo, playerRepo, activeGame, auditRepo)
	ticketService := services.NewTicketService(gameRepo, ticketRepo, playerRepo)
	prizeService := services.NewPrizeService(gameRepo, ticketRepo, prizeRepo, playerRepo)
	playerService := services.NewPlayerService(playerRepo)
	topupService := services.NewTopupService(playerRepo, topupRepo)

	if err := authService.EnsureOperator(context.Background(), cfg.Operator.Email, cfg.Operator.Password); err != nil {
		log.Fatalf("Failed to ensure bootstrap operator: %v", err)
	}

	// Handlers
	handlerDeps := routes.HandlerDependencies{
		AuthHandler:   handlers.NewAuthHandler(authService),
		GameHandler:   handlers.NewGameHandler(gameService),
		TicketHandler: handlers.NewTicketHandler(ticketService),
		PrizeHandler:  handlers.NewPrizeHandler(prizeService),
		PlayerHandler: handlers.NewPlayerHandler(playerService),
		TopupHandler:  handlers.NewTopupHandler(topupService),
	}

	router := routes.SetupRouter(cfg, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
