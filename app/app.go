package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"dealership-api/internal/common"
	"dealership-api/internal/config"
	"dealership-api/internal/controller"
	"dealership-api/internal/repo"
	"dealership-api/internal/service"
	"dealership-api/internal/ws"
	"dealership-api/pkg/assistant"
	"dealership-api/pkg/bus"
	"dealership-api/pkg/http_server"
	"dealership-api/pkg/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/labstack/echo"
	"github.com/redis/go-redis/v9"
)

func runMigrations(migrationURL string, dbSource string) {
	migrations, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		log.Fatal("cannot create migrate instance: ", err)
	}

	if err := migrations.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatal("failed to run migrations: ", err)
	}
}

func Run() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal("cannot load config: ", err)
	}

	log.Println("Running migrations...")
	runMigrations(cfg.MigrationURL, cfg.PostgresConn)

	log.Println("Connecting database...")
	postgresDB, err := postgres.NewDB(cfg.PostgresConn)
	if err != nil {
		log.Fatal("error occurred while connecting to db: ", err)
	}
	defer postgresDB.Close()

	log.Println("Connecting session store...")
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	log.Println("Connecting message bus...")
	eventBus, err := bus.Connect(cfg.NatsURL)
	if err != nil {
		log.Fatal("error occurred while connecting to bus: ", err)
	}
	defer eventBus.Close()

	log.Println("Connecting assistant...")
	assistantClient, err := assistant.NewClient(context.Background(), cfg.GeminiAPIKey)
	if err != nil {
		log.Fatal("error occurred while creating assistant client: ", err)
	}

	repositories := repo.NewRepositories(postgresDB, redisClient)
	services := service.NewServices(repositories, eventBus, assistantClient)

	hub := ws.NewHub()
	go hub.Run()

	// Accepted bids travel through the bus and reach live watchers here;
	// the write path never waits on broadcast.
	_, err = eventBus.Subscribe(common.BidEventsSubjectPrefix+"*", func(subject string, data []byte) {
		auctionId := strings.TrimPrefix(subject, common.BidEventsSubjectPrefix)
		hub.Broadcast(auctionId, data)
	})
	if err != nil {
		log.Fatal("error occurred while subscribing to bid events: ", err)
	}

	handler := echo.New()

	log.Println("Setup routes...")
	controller.SetupRoutesHandlers(handler, services, hub)

	log.Println("Starting server...")
	httpServer := http_server.New(handler, cfg.ServerAddress)

	log.Println("Ready to process requests...")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Println("Got signal: " + s.String())
	case err = <-httpServer.Notify():
		log.Fatal("Notify error: ", err)
	}

	log.Println("Shutting down...")
	if err := httpServer.Shutdown(); err != nil {
		log.Fatal("Shutdown error: ", err)
	} else {
		log.Println("Successful shutdown")
	}
}
