package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stockroom-api/internal/cache"
	"stockroom-api/internal/config"
	"stockroom-api/internal/handler"
	"stockroom-api/internal/middleware"
	"stockroom-api/internal/repository"
	"stockroom-api/internal/router"
	"stockroom-api/internal/service"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting stockroom API...")

	cfg := config.MustLoad()
	log.Printf("Environment: %s", cfg.App.Environment)

	// Inventory store: an explicitly constructed handle, injected below.
	var itemRepo repository.ItemRepository
	switch cfg.Store.Type {
	case "sqlite":
		sqliteRepo, err := repository.NewSQLiteItemRepository(cfg.Store.Path)
		if err != nil {
			log.Fatalf("Failed to initialize SQLite: %v", err)
		}
		itemRepo = sqliteRepo
		log.Println("SQLite inventory repository initialized")
	default: // mongodb
		mongoRepo, err := repository.NewMongoItemRepository(
			cfg.Store.MongoURI,
			cfg.Store.MongoDatabase,
			cfg.Store.MongoCollection,
		)
		if err != nil {
			log.Fatalf("Failed to initialize MongoDB: %v", err)
		}
		itemRepo = mongoRepo
		log.Println("MongoDB inventory repository initialized")
	}
	defer itemRepo.Close()

	// Optional MySQL access-key store.
	var keyRepo repository.AccessKeyRepository
	if cfg.Database.Enabled() {
		mysqlDB, err := sql.Open("mysql", cfg.Database.DSN())
		if err != nil {
			log.Printf("Warning: MySQL connection failed: %v", err)
		} else {
			mysqlDB.SetMaxOpenConns(10)
			mysqlDB.SetMaxIdleConns(5)
			mysqlDB.SetConnMaxLifetime(5 * time.Minute)

			if err := mysqlDB.Ping(); err != nil {
				log.Printf("Warning: MySQL ping failed: %v", err)
				mysqlDB.Close()
			} else {
				defer mysqlDB.Close()
				keyRepo = repository.NewMySQLAccessKeyRepository(mysqlDB)
				log.Println("MySQL access-key repository initialized")
			}
		}
	}

	// Session cache: Redis in production, in-memory otherwise.
	var sessionCache cache.Cache
	if cfg.Cache.Type == "redis" {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Addr:     cfg.Cache.RedisAddress(),
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		if err != nil {
			log.Printf("Warning: Redis connection failed, using memory cache: %v", err)
			sessionCache = cache.NewMemoryCache()
		} else {
			sessionCache = redisCache
		}
	} else {
		sessionCache = cache.NewMemoryCache()
	}
	defer sessionCache.Close()

	// Services
	inventoryService := service.NewInventoryService(itemRepo)
	tokenService := service.NewTokenService(sessionCache)

	// Handlers
	accessKeys := cfg.Auth.Keys()
	if len(accessKeys) == 0 && keyRepo == nil {
		log.Println("Warning: no access keys configured; every inventory request will be rejected")
	}

	healthHandler := handler.New(itemRepo, cfg.Store.Type)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	authHandler := handler.NewAuthHandler(tokenService, accessKeys, keyRepo)

	authMiddleware := middleware.NewAuthMiddleware(middleware.AuthConfig{
		TokenService: tokenService,
		Keys:         accessKeys,
		KeyRepo:      keyRepo,
	})

	r := router.New(router.Config{
		Handler:          healthHandler,
		InventoryHandler: inventoryHandler,
		AuthHandler:      authHandler,
		AuthMiddleware:   authMiddleware,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("Server listening on %s", cfg.Server.Address())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
