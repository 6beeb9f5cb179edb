package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fanhub-backend/internal/chat"
	"fanhub-backend/internal/config"
	"fanhub-backend/internal/database"
	"fanhub-backend/internal/esports"
	"fanhub-backend/internal/handlers"
	"fanhub-backend/internal/ratelimit"
	"fanhub-backend/internal/repository"
	"fanhub-backend/internal/router"
	"fanhub-backend/internal/services"
	"fanhub-backend/internal/websocket"
)

func main() {
	log.Println("🐆 Starting FanHub Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize PostgreSQL Connection Pool ────
	pool, err := database.NewPostgresPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("✗ PostgreSQL connection failed: %v", err)
	}
	defer pool.Close()
	log.Println("✓ PostgreSQL connected")

	// ──── Step 3: Initialize Redis Clients ────
	redisClients, err := database.NewRedisClients(cfg.RedisURL)
	if err != nil {
		log.Fatalf("✗ Redis connection failed: %v", err)
	}
	defer redisClients.Close()
	log.Println("✓ Redis connected")

	// ──── Step 4: Run Database Migrations ────
	if err := database.RunMigrations(pool, "migrations"); err != nil {
		log.Fatalf("✗ Database migration failed: %v", err)
	}
	log.Println("✓ Database migrations applied")

	// ──── Initialize Repositories ────
	chatLogRepo := repository.NewChatLogRepo(pool)

	// ──── Step 5: Initialize Gemini Client ────
	geminiService, err := services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	log.Println("✓ Gemini client initialized")

	// ──── Step 6: Assemble the Chat Gateway ────
	var limiter ratelimit.Limiter
	var cache chat.ResponseCache
	if cfg.DistributedState {
		limiter = ratelimit.NewRedisWindow(redisClients.State, cfg.ChatRateLimit, cfg.ChatRateWindow)
		cache = chat.NewRedisCache(redisClients.State, cfg.CacheTTL)
		log.Println("✓ Rate limiter and cache backed by Redis")
	} else {
		limiter = ratelimit.NewFixedWindow(cfg.ChatRateLimit, cfg.ChatRateWindow)
		cache = chat.NewMemoryCache(cfg.CacheTTL, cfg.CacheMaxItems)
		log.Println("✓ Rate limiter and cache in memory")
	}

	esportsClient := esports.NewClient(cfg.EsportsAPIBaseURL, cfg.StreamAPIBaseURL, cfg.TeamSlug)
	publisher := chat.NewRedisPublisher(redisClients.State)

	gateway := chat.NewGateway(limiter, cache, esportsClient, geminiService, chatLogRepo, publisher)

	// ──── Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(gateway)
	dashboardHandler := handlers.NewDashboardHandler(chatLogRepo)

	// ──── Step 7: Start WebSocket Hub ────
	wsHub := websocket.NewHub(redisClients.PubSub)
	log.Println("✓ WebSocket hub started")

	// ──── Step 8: Start HTTP Server ────
	r := router.New(chatHandler, dashboardHandler, wsHub, cfg.FrontendURL)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ FanHub Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)
	log.Printf("  WS:  ws://localhost:%s/api/v1/ws", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
