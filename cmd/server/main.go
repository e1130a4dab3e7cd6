package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"userportal/internal/config"
	"userportal/internal/database"
	"userportal/internal/handlers"
	"userportal/internal/middleware"
	"userportal/internal/routes"
	"userportal/internal/services"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	if cfg.IsProduction() && cfg.SessionSecret == "change-me-in-production" {
		log.Println("⚠️  WARNING: SESSION_SECRET is the default value. Set a real secret in production.")
	}

	// Connect to MongoDB
	log.Printf("Connecting to MongoDB...")
	if err := database.Connect(cfg.MongoURI); err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect()

	users := services.NewMongoUserStore(database.DB)

	// The unique index on phone is what makes duplicate registration safe under
	// concurrent requests.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := users.EnsureIndexes(ctx); err != nil {
		cancel()
		log.Fatal("Failed to ensure user indexes:", err)
	}
	cancel()
	log.Println("✅ MongoDB user indexes ensured")

	// Sessions live in Redis when configured, otherwise in process memory
	// (fine for a single-process deployment).
	var sessions services.SessionStore
	if cfg.RedisURI != "" {
		log.Printf("Connecting to Redis...")
		if err := database.ConnectRedis(cfg.RedisURI); err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
		defer database.DisconnectRedis()
		sessions = services.NewRedisSessionStore(database.RedisClient)
	} else {
		log.Println("REDIS_URI not set; using in-memory session store")
		sessions = services.NewMemorySessionStore(services.SessionDuration)
	}

	gate := &middleware.SessionGate{Sessions: sessions, Secret: cfg.SessionSecret}
	h := handlers.New(users, sessions, gate, cfg)

	// Setup router
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Hardening middleware is production-only so local behavior stays plain.
	if cfg.IsProduction() {
		r.Use(middleware.SecurityHeaders)
		if cfg.RedisURI != "" {
			r.Use(middleware.RateLimit(database.RedisClient))
		}
		r.Use(middleware.LoginRateLimit)
		log.Println("✅ Production security enabled (security headers, rate limiting)")
	}

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.SetupRoutes(r, h, gate)

	log.Printf("🚀 userportal running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
