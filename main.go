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

	"github.com/rudraprotapchakraborty/hotel-management-server/auth"
	"github.com/rudraprotapchakraborty/hotel-management-server/carts"
	"github.com/rudraprotapchakraborty/hotel-management-server/config"
	"github.com/rudraprotapchakraborty/hotel-management-server/db"
	"github.com/rudraprotapchakraborty/hotel-management-server/meals"
	"github.com/rudraprotapchakraborty/hotel-management-server/memberships"
	"github.com/rudraprotapchakraborty/hotel-management-server/middleware"
	"github.com/rudraprotapchakraborty/hotel-management-server/mq"
	"github.com/rudraprotapchakraborty/hotel-management-server/pay"
	"github.com/rudraprotapchakraborty/hotel-management-server/ratelim"
	"github.com/rudraprotapchakraborty/hotel-management-server/rdx"
	"github.com/rudraprotapchakraborty/hotel-management-server/requests"
	"github.com/rudraprotapchakraborty/hotel-management-server/reviews"
	"github.com/rudraprotapchakraborty/hotel-management-server/routes"
	"github.com/rudraprotapchakraborty/hotel-management-server/stripe"
	"github.com/rudraprotapchakraborty/hotel-management-server/users"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		duration := time.Since(start)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, duration)
	})
}

// Index is the liveness probe.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "Hotel Management Server is running")
}

// Health is a bare status check.
func Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func setupRouter(cfg *config.Config, database *db.Database, cache *rdx.Cache, events *mq.Emitter) *httprouter.Router {
	router := httprouter.New()
	router.GET("/", Index)
	router.GET("/health", Health)

	rateLimiter := ratelim.NewRateLimiter()
	authMw := middleware.NewAuth(cfg.JWTSecret, database.UserCollection)
	adapter := stripe.New(cfg.StripeSecret)

	routes.AddAuthRoutes(router, rateLimiter, auth.NewHandler(authMw))
	routes.AddUserRoutes(router, rateLimiter, authMw, users.NewHandler(database))
	routes.AddMealRoutes(router, rateLimiter, authMw, meals.NewHandler(database, cache, events))
	routes.AddReviewsRoutes(router, reviews.NewHandler(database))
	routes.AddCartRoutes(router, rateLimiter, carts.NewHandler(database))
	routes.AddMembershipRoutes(router, memberships.NewHandler(database, cache))
	routes.AddRequestRoutes(router, rateLimiter, authMw, requests.NewHandler(database, events))
	routes.AddPayRoutes(router, rateLimiter, authMw, pay.NewHandler(database, adapter, events))

	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	database, err := db.Connect(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := database.EnsureIndexes(ctx); err != nil {
		log.Printf("index creation failed: %v", err)
	}

	cache := rdx.New(cfg.RedisAddr)
	events := mq.NewEmitter(cache)
	go events.StartAuditWorker(ctx)

	router := setupRouter(cfg, database, cache, events)

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}

	cancel()
	if err := cache.Close(); err != nil {
		log.Printf("closing redis: %v", err)
	}
	if err := database.Close(shutdownCtx); err != nil {
		log.Printf("closing mongo: %v", err)
	}

	log.Println("Server stopped cleanly")
}
