package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/salehq/mockchat/docs"
	"github.com/salehq/mockchat/internal/chat"
	"github.com/salehq/mockchat/internal/config"
	"github.com/salehq/mockchat/internal/dataset"
	"github.com/salehq/mockchat/internal/group"
	"github.com/salehq/mockchat/internal/randomuser"
	"github.com/salehq/mockchat/internal/user"
	"github.com/salehq/mockchat/pkg/response"
)

// @title        Mock Chat Server
// @version      1.0
// @description  A mock chat server for testing purposes and API prototyping
// @BasePath     /
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Generate the in-memory dataset. The identity fetch is the only
	// external call the server ever makes; if it fails there is nothing
	// to serve, so bail out before binding the port.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	store, err := dataset.Generate(ctx, randomuser.NewClient(cfg.RandomUserAPI), dataset.Options{
		UserCount:    cfg.UserCount,
		GroupCount:   cfg.GroupCount,
		MessageCount: cfg.MessageCount,
	}, rng)
	if err != nil {
		log.Fatalf("Failed to generate dataset: %v", err)
	}

	log.Printf("Generated dataset: %d users, %d groups, %d direct messages, %d group messages",
		len(store.Users()), len(store.Groups()), len(store.UserMessages()), len(store.GroupMessages()))

	// User feature
	userService := user.NewService(store)
	userHandler := user.NewHandler(userService)

	// Group feature
	groupService := group.NewService(store)
	groupHandler := group.NewHandler(groupService)

	// Chat feature
	chatService := chat.NewService(store)
	chatHandler := chat.NewHandler(chatService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		response.Text(w, http.StatusOK, "This is a mock server")
	})

	// Mount feature routers
	r.Mount("/users", userHandler.Routes())
	r.Mount("/groups", groupHandler.Routes())
	r.Mount("/chats", chatHandler.Routes())

	r.Get("/swagger/*", httpSwagger.Handler())

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
