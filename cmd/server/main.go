package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/venturelink/venturelink/internal/config"
	"github.com/venturelink/venturelink/internal/handlers"
	"github.com/venturelink/venturelink/internal/jobs"
	"github.com/venturelink/venturelink/internal/repository"
	"github.com/venturelink/venturelink/internal/scheduler"
	"github.com/venturelink/venturelink/internal/services"
	"github.com/venturelink/venturelink/internal/storage"
	"github.com/venturelink/venturelink/pkg/email"
	"github.com/venturelink/venturelink/pkg/logger"
	"github.com/venturelink/venturelink/pkg/middleware"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	// Open the JSON collection store
	store, err := storage.NewStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("Storage error: %v", err)
	}

	notifier := email.NewNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPSender, cfg.SMTPPassword)

	// --- Repositories ---
	founderRepo := repository.NewFounderRepository(store)
	investorRepo := repository.NewInvestorRepository(store)
	messageRepo := repository.NewMessageRepository(store)

	// --- Services ---
	identityService := services.NewIdentityService(founderRepo, investorRepo)
	profileService := services.NewProfileService(founderRepo, investorRepo)
	chatService := services.NewChatService(messageRepo, identityService)
	connectionService := services.NewConnectionService(messageRepo, founderRepo, investorRepo, identityService, notifier)
	favoriteService := services.NewFavoriteService(founderRepo, investorRepo, identityService)
	matchService := services.NewMatchService(founderRepo, investorRepo)

	// --- Handlers ---
	founderHandler := handlers.NewFounderHandler(founderRepo, profileService)
	investorHandler := handlers.NewInvestorHandler(investorRepo, profileService)
	messageHandler := handlers.NewMessageHandler(messageRepo, chatService)
	chatHandler := handlers.NewChatHandler(chatService)
	connectionHandler := handlers.NewConnectionHandler(connectionService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	matchHandler := handlers.NewMatchHandler(matchService)
	authHandler := handlers.NewAuthHandler(identityService, profileService, cfg)

	// Initialize Gorilla Mux router
	router := mux.NewRouter()

	// Collection endpoints (whole-collection read/replace)
	router.HandleFunc("/founders", founderHandler.GetFoundersHandler).Methods("GET")
	router.HandleFunc("/founders", founderHandler.ReplaceFoundersHandler).Methods("POST")
	router.HandleFunc("/founders/apply", founderHandler.ApplyFounderHandler).Methods("POST")
	router.HandleFunc("/investors", investorHandler.GetInvestorsHandler).Methods("GET")
	router.HandleFunc("/investors", investorHandler.ReplaceInvestorsHandler).Methods("POST")
	router.HandleFunc("/investors/apply", investorHandler.ApplyInvestorHandler).Methods("POST")
	router.HandleFunc("/messages", messageHandler.GetMessagesHandler).Methods("GET")
	router.HandleFunc("/messages", messageHandler.PostMessagesHandler).Methods("POST")

	// Auth and profile routes
	router.HandleFunc("/auth/login", authHandler.LoginHandler).Methods("POST")
	router.HandleFunc("/profile", authHandler.GetProfileHandler).Methods("GET")
	router.HandleFunc("/profile", authHandler.UpdateProfileHandler).Methods("PUT")

	// Match browser
	router.HandleFunc("/matches", matchHandler.GetMatchesHandler).Methods("GET")

	// Conversation routes
	router.HandleFunc("/conversations", chatHandler.GetConversationsHandler).Methods("GET")
	router.HandleFunc("/conversations/send", chatHandler.SendMessageHandler).Methods("POST")
	router.HandleFunc("/conversations/{id}", chatHandler.GetConversationHandler).Methods("GET")

	// Connection request routes
	router.HandleFunc("/connections/contact", connectionHandler.ContactHandler).Methods("POST")
	router.HandleFunc("/connections/{conversationId}/respond", connectionHandler.RespondHandler).Methods("POST")

	// Favorites routes
	router.HandleFunc("/favorites", favoriteHandler.GetFavoritesHandler).Methods("GET")
	router.HandleFunc("/favorites", favoriteHandler.AddFavoriteHandler).Methods("POST")
	router.HandleFunc("/favorites", favoriteHandler.RemoveFavoriteHandler).Methods("DELETE")

	// Admin routes
	adminRoutes := router.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	adminRoutes.Use(middleware.RequireRole("admin"))
	adminRoutes.HandleFunc("/founders", founderHandler.GetFoundersHandler).Methods("GET")
	adminRoutes.HandleFunc("/founders/{id}/status", founderHandler.AdminSetFounderStatusHandler).Methods("PATCH")
	adminRoutes.HandleFunc("/founders/{id}", founderHandler.AdminDeleteFounderHandler).Methods("DELETE")
	adminRoutes.HandleFunc("/investors", investorHandler.GetInvestorsHandler).Methods("GET")
	adminRoutes.HandleFunc("/investors/{id}/status", investorHandler.AdminSetInvestorStatusHandler).Methods("PATCH")
	adminRoutes.HandleFunc("/investors/{id}", investorHandler.AdminDeleteInvestorHandler).Methods("DELETE")

	// Apply middleware for logging
	router.Use(middleware.LoggingMiddleware)

	// Schedule the unread-message digest
	digest := jobs.NewUnreadDigest(messageRepo, notifier)
	scheduler.StartDigestCron(digest, cfg.DigestCron)

	// Start the HTTP server
	port := cfg.Port
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)

	fmt.Printf("Server running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
