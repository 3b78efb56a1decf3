package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/studypath/backend/internal/auth"
	"github.com/studypath/backend/internal/catalog"
	"github.com/studypath/backend/internal/database"
	"github.com/studypath/backend/internal/learning"
	"github.com/studypath/backend/internal/middleware"
	"github.com/studypath/backend/internal/stats"
	"github.com/studypath/backend/internal/tutor"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.SeedUnits(db); err != nil {
		log.Fatalf("Failed to seed units: %v", err)
	}

	// Content provider
	provider := tutor.NewProvider()

	// Services
	catalogService := catalog.NewService(catalog.NewStore(db), provider)
	learningService := learning.NewService(learning.NewStore(db), provider, catalogService)

	// Handlers
	authHandler := auth.NewHandler(db)
	catalogHandler := catalog.NewHandler(catalogService)
	learningHandler := learning.NewHandler(learningService)
	statsHandler := stats.NewHandler(stats.NewStore(db))

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")

	// Catalog
	protected.HandleFunc("/subjects", catalogHandler.ListSubjects).Methods("GET")
	protected.HandleFunc("/units", catalogHandler.ListUnits).Methods("GET")
	protected.HandleFunc("/units/search", catalogHandler.SearchUnits).Methods("GET")
	protected.HandleFunc("/units/custom", catalogHandler.CreateCustomUnit).Methods("POST")
	protected.HandleFunc("/units/{id:[0-9]+}", catalogHandler.GetUnit).Methods("GET")

	// Learning engine
	protected.HandleFunc("/units/{id:[0-9]+}/progress", learningHandler.GetProgress).Methods("GET")
	protected.HandleFunc("/units/{id:[0-9]+}/phase/{phase}/start", learningHandler.StartPhase).Methods("POST")
	protected.HandleFunc("/units/{id:[0-9]+}/diagnostic/answer", learningHandler.SubmitDiagnosticAnswer).Methods("POST")
	protected.HandleFunc("/units/{id:[0-9]+}/lecture/complete", learningHandler.CompleteLecture).Methods("POST")
	protected.HandleFunc("/units/{id:[0-9]+}/practice/answer", learningHandler.SubmitPracticeAnswer).Methods("POST")
	protected.HandleFunc("/units/{id:[0-9]+}/practice/next", learningHandler.NextPracticeQuestion).Methods("POST")
	protected.HandleFunc("/sessions/{id:[0-9]+}/end", learningHandler.EndSession).Methods("POST")

	// Dashboard
	protected.HandleFunc("/dashboard/stats", statsHandler.GetDashboardStats).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
