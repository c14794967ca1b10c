package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/camden-git/awardsapi/config"
	"github.com/camden-git/awardsapi/database"
	"github.com/camden-git/awardsapi/handlers"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Info: No .env file found or error loading: %v", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Using database: %s", cfg.DatabasePath)

	r := chi.NewRouter()

	corsOptions := cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}

	corsHandler := cors.New(corsOptions)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsHandler.Handler)

	awardHandler := &handlers.AwardHandler{DB: db}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `{"service":"awards-api","routes":["/awards","/awards/category/{category}","/awards/imdb/{imdb}","/awards/tmdb/{tmdb}","/awards/title/{title}","/awards/person/{person}"]}`)
	})

	r.Route("/awards", func(r chi.Router) {
		r.Get("/", awardHandler.ListAwards)
		r.Get("/category/{category}", awardHandler.GetByCategory)
		r.Get("/imdb/{imdb}", awardHandler.GetByIMDB)
		r.Get("/tmdb/{tmdb}", awardHandler.GetByTMDB)
		r.Get("/title/{title}", awardHandler.GetByTitle)
		r.Get("/person/{person}", awardHandler.GetByPerson)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	serverAddr := ":" + port
	fmt.Printf("Server starting on http://localhost:%s\n", port)
	log.Printf("Server listening on %s", serverAddr)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}
