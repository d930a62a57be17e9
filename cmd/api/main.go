package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"socialnet/cmd/app"
	"socialnet/internal/config"
	handlers "socialnet/internal/handler"
	"socialnet/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET не установлен в .env файле")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	// периодическая чистка просроченных сессий
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			deleted, err := repo.Session.DeleteExpired(context.Background(), time.Now())
			if err != nil {
				log.Printf("Ошибка очистки сессий: %v", err)
				continue
			}
			if deleted > 0 {
				log.Printf("Удалено просроченных сессий: %d", deleted)
			}
		}
	}()

	handler := handlers.NewHandlers(services, cfg)

	r := mux.NewRouter()

	// setting up routes
	r.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/tables", handler.TablesHandler).Methods(http.MethodGet)

	r.HandleFunc("/signup", handler.Signup).Methods(http.MethodPost)
	r.HandleFunc("/signin", handler.Signin).Methods(http.MethodPost)
	r.HandleFunc("/logout", handler.Logout).Methods(http.MethodPost)

	r.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	r.HandleFunc("/posts", handler.GetPosts).Methods(http.MethodGet)
	r.HandleFunc("/posts/{id:[0-9]+}/like", handler.ToggleLike).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id:[0-9]+}", handler.UpdatePost).Methods(http.MethodPut)
	r.HandleFunc("/posts/{id:[0-9]+}", handler.DeletePost).Methods(http.MethodDelete)

	r.HandleFunc("/comments/{postId:[0-9]+}", handler.GetComments).Methods(http.MethodGet)
	r.HandleFunc("/comments", handler.CreateComment).Methods(http.MethodPost)

	r.HandleFunc("/users", handler.GetUsers).Methods(http.MethodGet)

	r.HandleFunc("/messages/{userId:[0-9]+}", handler.GetConversation).Methods(http.MethodGet)
	r.HandleFunc("/messages", handler.SendMessage).Methods(http.MethodPost)

	// раздача загруженных медиафайлов в локальном режиме
	if cfg.MediaStorage == "local" {
		r.PathPrefix("/" + cfg.UploadDir + "/").Handler(
			http.StripPrefix("/"+cfg.UploadDir+"/", http.FileServer(http.Dir(cfg.UploadDir))))
	}

	handlerChain := middleware.Chain(
		r,
		middleware.LoggingMiddleware,
		middleware.SessionMiddleware(services.Auth),
	)

	// SPA ходит с cookie, поэтому CORS с credentials и одним origin
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.ClientOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, c.Handler(handlerChain)); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
