package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"

	"autoquotes/cmd/app"
	"autoquotes/internal/bot"
	"autoquotes/internal/catalog"
	"autoquotes/internal/config"
	handlers "autoquotes/internal/handler"
	"autoquotes/internal/middleware"
	"autoquotes/internal/service"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.Bot.Token == "" {
		log.Fatal("BOT_TOKEN не установлен в .env файле")
	}

	db, _, services, st := app.App(cfg)
	defer db.CloseDB()

	cat := catalog.New(cfg.CarsPath)

	tgBot, err := bot.NewBot(cfg, services, cat)
	if err != nil {
		log.Fatalf("Ошибка запуска бота: %v", err)
	}

	// уведомления уходят через бота
	services.Notify.Bind(tgBot)

	handler := handlers.NewHandlers(services, st, cat, db, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/cars", handler.GetCars).Methods(http.MethodGet)
	router.HandleFunc("/api/requests", handler.CreateRequest).Methods(http.MethodPost, http.MethodOptions)

	// мини-приложение
	router.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	handlerChain := middleware.Chain(
		router,
		middleware.MaxBodyMiddleware(cfg.MaxUploadSize),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go tgBot.Run(ctx)

	sweeper := service.NewSweeper(services.Request, cfg.SweepInterval)
	go sweeper.Run(ctx)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Сервер запущен на %s", addr)

	srv := &http.Server{Addr: addr, Handler: handlerChain}

	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
