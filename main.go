package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"signup-cards/pkg/api"
	"signup-cards/pkg/config"
	"signup-cards/pkg/middleware"
	"signup-cards/pkg/services"
	"signup-cards/pkg/tui"
)

const shutdownTimeout = 5 * time.Second

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	mode := flag.String("mode", cfg.AppMode, "presentation to run: http|tui")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch *mode {
	case config.ModeTUI:
		runTerminal(ctx)
	case config.ModeHTTP:
		runServer(ctx, cfg)
	default:
		log.Fatalf("Unknown mode %q", *mode)
	}
}

func runTerminal(ctx context.Context) {
	app := tui.NewApp(tui.NewSurveyDriver(), services.NewFormRecordStore())
	if err := app.Run(ctx); err != nil {
		log.Fatalf("Error running form: %v", err)
	}
}

func runServer(ctx context.Context, cfg *config.Config) {
	sessions := services.NewSessionRegistry(cfg.SessionIdleTimeout)
	go sessions.Run(ctx, cfg.SessionSweepEvery)

	gin.SetMode(cfg.GinMode)

	// Create a new Gin router with default middleware
	router := gin.Default()
	router.Use(middleware.CORS(cfg.CORSAllowOrigin))

	api.RegisterRoutes(router, api.NewHandlers(sessions))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := api.Serve(ctx, srv, shutdownTimeout); err != nil {
		log.Fatalf("%v", err)
	}
	log.Println("Server stopped")
}
