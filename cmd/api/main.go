package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/config"
	dbpkg "github.com/YigitSelcuk/appoinment-backend-sub000/internal/db"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/metrics"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/notify"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/realtime"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/reminder"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	metrics.MustRegister()

	rt := realtime.New(cfg.RedisAddr)
	defer rt.Close()

	// Real transports plug in here; the defaults only log.
	dispatcher := reminder.NewDispatcher(
		notify.LogEmailSender{},
		notify.LogSMSSender{},
		notify.LogInAppNotifier{},
		reminder.DispatcherOptions{},
	)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	engine := routes.RegisterRoutes(r, db, cfg, rt, dispatcher)
	go engine.Run(context.Background())

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
