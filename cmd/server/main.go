package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bizbalance/internal/battery"
	"bizbalance/internal/cache"
	"bizbalance/internal/config"
	"bizbalance/internal/docstore"
	"bizbalance/internal/oracle"
	"bizbalance/internal/repository"
	"bizbalance/internal/service"
	"bizbalance/internal/transport/rest"
	"bizbalance/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Oracle config
	oracleCfg := config.DefaultOracleConfig()
	log.Printf("Oracle Config:")
	log.Printf("  Model:   %s", oracleCfg.Model)
	var o oracle.Oracle
	if oracleCfg.IsEnabled() {
		log.Println("  API Key: configured ✓")
		o = oracle.NewClient(oracleCfg)
	} else {
		log.Println("  API Key: NOT SET (using mock oracle)")
		o = oracle.NewMock()
	}

	// Primary relational store
	db, err := repository.Open(cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}

	// Optional MongoDB fallback tier
	var archive docstore.HealthArchive
	if cfg.Mongo.URI != "" {
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
		if err != nil {
			log.Fatal("Failed to connect to MongoDB:", err)
		}
		defer mongoClient.Disconnect(ctx)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := mongoClient.Ping(pingCtx, nil); err != nil {
			log.Fatal("Failed to ping MongoDB:", err)
		}
		log.Println("Connected to MongoDB (fallback tier enabled)")

		archive = docstore.NewHealthArchive(mongoClient.Database(cfg.Mongo.Database))
	} else {
		log.Println("MONGO_URI not set, fallback persistence tier disabled")
	}

	// Redis connection
	redisAddr := cfg.Redis.Addr
	if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
		redisAddr = redisAddr[8:]
	}
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Question battery
	bat, err := battery.Load(cfg.Battery.Path)
	if err != nil {
		log.Fatal("Failed to load question battery:", err)
	}
	log.Printf("Loaded question battery (%d questions)", bat.Len())

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	questRepo := repository.NewQuestRepo(db)
	healthRepo := repository.NewHealthRepo(db)
	notificationRepo := repository.NewNotificationRepo(db)

	// Initialize caches
	sessionCache := cache.NewDiagnosisSessionCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService()
	healthStore := service.NewHealthStore(healthRepo, archive)
	diagnosisSvc := service.NewDiagnosisService(userRepo, sessionCache, healthStore, bat)
	questSvc := service.NewQuestService(questRepo, userRepo, notificationRepo, healthStore, o)

	// Inject broadcaster (wsHub implements service.Notifier)
	diagnosisSvc.SetNotifier(wsHub)
	questSvc.SetNotifier(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:      authSvc,
		DiagnosisService: diagnosisSvc,
		QuestService:     questSvc,
		WSHub:            wsHub,
	}

	router := rest.NewRouter(container)

	port := cfg.Server.Port

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", port)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST /v1/auth/vips/{vipId}/token")
		log.Println("  POST /v1/diagnosis/start")
		log.Println("  GET  /v1/diagnosis/questions")
		log.Println("  POST /v1/diagnosis/answer")
		log.Println("  POST /v1/diagnosis/complete")
		log.Println("  POST /v1/quests/init")
		log.Println("  GET  /v1/vip/quests")
		log.Println("  GET  /v1/vip/quests/current")
		log.Println("  POST /v1/quests/{questId}/generate-checklist")
		log.Println("  POST /v1/quests/{questId}/evaluate")
		log.Println("  POST /v1/quests/{questId}/complete")
		log.Println("  GET  /v1/vip/dashboard/health")
		log.Println("  GET  /v1/vip/notifications")
		log.Println("  WS   /v1/ws/vips/{vipId}")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
