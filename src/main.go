package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Backend-NMIT-Records/docs"
	"Backend-NMIT-Records/src/config"
	"Backend-NMIT-Records/src/controllers"
	"Backend-NMIT-Records/src/database"
	"Backend-NMIT-Records/src/jobs"
	"Backend-NMIT-Records/src/logger"
	"Backend-NMIT-Records/src/middleware"
	"Backend-NMIT-Records/src/routes"
	"Backend-NMIT-Records/src/services/admins"
	"Backend-NMIT-Records/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// @title NMIT Records API
// @version 1.0
// @description Branches, classes and students with aggregation statistics.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

// run - error ทุกตัวกลับมาที่ main
func run() error {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	lg, err := logger.New(cfg.IsProduction())
	if err != nil {
		return fmt.Errorf("error creating logger: %w", err)
	}
	logger.SetDefault(lg)
	defer lg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// เชื่อมต่อกับ MongoDB
	store, err := database.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.ConnectTimeout)
	if err != nil {
		return fmt.Errorf("error connecting to the database: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := store.Disconnect(shutdownCtx); err != nil {
			lg.Error("MongoDB disconnect failed", "error", err)
		}
	}()

	if err := store.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("error creating indexes: %w", err)
	}
	if _, err := admins.CreateAdminUser(ctx, store, admins.DefaultAdminSeed(cfg.Admin.Password)); err != nil {
		return fmt.Errorf("error creating admin user: %w", err)
	}

	// Redis เป็น optional: ไม่มีก็ไม่มี blacklist และ job queue
	rdb, err := database.NewRedisClient(ctx, cfg.Redis.URI)
	if err != nil {
		lg.Warn("⚠️ Redis unavailable, running without token blacklist and job queue", "error", err)
		rdb = nil
	}
	asynqClient := database.NewAsynqClient(rdb)
	if asynqClient != nil {
		defer asynqClient.Close()
		go func() {
			if err := jobs.RunWorker(ctx, database.AsynqRedisOpt(rdb), store); err != nil {
				lg.Error("Asynq worker failed", "error", err)
			}
		}()
	}
	if rdb != nil {
		defer rdb.Close()
	}

	// สร้าง app instance
	app := fiber.New(fiber.Config{
		AppName:      "NMIT Records",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.AccessLog())

	// ✅ เปิดใช้งาน CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	docs.SwaggerInfo.BasePath = "/api/v1"
	app.Get("/swagger/*", swagger.HandlerDefault)

	ctl := controllers.New(store, cfg, utils.NewTokenBlacklist(rdb), asynqClient)
	routes.InitRoutes(app, ctl)

	go func() {
		<-ctx.Done()
		lg.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			lg.Error("Server shutdown failed", "error", err)
		}
	}()

	// เริ่มเซิร์ฟเวอร์
	lg.Info("Server is running", "port", cfg.Server.Port)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Server.Port)); err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}
