package main

import (
	"context"
	"strings"
	"time"

	"ticketing_admin/config"
	"ticketing_admin/database"
	"ticketing_admin/handler"
	"ticketing_admin/helper"
	"ticketing_admin/logging"
	"ticketing_admin/middleware"
	"ticketing_admin/notifier"
	"ticketing_admin/repository"
	"ticketing_admin/router"
	"ticketing_admin/service"
	"ticketing_admin/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	format := "console"
	if cfg.IsProduction() {
		format = "json"
	}
	logging.Setup(cfg.LogLevel, format)

	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.SeedData(ctx, db, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
		log.Fatal().Err(err).Msg("seed database")
	}
	cancel()

	var pub notifier.Publisher = notifier.Nop{}
	var feed notifier.Subscriber
	if cfg.RedisAddr != "" {
		rdb := notifier.NewRedisNotifier(redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}))
		pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(pingCtx); err != nil {
			log.Warn().Err(err).Msg("redis unreachable, change feed will retry per publish")
		}
		pingCancel()
		pub, feed = rdb, rdb
	} else {
		log.Info().Msg("REDIS_ADDR empty, change feed disabled")
	}

	var images helper.ImageStore
	if cfg.CloudinaryEnabled() {
		store, err := helper.NewCloudinaryStore(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			log.Fatal().Err(err).Msg("init cloudinary")
		}
		images = store
	}

	var mailer service.OrderMailer
	if m := utils.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom); m != nil {
		mailer = m
	}

	store := repository.NewStore(db)
	h := &handler.Handler{
		Lokasi:   service.NewLokasiService(store, pub),
		Kategori: service.NewKategoriService(store, pub),
		Event:    service.NewEventService(store, pub, images),
		Tiket:    service.NewTiketService(store, pub),
		Order:    service.NewOrderService(store, pub, mailer),
		Feed:     feed,
		DB:       db,
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(strings.Fields(strings.ReplaceAll(cfg.CORSOrigins, ",", " ")), ","),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		MaxAge:           600,
	}))

	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET empty, /admin is not protected")
	}
	router.SetupRoutes(app, h, cfg.JWTSecret)

	log.Info().Str("port", cfg.Port).Msg("admin api listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("listen")
	}
}
