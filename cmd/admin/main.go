package main

import (
	"context"
	"log"
	"net/http"

	"github.com/tmportfolio/admin-gateway/config"
	"github.com/tmportfolio/admin-gateway/internal/auth"
	"github.com/tmportfolio/admin-gateway/internal/bootstrap"
	"github.com/tmportfolio/admin-gateway/internal/portfolio"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	redisClient, err := bootstrap.OpenRedis(context.Background(), bootstrap.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer redisClient.Close()

	client := portfolio.NewClient(cfg.Backend.BaseURL)
	sessions := auth.NewStore(redisClient, cfg.Session.TTL)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    "portfolio-admin-gateway",
		Version:        cfg.App.Version,
		Client:         client,
		Sessions:       sessions,
		CookieName:     cfg.Session.CookieName,
		CookieTTLSecs:  int(cfg.Session.TTL.Seconds()),
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	log.Printf("admin gateway listening on %s (backend %s)", cfg.Server.Addr, cfg.Backend.BaseURL)
	if err := http.ListenAndServe(cfg.Server.Addr, r); err != nil {
		log.Fatal(err)
	}
}
