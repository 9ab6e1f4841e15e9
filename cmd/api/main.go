package main

import (
	"context"
	"log"

	"ujenzi-notify/config"
	minioConnect "ujenzi-notify/config/minio"
	postgreConnect "ujenzi-notify/config/postgre"
	"ujenzi-notify/internal/httpserver"
	"ujenzi-notify/pkg/discord"
	pkgLog "ujenzi-notify/pkg/log"
	pkgMinio "ujenzi-notify/pkg/minio"
	"ujenzi-notify/pkg/scope"
	"ujenzi-notify/pkg/sms"
)

// @title UjenziIQ Notification Service API
// @version 1.0
// @description Alert dispatch and SMS delivery service for construction project monitoring.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	l := pkgLog.Init(pkgLog.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	db, err := postgreConnect.Connect(ctx, cfg.Postgres)
	if err != nil {
		l.Fatalf(ctx, "cmd.api.main.postgre.Connect: %v", err)
	}
	defer func() {
		if err := postgreConnect.Disconnect(ctx, db); err != nil {
			l.Errorf(ctx, "cmd.api.main.postgre.Disconnect: %v", err)
		}
	}()

	smsClient, err := sms.New(l, sms.Config{
		Username: cfg.SMS.Username,
		APIKey:   cfg.SMS.APIKey,
		SenderID: cfg.SMS.SenderID,
		Endpoint: cfg.SMS.Endpoint,
		Timeout:  cfg.SMS.Timeout,
	})
	if err != nil {
		l.Fatalf(ctx, "cmd.api.main.sms.New: %v", err)
	}
	defer smsClient.Close()

	// Ops diagnostics webhook is optional.
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" && cfg.Discord.WebhookToken != "" {
		discordClient, err = discord.New(l, discord.DiscordWebhook{
			ID:    cfg.Discord.WebhookID,
			Token: cfg.Discord.WebhookToken,
		})
		if err != nil {
			l.Fatalf(ctx, "cmd.api.main.discord.New: %v", err)
		}
		defer discordClient.Close()
	}

	// Raw gateway payload archive is optional.
	var archive pkgMinio.IMinIO
	if cfg.MinIO.Enabled {
		minioClient, err := minioConnect.Connect(ctx, cfg.MinIO)
		if err != nil {
			l.Fatalf(ctx, "cmd.api.main.minio.Connect: %v", err)
		}
		archive, err = pkgMinio.New(l, minioClient, cfg.MinIO.Bucket)
		if err != nil {
			l.Fatalf(ctx, "cmd.api.main.minio.New: %v", err)
		}
	}

	jwtManager := scope.New(cfg.JWT.SecretKey)

	srv, err := httpserver.New(l, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		InternalKey: cfg.Internal.InternalKey,
	}, db, jwtManager, smsClient, discordClient, archive)
	if err != nil {
		l.Fatalf(ctx, "cmd.api.main.httpserver.New: %v", err)
	}

	if err := srv.Run(); err != nil {
		l.Fatalf(ctx, "cmd.api.main.httpserver.Run: %v", err)
	}
}
