package httpserver

import (
	"database/sql"
	"errors"

	"ujenzi-notify/pkg/discord"
	pkgLog "ujenzi-notify/pkg/log"
	"ujenzi-notify/pkg/minio"
	"ujenzi-notify/pkg/scope"
	"ujenzi-notify/pkg/sms"

	"github.com/gin-gonic/gin"
)

// Config holds the HTTP server settings.
type Config struct {
	Port        int
	Mode        string
	Environment string
	InternalKey string
}

// HTTPServer wires the service's HTTP surface. New only validates and
// stores dependencies; Run maps handlers and serves.
type HTTPServer struct {
	gin *gin.Engine
	l   pkgLog.Logger
	cfg Config

	db            *sql.DB
	jwtManager    scope.Manager
	smsClient     sms.ISMS
	discordClient discord.IDiscord
	archive       minio.IMinIO // nil when payload archiving is disabled
}

func New(
	l pkgLog.Logger,
	cfg Config,
	db *sql.DB,
	jwtManager scope.Manager,
	smsClient sms.ISMS,
	discordClient discord.IDiscord,
	archive minio.IMinIO,
) (*HTTPServer, error) {
	if db == nil {
		return nil, errors.New("database handle is required")
	}
	if jwtManager == nil {
		return nil, errors.New("jwt manager is required")
	}
	if smsClient == nil {
		return nil, errors.New("sms client is required")
	}
	if cfg.Port <= 0 {
		return nil, errors.New("port must be positive")
	}

	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	return &HTTPServer{
		gin:           gin.New(),
		l:             l,
		cfg:           cfg,
		db:            db,
		jwtManager:    jwtManager,
		smsClient:     smsClient,
		discordClient: discordClient,
		archive:       archive,
	}, nil
}
