package httpserver

import (
	alertHTTP "ujenzi-notify/internal/alert/delivery/http"
	alertPostgre "ujenzi-notify/internal/alert/repository/postgre"
	alertUC "ujenzi-notify/internal/alert/usecase"
	deliverylogHTTP "ujenzi-notify/internal/deliverylog/delivery/http"
	deliverylogPostgre "ujenzi-notify/internal/deliverylog/repository/postgre"
	deliverylogUC "ujenzi-notify/internal/deliverylog/usecase"
	"ujenzi-notify/internal/middleware"
	projectHTTP "ujenzi-notify/internal/project/delivery/http"
	projectPostgre "ujenzi-notify/internal/project/repository/postgre"
	projectUC "ujenzi-notify/internal/project/usecase"
	relayHTTP "ujenzi-notify/internal/relay/delivery/http"
	relayUC "ujenzi-notify/internal/relay/usecase"

	// Registers the generated Swagger spec.
	_ "ujenzi-notify/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	api         = "/api/v1"
	internalAPI = "/internal/api/v1"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discordClient))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	mw := middleware.New(srv.l, srv.jwtManager, srv.cfg.InternalKey)

	// Repositories
	projectRepo := projectPostgre.New(srv.l, srv.db)
	alertRepo := alertPostgre.New(srv.l, srv.db)
	deliverylogRepo := deliverylogPostgre.New(srv.l, srv.db)

	// Use cases
	projectUseCase := projectUC.New(srv.l, projectRepo)
	alertUseCase := alertUC.New(srv.l, alertRepo, projectRepo, deliverylogRepo,
		srv.smsClient, srv.discordClient, srv.archive)
	deliverylogUseCase := deliverylogUC.New(srv.l, deliverylogRepo)
	relayUseCase := relayUC.New(srv.l, deliverylogRepo, srv.smsClient)

	// Handlers
	projectHandler := projectHTTP.New(srv.l, projectUseCase)
	alertHandler := alertHTTP.New(srv.l, alertUseCase)
	deliverylogHandler := deliverylogHTTP.New(srv.l, deliverylogUseCase)
	relayHandler := relayHTTP.New(srv.l, relayUseCase)

	apiGroup := srv.gin.Group(api)
	projectHTTP.MapRoutes(apiGroup.Group("/projects"), mw, projectHandler)
	alertHTTP.MapRoutes(apiGroup.Group("/alerts"), mw, alertHandler)
	alertHTTP.MapUpdateRoutes(apiGroup.Group("/updates"), mw, alertHandler)
	deliverylogHTTP.MapRoutes(apiGroup.Group("/delivery-logs"), mw, deliverylogHandler)

	internalGroup := srv.gin.Group(internalAPI)
	relayHTTP.MapRoutes(internalGroup.Group("/sms"), mw, relayHandler)

	return nil
}
