package main

import (
	"fmt"
	"net/http"
	"time"

	"blog-restful/auth"
	"blog-restful/config"
	"blog-restful/controllers"
	"blog-restful/database"
	"blog-restful/metrics"
	"blog-restful/repositories"
	"blog-restful/services"
	"blog-restful/storage"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"
	"go.uber.org/zap"
)

// RequestLogger logs every request after it completed.
func RequestLogger(logger *zap.Logger) restful.FilterFunction {
	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		startTime := time.Now()

		chain.ProcessFilter(req, resp)

		logger.Info("Request",
			zap.String("client_ip", req.Request.RemoteAddr),
			zap.String("method", req.Request.Method),
			zap.Int("status_code", resp.StatusCode()),
			zap.Duration("latency", time.Since(startTime)),
			zap.String("user_agent", req.Request.UserAgent()),
			zap.String("path", req.Request.URL.Path),
		)
	}
}

func main() {
	// Initialize configs
	config.InitConfig()

	var logger *zap.Logger
	switch config.AppConfig.LogLevel {
	case "debug":
		logger, _ = zap.NewDevelopment()
	default:
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync() // Make sure the buffer is flushed before the program exits

	auth.SetSigningKey([]byte(config.AppConfig.JwtSecret))

	db, err := database.New(config.AppConfig)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}

	store, err := storage.NewDisk(config.AppConfig.UploadDir)
	if err != nil {
		logger.Fatal("Failed to prepare upload directory", zap.Error(err))
	}

	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userRepo)
	articleService := services.NewArticleService(articleRepo, userRepo)
	commentService := services.NewCommentService(commentRepo, userRepo, articleRepo)

	container := restful.NewContainer()
	container.Filter(RequestLogger(logger))
	container.Filter(metrics.Filter())

	routed := []interface {
		RegisterRoutes(ws *restful.WebService)
	}{
		controllers.NewAuthController(authService),
		controllers.NewUserController(userService),
		controllers.NewArticleController(articleService, store),
		controllers.NewCommentController(commentService),
		controllers.NewImageController(store),
	}
	for _, ctl := range routed {
		ws := new(restful.WebService)
		ctl.RegisterRoutes(ws)
		container.Add(ws)
	}

	container.Add(restfulspec.NewOpenAPIService(restfulspec.Config{
		WebServices: container.RegisteredWebServices(),
		APIPath:     "/apidocs.json",
	}))

	mux := http.NewServeMux()
	mux.Handle(storage.PublicPrefix, http.StripPrefix(storage.PublicPrefix, http.FileServer(http.Dir(store.Dir()))))
	mux.Handle("/metrics", metrics.Handler())
	mux.Handle("/", container)

	addr := fmt.Sprintf(":%d", config.AppConfig.HTTPPort)
	logger.Info("HTTP server listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
