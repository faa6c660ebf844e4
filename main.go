package main

import (
	"fmt"
	"net/http"
	"time"

	"tastebook/auth"
	"tastebook/config"
	"tastebook/controllers"
	"tastebook/database"
	"tastebook/repositories"
	"tastebook/services"

	restful "github.com/emicklei/go-restful/v3"
	"go.uber.org/zap"
)

// RequestLogger logs every request after it completes.
func RequestLogger(logger *zap.Logger) restful.FilterFunction {
	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		startTime := time.Now()

		chain.ProcessFilter(req, resp)

		logger.Info("Request",
			zap.String("client_ip", req.Request.RemoteAddr),
			zap.String("method", req.Request.Method),
			zap.String("path", req.Request.URL.Path),
			zap.Int("status_code", resp.StatusCode()),
			zap.Duration("latency", time.Since(startTime)),
			zap.String("user_agent", req.Request.UserAgent()),
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
	defer logger.Sync()

	auth.SetSigningKey([]byte(config.AppConfig.SessionSecret))
	sessionTTL := time.Duration(config.AppConfig.SessionTTLHours) * time.Hour

	db := database.InitDB()
	if config.AppConfig.SeedData {
		database.SeedInitialData(db)
	}

	userRepo := repositories.NewUserRepository(db)
	restaurantRepo := repositories.NewRestaurantRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)

	authService := services.NewAuthService(userRepo)
	restaurantService := services.NewRestaurantService(restaurantRepo)
	reviewService := services.NewReviewService(reviewRepo)

	authController := controllers.NewAuthController(authService, sessionTTL)
	restaurantController := controllers.NewRestaurantController(restaurantService)
	reviewController := controllers.NewReviewController(reviewService)

	container := restful.NewContainer()
	container.DoNotRecover(false)
	container.Filter(RequestLogger(logger))
	container.Filter(auth.CSRFFilter())

	authWS := new(restful.WebService)
	authController.RegisterRoutes(authWS)
	container.Add(authWS)

	// Restaurant and review routes share the /restaurants root path and
	// therefore the same WebService.
	restaurantWS := new(restful.WebService)
	restaurantController.RegisterRoutes(restaurantWS)
	reviewController.RegisterRoutes(restaurantWS)
	container.Add(restaurantWS)

	cors := restful.CrossOriginResourceSharing{
		AllowedHeaders: []string{"Content-Type", "Accept", auth.CSRFHeaderName},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		CookiesAllowed: true,
		Container:      container,
	}
	container.Filter(cors.Filter)
	container.Filter(container.OPTIONSFilter)

	addr := fmt.Sprintf(":%d", config.AppConfig.HTTPPort)
	logger.Info("Starting server", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, container); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
