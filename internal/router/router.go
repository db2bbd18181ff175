package router

import (
	"strings"

	"github.com/fandyandika/hello-saas/internal/ai"
	"github.com/fandyandika/hello-saas/internal/config"
	"github.com/fandyandika/hello-saas/internal/handler"
	"github.com/fandyandika/hello-saas/internal/middleware"
	"github.com/fandyandika/hello-saas/internal/service"
	"github.com/fandyandika/hello-saas/internal/web"

	"github.com/gin-gonic/gin"
)

func Setup() *gin.Engine {
	r := gin.Default()

	cfg := config.Get()

	allowedOrigins := strings.Split(cfg.CORSAllowedOrigins, ",")
	if len(allowedOrigins) == 0 || allowedOrigins[0] == "" {
		allowedOrigins = []string{"*"}
	}

	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		allowed := false
		for _, o := range allowedOrigins {
			o = strings.TrimSpace(o)
			if o == "*" || o == origin {
				allowed = true
				break
			}
		}

		if allowed && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
		} else if allowedOrigins[0] == "*" {
			c.Header("Access-Control-Allow-Origin", "*")
		}

		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, PATCH, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Vary", "Origin")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	authLimiter := middleware.NewRateLimiter(cfg.RateLimitAuthRPS, 10)
	signupThrottle := service.NewSignupThrottle(cfg.SignupThrottleTTL)

	userService := service.NewUserService(signupThrottle)
	authHandler := handler.NewAuthHandler(userService)
	itemHandler := handler.NewItemHandler()
	exampleHandler := handler.NewExampleHandler()

	client := ai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAITimeout)
	gateway := ai.NewGateway(client, cfg.OpenAIAPIKey, cfg.OpenAIModel)
	aiHandler := handler.NewAIHandler(gateway, service.NewExampleService(), service.NewGenerationLogService())

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		auth := api.Group("/auth")
		auth.Use(authLimiter.RateLimitByIP())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.POST("/check-email", authHandler.CheckEmail)
			auth.POST("/reset-password", authHandler.ResetPassword)
			auth.POST("/reset-password/confirm", authHandler.ConfirmReset)
			auth.GET("/session", middleware.JWTAuthMiddleware(), authHandler.Session)
		}

		items := api.Group("/items")
		items.Use(middleware.JWTAuthMiddleware())
		{
			items.GET("", itemHandler.List)
			items.GET("/search", itemHandler.Search)
			items.POST("", itemHandler.Create)
			items.GET("/:id", itemHandler.Get)
			items.PUT("/:id", itemHandler.Update)
			items.DELETE("/:id", itemHandler.Delete)
		}

		examples := api.Group("/examples")
		examples.Use(middleware.JWTAuthMiddleware())
		{
			examples.GET("", exampleHandler.List)
			examples.POST("", exampleHandler.Create)
			examples.GET("/:id", exampleHandler.Get)
			examples.PUT("/:id", exampleHandler.Update)
			examples.DELETE("/:id", exampleHandler.Delete)
		}

		aiGroup := api.Group("/ai")
		aiGroup.Use(middleware.JWTAuthMiddleware())
		{
			aiGroup.POST("/generate", aiHandler.Generate)
			aiGroup.POST("/estimate", aiHandler.Estimate)
			aiGroup.GET("/usage", aiHandler.Usage)
			aiGroup.GET("/history", aiHandler.History)
		}
	}

	// Serve the embedded marketing page
	web.RegisterStaticRoutes(r)

	return r
}
