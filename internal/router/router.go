package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"wealthwise/config"
	"wealthwise/internal/handler"
	"wealthwise/internal/middleware"
	"wealthwise/internal/repository"
	"wealthwise/internal/service"
	"wealthwise/internal/ws"
	"wealthwise/pkg/mailer"
)

func Setup(cfg *config.Config, db *gorm.DB, mail mailer.Mailer) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	clientRepo := repository.NewClientRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	balanceRepo := repository.NewBalanceRepository(db)
	txRepo := repository.NewTransactionRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)

	refreshHub := ws.NewHub()

	// Services
	authSvc := service.NewAuthService(cfg, clientRepo, tokenRepo, mail)
	campaignSvc := service.NewCampaignService(campaignRepo, txRepo, refreshHub)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	meHandler := handler.NewMeHandler(clientRepo, balanceRepo, txRepo, campaignRepo, campaignSvc)
	campaignHandler := handler.NewCampaignHandler(campaignRepo, campaignSvc)

	authMw := middleware.AuthRequired(&cfg.JWT)
	loginLimiter := middleware.NewInMemoryRateLimiter(5, 60*time.Second)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login-link", middleware.RateLimit(loginLimiter), authHandler.RequestLoginLink)
			authGroup.POST("/token", authHandler.ExchangeToken)
			authGroup.POST("/logout", authMw, authHandler.Logout)
		}

		me := api.Group("/me")
		me.Use(authMw)
		{
			me.GET("/profile", meHandler.GetProfile)
			me.GET("/balance", meHandler.GetBalance)
			me.GET("/balances", meHandler.ListBalances)
			me.GET("/transactions", meHandler.ListTransactions)
			me.GET("/dashboard", meHandler.GetDashboard)

			me.GET("/campaigns", campaignHandler.List)
			me.POST("/campaigns", campaignHandler.Create)
			me.GET("/campaigns/preview", campaignHandler.Preview)
			me.GET("/campaigns/:id/leads", campaignHandler.Leads)
			me.GET("/campaigns/:id/leads.csv", campaignHandler.LeadsCSV)
		}

		api.GET("/ws", ws.UpgradeRefreshWS(&cfg.JWT, refreshHub))
	}

	return r
}
