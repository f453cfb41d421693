package router

import (
	"moneymap/internal/config"
	"moneymap/internal/handler"
	"moneymap/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and the API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	api := r.Group("/api")

	jwtSecret := cfg.JWT.Secret

	// no auth required
	authHandler := handler.NewAuthHandler(db, jwtSecret, cfg.JWT.ExpireHours, cfg.Security.BcryptCost)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/refdata/options", handler.Options)

	// signed-in only
	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(jwtSecret, db),
		middleware.AuditMiddleware(db, cfg.Security.EncryptKey),
	)

	protected.GET("/me", handler.GetMe)

	onboardingHandler := handler.NewOnboardingHandler(db)
	protected.GET("/onboarding/next", onboardingHandler.Next)
	protected.POST("/onboarding/financial_goal", onboardingHandler.SubmitFinancialGoal)
	protected.POST("/onboarding/profile_setup", onboardingHandler.SubmitProfileSetup)
	protected.POST("/onboarding/account_setup", onboardingHandler.SubmitAccountSetup)

	transactionHandler := handler.NewTransactionHandler(db, cfg.App.PageSize)
	protected.POST("/transactions", transactionHandler.Create)
	protected.GET("/transactions", transactionHandler.List)
	protected.DELETE("/transactions/:id", transactionHandler.Delete)

	accountHandler := handler.NewAccountHandler(db)
	protected.GET("/accounts", accountHandler.List)
	protected.PUT("/accounts/:id/saving_goal", accountHandler.UpdateSavingGoal)
	protected.GET("/categories", accountHandler.ListCategories)

	debtHandler := handler.NewDebtHandler(db)
	protected.POST("/debts", debtHandler.Create)
	protected.GET("/debts", debtHandler.List)
	protected.POST("/debts/:id/payments", debtHandler.AddPayment)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/export/csv", exportHandler.CSV)
	protected.GET("/export/xlsx", exportHandler.XLSX)

	backupHandler := handler.NewBackupHandler(db, cfg.Backup.Dir)
	protected.POST("/backups", backupHandler.Create)
	protected.GET("/backups", backupHandler.List)
	protected.GET("/backups/:id/download", backupHandler.Download)

	protected.POST("/profile", handler.UpdateProfile(db))
	protected.POST("/profile/password", handler.ChangePassword(db))

	logHandler := handler.NewLogHandler(db, cfg.Security.EncryptKey)
	protected.GET("/logs", logHandler.List)

	return r
}
