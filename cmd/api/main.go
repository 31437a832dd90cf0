package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "loan-pricing-approval/internal/adapter/http"
	"loan-pricing-approval/internal/adapter/middleware"
	"loan-pricing-approval/internal/adapter/repository/mysql"
	"loan-pricing-approval/internal/config"
	loanDomain "loan-pricing-approval/internal/domain/loan"
	userDomain "loan-pricing-approval/internal/domain/user"
	"loan-pricing-approval/internal/infrastructure/cache"
	"loan-pricing-approval/internal/infrastructure/db"
	loanUC "loan-pricing-approval/internal/usecase/loan"
	userUC "loan-pricing-approval/internal/usecase/user"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(&loanDomain.Loan{}, &userDomain.User{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	loanRepo := mysql.NewLoanRepository(gdb)
	userRepo := mysql.NewUserRepository(gdb)

	loans := loanUC.NewUsecase(loanRepo)
	users := userUC.NewUsecase(userRepo, cfg.JWTSecret, cfg.AccessTTLMin, cfg.BcryptCost)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := users.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		cancel()
		log.Fatalf("bootstrap admin: %v", err)
	}
	cancel()

	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(users)
	loanH := httpadp.NewLoanHandler(loans)
	adminLoanH := httpadp.NewAdminLoanHandler(loans)
	adminUserH := httpadp.NewAdminUserHandler(users)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	jwtAuth := middleware.JWTAuth(cfg.JWTSecret)
	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	adminOnly := middleware.RequireRole(string(userDomain.RoleAdmin))

	auth := e.Group("/api/auth")
	auth.POST("/login", authH.Login)
	auth.GET("/me", authH.Me, jwtAuth)

	loansG := e.Group("/api/loans", jwtAuth, idemp)
	loansG.POST("", loanH.Create)
	loansG.GET("", loanH.List)
	loansG.GET("/:id", loanH.Get)
	loansG.PUT("/:id", loanH.Update)
	loansG.PATCH("/:id/status", loanH.ChangeStatus)

	adminLoans := e.Group("/api/admin/loans", jwtAuth, adminOnly, idemp)
	adminLoans.GET("", adminLoanH.List)
	adminLoans.PATCH("/:id/status", adminLoanH.ChangeStatus)
	adminLoans.DELETE("/:id", adminLoanH.Delete)

	adminUsers := e.Group("/api/admin/users", jwtAuth, adminOnly)
	adminUsers.GET("", adminUserH.List)
	adminUsers.POST("", adminUserH.Create)
	adminUsers.PUT("/:id/status", adminUserH.SetActive)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
