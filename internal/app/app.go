package app

import (
	"os"
	"strconv"
	"time"

	"go-booking/internal/account"
	"go-booking/internal/mailer"
	"go-booking/internal/middleware"
	"go-booking/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp menyiapkan koneksi infrastruktur dan mendaftarkan semua modul
// ke router.
func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	mail := buildMailer()
	tokens := account.NewJWTIssuer(os.Getenv("JWT_SECRET"), tokenTTLFromEnv())

	router.Use(middleware.RequestID())

	return registerModules(router, sqlDB, gormDB, redisClient, mail, tokens)
}

func buildMailer() mailer.Dispatcher {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return mailer.NewNoopDispatcher()
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	return mailer.NewSMTPDispatcher(mailer.SMTPConfig{
		Host:     host,
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	})
}

func tokenTTLFromEnv() time.Duration {
	minutes, err := strconv.Atoi(os.Getenv("JWT_TTL_MINUTES"))
	if err != nil || minutes <= 0 {
		return 0 // pakai default issuer
	}
	return time.Duration(minutes) * time.Minute
}
