package app

import (
	"database/sql"

	"go-booking/internal/account"
	"go-booking/internal/booking"
	"go-booking/internal/education"
	"go-booking/internal/employee"
	"go-booking/internal/mailer"
	"go-booking/internal/messaging/kafka"
	"go-booking/internal/middleware"
	"go-booking/internal/role"
	"go-booking/internal/room"
	"go-booking/internal/shared/counter"
	"go-booking/internal/university"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	mail mailer.Dispatcher,
	tokens account.TokenIssuer,
) error {
	// --- Repositories ---
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	universityRepo := university.NewRepository(gormDB)
	educationRepo := education.NewRepository(gormDB)
	roleRepo := role.NewRepository(gormDB)
	roomRepo := room.NewRepository(gormDB)
	accountRepo := account.NewRepository(gormDB)
	accountRoleRepo := account.NewRoleRepository(gormDB)
	bookingRepo := booking.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	employeeService := employee.NewService(db, employeeRepo, counterRepo, rdb)
	universityService := university.NewService(universityRepo)
	educationService := education.NewService(educationRepo, employeeRepo, universityRepo)
	roleService := role.NewService(roleRepo)
	roomService := room.NewService(roomRepo, rdb)
	accountService := account.NewService(account.Deps{
		DB:           db,
		Accounts:     accountRepo,
		AccountRoles: accountRoleRepo,
		Roles:        roleRepo,
		Employees:    employeeRepo,
		Universities: universityRepo,
		Educations:   educationRepo,
		Counter:      counterRepo,
		Outbox:       outboxRepo,
		Mail:         mail,
		Tokens:       tokens,
	})
	bookingService := booking.NewService(db, bookingRepo, roomRepo, employeeRepo, outboxRepo)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	universityHandler := university.NewHandler(universityService)
	educationHandler := education.NewHandler(educationService)
	roleHandler := role.NewHandler(roleService)
	roomHandler := room.NewHandler(roomService)
	accountHandler := account.NewHandler(accountService)
	bookingHandler := booking.NewHandler(bookingService)

	// Endpoint auth anonim dibatasi per IP
	authLimiter := middleware.RateLimitByIP(rate.Limit(5), 10)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		account.RegisterRoutes(api, accountHandler, authLimiter)
		employee.RegisterRoutes(api, employeeHandler)
		university.RegisterRoutes(api, universityHandler)
		education.RegisterRoutes(api, educationHandler)
		role.RegisterRoutes(api, roleHandler)
		room.RegisterRoutes(api, roomHandler)
		booking.RegisterRoutes(api, bookingHandler)
	}

	return nil
}
