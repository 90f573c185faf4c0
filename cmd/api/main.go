package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"courtbook/internal/database"
	"courtbook/internal/middleware"
	"courtbook/internal/modules/auth"
	"courtbook/internal/modules/availability"
	"courtbook/internal/modules/booking"
	"courtbook/internal/modules/catalog"
	"courtbook/internal/modules/wizard"
	jwtsvc "courtbook/internal/pkg/jwt"
	"courtbook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "courtbook.db"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	venueRepo := repository.NewVenueRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(venueRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	availabilityService := availability.NewService(venueRepo, bookingRepo)
	availabilityHandler := availability.NewHandler(availabilityService)

	bookingService := booking.NewService(bookingRepo, venueRepo)
	bookingHandler := booking.NewHandler(bookingService)

	wizardService := wizard.NewService(wizard.NewStore(), venueRepo, availabilityService, bookingService)
	wizardHandler := wizard.NewHandler(wizardService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		catalogHandler.RegisterRoutes(v1)
		availabilityHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterRoutes(v1, protected)
			wizardHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
		}
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
