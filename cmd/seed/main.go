package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"courtbook/internal/database"
	"courtbook/internal/domain"
	"courtbook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "courtbook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup in FK-safe order.
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM courts")
	db.Exec("DELETE FROM venues")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	users := []domain.User{
		{
			ID:         "u1",
			Email:      "joao@example.com",
			Name:       "João Silva",
			Phone:      "(11) 99999-0001",
			SkillLevel: domain.SkillIntermediate,
			Rating:     4.5,
			Role:       domain.RolePlayer,
		},
		{
			ID:         "o1",
			Email:      "admin@arena.com",
			Name:       "Carlos Arena",
			Phone:      "(21) 98888-1234",
			SkillLevel: domain.SkillAdvanced,
			Rating:     5.0,
			Role:       domain.RoleOwner,
		},
		{
			ID:     "o2",
			Email:  "owner@parque.com",
			Name:   "Parque Ibirapuera Admin",
			Role:   domain.RoleOwner,
			Rating: 4.0,
		},
	}
	for i := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		users[i].PasswordHash = string(hash)
		if err := db.Create(&users[i]).Error; err != nil {
			log.Fatal("seed user:", err)
		}
		log.Printf("User created: %s / demo1234", users[i].Email)
	}

	log.Println("Creating venues...")
	venues := []domain.Venue{
		{
			ID:           "v1",
			OwnerID:      "o1",
			Name:         "Arena Copacabana",
			Address:      "Av. Atlântica, Rio de Janeiro",
			Rating:       4.8,
			Sports:       []string{domain.SportFootball, domain.SportBeachVolleyball, domain.SportBeachTennis},
			PricePerHour: 150,
			DistanceKm:   2.5,
			Courts: []domain.Court{
				{ID: "c1", Name: "Quadra 1 (Areia)", Sport: domain.SportBeachVolleyball},
				{ID: "c2", Name: "Quadra 2 (Sintético)", Sport: domain.SportFootball},
				{ID: "c3", Name: "Quadra 3 (Sintético)", Sport: domain.SportFootball},
				{ID: "c8", Name: "Arena Beach Tennis", Sport: domain.SportBeachTennis},
			},
		},
		{
			ID:           "v2",
			OwnerID:      "o1",
			Name:         "São Paulo Tennis Club",
			Address:      "Jardins, São Paulo",
			Rating:       4.9,
			Sports:       []string{domain.SportTennis, domain.SportBadminton},
			PricePerHour: 200,
			DistanceKm:   5.0,
			Courts: []domain.Court{
				{ID: "c4", Name: "Quadra Central (Saibro)", Sport: domain.SportTennis},
				{ID: "c5", Name: "Quadra Coberta", Sport: domain.SportTennis},
				{ID: "c9", Name: "Quadra Badminton 1", Sport: domain.SportBadminton},
			},
		},
		{
			ID:           "v3",
			OwnerID:      "o2",
			Name:         "Parque Ibirapuera Courts",
			Address:      "Vila Mariana, São Paulo",
			Rating:       4.2,
			Sports:       []string{domain.SportBasketball, domain.SportFootball, domain.SportVolleyball},
			PricePerHour: 80,
			DistanceKm:   1.2,
			Courts: []domain.Court{
				{ID: "c6", Name: "Quadra Externa 1", Sport: domain.SportBasketball},
				{ID: "c7", Name: "Quadra Externa 2", Sport: domain.SportFootball},
				{ID: "c10", Name: "Quadra Poliesportiva", Sport: domain.SportVolleyball},
			},
		},
	}
	for i := range venues {
		if err := db.Create(&venues[i]).Error; err != nil {
			log.Fatal("seed venue:", err)
		}
	}

	log.Println("Creating bookings...")
	today := time.Now()
	date := func(days int) string { return today.AddDate(0, 0, days).Format("2006-01-02") }
	bookings := []domain.Booking{
		{
			ID:        "b1",
			VenueID:   "v1",
			VenueName: "Arena Copacabana",
			CourtID:   "c2",
			CourtName: "Quadra 2 (Sintético)",
			Sport:     domain.SportFootball,
			UserID:    "u1",
			Date:      date(-1),
			StartTime: "19:00", EndTime: "20:00", DurationHours: 1.0,
			Price:  150,
			Status: domain.BookingConfirmed,
		},
		{
			ID:        "b2",
			VenueID:   "v1",
			VenueName: "Arena Copacabana",
			CourtID:   "c1",
			CourtName: "Quadra 1 (Areia)",
			Sport:     domain.SportBeachVolleyball,
			UserID:    "u1",
			Date:      date(1),
			StartTime: "18:00", EndTime: "19:00", DurationHours: 1.0,
			Price:  150,
			Status: domain.BookingPending,
		},
		{
			ID:        "b3",
			VenueID:   "v1",
			VenueName: "Arena Copacabana",
			CourtID:   "c3",
			CourtName: "Quadra 3 (Sintético)",
			Sport:     domain.SportFootball,
			UserID:    "u1",
			Date:      date(2),
			StartTime: "20:00", EndTime: "21:00", DurationHours: 1.0,
			Price:  150,
			Status: domain.BookingPending,
		},
	}
	for i := range bookings {
		if err := db.Create(&bookings[i]).Error; err != nil {
			log.Fatal("seed booking:", err)
		}
	}

	log.Println("Seed complete.")
}
