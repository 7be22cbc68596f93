package main

import (
	"log"
	"os"

	"tripmark/internal/database"
	"tripmark/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// Seeds a local database with a demo user and a few saved places.
// Intended for development only; it wipes existing rows.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "tripmark.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Favorite{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM users")

	log.Println("Creating demo user...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	demo := domain.User{
		Username:     "demo",
		PasswordHash: string(hash),
	}
	if err := db.Create(&demo).Error; err != nil {
		log.Fatal("Failed to create demo user:", err)
	}

	favorites := []domain.Favorite{
		{UserID: demo.ID, State: "California", PlaceName: "Yosemite National Park", Category: "parks"},
		{UserID: demo.ID, State: "California", PlaceName: "Santa Monica Beach", Category: "beaches"},
		{UserID: demo.ID, State: "New York", PlaceName: "The Metropolitan Museum of Art", Category: "museums"},
		{UserID: demo.ID, State: "Arizona", PlaceName: "Grand Canyon", Category: "all"},
	}
	for i := range favorites {
		if err := db.Create(&favorites[i]).Error; err != nil {
			log.Fatal("Failed to create favorite:", err)
		}
	}

	log.Printf("Seeded user %q (password demo1234) with %d favorites", demo.Username, len(favorites))
}
