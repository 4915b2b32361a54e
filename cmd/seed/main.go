// Command main runs the database seeder for FitGPT.
package main

import (
	"flag"
	"log"

	"fitgpt/internal/config"
	"fitgpt/internal/database"
	"fitgpt/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 25, "Number of users to create")
	itemsPerUser := flag.Int("items", 8, "Maximum wardrobe items per user")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "Store plaintext passwords (dev fast mode)")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")

	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db, seed.Options{
		NumUsers:     *numUsers,
		ItemsPerUser: *itemsPerUser,
		ShouldClean:  *shouldClean,
		SkipBcrypt:   *skipBcrypt,
	})

	if err := s.Seed(); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with test data.")
	log.Printf("📧 All test users have the password: %s", seed.DemoPassword)
}
