// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"fitgpt/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoPassword is the password every seeded user gets.
const DemoPassword = "password123"

var (
	categories = []string{
		"tops", "bottoms", "outerwear", "footwear", "dresses", "accessories",
	}

	garments = map[string][]string{
		"tops":        {"T-Shirt", "Blouse", "Henley", "Polo", "Sweater", "Tank Top", "Flannel Shirt"},
		"bottoms":     {"Jeans", "Chinos", "Shorts", "Joggers", "Skirt", "Cargo Pants"},
		"outerwear":   {"Denim Jacket", "Parka", "Trench Coat", "Blazer", "Bomber Jacket", "Raincoat"},
		"footwear":    {"Sneakers", "Loafers", "Boots", "Sandals", "Oxfords", "Running Shoes"},
		"dresses":     {"Sundress", "Maxi Dress", "Wrap Dress", "Shirt Dress"},
		"accessories": {"Scarf", "Belt", "Beanie", "Baseball Cap", "Tote Bag", "Sunglasses"},
	}

	bodyTypes          = []string{"unspecified", "slim", "athletic", "average", "curvy"}
	lifestyles         = []string{"casual", "active", "professional", "outdoor"}
	comfortPreferences = []string{"tight", "medium", "loose"}
)

// Options configuration for the seeder
type Options struct {
	NumUsers     int
	ItemsPerUser int
	ShouldClean  bool
	SkipBcrypt   bool
}

// Seeder builds domain entities and persists them to the database.
type Seeder struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:   db,
		opts: opts,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded rows. Wardrobe items go first so the user
// delete never trips the foreign key.
func (s *Seeder) ClearAll() error {
	if err := s.db.Exec("DELETE FROM clothing_items").Error; err != nil {
		return fmt.Errorf("clearing clothing items: %w", err)
	}
	if err := s.db.Exec("DELETE FROM users").Error; err != nil {
		return fmt.Errorf("clearing users: %w", err)
	}
	log.Println("🧹 Cleared existing data")
	return nil
}

// CreateUser constructs and persists a sample user with a complete style
// profile. Optional override functions may modify it before saving.
func (s *Seeder) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Email:              gofakeit.Email(),
		BodyType:           bodyTypes[s.rng.Intn(len(bodyTypes))],
		Lifestyle:          lifestyles[s.rng.Intn(len(lifestyles))],
		ComfortPreference:  comfortPreferences[s.rng.Intn(len(comfortPreferences))],
		IsActive:           true,
		OnboardingComplete: s.rng.Intn(4) > 0,
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if s.opts.SkipBcrypt {
		user.HashedPassword = DemoPassword
	} else {
		hashed, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
		if err != nil {
			return nil, err
		}
		user.HashedPassword = string(hashed)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return user, nil
}

// CreateClothingItem constructs and persists a wardrobe item for the user.
func (s *Seeder) CreateClothingItem(owner *models.User, overrides ...func(*models.ClothingItem)) (*models.ClothingItem, error) {
	category := categories[s.rng.Intn(len(categories))]
	names := garments[category]

	item := &models.ClothingItem{
		Name:     names[s.rng.Intn(len(names))],
		Category: category,
		Color:    gofakeit.Color(),
		ImageURL: fmt.Sprintf("https://picsum.photos/seed/%s/400/400", gofakeit.UUID()),
		OwnerID:  owner.ID,
	}

	for _, override := range overrides {
		override(item)
	}

	if err := s.db.Create(item).Error; err != nil {
		return nil, fmt.Errorf("creating clothing item: %w", err)
	}
	return item, nil
}

// Seed populates the database with demo users and their wardrobes.
func (s *Seeder) Seed() error {
	log.Printf("🌱 Seeding %d users with up to %d items each...", s.opts.NumUsers, s.opts.ItemsPerUser)

	if s.opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	for i := 0; i < s.opts.NumUsers; i++ {
		user, err := s.CreateUser()
		if err != nil {
			return err
		}

		numItems := 1 + s.rng.Intn(s.opts.ItemsPerUser)
		for j := 0; j < numItems; j++ {
			if _, err := s.CreateClothingItem(user); err != nil {
				return err
			}
		}
	}

	log.Printf("✨ Seeded %d users", s.opts.NumUsers)
	return nil
}
