package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/fitweek/backend/internal/models"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	password := "testpassword123"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	testUsers := []struct {
		firstName string
		lastName  string
		email     string
		profile   models.UserProfile
	}{
		{
			firstName: "John",
			lastName:  "Doe",
			email:     "john.doe@example.com",
			profile: models.UserProfile{
				Age: 28, Sex: "male", HeightCM: 180, WeightKG: 82,
				ActivityLevel: "moderate", Goal: "muscle_gain",
				DietType: "nonveg", FavProtein: "chicken", ExperienceLevel: "beginner",
			},
		},
		{
			firstName: "Jane",
			lastName:  "Smith",
			email:     "jane.smith@example.com",
			profile: models.UserProfile{
				Age: 34, Sex: "female", HeightCM: 165, WeightKG: 64,
				ActivityLevel: "light", Goal: "fat_loss",
				DietType: "veg", ExperienceLevel: "beginner",
			},
		},
		{
			firstName: "Sam",
			lastName:  "Onboarding",
			email:     "sam.onboarding@example.com",
			// Empty profile: exercises the calculator's fallbacks.
			profile: models.UserProfile{},
		},
	}

	for _, tu := range testUsers {
		var existing models.User
		err := db.Where("email = ?", tu.email).First(&existing).Error
		if err == nil {
			fmt.Printf("User already exists: %s\n", tu.email)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to look up user %s: %v", tu.email, err)
		}

		user := models.User{
			FirstName:    tu.firstName,
			LastName:     tu.lastName,
			Email:        tu.email,
			PasswordHash: string(hashed),
		}
		profile := tu.profile
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			profile.UserID = user.ID
			return tx.Create(&profile).Error
		})
		if err != nil {
			log.Fatalf("Failed to create user %s: %v", tu.email, err)
		}
		fmt.Printf("Created user: %s (password: %s)\n", tu.email, password)
	}
}
