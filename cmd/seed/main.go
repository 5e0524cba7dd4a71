package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pictgram/internal/config"
	"pictgram/internal/database"
	"pictgram/internal/domain"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (children first)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM topics")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	users := make([]domain.User, 0, 4)
	for _, name := range []string{"alice", "bob", "carol", "dave"} {
		u := domain.User{
			Email:        name + "@pictgram.local",
			Name:         name,
			PasswordHash: string(hash),
		}
		if err := db.Create(&u).Error; err != nil {
			log.Fatal("create user failed:", err)
		}
		users = append(users, u)
		log.Printf("User created: %s / password123", u.Email)
	}

	// ================== TOPICS ==================
	// Seeded topics carry no image so the feed renders with IMAGE_LOCAL on or off.
	log.Println("Creating topics...")
	topics := make([]domain.Topic, 0, 8)
	for i := 0; i < 8; i++ {
		author := users[i%len(users)]
		t := domain.Topic{
			UserID:      author.ID,
			Description: fmt.Sprintf("Snapshot #%d from %s", i+1, author.Name),
		}
		if err := db.Create(&t).Error; err != nil {
			log.Fatal("create topic failed:", err)
		}
		topics = append(topics, t)
	}

	// ================== FAVORITES ==================
	log.Println("Creating favorites...")
	created := 0
	for _, t := range topics {
		for _, u := range users {
			if rand.Intn(2) == 0 {
				continue
			}
			if addFavorite(db, t.ID, u.ID) {
				created++
			}
		}
	}

	log.Printf("Seed done: users=%d topics=%d favorites=%d", len(users), len(topics), created)
}

func addFavorite(db *gorm.DB, topicID, userID int64) bool {
	res := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&domain.Favorite{TopicID: topicID, UserID: userID})
	if res.Error != nil {
		log.Printf("favorite topic=%d user=%d failed: %v", topicID, userID, res.Error)
		return false
	}
	return res.RowsAffected > 0
}
