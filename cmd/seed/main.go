package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/pammu-27/sparsha-backend/internal/database"
	"github.com/pammu-27/sparsha-backend/internal/domain/admin"
	"github.com/pammu-27/sparsha-backend/internal/domain/inquiry"
	"github.com/pammu-27/sparsha-backend/internal/domain/media"
	"github.com/pammu-27/sparsha-backend/internal/domain/testimonial"
)

func main() {
	_ = godotenv.Load()

	dsn := flag.String("db", envOr("DATABASE_URL", "gallery.db"), "database DSN")
	clean := flag.Bool("clean", true, "delete existing rows before seeding")
	hash := flag.String("hash", "", "print a bcrypt hash of this password for ADMIN_PASSWORD_HASH and exit")
	flag.Parse()

	if *hash != "" {
		h, err := admin.HashPassword(*hash)
		if err != nil {
			log.Fatal("hash failed: ", err)
		}
		fmt.Println(h)
		return
	}

	db, err := database.Connect(*dsn)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db, &media.Media{}, &testimonial.Testimonial{}, &inquiry.Inquiry{}); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	if *clean {
		log.Println("Cleaning old data...")
		for _, table := range []string{"inquiries", "testimonials", "media"} {
			if err := db.Exec("DELETE FROM " + table).Error; err != nil {
				log.Fatalf("clean %s: %v", table, err)
			}
		}
	}

	if err := seed(db); err != nil {
		log.Fatal(err)
	}
	log.Println("Seed completed")
}

func seed(db *gorm.DB) error {
	log.Println("Creating testimonials...")
	testimonials := []testimonial.Testimonial{
		{Name: "Anitha R.", Message: "The staircase railing came out exactly as drawn. Clean welds and on time."},
		{Name: "Prakash M.", Message: "Sliding gate has run smoothly through two monsoons now."},
		{Name: "Deepa & Kiran", Message: "Quick quote, fair price, and they cleaned up after installation."},
	}
	for i := range testimonials {
		// stagger timestamps so newest-first ordering is visible
		testimonials[i].CreatedAt = time.Now().Add(-time.Duration(len(testimonials)-i) * time.Hour)
	}
	if err := db.Create(&testimonials).Error; err != nil {
		return fmt.Errorf("create testimonials: %w", err)
	}

	log.Println("Creating inquiries...")
	inquiries := []inquiry.Inquiry{
		{Name: "Suresh", Phone: "+91 98450 11223", Message: "Need a quote for a balcony grill, about 12 ft."},
		{Name: "Meena", Phone: "+91 99000 44556", Message: "Can you fabricate a steel shed for a terrace?"},
	}
	if err := db.Create(&inquiries).Error; err != nil {
		return fmt.Errorf("create inquiries: %w", err)
	}

	return nil
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
