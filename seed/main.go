package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/focusflow-app/focusflow_api/model"
	"github.com/focusflow-app/focusflow_api/seed/seeders"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var (
		seedType = flag.String("type", "all", "Type of seeding: all, habits, skills")
		help     = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		host := envOr("DB_HOST", "localhost")
		port := envOr("DB_PORT", "5432")
		user := envOr("DB_USER", "postgres")
		password := envOr("DB_PASSWORD", "postgres")
		dbname := envOr("DB_NAME", "focusflow")
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			host, user, password, dbname, port)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Habit{},
		&model.HabitEntry{},
		&model.Skill{},
		&model.SkillSession{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	mainSeeder := seeders.NewMainSeeder(db)

	switch *seedType {
	case "all":
		log.Println("Running complete database seeding...")
		if err := mainSeeder.SeedAll(); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	case "habits":
		log.Println("Seeding habits only...")
		if err := mainSeeder.SeedHabitsOnly(); err != nil {
			log.Fatalf("Failed to seed habits: %v", err)
		}
	case "skills":
		log.Println("Seeding skills only...")
		if err := mainSeeder.SeedSkillsOnly(); err != nil {
			log.Fatalf("Failed to seed skills: %v", err)
		}
	default:
		log.Fatalf("Unknown seed type: %s. Use 'all', 'habits', or 'skills'", *seedType)
	}

	log.Println("Seeding operation completed successfully!")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func showHelp() {
	log.Println(`
Database Seeding Tool for FocusFlow

Usage: go run seed/main.go [flags]

Flags:
  -type string
        Type of seeding to perform (default "all")
        Options: all, habits, skills
  -help
        Show this help message

The seeder creates a demo account (demo@focusflow.app / demo1234) with
habits, entries, skills and practice sessions spanning the last month.

Environment Variables:
  DATABASE_URL - Full postgres DSN (overrides DB_* variables)
  DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME`)
}
