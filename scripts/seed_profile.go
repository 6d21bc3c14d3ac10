package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/asher09/me-api/adapters/persistence"
	"github.com/asher09/me-api/internal/domain/profile"
	"github.com/asher09/me-api/internal/domain/project"
	"github.com/asher09/me-api/pkg/logger"
)

func strPtr(s string) *string { return &s }

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

// Seeds one demo profile with projects, skills, education and work history.
// Safe to rerun: an existing profile with the seed email aborts the run.
func main() {
	fmt.Println("seeding demo profile...")

	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN is required")
	}

	if err := persistence.RunMigrations(dsn); err != nil {
		log.Fatalf("cannot run migrations: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()
	seedLogger := logger.NewZapLogger("development")
	profileRepo := persistence.NewPostgresProfileRepo(pool, seedLogger)

	created, err := profileRepo.Create(ctx, &profile.Profile{
		Name:         "Aman Sharma",
		Email:        "sharmaaman0202@gmail.com",
		LinkedinURL:  strPtr("https://www.linkedin.com/in/amannsharma/"),
		GithubURL:    strPtr("https://github.com/asher09"),
		PortfolioURL: strPtr("https://portfolio.com"),
	}, []project.Draft{
		{
			Title:       "Me-API Playground",
			Description: "A RESTful API and frontend to showcase my profile.",
			ProjectURL:  strPtr("http://weblink.com"),
			GithubURL:   strPtr("http://github.com/repo"),
			SkillNames:  []string{"React", "Node.js", "TypeScript"},
		},
		{
			Title:       "Blog Platform",
			Description: "A full-stack blog platform with authentication and markdown support.",
			ProjectURL:  strPtr("http://blogplatform.com"),
			GithubURL:   strPtr("http://github.com/blog-platform"),
			SkillNames:  []string{"Node.js", "Express", "MongoDB", "React", "Redux"},
		},
		{
			Title:       "DevOps Dashboard",
			Description: "A dashboard for monitoring and managing cloud infrastructure.",
			ProjectURL:  strPtr("http://devops-dashboard.com"),
			GithubURL:   strPtr("http://github.com/devops-dashboard"),
			SkillNames:  []string{"Docker", "Kubernetes", "AWS", "React"},
		},
		{
			Title:       "ML Image Classifier",
			Description: "A machine learning project for image classification using TensorFlow.",
			ProjectURL:  strPtr("http://ml-image-classifier.com"),
			GithubURL:   strPtr("http://github.com/ml-image-classifier"),
			SkillNames:  []string{"Python", "Machine Learning", "TensorFlow"},
		},
	})
	if err != nil {
		log.Fatalf("cannot seed profile: %v", err)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO education (profile_id, school, degree, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
	`, created.ID, "IIT Mandi", "B.Tech in Data Science and Engineering", time.Date(2021, time.August, 1, 0, 0, 0, 0, time.UTC), datePtr(2025, time.May, 31))
	if err != nil {
		log.Fatalf("cannot seed education: %v", err)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO work_experience (profile_id, company, position, description, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, NULL)
	`, created.ID, "Tech Corp", "Software Engineer", "Backend services and infrastructure.", time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		log.Fatalf("cannot seed work experience: %v", err)
	}

	fmt.Printf("seeded profile '%s' with id %d\n", created.Email, created.ID)
}
