package store

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"inkwell/internal/models"
)

// seedSecret is the account secret for the sample users.
const seedSecret = "password123"

func (s *Store) seed(ctx context.Context) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedSecret), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed credential: %w", err)
	}

	now := time.Now()
	sampleUsers := []models.User{
		{
			ID:               "1",
			Email:            "john@example.com",
			Username:         "johndoe",
			Name:             "John Doe",
			Bio:              "Software developer and writer passionate about technology",
			Followers:        []string{},
			Following:        []string{},
			CreatedAt:        now,
			CredentialSecret: string(hash),
		},
		{
			ID:               "2",
			Email:            "jane@example.com",
			Username:         "janesmith",
			Name:             "Jane Smith",
			Bio:              "Tech enthusiast and blogger",
			Followers:        []string{},
			Following:        []string{},
			CreatedAt:        now,
			CredentialSecret: string(hash),
		},
	}
	if err := s.users.SeedIfEmpty(ctx, sampleUsers); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	firstDate := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	secondDate := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)
	sampleArticles := []models.Article{
		{
			ID:          "1",
			Title:       "Getting Started with React Hooks",
			Content:     "<h2>Introduction</h2><p>React Hooks have revolutionized how we write React components...</p>",
			Excerpt:     "Learn the fundamentals of React Hooks and how they can improve your code.",
			AuthorID:    "1",
			Tags:        []string{"React", "JavaScript", "Web Development"},
			Claps:       45,
			Clappers:    []string{},
			Comments:    []models.Comment{},
			Published:   true,
			PublishedAt: &firstDate,
			CreatedAt:   firstDate,
			UpdatedAt:   firstDate,
			ReadTime:    5,
		},
		{
			ID:        "2",
			Title:     "The Future of Web Development",
			Content:   "<h2>Trends to Watch</h2><p>Web development is constantly evolving...</p>",
			Excerpt:   "Exploring the latest trends and technologies shaping web development.",
			AuthorID:  "1",
			Tags:      []string{"Web Development", "Technology", "Future"},
			Claps:     67,
			Clappers:  []string{},
			Comments:  []models.Comment{},
			Published: false,
			CreatedAt: secondDate,
			UpdatedAt: secondDate,
			ReadTime:  8,
		},
	}
	if err := s.articles.SeedIfEmpty(ctx, sampleArticles); err != nil {
		return fmt.Errorf("seed articles: %w", err)
	}
	return nil
}
