package main

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"corpsite/internal/config"
	"corpsite/internal/domain/company"
	"corpsite/internal/domain/user"
	"corpsite/internal/store"
)

// Seeds the initial admin account, the company profile singleton and the
// page documents. Safe to re-run: existing documents are merged, an existing
// admin email is left alone.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.ProjectID == "" {
		log.Fatal("GOOGLE_PROJECT_ID is empty, nothing to seed")
	}

	ctx := context.Background()

	client, err := store.NewFirestoreClient(ctx, cfg.ProjectID)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()
	st := store.NewFirestore(client)

	// ================== ADMIN USER ==================
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	userRepo := user.NewRepository(st)
	existing, err := userRepo.GetByEmail(ctx, email)
	if err != nil {
		log.Fatal(err)
	}
	if existing != nil {
		log.Printf("admin %s already exists, skipping", email)
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := userRepo.Create(ctx, &user.User{
			Name:         "Administrator",
			Email:        email,
			Role:         user.RoleAdmin,
			PasswordHash: string(hash),
		}); err != nil {
			log.Fatal(err)
		}
		log.Printf("admin created: %s", email)
	}

	// ================== COMPANY PROFILE ==================
	companyRepo := company.NewRepository(st)
	profile, err := companyRepo.GetProfile(ctx)
	if err != nil {
		log.Fatal(err)
	}
	if profile != nil {
		log.Println("company profile already exists, skipping")
	} else {
		if err := companyRepo.SaveProfile(ctx, map[string]any{
			"name":         getenv("COMPANY_NAME", "Company"),
			"description":  "",
			"logo":         "",
			"email":        "",
			"mobile_phone": "",
			"address":      "",
			"facebook":     "",
			"instagram":    "",
			"tiktok":       "",
			"youtube":      "",
		}); err != nil {
			log.Fatal(err)
		}
		log.Println("company profile seeded")
	}

	// ================== PAGES ==================
	for name := range company.PageNames {
		page, err := companyRepo.GetPage(ctx, name)
		if err != nil {
			log.Fatal(err)
		}
		if page != nil {
			log.Printf("page %q already exists, skipping", name)
			continue
		}
		if err := companyRepo.SavePage(ctx, name, map[string]any{"title": name}); err != nil {
			log.Fatal(err)
		}
		log.Printf("page %q seeded", name)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
