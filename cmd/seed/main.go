package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"gorm.io/gorm"

	"resourcehub/internal/config"
	"resourcehub/internal/db"
	"resourcehub/internal/model"
	"resourcehub/internal/repository"
)

// Seeds a default admin plus demo provider data so a fresh deployment is
// usable immediately. Safe to run repeatedly: users are matched by email.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Profile{}, &model.Resource{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	resourceRepo := repository.NewResourceRepository(gormDB)
	ctx := context.Background()

	admin, err := ensureUser(ctx, userRepo, seedUser{
		email:    getEnv("SEED_ADMIN_EMAIL", "admin@resourcehub.local"),
		name:     "Administrator",
		password: getEnv("SEED_ADMIN_PASSWORD", "ChangeMe123"),
		role:     model.RoleAdmin,
	})
	if err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	log.Printf("Admin user ready: %s (id=%d)", admin.Email, admin.ID)

	provider, err := ensureUser(ctx, userRepo, seedUser{
		email:    "provider@resourcehub.local",
		name:     "Demo Provider",
		password: "Provider123",
		role:     model.RoleProvider,
	})
	if err != nil {
		log.Fatalf("Failed to seed provider: %v", err)
	}
	log.Printf("Provider user ready: %s (id=%d)", provider.Email, provider.ID)

	if _, err := ensureUser(ctx, userRepo, seedUser{
		email:    "user@resourcehub.local",
		name:     "Demo User",
		password: "Demouser123",
		role:     model.RoleUser,
	}); err != nil {
		log.Fatalf("Failed to seed demo user: %v", err)
	}

	created, err := seedResources(ctx, resourceRepo, provider.ID, admin.ID)
	if err != nil {
		log.Fatalf("Failed to seed resources: %v", err)
	}
	log.Printf("Seed completed successfully! New resources created: %d", created)
}

type seedUser struct {
	email    string
	name     string
	password string
	role     model.Role
}

// ensureUser finds a user by email or creates it with an empty profile.
func ensureUser(ctx context.Context, repo repository.UserRepository, spec seedUser) (*model.User, error) {
	existing, err := repo.FindByEmail(ctx, spec.email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &model.User{
		Email:   spec.email,
		Name:    spec.name,
		Role:    spec.role,
		Status:  model.StatusActive,
		Profile: &model.Profile{},
	}
	if err := user.SetPassword(spec.password); err != nil {
		return nil, err
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// seedResources publishes a sample resource per major category, already
// approved so the public directory is not empty on first boot.
func seedResources(ctx context.Context, repo repository.ResourceRepository, providerID, adminID uint) (int, error) {
	existing, err := repo.List(ctx, repository.ResourceFilter{ProviderID: &providerID})
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		log.Printf("Provider already has %d resources, skipping resource seed", len(existing))
		return 0, nil
	}

	samples := []model.Resource{
		{
			Title:       "Community Food Pantry",
			Description: "Free groceries every Saturday morning, no documentation required.",
			Category:    model.CategoryFood,
			Location:    "Springfield",
			City:        "Springfield",
			ContactName: "Pantry Desk",
		},
		{
			Title:        "Emergency Shelter Beds",
			Description:  "Overnight shelter with intake from 6pm, families welcome.",
			Category:     model.CategoryHousing,
			Location:     "Springfield",
			City:         "Springfield",
			Requirements: model.StringList{"photo ID if available"},
		},
		{
			Title:       "Free Health Clinic",
			Description: "Walk-in primary care and vaccinations on weekday afternoons.",
			Category:    model.CategoryHealthcare,
			Location:    "Springfield",
			City:        "Springfield",
		},
		{
			Title:       "Job Readiness Workshop",
			Description: "Resume help and interview practice, Tuesdays at the library.",
			Category:    model.CategoryEmployment,
			Location:    "Springfield",
			City:        "Springfield",
		},
	}

	now := time.Now()
	created := 0
	for i := range samples {
		resource := samples[i]
		resource.ProviderID = providerID
		resource.Status = model.ResourceStatusPending
		if err := repo.Create(ctx, &resource); err != nil {
			return created, err
		}
		if err := resource.Approve(adminID, now); err != nil {
			return created, err
		}
		if err := repo.Update(ctx, &resource); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
