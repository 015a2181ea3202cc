// Seed inserts a demo agent and VIP so a fresh database has someone to
// diagnose. Safe to re-run: existing rows are left alone.
package main

import (
	"context"
	"log"

	"bizbalance/internal/config"
	"bizbalance/internal/model"
	"bizbalance/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	db, err := repository.Open(cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepo(db)

	agent := &model.User{
		ID:        "agent-demo",
		Name:      "Demo Agent",
		Phone:     "010-0000-0001",
		Email:     "agent@example.com",
		Role:      model.RoleAgent,
		Specialty: "Small business coaching",
		Intro:     "Demo coach account",
	}
	vip := &model.User{
		ID:        "vip-demo",
		Name:      "Demo VIP",
		Phone:     "010-0000-0002",
		Email:     "vip@example.com",
		Role:      model.RoleVIP,
		CreatedBy: agent.ID,
	}

	for _, u := range []*model.User{agent, vip} {
		existing, err := users.GetByID(ctx, u.ID)
		if err != nil {
			log.Fatal("Seed lookup failed:", err)
		}
		if existing != nil {
			log.Printf("User %s already exists, skipping", u.ID)
			continue
		}
		if err := users.Create(ctx, u); err != nil {
			log.Fatal("Seed insert failed:", err)
		}
		log.Printf("Created %s user %s (%s)", u.Role, u.Name, u.ID)
	}

	log.Println("Seed complete")
}
