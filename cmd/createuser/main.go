package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"github.com/ShelcyG/todo-app/internal/config"
	"github.com/ShelcyG/todo-app/internal/db"
	"github.com/ShelcyG/todo-app/internal/repository"
	"github.com/ShelcyG/todo-app/internal/service"
)

// createuser registers an account from the command line and prints a token
// for it. Pointing it at an existing email just logs that account in.
func main() {
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	name := flag.String("name", "", "display name")
	flag.Parse()

	if *email == "" || *password == "" || *name == "" {
		log.Fatal("-email, -password and -name are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	service.InitJWT(cfg.JWTSecret)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer pool.Close()

	auth := service.NewAuthService(repository.NewUserRepository(pool))

	user, token, err := auth.Register(ctx, *email, *password, *name)
	if errors.Is(err, service.ErrEmailTaken) {
		log.Printf("user already exists, logging in")
		user, token, err = auth.Login(ctx, *email, *password)
	}
	if err != nil {
		log.Fatalf("create user: %v", err)
	}

	log.Printf("user id=%d email=%s", user.ID, user.Email)
	log.Printf("token=%s", token)
}
