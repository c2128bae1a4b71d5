package configs

import (
	"context"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"
)

var (
	rtdb       *db.Client
	authClient *auth.Client
)

func Database() *db.Client { return rtdb }

func Auth() *auth.Client { return authClient }

// ConnectFirebase initialises the shared Realtime Database and Auth clients.
func ConnectFirebase(cfg *Config) {
	ctx := context.Background()

	app, err := firebase.NewApp(ctx,
		&firebase.Config{DatabaseURL: cfg.FirebaseDBURL},
		option.WithCredentialsFile(cfg.FirebaseCredFile),
	)
	if err != nil {
		log.Fatalf("firebase init failed: %v", err)
	}

	rtdb, err = app.Database(ctx)
	if err != nil {
		log.Fatalf("firebase database client failed: %v", err)
	}

	authClient, err = app.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase auth client failed: %v", err)
	}
}
