package database

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/yourmove-ai/admin-dashboard/internal/pkg/env"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

var client *firestore.Client

// SetupDatabase initializes the Firestore client from the service account
// credentials file. The handle is process-wide; the repository factory takes
// it once at startup so everything downstream works against an injected
// client.
func SetupDatabase() {
	ctx := context.Background()

	credFile := env.GetEnv("FIREBASE_CREDENTIALS", "")
	if credFile == "" {
		log.Fatal("FIREBASE_CREDENTIALS environment variable not set")
	}

	conf := &firebase.Config{
		ProjectID: env.GetEnv("FIREBASE_PROJECT_ID", ""),
	}
	opt := option.WithCredentialsFile(credFile)

	var err error
	for i := 0; i < maxRetries; i++ {
		var app *firebase.App
		app, err = firebase.NewApp(ctx, conf, opt)
		if err == nil {
			client, err = app.Firestore(ctx)
			if err == nil {
				return
			}
		}

		log.Printf("Failed to connect to Firestore (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}

	if err != nil {
		panic(err)
	}
}

// GetDB returns the Firestore client instance
func GetDB() *firestore.Client {
	return client
}
