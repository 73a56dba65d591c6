package main

import (
	"context"
	"time"

	"clinic-records-api/cmd/bootstrap"
	"clinic-records-api/internal/seeder"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.Connect()
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	err = seeder.New(app.DB, app.Log).Run(ctx)
	cancel()
	app.Close()

	if err != nil {
		app.Log.Fatalf("Failed to seed database: %v", err)
	}
	app.Log.Info("Database seeded")
}
