package main

import (
	"context"
	"time"

	"tour-catalog/internal/config"
	"tour-catalog/internal/database"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.Info("Starting migration...")

	cfg := config.Load()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.EnsureIndexes(ctx, mongoDB.Database); err != nil {
		logrus.WithError(err).Fatal("Migration failed")
	}

	logrus.WithField("indexes", len(database.Indexes)).Info("Migration completed successfully!")
}
