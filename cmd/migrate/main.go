package main

import (
	"complaint_system/internal/config" // Custom import path (Config)
	"complaint_system/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Structured logging
)

// Main entry point for migration
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.LoadConfig() // Load configuration
	if err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}
	gdb, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	defer func() { _ = db.Close(gdb) }()

	if err := db.Migrate(gdb); err != nil {
		logrus.Fatalf("%v", err)
	}
}
