package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/campuskit/admitportal/internal/pkg/logger"
	"github.com/campuskit/admitportal/internal/server"
)

// @title AdmitPortal API
// @version 1.0
// @description Admissions portal API: student academic records and application review.

// @contact.name API Support
// @contact.email support@campuskit.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// A missing .env is fine; configuration falls back to the yaml file and
	// real environment variables.
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, using environment variables")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
