package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gsheet_ranges/internal/gsheet"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds application configuration
type Config struct {
	SpreadsheetID   string
	CredentialsFile string
	CredentialsJSON string
	Scopes          []gsheet.Scope
	BigQueryProject string
	DeployKeyFile   string
}

// SetupEnvironment loads .env file and configures zerolog output and log level.
func SetupEnvironment() {
	// Load .env file if it exists
	err := godotenv.Load()

	// Configure logging
	if os.Getenv("ENV") == "production" {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	levelStr := strings.ToLower(os.Getenv("LOGLEVEL"))
	switch levelStr {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case "":
		// Default based on environment
		if os.Getenv("ENV") == "production" {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Warn().Msgf("Unknown LOGLEVEL '%s', defaulting to info.", levelStr)
	}

	// wait until now to report on the .env file so we have the chance to set up logging first
	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	} else {
		log.Debug().Msg("No .env file found or error loading .env file; proceeding with existing environment variables.")
	}
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	spreadsheetID := os.Getenv("SPREADSHEET_ID")
	if spreadsheetID == "" {
		return nil, fmt.Errorf("SPREADSHEET_ID environment variable is required")
	}

	credentialsFile := os.Getenv("GOOGLE_CREDENTIALS_FILE")
	if credentialsFile == "" {
		credentialsFile = "credentials.json"
	}

	// Inline key JSON wins over the file when both are present
	credentialsJSON := os.Getenv("GOOGLE_CREDENTIALS_JSON")

	scopes, err := parseScopes(os.Getenv("SHEETS_SCOPES"))
	if err != nil {
		return nil, err
	}

	deployKeyFile := os.Getenv("DEPLOY_KEY_FILE")
	if deployKeyFile == "" {
		deployKeyFile = "deploy.pem"
	}

	return &Config{
		SpreadsheetID:   spreadsheetID,
		CredentialsFile: credentialsFile,
		CredentialsJSON: credentialsJSON,
		Scopes:          scopes,
		BigQueryProject: os.Getenv("BIGQUERY_PROJECT"),
		DeployKeyFile:   deployKeyFile,
	}, nil
}

// parseScopes turns a comma-separated list of short scope names into Scope
// values. An empty list defaults to full spreadsheet access.
func parseScopes(raw string) ([]gsheet.Scope, error) {
	if strings.TrimSpace(raw) == "" {
		return []gsheet.Scope{gsheet.ScopeSpreadsheets}, nil
	}

	var scopes []gsheet.Scope
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		scope, err := gsheet.ParseScope(name)
		if err != nil {
			return nil, fmt.Errorf("SHEETS_SCOPES: %w", err)
		}
		scopes = append(scopes, scope)
	}

	if len(scopes) == 0 {
		return []gsheet.Scope{gsheet.ScopeSpreadsheets}, nil
	}

	return scopes, nil
}

// GetRequiredEnv gets an environment variable or panics if not found
func GetRequiredEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatal().Str("key", key).Msg("Required environment variable not set")
	}
	return value
}
