package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"github.com/DemocracyClub/ec-postcode-lookup-pages/dcapi"
)

type Config struct {
	Port           int
	APIKey         string
	APIBaseURL     string
	SandboxBaseURL string
	Debug          bool
	EnableAuth     bool
	AuthUsername   string
	AuthPassword   string
}

// ParseFlags reads flags, falling back to environment variables for
// anything not set on the command line.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("ec-postcode-lookup", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", "", "Aggregator API base URL")
	fs.StringVar(&cfg.SandboxBaseURL, "sandbox-base-url", "", "Aggregator sandbox API base URL")
	fs.BoolVar(&cfg.Debug, "debug", false, "Enable the debug page and verbose logging")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.APIKey, "api-key", "", "Aggregator API key (prefer env)")
	fs.StringVar(&cfg.AuthUsername, "auth-user", "", "Basic auth username (prefer env)")
	fs.StringVar(&cfg.AuthPassword, "auth-password", "", "Basic auth password (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8010 // default
		}
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("API_KEY")
	}
	if cfg.APIKey == "" {
		cfg.APIKey = "ec-postcode-testing"
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = os.Getenv("API_BASE_URL")
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = dcapi.LiveBaseURL
	}

	if cfg.SandboxBaseURL == "" {
		cfg.SandboxBaseURL = os.Getenv("SANDBOX_BASE_URL")
	}
	if cfg.SandboxBaseURL == "" {
		cfg.SandboxBaseURL = dcapi.SandboxBaseURL
	}

	if !cfg.Debug {
		cfg.Debug = os.Getenv("DEBUG") == "1" || os.Getenv("DEBUG") == "true"
	}

	if cfg.AuthUsername == "" {
		cfg.AuthUsername = os.Getenv("AUTH_USERNAME")
	}
	if cfg.AuthPassword == "" {
		cfg.AuthPassword = os.Getenv("AUTH_PASSWORD")
	}
	cfg.EnableAuth = cfg.AuthUsername != "" && cfg.AuthPassword != ""

	return cfg, nil
}
