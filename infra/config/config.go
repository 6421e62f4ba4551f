package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application-level configuration.
type Config struct {
	APIURL      string // e.g. "https://schools.example/api"
	TokenPath   string // Path to file containing the API token
	AuthScheme  string // Authorization scheme prefix, "Token" for DRF token auth
	Timeout     time.Duration
	Retries     uint64 // Extra attempts for idempotent GETs
	HTTPCache   bool
	LogPath     string // "-" disables logging
	LogLevel    string
	UIStatePath string
}

// Load reads configuration from the environment, after merging a .env file
// from the working directory if one exists.
//
//	SCHOOLREVIEW_API          API base URL (default http://localhost:8000/api)
//	SCHOOLREVIEW_TOKEN        token file (default ~/.config/schoolreview/token)
//	SCHOOLREVIEW_AUTH_SCHEME  Authorization scheme (default "Token")
//	SCHOOLREVIEW_TIMEOUT      per-request timeout (default 15s)
//	SCHOOLREVIEW_RETRIES      GET retries (default 2)
//	SCHOOLREVIEW_HTTP_CACHE   conditional GET cache (default true)
//	SCHOOLREVIEW_LOG_FILE     log file, "-" to disable
//	SCHOOLREVIEW_LOG_LEVEL    debug|info|warn|error (default info)
//	SCHOOLREVIEW_STATE        UI state file
func Load() (Config, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	api := os.Getenv("SCHOOLREVIEW_API")
	if api == "" {
		api = "http://localhost:8000/api"
	}
	parsed, err := url.Parse(api)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("invalid SCHOOLREVIEW_API: must be an absolute URL")
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return Config{}, fmt.Errorf("invalid SCHOOLREVIEW_API: scheme must be http or https")
	}
	api = strings.TrimRight(parsed.String(), "/")

	dir, err := configDir()
	if err != nil {
		return Config{}, err
	}

	timeout := 15 * time.Second
	if v := os.Getenv("SCHOOLREVIEW_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid SCHOOLREVIEW_TIMEOUT %q", v)
		}
		timeout = d
	}

	retries := uint64(2)
	if v := os.Getenv("SCHOOLREVIEW_RETRIES"); v != "" {
		n, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SCHOOLREVIEW_RETRIES %q: %w", v, err)
		}
		retries = n
	}

	cache := true
	if v := os.Getenv("SCHOOLREVIEW_HTTP_CACHE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SCHOOLREVIEW_HTTP_CACHE %q: %w", v, err)
		}
		cache = b
	}

	level := strings.ToLower(envOr("SCHOOLREVIEW_LOG_LEVEL", "info"))
	switch level {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("invalid SCHOOLREVIEW_LOG_LEVEL %q", level)
	}

	return Config{
		APIURL:      api,
		TokenPath:   envOr("SCHOOLREVIEW_TOKEN", filepath.Join(dir, "token")),
		AuthScheme:  envOr("SCHOOLREVIEW_AUTH_SCHEME", "Token"),
		Timeout:     timeout,
		Retries:     retries,
		HTTPCache:   cache,
		LogPath:     envOr("SCHOOLREVIEW_LOG_FILE", filepath.Join(dir, "schoolreview.log")),
		LogLevel:    level,
		UIStatePath: envOr("SCHOOLREVIEW_STATE", filepath.Join(dir, "ui_state.json")),
	}, nil
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "schoolreview"), nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// UIState is what the client remembers between runs.
type UIState struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

// LoadUIState reads the state file. A missing file yields the zero state.
func LoadUIState(path string) (UIState, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return UIState{}, nil
	}
	if err != nil {
		return UIState{}, fmt.Errorf("reading ui state: %w", err)
	}
	var st UIState
	if err := json.Unmarshal(data, &st); err != nil {
		return UIState{}, fmt.Errorf("parsing ui state: %w", err)
	}
	return st, nil
}

// SaveUIState writes the state file, creating its directory.
func SaveUIState(path string, st UIState) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encoding ui state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing ui state: %w", err)
	}
	return nil
}
