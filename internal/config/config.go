package config

import (
	"os"
	"path/filepath"
)

const (
	AppName    = "Lingua"
	AppVersion = "1.0.0"
)

// LinguaUserAgent identifies outgoing page fetches made on behalf of
// the translator.
var LinguaUserAgent = "Mozilla/5.0 (compatible; " + AppName + "/" + AppVersion + ")"

// Chrome headers for TLS fingerprinting (must match the azuretls Chrome
// profile version).
const (
	ChromeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36"
	ChromeSecChUa   = `"Google Chrome";v="135", "Chromium";v="135", "Not-A.Brand";v="8"`
)

type Config struct {
	Addr      string
	DBPath    string
	DataDir   string
	StaticDir string
	LogLevel  string

	// Remote model capability.
	AIProvider string // openai, anthropic, compatible
	AIAPIKey   string
	AIBaseURL  string
	AIModel    string
	AIVoice    string // speech synthesis voice hint
	AIRateQPS  int

	// Credential check is deliberately trivial and never persisted.
	Username string
	Password string
}

func Load() Config {
	addr := getenv("LINGUA_ADDR", ":8080")
	dataDir := getenv("LINGUA_DATA_DIR", "./data")
	path := os.Getenv("LINGUA_DB_PATH")
	if path == "" {
		path = filepath.Join(dataDir, "lingua.db")
	}
	staticDir := os.Getenv("LINGUA_STATIC_DIR")
	if staticDir == "" {
		staticDir = detectStaticDir()
	}

	return Config{
		Addr:       addr,
		DBPath:     filepath.Clean(path),
		DataDir:    filepath.Clean(dataDir),
		StaticDir:  filepath.Clean(staticDir),
		LogLevel:   getenv("LINGUA_LOG_LEVEL", "info"),
		AIProvider: getenv("LINGUA_AI_PROVIDER", "openai"),
		AIAPIKey:   os.Getenv("LINGUA_AI_API_KEY"),
		AIBaseURL:  os.Getenv("LINGUA_AI_BASE_URL"),
		AIModel:    getenv("LINGUA_AI_MODEL", "gpt-4o-mini"),
		AIVoice:    getenv("LINGUA_AI_VOICE", "alloy"),
		AIRateQPS:  10,
		Username:   getenv("LINGUA_USERNAME", "admin"),
		Password:   getenv("LINGUA_PASSWORD", "admin"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func detectStaticDir() string {
	candidates := []string{
		"./frontend/dist",
		"../frontend/dist",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return "./frontend/dist"
}
