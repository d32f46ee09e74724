package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Standard page sizes in PDF points (1/72 inch).
var pageSizes = map[string]PageSize{
	"A4":     {Width: 595.28, Height: 841.89},
	"LETTER": {Width: 612, Height: 792},
	"LEGAL":  {Width: 612, Height: 1008},
}

// PageSize holds page dimensions in points.
type PageSize struct {
	Width  float64
	Height float64
}

// FontSizes are the size presets used by the block renderers.
type FontSizes struct {
	Title     float64
	Header    float64
	SubHeader float64
	Normal    float64
	Small     float64
}

// Margins are the page margin offsets in points.
type Margins struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// Config holds all application configuration. It is read once at startup
// and treated as a process-wide constant afterwards.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string

	// Layout configuration. The layout algorithm assumes exactly two
	// columns; see internal/pdf.
	PageSizeName string
	Page         PageSize
	Margins      Margins
	ColumnGap    float64
	FontFamily   string
	Sizes        FontSizes

	// EmbedTimestamp embeds the real creation time into generated
	// documents. Off by default so identical input yields identical bytes.
	EmbedTimestamp bool

	AssetDir             string
	MaxUploadBytes       int64
	MaxBodyBytes         int64
	MaxConcurrentRenders int

	// AllowedOrigins controls HTTP CORS. Empty slice means all origins
	// are permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	sizeName := strings.ToUpper(getEnv("PAGE_SIZE", "A4"))
	page, ok := pageSizes[sizeName]
	if !ok {
		sizeName = "A4"
		page = pageSizes["A4"]
	}

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFormat:  getEnv("LOG_FORMAT", "pretty"),

		PageSizeName: sizeName,
		Page:         page,
		Margins: Margins{
			Top:    getEnvFloat("MARGIN_TOP", 50),
			Bottom: getEnvFloat("MARGIN_BOTTOM", 50),
			Left:   getEnvFloat("MARGIN_LEFT", 50),
			Right:  getEnvFloat("MARGIN_RIGHT", 50),
		},
		ColumnGap:  getEnvFloat("COLUMN_GAP", 20),
		FontFamily: getEnv("FONT_FAMILY", "Helvetica"),
		Sizes: FontSizes{
			Title:     getEnvFloat("FONT_SIZE_TITLE", 18),
			Header:    getEnvFloat("FONT_SIZE_HEADER", 14),
			SubHeader: getEnvFloat("FONT_SIZE_SUBHEADER", 12),
			Normal:    getEnvFloat("FONT_SIZE_NORMAL", 10),
			Small:     getEnvFloat("FONT_SIZE_SMALL", 8),
		},

		EmbedTimestamp: getEnvBool("PDF_EMBED_TIMESTAMP", false),

		AssetDir:             getEnv("ASSET_DIR", "./assets"),
		MaxUploadBytes:       int64(getEnvInt("MAX_UPLOAD_SIZE_MB", 10)) * 1024 * 1024,
		MaxBodyBytes:         int64(getEnvInt("MAX_BODY_SIZE_MB", 5)) * 1024 * 1024,
		MaxConcurrentRenders: getEnvInt("MAX_CONCURRENT_RENDERS", 8),
		AllowedOrigins:       parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
