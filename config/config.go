package config

import (
	"fmt"
	"os"
	"strings"
)

// SignatureMode controls how a missing X-Hub-Signature-256 header is treated.
type SignatureMode string

const (
	// SignatureStrict rejects requests without a signature header.
	SignatureStrict SignatureMode = "strict"
	// SignaturePermissive accepts requests without a signature header but
	// still rejects a present-but-invalid one.
	SignaturePermissive SignatureMode = "permissive"
)

type Config struct {
	// Webhook configuration
	VerifyToken   string
	AppSecret     string
	SignatureMode SignatureMode

	// Facebook Graph API
	PageAccessToken string

	// Catalog configuration
	SpreadsheetID   string
	CredentialsJSON string
	SheetRange      string

	// Price keywords, normalized by the classifier at construction
	PriceKeywords []string

	// Server configuration
	Port string
}

// DefaultPriceKeywords is the built-in multilingual keyword set: Georgian
// script, transliterated Georgian, and Russian. Matching is substring-based,
// so short entries like "fasi" intentionally match inside longer phrases.
var DefaultPriceKeywords = []string{
	"fasi", "ra girs", "fasi ra aqvs", "pasi", "pasi ra aqvs",
	"ფასი", "ფასი რა აქვს", "რა ღირს", "ფასი მომწერეთ",
	"pasi momweret", "fasi momweret",
	"цена", "сколько стоит", "стоимость", "сколько",
}

// Load reads configuration from the environment. It returns an error naming
// every missing required variable so the process can refuse to start.
func Load() (*Config, error) {
	cfg := &Config{
		VerifyToken:     os.Getenv("WEBHOOK_VERIFY_TOKEN"),
		AppSecret:       os.Getenv("APP_SECRET"),
		SignatureMode:   SignatureMode(getEnv("SIGNATURE_MODE", string(SignatureStrict))),
		PageAccessToken: os.Getenv("PAGE_ACCESS_TOKEN"),
		SpreadsheetID:   os.Getenv("SPREADSHEET_ID"),
		CredentialsJSON: os.Getenv("GOOGLE_CREDENTIALS_JSON"),
		SheetRange:      getEnv("SHEET_RANGE", "Sheet1"),
		PriceKeywords:   DefaultPriceKeywords,
		Port:            getEnv("PORT", "8080"),
	}

	if raw := os.Getenv("PRICE_KEYWORDS"); raw != "" {
		var keywords []string
		for _, kw := range strings.Split(raw, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				keywords = append(keywords, kw)
			}
		}
		if len(keywords) > 0 {
			cfg.PriceKeywords = keywords
		}
	}

	var missing []string
	for _, req := range []struct {
		name  string
		value string
	}{
		{"WEBHOOK_VERIFY_TOKEN", cfg.VerifyToken},
		{"APP_SECRET", cfg.AppSecret},
		{"PAGE_ACCESS_TOKEN", cfg.PageAccessToken},
		{"SPREADSHEET_ID", cfg.SpreadsheetID},
		{"GOOGLE_CREDENTIALS_JSON", cfg.CredentialsJSON},
	} {
		if req.value == "" {
			missing = append(missing, req.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	switch cfg.SignatureMode {
	case SignatureStrict, SignaturePermissive:
	default:
		return nil, fmt.Errorf("invalid SIGNATURE_MODE %q: must be %q or %q",
			cfg.SignatureMode, SignatureStrict, SignaturePermissive)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
