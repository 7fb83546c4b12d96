package config

import (
	"os"
	"strconv"
	"time"
)

// Config is resolved once at process start. The bureau provider selection is
// process-wide: it cannot change per request.

type Config struct {
	// Provider is the active bureau provider: "simulated" or "kiban".
	Provider string

	KibanBaseURL string
	KibanAPIKey  string

	// ProviderTimeout bounds each bureau/OTP call. A timeout is treated the
	// same as a provider error and engages the fallback policy.
	ProviderTimeout time.Duration

	RetryMaxAttempts int
	RetryBackoff     time.Duration

	// Score cutoffs for the external strategy. score >= ApproveCutoff auto-
	// approves; score >= ReviewCutoff routes to human review; below rejects.
	ApproveCutoff int
	ReviewCutoff  int

	// AnnualInterestRate is the fixed rate used by the amortization formula,
	// e.g. 0.15 for 15% annual.
	AnnualInterestRate float64

	MercadoPagoAccessToken string
}

func Load() Config {
	return Config{
		Provider:               getenvDefault("BUREAU_PROVIDER", "simulated"),
		KibanBaseURL:           getenvDefault("KIBAN_BASE_URL", "https://api.kiban.example"),
		KibanAPIKey:            os.Getenv("KIBAN_API_KEY"),
		ProviderTimeout:        getenvDuration("PROVIDER_TIMEOUT", 10*time.Second),
		RetryMaxAttempts:       getenvInt("EVALUATION_RETRY_MAX_ATTEMPTS", 3),
		RetryBackoff:           getenvDuration("EVALUATION_RETRY_BACKOFF", 2*time.Second),
		ApproveCutoff:          getenvInt("SCORE_APPROVE_CUTOFF", 700),
		ReviewCutoff:           getenvInt("SCORE_REVIEW_CUTOFF", 550),
		AnnualInterestRate:     getenvFloat("ANNUAL_INTEREST_RATE", 0.15),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
