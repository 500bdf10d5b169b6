package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"clubadmin/internal/modules/accounting"
)

const (
	defaultPort         = "8080"
	defaultJWTTTL       = "24h"
	defaultJWTSecret    = "change-me-jwt-secret"
	defaultAdvanceTiers = "2:25,5:50,0:75"
)

type RuntimeConfig struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration

	// PaymentRules feeds the accounting advance policy. It is loaded here
	// and passed into the services explicitly; nothing reads it ambiently.
	PaymentRules PaymentRules
}

type PaymentRules struct {
	AdvanceTiers []accounting.AdvanceTier
}

func Load() (*RuntimeConfig, error) {
	cfg := &RuntimeConfig{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", "clubadmin.db"))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	tiers, err := ParseAdvanceTiers(getEnv("ADVANCE_TIERS", defaultAdvanceTiers))
	if err != nil {
		return nil, err
	}
	cfg.PaymentRules.AdvanceTiers = tiers

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseAdvanceTiers reads the env encoding "maxUnits:percent,..." where
// maxUnits 0 marks the open-ended tier, e.g. "2:25,5:50,0:75" = up to 2
// units 25%, up to 5 units 50%, above that 75%. Bounded tiers are sorted
// ascending so lookup order never depends on env ordering.
func ParseAdvanceTiers(raw string) ([]accounting.AdvanceTier, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var tiers []accounting.AdvanceTier
	for _, part := range strings.Split(raw, ",") {
		fields := strings.SplitN(strings.TrimSpace(part), ":", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("invalid ADVANCE_TIERS entry %q", part)
		}
		maxUnits, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil || maxUnits < 0 {
			return nil, fmt.Errorf("invalid ADVANCE_TIERS unit bound %q", fields[0])
		}
		percent, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil || percent < 0 || percent > 100 {
			return nil, fmt.Errorf("invalid ADVANCE_TIERS percentage %q", fields[1])
		}
		tiers = append(tiers, accounting.AdvanceTier{MaxUnits: maxUnits, Percent: percent})
	}

	sort.SliceStable(tiers, func(i, j int) bool {
		if tiers[i].MaxUnits == 0 {
			return false
		}
		if tiers[j].MaxUnits == 0 {
			return true
		}
		return tiers[i].MaxUnits < tiers[j].MaxUnits
	})
	return tiers, nil
}

func validateConfig(cfg *RuntimeConfig) error {
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if isProdLike(cfg.AppEnv) && isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
		return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}
	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
