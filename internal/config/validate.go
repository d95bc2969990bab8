package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Auth.Enabled() && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Journal.validate(); err != nil {
		return fmt.Errorf("journal: %w", err)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (j *JournalConfig) validate() error {
	if j.Timezone != "" && j.Timezone != "Local" {
		if _, err := time.LoadLocation(j.Timezone); err != nil {
			return fmt.Errorf("timezone %q: %w", j.Timezone, err)
		}
	}
	if j.HistoryMaxDays <= 0 {
		return fmt.Errorf("history_max_days must be > 0 (got %d)", j.HistoryMaxDays)
	}
	if j.HistoryDefaultDays <= 0 || j.HistoryDefaultDays > j.HistoryMaxDays {
		return fmt.Errorf("history_default_days must be between 1 and %d (got %d)", j.HistoryMaxDays, j.HistoryDefaultDays)
	}
	if j.MinWordLength < 1 {
		return fmt.Errorf("min_word_length must be >= 1 (got %d)", j.MinWordLength)
	}
	if j.PageSizeDefault < 1 {
		return fmt.Errorf("page_size_default must be >= 1 (got %d)", j.PageSizeDefault)
	}
	return nil
}

// KafkaBrokers splits the comma-separated broker list, dropping blanks.
func (c KafkaConfig) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
