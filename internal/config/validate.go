package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	var errs []error

	if len(c.Auth.JWTSecret) < 32 {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret)))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL))
	}

	if c.Database.MinConns > c.Database.MaxConns {
		errs = append(errs, fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns))
	}

	if strings.TrimSpace(c.Storage.Dir) == "" {
		errs = append(errs, errors.New("storage.dir is required"))
	}
	if c.Storage.MaxUploadBytes <= 0 {
		errs = append(errs, fmt.Errorf("storage.max_upload_bytes must be > 0 (got %d)", c.Storage.MaxUploadBytes))
	}
	if c.Storage.PublicBaseURL != "" {
		if u, err := url.Parse(c.Storage.PublicBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("storage.public_base_url must be an absolute URL (got %q)", c.Storage.PublicBaseURL))
		}
	}

	if c.Notification.RetentionDays <= 0 {
		errs = append(errs, fmt.Errorf("notification.retention_days must be > 0 (got %d)", c.Notification.RetentionDays))
	}

	if c.Documents.DefaultPageSize <= 0 {
		errs = append(errs, fmt.Errorf("documents.default_page_size must be > 0 (got %d)", c.Documents.DefaultPageSize))
	}
	if c.Documents.MaxPageSize < c.Documents.DefaultPageSize {
		errs = append(errs, fmt.Errorf("documents.max_page_size (%d) must be >= default_page_size (%d)", c.Documents.MaxPageSize, c.Documents.DefaultPageSize))
	}

	if c.RateLimit.RequestsPerMinute < 0 {
		errs = append(errs, fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute))
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format))
	}

	return errors.Join(errs...)
}
