package config

import (
	"strings"
	"time"

	errs "github.com/livp123/grouplog/pkg/errors"
)

// Validate checks ranges and formats of all settings.
// Validate 检查所有设置的范围与格式。
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return errs.NewPortError(c.Server.Port)
	}
	durations := []struct{ field, value string }{
		{"server.read_header_timeout", c.Server.ReadHeaderTimeout},
		{"server.shutdown_timeout", c.Server.ShutdownTimeout},
		{"storage.cleanup_interval", c.Storage.CleanupInterval},
	}
	for _, d := range durations {
		if v, err := time.ParseDuration(d.value); err != nil || v <= 0 {
			return errs.NewDurationError(d.field, d.value)
		}
	}

	if strings.TrimSpace(c.Storage.Dir) == "" {
		return errs.NewConfigError("storage.dir", c.Storage.Dir)
	}
	if err := ValidateExtension(c.Storage.Extension); err != nil {
		return err
	}
	if c.Storage.MaxSizeMB < 1 {
		return errs.NewConfigError("storage.max_size_mb", c.Storage.MaxSizeMB)
	}
	if c.Storage.MaxAgeDays < 1 {
		return errs.NewConfigError("storage.max_age_days", c.Storage.MaxAgeDays)
	}
	return nil
}

// ValidateExtension rejects extensions that would escape the log directory.
// ValidateExtension 拒绝可能逃逸日志目录的扩展名。
func ValidateExtension(ext string) error {
	if ext == "." || !strings.HasPrefix(ext, ".") || strings.ContainsAny(ext, `/\`) || strings.Contains(ext, "..") {
		return errs.NewExtensionError(ext)
	}
	return nil
}
