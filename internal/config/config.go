package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/livp123/grouplog/internal/utils/fileutil"
	"github.com/livp123/grouplog/internal/utils/logger"
	errs "github.com/livp123/grouplog/pkg/errors"
)

// DefaultConfigTemplate is written by `grouplog init`.
const DefaultConfigTemplate = `# grouplog configuration / grouplog 配置文件

# HTTP server / HTTP 服务
server:
  # Listening port, overridden by the PORT environment variable and --port.
  # 监听端口，可被 PORT 环境变量和 --port 覆盖。
  port: 8300
  # Expose Prometheus metrics on /metrics.
  # 在 /metrics 暴露 Prometheus 指标。
  metrics: true
  read_header_timeout: "5s"
  shutdown_timeout: "5s"

# Log files / 日志文件
storage:
  # Output directory, created if missing.
  # 输出目录，不存在时自动创建。
  dir: "logs"
  # File extension, normalized to one leading dot.
  # 文件扩展名，自动补全前导点。
  extension: ".log"
  # Rotate within the same day when the file grows past this size.
  # 文件超过该大小时在当天内轮转。
  max_size_mb: 5
  # Delete files older than this many days.
  # 删除超过该天数的文件。
  max_age_days: 14
  compress: false
  # How often expired files are swept while idle.
  # 空闲时清理过期文件的间隔。
  cleanup_interval: "1h"

# Line rendering / 行格式
format:
  # Rendered in place of absent fields.
  # 缺失字段的占位文本。
  missing_field: "undefined"
  # Prefix lines with the producer timestamp instead of receipt time.
  # 使用生产者时间戳代替接收时间作为前缀。
  use_producer_timestamp: false
  # Optional boolean expression; entries evaluating false are not written.
  # 可选布尔表达式；结果为 false 的条目不会写入。
  filter: ""

# Operator log / 运维日志
logging:
  enabled: false
  level: "info"
  path: "logs/grouplog.out"
  max_size: 10
  max_backups: 3
  max_age: 30
  compress: false
`

// Config is the collector configuration.
// Config 是收集器配置。
type Config struct {
	Server  ServerConfig         `yaml:"server"`
	Storage StorageConfig        `yaml:"storage"`
	Format  FormatConfig         `yaml:"format"`
	Logging logger.LoggingConfig `yaml:"logging"`
}

// ServerConfig holds HTTP settings.
// ServerConfig 保存 HTTP 设置。
type ServerConfig struct {
	Port              int    `yaml:"port"`
	Metrics           bool   `yaml:"metrics"`
	ReadHeaderTimeout string `yaml:"read_header_timeout"`
	ShutdownTimeout   string `yaml:"shutdown_timeout"`
}

// StorageConfig holds the rotation and retention policy.
// StorageConfig 保存轮转与保留策略。
type StorageConfig struct {
	Dir             string `yaml:"dir"`
	Extension       string `yaml:"extension"`
	MaxSizeMB       int    `yaml:"max_size_mb"`
	MaxAgeDays      int    `yaml:"max_age_days"`
	Compress        bool   `yaml:"compress"`
	CleanupInterval string `yaml:"cleanup_interval"`
}

// FormatConfig controls how entries are rendered.
// FormatConfig 控制条目的渲染方式。
type FormatConfig struct {
	MissingField         string `yaml:"missing_field"`
	UseProducerTimestamp bool   `yaml:"use_producer_timestamp"`
	Filter               string `yaml:"filter"`
}

// Default returns the built-in configuration.
// Default 返回内置默认配置。
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:              DefaultPort,
			Metrics:           true,
			ReadHeaderTimeout: DefaultReadTimeout,
			ShutdownTimeout:   DefaultShutdown,
		},
		Storage: StorageConfig{
			Dir:             DefaultLogDir,
			Extension:       DefaultExtension,
			MaxSizeMB:       DefaultMaxSizeMB,
			MaxAgeDays:      DefaultMaxAgeDays,
			Compress:        false,
			CleanupInterval: DefaultCleanup,
		},
		Format: FormatConfig{
			MissingField: DefaultMissing,
		},
		Logging: logger.LoggingConfig{
			Enabled:    false,
			Level:      "info",
			Path:       filepath.Join(DefaultLogDir, "grouplog.out"),
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     30,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
// A missing file yields ErrConfigNotFound.
// Load 在默认值之上读取 YAML 文件并校验结果。
func Load(path string) (*Config, error) {
	safePath := filepath.Clean(path) // Sanitize path to prevent directory traversal
	data, err := os.ReadFile(safePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.NewFileError(errs.ErrConfigNotFound, safePath, err)
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errs.NewFileError(errs.ErrConfigInvalid, safePath, err)
	}
	cfg.Storage.Extension = NormalizeExtension(cfg.Storage.Extension)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but falls back to defaults when path is
// missing and was not requested explicitly.
// LoadOrDefault 与 Load 相同，但在未显式指定且文件缺失时回退到默认值。
func LoadOrDefault(path string, explicit bool) (*Config, error) {
	cfg, err := Load(path)
	if err != nil && !explicit && errors.Is(err, errs.ErrConfigNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes the template when cfg is nil, or cfg marshalled otherwise.
// Save 在 cfg 为 nil 时写入模板，否则写入序列化后的配置。
func Save(path string, cfg *Config) error {
	data := []byte(DefaultConfigTemplate)
	if cfg != nil {
		var err error
		if data, err = yaml.Marshal(cfg); err != nil {
			return err
		}
	}
	return fileutil.AtomicWriteFile(path, data, 0644)
}

// CleanupInterval returns the parsed sweep interval.
func (c *Config) CleanupInterval() time.Duration {
	return mustDuration(c.Storage.CleanupInterval, time.Hour)
}

// ReadHeaderTimeout returns the parsed header timeout.
func (c *Config) ReadHeaderTimeout() time.Duration {
	return mustDuration(c.Server.ReadHeaderTimeout, 5*time.Second)
}

// ShutdownTimeout returns the parsed graceful shutdown timeout.
func (c *Config) ShutdownTimeout() time.Duration {
	return mustDuration(c.Server.ShutdownTimeout, 5*time.Second)
}

// MaxAge returns the retention window.
func (c *Config) MaxAge() time.Duration {
	return time.Duration(c.Storage.MaxAgeDays) * Day
}

func mustDuration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
