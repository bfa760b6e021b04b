package config

import "time"

const (
	// DefaultConfigPath is looked up in the working directory when no --config flag is given.
	// DefaultConfigPath 是未指定 --config 时在工作目录中查找的配置文件。
	DefaultConfigPath = "grouplog.yaml"

	// DefaultPort is the collector's listening port.
	// DefaultPort 是收集器的监听端口。
	DefaultPort = 8300

	// EnvPort overrides the configured port.
	// EnvPort 环境变量覆盖配置端口。
	EnvPort = "PORT"

	// DefaultEnvFile is read by serve before environment overrides are applied.
	DefaultEnvFile = ".env"

	DefaultLogDir      = "logs"
	DefaultExtension   = ".log"
	DefaultMaxSizeMB   = 5
	DefaultMaxAgeDays  = 14
	DefaultMissing     = "undefined"
	DefaultCleanup     = "1h"
	DefaultReadTimeout = "5s"
	DefaultShutdown    = "5s"

	// DateLayout names day files, TimeLayout prefixes every line.
	// DateLayout 用于日文件命名，TimeLayout 用于每行的时间前缀。
	DateLayout = "2006-01-02"
	TimeLayout = "2006-01-02 15:04:05"

	Day = 24 * time.Hour
)
