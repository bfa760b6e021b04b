package config

import (
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/livp123/grouplog/internal/runtime"
	"github.com/livp123/grouplog/internal/utils/fileutil"
	errs "github.com/livp123/grouplog/pkg/errors"
)

/**
 * GetConfigPath resolves the configuration file path.
 * It prioritizes the CLI flag (runtime.ConfigPath) over the default.
 * GetConfigPath 解析配置文件路径。
 * 优先使用 CLI 标志 (runtime.ConfigPath)，其次是默认值。
 */
func GetConfigPath() (path string, explicit bool) {
	if runtime.ConfigPath != "" {
		return runtime.ConfigPath, true
	}
	return DefaultConfigPath, false
}

/**
 * NormalizeExtension makes sure the extension carries exactly one leading dot.
 * An empty value falls back to DefaultExtension.
 * NormalizeExtension 确保扩展名恰好带有一个前导点，空值回退为默认扩展名。
 */
func NormalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" {
		return DefaultExtension
	}
	if strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

/**
 * LoadEnvFile reads KEY=VALUE pairs into the process environment.
 * Variables that are already set win. A missing file is not an error.
 * LoadEnvFile 将 KEY=VALUE 读入进程环境变量，已存在的变量优先，文件不存在不视为错误。
 */
func LoadEnvFile(path string) error {
	if path == "" || !fileutil.Exists(path) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errs.NewFileError(errs.ErrConfigInvalid, path, err)
	}
	return nil
}

/**
 * ApplyEnv overrides settings from the environment. Unparsable values are ignored.
 * ApplyEnv 使用环境变量覆盖设置，无法解析的值将被忽略。
 */
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvPort)); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
}

/**
 * ApplyOverrides applies CLI values: a non-zero port and a non-empty extension.
 * ApplyOverrides 应用命令行参数：非零端口与非空扩展名。
 */
func (c *Config) ApplyOverrides(port int, extension string) {
	if port != 0 {
		c.Server.Port = port
	}
	if extension != "" {
		c.Storage.Extension = NormalizeExtension(extension)
	}
}
