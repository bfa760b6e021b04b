package runtime

// ConfigPath stores the path to the configuration file provided via CLI flags.
// ConfigPath 存储通过 CLI 标志提供的配置文件路径。
var ConfigPath string

// Port stores the listening port provided via CLI flags (0 means unset).
// Port 存储通过 CLI 标志提供的监听端口（0 表示未设置）。
var Port int
