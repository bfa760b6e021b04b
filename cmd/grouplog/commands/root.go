package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/livp123/grouplog/internal/config"
	"github.com/livp123/grouplog/internal/runtime"
	"github.com/livp123/grouplog/internal/utils/logger"
)

// skipConfig marks commands that run without loading the config file.
const skipConfig = "skip-config"

// loaded is the configuration resolved by PersistentPreRunE.
var loaded *config.Config

var RootCmd = &cobra.Command{
	Use:   "grouplog",
	Short: "A collector that appends group chat messages to rotating log files",
	// Short: 将群聊消息追加到轮转日志文件的收集器
	Long: `grouplog receives group chat messages over HTTP and appends them to
date-named log files, rotating by day and size and expiring old files.
grouplog 通过 HTTP 接收群聊消息，并追加到按日期命名的日志文件中，
按日期与大小轮转，并清理过期文件。`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		if cmd.Annotations[skipConfig] == "" {
			// Load configuration to get logging settings
			// 加载配置以获取日志设置
			path, explicit := config.GetConfigPath()
			var err error
			if cfg, err = config.LoadOrDefault(path, explicit); err != nil {
				return err
			}
		}
		loaded = cfg
		logger.Init(cfg.Logging)

		// Inject logger into context
		// 将 Logger 注入 Context
		ctx := logger.WithContext(cmd.Context(), logger.Get(nil))
		cmd.SetContext(ctx)
		return nil
	},
}

func init() {
	// Config file path
	// 配置文件路径
	RootCmd.PersistentFlags().StringVarP(&runtime.ConfigPath, "config", "c", "", fmt.Sprintf("Path to configuration file (default: %s)", config.DefaultConfigPath))

	RootCmd.AddCommand(serveCmd)
	RootCmd.AddCommand(sendCmd)
	RootCmd.AddCommand(tailCmd)
	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(versionCmd)
}
