package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/livp123/grouplog/internal/config"
	"github.com/livp123/grouplog/internal/daemon"
	"github.com/livp123/grouplog/internal/runtime"
	"github.com/livp123/grouplog/internal/utils/logger"
	"github.com/livp123/grouplog/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve [extension]",
	Short: "Run the log collector",
	// Short: 运行日志收集器
	Long: `Run the HTTP collector. The optional extension (e.g. csv or .csv) names
the log files; it defaults to .log.
运行 HTTP 收集器。可选的扩展名（如 csv 或 .csv）用于日志文件命名，默认为 .log。`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		if err := config.LoadEnvFile(envFile); err != nil {
			return err
		}

		cfg := loaded
		cfg.ApplyEnv(os.Getenv)

		ext := ""
		if len(args) == 1 {
			ext = args[0]
		}
		cfg.ApplyOverrides(runtime.Port, ext)
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger.Get(cmd.Context()).Infof("Starting grouplog %s...", version.Version)
		return daemon.Run(cmd.Context(), cfg, nil)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&runtime.Port, "port", "p", 0, "Listen port (overrides PORT and the config file)")
	serveCmd.Flags().String("env-file", config.DefaultEnvFile, "Environment file read before applying PORT")
}
