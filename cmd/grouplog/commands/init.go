package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/livp123/grouplog/internal/config"
	"github.com/livp123/grouplog/internal/utils/fileutil"
	errs "github.com/livp123/grouplog/pkg/errors"
)

// initCmd implements the 'init' command
// initCmd 实现 'init' 命令
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	// Short: 初始化配置
	Long: `Write the default configuration file`,
	// Long: 写入默认配置文件
	Annotations: map[string]string{skipConfig: "true"},
	Args:        cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path, _ := config.GetConfigPath()

		if fileutil.Exists(path) && !force {
			return fmt.Errorf("%w: %s (use --force to overwrite)", errs.ErrConfigExists, path)
		}
		if err := config.Save(path, nil); err != nil {
			return err
		}
		cmd.Printf("✅ Configuration written to %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration file")
}
