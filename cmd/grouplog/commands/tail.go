package commands

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/livp123/grouplog/internal/config"
	"github.com/livp123/grouplog/internal/follow"
	"github.com/livp123/grouplog/internal/rotate"
	errs "github.com/livp123/grouplog/pkg/errors"
)

var tailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Print a day's log file",
	// Short: 打印某一天的日志文件
	Long: `Print the log file of a day (today by default). With --follow, keep
streaming new lines across size rotations until interrupted.
打印某一天（默认今天）的日志文件。使用 --follow 时持续输出新行，直到被中断。`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, _ := cmd.Flags().GetString("date")
		ext, _ := cmd.Flags().GetString("ext")
		keep, _ := cmd.Flags().GetBool("follow")

		day := time.Now()
		if date != "" {
			var err error
			if day, err = time.ParseInLocation(config.DateLayout, date, time.Local); err != nil {
				return errs.NewDateError(date, err)
			}
		}
		if ext == "" {
			ext = loaded.Storage.Extension
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return follow.Follow(ctx, rotate.DayPath(loaded.Storage.Dir, ext, day), keep, cmd.OutOrStdout())
	},
}

func init() {
	tailCmd.Flags().StringP("date", "d", "", "Day to print (YYYY-MM-DD, default today)")
	tailCmd.Flags().String("ext", "", "File extension (default from config)")
	tailCmd.Flags().BoolP("follow", "f", false, "Keep streaming appended lines")
}
