package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/livp123/grouplog/internal/utils/logger"
	"github.com/livp123/grouplog/pkg/client"
	errs "github.com/livp123/grouplog/pkg/errors"
)

var sendCmd = &cobra.Command{
	Use:   "send <text>",
	Short: "Relay one message to a collector",
	// Short: 向收集器转发一条消息
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		group, _ := cmd.Flags().GetString("group")
		from, _ := cmd.Flags().GetString("from")
		endpoint, _ := cmd.Flags().GetString("endpoint")

		c := client.New(endpoint, client.WithLogger(logger.Get(cmd.Context())))
		msg := client.Message{
			Group: group,
			From:  from,
			Text:  strings.Join(args, " "),
		}
		if !c.Relay(cmd.Context(), msg) {
			return errs.ErrDeliveryFailed
		}
		cmd.Println("✅ Delivered to", c.Endpoint())
		return nil
	},
}

func init() {
	sendCmd.Flags().StringP("group", "g", "", "Group name")
	sendCmd.Flags().StringP("from", "f", "", "Sender name")
	sendCmd.Flags().String("endpoint", client.DefaultEndpoint, "Collector endpoint")
}
