package main

import (
	"fmt"

	"github.com/mark3labs/mathbridge/internal/config"
	mbnats "github.com/mark3labs/mathbridge/internal/nats"
	"github.com/spf13/cobra"
)

var logFlags struct {
	channel string
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Print messages stored by the nats sink",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		e, err := loadEnv(ctx, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer e.Close()

		if e.stream == nil {
			if err := e.openNATS(ctx); err != nil {
				return err
			}
		}

		channel := e.cfg.Channel
		if logFlags.channel != "" {
			channel = logFlags.channel
		}

		msgs, err := mbnats.Replay(ctx, e.stream, channel)
		if err != nil {
			return fmt.Errorf("replaying %s: %w", mbnats.SubjectForChannel(channel), err)
		}
		if len(msgs) == 0 && e.cfg.Sink != config.SinkNATS {
			fmt.Fprintf(cmd.ErrOrStderr(), "No messages (sink is %q; set sink: nats to record them)\n", e.cfg.Sink)
			return nil
		}
		for _, m := range msgs {
			fmt.Fprintln(cmd.OutOrStdout(), m)
		}
		return nil
	},
}

func init() {
	logCmd.Flags().StringVarP(&logFlags.channel, "channel", "c", "", "Channel to replay (default: channel from config)")
}
