package cmd

import (
	"fmt"
	"os"

	"easy-ftp/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "easy-ftp",
	Short: "Easy FTP Server",
	Long: `Easy FTP Server shares a folder over FTP from a desktop control panel.
The panel API starts and stops the embedded server, persists its settings
and manages the OS startup entry.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Development config gives ISO8601 timestamps on the console.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
