package cmd

import (
	"fmt"

	"easy-ftp/core/autostart"
	"easy-ftp/core/config"
	"easy-ftp/core/ftpserver"
	"easy-ftp/core/logger"
	"easy-ftp/core/netinfo"
	"easy-ftp/core/settings"
	"easy-ftp/feature/panel"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// autostartCmd represents the autostart command
var autostartCmd = &cobra.Command{
	Use:   "autostart",
	Short: "Show or change the OS startup entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newOfflineService()
		if err != nil {
			return err
		}
		printAutoStart(svc.CheckAutoStart())
		return nil
	},
}

var autostartEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Launch the panel at login",
	RunE: func(cmd *cobra.Command, args []string) error {
		return setAutoStart(true)
	},
}

var autostartDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Stop launching the panel at login",
	RunE: func(cmd *cobra.Command, args []string) error {
		return setAutoStart(false)
	},
}

func setAutoStart(enabled bool) error {
	svc, err := newOfflineService()
	if err != nil {
		return err
	}
	if err := svc.SetAutoStart(enabled); err != nil {
		return fmt.Errorf("update autostart: %w", err)
	}
	printAutoStart(svc.CheckAutoStart())
	return nil
}

func printAutoStart(enabled bool) {
	if enabled {
		fmt.Printf("autostart: %s\n", color.GreenString("enabled"))
		return
	}
	fmt.Printf("autostart: %s\n", color.YellowString("disabled"))
}

// newOfflineService builds a panel service for one-shot commands. The FTP
// server is never started from here.
func newOfflineService() (*panel.Service, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	logg = logg.WithOptions(zap.IncreaseLevel(zap.WarnLevel))

	store, err := settings.NewStore(cfg.Store, logg)
	if err != nil {
		return nil, err
	}
	registrar, err := autostart.New(cfg.Autostart)
	if err != nil {
		return nil, err
	}

	network := netinfo.New()
	controller := ftpserver.NewController(cfg.FTP, network, logg)
	return panel.NewService(controller, store, registrar, network, logg), nil
}

func init() {
	autostartCmd.AddCommand(autostartEnableCmd)
	autostartCmd.AddCommand(autostartDisableCmd)
	RootCmd.AddCommand(autostartCmd)
}
