package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"easy-ftp/core/autostart"
	"easy-ftp/core/config"
	"easy-ftp/core/ftpserver"
	"easy-ftp/core/loader"
	"easy-ftp/core/logger"
	"easy-ftp/core/middleware/auth"
	"easy-ftp/core/middleware/rayid"
	"easy-ftp/core/netinfo"
	"easy-ftp/core/settings"

	"easy-ftp/feature/panel"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "easy-ftp/docs/swagger"
)

// @title Easy FTP Panel API
// @version 1.0
// @description Control panel API for the embedded Easy FTP server.
// @host localhost:8089
// @BasePath /

var launchedAtLogin bool

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the control panel",
	Long: `Starts the panel HTTP API used by the desktop UI. When the saved
configuration has AutoStart enabled, the FTP server is started as well.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		store, err := settings.NewStore(cfg.Store, logg)
		if err != nil {
			logg.Fatal("Failed to open config store", zap.Error(err))
		}

		registrar, err := autostart.New(cfg.Autostart)
		if err != nil {
			logg.Fatal("Failed to set up autostart", zap.Error(err))
		}

		network := netinfo.New()
		controller := ftpserver.NewController(cfg.FTP, network, logg.Named("ftp"))

		svc := panel.NewService(controller, store, registrar, network, logg)
		controller.OnFailure(svc.HandleEngineFailure)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(panel.NewFeature(svc, panel.NewHandler(svc, logg)))

		// RayID first so every later log line carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Debug("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)

		if cfg.Server.ApiKey == "" && !cfg.Server.IsLoopback() {
			logg.Warn("Panel API is reachable from the network without an API key",
				zap.String("host", cfg.Server.Host))
		}
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		if launchedAtLogin {
			logg.Info("Launched at login")
		}
		if addr, err := svc.Boot(context.Background()); err != nil {
			logg.Error("Failed to start FTP server from saved config", zap.Error(err))
		} else if addr != "" {
			logg.Info("FTP server ready", zap.String("address", addr))
		}

		go func() {
			logg.Info("Starting panel", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Panel failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.FTP.GracePeriod()+5*time.Second)
		defer cancel()
		if err := svc.StopServer(ctx); err != nil {
			logg.Warn("Failed to stop FTP server", zap.Error(err))
		}
		_ = app.ShutdownWithTimeout(5 * time.Second)
	},
}

func init() {
	startCmd.Flags().BoolVar(&launchedAtLogin, "autostart", false, "set by the OS startup entry")
	RootCmd.AddCommand(startCmd)
}
