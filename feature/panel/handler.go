package panel

import (
	"easy-ftp/core/apperr"
	"easy-ftp/core/ftpserver"
	"easy-ftp/core/logger"
	"easy-ftp/core/settings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AutoStartRequest is the body of PUT /api/autostart.
type AutoStartRequest struct {
	Enabled bool `json:"enabled"`
}

// ErrorResponse is returned by every failing endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Handler handles HTTP requests from the UI.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	// Force import for Swagger
	var _ = ftpserver.Status{}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the panel routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	api := app.Group("/api")

	srv := api.Group("/server")
	srv.Post("/start", h.HandleStart)
	srv.Post("/stop", h.HandleStop)
	srv.Get("/status", h.HandleStatus)
	srv.Get("/address", h.HandleAddress)

	cfg := api.Group("/config")
	cfg.Get("/", h.HandleGetConfig)
	cfg.Put("/", h.HandleSaveConfig)
	cfg.Get("/default", h.HandleDefaultConfig)

	api.Get("/autostart", h.HandleGetAutoStart)
	api.Put("/autostart", h.HandleSetAutoStart)
	api.Get("/network", h.HandleNetwork)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	kind := apperr.KindOf(err)
	logger.WithRayID(h.logger, c).Warn(msg,
		zap.String("kind", string(kind)),
		zap.Error(err))

	return c.Status(apperr.HTTPStatus(kind)).JSON(ErrorResponse{
		Error: apperr.Message(err),
		Code:  string(kind),
	})
}

func (h *Handler) parseConfig(c *fiber.Ctx) (settings.ServerConfig, error) {
	var cfg settings.ServerConfig
	if err := c.BodyParser(&cfg); err != nil {
		return cfg, apperr.New(apperr.KindInvalidConfig, "parse body", err)
	}
	return cfg, nil
}

// HandleStart starts the FTP server.
// @Summary Start FTP Server
// @Description Validates the configuration and starts the embedded FTP server. Returns the address clients should connect to.
// @Tags server
// @Accept json
// @Produce json
// @Param config body settings.ServerConfig true "Server configuration"
// @Success 200 {object} map[string]string "Address"
// @Failure 400 {object} ErrorResponse "Invalid configuration"
// @Failure 409 {object} ErrorResponse "Already running, port in use or another start or stop in progress"
// @Failure 500 {object} ErrorResponse "Engine failure"
// @Router /api/server/start [post]
func (h *Handler) HandleStart(c *fiber.Ctx) error {
	cfg, err := h.parseConfig(c)
	if err != nil {
		return h.fail(c, "Invalid start request", err)
	}

	results, err := h.service.StartServerAsync(c.UserContext(), cfg)
	if err != nil {
		return h.fail(c, "Failed to start FTP server", err)
	}
	res := <-results
	if res.Err != nil {
		return h.fail(c, "Failed to start FTP server", res.Err)
	}

	logger.WithRayID(h.logger, c).Info("FTP server started", zap.String("address", res.Address))
	return c.JSON(fiber.Map{"address": res.Address})
}

// HandleStop stops the FTP server.
// @Summary Stop FTP Server
// @Description Stops accepting connections, drains open sessions within the grace period and releases the port. Succeeds when already stopped.
// @Tags server
// @Produce json
// @Success 200 {object} map[string]string "Stopped"
// @Failure 409 {object} ErrorResponse "Another start or stop in progress"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /api/server/stop [post]
func (h *Handler) HandleStop(c *fiber.Ctx) error {
	results, err := h.service.StopServerAsync(c.UserContext())
	if err != nil {
		return h.fail(c, "Failed to stop FTP server", err)
	}
	if res := <-results; res.Err != nil {
		return h.fail(c, "Failed to stop FTP server", res.Err)
	}
	return c.JSON(fiber.Map{"status": "stopped"})
}

// HandleStatus returns the server status.
// @Summary Server Status
// @Description Returns lifecycle state, address, start time, open sessions and the last engine error.
// @Tags server
// @Produce json
// @Success 200 {object} ftpserver.Status "Status"
// @Router /api/server/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.Status())
}

// HandleAddress returns the advertised address.
// @Summary Server Address
// @Description Returns the address clients should connect to, or an empty string when stopped.
// @Tags server
// @Produce json
// @Success 200 {object} map[string]string "Address"
// @Router /api/server/address [get]
func (h *Handler) HandleAddress(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"address": h.service.GetServerAddress()})
}

// HandleGetConfig returns the saved configuration.
// @Summary Get Configuration
// @Description Returns the saved server configuration, or defaults when none is saved or the file is unreadable.
// @Tags config
// @Produce json
// @Success 200 {object} settings.ServerConfig "Configuration"
// @Router /api/config [get]
func (h *Handler) HandleGetConfig(c *fiber.Ctx) error {
	return c.JSON(h.service.LoadConfig())
}

// HandleSaveConfig saves the configuration.
// @Summary Save Configuration
// @Description Validates and atomically saves the server configuration. A running server keeps its current settings until restarted.
// @Tags config
// @Accept json
// @Produce json
// @Param config body settings.ServerConfig true "Server configuration"
// @Success 200 {object} map[string]string "Saved"
// @Failure 400 {object} ErrorResponse "Invalid configuration"
// @Failure 500 {object} ErrorResponse "Storage failure"
// @Router /api/config [put]
func (h *Handler) HandleSaveConfig(c *fiber.Ctx) error {
	cfg, err := h.parseConfig(c)
	if err != nil {
		return h.fail(c, "Invalid config body", err)
	}
	if err := h.service.SaveConfig(cfg); err != nil {
		return h.fail(c, "Failed to save config", err)
	}
	return c.JSON(fiber.Map{"status": "saved"})
}

// HandleDefaultConfig returns the suggested first-run configuration.
// @Summary Default Configuration
// @Description Suggests the executable directory as root with stock credentials and port 2121.
// @Tags config
// @Produce json
// @Success 200 {object} settings.ServerConfig "Configuration"
// @Router /api/config/default [get]
func (h *Handler) HandleDefaultConfig(c *fiber.Ctx) error {
	return c.JSON(h.service.DefaultConfig())
}

// HandleGetAutoStart reports the OS startup registration.
// @Summary Get Autostart
// @Description Reads the startup registration from the OS on every call.
// @Tags autostart
// @Produce json
// @Success 200 {object} AutoStartRequest "Registration"
// @Router /api/autostart [get]
func (h *Handler) HandleGetAutoStart(c *fiber.Ctx) error {
	return c.JSON(AutoStartRequest{Enabled: h.service.CheckAutoStart()})
}

// HandleSetAutoStart registers or removes the OS startup entry.
// @Summary Set Autostart
// @Description Saves the preference and updates the OS startup entry. The saved preference is restored if the OS refuses.
// @Tags autostart
// @Accept json
// @Produce json
// @Param request body AutoStartRequest true "Desired state"
// @Success 200 {object} AutoStartRequest "Registration"
// @Failure 400 {object} ErrorResponse "Invalid body"
// @Failure 403 {object} ErrorResponse "Permission denied"
// @Failure 500 {object} ErrorResponse "Storage failure"
// @Router /api/autostart [put]
func (h *Handler) HandleSetAutoStart(c *fiber.Ctx) error {
	var req AutoStartRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, "Invalid autostart body", apperr.New(apperr.KindInvalidConfig, "parse body", err))
	}
	if err := h.service.SetAutoStart(req.Enabled); err != nil {
		return h.fail(c, "Failed to update autostart", err)
	}
	return c.JSON(AutoStartRequest{Enabled: req.Enabled})
}

// HandleNetwork lists reachable addresses.
// @Summary Network Addresses
// @Description Lists every non-loopback IPv4 address of an active interface, in the order the primary address is chosen from.
// @Tags network
// @Produce json
// @Success 200 {object} map[string]interface{} "Candidates"
// @Failure 404 {object} ErrorResponse "No usable interface"
// @Router /api/network [get]
func (h *Handler) HandleNetwork(c *fiber.Ctx) error {
	candidates, err := h.service.Network()
	if err != nil {
		return h.fail(c, "No network address", err)
	}
	return c.JSON(fiber.Map{
		"primary":    candidates[0].IP,
		"candidates": candidates,
	})
}
