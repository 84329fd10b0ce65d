package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// DeviceHandler serves devices mirrored from the bridge
type DeviceHandler struct {
	devices usecase.DeviceUseCase
	logger  coreport.Logger
}

// NewDeviceHandler creates a new device handler instance
func NewDeviceHandler(devices usecase.DeviceUseCase, logger coreport.Logger) *DeviceHandler {
	return &DeviceHandler{devices: devices, logger: logger}
}

// List handles GET /api/devices
func (h *DeviceHandler) List(c *gin.Context) {
	devices, err := h.devices.ListDevices(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, h.logger, "list devices", err)
		return
	}
	respond(c, http.StatusOK, dto.NewDeviceResponses(devices))
}

// Sync handles POST /api/devices/sync
func (h *DeviceHandler) Sync(c *gin.Context) {
	devices, err := h.devices.SyncUserDevices(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, h.logger, "sync devices", err)
		return
	}
	respondMessage(c, http.StatusOK, "Devices synchronized", dto.NewDeviceResponses(devices))
}

// ListAll handles GET /api/admin/devices
func (h *DeviceHandler) ListAll(c *gin.Context) {
	devices, err := h.devices.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "list all devices", err)
		return
	}
	respond(c, http.StatusOK, dto.NewDeviceResponses(devices))
}
