package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// PackageHandler serves the package catalogue and purchases
type PackageHandler struct {
	packages usecase.PackageUseCase
	wallet   usecase.WalletUseCase
	logger   coreport.Logger
}

// NewPackageHandler creates a new package handler instance
func NewPackageHandler(packages usecase.PackageUseCase, wallet usecase.WalletUseCase, logger coreport.Logger) *PackageHandler {
	return &PackageHandler{packages: packages, wallet: wallet, logger: logger}
}

// List handles GET /api/packages
func (h *PackageHandler) List(c *gin.Context) {
	pkgs, err := h.packages.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "list packages", err)
		return
	}

	items := make([]dto.PackageResponse, 0, len(pkgs))
	for _, p := range pkgs {
		items = append(items, dto.NewPackageResponse(p))
	}
	respond(c, http.StatusOK, items)
}

// Mine handles GET /api/packages/mine
func (h *PackageHandler) Mine(c *gin.Context) {
	owned, err := h.packages.MyPackages(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, h.logger, "list my packages", err)
		return
	}

	items := make([]dto.UserPackageResponse, 0, len(owned))
	for _, up := range owned {
		items = append(items, dto.NewUserPackageResponse(up))
	}
	respond(c, http.StatusOK, items)
}

// Purchase handles POST /api/packages/:id/purchase
func (h *PackageHandler) Purchase(c *gin.Context) {
	pkgID, err := idParam(c, "id")
	if err != nil {
		respondError(c, h.logger, "purchase package", err)
		return
	}

	result, err := h.wallet.PurchasePackage(c.Request.Context(), middleware.CurrentUserID(c), pkgID)
	if err != nil {
		respondError(c, h.logger, "purchase package", err)
		return
	}

	resp := dto.PurchaseResponse{
		Package:  dto.NewUserPackageResponse(result.UserPackage),
		Extended: result.Extended,
	}
	if result.Transaction != nil {
		tx := dto.NewTransactionResponse(result.Transaction)
		resp.Transaction = &tx
	}

	message := "Package activated"
	if result.Extended {
		message = "Package extended"
	}
	respondMessage(c, http.StatusOK, message, resp)
}

// Create handles POST /api/admin/packages
func (h *PackageHandler) Create(c *gin.Context) {
	var req dto.PackageRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "create package", err)
		return
	}

	pkg, err := h.packages.Create(c.Request.Context(), packageInput(req))
	if err != nil {
		respondError(c, h.logger, "create package", err)
		return
	}
	respondMessage(c, http.StatusCreated, "Package created", dto.NewPackageResponse(pkg))
}

// Update handles PUT /api/admin/packages/:id
func (h *PackageHandler) Update(c *gin.Context) {
	pkgID, err := idParam(c, "id")
	if err != nil {
		respondError(c, h.logger, "update package", err)
		return
	}

	var req dto.PackageRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "update package", err)
		return
	}

	pkg, err := h.packages.Update(c.Request.Context(), pkgID, packageInput(req))
	if err != nil {
		respondError(c, h.logger, "update package", err)
		return
	}
	respondMessage(c, http.StatusOK, "Package updated", dto.NewPackageResponse(pkg))
}

func packageInput(req dto.PackageRequest) usecase.PackageInput {
	return usecase.PackageInput{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		DurationDays: req.DurationDays,
		DeviceLimit:  req.DeviceLimit,
		Active:       req.Active,
	}
}
