package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/prashant0321/wallet-service/internal/core/ports/services"
	"github.com/prashant0321/wallet-service/internal/dto"
	"github.com/prashant0321/wallet-service/internal/middleware"
)

// assetTypeHandler handles HTTP requests related to asset types.
type assetTypeHandler struct {
	assetTypeService portssvc.AssetTypeSvcFacade
}

func newAssetTypeHandler(ats portssvc.AssetTypeSvcFacade) *assetTypeHandler {
	return &assetTypeHandler{assetTypeService: ats}
}

// registerAssetTypeRoutes registers routes related to asset types.
func registerAssetTypeRoutes(rg *gin.RouterGroup, assetTypeService portssvc.AssetTypeSvcFacade) {
	h := newAssetTypeHandler(assetTypeService)

	assetTypes := rg.Group("/asset_types")
	{
		assetTypes.GET("", h.listAssetTypes)
	}
}

// listAssetTypes godoc
// @Summary List asset types
// @Description Retrieves the active virtual currency catalogue.
// @Tags asset_types
// @Produce json
// @Success 200 {array} dto.AssetTypeResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /asset_types [get]
func (h *assetTypeHandler) listAssetTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	assetTypes, err := h.assetTypeService.ListAssetTypes(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list asset types", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list asset types"})
		return
	}

	resp := make([]dto.AssetTypeResponse, len(assetTypes))
	for i, t := range assetTypes {
		resp[i] = dto.ToAssetTypeResponse(t)
	}
	c.JSON(http.StatusOK, resp)
}
