package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/prashant0321/wallet-service/internal/core/ports/services"
	"github.com/prashant0321/wallet-service/internal/dto"
	"github.com/prashant0321/wallet-service/internal/middleware"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: as}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
	}
}

// listAccounts godoc
// @Summary List accounts
// @Description Retrieves active accounts. Pass include_system=true to include the system accounts.
// @Tags accounts
// @Produce json
// @Param include_system query bool false "Include system accounts"
// @Success 200 {array} dto.AccountResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	includeSystem := c.Query("include_system") == "true"

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), includeSystem)
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accounts"})
		return
	}

	resp := make([]dto.AccountResponse, len(accounts))
	for i, a := range accounts {
		resp[i] = dto.ToAccountResponse(a)
	}
	c.JSON(http.StatusOK, resp)
}
