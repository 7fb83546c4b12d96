package handlers

import (
	"net/http"
	"strings"

	response "credimaq/internal/adapter/http/dto/response"
	"credimaq/internal/domain/entities"
	"credimaq/internal/usecase"
	"credimaq/pkg"

	"github.com/gin-gonic/gin"
)

var errMissingAdmin = pkg.NewDomainErrorSimple("MISSING_ADMIN_ID", "X-Analyst-ID header with admin role is required", http.StatusUnauthorized)

// AdminHandler exposes the operator-only endpoints.

type AdminHandler struct {
	usecase usecase.IApplicationUseCase
}

func NewAdminHandler(uc usecase.IApplicationUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

// Repair moves a pending_nip application with no OTP request id back to
// incomplete, the only sanctioned backward transition.
func (h *AdminHandler) Repair(c *gin.Context) {
	actorID := strings.TrimSpace(c.GetHeader(HeaderAnalystID))
	if actorID == "" {
		c.JSON(errMissingAdmin.HTTPStatus, errMissingAdmin.ToHTTPError())
		return
	}

	role := entities.Role(strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderRole))))
	actor := usecase.Actor{ID: actorID, Role: role}

	app, err := h.usecase.RepairApplication(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapApplicationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(app))
}
