package handlers

import (
	"net/http"
	"strings"

	"credimaq/internal/domain/entities"
	"credimaq/internal/usecase"
	"credimaq/pkg"

	"github.com/gin-gonic/gin"
)

// Identity headers. Authentication happens upstream (API gateway); this
// service trusts the forwarded identity.
const (
	HeaderUserID    = "X-User-ID"
	HeaderAnalystID = "X-Analyst-ID"
	HeaderRole      = "X-Role"
)

var (
	errMissingUserID  = pkg.NewDomainErrorSimple("MISSING_USER_ID", "X-User-ID header is required", http.StatusUnauthorized)
	errMissingAnalyst = pkg.NewDomainErrorSimple("MISSING_ANALYST_ID", "X-Analyst-ID header is required", http.StatusUnauthorized)
)

func callerUserID(c *gin.Context) (string, bool) {
	userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
	if userID == "" {
		c.JSON(errMissingUserID.HTTPStatus, errMissingUserID.ToHTTPError())
		return "", false
	}
	return userID, true
}

// callerActor resolves the review-side actor. The role defaults to analyst;
// only an explicit admin header elevates, and authorization is still enforced
// by the use case.
func callerActor(c *gin.Context) (usecase.Actor, bool) {
	analystID := strings.TrimSpace(c.GetHeader(HeaderAnalystID))
	if analystID == "" {
		c.JSON(errMissingAnalyst.HTTPStatus, errMissingAnalyst.ToHTTPError())
		return usecase.Actor{}, false
	}

	role := entities.RoleAnalyst
	if strings.EqualFold(strings.TrimSpace(c.GetHeader(HeaderRole)), string(entities.RoleAdmin)) {
		role = entities.RoleAdmin
	}
	return usecase.Actor{ID: analystID, Role: role}, true
}
