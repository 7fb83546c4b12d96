package handlers

import (
	"errors"
	"net/http"

	request "credimaq/internal/adapter/http/dto/request"
	response "credimaq/internal/adapter/http/dto/response"
	"credimaq/internal/domain/entities"
	"credimaq/internal/usecase"
	"credimaq/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDecisionPayload = pkg.NewDomainErrorSimple("INVALID_DECISION_INPUT", "Invalid decision payload", http.StatusBadRequest)
)

// AnalystHandler handles the review workflow over in_review applications.

type AnalystHandler struct {
	usecase usecase.IAnalystUseCase
}

func NewAnalystHandler(uc usecase.IAnalystUseCase) *AnalystHandler {
	return &AnalystHandler{usecase: uc}
}

func (h *AnalystHandler) Assign(c *gin.Context) {
	actor, ok := callerActor(c)
	if !ok {
		return
	}

	app, err := h.usecase.Assign(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapAnalystError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(app))
}

func (h *AnalystHandler) StartAnalysis(c *gin.Context) {
	actor, ok := callerActor(c)
	if !ok {
		return
	}

	app, err := h.usecase.StartAnalysis(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapAnalystError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(app))
}

func (h *AnalystHandler) Approve(c *gin.Context) {
	actor, ok := callerActor(c)
	if !ok {
		return
	}

	var payload request.ApproveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDecisionPayload.HTTPStatus, errInvalidDecisionPayload.ToHTTPError())
		return
	}

	app, err := h.usecase.Approve(c.Request.Context(), actor, c.Param("id"), usecase.ApproveInput{
		Amount:     payload.Amount,
		TermMonths: payload.TermMonths,
		Comment:    payload.Comment,
	})
	if err != nil {
		appErr := mapAnalystError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(app))
}

func (h *AnalystHandler) Reject(c *gin.Context) {
	actor, ok := callerActor(c)
	if !ok {
		return
	}

	var payload request.RejectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDecisionPayload.HTTPStatus, errInvalidDecisionPayload.ToHTTPError())
		return
	}

	app, err := h.usecase.Reject(c.Request.Context(), actor, c.Param("id"), usecase.RejectInput{
		Reason:     entities.RejectionReason(payload.Reason),
		ReasonText: payload.ReasonText,
		Comment:    payload.Comment,
	})
	if err != nil {
		appErr := mapAnalystError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(app))
}

func (h *AnalystHandler) Timeline(c *gin.Context) {
	actor, ok := callerActor(c)
	if !ok {
		return
	}

	timeline, err := h.usecase.Timeline(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapAnalystError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTimeline(timeline))
}

func mapAnalystError(err error) *pkg.AppError {
	var appErr *pkg.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidApplicationID),
		errors.Is(err, usecase.ErrInvalidDecisionInput):
		return pkg.NewValidationError("INVALID_REQUEST", "Invalid request")
	case errors.Is(err, usecase.ErrInvalidRejectionReason):
		return pkg.NewValidationError("INVALID_REJECTION_REASON", "Rejection reason is not in the accepted set")
	case errors.Is(err, usecase.ErrNotAuthorized), errors.Is(err, usecase.ErrNotAssignedAnalyst):
		return pkg.NewAuthorizationError("NOT_AUTHORIZED", "Caller is not authorized for this operation")
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return pkg.NewNotFoundError("APPLICATION_NOT_FOUND", "Application not found")
	case errors.Is(err, usecase.ErrNotInReview):
		return pkg.NewConflictError("NOT_IN_REVIEW", "Application is not in review")
	case errors.Is(err, usecase.ErrAlreadyAssigned):
		return pkg.NewConflictError("ALREADY_ASSIGNED", "Application is already assigned")
	case errors.Is(err, usecase.ErrNotAssigned):
		return pkg.NewConflictError("NOT_ASSIGNED", "Application must be assigned first")
	case errors.Is(err, usecase.ErrAnalysisAlreadyStarted):
		return pkg.NewConflictError("ANALYSIS_ALREADY_STARTED", "Analysis already started")
	case errors.Is(err, usecase.ErrAnalysisNotStarted):
		return pkg.NewConflictError("ANALYSIS_NOT_STARTED", "Analysis must be started before deciding")
	case errors.Is(err, usecase.ErrAlreadyDecided):
		return pkg.NewConflictError("ALREADY_DECIDED", "Application already has a final decision")
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
