package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "credimaq/internal/adapter/http/dto/request"
	response "credimaq/internal/adapter/http/dto/response"
	"credimaq/internal/usecase"
	"credimaq/internal/usecase/interfaces"
	"credimaq/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidApplicationPayload = pkg.NewDomainErrorSimple("INVALID_APPLICATION_INPUT", "Invalid application payload", http.StatusBadRequest)
)

// ApplicationHandler handles the applicant-facing pipeline endpoints: the
// five-step form, finish, and the NIP resend/validate pair.

type ApplicationHandler struct {
	usecase usecase.IApplicationUseCase
}

func NewApplicationHandler(uc usecase.IApplicationUseCase) *ApplicationHandler {
	return &ApplicationHandler{usecase: uc}
}

func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	userID, ok := callerUserID(c)
	if !ok {
		return
	}

	app, err := h.usecase.CreateApplication(c.Request.Context(), userID)
	if err != nil {
		appErr := mapApplicationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromApplication(app))
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	userID, ok := callerUserID(c)
	if !ok {
		return
	}

	app, err := h.usecase.GetApplication(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		appErr := mapApplicationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(app))
}

func (h *ApplicationHandler) SubmitStep(c *gin.Context) {
	userID, ok := callerUserID(c)
	if !ok {
		return
	}

	step, err := strconv.Atoi(c.Param("step"))
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_STEP", "Step must be a number between 1 and 4", http.StatusBadRequest).ToHTTPError())
		return
	}

	var payload request.StepRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidApplicationPayload.HTTPStatus, errInvalidApplicationPayload.ToHTTPError())
		return
	}

	app, err := h.usecase.SubmitStep(c.Request.Context(), userID, c.Param("id"), step, payload.Data)
	if err != nil {
		appErr := mapApplicationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(app))
}

func (h *ApplicationHandler) FinishApplication(c *gin.Context) {
	userID, ok := callerUserID(c)
	if !ok {
		return
	}

	var payload request.FinishRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidApplicationPayload.HTTPStatus, errInvalidApplicationPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.FinishApplication(c.Request.Context(), userID, c.Param("id"), payload.TermsAccepted, payload.CreditCheckAuthorized)
	if err != nil {
		appErr := mapApplicationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FinishResponse{
		ApplicationResponse: response.FromApplication(res.Application),
		Resumed:             res.Resumed,
	})
}

func (h *ApplicationHandler) ResendCode(c *gin.Context) {
	userID, ok := callerUserID(c)
	if !ok {
		return
	}

	app, err := h.usecase.ResendCode(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		appErr := mapApplicationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(app))
}

func (h *ApplicationHandler) ValidateCode(c *gin.Context) {
	userID, ok := callerUserID(c)
	if !ok {
		return
	}

	var payload request.ValidateCodeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidApplicationPayload.HTTPStatus, errInvalidApplicationPayload.ToHTTPError())
		return
	}

	app, err := h.usecase.ValidateCode(c.Request.Context(), userID, c.Param("id"), payload.Code)
	if err != nil {
		appErr := mapApplicationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(app))
}

func mapApplicationError(err error) *pkg.AppError {
	var appErr *pkg.AppError
	if errors.As(err, &appErr) {
		// Provider errors already carry code, message and status.
		return appErr
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidApplicationID),
		errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidStep),
		errors.Is(err, usecase.ErrInvalidStepPayload):
		return pkg.NewValidationError("INVALID_REQUEST", "Invalid request")
	case errors.Is(err, usecase.ErrInvalidCode):
		return pkg.NewValidationError("INVALID_CODE", "Code must be 6 numeric digits")
	case errors.Is(err, usecase.ErrConsentsRequired):
		return pkg.NewValidationError("CONSENTS_REQUIRED", "Terms and credit check consents are required")
	case errors.Is(err, usecase.ErrMissingSubRecords):
		return pkg.NewValidationError("MISSING_STEPS", "All form steps must be completed first")
	case errors.Is(err, usecase.ErrApplicationNotFound), errors.Is(err, usecase.ErrNotOwner):
		// Ownership failures read as not-found so ids are not probeable.
		return pkg.NewNotFoundError("APPLICATION_NOT_FOUND", "Application not found")
	case errors.Is(err, usecase.ErrActiveApplicationExists):
		return pkg.NewConflictError("ACTIVE_APPLICATION_EXISTS", "User already has an active application")
	case errors.Is(err, usecase.ErrApplicationNotEditable):
		return pkg.NewConflictError("APPLICATION_NOT_EDITABLE", "Application is no longer editable")
	case errors.Is(err, usecase.ErrNotAwaitingCode):
		return pkg.NewConflictError("NOT_AWAITING_CODE", "Application is not awaiting code validation")
	case errors.Is(err, usecase.ErrCodeRejected):
		return pkg.NewDomainErrorWithKind("CODE_REJECTED", "Code was not validated", pkg.KindValidation, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrRequestSuperseded):
		return pkg.NewConflictError("CODE_REQUEST_SUPERSEDED", "Code request was superseded; request a new code")
	case errors.Is(err, interfaces.ErrConditionalCheckFailed):
		return pkg.NewConflictError("CONCURRENT_UPDATE", "Application was updated concurrently; refresh and retry")
	case errors.Is(err, usecase.ErrOTPRequestMissing):
		return pkg.NewRepairNeededError("OTP_REQUEST_MISSING", "No pending code request; contact support")
	case errors.Is(err, usecase.ErrNotAuthorized):
		return pkg.NewAuthorizationError("NOT_AUTHORIZED", "Caller is not authorized for this operation")
	case errors.Is(err, usecase.ErrRepairNotApplicable):
		return pkg.NewConflictError("REPAIR_NOT_APPLICABLE", "Application does not need repair")
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
