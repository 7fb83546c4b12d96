package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"credimaq/internal/adapter/http/handlers/mocks"
	"credimaq/internal/domain/entities"
	"credimaq/internal/usecase"
	"credimaq/internal/usecase/interfaces"
	"credimaq/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestApplicationHandler_CreateApplication(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing user header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		h := NewApplicationHandler(uc)

		r := gin.New()
		r.POST("/v1/applications", h.CreateApplication)

		req := httptest.NewRequest(http.MethodPost, "/v1/applications", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("active application conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		h := NewApplicationHandler(uc)

		r := gin.New()
		r.POST("/v1/applications", h.CreateApplication)

		uc.EXPECT().CreateApplication(gomock.Any(), "user-1").Return(entities.Application{}, usecase.ErrActiveApplicationExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/applications", nil)
		req.Header.Set(HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		h := NewApplicationHandler(uc)

		r := gin.New()
		r.POST("/v1/applications", h.CreateApplication)

		uc.EXPECT().CreateApplication(gomock.Any(), "user-1").Return(entities.Application{ID: "app-1", UserID: "user-1", Status: entities.StatusIncomplete}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/applications", nil)
		req.Header.Set(HeaderUserID, "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["application_id"] != "app-1" || body["status"] != "incomplete" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestApplicationHandler_SubmitStep(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non-numeric step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		h := NewApplicationHandler(uc)

		r := gin.New()
		r.PUT("/v1/applications/:id/steps/:step", h.SubmitStep)

		req := httptest.NewRequest(http.MethodPut, "/v1/applications/app-1/steps/two", bytes.NewBufferString(`{"data":{}}`))
		req.Header.Set(HeaderUserID, "user-1")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		h := NewApplicationHandler(uc)

		r := gin.New()
		r.PUT("/v1/applications/:id/steps/:step", h.SubmitStep)

		req := httptest.NewRequest(http.MethodPut, "/v1/applications/app-1/steps/1", bytes.NewBufferString("{"))
		req.Header.Set(HeaderUserID, "user-1")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		h := NewApplicationHandler(uc)

		r := gin.New()
		r.PUT("/v1/applications/:id/steps/:step", h.SubmitStep)

		uc.EXPECT().SubmitStep(gomock.Any(), "user-1", "app-1", 2, gomock.Any()).Return(entities.Application{ID: "app-1", UserID: "user-1", Status: entities.StatusIncomplete, ContactID: "c-1"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/applications/app-1/steps/2", bytes.NewBufferString(`{"data":{"phone":"5512345678","country_code":"+52"}}`))
		req.Header.Set(HeaderUserID, "user-1")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestApplicationHandler_FinishApplication(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("resumed finish is flagged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		h := NewApplicationHandler(uc)

		r := gin.New()
		r.POST("/v1/applications/:id/finish", h.FinishApplication)

		uc.EXPECT().FinishApplication(gomock.Any(), "user-1", "app-1", true, true).Return(usecase.FinishResult{
			Application: entities.Application{ID: "app-1", UserID: "user-1", Status: entities.StatusPendingNIP},
			Resumed:     true,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/applications/app-1/finish", bytes.NewBufferString(`{"terms_accepted":true,"credit_check_authorized":true}`))
		req.Header.Set(HeaderUserID, "user-1")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["resumed"] != true {
			t.Fatalf("expected resumed flag: %s", w.Body.String())
		}
	})

	t.Run("consents required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		h := NewApplicationHandler(uc)

		r := gin.New()
		r.POST("/v1/applications/:id/finish", h.FinishApplication)

		uc.EXPECT().FinishApplication(gomock.Any(), "user-1", "app-1", true, false).Return(usecase.FinishResult{}, usecase.ErrConsentsRequired)

		req := httptest.NewRequest(http.MethodPost, "/v1/applications/app-1/finish", bytes.NewBufferString(`{"terms_accepted":true}`))
		req.Header.Set(HeaderUserID, "user-1")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestApplicationHandler_ValidateCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("rejected code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		h := NewApplicationHandler(uc)

		r := gin.New()
		r.POST("/v1/applications/:id/nip/validate", h.ValidateCode)

		uc.EXPECT().ValidateCode(gomock.Any(), "user-1", "app-1", "123456").Return(entities.Application{}, usecase.ErrCodeRejected)

		req := httptest.NewRequest(http.MethodPost, "/v1/applications/app-1/nip/validate", bytes.NewBufferString(`{"code":"123456"}`))
		req.Header.Set(HeaderUserID, "user-1")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("validated code returns the evaluated application", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIApplicationUseCase(ctrl)
		h := NewApplicationHandler(uc)

		r := gin.New()
		r.POST("/v1/applications/:id/nip/validate", h.ValidateCode)

		uc.EXPECT().ValidateCode(gomock.Any(), "user-1", "app-1", "123456").Return(entities.Application{ID: "app-1", UserID: "user-1", Status: entities.StatusInReview}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/applications/app-1/nip/validate", bytes.NewBufferString(`{"code":"123456"}`))
		req.Header.Set(HeaderUserID, "user-1")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "in_review" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapApplicationError(t *testing.T) {
	if got := mapApplicationError(usecase.ErrInvalidStep); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapApplicationError(usecase.ErrApplicationNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapApplicationError(usecase.ErrNotOwner); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("ownership failures must read as not found")
	}
	if got := mapApplicationError(usecase.ErrActiveApplicationExists); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapApplicationError(usecase.ErrOTPRequestMissing); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapApplicationError(usecase.ErrCodeRejected); got.HTTPStatus != http.StatusUnprocessableEntity || got.Kind != pkg.KindValidation {
		t.Fatalf("rejected codes are a validation failure, got %d %s", got.HTTPStatus, got.Kind)
	}
	if got := mapApplicationError(usecase.ErrRequestSuperseded); got.HTTPStatus != http.StatusConflict || got.Kind != pkg.KindConflict {
		t.Fatalf("superseded requests must read as a conflict, got %d %s", got.HTTPStatus, got.Kind)
	}
	if got := mapApplicationError(interfaces.ErrConditionalCheckFailed); got.HTTPStatus != http.StatusConflict || got.Kind != pkg.KindConflict {
		t.Fatalf("lost writes must read as a conflict, got %d %s", got.HTTPStatus, got.Kind)
	}
	if got := mapApplicationError(usecase.ErrNotAuthorized); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapApplicationError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
