package bureau

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"credimaq/internal/usecase/interfaces"
	"credimaq/pkg"

	"go.uber.org/zap"
)

var ErrMissingKibanAPIKey = errors.New("missing KIBAN_API_KEY")

// KibanProvider integrates the Kiban bureau REST API. Kiban bundles the
// identity-proofing NIP with the report: the same credentials drive both the
// OTP endpoints and the report query.
//
// The NIP validation endpoint requires two sequential calls for one logical
// validation: the first response only confirms the attempt was registered
// and successful; only the second response carries the explicit "validated"
// assertion. That is the provider contract, not an optimization; do not
// collapse it to one call.

type KibanProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

var _ interfaces.IBureauProvider = (*KibanProvider)(nil)

func NewKibanProvider(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) (*KibanProvider, error) {
	if apiKey == "" {
		return nil, ErrMissingKibanAPIKey
	}
	return &KibanProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}, nil
}

func (p *KibanProvider) Name() string {
	return ProviderKiban
}

func (p *KibanProvider) SendOTP(ctx context.Context, phone, countryCode string) (string, error) {
	body, err := p.post(ctx, "/nip/send", map[string]string{
		"phone":        phone,
		"country_code": countryCode,
	})
	if err != nil {
		return "", err
	}

	var resp struct {
		RequestID string `json:"request_id"`
	}
	if err := json.Unmarshal(body, &resp); err != nil || resp.RequestID == "" {
		return "", pkg.NewProviderError("PROVIDER_BAD_RESPONSE", "NIP send returned no request id", err)
	}
	p.logger.Info("nip sent",
		zap.String("provider", ProviderKiban),
		zap.String("request_id", resp.RequestID))
	return resp.RequestID, nil
}

func (p *KibanProvider) ValidateOTP(ctx context.Context, requestID, code string) (bool, error) {
	payload := map[string]string{"request_id": requestID, "code": code}

	// Phase 1: the attempt must be registered and reported successful.
	body, err := p.post(ctx, "/nip/validate", payload)
	if err != nil {
		return false, err
	}
	var phase1 struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(body, &phase1); err != nil {
		return false, pkg.NewProviderError("PROVIDER_BAD_RESPONSE", "NIP validate phase 1 unreadable", err)
	}
	if !phase1.Success {
		return false, nil
	}

	// Phase 2: only an explicit validated assertion counts.
	body, err = p.post(ctx, "/nip/validate", payload)
	if err != nil {
		return false, err
	}
	var phase2 struct {
		Success   bool `json:"success"`
		Validated bool `json:"validated"`
	}
	if err := json.Unmarshal(body, &phase2); err != nil {
		return false, pkg.NewProviderError("PROVIDER_BAD_RESPONSE", "NIP validate phase 2 unreadable", err)
	}
	return phase2.Success && phase2.Validated, nil
}

func (p *KibanProvider) QueryBureau(ctx context.Context, q interfaces.BureauQuery) (interfaces.BureauReport, error) {
	body, err := p.post(ctx, "/reports", q)
	if err != nil {
		return interfaces.BureauReport{}, err
	}

	var resp struct {
		RequestID string `json:"request_id"`
		Score     int    `json:"score"`
		ScoreName string `json:"score_name"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return interfaces.BureauReport{}, pkg.NewProviderError("PROVIDER_BAD_RESPONSE", "bureau report unreadable", err)
	}
	return interfaces.BureauReport{
		Provider:  ProviderKiban,
		RequestID: resp.RequestID,
		Score:     resp.Score,
		ScoreName: resp.ScoreName,
		Raw:       body,
	}, nil
}

func (p *KibanProvider) post(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", p.apiKey)

	res, err := p.client.Do(req)
	if err != nil {
		// Timeouts and transport failures are provider errors, never an
		// empty success.
		return nil, pkg.NewProviderError("PROVIDER_UNAVAILABLE", "bureau provider unreachable", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, pkg.NewProviderError("PROVIDER_BAD_RESPONSE", "bureau provider response unreadable", err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		p.logger.Warn("bureau provider call failed",
			zap.String("provider", ProviderKiban),
			zap.String("path", path),
			zap.Int("status", res.StatusCode))
		return nil, pkg.NewProviderError("PROVIDER_ERROR",
			fmt.Sprintf("bureau provider returned status %d", res.StatusCode), nil)
	}
	return body, nil
}
