package bureau

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"sync"

	"credimaq/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type simulatedRequest struct {
	phone            string
	code             string
	attemptConfirmed bool
}

// SimulatedProvider is the in-process bureau used by local and test
// deployments. It issues real 6-digit codes and honors the same two-phase
// validation handshake as the external providers, so callers cannot tell the
// difference through the abstraction.

type SimulatedProvider struct {
	mu       sync.Mutex
	requests map[string]*simulatedRequest
	logger   *zap.Logger
}

var _ interfaces.IBureauProvider = (*SimulatedProvider)(nil)

func NewSimulatedProvider(logger *zap.Logger) *SimulatedProvider {
	return &SimulatedProvider{
		requests: make(map[string]*simulatedRequest),
		logger:   logger,
	}
}

func (p *SimulatedProvider) Name() string {
	return ProviderSimulated
}

func (p *SimulatedProvider) SendOTP(_ context.Context, phone, countryCode string) (string, error) {
	requestID := uuid.NewString()
	code := fmt.Sprintf("%06d", rand.IntN(1000000))

	p.mu.Lock()
	p.requests[requestID] = &simulatedRequest{phone: phone, code: code}
	p.mu.Unlock()

	p.logger.Info("simulated nip sent",
		zap.String("provider", ProviderSimulated),
		zap.String("request_id", requestID),
		zap.String("phone", countryCode+phone),
		zap.String("code", code)) // local use only, never a real channel
	return requestID, nil
}

// ValidateOTP performs both handshake phases against the in-memory store:
// phase 1 registers the attempt, phase 2 asserts validation. Either phase
// failing yields valid=false.
func (p *SimulatedProvider) ValidateOTP(_ context.Context, requestID, code string) (bool, error) {
	if !p.registerAttempt(requestID, code) {
		return false, nil
	}
	return p.confirmAttempt(requestID), nil
}

func (p *SimulatedProvider) registerAttempt(requestID, code string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	req, ok := p.requests[requestID]
	if !ok || req.code != code {
		return false
	}
	req.attemptConfirmed = true
	return true
}

func (p *SimulatedProvider) confirmAttempt(requestID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	req, ok := p.requests[requestID]
	return ok && req.attemptConfirmed
}

func (p *SimulatedProvider) QueryBureau(_ context.Context, q interfaces.BureauQuery) (interfaces.BureauReport, error) {
	score := 300 + rand.IntN(551)
	requestID := uuid.NewString()
	raw, _ := json.Marshal(map[string]any{
		"request_id": requestID,
		"score":      score,
		"score_name": "SIM",
		"subject":    q.FirstName + " " + q.LastName,
	})
	return interfaces.BureauReport{
		Provider:  ProviderSimulated,
		RequestID: requestID,
		Score:     score,
		ScoreName: "SIM",
		Raw:       raw,
	}, nil
}
