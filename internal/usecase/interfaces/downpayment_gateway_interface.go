package interfaces

import (
	"context"
	"encoding/json"
)

// IDownPaymentGateway raises the optional down-payment charge after an
// approval. Charges are best-effort: a gateway failure is logged and audited
// but never blocks the decision.

type IDownPaymentGateway interface {
	CreateCharge(ctx context.Context, applicationID string, amount float64, description string) (chargeID string, raw json.RawMessage, err error)
}
