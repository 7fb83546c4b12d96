package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"credimaq/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway raises the down-payment charge after an approval. The
// charge carries the application id as external_reference so webhook events
// can be reconciled against the application later.

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	logger   *zap.Logger
}

var _ interfaces.IDownPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, logger *zap.Logger) (*MercadoPagoGateway, error) {
	if isGatewayMockEnabled() {
		logger.Info("down payment gateway in mock mode")
		return &MercadoPagoGateway{mockMode: true, logger: logger}, nil
	}

	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, err
	}
	return &MercadoPagoGateway{client: payment.NewClient(cfg), logger: logger}, nil
}

func (g *MercadoPagoGateway) CreateCharge(ctx context.Context, applicationID string, amount float64, description string) (string, json.RawMessage, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		raw, err := json.Marshal(map[string]any{
			"id":                 id,
			"status":             "approved",
			"status_detail":      "accredited",
			"external_reference": applicationID,
			"transaction_amount": amount,
			"date_created":       time.Now().UTC().Format(time.RFC3339Nano),
		})
		if err != nil {
			return "", nil, err
		}
		g.logger.Info("mock down payment charge created",
			zap.String("application_id", applicationID),
			zap.String("charge_id", id),
			zap.Float64("amount", amount))
		return id, raw, nil
	}

	if g == nil || g.client == nil {
		return "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	req := payment.Request{
		TransactionAmount: amount,
		Description:       description,
		ExternalReference: applicationID,
		PaymentMethodID:   getenvDefault("MERCADOPAGO_PAYMENT_METHOD", "pix"),
	}
	if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_PAYER_EMAIL")); email != "" {
		req.Payer = &payment.PayerRequest{Email: email}
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.logger.Warn("down payment charge failed",
			zap.String("application_id", applicationID),
			zap.Error(err))
		return "", nil, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return "", nil, err
	}
	g.logger.Info("down payment charge created",
		zap.String("application_id", applicationID),
		zap.Int("charge_id", resp.ID),
		zap.String("status", resp.Status))
	return fmt.Sprintf("%d", resp.ID), raw, nil
}

func isGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
