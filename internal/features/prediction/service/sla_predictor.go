package service

import (
	"context"
	"strconv"
	"time"

	"shipment-risk-assistant/internal/core/logger"
	"shipment-risk-assistant/internal/features/prediction/domain"
	"shipment-risk-assistant/internal/features/prediction/ports"
	shipmentdomain "shipment-risk-assistant/internal/features/shipments/domain"

	"go.uber.org/zap"
)

// SlaPredictor annotates shipment records with SLA breach predictions. The
// mode is fixed at construction: mock mode reads a static table, live mode
// calls the ML endpoint and falls back to the mock table on failure.
type SlaPredictor struct {
	endpoint ports.PredictionEndpoint
	mock     ports.MockSource
	useMock  bool
	logger   *zap.Logger
}

// NewSlaPredictor creates a new SlaPredictor. When useMock is set the live
// endpoint is never called.
func NewSlaPredictor(endpoint ports.PredictionEndpoint, mock ports.MockSource, useMock bool) *SlaPredictor {
	return &SlaPredictor{
		endpoint: endpoint,
		mock:     mock,
		useMock:  useMock,
		logger:   logger.Get(),
	}
}

// Predict returns the shipments with slaBreach and slaBreachProbability set.
// In live mode any failure triggers one mock re-attempt on the same input;
// if that also fails, the original live error is the one returned.
func (p *SlaPredictor) Predict(ctx context.Context, shipments []shipmentdomain.ShipmentRecord) ([]shipmentdomain.ShipmentRecord, error) {
	if p.useMock {
		return p.applyMock(shipments)
	}

	predicted, err := p.applyLive(ctx, shipments)
	if err == nil {
		return predicted, nil
	}

	p.logger.Error("Live SLA prediction failed, falling back to mock predictions", zap.Error(err))

	fallback, fallbackErr := p.applyMock(shipments)
	if fallbackErr != nil {
		p.logger.Error("Mock prediction fallback failed", zap.Error(fallbackErr))
		return nil, err
	}
	return fallback, nil
}

func (p *SlaPredictor) applyLive(ctx context.Context, shipments []shipmentdomain.ShipmentRecord) ([]shipmentdomain.ShipmentRecord, error) {
	features := BuildFeatures(shipments)

	result, err := p.endpoint.Predict(ctx, features)
	if err != nil {
		return nil, err
	}

	out := append([]shipmentdomain.ShipmentRecord(nil), shipments...)
	for i := 0; i < len(out) && i < len(result.Prediction); i++ {
		breach := domain.CoerceBool(result.Prediction[i])
		out[i].SlaBreach = &breach
		if i < len(result.Probability) {
			out[i].SlaBreachProbability = domain.CoerceProbability(result.Probability[i])
		}
	}
	return out, nil
}

func (p *SlaPredictor) applyMock(shipments []shipmentdomain.ShipmentRecord) ([]shipmentdomain.ShipmentRecord, error) {
	table, err := p.mock.Load()
	if err != nil {
		return nil, err
	}
	if table == nil || len(table.Prediction) == 0 {
		p.logger.Warn("Mock predictions unavailable, returning shipments unmodified")
		return shipments, nil
	}

	out := append([]shipmentdomain.ShipmentRecord(nil), shipments...)
	for i := range out {
		// Cyclic reuse: the mock table is deliberately smaller than most
		// shipment batches.
		mockIndex := i % len(table.Prediction)
		breach := domain.CoerceBool(table.Prediction[mockIndex])
		out[i].SlaBreach = &breach
		if mockIndex < len(table.Probability) {
			out[i].SlaBreachProbability = domain.CoerceProbability(table.Probability[mockIndex])
		}
	}
	return out, nil
}

// BuildFeatures derives the ML feature rows from the shipment records.
func BuildFeatures(shipments []shipmentdomain.ShipmentRecord) []domain.FeatureRow {
	rows := make([]domain.FeatureRow, 0, len(shipments))
	for _, s := range shipments {
		creation := parseDatetime(s.ShipmentCreationDatetime)
		pickup := parseDatetime(s.PickupDatetime)
		eta := parseDatetime(s.DeliveryETADatetime)

		rows = append(rows, domain.FeatureRow{
			ShipmentMode:       s.ShipmentMode,
			CarrierService:     s.CarrierService,
			OriginCity:         s.OriginCity,
			DestinationCity:    s.DestinationCity,
			OriginCountry:      s.OriginCountry,
			DestinationCountry: s.DestinationCountry,
			CreationHour:       hourOf(creation),
			PickupHour:         hourOf(pickup),
			EtaHour:            hourOf(eta),
			DaysToPickup:       daysBetween(creation, pickup),
			DaysToEta:          daysBetween(creation, eta),
			AirRisk:            extractRiskScore(s, "Air"),
			OceanRisk:          extractRiskScore(s, "Ocean"),
			SurfaceRisk:        extractRiskScore(s, "Surface"),
		})
	}
	return rows
}

// extractRiskScore selects the per-transport risk score for the given mode.
// The direct risk fields take precedence; only an unrecognized mode reaches
// the fallback arm, which yields the port-congestion score when the shipment
// declares that same mode and the score parses, and 5 otherwise. The fallback
// is deliberately this narrow.
func extractRiskScore(s shipmentdomain.ShipmentRecord, mode string) *int {
	switch mode {
	case "Air":
		return parseInt(s.AirRisk)
	case "Ocean":
		return parseInt(s.OceanRisk)
	case "Surface":
		return parseInt(s.SurfaceRisk)
	default:
		if s.ShipmentMode == mode {
			if score := parseInt(s.PortCongestionRiskScore); score != nil {
				return score
			}
		}
		fallback := 5
		return &fallback
	}
}

func parseInt(value string) *int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &n
}

func parseDatetime(value string) *time.Time {
	parsed, ok := shipmentdomain.ParseDatetime(value)
	if !ok {
		return nil
	}
	return &parsed
}

func hourOf(t *time.Time) *int {
	if t == nil {
		return nil
	}
	hour := t.Hour()
	return &hour
}

// daysBetween is the whole number of days from one instant to the other,
// truncated toward zero.
func daysBetween(from, to *time.Time) *int {
	if from == nil || to == nil {
		return nil
	}
	days := int(to.Sub(*from).Hours() / 24)
	return &days
}
