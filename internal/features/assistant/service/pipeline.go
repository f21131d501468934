package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shipment-risk-assistant/internal/core/cache"
	"shipment-risk-assistant/internal/core/logger"
	"shipment-risk-assistant/internal/features/assistant/domain"
	"shipment-risk-assistant/internal/features/assistant/ports"
	shipmentdomain "shipment-risk-assistant/internal/features/shipments/domain"
	shipmentports "shipment-risk-assistant/internal/features/shipments/ports"
	shipmentservice "shipment-risk-assistant/internal/features/shipments/service"

	"go.uber.org/zap"
)

var (
	// ErrNoFilters is returned when no usable filter could be extracted from
	// the message.
	ErrNoFilters = errors.New("at least one filter is required")
	// ErrFilterExtraction is returned when the completion service produced
	// something that could not be read as filter criteria.
	ErrFilterExtraction = errors.New("failed to extract filter criteria from the message")
)

// Pipeline orchestrates a single request: classify the intent, extract
// filters, fetch shipments, predict SLA breaches, and summarize. All external
// collaborators are injected as interfaces.
type Pipeline struct {
	completion ports.TextCompletion
	store      shipmentports.ShipmentStore
	predictor  ports.SlaPredictor
	// intents is optional; when set, classification tokens for repeated
	// messages are cached. Shipment data itself is never cached.
	intents   cache.Cache
	intentTTL time.Duration
	logger    *zap.Logger
}

// NewPipeline creates a new Pipeline. A nil intents cache disables intent
// caching.
func NewPipeline(completion ports.TextCompletion, store shipmentports.ShipmentStore, predictor ports.SlaPredictor, intents cache.Cache, intentTTL time.Duration) *Pipeline {
	return &Pipeline{
		completion: completion,
		store:      store,
		predictor:  predictor,
		intents:    intents,
		intentTTL:  intentTTL,
		logger:     logger.Get(),
	}
}

// Answer runs the full pipeline for one user message.
func (p *Pipeline) Answer(ctx context.Context, message string) (*domain.Answer, error) {
	switch p.classifyIntent(ctx, message) {
	case domain.IntentShipment:
		return p.answerShipment(ctx, message)
	case domain.IntentSla:
		return p.answerSla(ctx, message)
	default:
		return &domain.Answer{Intent: domain.IntentGeneral, Help: helpMessage}, nil
	}
}

// classifyIntent asks the completion service to label the message. A failed
// classification defaults to the general intent instead of aborting; the
// outage is logged since this masks it from the caller.
func (p *Pipeline) classifyIntent(ctx context.Context, message string) domain.Intent {
	key := intentCacheKey(message)
	if p.intents != nil {
		cached, err := p.intents.Get(ctx, key)
		if err == nil {
			return domain.ParseIntent(string(cached))
		}
		if !errors.Is(err, cache.ErrMiss) {
			p.logger.Debug("Intent cache lookup failed", zap.Error(err))
		}
	}

	token, err := p.completion.Complete(ctx, classifyIntentPrompt, map[string]string{
		"userMessage": message,
	})
	if err != nil {
		p.logger.Warn("Intent classification failed, defaulting to general", zap.Error(err))
		return domain.IntentGeneral
	}

	intent := domain.ParseIntent(token)
	if p.intents != nil {
		if err := p.intents.Set(ctx, key, []byte(intent), p.intentTTL); err != nil {
			p.logger.Debug("Failed to cache intent", zap.Error(err))
		}
	}
	return intent
}

// answerShipment extracts a filter dictionary, fetches matching records with
// a dynamically built query, and attaches a per-shipment risk assessment.
func (p *Pipeline) answerShipment(ctx context.Context, message string) (*domain.Answer, error) {
	filters := p.extractFilters(ctx, message)
	if len(filters) == 0 {
		return nil, ErrNoFilters
	}

	// AND only has an effect for a single filter; multiple filters are
	// joined with OR to broaden recall.
	useAnd := len(filters) == 1
	query := shipmentservice.BuildRawQuery(filters, useAnd)
	p.logger.Debug("Built shipment query", zap.String("query", query))

	shipments, err := p.store.FetchByQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shipments: %w", err)
	}

	return &domain.Answer{
		Intent: domain.IntentShipment,
		Shipment: &domain.ShipmentAnswer{
			Message:        fmt.Sprintf("Fetched %d shipment record(s)", len(shipments)),
			Shipments:      shipments,
			RiskAssessment: p.assessRisks(ctx, shipments),
		},
	}, nil
}

// answerSla extracts filter criteria, matches shipments in-process, runs the
// SLA prediction, and asks for a narrative summary.
func (p *Pipeline) answerSla(ctx context.Context, message string) (*domain.Answer, error) {
	raw, err := p.completion.Complete(ctx, slaFilterPrompt, map[string]string{
		"userMessage": message,
	})
	if err != nil {
		return nil, fmt.Errorf("filter extraction call failed: %w", err)
	}

	var criteria shipmentdomain.FilterCriteria
	if err := json.Unmarshal([]byte(cleanJSONResponse(raw)), &criteria); err != nil {
		p.logger.Error("Failed to parse extracted filter criteria", zap.Error(err), zap.String("raw", raw))
		return nil, ErrFilterExtraction
	}

	frames := shipmentservice.ResolveFrames(criteria)

	all, err := p.store.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shipments: %w", err)
	}

	matched := shipmentservice.Filter(all, criteria, frames)

	predicted, err := p.predictor.Predict(ctx, matched)
	if err != nil {
		return nil, fmt.Errorf("sla prediction failed: %w", err)
	}

	shipmentsJSON, err := json.Marshal(predicted)
	if err != nil {
		return nil, fmt.Errorf("failed to encode shipments for summary: %w", err)
	}

	summary, err := p.completion.Complete(ctx, slaSummaryPrompt, map[string]string{
		"userMessage": message,
		"shipments":   string(shipmentsJSON),
	})
	if err != nil {
		return nil, fmt.Errorf("summary call failed: %w", err)
	}

	return &domain.Answer{
		Intent: domain.IntentSla,
		Summary: &domain.SummaryAnswer{
			Message: fmt.Sprintf("Analyzed %d shipment record(s)", len(predicted)),
			Summary: summary,
		},
	}, nil
}

// extractFilters asks for a filter dictionary and normalizes it against the
// field whitelist. Unreadable output degrades to an empty set rather than an
// error; the caller decides what an empty set means.
func (p *Pipeline) extractFilters(ctx context.Context, message string) shipmentdomain.FilterSet {
	raw, err := p.completion.Complete(ctx, shipmentFilterPrompt, map[string]string{
		"userMessage": message,
	})
	if err != nil {
		p.logger.Warn("Filter extraction call failed", zap.Error(err))
		return shipmentdomain.FilterSet{}
	}

	var loose map[string]shipmentdomain.FlexString
	if err := json.Unmarshal([]byte(cleanJSONResponse(raw)), &loose); err != nil {
		p.logger.Warn("Failed to parse extracted filters", zap.Error(err), zap.String("raw", raw))
		return shipmentdomain.FilterSet{}
	}

	filters := make(shipmentdomain.FilterSet, len(loose))
	for field, value := range loose {
		filters[field] = string(value)
	}
	filters = filters.KeepKnown()
	filters.NormalizeRiskScores()
	return filters
}

// assessRisks produces the per-shipment risk table. Any failure yields an
// empty table, never an error: the assessment is advisory.
func (p *Pipeline) assessRisks(ctx context.Context, shipments []shipmentdomain.ShipmentRecord) []domain.ShipmentRisk {
	if len(shipments) == 0 {
		return []domain.ShipmentRisk{}
	}

	shipmentsJSON, err := json.Marshal(shipments)
	if err != nil {
		p.logger.Warn("Failed to encode shipments for risk assessment", zap.Error(err))
		return []domain.ShipmentRisk{}
	}

	raw, err := p.completion.Complete(ctx, riskAssessmentPrompt, map[string]string{
		"shipments": string(shipmentsJSON),
	})
	if err != nil {
		p.logger.Warn("Risk assessment call failed", zap.Error(err))
		return []domain.ShipmentRisk{}
	}

	var risks []domain.ShipmentRisk
	if err := json.Unmarshal([]byte(cleanJSONResponse(raw)), &risks); err != nil {
		p.logger.Warn("Failed to parse risk assessment", zap.Error(err), zap.String("raw", raw))
		return []domain.ShipmentRisk{}
	}
	return risks
}

func intentCacheKey(message string) string {
	sum := sha256.Sum256([]byte(message))
	return "intent:" + hex.EncodeToString(sum[:])
}
