package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/davidbz/unitecon/internal/domain"
)

// CurrentVersion is the envelope version written by Encode.
const CurrentVersion = 2

var (
	// ErrUnsupportedVersion is returned for envelopes newer than this build understands.
	ErrUnsupportedVersion = errors.New("unsupported scenario store version")

	// ErrMissingVersion is returned for an envelope without a positive version.
	ErrMissingVersion = errors.New("scenario store envelope has no version")
)

// legacyIDSpace seeds ids for version 1 scenarios stored without one.
var legacyIDSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("unitecon:scenarios:v1"))

// rawEnvelope defers scenario decoding until the version is known.
type rawEnvelope struct {
	Version   int             `json:"version"`
	Scenarios json.RawMessage `json:"scenarios"`
}

type envelope struct {
	Version   int              `json:"version"`
	Scenarios []scenarioRecord `json:"scenarios"`
}

type scenarioRecord struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	EntityID  string      `json:"entity_id"`
	Plan      planRecord  `json:"plan"`
	Usage     usageRecord `json:"usage"`
	CreatedAt time.Time   `json:"created_at"`
}

type planRecord struct {
	SubscriptionPrice float64 `json:"subscription_price"`
	Currency          string  `json:"currency"`
	USDExchangeRate   float64 `json:"usd_exchange_rate"`
	CreditsInPlan     int     `json:"credits_in_plan"`
	RequestsInPlan    int     `json:"requests_in_plan"`
	OverheadPercent   float64 `json:"overhead_percent"`
}

type usageRecord struct {
	AvgInputTokens     int     `json:"avg_input_tokens"`
	AvgOutputTokens    int     `json:"avg_output_tokens"`
	AvgDurationSeconds float64 `json:"avg_duration_seconds"`
	PricingMode        string  `json:"pricing_mode"`
	SelectedVariantKey string  `json:"selected_variant_key,omitempty"`
}

// legacyScenario is the flat camelCase shape of version 1, a bare JSON array.
type legacyScenario struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	EntityID           string          `json:"entityId"`
	SubscriptionPrice  float64         `json:"subscriptionPrice"`
	Currency           string          `json:"currency"`
	USDExchangeRate    float64         `json:"usdExchangeRate"`
	CreditsInPlan      int             `json:"creditsInPlan"`
	RequestsInPlan     int             `json:"requestsInPlan"`
	OverheadPercent    float64         `json:"overheadPercent"`
	AvgInputTokens     int             `json:"avgInputTokens"`
	AvgOutputTokens    int             `json:"avgOutputTokens"`
	AvgDurationSeconds float64         `json:"avgDurationSeconds"`
	PricingMode        string          `json:"pricingMode"`
	SelectedVariantKey string          `json:"selectedVariantKey"`
	CreatedAt          json.RawMessage `json:"createdAt"`
}

// Encode serializes scenarios in the current envelope version.
func Encode(scenarios []domain.SavedScenario) ([]byte, error) {
	records := make([]scenarioRecord, 0, len(scenarios))
	for _, s := range scenarios {
		records = append(records, toRecord(s))
	}

	data, err := json.Marshal(envelope{Version: CurrentVersion, Scenarios: records})
	if err != nil {
		return nil, fmt.Errorf("failed to encode scenarios: %w", err)
	}
	return data, nil
}

// Decode reads any supported stored version. Empty input means no scenarios.
// The returned version is the one found in data (0 when empty).
func Decode(data []byte) ([]domain.SavedScenario, int, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return []domain.SavedScenario{}, 0, nil
	}

	if data[0] == '[' {
		scenarios, err := decodeLegacy(data)
		return scenarios, 1, err
	}

	var env rawEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, 0, fmt.Errorf("failed to decode scenarios: %w", err)
	}

	switch {
	case env.Version > CurrentVersion:
		return nil, env.Version, fmt.Errorf("%w: %d (newest known is %d)", ErrUnsupportedVersion, env.Version, CurrentVersion)
	case env.Version <= 0:
		return nil, env.Version, ErrMissingVersion
	case env.Version == 1:
		scenarios, err := decodeLegacy(nullAsEmptyList(env.Scenarios))
		return scenarios, 1, err
	}

	var records []scenarioRecord
	if err := json.Unmarshal(nullAsEmptyList(env.Scenarios), &records); err != nil {
		return nil, env.Version, fmt.Errorf("failed to decode scenarios: %w", err)
	}

	scenarios := make([]domain.SavedScenario, 0, len(records))
	for _, r := range records {
		scenarios = append(scenarios, fromRecord(r))
	}
	return scenarios, env.Version, nil
}

func nullAsEmptyList(raw json.RawMessage) json.RawMessage {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return json.RawMessage("[]")
	}
	return raw
}

func decodeLegacy(data []byte) ([]domain.SavedScenario, error) {
	var legacy []legacyScenario
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, fmt.Errorf("failed to decode version 1 scenarios: %w", err)
	}

	scenarios := make([]domain.SavedScenario, 0, len(legacy))
	for i, l := range legacy {
		createdAt, err := parseLegacyTime(l.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", l.ID, err)
		}

		id := l.ID
		if id == "" {
			id = legacyID(i, l)
		}

		currency := l.Currency
		if currency == "" {
			currency = string(domain.CurrencyRUB)
		}

		mode := l.PricingMode
		if mode == "" {
			mode = string(domain.PricingModeBase)
		}

		scenarios = append(scenarios, fromRecord(scenarioRecord{
			ID:       id,
			Name:     l.Name,
			EntityID: l.EntityID,
			Plan: planRecord{
				SubscriptionPrice: l.SubscriptionPrice,
				Currency:          currency,
				USDExchangeRate:   l.USDExchangeRate,
				CreditsInPlan:     l.CreditsInPlan,
				RequestsInPlan:    l.RequestsInPlan,
				OverheadPercent:   l.OverheadPercent,
			},
			Usage: usageRecord{
				AvgInputTokens:     l.AvgInputTokens,
				AvgOutputTokens:    l.AvgOutputTokens,
				AvgDurationSeconds: l.AvgDurationSeconds,
				PricingMode:        mode,
				SelectedVariantKey: l.SelectedVariantKey,
			},
			CreatedAt: createdAt,
		}))
	}
	return scenarios, nil
}

// legacyID derives a stable id for an id-less version 1 scenario, so the id
// listed before migration is written back still resolves.
func legacyID(index int, l legacyScenario) string {
	seed := fmt.Sprintf("%d\x00%s\x00%s\x00%s", index, l.Name, l.EntityID, bytes.TrimSpace(l.CreatedAt))
	return uuid.NewSHA1(legacyIDSpace, []byte(seed)).String()
}

// parseLegacyTime accepts an RFC 3339 string or Unix milliseconds.
func parseLegacyTime(raw json.RawMessage) (time.Time, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return time.Time{}, nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return time.Time{}, fmt.Errorf("invalid createdAt: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid createdAt: %w", err)
		}
		return t.UTC(), nil
	}

	millis, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid createdAt: %w", err)
	}
	return time.UnixMilli(millis).UTC(), nil
}

func toRecord(s domain.SavedScenario) scenarioRecord {
	return scenarioRecord{
		ID:       s.ID,
		Name:     s.Name,
		EntityID: s.EntityID,
		Plan: planRecord{
			SubscriptionPrice: s.Plan.SubscriptionPrice,
			Currency:          string(s.Plan.Currency),
			USDExchangeRate:   s.Plan.USDExchangeRate,
			CreditsInPlan:     s.Plan.CreditsInPlan,
			RequestsInPlan:    s.Plan.RequestsInPlan,
			OverheadPercent:   s.Plan.OverheadPercent,
		},
		Usage: usageRecord{
			AvgInputTokens:     s.Usage.AvgInputTokens,
			AvgOutputTokens:    s.Usage.AvgOutputTokens,
			AvgDurationSeconds: s.Usage.AvgDurationSeconds,
			PricingMode:        string(s.Usage.PricingMode),
			SelectedVariantKey: s.Usage.SelectedVariantKey,
		},
		CreatedAt: s.CreatedAt.UTC(),
	}
}

func fromRecord(r scenarioRecord) domain.SavedScenario {
	return domain.SavedScenario{
		ID:       r.ID,
		Name:     r.Name,
		EntityID: r.EntityID,
		Plan: domain.PlanAssumptions{
			SubscriptionPrice: r.Plan.SubscriptionPrice,
			Currency:          domain.Currency(r.Plan.Currency),
			USDExchangeRate:   r.Plan.USDExchangeRate,
			CreditsInPlan:     r.Plan.CreditsInPlan,
			RequestsInPlan:    r.Plan.RequestsInPlan,
			OverheadPercent:   r.Plan.OverheadPercent,
		},
		Usage: domain.ScenarioUsage{
			AvgInputTokens:     r.Usage.AvgInputTokens,
			AvgOutputTokens:    r.Usage.AvgOutputTokens,
			AvgDurationSeconds: r.Usage.AvgDurationSeconds,
			PricingMode:        domain.PricingMode(r.Usage.PricingMode),
			SelectedVariantKey: r.Usage.SelectedVariantKey,
		},
		CreatedAt: r.CreatedAt.UTC(),
	}
}
