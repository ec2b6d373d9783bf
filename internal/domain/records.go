package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Reserved keys inside a price_variants object. They carry metadata, never a variant.
const (
	variantKeyConstraints = "constraints"
	variantKeyDisplayName = "display_name"
)

// AdapterRecord is one adapter as returned by the backend adapter catalog.
type AdapterRecord struct {
	Name        string               `json:"name"`
	DisplayName string               `json:"display_name"`
	Type        string               `json:"type"`
	Models      []AdapterModelRecord `json:"models"`
}

// AdapterModelRecord is one token-priced model served by an adapter.
type AdapterModelRecord struct {
	ID          string                `json:"id"`
	DisplayName string                `json:"display_name,omitempty"`
	Type        string                `json:"type"`
	Pricing     *AdapterPricingRecord `json:"pricing,omitempty"`
}

// AdapterPricingRecord holds per-1K token prices in USD.
type AdapterPricingRecord struct {
	InputPer1K  float64  `json:"input_per_1k"`
	OutputPer1K float64  `json:"output_per_1k"`
	PerRequest  *float64 `json:"per_request,omitempty"`
}

// ProviderPriceRecord is one row of the backend provider price list.
type ProviderPriceRecord struct {
	ModelName        string        `json:"model_name"`
	Provider         string        `json:"provider"`
	PriceType        string        `json:"price_type"`
	PriceUSD         float64       `json:"price_usd"`
	IsActive         bool          `json:"is_active"`
	ReplicateModelID string        `json:"replicate_model_id"`
	MediaType        string        `json:"media_type,omitempty"`
	PriceVariants    PriceVariants `json:"price_variants"`
}

// PriceVariants is the ordered variant map of a provider price record.
// Reserved metadata keys are dropped while decoding.
type PriceVariants []Variant

type variantRecord struct {
	Label          string   `json:"label"`
	Duration       *float64 `json:"duration"`
	Sound          *bool    `json:"sound"`
	PriceUSD       *float64 `json:"price_usd"`
	PricePerSecond *float64 `json:"price_per_second"`
	Mode           string   `json:"mode"`
}

// UnmarshalJSON decodes a JSON object keyed by variant key, keeping document order.
// null or any non-object decodes to no variants. A value that is not a variant object
// keeps only its key, so it never contributes a price.
func (p *PriceVariants) UnmarshalJSON(data []byte) error {
	*p = nil

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read price variants: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		// Any other shape means no usable variant pricing.
		return nil
	}

	variants := make(PriceVariants, 0)
	for dec.More() {
		keyTok, keyErr := dec.Token()
		if keyErr != nil {
			return fmt.Errorf("failed to read variant key: %w", keyErr)
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if valueErr := dec.Decode(&raw); valueErr != nil {
			return fmt.Errorf("failed to read variant %q: %w", key, valueErr)
		}

		if isReservedVariantKey(key) {
			continue
		}

		variants = append(variants, decodeVariant(key, raw))
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to close price variants: %w", err)
	}

	if len(variants) > 0 {
		*p = variants
	}
	return nil
}

// MarshalJSON encodes the variants back into a key-ordered object.
func (p PriceVariants) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, v := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(v.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(variantRecord{
			Label:          v.Label,
			Duration:       v.DurationSeconds,
			Sound:          v.Sound,
			PriceUSD:       v.PriceUSD,
			PricePerSecond: v.PricePerSecond,
			Mode:           v.Mode,
		})
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// lenientVariant mirrors variantRecord with tolerant scalar fields.
type lenientVariant struct {
	Label          flexString `json:"label"`
	Duration       flexFloat  `json:"duration"`
	Sound          flexBool   `json:"sound"`
	PriceUSD       flexFloat  `json:"price_usd"`
	PricePerSecond flexFloat  `json:"price_per_second"`
	Mode           flexString `json:"mode"`
}

func decodeVariant(key string, raw json.RawMessage) Variant {
	var rec lenientVariant
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Variant{Key: key, Label: key}
	}

	label := string(rec.Label)
	if label == "" {
		label = key
	}

	var sound *bool
	if rec.Sound.set {
		v := rec.Sound.value
		sound = &v
	}

	return Variant{
		Key:             key,
		Label:           label,
		PriceUSD:        rec.PriceUSD.Ptr(),
		PricePerSecond:  rec.PricePerSecond.Ptr(),
		DurationSeconds: rec.Duration.Ptr(),
		Sound:           sound,
		Mode:            string(rec.Mode),
	}
}

func isReservedVariantKey(key string) bool {
	return key == variantKeyConstraints || key == variantKeyDisplayName
}

// UnmarshalJSON decodes the pricing block, reading malformed prices as 0.
func (r *AdapterPricingRecord) UnmarshalJSON(data []byte) error {
	type plain AdapterPricingRecord
	aux := struct {
		*plain
		InputPer1K  flexFloat `json:"input_per_1k"`
		OutputPer1K flexFloat `json:"output_per_1k"`
		PerRequest  flexFloat `json:"per_request"`
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.InputPer1K = aux.InputPer1K.Value()
	r.OutputPer1K = aux.OutputPer1K.Value()
	r.PerRequest = aux.PerRequest.Ptr()
	return nil
}

// UnmarshalJSON decodes a price row, reading a malformed price as 0 and a
// malformed activity flag as inactive.
func (r *ProviderPriceRecord) UnmarshalJSON(data []byte) error {
	type plain ProviderPriceRecord
	aux := struct {
		*plain
		PriceUSD flexFloat `json:"price_usd"`
		IsActive flexBool  `json:"is_active"`
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.PriceUSD = aux.PriceUSD.Value()
	r.IsActive = aux.IsActive.value
	return nil
}

// UnmarshalJSON decodes usage aggregates. Counts sent as floats are truncated;
// malformed averages are absent.
func (s *HistoricalStat) UnmarshalJSON(data []byte) error {
	aux := struct {
		RequestCount       flexFloat `json:"request_count"`
		AvgDurationSeconds flexFloat `json:"avg_video_duration"`
		AvgInputTokens     flexFloat `json:"avg_tokens_input"`
		AvgOutputTokens    flexFloat `json:"avg_tokens_output"`
		AvgTotalTokens     flexFloat `json:"avg_tokens_total"`
		AvgProviderCostUSD flexFloat `json:"avg_provider_cost"`
	}{}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*s = HistoricalStat{
		RequestCount:       int64(aux.RequestCount.Value()),
		AvgDurationSeconds: aux.AvgDurationSeconds.Ptr(),
		AvgInputTokens:     aux.AvgInputTokens.Ptr(),
		AvgOutputTokens:    aux.AvgOutputTokens.Ptr(),
		AvgTotalTokens:     aux.AvgTotalTokens.Ptr(),
		AvgProviderCostUSD: aux.AvgProviderCostUSD.Ptr(),
	}
	return nil
}

// flexFloat accepts a JSON number or a numeric string. Anything else is absent.
type flexFloat struct {
	value float64
	set   bool
}

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	*f = flexFloat{}

	text := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = strings.TrimSpace(unquoted)
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	*f = flexFloat{value: v, set: true}
	return nil
}

// Value returns the number, or 0 when absent.
func (f flexFloat) Value() float64 {
	return f.value
}

// Ptr returns the number, or nil when absent.
func (f flexFloat) Ptr() *float64 {
	if !f.set {
		return nil
	}
	v := f.value
	return &v
}

// flexBool accepts a JSON boolean or "true"/"false". Anything else is false.
type flexBool struct {
	value bool
	set   bool
}

func (b *flexBool) UnmarshalJSON(data []byte) error {
	*b = flexBool{}

	text := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = strings.ToLower(strings.TrimSpace(unquoted))
	}

	switch text {
	case "true":
		*b = flexBool{value: true, set: true}
	case "false":
		*b = flexBool{value: false, set: true}
	}
	return nil
}

// flexString accepts a JSON string. Anything else is empty.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		*s = ""
		return nil
	}
	*s = flexString(v)
	return nil
}

// UnmarshalJSON decodes an adapter, skipping models that cannot be decoded.
func (r *AdapterRecord) UnmarshalJSON(data []byte) error {
	type plain AdapterRecord
	aux := struct {
		*plain
		Models []json.RawMessage `json:"models"`
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.Models = make([]AdapterModelRecord, 0, len(aux.Models))
	for _, raw := range aux.Models {
		var model AdapterModelRecord
		if err := json.Unmarshal(raw, &model); err != nil {
			continue
		}
		r.Models = append(r.Models, model)
	}
	return nil
}
