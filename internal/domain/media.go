package domain

import "strings"

// Keyword tables for ClassifyMediaType. Matching is by substring of the lower-cased model name.
//
//nolint:gochecknoglobals // read-only lookup tables
var (
	imageModelKeywords = []string{
		"flux", "sdxl", "stable-diffusion", "stable_diffusion", "dall-e", "dalle",
		"imagen", "midjourney", "ideogram", "recraft", "seedream", "kandinsky",
		"playground", "image",
	}
	audioModelKeywords = []string{
		"tts", "whisper", "speech", "audio", "voice", "elevenlabs", "bark", "musicgen",
	}
)

// ClassifyMediaType guesses an entity's media type from its model name.
//
// This is a best-effort heuristic over provider naming conventions, not a declared field.
// It is only consulted when a price record does not carry an explicit media type, and it
// defaults to video for anything it does not recognise.
func ClassifyMediaType(modelName string) MediaType {
	name := strings.ToLower(modelName)

	if containsAny(name, imageModelKeywords) {
		return MediaImage
	}
	if containsAny(name, audioModelKeywords) {
		return MediaAudio
	}
	return MediaVideo
}

// ParseMediaType maps a declared media type onto the enum.
func ParseMediaType(value string) (MediaType, bool) {
	switch MediaType(strings.ToLower(strings.TrimSpace(value))) {
	case MediaText:
		return MediaText, true
	case MediaImage:
		return MediaImage, true
	case MediaVideo:
		return MediaVideo, true
	case MediaAudio:
		return MediaAudio, true
	default:
		return "", false
	}
}

// ParsePriceKind maps a backend price_type onto the enum. Unknown types bill per request.
func ParsePriceKind(value string) PriceKind {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)

	switch normalized {
	case "per_1k_tokens", "per_1k", "tokens":
		return PricePer1KTokens
	case "per_second", "second", "seconds":
		return PricePerSecond
	case "per_generation", "generation":
		return PricePerGeneration
	case "per_image", "image":
		return PricePerImage
	default:
		return PricePerRequest
	}
}

func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
