package recipe

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/emberwick/storefront-api/internal/domain"
	"github.com/emberwick/storefront-api/pkg/errors"
)

// FallbackCandleName is used when the description text lacks the expected
// quoted-name pattern. Name extraction is best-effort and never fails.
const FallbackCandleName = "Your Custom Candle"

var candleNamePattern = regexp.MustCompile(`\*\*Candle Name:\*\* "([^"]+)"`)

// NameExtractor extracts a candle name from description text. It is an
// interface so the matching strategy can be swapped (e.g. for a
// structured-output-capable model) without touching callers.
type NameExtractor interface {
	ExtractName(text string) string
}

// PatternNameExtractor applies the fixed `**Candle Name:** "<name>"` pattern.
type PatternNameExtractor struct{}

func (PatternNameExtractor) ExtractName(text string) string {
	match := candleNamePattern.FindStringSubmatch(text)
	if len(match) < 2 {
		return FallbackCandleName
	}
	// Returned exactly as captured: only the surrounding quotes are removed.
	return match[1]
}

// StripCodeFences removes surrounding triple-backtick fences (optionally
// tagged `json`) and whitespace from model output.
func StripCodeFences(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// ParseRecipe strictly parses the recipe call's output. Invalid JSON or a
// missing required key returns ErrRecipeParse: the pipeline must never submit
// an order built from a partially-parsed or guessed recipe.
func ParseRecipe(text string) (*domain.CandleRecipe, error) {
	cleaned := StripCodeFences(text)

	var recipe domain.CandleRecipe
	if err := json.Unmarshal([]byte(cleaned), &recipe); err != nil {
		return nil, &errors.ErrRecipeParse{Reason: "response is not valid JSON"}
	}

	if len(recipe.Essences) == 0 {
		return nil, &errors.ErrRecipeParse{Reason: "essences is missing or empty"}
	}
	for _, essence := range recipe.Essences {
		if strings.TrimSpace(essence) == "" {
			return nil, &errors.ErrRecipeParse{Reason: "essences contains an empty entry"}
		}
	}
	if strings.TrimSpace(recipe.WaxType) == "" {
		return nil, &errors.ErrRecipeParse{Reason: "waxType is missing"}
	}
	if strings.TrimSpace(recipe.WickType) == "" {
		return nil, &errors.ErrRecipeParse{Reason: "wickType is missing"}
	}

	return &recipe, nil
}
