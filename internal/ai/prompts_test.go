package ai

import (
	"strings"
	"testing"
)

func TestDescriptionPrompt(t *testing.T) {
	p := DescriptionPrompt("a quiet library on a rainy afternoon", "Medium 8oz")

	if !strings.Contains(p, `"a quiet library on a rainy afternoon"`) {
		t.Error("prompt must quote the customer's scent profile")
	}
	if !strings.Contains(p, `"Medium 8oz"`) {
		t.Error("prompt must quote the chosen size")
	}
	// The parser depends on the response carrying this exact marker.
	if !strings.Contains(p, `**Candle Name:** "<Name>"`) {
		t.Error("prompt must demand the candle-name marker")
	}
}

func TestRecipePrompt(t *testing.T) {
	p := RecipePrompt("warm hearth", "Small 4oz")

	for _, key := range []string{`"essences"`, `"waxType"`, `"wickType"`} {
		if !strings.Contains(p, key) {
			t.Errorf("prompt must name the %s key", key)
		}
	}
	if !strings.Contains(p, "ONLY a JSON object") {
		t.Error("prompt must constrain the response to bare JSON")
	}
}
