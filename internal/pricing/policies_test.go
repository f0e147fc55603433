package pricing

import "testing"

func TestMagicRequestPrice(t *testing.T) {
	if got := MagicRequestPrice(); got != "35.00" {
		t.Errorf("MagicRequestPrice() = %q, want %q", got, "35.00")
	}
}

func TestCustomCandlePrice(t *testing.T) {
	tests := []struct {
		materialCount int
		want          string
	}{
		{materialCount: 0, want: "42.00"},
		{materialCount: 1, want: "42.00"},
		{materialCount: 3, want: "42.00"},
		{materialCount: 4, want: "44.00"},
		{materialCount: 5, want: "46.00"},
		{materialCount: 10, want: "56.00"},
	}

	for _, tt := range tests {
		if got := CustomCandlePrice(tt.materialCount); got != tt.want {
			t.Errorf("CustomCandlePrice(%d) = %q, want %q", tt.materialCount, got, tt.want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{value: 35, want: "35.00"},
		{value: 46.5, want: "46.50"},
		{value: 0, want: "0.00"},
	}

	for _, tt := range tests {
		if got := FormatPrice(tt.value); got != tt.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
