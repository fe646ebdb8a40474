package llm

import (
	"math"
	"testing"
)

func TestPriceFor(t *testing.T) {
	tests := []struct {
		name    string
		modelID string
		want    *Pricing
	}{
		{"exact match", "gpt-4o-mini", &Pricing{0.15, 0.6}},
		{"dated anthropic id", "claude-haiku-4-5-20251001", &Pricing{1, 5}},
		{"dated openai id", "gpt-4o-2024-11-20", &Pricing{2.5, 10}},
		{"longest family wins", "gpt-4.1-mini-2025-04-14", &Pricing{0.4, 1.6}},
		{"unknown model", "llama-3-70b", nil},
		{"family name alone is exact", "claude-sonnet-4-5", &Pricing{3, 15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PriceFor(tt.modelID)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("PriceFor(%q) = %+v, want nil", tt.modelID, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("PriceFor(%q) = nil, want %+v", tt.modelID, tt.want)
			}
			if *got != *tt.want {
				t.Errorf("PriceFor(%q) = %+v, want %+v", tt.modelID, got, tt.want)
			}
		})
	}
}

func TestPricingCost(t *testing.T) {
	p := Pricing{Input: 2, Output: 8}
	got := p.Cost(500_000, 250_000)
	want := 1.0 + 2.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Cost = %f, want %f", got, want)
	}
}
