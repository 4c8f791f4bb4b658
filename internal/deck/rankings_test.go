package deck

import "testing"

func TestPercentile(t *testing.T) {
	tests := []struct {
		name string
		hole string
		want float64
	}{
		{"pocket aces", "AsAh", 1.000},
		{"worst hand", "7s2h", 0.000},
		{"suited big slick", "AsKs", 0.982},
		{"offsuit big slick", "AsKh", 0.940},
		{"pocket deuces", "2s2h", 0.700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(MustParseCards(tt.hole))
			if got != tt.want {
				t.Errorf("Percentile = %.3f, want %.3f", got, tt.want)
			}
		})
	}
}

func TestPercentileOrderInvariant(t *testing.T) {
	a := Percentile(MustParseCards("AsKh"))
	b := Percentile(MustParseCards("KhAs"))
	if a != b {
		t.Errorf("percentile depends on card order: %.3f vs %.3f", a, b)
	}
}

func TestPercentileInvalidInput(t *testing.T) {
	if got := Percentile(MustParseCards("As")); got != 0.0 {
		t.Errorf("single card percentile = %.3f, want 0", got)
	}
}
