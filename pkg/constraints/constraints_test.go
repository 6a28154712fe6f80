package constraints

import (
	"fmt"
	"testing"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/errors"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/palette"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/sample"
)

func breakdown(r, b, g, y, bg float64) sample.Breakdown {
	return sample.Breakdown{
		palette.Red: r, palette.Blue: b, palette.Green: g, palette.Yellow: y, palette.Background: bg,
	}
}

func TestCheck(t *testing.T) {
	c := Default()
	tests := []struct {
		name  string
		b     sample.Breakdown
		kinds []Kind
	}{
		{"balanced", breakdown(20, 20, 20, 20, 20), nil},
		{"exactly at limits", breakdown(0.5, 0.5, 0.5, 38.5, 60), nil},
		{"missing color", breakdown(40, 30, 0, 30, 0), []Kind{TooLittleColor}},
		{"tiny color", breakdown(40, 30, 0.49, 29.51, 0), []Kind{TooLittleColor}},
		{"mostly background", breakdown(10, 10, 10, 9, 61), []Kind{TooMuchBackground}},
		{"everything wrong", breakdown(0, 0, 0, 0, 100), []Kind{TooLittleColor, TooLittleColor, TooLittleColor, TooLittleColor, TooMuchBackground}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vs := c.Check(tt.b)
			if len(vs) != len(tt.kinds) {
				t.Fatalf("Check() = %v, want kinds %v", vs, tt.kinds)
			}
			for i, k := range tt.kinds {
				if vs[i].Kind != k {
					t.Errorf("violation %d = %s, want %s", i, vs[i].Kind, k)
				}
			}
			if vs.OK() != (len(tt.kinds) == 0) || c.Accept(tt.b) != vs.OK() {
				t.Errorf("OK/Accept disagree with violations %v", vs)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	bad := Constraints{MinColorAreaPct: -1, MaxBackgroundPct: 150, MaxAttempts: -2}
	err := bad.Validate()
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("Validate() = %v, want INVALID_CONFIG", err)
	}
}

func ExampleConstraints_Check() {
	vs := Default().Check(breakdown(30, 0.2, 10, 10, 49.8))
	fmt.Println(vs)
	// Output: blue covers 0.20% (min 0.50%)
}
