package errors

import (
	"errors"
	"testing"
)

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	if errs.Err(ErrCodeInvalidConfig, "config") != nil {
		t.Error("empty ValidationErrors should produce nil")
	}

	ValidateRange(&errs, "constraints.max_background_pct", 120, 0, 100)
	ValidatePositive(&errs, "sampler.resolution", 0)
	ValidateOneOf(&errs, "selector.mode", "random", "bag", "uniform")
	ValidateRange(&errs, "constraints.min_color_area_pct", 0.5, 0, 25)
	ValidateOneOf(&errs, "cache.backend", "file", "file", "redis", "none")

	if len(errs) != 3 {
		t.Fatalf("len(errs) = %d, want 3: %v", len(errs), errs)
	}

	err := errs.Err(ErrCodeInvalidConfig, "config")
	if !Is(err, ErrCodeInvalidConfig) {
		t.Errorf("Err() code = %v, want %v", GetCode(err), ErrCodeInvalidConfig)
	}

	var ve ValidationErrors
	if !errors.As(err, &ve) || len(ve) != 3 {
		t.Error("Err() should wrap the field errors")
	}

	want := "selector.mode: must be one of: bag, uniform, got \"random\""
	if ve[2].Error() != want {
		t.Errorf("ve[2] = %q, want %q", ve[2].Error(), want)
	}
}
