package model

import (
	"errors"
	"testing"
)

func TestFlagAuto(t *testing.T) {
	if FlagStatic.Auto() {
		t.Error("static flag reported as auto")
	}
	if !FlagAuto.Auto() {
		t.Error("auto flag reported as static")
	}
	if !Flag(7).Auto() {
		t.Error("any nonzero flag should be auto")
	}
}

func TestValidateAlias(t *testing.T) {
	tests := []struct {
		alias string
		ok    bool
	}{
		{"edit", true},
		{"Edit-2", true},
		{"", false},
		{"a;b", false},
		{"a#b", false},
		{"a b", false},
		{"a\nb", false},
	}
	for _, tt := range tests {
		err := ValidateAlias(tt.alias)
		if tt.ok && err != nil {
			t.Errorf("ValidateAlias(%q) = %v, want nil", tt.alias, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ValidateAlias(%q) = %v, want ErrInvalidArgument", tt.alias, err)
		}
	}
}

func TestValidatePath(t *testing.T) {
	if err := ValidatePath("/home/u/my project"); err != nil {
		t.Errorf("spaces should be allowed in paths: %v", err)
	}
	for _, p := range []string{"", "/a;b", "/a#b"} {
		if err := ValidatePath(p); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ValidatePath(%q) = %v, want ErrInvalidArgument", p, err)
		}
	}
	if err := ValidateOpener(""); err != nil {
		t.Errorf("empty opener should be valid: %v", err)
	}
	if err := ValidateOpener("code;rm"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("opener with ';' should be rejected, got %v", err)
	}
}
