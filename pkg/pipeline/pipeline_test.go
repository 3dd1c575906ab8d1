package pipeline

import (
	"testing"

	"github.com/matzehuels/hemicycle/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s, want INVALID_FORMAT", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidatePalette(t *testing.T) {
	tests := []struct {
		palette string
		wantErr bool
	}{
		{"random", false},
		{"spaced", false},
		{"rainbow", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidatePalette(tt.palette)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePalette(%q) error = %v, wantErr %v", tt.palette, err, tt.wantErr)
		}
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}

	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Palette != DefaultPalette {
		t.Errorf("Palette = %q, want %q", opts.Palette, DefaultPalette)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale = %v, want %v", opts.Scale, DefaultScale)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discarding logger")
	}

	// Idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second call error: %v", err)
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"format", Options{Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"palette", Options{Palette: "rainbow"}, errors.ErrCodeInvalidInput},
		{"scale", Options{Scale: -1}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.ValidateAndSetDefaults(); !errors.Is(err, tt.code) {
				t.Errorf("ValidateAndSetDefaults() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{Palette: "spaced", Seed: 9, Scale: 3}

	if k := opts.ArtifactKeyOpts(FormatSVG); k.Scale != 0 || k.Palette != "" || k.Seed != 0 {
		t.Errorf("svg key opts = %+v, want format only", k)
	}
	if k := opts.ArtifactKeyOpts(FormatPNG); k.Scale != 3 {
		t.Errorf("png key opts = %+v, want scale 3", k)
	}
	if k := opts.ArtifactKeyOpts(FormatJSON); k.Palette != "spaced" || k.Seed != 9 {
		t.Errorf("json key opts = %+v, want palette and seed", k)
	}
}
