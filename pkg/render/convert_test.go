package render

import (
	"bytes"
	"context"
	"testing"

	"github.com/matzehuels/hemicycle/pkg/errors"
)

const tinySVG = `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><circle cx="5" cy="5" r="4"/></svg>`

func TestToPNGRejectsScale(t *testing.T) {
	for _, scale := range []float64{0, -1} {
		if _, err := ToPNG(context.Background(), []byte(tinySVG), scale); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("ToPNG(scale=%v) error = %v, want INVALID_INPUT", scale, err)
		}
	}
}

func TestConvert(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}
	ctx := context.Background()

	png, err := ToPNG(ctx, []byte(tinySVG), 1)
	if err != nil {
		t.Fatalf("ToPNG() error: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("ToPNG() did not return a PNG")
	}

	pdf, err := ToPDF(ctx, []byte(tinySVG))
	if err != nil {
		t.Fatalf("ToPDF() error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("ToPDF() did not return a PDF")
	}
}
