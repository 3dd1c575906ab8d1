package sink

import (
	"context"

	"github.com/matzehuels/hemicycle/pkg/render"
	"github.com/matzehuels/hemicycle/pkg/render/hemicycle/layout"
)

// RenderPDF renders the layout as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, l layout.Layout) ([]byte, error) {
	return render.ToPDF(ctx, RenderSVG(l))
}
