// Package hemicycle groups the parliament diagram renderer.
//
// A hemicycle is a half-disc of concentric arcs of seats. Seats are laid
// out by [layout.Build] and written out by the [sink] renderers:
//
//	l, err := layout.Build(parties)
//	if err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(l)
//
// [layout.Build]: github.com/matzehuels/hemicycle/pkg/render/hemicycle/layout
// [sink]: github.com/matzehuels/hemicycle/pkg/render/hemicycle/sink
package hemicycle
