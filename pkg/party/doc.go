// Package party validates and normalizes the party records fed into a
// hemicycle layout.
//
// A [Record] is whatever a front end collected: a name, a seat count and an
// optional color, all as strings. [Normalize] checks one record and returns
// a [Party]; [NormalizeAll] does so for a whole list, in order.
//
// Parties without a color get one from a [Palette]. Two palettes are
// provided:
//
//   - [RandomPalette]: three random bytes per color from an injected
//     math/rand/v2 source, reproducible when the source is seeded
//   - [SpacedPalette]: golden-angle hue steps in HSLuv space
//
// # Example
//
//	recs := party.ParseList("Greens, 12; Reds, 30, #cc0000")
//	parties, err := party.NormalizeAll(recs, party.NewSpacedPalette(0))
//	if err != nil {
//	    return err
//	}
package party
