// Package io reads and writes party files.
//
// # Overview
//
// A party file lists the parties of a parliament in seating order, so a
// diagram can be re-rendered without retyping the list. JSON and TOML are
// supported; the format is chosen from the file extension.
//
// # JSON Format
//
//	{
//	  "parties": [
//	    {"name": "Left", "seats": 120, "color": "#cc0000"},
//	    {"name": "Right", "seats": 90}
//	  ]
//	}
//
// # TOML Format
//
//	[[party]]
//	name = "Left"
//	seats = 120
//	color = "#cc0000"
//
//	[[party]]
//	name = "Right"
//	seats = 90
//
// # Validation
//
// Reading only decodes the file. The result is a list of raw
// [party.Record] values; seat counts and colors are checked by
// party.Normalize like any other input. A missing color means the party
// gets one from the palette.
//
// [party.Record]: github.com/matzehuels/hemicycle/pkg/party.Record
package io
