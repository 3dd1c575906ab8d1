package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/hemicycle/pkg/errors"
	"github.com/matzehuels/hemicycle/pkg/party"
)

// Supported party file formats.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
)

// FormatFromPath returns the party file format implied by the extension of
// path. Unknown extensions fail with INVALID_FORMAT.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"unsupported party file %q (must be .json or .toml)", path)
	}
}

// fileParty is one party as stored in a party file. Seats is decoded
// loosely so that bad counts reach party.Normalize and are reported there.
type fileParty struct {
	Name  string `json:"name" toml:"name"`
	Seats any    `json:"seats" toml:"seats"`
	Color string `json:"color,omitempty" toml:"color,omitempty"`
}

type jsonFile struct {
	Parties []fileParty `json:"parties"`
}

type tomlFile struct {
	Party []fileParty `toml:"party"`
}

// ReadJSON decodes a JSON party file from r:
//
//	{"parties": [{"name": "Greens", "seats": 12, "color": "#00aa00"}]}
//
// The records are returned in file order. A party without a seat count
// yields a one-field record, which party.Normalize rejects as malformed.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) ([]party.Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var data jsonFile
	if err := dec.Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
	}
	return records(data.Parties), nil
}

// ReadTOML decodes a TOML party file from r:
//
//	[[party]]
//	name = "Greens"
//	seats = 12
//	color = "#00aa00"
//
// It follows the same rules as [ReadJSON].
func ReadTOML(r io.Reader) ([]party.Record, error) {
	var data tomlFile
	if _, err := toml.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
	}
	return records(data.Party), nil
}

// ImportParties reads the party file at path, choosing the decoder from
// the file extension.
func ImportParties(path string) ([]party.Record, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if format == FormatTOML {
		return ReadTOML(f)
	}
	return ReadJSON(f)
}

func records(parties []fileParty) []party.Record {
	recs := make([]party.Record, 0, len(parties))
	for _, p := range parties {
		if p.Seats == nil {
			recs = append(recs, party.Record{p.Name})
			continue
		}
		rec := party.Record{p.Name, fmt.Sprint(p.Seats)}
		if p.Color != "" {
			rec = append(rec, p.Color)
		}
		recs = append(recs, rec)
	}
	return recs
}
