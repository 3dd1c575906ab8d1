package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/hemicycle/pkg/party"
)

type outParty struct {
	Name  string `json:"name" toml:"name"`
	Seats int    `json:"seats" toml:"seats"`
	Color string `json:"color,omitempty" toml:"color,omitempty"`
}

func outParties(parties []party.Party) []outParty {
	out := make([]outParty, len(parties))
	for i, p := range parties {
		out[i] = outParty{Name: p.Name, Seats: p.Seats, Color: p.Color}
	}
	return out
}

// WriteJSON encodes parties as a JSON party file and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(parties []party.Party, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(struct {
		Parties []outParty `json:"parties"`
	}{outParties(parties)}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteTOML encodes parties as a TOML party file and writes it to w.
func WriteTOML(parties []party.Party, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(struct {
		Party []outParty `toml:"party"`
	}{outParties(parties)}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportParties writes parties to path in the format implied by its
// extension.
func ExportParties(parties []party.Party, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if format == FormatTOML {
		return WriteTOML(parties, f)
	}
	return WriteJSON(parties, f)
}
