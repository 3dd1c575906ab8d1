package io

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/hemicycle/pkg/errors"
	"github.com/matzehuels/hemicycle/pkg/party"
)

func TestReadJSON(t *testing.T) {
	in := `{"parties": [
		{"name": "Left", "seats": 120, "color": "#cc0000"},
		{"name": "Right", "seats": 90},
		{"name": "Bad", "seats": -1},
		{"name": "Odd", "seats": "7"},
		{"name": "Empty"}
	]}`

	recs, err := ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}

	want := []party.Record{
		{"Left", "120", "#cc0000"},
		{"Right", "90"},
		{"Bad", "-1"},
		{"Odd", "7"},
		{"Empty"},
	}
	if !reflect.DeepEqual(recs, want) {
		t.Errorf("ReadJSON() = %q, want %q", recs, want)
	}
}

func TestReadTOML(t *testing.T) {
	in := `
[[party]]
name = "Left"
seats = 120
color = "#cc0000"

[[party]]
name = "Right"
seats = 90
`
	recs, err := ReadTOML(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadTOML() error: %v", err)
	}

	want := []party.Record{{"Left", "120", "#cc0000"}, {"Right", "90"}}
	if !reflect.DeepEqual(recs, want) {
		t.Errorf("ReadTOML() = %q, want %q", recs, want)
	}
}

func TestReadInvalid(t *testing.T) {
	if _, err := ReadJSON(strings.NewReader("{not json")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ReadJSON() error = %v, want INVALID_FORMAT", err)
	}
	if _, err := ReadTOML(strings.NewReader("[[party]\nname=")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ReadTOML() error = %v, want INVALID_FORMAT", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"parties.json", FormatJSON, false},
		{"dir/Parties.JSON", FormatJSON, false},
		{"parties.toml", FormatTOML, false},
		{"parties.yaml", "", true},
		{"parties", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFromPath() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("error code = %s, want INVALID_FORMAT", errors.GetCode(err))
			}
			if got != tt.want {
				t.Errorf("FormatFromPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	parties := []party.Party{
		{Name: "Party A", Seats: 33, Color: "#123abc"},
		{Name: "Party B", Seats: 0, Color: "#99FF99"},
	}

	for _, ext := range []string{".json", ".toml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "parties"+ext)
			if err := ExportParties(parties, path); err != nil {
				t.Fatalf("ExportParties() error: %v", err)
			}

			recs, err := ImportParties(path)
			if err != nil {
				t.Fatalf("ImportParties() error: %v", err)
			}
			got, err := party.NormalizeAll(recs, nil)
			if err != nil {
				t.Fatalf("NormalizeAll() error: %v", err)
			}
			if !reflect.DeepEqual(got, parties) {
				t.Errorf("round trip = %+v, want %+v", got, parties)
			}
		})
	}
}

func TestExportUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parties.csv")
	if err := ExportParties(nil, path); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ExportParties() error = %v, want INVALID_FORMAT", err)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON([]party.Party{{Name: "A", Seats: 1, Color: "#ff0000"}}, &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}
	want := `{
  "parties": [
    {
      "name": "A",
      "seats": 1,
      "color": "#ff0000"
    }
  ]
}
`
	if buf.String() != want {
		t.Errorf("WriteJSON() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestImportMissingFile(t *testing.T) {
	if _, err := ImportParties(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ImportParties() should fail for a missing file")
	}
}
