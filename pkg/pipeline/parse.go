package pipeline

import (
	"os"

	"github.com/matzehuels/hemicycle/pkg/io"
	"github.com/matzehuels/hemicycle/pkg/party"
)

// LoadRecords turns a command-line or form argument into party records.
//
// An argument naming an existing .json or .toml file is read as a party
// file; anything else is parsed as a free-text list such as
// "Party A, 33; Party B, 22, #99FF99".
func LoadRecords(arg string) ([]party.Record, bool, error) {
	if _, err := io.FormatFromPath(arg); err == nil {
		if info, err := os.Stat(arg); err == nil && !info.IsDir() {
			recs, err := io.ImportParties(arg)
			return recs, true, err
		}
	}
	return party.ParseList(arg), false, nil
}
