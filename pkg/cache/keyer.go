package cache

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey returns the key for a rendered artifact of the parties
	// identified by partiesHash.
	ArtifactKey(partiesHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts holds everything besides the parties that changes the
// rendered bytes.
type ArtifactKeyOpts struct {
	Format  string  `json:"format"`
	Scale   float64 `json:"scale,omitempty"`
	Palette string  `json:"palette,omitempty"`
	Seed    uint64  `json:"seed,omitempty"`
}

// DefaultKeyer generates keys of the form "artifact:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(partiesHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", partiesHash, opts)
}
