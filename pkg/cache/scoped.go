package cache

// ScopedKeyer wraps a Keyer with a prefix so that several deployments can
// share one Redis database without seeing each other's entries.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "hemicycle:prod:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(partiesHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(partiesHash, opts)
}
