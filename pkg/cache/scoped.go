package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// Server instances that share one redis database but serve different
// deployments use it to keep their entries apart.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "csvgrid:v1:")
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

// InputKey generates a prefixed input key.
func (k *ScopedKeyer) InputKey(values, columns, fill string) string {
	return k.prefix + k.inner.InputKey(values, columns, fill)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(inputHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(inputHash, opts)
}
