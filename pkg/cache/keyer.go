package cache

// ArtifactKeyOpts holds the rendering options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Border string `json:"border,omitempty"`
	Color  bool   `json:"color,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// InputKey identifies a validated input: raw values, column text and fill.
	InputKey(values, columns, fill string) string

	// ArtifactKey identifies one rendered format of an input.
	ArtifactKey(inputHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces "input:<hash>" and "artifact:<hash>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// InputKey implements Keyer.
func (DefaultKeyer) InputKey(values, columns, fill string) string {
	return hashKey("input", values, columns, fill)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(inputHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", inputHash, opts)
}
