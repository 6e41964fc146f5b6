package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Keyer derives cache keys for the pipeline stages. Each stage is keyed
// by the hash of the previous stage's result plus the options that can
// change its own output.
type Keyer interface {
	// DiagramKey keys a parsed diagram by its source text and parse kind.
	DiagramKey(kind, text string) string

	// LayoutKey keys node positions by the parsed diagram hash and the
	// layout options applied to it.
	LayoutKey(diagramHash string, opts LayoutKeyOpts) string

	// ArtifactKey keys rendered output by the layout hash and the
	// render options applied to it.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts carries the inputs that change computed positions.
type LayoutKeyOpts struct {
	Algorithm string
	Direction string
	SpacingX  float64
	SpacingY  float64
}

// ArtifactKeyOpts carries the inputs that change a rendered artifact.
type ArtifactKeyOpts struct {
	Format     string
	Background string
	Padding    float64
	Width      float64
	Height     float64
}

// DefaultKeyer hashes stage inputs into keys of the form
// "stage:<64 hex chars>".
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DiagramKey generates a key for parsed diagram caching.
func (k *DefaultKeyer) DiagramKey(kind, text string) string {
	return hashKey("diagram", kind, text)
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(diagramHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", diagramHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// hashKey builds "prefix:" + hex(sha256(json(parts))). The full
// 256-bit digest is kept.
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}

// Hash returns the hex-encoded SHA-256 digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
