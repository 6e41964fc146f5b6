package layout

import (
	"sync"

	"github.com/Ak-sara/aksara-writer-sub001/pkg/diagram"
)

// Func is a layout algorithm. It assigns coordinates (and, for tree-list,
// drawing metadata) to every node of the diagram in place.
type Func func(d *diagram.Diagram)

var (
	registryMu sync.RWMutex
	registry   = map[diagram.Algorithm]Func{}
)

// Register installs or overrides a custom layout algorithm, effective for
// subsequent Apply calls. The built-in names (tree, grid, tree-list) are
// dispatched statically and cannot be overridden.
func Register(name diagram.Algorithm, fn Func) {
	if fn == nil {
		return
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// lookup resolves a registered custom algorithm.
func lookup(name diagram.Algorithm) (Func, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	fn, ok := registry[name]
	return fn, ok
}

// Apply runs the diagram's configured layout algorithm. Built-ins are
// dispatched on the closed set; any other name consults the custom registry
// and falls back to the grid, the algorithm of last resort.
func Apply(d *diagram.Diagram) {
	switch d.Layout.Algorithm {
	case diagram.AlgorithmTree:
		Tree(d)
	case diagram.AlgorithmGrid:
		Grid(d)
	case diagram.AlgorithmTreeList:
		TreeList(d)
	default:
		if fn, ok := lookup(d.Layout.Algorithm); ok {
			fn(d)
			return
		}
		Grid(d)
	}
}
