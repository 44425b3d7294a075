package boards

import (
	"fmt"
	"sort"
	"sync"

	"github.com/danforbes/rp-hal/errcode"
	"github.com/danforbes/rp-hal/types"
)

var (
	mu       sync.RWMutex
	registry = map[string]func() types.Manifest{}
)

// Register installs a board under its manifest name. Board packages call it
// from init(); a second registration of the same name panics with a
// duplicate_board error.
func Register(manifest func() types.Manifest) {
	name := manifest().Identity.Name
	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[name]; exists {
		panic(errcode.New(errcode.DuplicateBoard, "boards.Register", name))
	}
	registry[name] = manifest
}

// Lookup returns a fresh copy of the named board.
func Lookup(name string) (Board, error) {
	mu.RLock()
	fn, ok := registry[name]
	mu.RUnlock()
	if !ok {
		return Board{}, errcode.New(errcode.UnknownBoard, "boards.Lookup", fmt.Sprintf("%q", name))
	}
	return Board{Manifest: fn()}, nil
}

// Names lists registered boards, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// All returns every registered board in name order.
func All() []Board {
	names := Names()
	out := make([]Board, 0, len(names))
	for _, n := range names {
		b, _ := Lookup(n)
		out = append(out, b)
	}
	return out
}

// Manifests returns the manifests of All.
func Manifests() []types.Manifest {
	bs := All()
	out := make([]types.Manifest, len(bs))
	for i, b := range bs {
		out[i] = b.Manifest
	}
	return out
}
