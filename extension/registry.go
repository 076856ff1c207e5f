// registry.go holds the process-wide extension registry. Extensions add
// themselves from init(), so the registry is complete before main runs.

package extension

import "sync"

var (
	mu       sync.RWMutex
	registry = make(map[string]Extension)
	order    []string // registration order, used for command order
)

// Register adds e under e.Name(). It panics if the name is taken, like
// database/sql.Register.
func Register(e Extension) {
	mu.Lock()
	defer mu.Unlock()

	name := e.Name()
	if _, taken := registry[name]; taken {
		panic("extension already registered: " + name)
	}
	registry[name] = e
	order = append(order, name)
}

// All returns every registered extension in registration order.
func All() []Extension {
	mu.RLock()
	defer mu.RUnlock()

	exts := make([]Extension, len(order))
	for i, name := range order {
		exts[i] = registry[name]
	}
	return exts
}

// Get returns the named extension, or nil.
func Get(name string) Extension {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// Names lists registered extension names in registration order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return append([]string(nil), order...)
}
