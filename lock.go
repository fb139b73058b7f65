package inifile

import "sync"

// pathLock serializes Load and Save operations targeting one file path
// across all handles in this process. Entries are reference counted so an
// entry is only dropped from the registry once the last handle bound to
// that path has released it.
type pathLock struct {
	mu   sync.Mutex
	refs int
}

// acquire and release tolerate a nil receiver so unbound handles need no
// special casing at the call sites.
func (pl *pathLock) acquire() {
	if pl != nil {
		pl.mu.Lock()
	}
}

func (pl *pathLock) release() {
	if pl != nil {
		pl.mu.Unlock()
	}
}

var (
	registryMu sync.Mutex
	registry   = make(map[string]*pathLock)
)

// acquirePathLock returns the shared lock for path, registering it on first
// use. The registry mutex covers the check-then-create step. An empty path
// has no lock.
func acquirePathLock(path string) *pathLock {
	if path == "" {
		return nil
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	pl, ok := registry[path]
	if !ok {
		pl = &pathLock{}
		registry[path] = pl
	}
	pl.refs++

	return pl
}

// releasePathLock drops one reference on the path's lock, removing the
// registry entry when no handle holds it anymore.
func releasePathLock(path string, pl *pathLock) {
	if pl == nil {
		return
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	pl.refs--
	if pl.refs <= 0 {
		delete(registry, path)
	}
}
