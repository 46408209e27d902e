// Package memrepo provides an in-memory storage.Repo, used by shells that do
// not persist sessions across restarts and by tests.
package memrepo

import (
	"sync"

	"github.com/adarsh5347/impacthub-client/storage"
)

var _ storage.Repo = (*Repo)(nil)

type Repo struct {
	values map[string]string
	lock   sync.RWMutex
}

func New() *Repo {
	return &Repo{values: make(map[string]string)}
}

func (r *Repo) Get(key string) (string, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	v, ok := r.values[key]
	return v, ok
}

func (r *Repo) Set(key, value string) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.values[key] = value
	return nil
}

func (r *Repo) Delete(keys ...string) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, k := range keys {
		delete(r.values, k)
	}
	return nil
}

// Len reports the number of stored keys.
func (r *Repo) Len() int {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return len(r.values)
}
