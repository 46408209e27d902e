// Package filerepo provides a storage.Repo backed by a JSON file, so a
// desktop or embedded shell keeps its session across restarts.
package filerepo

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/adarsh5347/impacthub-client/storage"
)

const fileName = "session.json"

var _ storage.Repo = (*Repo)(nil)

type Repo struct {
	path   string
	values map[string]string
	lock   sync.Mutex
}

// New loads (or creates) the store under dataFolder.
func New(dataFolder string) (*Repo, error) {
	if err := os.MkdirAll(dataFolder, 0o700); err != nil {
		return nil, errors.Wrap(err, "filerepo: create data folder")
	}

	r := &Repo{
		path:   filepath.Join(dataFolder, fileName),
		values: make(map[string]string),
	}

	raw, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return r, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "filerepo: read store")
	}
	if err := json.Unmarshal(raw, &r.values); err != nil {
		// A corrupt store is treated as empty; restore will re-validate
		// against the backend anyway.
		r.values = make(map[string]string)
	}
	return r, nil
}

func (r *Repo) Get(key string) (string, bool) {
	r.lock.Lock()
	defer r.lock.Unlock()
	v, ok := r.values[key]
	return v, ok
}

func (r *Repo) Set(key, value string) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.values[key] = value
	return r.flush()
}

func (r *Repo) Delete(keys ...string) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, k := range keys {
		delete(r.values, k)
	}
	return r.flush()
}

func (r *Repo) flush() error {
	raw, err := json.MarshalIndent(r.values, "", "  ")
	if err != nil {
		return errors.Wrap(err, "filerepo: encode store")
	}
	if err := os.WriteFile(r.path, raw, 0o600); err != nil {
		return errors.Wrap(err, "filerepo: write store")
	}
	return nil
}
