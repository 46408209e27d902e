package backendfakes

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/adarsh5347/impacthub-client/session"
)

var _ session.Backend = (*FakeBackend)(nil)

// FakeBackend serves a canned profile (or error) and counts calls. Setting
// Gate makes CurrentUser block until the channel is closed, which lets tests
// hold a profile fetch open while other mutations commit.
type FakeBackend struct {
	Profile *session.Profile
	Err     error
	Gate    chan struct{}

	lock  sync.Mutex
	calls int
}

func NewFakeBackend() *FakeBackend {
	return &FakeBackend{}
}

func (b *FakeBackend) CurrentUser(ctx context.Context, token string) (*session.Profile, error) {
	b.lock.Lock()
	b.calls++
	gate := b.Gate
	profile, err := b.Profile, b.Err
	b.lock.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("not found")
	}
	clone := *profile
	return &clone, nil
}

func (b *FakeBackend) Calls() int {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.calls
}
