package office

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	listCalls int
	offices   []*Office
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*Office, error) {
	for _, o := range f.offices {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) List(ctx context.Context) ([]*Office, error) {
	f.listCalls++
	return f.offices, nil
}

func TestListServesFromSnapshotWithinTTL(t *testing.T) {
	repo := &fakeRepo{offices: []*Office{{ID: "o1", Code: "KLS", Name: "KL Sentral"}}}
	svc := NewService(repo, time.Minute).(*service)

	clock := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return clock }

	_, err := svc.List(context.Background())
	require.NoError(t, err)

	clock = clock.Add(30 * time.Second)
	_, err = svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, repo.listCalls)

	// TTL elapsed: the snapshot is stale and must be refetched.
	clock = clock.Add(time.Minute)
	_, err = svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, repo.listCalls)
}
