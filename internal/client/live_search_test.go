package client_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourism-portal/internal/client"
	"github.com/tourism-portal/internal/domain"
)

type fakeSearcher struct {
	mu       sync.Mutex
	queries  []string
	block    map[string]chan struct{}
	canceled []string
}

func (f *fakeSearcher) Listings(ctx context.Context, q client.ListingQuery) ([]domain.Listing, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q.Search)
	wait := f.block[q.Search]
	f.mu.Unlock()

	if wait != nil {
		select {
		case <-wait:
		case <-ctx.Done():
			f.mu.Lock()
			f.canceled = append(f.canceled, q.Search)
			f.mu.Unlock()
			return nil, ctx.Err()
		}
	}
	return []domain.Listing{{Name: q.Search}}, nil
}

func (f *fakeSearcher) seen() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}

func collect() (func(client.SearchResult), func() []client.SearchResult) {
	var (
		mu      sync.Mutex
		results []client.SearchResult
	)
	return func(r client.SearchResult) {
			mu.Lock()
			results = append(results, r)
			mu.Unlock()
		}, func() []client.SearchResult {
			mu.Lock()
			defer mu.Unlock()
			return append([]client.SearchResult(nil), results...)
		}
}

func TestLiveSearch_Debounces(t *testing.T) {
	searcher := &fakeSearcher{}
	onResult, results := collect()
	s := client.NewLiveSearch(searcher, client.ListingQuery{}, 30*time.Millisecond, onResult)
	defer s.Close()

	s.Input("j")
	s.Input("jo")
	s.Input("joe")

	require.Eventually(t, func() bool { return len(results()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, []string{"joe"}, searcher.seen())
	got := results()
	require.Len(t, got, 1)
	assert.Equal(t, "joe", got[0].Query)
	assert.NoError(t, got[0].Err)
}

func TestLiveSearch_StaleResultDropped(t *testing.T) {
	release := make(chan struct{})
	searcher := &fakeSearcher{block: map[string]chan struct{}{"etosha": release}}
	onResult, results := collect()
	s := client.NewLiveSearch(searcher, client.ListingQuery{Region: "Oshikoto"}, 10*time.Millisecond, onResult)
	defer s.Close()

	s.Input("etosha")
	require.Eventually(t, func() bool { return len(searcher.seen()) == 1 }, time.Second, 5*time.Millisecond)

	// новый ввод, пока первый запрос ещё в полёте
	s.Input("lodge")
	require.Eventually(t, func() bool { return len(results()) == 1 }, time.Second, 5*time.Millisecond)
	close(release)
	time.Sleep(30 * time.Millisecond)

	got := results()
	require.Len(t, got, 1)
	assert.Equal(t, "lodge", got[0].Query)

	searcher.mu.Lock()
	defer searcher.mu.Unlock()
	assert.Equal(t, []string{"etosha"}, searcher.canceled)
}

func TestLiveSearch_CloseStopsPending(t *testing.T) {
	searcher := &fakeSearcher{}
	onResult, results := collect()
	s := client.NewLiveSearch(searcher, client.ListingQuery{}, 20*time.Millisecond, onResult)

	s.Input("windhoek")
	s.Close()
	s.Input("ignored")
	time.Sleep(60 * time.Millisecond)

	assert.Empty(t, searcher.seen())
	assert.Empty(t, results())
}
