package client

import (
	"context"
	"sync"
	"time"

	"github.com/tourism-portal/internal/domain"
)

// DefaultSearchDelay - пауза ввода перед запросом поиска
const DefaultSearchDelay = 300 * time.Millisecond

// ListingSearcher выполняет поиск объектов. *Client ему соответствует.
type ListingSearcher interface {
	Listings(ctx context.Context, q ListingQuery) ([]domain.Listing, error)
}

// SearchResult - результат последнего актуального поиска
type SearchResult struct {
	Query    string
	Listings []domain.Listing
	Err      error
}

// LiveSearch - поиск по мере ввода. Запрос уходит через delay после последнего
// ввода; результат доставляется, только если после него не было нового ввода.
// Устаревший запрос в полёте отменяется через контекст.
type LiveSearch struct {
	searcher ListingSearcher
	base     ListingQuery
	delay    time.Duration
	onResult func(SearchResult)

	mu     sync.Mutex
	seq    uint64
	timer  *time.Timer
	cancel context.CancelFunc
	closed bool
}

// NewLiveSearch создает поиск. base задаёт остальные фильтры (категория, регион).
// onResult вызывается из отдельной горутины.
func NewLiveSearch(searcher ListingSearcher, base ListingQuery, delay time.Duration, onResult func(SearchResult)) *LiveSearch {
	if delay <= 0 {
		delay = DefaultSearchDelay
	}
	return &LiveSearch{
		searcher: searcher,
		base:     base,
		delay:    delay,
		onResult: onResult,
	}
}

// Input сообщает новый текст запроса
func (s *LiveSearch) Input(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.seq++
	seq := s.seq
	s.stopLocked()

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.timer = time.AfterFunc(s.delay, func() {
		s.run(ctx, seq, text)
	})
}

// Close отменяет ожидающий и текущий поиск. Дальнейший ввод игнорируется.
func (s *LiveSearch) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.stopLocked()
}

func (s *LiveSearch) stopLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *LiveSearch) run(ctx context.Context, seq uint64, text string) {
	q := s.base
	q.Search = text

	listings, err := s.searcher.Listings(ctx, q)

	s.mu.Lock()
	latest := seq == s.seq && !s.closed
	s.mu.Unlock()

	if !latest || ctx.Err() != nil {
		return
	}

	s.onResult(SearchResult{Query: text, Listings: listings, Err: err})
}
