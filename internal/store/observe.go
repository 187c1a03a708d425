package store

import (
	"context"
	"sync"

	"listenote/internal/model"
)

// memoHub fans memo-set changes out to subscribers as immutable snapshots.
// Room-style live queries are replaced with an explicit subscription: every
// write re-queries the affected notebook and pushes the freshly sorted list.
type memoHub struct {
	mu     sync.Mutex
	nextID int
	subs   map[int64]map[int]chan []model.Memo // notebookID -> subID -> channel
}

func newMemoHub() *memoHub {
	return &memoHub{
		subs: make(map[int64]map[int]chan []model.Memo),
	}
}

// ObserveMemos subscribes to the memo set of one notebook. The current
// snapshot is delivered immediately, then a new snapshot after every write.
// Snapshots are always sorted by (rank, id); slow consumers only ever miss
// intermediate states, never the latest one. The returned cancel func must
// be called to release the subscription.
func (s *Store) ObserveMemos(ctx context.Context, notebookID int64) (<-chan []model.Memo, func(), error) {
	initial, err := s.MemosByNotebook(ctx, notebookID)
	if err != nil {
		return nil, nil, err
	}

	ch := make(chan []model.Memo, 1)
	ch <- initial

	s.hub.mu.Lock()
	s.hub.nextID++
	id := s.hub.nextID
	if s.hub.subs[notebookID] == nil {
		s.hub.subs[notebookID] = make(map[int]chan []model.Memo)
	}
	s.hub.subs[notebookID][id] = ch
	s.hub.mu.Unlock()

	cancel := func() {
		s.hub.mu.Lock()
		defer s.hub.mu.Unlock()
		if subs, ok := s.hub.subs[notebookID]; ok {
			if _, ok := subs[id]; ok {
				delete(subs, id)
				close(ch)
			}
			if len(subs) == 0 {
				delete(s.hub.subs, notebookID)
			}
		}
	}

	return ch, cancel, nil
}

// broadcast re-queries one notebook and pushes the snapshot to its
// subscribers.
func (h *memoHub) broadcast(ctx context.Context, s *Store, notebookID int64) {
	h.mu.Lock()
	hasSubs := len(h.subs[notebookID]) > 0
	h.mu.Unlock()
	if !hasSubs {
		return
	}

	memos, err := s.MemosByNotebook(ctx, notebookID)
	if err != nil {
		s.l.Errorf(ctx, "memoHub.broadcast: re-query notebook %d: %v", notebookID, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs[notebookID] {
		// Latest-wins: drop the stale buffered snapshot if the consumer
		// has not picked it up yet.
		select {
		case <-ch:
		default:
		}
		ch <- memos
	}
}

// broadcastAll refreshes every observed notebook. Used by writes that do not
// know which notebook they touched (bulk completion, cascading deletes).
func (h *memoHub) broadcastAll(ctx context.Context, s *Store) {
	h.mu.Lock()
	ids := make([]int64, 0, len(h.subs))
	for notebookID := range h.subs {
		ids = append(ids, notebookID)
	}
	h.mu.Unlock()

	for _, id := range ids {
		h.broadcast(ctx, s, id)
	}
}
