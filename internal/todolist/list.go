package todolist

import (
	"context"
	"sort"

	"listenote/internal/model"
)

// sortByRank orders a snapshot by rank ascending, ties broken by id.
// Storage return order is treated as arbitrary and re-sorted every time.
func sortByRank(memos []model.Memo) []model.Memo {
	sorted := append([]model.Memo(nil), memos...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].ToDoPosition != sorted[j].ToDoPosition {
			return sorted[i].ToDoPosition < sorted[j].ToDoPosition
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// Refresh loads the current memo set and re-derives the displayed order.
func (li *List) Refresh(ctx context.Context) error {
	memos, err := li.repo.MemosByNotebook(ctx, li.notebookID)
	if err != nil {
		return err
	}
	li.mu.Lock()
	li.memos = sortByRank(memos)
	li.mu.Unlock()
	return nil
}

// Observe subscribes to the notebook's memo set. Every snapshot is
// re-sorted by rank before it is exposed or adopted as the displayed order.
func (li *List) Observe(ctx context.Context) (<-chan []model.Memo, func(), error) {
	raw, cancel, err := li.repo.ObserveMemos(ctx, li.notebookID)
	if err != nil {
		return nil, nil, err
	}

	out := make(chan []model.Memo, 1)
	go func() {
		defer close(out)
		for snap := range raw {
			sorted := sortByRank(snap)
			li.mu.Lock()
			li.memos = sorted
			li.mu.Unlock()

			select {
			case <-out:
			default:
			}
			out <- sorted
		}
	}()

	return out, cancel, nil
}

// Items returns a copy of the displayed sequence.
func (li *List) Items() []model.Memo {
	li.mu.Lock()
	defer li.mu.Unlock()
	return append([]model.Memo(nil), li.memos...)
}

// MoveItem reorders the in-memory displayed sequence only; nothing is
// written until CommitOrder. An empty sequence is a no-op; an out-of-range
// index is a contract violation and fails loudly.
func (li *List) MoveItem(fromIndex, toIndex int) error {
	li.mu.Lock()
	defer li.mu.Unlock()

	if len(li.memos) == 0 {
		return nil
	}
	if fromIndex < 0 || fromIndex >= len(li.memos) || toIndex < 0 || toIndex >= len(li.memos) {
		return ErrIndexOutOfRange
	}

	moved := li.memos[fromIndex]
	li.memos = append(li.memos[:fromIndex], li.memos[fromIndex+1:]...)
	li.memos = append(li.memos[:toIndex], append([]model.Memo{moved}, li.memos[toIndex:]...)...)
	return nil
}

// CommitOrder persists rank = index for the current displayed sequence,
// writing only items whose rank actually changed. Call once at the end of a
// drag gesture. Returns the number of rows written.
func (li *List) CommitOrder(ctx context.Context) (int, error) {
	li.mu.Lock()
	memos := append([]model.Memo(nil), li.memos...)
	li.mu.Unlock()

	writes := 0
	for idx, memo := range memos {
		if memo.ToDoPosition == idx {
			continue
		}
		if err := li.repo.SetMemoPosition(ctx, memo.ID, idx); err != nil {
			return writes, err
		}
		writes++
		memos[idx].ToDoPosition = idx
	}

	li.mu.Lock()
	// Adopt the committed ranks unless a newer snapshot replaced the list.
	if len(li.memos) == len(memos) {
		same := true
		for i := range memos {
			if li.memos[i].ID != memos[i].ID {
				same = false
				break
			}
		}
		if same {
			li.memos = memos
		}
	}
	li.mu.Unlock()

	if writes > 0 {
		li.l.Debugf(ctx, "todolist: committed order for notebook %d (%d writes)", li.notebookID, writes)
	}
	return writes, nil
}

// SetCompletion persists the completion flag for one item. A missing memo
// silently no-ops.
func (li *List) SetCompletion(ctx context.Context, memoID int64, completed bool) error {
	return li.repo.SetMemoCompletion(ctx, memoID, completed)
}

// SetAllCompletion persists the flag for every displayed item whose flag
// differs from the target. Returns the number of rows written.
func (li *List) SetAllCompletion(ctx context.Context, completed bool) (int, error) {
	li.mu.Lock()
	memos := append([]model.Memo(nil), li.memos...)
	li.mu.Unlock()

	writes := 0
	for _, memo := range memos {
		if memo.IsCompleted == completed {
			continue
		}
		if err := li.repo.SetMemoCompletion(ctx, memo.ID, completed); err != nil {
			return writes, err
		}
		writes++
	}
	return writes, nil
}
