package cart

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"fuego-be/internal/catalog"
	"fuego-be/internal/logger"
)

const saveTimeout = 5 * time.Second

// Store is the process-wide cart state container. Mutations publish the
// new snapshot to observers synchronously and queue a best-effort durable
// write; nothing ever blocks on storage.
type Store struct {
	mu        sync.Mutex
	items     []Item
	isOpen    bool
	observers []func(Snapshot)

	repo    Repository
	pending chan []Item
	done    chan struct{}
}

// NewStore builds a store rehydrated from repo. A load failure means "no
// persisted cart": the store starts empty and the error is only logged.
func NewStore(ctx context.Context, repo Repository) *Store {
	s := &Store{
		repo:    repo,
		pending: make(chan []Item, 1),
		done:    make(chan struct{}),
	}

	if repo != nil {
		items, err := repo.Load(ctx)
		if err != nil {
			logger.L().Warn("cart rehydration failed, starting empty", zap.Error(err))
		} else {
			s.items = items
		}
		go s.writer()
	}

	return s
}

// Close stops the background writer. Pending writes may be lost; the
// persistence contract is best-effort.
func (s *Store) Close() {
	if s.repo != nil {
		close(s.done)
	}
}

// Subscribe registers an observer called synchronously after every
// mutation, starting with the current snapshot.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
	fn(s.snapshotLocked())
}

// Snapshot returns the current immutable view.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// AddItem appends a new line with quantity 1, or bumps the quantity of
// the existing line with the same code. It always succeeds.
func (s *Store) AddItem(p catalog.Product) {
	s.mutate(func() {
		for i := range s.items {
			if s.items[i].Product.Code == p.Code {
				s.items[i].Quantity++
				return
			}
		}
		s.items = append(s.items, Item{Product: p, Quantity: 1})
	})
}

// RemoveItem deletes the line with the given code; no-op when absent.
func (s *Store) RemoveItem(code string) {
	s.mutate(func() {
		s.removeLocked(code)
	})
}

// UpdateQuantity sets the line's quantity exactly. A quantity of zero or
// less removes the line. No-op when the code is absent.
func (s *Store) UpdateQuantity(code string, quantity int) {
	s.mutate(func() {
		if quantity <= 0 {
			s.removeLocked(code)
			return
		}
		for i := range s.items {
			if s.items[i].Product.Code == code {
				s.items[i].Quantity = quantity
				return
			}
		}
	})
}

// ClearCart empties the item list.
func (s *Store) ClearCart() {
	s.mutate(func() {
		s.items = nil
	})
}

// OpenCart, CloseCart and ToggleCart flip the transient drawer flag.
// The flag is published but never persisted.
func (s *Store) OpenCart()  { s.mutate(func() { s.isOpen = true }) }
func (s *Store) CloseCart() { s.mutate(func() { s.isOpen = false }) }
func (s *Store) ToggleCart() {
	s.mutate(func() { s.isOpen = !s.isOpen })
}

func (s *Store) removeLocked(code string) {
	out := s.items[:0]
	for _, it := range s.items {
		if it.Product.Code != code {
			out = append(out, it)
		}
	}
	s.items = out
}

func (s *Store) mutate(apply func()) {
	s.mu.Lock()
	apply()
	snap := s.snapshotLocked()
	observers := s.observers
	s.mu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
	s.queueSave(snap.Items)
}

func (s *Store) snapshotLocked() Snapshot {
	items := make([]Item, len(s.items))
	copy(items, s.items)
	count, subtotal := totals(items)
	return Snapshot{
		Items:      items,
		IsOpen:     s.isOpen,
		TotalItems: count,
		Subtotal:   subtotal,
	}
}

// queueSave hands the latest item list to the background writer,
// replacing any not-yet-written state. Latest wins; intermediate states
// are safe to skip because each write carries the whole record.
func (s *Store) queueSave(items []Item) {
	if s.repo == nil {
		return
	}
	for {
		select {
		case s.pending <- items:
			return
		default:
			select {
			case <-s.pending:
			default:
			}
		}
	}
}

func (s *Store) writer() {
	for {
		select {
		case items := <-s.pending:
			ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
			if err := s.repo.Save(ctx, items); err != nil {
				logger.L().Warn("cart persistence write failed", zap.Error(err))
			}
			cancel()
		case <-s.done:
			return
		}
	}
}
