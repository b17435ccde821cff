package pgsql

import (
	"context"
	"sync"
)

// Table names used as change notification topics.
const (
	tableAccounts      = "accounts"
	tableTransactions  = "transactions"
	tableTimeBlocks    = "time_blocks"
	tableStatusUpdates = "status_updates"
)

// changeNotifier is the in-process hub behind the repository Subscribe
// methods. Writers announce the table they touched; each subscription holds
// a one-slot signal channel, so a burst of writes collapses into a single
// re-query (latest wins).
type changeNotifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]chan struct{}
}

func newChangeNotifier() *changeNotifier {
	return &changeNotifier{subs: make(map[string]map[int]chan struct{})}
}

// notify signals every subscription watching the table. Never blocks: a
// subscription that already has a pending signal keeps just that one.
func (n *changeNotifier) notify(table string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, signal := range n.subs[table] {
		select {
		case signal <- struct{}{}:
		default:
		}
	}
}

// subscribe registers a signal channel for the table. The registration is
// removed and the channel closed when ctx is cancelled.
func (n *changeNotifier) subscribe(ctx context.Context, table string) <-chan struct{} {
	signal := make(chan struct{}, 1)

	n.mu.Lock()
	if n.subs[table] == nil {
		n.subs[table] = make(map[int]chan struct{})
	}
	id := n.nextID
	n.nextID++
	n.subs[table][id] = signal
	n.mu.Unlock()

	go func() {
		<-ctx.Done()
		n.mu.Lock()
		delete(n.subs[table], id)
		n.mu.Unlock()
		close(signal)
	}()

	return signal
}

// watch runs query once for the initial snapshot, then re-runs it on every
// change signal for the table. The returned channel holds at most one
// pending snapshot; a consumer that lags only ever sees the newest result.
// The channel is closed when ctx is cancelled.
func watch[T any](ctx context.Context, n *changeNotifier, table string, query func(context.Context) (T, error)) (<-chan T, error) {
	initial, err := query(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan T, 1)
	out <- initial
	signal := n.subscribe(ctx, table)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-signal:
				if !ok {
					return
				}
				snapshot, err := query(ctx)
				if err != nil {
					// The subscription stays alive; the next write retries.
					continue
				}
				select {
				case <-out:
				default:
				}
				select {
				case out <- snapshot:
				default:
				}
			}
		}
	}()

	return out, nil
}
