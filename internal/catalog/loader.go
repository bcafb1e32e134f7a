package catalog

import (
	"context"
	"sync"

	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

// Loader fetches the catalog exactly once. It starts in Loading and moves to
// Loaded or Failed, both terminal.
type Loader struct {
	client port.CatalogClient
	log    *zap.Logger

	once  sync.Once
	done  chan struct{}
	mu    sync.RWMutex
	state State
}

func NewLoader(client port.CatalogClient, logger *zap.Logger) *Loader {
	return &Loader{
		client: client,
		log:    logger,
		done:   make(chan struct{}),
		state:  Loading{},
	}
}

// Load performs the fetch on first call and blocks until it resolves. Later
// and concurrent calls return the same terminal state without fetching again.
func (l *Loader) Load(ctx context.Context) State {
	l.once.Do(func() {
		l.resolve(l.fetch(ctx))
	})

	<-l.done
	return l.State()
}

// Start runs Load in the background.
func (l *Loader) Start(ctx context.Context) {
	go l.Load(ctx)
}

// Done is closed once the loader has left Loading.
func (l *Loader) Done() <-chan struct{} {
	return l.done
}

func (l *Loader) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.state
}

func (l *Loader) fetch(ctx context.Context) State {
	products, err := l.client.FetchProducts(ctx)
	if err != nil {
		l.log.Error("catalog load failed", zap.Error(err))
		return Failed{Message: err.Error(), Err: err}
	}

	l.log.Info("catalog loaded", zap.Int("products", len(products)))
	return Loaded{Products: products}
}

func (l *Loader) resolve(state State) {
	l.mu.Lock()
	l.state = state
	l.mu.Unlock()

	close(l.done)
}
