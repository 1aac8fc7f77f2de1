package arr

import (
	"log/slog"
	"sync"
)

type poolKey struct {
	service string
	conn    Conn
}

// Pool hands out one Client per (service, base_url, api_key, verify) tuple.
// Safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	clients map[poolKey]*Client
	logger  *slog.Logger
}

// NewPool creates an empty pool.
func NewPool(logger *slog.Logger) *Pool {
	return &Pool{clients: make(map[poolKey]*Client), logger: logger}
}

// Get returns the pooled client for conn, creating it on first use.
func (p *Pool) Get(service string, conn Conn) (*Client, error) {
	key := poolKey{service: service, conn: conn}

	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok := p.clients[key]; ok {
		return c, nil
	}
	c, err := NewClient(service, conn, p.logger)
	if err != nil {
		return nil, err
	}
	p.clients[key] = c
	return c, nil
}

// Len returns the number of distinct clients created so far.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.clients)
}
