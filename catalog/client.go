package catalog

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Client binds a transport, an identity registry, and an entity type
// table into per-kind collections.  Operations are synchronous; the
// client gives no ordering guarantees across records beyond program
// order.
type Client struct {
	transport Transport
	registry  *Registry
	types     *Types
	log       *zap.Logger

	mu    sync.Mutex
	colls map[string]*Collection
}

type Option func(*Client)

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithRegistry shares an identity registry across clients; by default
// each client owns a fresh one.
func WithRegistry(r *Registry) Option {
	return func(c *Client) { c.registry = r }
}

// WithTypes replaces the builtin entity type table.
func WithTypes(ts *Types) Option {
	return func(c *Client) { c.types = ts }
}

func New(t Transport, opts ...Option) *Client {
	c := &Client{
		transport: t,
		registry:  NewRegistry(),
		types:     Builtin(),
		log:       zap.NewNop(),
		colls:     make(map[string]*Collection),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collection returns the one collection for kind, creating it on first
// use.  Kind is an entity type name, matched case-insensitively on a
// second pass.
func (c *Client) Collection(kind string) (*Collection, error) {
	typ, err := c.types.Lookup(kind)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if coll, ok := c.colls[typ.Name]; ok {
		return coll, nil
	}
	coll := &Collection{
		typ:     typ,
		client:  c,
		records: make(map[int]*Record),
	}
	c.colls[typ.Name] = coll
	return coll, nil
}

// Record is shorthand for Collection(kind).ByID(ctx, id).
func (c *Client) Record(ctx context.Context, kind string, id int) (*Record, error) {
	coll, err := c.Collection(kind)
	if err != nil {
		return nil, err
	}
	return coll.ByID(ctx, id)
}

func (c *Client) Registry() *Registry {
	return c.registry
}

func (c *Client) Types() *Types {
	return c.types
}
