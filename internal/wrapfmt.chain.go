package internal

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Resolver attempts to produce replacement text for a placeholder.
// ok is false when the resolver does not handle the item.
type Resolver interface {
	Resolve(ctx context.Context, item *ItemNode) (value string, ok bool, err error)
}

// Named is implemented by resolvers that want a stable name in logs and traces
type Named interface {
	Name() string
}

// Chain is an ordered resolver list. Registration order is precedence order.
// It is safe for concurrent registration and snapshotting.
type Chain struct {
	resolvers []Resolver
	names     []string
	mu        sync.RWMutex
	logger    *zap.Logger
}

// NewChain creates an empty resolver chain.
func NewChain(logger *zap.Logger) *Chain {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgChainCreated)
	return &Chain{
		logger: logger,
	}
}

// Register appends a resolver to the end of the chain.
func (c *Chain) Register(resolver Resolver) error {
	if resolver == nil {
		return NewRegistryError(ErrMsgNilResolver, "")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	name := ResolverName(resolver, len(c.resolvers))
	c.resolvers = append(c.resolvers, resolver)
	c.names = append(c.names, name)
	c.logger.Debug(LogMsgResolverRegistered,
		zap.String(LogFieldResolver, name),
		zap.Int(LogFieldIndex, len(c.resolvers)-1),
	)
	return nil
}

// Snapshot returns a copy of the resolvers and their names in order.
func (c *Chain) Snapshot() ([]Resolver, []string) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	resolvers := make([]Resolver, len(c.resolvers))
	copy(resolvers, c.resolvers)
	names := make([]string, len(c.names))
	copy(names, c.names)
	return resolvers, names
}

// Names returns the resolver names in registration order.
func (c *Chain) Names() []string {
	_, names := c.Snapshot()
	return names
}

// Len returns the number of registered resolvers.
func (c *Chain) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.resolvers)
}

// ResolverName returns the resolver's own name, or a positional one.
func ResolverName(resolver Resolver, index int) string {
	if named, ok := resolver.(Named); ok {
		if name := named.Name(); name != "" {
			return name
		}
	}
	return fmt.Sprintf(UnnamedResolverFmt, index)
}

// RegistryError represents a chain registration error
type RegistryError struct {
	Message  string
	Resolver string
}

// NewRegistryError creates a new registry error
func NewRegistryError(message, resolver string) *RegistryError {
	return &RegistryError{
		Message:  message,
		Resolver: resolver,
	}
}

// Error implements the error interface
func (e *RegistryError) Error() string {
	if e.Resolver != "" {
		return fmt.Sprintf(ErrFmtTagMessage, e.Message, e.Resolver)
	}
	return e.Message
}

// Registry error message constants
const (
	ErrMsgNilResolver = "resolver cannot be nil"
)
