package internal

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubResolver resolves a fixed set of inner texts
type stubResolver struct {
	name   string
	values map[string]string
	err    error
	calls  int
	mu     sync.Mutex
}

func (s *stubResolver) Name() string {
	return s.name
}

func (s *stubResolver) Resolve(_ context.Context, item *ItemNode) (string, bool, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if s.err != nil {
		return "", false, s.err
	}
	v, ok := s.values[item.Text]
	return v, ok, nil
}

// anonymousResolver has no Name method
type anonymousResolver struct{}

func (anonymousResolver) Resolve(context.Context, *ItemNode) (string, bool, error) {
	return "", false, nil
}

func TestChain_Register(t *testing.T) {
	chain := NewChain(zap.NewNop())

	require.NoError(t, chain.Register(&stubResolver{name: "first"}))
	require.NoError(t, chain.Register(anonymousResolver{}))
	require.NoError(t, chain.Register(&stubResolver{name: "third"}))

	assert.Equal(t, 3, chain.Len())
	assert.Equal(t, []string{"first", "resolver#1", "third"}, chain.Names())
}

func TestChain_RegisterNil(t *testing.T) {
	chain := NewChain(nil)

	err := chain.Register(nil)
	require.Error(t, err)

	var regErr *RegistryError
	require.ErrorAs(t, err, &regErr)
	assert.Equal(t, ErrMsgNilResolver, regErr.Message)
	assert.Equal(t, 0, chain.Len())
}

func TestChain_SnapshotIsCopy(t *testing.T) {
	chain := NewChain(nil)
	require.NoError(t, chain.Register(&stubResolver{name: "a"}))

	resolvers, names := chain.Snapshot()
	require.NoError(t, chain.Register(&stubResolver{name: "b"}))

	assert.Len(t, resolvers, 1)
	assert.Equal(t, []string{"a"}, names)
	assert.Equal(t, 2, chain.Len())
}

func TestChain_ConcurrentRegister(t *testing.T) {
	chain := NewChain(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = chain.Register(&stubResolver{name: fmt.Sprintf("r%d", i)})
			_ = chain.Names()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, chain.Len())
}

func TestResolverName_EmptyNameFallsBack(t *testing.T) {
	assert.Equal(t, "resolver#4", ResolverName(&stubResolver{}, 4))
}

func TestRegistryError_Error(t *testing.T) {
	t.Run("with resolver", func(t *testing.T) {
		err := NewRegistryError("boom", "env")
		assert.Equal(t, "boom: env", err.Error())
	})

	t.Run("without resolver", func(t *testing.T) {
		err := NewRegistryError(ErrMsgNilResolver, "")
		assert.Equal(t, ErrMsgNilResolver, err.Error())
	})
}
