package registry_test

import (
	"sync"
	"testing"

	"github.com/Gobd/apischema"
	"github.com/Gobd/apischema/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schema(t *testing.T) *apischema.Schema {
	t.Helper()
	s, err := apischema.NewSchema(apischema.F("title", apischema.FieldRule{Type: apischema.KindString, Required: true}))
	require.NoError(t, err)
	return s
}

func TestRegistry(t *testing.T) {
	r := registry.New()
	s := schema(t)

	require.NoError(t, r.Register("todo", s))
	require.NoError(t, r.Register("post", s))

	got, ok := r.Get("todo")
	require.True(t, ok)
	assert.Same(t, s, got)
	assert.Same(t, s, r.MustGet("post"))

	_, ok = r.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"post", "todo"}, r.Names())
}

func TestRegistry_RegisterErrors(t *testing.T) {
	r := registry.New()
	s := schema(t)

	require.NoError(t, r.Register("todo", s))
	assert.ErrorIs(t, r.Register("todo", s), registry.ErrDuplicate)
	assert.Error(t, r.Register("", s))
	assert.Error(t, r.Register("nil", nil))
	assert.Panics(t, func() { r.MustRegister("todo", s) })
}

func TestRegistry_MustGetPanics(t *testing.T) {
	defer func() {
		rec := recover()
		require.NotNil(t, rec)
		err, ok := rec.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, registry.ErrNotFound)
	}()
	registry.New().MustGet("nope")
}

func TestRegistry_Concurrent(t *testing.T) {
	r := registry.New()
	s := schema(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		name := string(rune('a' + i))
		go func() {
			defer wg.Done()
			_ = r.Register(name, s)
		}()
		go func() {
			defer wg.Done()
			_ = r.Names()
			_, _ = r.Get(name)
		}()
	}
	wg.Wait()
	assert.Len(t, r.Names(), 8)
}
