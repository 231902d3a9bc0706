package backend

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynamicGenerator_FollowsOrigin(t *testing.T) {
	var hitsA, hitsB atomic.Int32
	srvA := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		hitsA.Add(1)
		_, _ = w.Write([]byte(`{"flashcards":[{"front":"A","back":"1"}]}`))
	})
	srvB := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		hitsB.Add(1)
		_, _ = w.Write([]byte(`{"flashcards":[]}`))
	})

	origin := srvA.URL
	gen := NewDynamicGenerator(func() string { return origin })

	cards, err := gen.Generate(context.Background(), "https://example.com/a")
	require.NoError(t, err)
	assert.Len(t, cards, 1)

	origin = srvB.URL
	cards, err = gen.Generate(context.Background(), "https://example.com/b")
	require.NoError(t, err)
	assert.Empty(t, cards)

	assert.Equal(t, int32(1), hitsA.Load())
	assert.Equal(t, int32(1), hitsB.Load())
}

func TestDynamicGenerator_InvalidOrigin(t *testing.T) {
	gen := NewDynamicGenerator(func() string { return "not a url" })

	_, err := gen.Generate(context.Background(), "https://example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidBaseURL))
}
