package server

import (
	stderrors "errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
)

func TestManagerAdd(t *testing.T) {
	m := NewManager(0)

	require.NoError(t, m.Add(game.New(game.WithID("a"))))
	require.NoError(t, m.Add(game.New(game.WithID("b"))))
	assert.Equal(t, 2, m.Len())
	assert.True(t, m.Has("a"))
	assert.False(t, m.Has("c"))

	err := m.Add(game.New(game.WithID("a")))
	assert.True(t, stderrors.Is(err, errors.ErrGameExists), "got %v", err)
	assert.Contains(t, err.Error(), `"a"`)
	assert.Equal(t, 2, m.Len())
}

func TestManagerLimit(t *testing.T) {
	m := NewManager(2)

	require.NoError(t, m.Add(game.New()))
	require.NoError(t, m.Add(game.New()))
	err := m.Add(game.New())
	assert.True(t, stderrors.Is(err, errors.ErrTooManyGames), "got %v", err)

	require.NoError(t, m.Remove(firstID(t, m)))
	assert.NoError(t, m.Add(game.New()), "room after a removal")
}

func TestManagerWith(t *testing.T) {
	m := NewManager(0)
	require.NoError(t, m.Add(game.New(game.WithID("g"))))

	err := m.With("g", func(g *game.Game) error {
		_, err := g.Move(chess.Coord{Rank: 1, File: 4}, chess.Coord{Rank: 3, File: 4}, chess.NoKind)
		return err
	})
	require.NoError(t, err)

	var toMove chess.Colour
	require.NoError(t, m.With("g", func(g *game.Game) error {
		toMove = g.ToMove()
		return nil
	}))
	assert.Equal(t, chess.Black, toMove, "changes persist between calls")

	err = m.With("g", func(g *game.Game) error {
		return errors.ErrGameOver
	})
	assert.True(t, stderrors.Is(err, errors.ErrGameOver), "fn error is returned")

	err = m.With("missing", func(g *game.Game) error {
		t.Fatal("fn called for a missing game")
		return nil
	})
	assert.True(t, stderrors.Is(err, errors.ErrGameNotFound), "got %v", err)
}

func TestManagerRemove(t *testing.T) {
	m := NewManager(0)
	require.NoError(t, m.Add(game.New(game.WithID("g"))))

	require.NoError(t, m.Remove("g"))
	assert.False(t, m.Has("g"))

	err := m.Remove("g")
	assert.True(t, stderrors.Is(err, errors.ErrGameNotFound), "got %v", err)
}

func TestManagerSerializesMoves(t *testing.T) {
	m := NewManager(0)
	require.NoError(t, m.Add(game.New(game.WithID("g"))))

	// Every goroutine tries White's opening e2-e4; exactly one may win.
	const workers = 16
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := m.With("g", func(g *game.Game) error {
				_, err := g.Move(chess.Coord{Rank: 1, File: 4}, chess.Coord{Rank: 3, File: 4}, chess.NoKind)
				return err
			})
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, accepted)
	require.NoError(t, m.With("g", func(g *game.Game) error {
		assert.Equal(t, 1, g.State().Plies)
		return nil
	}))
}

func firstID(t *testing.T, m *Manager) string {
	t.Helper()
	m.mu.RLock()
	defer m.mu.RUnlock()
	for id := range m.games {
		return id
	}
	t.Fatal("manager is empty")
	return ""
}
