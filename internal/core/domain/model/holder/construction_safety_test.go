package holder

import (
	"math"
	"testing"
	"time"

	"valueguard/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sweeper stands in for a deferred cleanup mechanism: it remembers every
// holder it was handed and later visits all of them without being asked by
// the code that created them.
type sweeper struct {
	tracked []*Holder
}

func (s *sweeper) track(h *Holder) {
	s.tracked = append(s.tracked, h)
}

func (s *sweeper) sweep(visit func(*Holder)) {
	for _, h := range s.tracked {
		visit(h)
	}
}

// createTracked is how the application builds holders: validate, construct,
// and only then hand the result to the cleanup mechanism.
func createTracked(raw int, s *sweeper) (*Holder, error) {
	value, err := kernel.NewPositiveValue(raw)
	if err != nil {
		return nil, err
	}

	h, err := NewHolder(value)
	if err != nil {
		return nil, err
	}

	s.track(h)
	return h, nil
}

// createTrackedLate binds identity and registers cleanup before validating.
// It exists only to show the window that createTracked closes.
func createTrackedLate(raw int, s *sweeper) (*Holder, error) {
	h := &Holder{
		id:            kernel.NewUUID(),
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}
	s.track(h)

	value, err := kernel.NewPositiveValue(raw)
	if err != nil {
		return nil, err
	}

	h.value = value
	return h, nil
}

func TestFailedConstructionNeverReachesCleanup(t *testing.T) {
	t.Run("validated construction", func(t *testing.T) {
		// Given
		s := &sweeper{}

		// When
		for _, raw := range []int{0, -1, -5, math.MinInt} {
			h, err := createTracked(raw, s)
			require.Error(t, err)
			require.Nil(t, h)
		}
		valid, err := createTracked(1, s)
		require.NoError(t, err)

		// Then
		var visited []*Holder
		s.sweep(func(h *Holder) { visited = append(visited, h) })

		require.Len(t, visited, 1)
		assert.Same(t, valid, visited[0])
		for _, h := range visited {
			require.NoError(t, h.Value().Validate())
			assert.Positive(t, h.Value().Value())
		}
	})

	t.Run("late validation leaks invalid instances to cleanup", func(t *testing.T) {
		// Given
		s := &sweeper{}

		// When
		h, err := createTrackedLate(0, s)

		// Then
		require.Error(t, err)
		require.Nil(t, h)

		var invalid int
		s.sweep(func(h *Holder) {
			if h.Value().Validate() != nil {
				invalid++
			}
		})
		assert.Equal(t, 1, invalid, "the caller saw an error, but cleanup still got an instance without a valid value")
	})
}
