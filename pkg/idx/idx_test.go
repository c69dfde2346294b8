package idx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/invyte/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewAndParse(t *testing.T) {
	id := idx.New()
	require.NotEmpty(t, id.String())

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
	require.False(t, id.IsZero())

	_, err = idx.Parse("  ")
	require.ErrorIs(t, err, idx.ErrInvalid)
	_, err = idx.Parse("not-a-ulid")
	require.ErrorIs(t, err, idx.ErrInvalid)
}

func TestOrdering(t *testing.T) {
	a := idx.NewAt(time.Unix(1, 0).UTC())
	b := idx.NewAt(time.Unix(2, 0).UTC())

	require.Less(t, a.String(), b.String())
}

// Rows are ordered by id, so IDs minted back to back must sort in the order
// they were created even inside the same millisecond.
func TestMonotonicWithinMillisecond(t *testing.T) {
	now := time.Now().UTC()
	prev := idx.NewAt(now)
	for range 100 {
		next := idx.NewAt(now)
		require.Less(t, prev.String(), next.String())
		prev = next
	}
}

func TestNewToken(t *testing.T) {
	a, b := idx.NewToken(), idx.NewToken()
	require.NotEqual(t, a, b)
	require.Len(t, a, 26)
}
