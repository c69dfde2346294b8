package http

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/invyte/internal/invyte/domain"
	"github.com/aussiebroadwan/invyte/internal/invyte/service"
	"github.com/aussiebroadwan/invyte/pkg/invytesdk"
)

func TestToClaimResultsHidesInternalErrors(t *testing.T) {
	now := time.Now()
	results := toClaimResults([]service.ClaimResult{
		{ItemID: "w1", Claim: &service.ClaimRecord{ClaimedAt: now, ClaimStatus: domain.ClaimStatusPending}},
		{ItemID: "w2", Err: fmt.Errorf("claim: %w", service.ErrItemNotFound)},
		{ItemID: "w3", Err: errors.New("sqlite: database is locked (5) (SQLITE_BUSY)")},
	})

	require.Len(t, results, 3)
	require.True(t, results[0].Claimed)
	require.Empty(t, results[0].Error)

	require.False(t, results[1].Claimed)
	require.Equal(t, service.ErrItemNotFound.Error(), results[1].Error)

	require.False(t, results[2].Claimed)
	require.Equal(t, invytesdk.ErrorCodeServerError, results[2].Error)
	require.NotContains(t, results[2].Error, "sqlite")
}
