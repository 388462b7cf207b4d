package services

import (
	"testing"
	"time"

	"github.com/JasirAhamed786/unifield-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeactivateExpiredPolicies(t *testing.T) {
	svc := NewPolicyService(newTestDB(t))

	now := time.Now()
	past := now.Add(-24 * time.Hour)

	expired, err := svc.CreatePolicy(models.PolicyInformation{
		Title: "Sunset Policy", Summary: "s", Content: "c", ExpiryDate: &past,
	})
	require.NoError(t, err)
	current, err := svc.CreatePolicy(models.PolicyInformation{
		Title: "Current Policy", Summary: "s", Content: "c",
	})
	require.NoError(t, err)

	n, err := svc.DeactivateExpired(now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	active, err := svc.GetActivePolicies()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, current.ID, active[0].ID)

	// The expired document still exists, just inactive
	got, err := svc.GetPolicyByID(expired.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestUpdatePolicyBumpsTimestamp(t *testing.T) {
	svc := NewPolicyService(newTestDB(t))

	policy, err := svc.CreatePolicy(models.PolicyInformation{Title: "P", Summary: "s", Content: "c"})
	require.NoError(t, err)

	policy.Summary = "revised"
	policy.IsActive = true
	updated, err := svc.UpdatePolicy(policy.ID, policy)
	require.NoError(t, err)
	assert.Equal(t, "revised", updated.Summary)
	assert.False(t, updated.UpdatedAt.Before(policy.UpdatedAt))
}
