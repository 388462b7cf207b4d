package monitoring

import (
	"testing"
	"time"

	"github.com/JasirAhamed786/unifield-be/internal/database"
	"github.com/JasirAhamed786/unifield-be/internal/models"
	"github.com/JasirAhamed786/unifield-be/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepDeactivatesExpiredContent(t *testing.T) {
	db, err := database.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))

	schemeSvc := services.NewSchemeService(db)
	policySvc := services.NewPolicyService(db)

	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	_, err = schemeSvc.CreateScheme(models.GovernmentScheme{Title: "Expired", Description: "d", Deadline: &past})
	require.NoError(t, err)
	_, err = schemeSvc.CreateScheme(models.GovernmentScheme{Title: "Open", Description: "d", Deadline: &future})
	require.NoError(t, err)
	_, err = policySvc.CreatePolicy(models.PolicyInformation{Title: "Lapsed", Summary: "s", Content: "c", ExpiryDate: &past})
	require.NoError(t, err)

	sweeper, err := NewExpirySweeper(schemeSvc, policySvc, "@hourly")
	require.NoError(t, err)
	sweeper.Sweep(now)

	schemes, err := schemeSvc.GetActiveSchemes()
	require.NoError(t, err)
	require.Len(t, schemes, 1)
	assert.Equal(t, "Open", schemes[0].Title)

	policies, err := policySvc.GetActivePolicies()
	require.NoError(t, err)
	assert.Empty(t, policies)
}

func TestNewExpirySweeperBadExpression(t *testing.T) {
	_, err := NewExpirySweeper(nil, nil, "every once in a while")
	assert.Error(t, err)
}
