package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/auth"
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/validator"
)

func TestPasswordPolicy_ValidateStrength(t *testing.T) {
	t.Parallel()

	policy := auth.DefaultPasswordPolicy()

	assert.NoError(t, policy.ValidateStrength("Abcd123!"))

	for _, password := range []string{
		"",
		"Ab1!",      // too short
		"abcd1234",  // no uppercase, no special
		"ABCD1234!", // no lowercase
		"Abcdefgh!", // no digit
		"Abcd1234",  // no special
	} {
		err := policy.ValidateStrength(password)
		require.Error(t, err, "password %q should be rejected", password)
		assert.True(t, validator.IsValidationError(err))
	}
}

func TestPasswordPolicy_CheckReuse(t *testing.T) {
	t.Parallel()

	policy := auth.DefaultPasswordPolicy()

	hash := func(p string) []byte {
		h, err := bcrypt.GenerateFromPassword([]byte(p), bcrypt.MinCost)
		require.NoError(t, err)
		return h
	}

	history := [][]byte{hash("Abcd123!"), hash("Efgh456!")}

	assert.ErrorIs(t, policy.CheckReuse("Abcd123!", history), auth.ErrPasswordReused)
	assert.ErrorIs(t, policy.CheckReuse("Efgh456!", history), auth.ErrPasswordReused)
	assert.NoError(t, policy.CheckReuse("Ijkl789!", history))
	assert.NoError(t, policy.CheckReuse("Abcd123!", nil))
}

func TestPasswordPolicy_Expired(t *testing.T) {
	t.Parallel()

	policy := auth.DefaultPasswordPolicy()
	now := time.Now()

	assert.False(t, policy.Expired(now.Add(-89*24*time.Hour), now))
	assert.True(t, policy.Expired(now.Add(-91*24*time.Hour), now))
	assert.False(t, policy.Expired(time.Time{}, now), "zero changedAt must not lock out")

	noExpiry := policy
	noExpiry.MaxAge = 0
	assert.False(t, noExpiry.Expired(now.Add(-1000*24*time.Hour), now))
}
