package career

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemandTier(t *testing.T) {
	tests := []struct {
		pct  int
		want string
	}{
		{100, "extremely high"},
		{81, "extremely high"},
		{80, "high"},
		{61, "high"},
		{60, "moderate"},
		{31, "moderate"},
	}
	for _, tt := range tests {
		if got := demandTier(tt.pct); got != tt.want {
			t.Errorf("demandTier(%d) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestTraitDisplayName(t *testing.T) {
	if got := traitDisplayName("problem-solving"); got != "problem solving" {
		t.Errorf("traitDisplayName = %q", got)
	}
	if got := traitDisplayName("empathy"); got != "empathy" {
		t.Errorf("traitDisplayName = %q", got)
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	roles := c.Roles()
	require.NotEmpty(t, roles, "default catalogue is empty")

	cfg := DefaultConfig()
	for _, r := range roles {
		assert.NotEmpty(t, r.ID, "role missing ID")
		assert.NotEmpty(t, r.Title, "role %s missing title", r.ID)
		assert.NotEmpty(t, r.Criteria, "role %s has no criteria vector", r.ID)
		for trait, expected := range r.Criteria {
			assert.GreaterOrEqual(t, expected, 1, "role %s trait %s", r.ID, trait)
			assert.LessOrEqual(t, expected, cfg.RatingScaleMax, "role %s trait %s", r.ID, trait)
		}
		assert.GreaterOrEqual(t, r.Salary.Avg, r.Salary.Min, "role %s salary avg below min", r.ID)
		assert.LessOrEqual(t, r.Salary.Avg, r.Salary.Max, "role %s salary avg above max", r.ID)

		got, err := c.Get(r.ID)
		require.NoError(t, err, "Get(%s)", r.ID)
		assert.Equal(t, r.Title, got.Title, "Get(%s)", r.ID)
	}

	_, err := c.Get("no-such-role")
	assert.Error(t, err, "Get of unknown role succeeded")
}
