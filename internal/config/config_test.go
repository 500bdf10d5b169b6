package config

import (
	"testing"

	"clubadmin/internal/modules/accounting"

	"github.com/stretchr/testify/assert"
)

func TestParseAdvanceTiers(t *testing.T) {
	tiers, err := ParseAdvanceTiers("2:25,5:50,0:75")

	assert.NoError(t, err)
	assert.Equal(t, []accounting.AdvanceTier{
		{MaxUnits: 2, Percent: 25},
		{MaxUnits: 5, Percent: 50},
		{MaxUnits: 0, Percent: 75},
	}, tiers)
}

func TestParseAdvanceTiers_SortsBoundedAscending(t *testing.T) {
	tiers, err := ParseAdvanceTiers("0:75, 5:50, 2:25")

	assert.NoError(t, err)
	assert.Equal(t, 2, tiers[0].MaxUnits)
	assert.Equal(t, 5, tiers[1].MaxUnits)
	assert.Equal(t, 0, tiers[2].MaxUnits, "open-ended tier goes last")
}

func TestParseAdvanceTiers_Empty(t *testing.T) {
	tiers, err := ParseAdvanceTiers("")

	assert.NoError(t, err)
	assert.Nil(t, tiers)
}

func TestParseAdvanceTiers_Invalid(t *testing.T) {
	_, err := ParseAdvanceTiers("abc")
	assert.Error(t, err)

	_, err = ParseAdvanceTiers("2:150")
	assert.Error(t, err)

	_, err = ParseAdvanceTiers("-1:25")
	assert.Error(t, err)
}
