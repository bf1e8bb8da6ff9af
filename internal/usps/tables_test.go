package usps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"TX", "TX", true},
		{"tx", "TX", true},
		{"Texas", "TX", true},
		{"new  york", "NY", true},
		{"District of Columbia", "DC", true},
		{"PR", "PR", true},
		{"N CAROLINA", "NC", true},
		{"w virginia", "WV", true},
		{"XX", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := StateCode(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTables_Sizes(t *testing.T) {
	assert.Len(t, States, 56)
	assert.Len(t, StateNames, 56)
	assert.Len(t, Directionals, 8)
}

func TestStateNames_CodesAreValid(t *testing.T) {
	for name, code := range StateNames {
		_, ok := States[code]
		assert.True(t, ok, "%s maps to unknown code %s", name, code)
	}
}

func TestWordClasses(t *testing.T) {
	assert.True(t, IsStreetType("ST"))
	assert.True(t, IsStreetType("STREET"))
	assert.False(t, IsStreetType("MAIN"))
	assert.True(t, IsDirectional("NW"))
	assert.True(t, IsDirectional("SOUTH"))
	assert.False(t, IsDirectional("NORTHERN"))
	assert.True(t, IsUnitType("APT"))
	assert.True(t, IsUnitType("SUITE"))
	assert.False(t, IsUnitType("BOX"))
}
