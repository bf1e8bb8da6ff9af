package business

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComponents_GetSet(t *testing.T) {
	var c Components
	for _, f := range AllFields {
		assert.False(t, c.Has(f), string(f))
		c.Set(f, "X"+string(f))
	}
	for _, f := range AllFields {
		assert.Equal(t, "X"+string(f), c.Get(f))
	}
	assert.Len(t, c.Present(), len(AllFields))
}

func TestComponents_UnknownFieldIgnored(t *testing.T) {
	var c Components
	c.Set(Field("bogus"), "value")
	assert.True(t, c.IsEmpty())
	assert.Equal(t, "", c.Get(Field("bogus")))
}

func TestComponents_ToMap(t *testing.T) {
	c := Components{StreetNumber: "123", City: "AUSTIN"}
	assert.Equal(t, map[string]string{"street_number": "123", "city": "AUSTIN"}, c.ToMap())
	assert.False(t, c.IsEmpty())
	assert.Equal(t, []Field{FieldStreetNumber, FieldCity}, c.Present())
}

func TestRepeatedLabelError_Is(t *testing.T) {
	var err error = &RepeatedLabelError{Label: "StreetName", Input: "A B"}
	assert.ErrorIs(t, err, ErrRepeatedLabel)
	assert.Contains(t, err.Error(), "StreetName")
}
