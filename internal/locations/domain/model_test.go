package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDetail(t *testing.T) {
	t.Run("first address line sets the flag", func(t *testing.T) {
		d := NewDetail(Location{Name: "Park", Address1: "1 Main Rd"})
		assert.True(t, d.Address)
	})

	t.Run("second address line alone sets the flag", func(t *testing.T) {
		d := NewDetail(Location{Name: "Park", Address2: "Unit 4"})
		assert.True(t, d.Address)
	})

	t.Run("no address lines", func(t *testing.T) {
		d := NewDetail(Location{Name: "Park", City: "Cape Town"})
		assert.False(t, d.Address)
		assert.Equal(t, "Cape Town", d.City)
	})
}
