package domain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShareCode(t *testing.T) {
	re := regexp.MustCompile(`^[0-9a-f]{36}$`)

	a, err := NewShareCode()
	require.NoError(t, err)
	assert.Regexp(t, re, a)

	b, err := NewShareCode()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestAssembleDetail(t *testing.T) {
	t.Run("nil on zero rows", func(t *testing.T) {
		assert.Nil(t, AssembleDetail("7", nil))
		assert.Nil(t, AssembleDetail("7", []DetailRow{}))
	})

	t.Run("single member sets OneMember", func(t *testing.T) {
		d := AssembleDetail("7", []DetailRow{
			{UserID: 1, FirstName: "Ada", LastName: "Lovelace", Name: "Hiking Crew", Description: "Weekend hikes", ActionToTake: "Meet at trailhead", ShareCode: "abc", ActivityID: 3},
		})
		require.NotNil(t, d)
		assert.True(t, d.OneMember)
		assert.Equal(t, "7", d.Ref)
		assert.Equal(t, "Hiking Crew", d.Name)
		assert.Equal(t, "Weekend hikes", d.Description)
		require.Len(t, d.Members, 1)
		assert.Equal(t, int64(1), d.Members[0].ID)
	})

	t.Run("multiple members", func(t *testing.T) {
		d := AssembleDetail("abc", []DetailRow{
			{UserID: 1, FirstName: "Ada", LastName: "Lovelace", Name: "Hiking Crew", ActionToTake: "Meet at trailhead"},
			{UserID: 2, FirstName: "Alan", LastName: "Turing", Name: "Hiking Crew", ActionToTake: "Meet at trailhead"},
		})
		require.NotNil(t, d)
		assert.False(t, d.OneMember)
		assert.Len(t, d.Members, 2)
	})

	t.Run("blank name and description fall back to placeholders", func(t *testing.T) {
		d := AssembleDetail("7", []DetailRow{
			{UserID: 1, FirstName: "Ada", LastName: "Lovelace", ActionToTake: "Regroup"},
		})
		require.NotNil(t, d)
		assert.Equal(t, "Unnamed", d.Name)
		assert.Equal(t, "No description", d.Description)
	})
}
