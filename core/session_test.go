package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession_Defaults(t *testing.T) {
	s := NewSession("jailbreak")

	assert.Equal(t, "jailbreak", s.Query)
	assert.Equal(t, 1, s.Page)
	assert.Empty(t, s.Results)
	assert.False(t, s.Created.IsZero())
	assert.False(t, s.LastAccess.IsZero())
}

func TestSession_Touch(t *testing.T) {
	s := NewSession("q")
	s.LastAccess = time.Now().Add(-time.Hour)
	before := s.LastAccess

	s.Touch()

	assert.True(t, s.LastAccess.After(before))
}

func TestSession_CloneIsIndependent(t *testing.T) {
	s := NewSession("q")
	s.Page = 3
	s.Results = []ScriptSummary{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}}

	clone := s.Clone()
	require.Equal(t, s.Query, clone.Query)
	require.Equal(t, s.Page, clone.Page)
	require.Equal(t, s.Results, clone.Results)

	clone.Page = 9
	clone.Results[0].Title = "mutated"

	assert.Equal(t, 3, s.Page)
	assert.Equal(t, "A", s.Results[0].Title)
}
