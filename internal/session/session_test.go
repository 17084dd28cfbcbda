package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAddAndClear(t *testing.T) {
	s := New()
	assert.NotEqual(t, uuid.Nil, s.ID)

	s.Add(3)
	s.Add(0)
	s.Add(-2)
	assert.Equal(t, 3, s.Score)

	old := s.ID
	s.Clear()
	assert.Zero(t, s.Score)
	assert.NotEqual(t, old, s.ID)
}
