package party

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluationPoint(t *testing.T) {
	assert.Equal(t, uint64(1), ID(0).EvaluationPoint())
	assert.Equal(t, uint64(4), ID(3).EvaluationPoint())
}

func TestNewIDSlice(t *testing.T) {
	ids := NewIDSlice(4)
	assert.Equal(t, IDSlice{0, 1, 2, 3}, ids)
	assert.True(t, ids.Contains(2))
	assert.False(t, ids.Contains(4))
}
