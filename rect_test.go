package linear

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Edges(t *testing.T) {
	assert := assert.New(t)
	r := NewRect(100, 200, 400, 300)

	assert.Equal(Pt(100, 200), r.Min())
	assert.Equal(Pt(500, 500), r.Max())
	assert.Equal(float32(500), r.Right())
	assert.Equal(float32(500), r.Bottom())
	assert.False(r.Empty())
	assert.True(NewRect(0, 0, 0, 10).Empty())
	assert.True(NewRect(0, 0, 10, -1).Empty())
}

func TestRect_ContainsAndUnion(t *testing.T) {
	assert := assert.New(t)
	r := NewRect(0, 0, 100, 100)

	assert.True(r.Contains(NewRect(10, 10, 90, 90)))
	assert.False(r.Contains(NewRect(10, 10, 91, 90)))
	assert.False(r.Contains(NewRect(-1, 0, 10, 10)))

	assert.Equal(NewRect(-10, 0, 110, 150), r.Union(NewRect(-10, 50, 20, 100)))
}
