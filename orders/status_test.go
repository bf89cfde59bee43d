package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressAlongHappyPath(t *testing.T) {
	assert.Equal(t, 20, Progress(StatusPending))
	assert.Equal(t, 40, Progress(StatusConfirmed))
	assert.Equal(t, 60, Progress(StatusProcessing))
	assert.Equal(t, 80, Progress(StatusShipped))
	assert.Equal(t, 100, Progress(StatusDelivered))
}

func TestProgressOutsideHappyPathIsZero(t *testing.T) {
	assert.Zero(t, Progress(StatusCancelled))
	assert.Zero(t, Progress("on-hold"))
	assert.Zero(t, Progress(""))
}

func TestIsKnown(t *testing.T) {
	for _, s := range HappyPath {
		assert.Truef(t, IsKnown(s), "status %s", s)
	}
	assert.True(t, IsKnown(StatusCancelled))
	assert.False(t, IsKnown("on-hold"))
	assert.False(t, IsKnown(""))
}

func TestFormatOrderNumber(t *testing.T) {
	assert.Equal(t, "ORD-001", FormatOrderNumber(1))
	assert.Equal(t, "ORD-042", FormatOrderNumber(42))
	assert.Equal(t, "ORD-999", FormatOrderNumber(999))
	// the padding widens past three digits instead of truncating
	assert.Equal(t, "ORD-1000", FormatOrderNumber(1000))
}

func TestOrderNumbersStrictlyIncreasing(t *testing.T) {
	prev := ""
	for n := 1; n <= 999; n++ {
		cur := FormatOrderNumber(n)
		assert.Len(t, cur, len("ORD-000"))
		assert.Greater(t, cur, prev)
		prev = cur
	}
}
