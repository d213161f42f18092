package utils

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUtils_DecorateText(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(ErrorColor+"failed"+DefaultColor, DecorateText("failed", ErrorMessage))
	assert.Equal(SuccessColor+"done"+DefaultColor, DecorateText("done", SuccessMessage))
	assert.Equal("plain", DecorateText("plain", MessageType(42)))
}

func TestUtils_FormatTime(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("250ms", FormatTime(250*time.Millisecond))
	assert.Equal("1.50s", FormatTime(1500*time.Millisecond))
	assert.Equal("2m 5.00s", FormatTime(2*time.Minute+5*time.Second))
	assert.Equal("1h 1m 1.00s", FormatTime(time.Hour+time.Minute+time.Second))
}

func TestUtils_Math(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, Min(2, 3))
	assert.Equal(float32(-1), Min(float32(4), -1))
	assert.Equal(3, Max(2, 3))
	assert.Equal(2.5, Abs(-2.5))
	assert.Equal(10, Clamp(12, 0, 10))
	assert.Equal(0, Clamp(-3, 0, 10))
	assert.Equal(-2, Floor(float32(-1.5)))
	assert.Equal(1, Floor(1.9))
	assert.Equal(2, Ceil(1.1))
	assert.Equal(-1, Ceil(float32(-1.5)))
	assert.Equal(4, Ceil(4))
}

func TestUtils_HexToRGBA(t *testing.T) {
	assert := assert.New(t)

	c, err := HexToRGBA("#e91e63")
	assert.NoError(err)
	assert.Equal(color.NRGBA{R: 233, G: 30, B: 99, A: 255}, c)

	c, err = HexToRGBA("0f0")
	assert.NoError(err)
	assert.Equal(color.NRGBA{G: 255, A: 255}, c)

	_, err = HexToRGBA("#12345")
	assert.Error(err)
	_, err = HexToRGBA("#zzzzzz")
	assert.Error(err)
}

func TestUtils_Contains(t *testing.T) {
	assert.True(t, Contains([]string{".toml", ".yaml"}, ".yaml"))
	assert.False(t, Contains([]string{".toml"}, ".json"))
}
