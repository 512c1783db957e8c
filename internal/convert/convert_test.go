package convert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tokenconv/tokenconv/internal/catalog"
)

var (
	usdc = catalog.Token{Symbol: "USDC", Price: 1}
	eth  = catalog.Token{Symbol: "ETH", Price: 2500}
	dead = catalog.Token{Symbol: "DEAD", Price: 0}
)

func TestValidAmount(t *testing.T) {
	valid := []string{"", "0", "12", "12.34", ".5", "12.", "0.000400"}
	for _, s := range valid {
		assert.True(t, ValidAmount(s), "expected %q to be accepted", s)
	}

	invalid := []string{"12.34.5", "1,000", "-5", "1e6", "abc", "12a"}
	for _, s := range invalid {
		assert.False(t, ValidAmount(s), "expected %q to be rejected", s)
	}
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, 0.0, ParseAmount(""))
	assert.Equal(t, 0.0, ParseAmount("."))
	assert.Equal(t, 12.34, ParseAmount("12.34"))
	assert.Equal(t, 0.5, ParseAmount(".5"))
}

func TestConvert(t *testing.T) {
	t.Run("usdc to eth", func(t *testing.T) {
		got := Convert(1, usdc, eth)
		assert.Equal(t, "0.000400", Format(got))
	})

	t.Run("round trip restores the original within rounding tolerance", func(t *testing.T) {
		right := Convert(1, usdc, eth)
		back := Convert(right, eth, usdc)
		assert.InDelta(t, 1.0, back, 1e-6)
		assert.Equal(t, "1.000000", Format(back))
	})

	t.Run("rounds to six decimals", func(t *testing.T) {
		a := catalog.Token{Price: 1}
		b := catalog.Token{Price: 3}
		assert.Equal(t, "0.333333", Format(Convert(1, a, b)))
	})

	t.Run("zero-price divisor is non-finite", func(t *testing.T) {
		assert.True(t, math.IsInf(Convert(1, usdc, dead), 1))
		assert.True(t, math.IsNaN(Convert(0, dead, dead)))
	})
}

func TestRate(t *testing.T) {
	assert.InDelta(t, 2500.0, Rate(eth, usdc), 1e-9)
	assert.InDelta(t, 0.0004, Rate(usdc, eth), 1e-9)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "0", Format(math.Inf(1)))
	assert.Equal(t, "0", Format(math.NaN()))
	assert.Equal(t, "2500.000000", Format(2500))
}

func TestFormatTrimmed(t *testing.T) {
	assert.Equal(t, "0.0004", FormatTrimmed(0.0004))
	assert.Equal(t, "2500", FormatTrimmed(2500))
	assert.Equal(t, "1", FormatTrimmed(1.0000001), "sub-precision noise trims away")
	assert.Equal(t, "0", FormatTrimmed(math.Inf(-1)))
}
