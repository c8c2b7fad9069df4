package demo

import (
	"math"
	"math/big"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigInt(t *testing.T, s string) *big.Int {
	t.Helper()
	i, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "bad test literal %q", s)
	return i
}

func TestSum_Integers(t *testing.T) {
	tests := []struct {
		a, b int64
		want string
	}{
		{2, 3, "5"},
		{0, 0, "0"},
		{-1, 1, "0"},
		{10, -5, "5"},
		{math.MaxInt64, 1, "9223372036854775808"},
		{math.MinInt64, -1, "-9223372036854775809"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := Sum(Int(tt.a), Int(tt.b))
			assert.Equal(t, KindInt, got.Kind(), "%d + %d should stay an integer", tt.a, tt.b)
			assert.Equal(t, tt.want, got.String())
			assert.True(t, got.Equal(Sum(Int(tt.b), Int(tt.a))))
		})
	}
}

func TestSum_BigIntegers(t *testing.T) {
	a := BigInt(bigInt(t, "99999999999999999999"))
	got := Sum(a, Int(1))

	assert.Equal(t, KindInt, got.Kind())
	assert.Equal(t, "100000000000000000000", got.String())
	assert.Equal(t, 0, got.BigInt().Cmp(bigInt(t, "100000000000000000000")))
	assert.Equal(t, "99999999999999999999", a.String(), "operands must not be mutated")
}

func TestBigInt_Copies(t *testing.T) {
	src := big.NewInt(7)
	n := BigInt(src)
	src.SetInt64(8)
	assert.Equal(t, "7", n.String())

	n.BigInt().SetInt64(9)
	assert.Equal(t, "7", n.String())
}

func TestSum_Promotion(t *testing.T) {
	tests := []struct {
		name string
		a, b Number
		want float64
	}{
		{"both floats", Float(2.5), Float(1.5), 4.0},
		{"int plus float", Int(1), Float(2.0), 3.0},
		{"float plus int", Float(2.0), Int(1), 3.0},
		{"negative", Float(-0.5), Int(-1), -1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sum(tt.a, tt.b)
			assert.True(t, got.IsFloat())
			assert.Equal(t, tt.want, got.Float64())
			assert.True(t, got.Equal(Sum(tt.b, tt.a)))
		})
	}
}

func TestNumber_ZeroValue(t *testing.T) {
	var n Number
	assert.Equal(t, KindInt, n.Kind())
	assert.Equal(t, "0", n.String())
	assert.True(t, n.Equal(Int(0)))
	assert.Equal(t, "3", Sum(n, Int(3)).String())
}

func TestNumber_Equal(t *testing.T) {
	assert.True(t, Int(5).Equal(Int(5)))
	assert.False(t, Int(5).Equal(Float(5)), "kinds differ")
	assert.False(t, Int(5).Equal(Int(6)))
	assert.True(t, Float(2.5).Equal(Float(2.5)))
	assert.False(t, Float(math.NaN()).Equal(Float(math.NaN())))
}

func TestNumber_String(t *testing.T) {
	tests := []struct {
		n    Number
		want string
	}{
		{Int(5), "5"},
		{Int(-12), "-12"},
		{Float(4), "4.0"},
		{Float(3), "3.0"},
		{Float(2.5), "2.5"},
		{Float(-0.25), "-0.25"},
		{Float(0), "0.0"},
		{Float(math.Copysign(0, -1)), "-0.0"},
		{Float(1e6), "1000000.0"},
		{Float(1000001), "1000001.0"},
		{Float(1234567.5), "1234567.5"},
		{Float(0.0001), "0.0001"},
		{Float(1.5e-5), "1.5e-05"},
		{Float(9999999999999998), "9999999999999998.0"},
		{Float(1e16), "1e+16"},
		{Float(-1e21), "-1e+21"},
		{Float(1.5e300), "1.5e+300"},
		{Float(math.Inf(1)), "inf"},
		{Float(math.Inf(-1)), "-inf"},
		{Float(math.NaN()), "nan"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.n.String())
		})
	}
}

func TestNumber_Conversions(t *testing.T) {
	assert.Equal(t, 7.0, Int(7).Float64())
	assert.Equal(t, 1e20, BigInt(bigInt(t, "100000000000000000000")).Float64())
	assert.Equal(t, int64(2), Float(2.9).BigInt().Int64())
	assert.Equal(t, int64(-2), Float(-2.9).BigInt().Int64())
	assert.Equal(t, int64(0), Float(math.NaN()).BigInt().Int64())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "int", KindInt.String())
	assert.Equal(t, "float", KindFloat.String())
	assert.Equal(t, "unknown", Kind(9).String())
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
		want  string
	}{
		{"2", KindInt, "2"},
		{"-1", KindInt, "-1"},
		{"+7", KindInt, "7"},
		{" 10 ", KindInt, "10"},
		{"99999999999999999999", KindInt, "99999999999999999999"},
		{"2.5", KindFloat, "2.5"},
		{"2.0", KindFloat, "2.0"},
		{"1e3", KindFloat, "1000.0"},
		{"1000000.0", KindFloat, "1000000.0"},
		{"1234567.5", KindFloat, "1234567.5"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseNumber(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, got.Kind())
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseNumber_LargeIntegerSum(t *testing.T) {
	a, err := ParseNumber("9223372036854775807")
	require.NoError(t, err)
	b, err := ParseNumber("1")
	require.NoError(t, err)

	got := Sum(a, b)
	assert.Equal(t, KindInt, got.Kind())
	assert.Equal(t, "9223372036854775808", got.String())
}

func TestParseNumber_Invalid(t *testing.T) {
	inputs := []string{
		"", "abc", "2+3", "1,5", "1_000",
		"nan", "NaN", "inf", "-Inf", "infinity",
		"0x1p4", "0x10", "1e400",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseNumber(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNotNumeric)
			assert.NotErrorIs(t, err, strconv.ErrRange)
		})
	}
}
