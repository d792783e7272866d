package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelForBanding(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Low Risk"},
		{30, "Low Risk"},
		{31, "Medium Risk"},
		{60, "Medium Risk"},
		{61, "High Risk"},
		{100, "High Risk"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.score), "score %d", tt.score)
	}
}

func TestAssessProtocolKnown(t *testing.T) {
	a, err := Assess(KindProtocol, "uniswap", 0)
	require.NoError(t, err)

	assert.Equal(t, 25, a.Score.Overall)
	assert.Equal(t, "Low Risk", a.Level)
	assert.Equal(t, Factors{
		SmartContract: 15,
		Liquidity:     10,
		Volatility:    30,
		Regulatory:    20,
		Team:          10,
	}, a.Score.Factors)
	assert.NotEmpty(t, a.Score.Warnings)
	assert.NotEmpty(t, a.Score.Recommendations)
	assert.False(t, a.Partial)
}

func TestAssessProtocolCaseInsensitive(t *testing.T) {
	a, err := Assess(KindProtocol, "UniSwap", 0)
	require.NoError(t, err)
	assert.Equal(t, 25, a.Score.Overall)
}

func TestAssessProtocolUnknownFailsSafe(t *testing.T) {
	a, err := Assess(KindProtocol, "definitely-not-a-protocol", 0)
	require.NoError(t, err)

	assert.Equal(t, 70, a.Score.Overall)
	assert.Equal(t, "High Risk", a.Level)
	assert.Contains(t, a.Score.Warnings, "Unknown protocol - exercise extreme caution")
}

func TestAssessTransactionBands(t *testing.T) {
	tests := []struct {
		amount      float64
		wantLevel   string
		wantWarning bool
	}{
		{1500, "High", true},
		{500, "Medium", true},
		{50, "Low", false},
		// boundaries are strict: > not >=
		{1000, "Medium", true},
		{100, "Low", false},
	}
	for _, tt := range tests {
		a, err := Assess(KindTransaction, "uniswap", tt.amount)
		require.NoError(t, err)
		assert.Equal(t, tt.wantLevel, a.Level, "amount %v", tt.amount)
		if tt.wantWarning {
			assert.NotEmpty(t, a.Score.Warnings, "amount %v", tt.amount)
		} else {
			assert.Empty(t, a.Score.Warnings, "amount %v", tt.amount)
		}
	}
}

func TestAssessTransactionLargeAmountWarning(t *testing.T) {
	a, err := Assess(KindTransaction, "aave", 1500)
	require.NoError(t, err)
	assert.Contains(t, a.Score.Warnings,
		"Large transaction amount - consider splitting into smaller transactions")
}

func TestScoresAlwaysInRange(t *testing.T) {
	cases := []struct {
		kind   Kind
		target string
		amount float64
	}{
		{KindProtocol, "uniswap", 0},
		{KindProtocol, "aave", 0},
		{KindProtocol, "nope", 0},
		{KindTransaction, "uniswap", 5},
		{KindTransaction, "uniswap", 500},
		{KindTransaction, "uniswap", 50000},
		{KindToken, "0xabc", 0},
		{KindPortfolio, "0xdef", 0},
	}
	for _, c := range cases {
		a, err := Assess(c.kind, c.target, c.amount)
		require.NoError(t, err)

		s := a.Score
		assert.GreaterOrEqual(t, s.Overall, 0)
		assert.LessOrEqual(t, s.Overall, 100)
		for _, f := range []int{
			s.Factors.SmartContract, s.Factors.Liquidity, s.Factors.Volatility,
			s.Factors.Regulatory, s.Factors.Team,
		} {
			assert.GreaterOrEqual(t, f, 0)
			assert.LessOrEqual(t, f, 100)
		}
	}
}

func TestAssessPartialKinds(t *testing.T) {
	a, err := Assess(KindToken, "0xabc", 0)
	require.NoError(t, err)
	assert.True(t, a.Partial)

	a, err = Assess(KindPortfolio, "0xdef", 0)
	require.NoError(t, err)
	assert.True(t, a.Partial)
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"protocol", "token", "portfolio", "transaction"} {
		k, err := ParseKind(s)
		require.NoError(t, err)
		assert.Equal(t, Kind(s), k)
	}
	_, err := ParseKind("galaxy")
	assert.Error(t, err)
}

func TestRenderProtocolContainsScores(t *testing.T) {
	a, err := Assess(KindProtocol, "uniswap", 0)
	require.NoError(t, err)
	text := a.Render()
	assert.Contains(t, text, "25/100")
	assert.Contains(t, text, "Low Risk")
	assert.Contains(t, text, "UNISWAP")
}
