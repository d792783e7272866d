package simulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateSwap(t *testing.T) {
	res, err := Simulate(KindSwap, "ETH", "USDC", "100", "uniswap")
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "150000", res.EstimatedGas)
	assert.Equal(t, "95.000000 USDC", res.ExpectedOutput)
	assert.Equal(t, "5.00%", res.PriceImpact)
	assert.Contains(t, res.Warnings, "High price impact detected")
	assert.Contains(t, res.Warnings, "Always check slippage tolerance")
	require.Len(t, res.Steps, 4)
	assert.Equal(t, "2. Execute swap on uniswap", res.Steps[1])
	assert.Equal(t, "ETH", res.TransactionData["from"])
	assert.Equal(t, "USDC", res.TransactionData["to"])
}

func TestSimulateSwapDefaultsTokenB(t *testing.T) {
	res, err := Simulate(KindSwap, "DAI", "", "10", "uniswap")
	require.NoError(t, err)
	assert.Equal(t, "9.500000 ETH", res.ExpectedOutput)
	assert.Equal(t, "ETH", res.TransactionData["to"])
}

func TestEstimatedGasPerKind(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindSwap, "150000"},
		{KindStake, "165000"},
		{KindLend, "180000"},
		{KindBorrow, "225000"},
		{KindProvideLiquidity, "270000"},
	}
	for _, tt := range tests {
		res, err := Simulate(tt.kind, "ETH", "USDC", "1", "aave")
		require.NoError(t, err)
		assert.Equal(t, tt.want, res.EstimatedGas, "kind %s", tt.kind)
	}
}

func TestSimulateLendDailyEarnings(t *testing.T) {
	// 1000 * 3.5% / 365 = 0.095890...
	res, err := Simulate(KindLend, "DAI", "", "1000", "aave")
	require.NoError(t, err)
	assert.Equal(t, "0.095890 DAI daily earnings", res.ExpectedOutput)
	assert.Contains(t, res.Warnings, "Funds will be locked in the protocol")
	assert.Equal(t, 3.5, res.TransactionData["apy"])
}

func TestSimulateBorrowDailyInterest(t *testing.T) {
	// 1000 * 5.2% / 365 = 0.142465...
	res, err := Simulate(KindBorrow, "USDC", "", "1000", "aave")
	require.NoError(t, err)
	assert.Equal(t, "0.142466 USDC daily interest", res.ExpectedOutput)
	assert.Contains(t, res.Warnings, "Risk of liquidation if collateral value drops")
}

func TestSimulateStakeDailyRewards(t *testing.T) {
	// 365 * 8.5% / 365 = 0.085
	res, err := Simulate(KindStake, "ETH", "", "365", "lido")
	require.NoError(t, err)
	assert.Equal(t, "0.085000 ETH daily rewards", res.ExpectedOutput)
}

func TestSimulateProvideLiquidityFeesInUSD(t *testing.T) {
	res, err := Simulate(KindProvideLiquidity, "ETH", "USDC", "1000", "uniswap")
	require.NoError(t, err)
	assert.Contains(t, res.ExpectedOutput, "USD daily fees")
	assert.Contains(t, res.Warnings, "Impermanent loss risk")
	assert.Equal(t, "1. Approve ETH and USDC spending", res.Steps[0])
}

func TestSimulateInvalidAmount(t *testing.T) {
	_, err := Simulate(KindSwap, "ETH", "USDC", "lots", "uniswap")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid amount: "lots"`)
}

func TestParseKindRejectsUnknown(t *testing.T) {
	for _, s := range []string{"swap", "lend", "borrow", "stake", "provide_liquidity"} {
		k, err := ParseKind(s)
		require.NoError(t, err)
		assert.Equal(t, Kind(s), k)
	}
	_, err := ParseKind("flashloan")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported transaction type: flashloan")
}

func TestRenderIncludesSections(t *testing.T) {
	res, err := Simulate(KindSwap, "ETH", "USDC", "100", "uniswap")
	require.NoError(t, err)

	text := res.Render(KindSwap, "uniswap")
	assert.Contains(t, text, "Transaction Simulation: SWAP")
	assert.Contains(t, text, "**Status:** Success")
	assert.Contains(t, text, "**Estimated Gas:** 150000")
	assert.Contains(t, text, "### Transaction Steps:")
	assert.Contains(t, text, "### ⚠️ Warnings:")
	assert.Contains(t, text, "This is a simulation. Actual results may vary.")
}
