package simulate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Kind string

const (
	KindSwap             Kind = "swap"
	KindLend             Kind = "lend"
	KindBorrow           Kind = "borrow"
	KindStake            Kind = "stake"
	KindProvideLiquidity Kind = "provide_liquidity"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindSwap, KindLend, KindBorrow, KindStake, KindProvideLiquidity:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unsupported transaction type: %s", s)
	}
}

const baseGas = 150000

var gasMultipliers = map[Kind]float64{
	KindSwap:             1.0,
	KindLend:             1.2,
	KindBorrow:           1.5,
	KindStake:            1.1,
	KindProvideLiquidity: 1.8,
}

// Mock market parameters. A real estimator would read these on-chain.
const (
	swapRate   = 0.95
	lendAPY    = 3.5
	borrowAPY  = 5.2
	stakingAPY = 8.5
	lpAPY      = 12.3
)

type Result struct {
	Success         bool           `json:"success"`
	EstimatedGas    string         `json:"estimatedGas"`
	ExpectedOutput  string         `json:"expectedOutput,omitempty"`
	PriceImpact     string         `json:"priceImpact,omitempty"`
	Warnings        []string       `json:"warnings"`
	Steps           []string       `json:"steps"`
	TransactionData map[string]any `json:"transactionData,omitempty"`
}

// Simulate estimates the outcome of one transaction. Amount comes in as
// the raw argument string; a non-numeric amount is a validation error.
func Simulate(kind Kind, tokenA, tokenB, amount, protocol string) (Result, error) {
	amountNum, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return Result{}, fmt.Errorf("invalid amount: %q", amount)
	}

	gas := strconv.Itoa(int(math.Round(baseGas * gasMultipliers[kind])))
	if tokenB == "" {
		tokenB = "ETH"
	}

	switch kind {
	case KindSwap:
		return simulateSwap(tokenA, tokenB, amount, amountNum, protocol, gas), nil
	case KindLend:
		return simulateLend(tokenA, amount, amountNum, protocol, gas), nil
	case KindBorrow:
		return simulateBorrow(tokenA, amount, amountNum, protocol, gas), nil
	case KindStake:
		return simulateStake(tokenA, amount, amountNum, protocol, gas), nil
	case KindProvideLiquidity:
		return simulateProvideLiquidity(tokenA, tokenB, amount, amountNum, protocol, gas), nil
	default:
		return Result{}, fmt.Errorf("unsupported transaction type: %s", kind)
	}
}

func simulateSwap(tokenA, tokenB, amount string, amountNum float64, protocol, gas string) Result {
	expectedOutput := amountNum * swapRate
	priceImpact := (1 - swapRate) * 100

	warnings := []string{}
	if priceImpact > 1 {
		warnings = append(warnings, "High price impact detected")
	}
	warnings = append(warnings, "Always check slippage tolerance")

	return Result{
		Success:        true,
		EstimatedGas:   gas,
		ExpectedOutput: fmt.Sprintf("%.6f %s", expectedOutput, tokenB),
		PriceImpact:    fmt.Sprintf("%.2f%%", priceImpact),
		Warnings:       warnings,
		Steps: []string{
			fmt.Sprintf("1. Approve %s spending", tokenA),
			fmt.Sprintf("2. Execute swap on %s", protocol),
			fmt.Sprintf("3. Receive %s tokens", tokenB),
			"4. Transaction confirmation",
		},
		TransactionData: map[string]any{
			"from":     tokenA,
			"to":       tokenB,
			"amount":   amount,
			"protocol": protocol,
		},
	}
}

func simulateLend(token, amount string, amountNum float64, protocol, gas string) Result {
	dailyEarnings := amountNum * lendAPY / 365 / 100

	return Result{
		Success:        true,
		EstimatedGas:   gas,
		ExpectedOutput: fmt.Sprintf("%.6f %s daily earnings", dailyEarnings, token),
		Warnings: []string{
			"Lending rates can fluctuate",
			"Funds will be locked in the protocol",
		},
		Steps: []string{
			fmt.Sprintf("1. Approve %s spending", token),
			fmt.Sprintf("2. Deposit to %s", protocol),
			"3. Receive interest-bearing tokens",
			"4. Start earning interest",
		},
		TransactionData: map[string]any{
			"token":    token,
			"amount":   amount,
			"protocol": protocol,
			"apy":      lendAPY,
		},
	}
}

func simulateBorrow(token, amount string, amountNum float64, protocol, gas string) Result {
	dailyInterest := amountNum * borrowAPY / 365 / 100

	return Result{
		Success:        true,
		EstimatedGas:   gas,
		ExpectedOutput: fmt.Sprintf("%.6f %s daily interest", dailyInterest, token),
		Warnings: []string{
			"Risk of liquidation if collateral value drops",
			"Interest rates can increase",
			"Maintain healthy collateralization ratio",
		},
		Steps: []string{
			"1. Ensure sufficient collateral",
			fmt.Sprintf("2. Borrow %s from %s", token, protocol),
			"3. Receive borrowed tokens",
			"4. Monitor liquidation threshold",
		},
		TransactionData: map[string]any{
			"token":     token,
			"amount":    amount,
			"protocol":  protocol,
			"borrowAPY": borrowAPY,
		},
	}
}

func simulateStake(token, amount string, amountNum float64, protocol, gas string) Result {
	dailyRewards := amountNum * stakingAPY / 365 / 100

	return Result{
		Success:        true,
		EstimatedGas:   gas,
		ExpectedOutput: fmt.Sprintf("%.6f %s daily rewards", dailyRewards, token),
		Warnings: []string{
			"Staked tokens may have lock-up period",
			"Rewards depend on protocol performance",
		},
		Steps: []string{
			fmt.Sprintf("1. Approve %s spending", token),
			fmt.Sprintf("2. Stake tokens in %s", protocol),
			"3. Receive staking receipt",
			"4. Start earning rewards",
		},
		TransactionData: map[string]any{
			"token":      token,
			"amount":     amount,
			"protocol":   protocol,
			"stakingAPY": stakingAPY,
		},
	}
}

func simulateProvideLiquidity(tokenA, tokenB, amount string, amountNum float64, protocol, gas string) Result {
	// Fees accrue in an abstract USD unit, not the pool tokens.
	dailyFees := amountNum * lpAPY / 365 / 100

	return Result{
		Success:        true,
		EstimatedGas:   gas,
		ExpectedOutput: fmt.Sprintf("%.6f USD daily fees", dailyFees),
		Warnings: []string{
			"Impermanent loss risk",
			"Requires equal value of both tokens",
			"LP tokens represent your pool share",
		},
		Steps: []string{
			fmt.Sprintf("1. Approve %s and %s spending", tokenA, tokenB),
			fmt.Sprintf("2. Add liquidity to %s/%s pool", tokenA, tokenB),
			"3. Receive LP tokens",
			"4. Start earning trading fees",
		},
		TransactionData: map[string]any{
			"tokenA":   tokenA,
			"tokenB":   tokenB,
			"amount":   amount,
			"protocol": protocol,
			"lpAPY":    lpAPY,
		},
	}
}

// Render produces the display text for a simulation result.
func (r Result) Render(kind Kind, protocol string) string {
	statusIcon, statusText := "❌", "Failed"
	if r.Success {
		statusIcon, statusText = "✅", "Success"
	}

	out := fmt.Sprintf("## %s Transaction Simulation: %s\n\n", statusIcon, strings.ToUpper(string(kind)))
	out += fmt.Sprintf("**Protocol:** %s\n", protocol)
	out += fmt.Sprintf("**Status:** %s\n", statusText)
	out += fmt.Sprintf("**Estimated Gas:** %s\n", r.EstimatedGas)
	if r.ExpectedOutput != "" {
		out += fmt.Sprintf("**Expected Output:** %s\n", r.ExpectedOutput)
	}
	if r.PriceImpact != "" {
		out += fmt.Sprintf("**Price Impact:** %s\n", r.PriceImpact)
	}
	out += "\n### Transaction Steps:\n"
	for _, s := range r.Steps {
		out += s + "\n"
	}
	if len(r.Warnings) > 0 {
		out += "\n### ⚠️ Warnings:\n"
		for _, w := range r.Warnings {
			out += "- " + w + "\n"
		}
	}
	out += `
### Next Steps:
1. Review simulation results carefully
2. Adjust parameters if needed
3. Execute on testnet first
4. Proceed to mainnet with small amounts

*This is a simulation. Actual results may vary.*`
	return out
}
