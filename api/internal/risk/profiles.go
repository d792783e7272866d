package risk

// Static risk profiles. Real data sources would replace this table; the
// shape (five factors + warnings + recommendations) is the contract.
var profiles = map[string]Score{
	"uniswap": {
		Overall: 25,
		Factors: Factors{
			SmartContract: 15,
			Liquidity:     10,
			Volatility:    30,
			Regulatory:    20,
			Team:          10,
		},
		Warnings: []string{
			"Impermanent loss risk when providing liquidity",
			"Smart contract risk always present",
		},
		Recommendations: []string{
			"Start with small amounts",
			"Understand impermanent loss before providing liquidity",
			"Consider using stablecoin pairs for lower volatility",
		},
	},
	"aave": {
		Overall: 30,
		Factors: Factors{
			SmartContract: 20,
			Liquidity:     15,
			Volatility:    25,
			Regulatory:    25,
			Team:          15,
		},
		Warnings: []string{
			"Liquidation risk when borrowing",
			"Interest rate fluctuations",
		},
		Recommendations: []string{
			"Maintain healthy collateralization ratio",
			"Monitor liquidation threshold closely",
			"Start with overcollateralized positions",
		},
	},
}

// unknownProfile is the fail-safe default for protocols not in the table.
var unknownProfile = Score{
	Overall: 70,
	Factors: Factors{
		SmartContract: 60,
		Liquidity:     50,
		Volatility:    70,
		Regulatory:    80,
		Team:          70,
	},
	Warnings: []string{
		"Unknown protocol - exercise extreme caution",
		"Limited audit information available",
	},
	Recommendations: []string{
		"Research thoroughly before using",
		"Start with very small amounts",
		"Check for recent audits",
	},
}
