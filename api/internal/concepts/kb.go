package concepts

import (
	"fmt"
	"strings"
)

// Fallback knowledge base, keyed by lower-case concept. Consulted before
// the generative backend and whenever it is unavailable.
var knowledgeBase = map[string]Explanation{
	"defi": {
		Concept:         "DeFi",
		Explanation:     "DeFi (Decentralized Finance) refers to financial services built on blockchain technology that operate without traditional intermediaries like banks.",
		Difficulty:      "beginner",
		Examples:        []string{"Uniswap for trading", "Aave for lending", "Compound for earning interest"},
		RelatedConcepts: []string{"Smart Contracts", "Liquidity Pools", "Yield Farming"},
		Source:          "static",
	},
	"liquidity pools": {
		Concept:         "Liquidity Pools",
		Explanation:     "Liquidity pools are collections of tokens locked in smart contracts that enable decentralized trading.",
		Difficulty:      "intermediate",
		Examples:        []string{"ETH/USDC pool on Uniswap", "DAI lending pool on Aave"},
		RelatedConcepts: []string{"AMM", "Impermanent Loss", "Yield Farming"},
		Source:          "static",
	},
	"yield farming": {
		Concept:         "Yield Farming",
		Explanation:     "Yield farming is the practice of earning rewards by providing liquidity or staking tokens in DeFi protocols.",
		Difficulty:      "intermediate",
		Examples:        []string{"Providing liquidity on Uniswap", "Lending on Aave", "Staking governance tokens"},
		RelatedConcepts: []string{"Liquidity Pools", "APY", "Impermanent Loss"},
		Source:          "static",
	},
}

// Resources lists concept-specific follow-up steps for learners.
func Resources(concept string) []string {
	resources := map[string][]string{
		"liquidity pools": {
			"Try providing liquidity on Uniswap testnet",
			"Learn about impermanent loss",
			"Understand AMM mechanics",
		},
		"yield farming": {
			"Start with single-asset staking",
			"Learn about LP token farming",
			"Understand smart contract risks",
		},
		"lending": {
			"Try lending on Aave testnet",
			"Learn about collateralization",
			"Understand liquidation risks",
		},
		"borrowing": {
			"Understand collateral requirements",
			"Learn about interest rates",
			"Practice on testnet first",
		},
	}
	if r, ok := resources[strings.ToLower(concept)]; ok {
		return r
	}
	return []string{
		"Practice on testnet first",
		"Start with small amounts",
		"Always understand the risks",
	}
}

// Render produces the display text for an explanation.
func (e Explanation) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", e.Concept)
	fmt.Fprintf(&b, "%s\n\n", e.Explanation)
	if len(e.Examples) > 0 {
		b.WriteString("### Examples:\n")
		for _, ex := range e.Examples {
			fmt.Fprintf(&b, "- %s\n", ex)
		}
		b.WriteString("\n")
	}
	if len(e.RelatedConcepts) > 0 {
		fmt.Fprintf(&b, "### Related Concepts:\n%s\n\n", strings.Join(e.RelatedConcepts, ", "))
	}
	b.WriteString("### Next Steps:\n")
	for _, r := range Resources(e.Concept) {
		fmt.Fprintf(&b, "- %s\n", r)
	}
	return b.String()
}
