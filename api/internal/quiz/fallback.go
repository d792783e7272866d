package quiz

import "strings"

const defaultTopic = "liquidity pools"

// Static quiz bank, keyed by lower-case topic. Difficulty on these is
// fixed; the requested difficulty is still echoed on the quiz itself.
var fallbackBank = map[string][]Question{
	"liquidity pools": {
		{
			ID:       1,
			Question: "What is a liquidity pool in DeFi?",
			Options: []string{
				"A swimming pool for crypto miners",
				"A smart contract holding tokens for trading",
				"A type of cryptocurrency wallet",
				"A mining reward system",
			},
			CorrectAnswer: 1,
			Explanation:   "A liquidity pool is a smart contract that holds tokens to facilitate decentralized trading.",
			Difficulty:    "easy",
		},
		{
			ID:       2,
			Question: "What is impermanent loss?",
			Options: []string{
				"Permanent loss of funds",
				"Temporary reduction in value due to price changes",
				"Loss due to smart contract bugs",
				"Transaction fees",
			},
			CorrectAnswer: 1,
			Explanation:   "Impermanent loss occurs when the price ratio of tokens in a pool changes compared to when you deposited them.",
			Difficulty:    "easy",
		},
	},
	"yield farming": {
		{
			ID:       1,
			Question: "What is yield farming?",
			Options: []string{
				"Growing crops on a farm",
				"Earning rewards by providing liquidity to DeFi protocols",
				"Mining cryptocurrency",
				"Trading cryptocurrencies",
			},
			CorrectAnswer: 1,
			Explanation:   "Yield farming involves providing liquidity to DeFi protocols in exchange for rewards, often in the form of tokens.",
			Difficulty:    "easy",
		},
	},
	"lending": {
		{
			ID:       1,
			Question: "What does overcollateralization mean in DeFi lending?",
			Options: []string{
				"Borrowing more than you deposit",
				"Depositing collateral worth more than the loan",
				"Lending without any collateral",
				"Paying interest in advance",
			},
			CorrectAnswer: 1,
			Explanation:   "DeFi loans typically require collateral worth more than the borrowed amount to protect lenders from price swings.",
			Difficulty:    "easy",
		},
		{
			ID:       2,
			Question: "What happens during a liquidation?",
			Options: []string{
				"The protocol refunds your collateral",
				"Your borrowed tokens are frozen",
				"Your collateral is sold to repay the loan",
				"Interest rates are reset to zero",
			},
			CorrectAnswer: 2,
			Explanation:   "When collateral value falls below the required threshold, the position is closed and collateral is sold off to cover the debt.",
			Difficulty:    "easy",
		},
	},
}

// Fallback returns questions from the static bank. Unknown topics get the
// default topic's set; count caps but never pads.
func Fallback(topic, difficulty string, count int) Quiz {
	questions, ok := fallbackBank[strings.ToLower(topic)]
	if !ok {
		questions = fallbackBank[defaultTopic]
	}
	if count > 0 && len(questions) > count {
		questions = questions[:count]
	}
	return Quiz{
		Topic:          topic,
		Difficulty:     difficulty,
		Questions:      questions,
		TotalQuestions: len(questions),
		Source:         "static",
	}
}
