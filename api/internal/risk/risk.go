package risk

import (
	"fmt"
	"strings"
)

type Kind string

const (
	KindProtocol    Kind = "protocol"
	KindToken       Kind = "token"
	KindPortfolio   Kind = "portfolio"
	KindTransaction Kind = "transaction"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindProtocol, KindToken, KindPortfolio, KindTransaction:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown risk assessment type: %s", s)
	}
}

// Factors is the fixed five-factor breakdown. Named fields keep the
// "exactly five factors, each 0..100" invariant in the type itself.
type Factors struct {
	SmartContract int `json:"smart_contract"`
	Liquidity     int `json:"liquidity"`
	Volatility    int `json:"volatility"`
	Regulatory    int `json:"regulatory"`
	Team          int `json:"team"`
}

type Score struct {
	Overall         int      `json:"overall"`
	Factors         Factors  `json:"factors"`
	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
}

// Assessment is one risk evaluation. Partial marks the token/portfolio
// paths where the data-gathering step is not modeled; callers must not
// treat those as errors.
type Assessment struct {
	Kind    Kind   `json:"type"`
	Target  string `json:"target"`
	Level   string `json:"level"`
	Score   Score  `json:"score"`
	Partial bool   `json:"partial,omitempty"`
}

// LevelFor maps an overall score to its label. The banding is shared by
// every surface that renders a score: <=30 Low, <=60 Medium, else High.
func LevelFor(score int) string {
	if score <= 30 {
		return "Low Risk"
	}
	if score <= 60 {
		return "Medium Risk"
	}
	return "High Risk"
}

// Assess evaluates risk for the given kind. Target is a protocol name or
// an address depending on the kind; amount applies to transactions only.
func Assess(kind Kind, target string, amount float64) (Assessment, error) {
	switch kind {
	case KindProtocol:
		return assessProtocol(target), nil
	case KindToken:
		return assessToken(target), nil
	case KindPortfolio:
		return assessPortfolio(target), nil
	case KindTransaction:
		return assessTransaction(target, amount), nil
	default:
		return Assessment{}, fmt.Errorf("unknown risk assessment type: %s", kind)
	}
}

func assessProtocol(protocol string) Assessment {
	score, ok := profiles[strings.ToLower(protocol)]
	if !ok {
		// Absence of data biases toward caution, never toward a low score.
		score = unknownProfile
	}
	return Assessment{
		Kind:   KindProtocol,
		Target: protocol,
		Level:  LevelFor(score.Overall),
		Score:  score,
	}
}

func assessTransaction(protocol string, amount float64) Assessment {
	var (
		level    string
		overall  int
		warnings []string
	)
	switch {
	case amount > 1000:
		level = "High"
		overall = 70
		warnings = append(warnings, "Large transaction amount - consider splitting into smaller transactions")
	case amount > 100:
		level = "Medium"
		overall = 45
		warnings = append(warnings, "Medium-sized transaction - double-check all parameters")
	default:
		level = "Low"
		overall = 15
	}
	return Assessment{
		Kind:   KindTransaction,
		Target: protocol,
		Level:  level,
		Score: Score{
			Overall:  overall,
			Warnings: warnings,
			Recommendations: []string{
				"Simulate transaction on testnet first",
				"Start with smaller amounts",
				"Keep some ETH for gas fees",
			},
		},
	}
}

func assessToken(address string) Assessment {
	return Assessment{
		Kind:    KindToken,
		Target:  address,
		Level:   "Unknown",
		Partial: true,
	}
}

func assessPortfolio(walletAddress string) Assessment {
	return Assessment{
		Kind:    KindPortfolio,
		Target:  walletAddress,
		Level:   "Unknown",
		Partial: true,
	}
}
