package risk

import (
	"fmt"
	"strings"
)

func riskColor(score int) string {
	if score <= 30 {
		return "🟢"
	}
	if score <= 60 {
		return "🟡"
	}
	return "🔴"
}

// Render produces the display text for an assessment. The wording is not
// a compatibility contract; the structured fields are.
func (a Assessment) Render() string {
	switch a.Kind {
	case KindProtocol:
		return a.renderProtocol()
	case KindTransaction:
		return a.renderTransaction()
	case KindToken:
		return fmt.Sprintf(`## Token Risk Assessment

**Address:** %s

### Risk Factors:
- **Liquidity:** Checking DEX liquidity...
- **Volatility:** Analyzing price history...
- **Smart Contract:** Reviewing token contract...

*Note: This is a simplified assessment. Always do your own research.*`, a.Target)
	case KindPortfolio:
		return fmt.Sprintf(`## Portfolio Risk Assessment

**Wallet:** %s

### Portfolio Health:
- **Diversification Score:** Analyzing asset distribution...
- **Exposure Risk:** Checking protocol concentration...
- **Liquidation Risk:** Reviewing borrowed positions...

*Fetching real-time data...*`, a.Target)
	}
	return ""
}

func (a Assessment) renderProtocol() string {
	s := a.Score
	var b strings.Builder
	fmt.Fprintf(&b, "## Risk Assessment: %s\n\n", strings.ToUpper(a.Target))
	fmt.Fprintf(&b, "**Overall Risk Score: %d/100** (%s) %s\n\n", s.Overall, a.Level, riskColor(s.Overall))
	b.WriteString("### Risk Breakdown:\n")
	fmt.Fprintf(&b, "- **Smart Contract Risk:** %d/100\n", s.Factors.SmartContract)
	fmt.Fprintf(&b, "- **Liquidity Risk:** %d/100\n", s.Factors.Liquidity)
	fmt.Fprintf(&b, "- **Volatility Risk:** %d/100\n", s.Factors.Volatility)
	fmt.Fprintf(&b, "- **Regulatory Risk:** %d/100\n", s.Factors.Regulatory)
	fmt.Fprintf(&b, "- **Team Risk:** %d/100\n\n", s.Factors.Team)
	b.WriteString("### ⚠️ Warnings:\n")
	for _, w := range s.Warnings {
		fmt.Fprintf(&b, "- %s\n", w)
	}
	b.WriteString("\n### 💡 Recommendations:\n")
	for _, r := range s.Recommendations {
		fmt.Fprintf(&b, "- %s\n", r)
	}
	b.WriteString(`
### Next Steps:
1. Review the protocol documentation
2. Check recent audit reports
3. Start with testnet if available
4. Begin with small amounts on mainnet`)
	return b.String()
}

func (a Assessment) renderTransaction() string {
	var b strings.Builder
	b.WriteString("## Transaction Risk Assessment\n\n")
	fmt.Fprintf(&b, "**Protocol:** %s\n", a.Target)
	fmt.Fprintf(&b, "**Risk Level:** %s\n\n", a.Level)
	b.WriteString(`### Pre-Transaction Checklist:
- [ ] Verify contract address
- [ ] Check gas fees
- [ ] Confirm transaction parameters
- [ ] Ensure sufficient balance
`)
	if len(a.Score.Warnings) > 0 {
		b.WriteString("\n### ⚠️ Warnings:\n")
		for _, w := range a.Score.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}
	b.WriteString("\n### Recommendations:\n")
	for _, r := range a.Score.Recommendations {
		fmt.Fprintf(&b, "- %s\n", r)
	}
	return b.String()
}
