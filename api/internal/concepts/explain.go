package concepts

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"defi-navigator/api/internal/llm"
)

type Explanation struct {
	Concept         string   `json:"concept"`
	Explanation     string   `json:"explanation"`
	Difficulty      string   `json:"difficulty"`
	Examples        []string `json:"examples"`
	RelatedConcepts []string `json:"relatedConcepts"`
	// Source is "static" or "generated"; callers that care about
	// provenance (fallback vs model) read this.
	Source string `json:"source"`
}

// Explainer answers concept questions. The knowledge base is consulted
// first; the generative backend only covers concepts the KB lacks.
type Explainer struct {
	Engine  llm.Engine
	Timeout time.Duration
}

func NewExplainer(engine llm.Engine) *Explainer {
	return &Explainer{Engine: engine, Timeout: 30 * time.Second}
}

var levelPrompts = map[string]string{
	"beginner":     "Explain this like I'm completely new to DeFi and crypto. Use simple language and avoid jargon.",
	"intermediate": "Explain this assuming I understand basic crypto concepts but am new to DeFi.",
	"advanced":     "Provide a detailed technical explanation with nuances and edge cases.",
}

func buildPrompt(concept, userLevel string, includeExample bool) string {
	exampleLine := "Focus on conceptual understanding"
	exampleSection := "Key Benefits"
	if includeExample {
		exampleLine = "Include a practical example"
		exampleSection = "Practical Example"
	}
	return fmt.Sprintf(`You are an expert DeFi educator helping users understand complex concepts simply.

Task: Explain "%s" for a %s user.

Guidelines:
- %s
- Use analogies to real-world concepts when helpful
- Break down complex ideas into digestible parts
- %s
- Highlight any risks or important considerations
- Keep the explanation engaging and encouraging

Format your response with:
1. Simple Definition
2. How It Works
3. %s
4. Important Considerations/Risks
5. Next Steps for Learning

Concept to explain: %s
`, concept, userLevel, levelPrompts[userLevel], exampleLine, exampleSection, concept)
}

// Explain returns a structured explanation for a DeFi concept. It never
// fails: missing backend, backend error or empty output all resolve to a
// deterministic fallback.
func (e *Explainer) Explain(ctx context.Context, concept, userLevel string, includeExample bool) Explanation {
	if kb, ok := knowledgeBase[strings.ToLower(concept)]; ok {
		return kb
	}

	if e.Engine != nil {
		cctx, cancel := context.WithTimeout(ctx, e.Timeout)
		defer cancel()

		text, err := e.Engine.Complete(cctx, llm.Request{
			System: "You are Aya, a friendly and knowledgeable DeFi educator. Your goal is to make " +
				"complex DeFi concepts accessible and understandable for everyone.",
			User:        buildPrompt(concept, userLevel, includeExample),
			Temperature: 0.7,
			MaxTokens:   1000,
		})
		if err != nil {
			log.Printf("concepts: %s generation failed for %q: %v", e.Engine.Name(), concept, err)
		} else if strings.TrimSpace(text) != "" {
			return Explanation{
				Concept:         concept,
				Explanation:     text,
				Difficulty:      userLevel,
				Examples:        extractExamples(text),
				RelatedConcepts: extractRelatedConcepts(text),
				Source:          "generated",
			}
		}
	}

	return Explanation{
		Concept: concept,
		Explanation: fmt.Sprintf("%s is an important concept in DeFi. For detailed explanations, "+
			"please check our lessons or try asking more specific questions.", concept),
		Difficulty:      userLevel,
		Examples:        []string{fmt.Sprintf("Example usage of %s", concept), fmt.Sprintf("Common %s applications", concept)},
		RelatedConcepts: []string{"DeFi", "Blockchain", "Smart Contracts"},
		Source:          "static",
	}
}

func extractExamples(text string) []string {
	var examples []string
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(strings.ToLower(line), "example") {
			continue
		}
		if _, after, found := strings.Cut(line, ":"); found {
			if ex := strings.TrimSpace(after); ex != "" {
				examples = append(examples, ex)
			}
		}
	}
	if len(examples) == 0 {
		return []string{"Check our practice simulations for hands-on examples"}
	}
	return examples
}

var knownConcepts = []string{
	"DeFi", "Liquidity Pools", "Yield Farming", "Smart Contracts",
	"AMM", "Staking", "Lending", "Borrowing",
}

func extractRelatedConcepts(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, c := range knownConcepts {
		if strings.Contains(lower, strings.ToLower(c)) {
			found = append(found, c)
			if len(found) == 4 {
				break
			}
		}
	}
	return found
}
