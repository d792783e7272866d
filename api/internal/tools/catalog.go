package tools

// Tool names, the closed set the dispatcher routes on.
const (
	ToolExplainConcept      = "explain_concept_simply"
	ToolAssessRisk          = "assess_risk"
	ToolSimulateTransaction = "simulate_transaction"
	ToolGetProtocolData     = "get_protocol_data"
	ToolGenerateQuiz        = "generate_quiz"
	ToolTrackProgress       = "track_progress"
)

type Property struct {
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Enum        []string `json:"enum,omitempty"`
	Default     any      `json:"default,omitempty"`
	Minimum     *float64 `json:"minimum,omitempty"`
	Maximum     *float64 `json:"maximum,omitempty"`
}

type InputSchema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

// Descriptor declares one callable tool. The set is fixed at process
// start; ListTools returns it verbatim.
type Descriptor struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema InputSchema `json:"inputSchema"`
}

func num(v float64) *float64 { return &v }

var catalog = []Descriptor{
	{
		Name:        ToolExplainConcept,
		Description: "Explain DeFi concepts in simple, beginner-friendly language",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"concept": {
					Type:        "string",
					Description: `The DeFi concept to explain (e.g., "liquidity pools", "yield farming")`,
				},
				"userLevel": {
					Type:        "string",
					Enum:        []string{"beginner", "intermediate", "advanced"},
					Description: "User experience level",
					Default:     "beginner",
				},
				"includeExample": {
					Type:        "boolean",
					Description: "Whether to include practical examples",
					Default:     true,
				},
			},
			Required: []string{"concept"},
		},
	},
	{
		Name:        ToolAssessRisk,
		Description: "Assess risk for DeFi protocols, tokens, or user portfolios",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"type": {
					Type:        "string",
					Enum:        []string{"protocol", "token", "portfolio", "transaction"},
					Description: "Type of risk assessment",
				},
				"address": {
					Type:        "string",
					Description: "Contract address or wallet address",
				},
				"amount": {
					Type:        "string",
					Description: "Amount for transaction risk assessment",
				},
				"protocol": {
					Type:        "string",
					Description: `Protocol name (e.g., "uniswap", "aave")`,
				},
			},
			Required: []string{"type"},
		},
	},
	{
		Name:        ToolSimulateTransaction,
		Description: "Simulate DeFi transactions on testnet for safe practice",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"type": {
					Type:        "string",
					Enum:        []string{"swap", "lend", "borrow", "stake", "provide_liquidity"},
					Description: "Type of transaction to simulate",
				},
				"tokenA": {
					Type:        "string",
					Description: "First token symbol or address",
				},
				"tokenB": {
					Type:        "string",
					Description: "Second token symbol or address (for swaps/LP)",
				},
				"amount": {
					Type:        "string",
					Description: "Amount to transact",
				},
				"protocol": {
					Type:        "string",
					Description: `Protocol to use (e.g., "uniswap", "aave")`,
				},
			},
			Required: []string{"type", "tokenA", "amount", "protocol"},
		},
	},
	{
		Name:        ToolGetProtocolData,
		Description: "Get real-time data about DeFi protocols",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"protocol": {
					Type:        "string",
					Description: `Protocol name (e.g., "uniswap", "aave", "compound")`,
				},
				"dataType": {
					Type:        "string",
					Enum:        []string{"tvl", "apy", "volume", "fees", "security"},
					Description: "Type of data to retrieve",
				},
				"timeframe": {
					Type:        "string",
					Enum:        []string{"1d", "7d", "30d", "90d"},
					Description: "Time frame for historical data",
					Default:     "7d",
				},
			},
			Required: []string{"protocol", "dataType"},
		},
	},
	{
		Name:        ToolGenerateQuiz,
		Description: "Generate interactive quizzes for DeFi learning",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"topic": {
					Type:        "string",
					Description: `Quiz topic (e.g., "AMM basics", "lending protocols")`,
				},
				"difficulty": {
					Type:        "string",
					Enum:        []string{"easy", "medium", "hard"},
					Description: "Quiz difficulty level",
					Default:     "easy",
				},
				"questionCount": {
					Type:        "number",
					Description: "Number of questions to generate",
					Minimum:     num(1),
					Maximum:     num(10),
					Default:     5,
				},
			},
			Required: []string{"topic"},
		},
	},
	{
		Name:        ToolTrackProgress,
		Description: "Track user learning progress and achievements",
		InputSchema: InputSchema{
			Type: "object",
			Properties: map[string]Property{
				"userId": {
					Type:        "string",
					Description: "User identifier",
				},
				"action": {
					Type:        "string",
					Enum:        []string{"complete_lesson", "pass_quiz", "complete_simulation", "get_progress"},
					Description: "Action to track or retrieve",
				},
				"lessonId": {
					Type:        "string",
					Description: "Lesson or quiz identifier",
				},
				"score": {
					Type:        "number",
					Description: "Score achieved (for quizzes)",
					Minimum:     num(0),
					Maximum:     num(100),
				},
			},
			Required: []string{"userId", "action"},
		},
	},
}

// Catalog returns the full tool catalog.
func Catalog() []Descriptor { return catalog }

func lookup(name string) (Descriptor, bool) {
	for _, d := range catalog {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}
