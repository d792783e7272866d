package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"defi-navigator/api/internal/concepts"
	"defi-navigator/api/internal/progress"
	"defi-navigator/api/internal/quiz"
	"defi-navigator/api/internal/risk"
	"defi-navigator/api/internal/simulate"
)

func newTestDispatcher() *Dispatcher {
	return New(
		&progress.Tracker{Repo: progress.MockRepo{}},
		quiz.NewGenerator(nil),
		concepts.NewExplainer(nil),
	)
}

func firstText(t *testing.T, res Result) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	return res.Content[0].Text
}

func TestCallToolUnknownName(t *testing.T) {
	d := newTestDispatcher()
	res := d.CallTool(context.Background(), "drain_wallet", nil)
	assert.True(t, res.IsError)
	assert.Equal(t, "Unknown tool: drain_wallet", firstText(t, res))
}

func TestCallToolMissingRequiredArgument(t *testing.T) {
	d := newTestDispatcher()
	res := d.CallTool(context.Background(), ToolExplainConcept, map[string]any{})
	assert.True(t, res.IsError)
	assert.Equal(t, "missing required argument: concept", firstText(t, res))
}

func TestCallToolNilArgsTreatedAsEmpty(t *testing.T) {
	d := newTestDispatcher()
	res := d.CallTool(context.Background(), ToolAssessRisk, nil)
	assert.True(t, res.IsError)
	assert.Equal(t, "missing required argument: type", firstText(t, res))
}

func TestCallToolEnumViolation(t *testing.T) {
	d := newTestDispatcher()
	res := d.CallTool(context.Background(), ToolAssessRisk, map[string]any{"type": "weather"})
	assert.True(t, res.IsError)
	assert.Contains(t, firstText(t, res), "argument type must be one of")
}

func TestCallToolNumberOutOfBounds(t *testing.T) {
	d := newTestDispatcher()

	res := d.CallTool(context.Background(), ToolGenerateQuiz, map[string]any{
		"topic":         "liquidity pools",
		"questionCount": float64(11),
	})
	assert.True(t, res.IsError)
	assert.Contains(t, firstText(t, res), "argument questionCount must be <= 10")

	res = d.CallTool(context.Background(), ToolGenerateQuiz, map[string]any{
		"topic":         "liquidity pools",
		"questionCount": float64(0),
	})
	assert.True(t, res.IsError)
	assert.Contains(t, firstText(t, res), "argument questionCount must be >= 1")
}

func TestCallToolAssessRiskProtocol(t *testing.T) {
	d := newTestDispatcher()
	res := d.CallTool(context.Background(), ToolAssessRisk, map[string]any{
		"type":     "protocol",
		"protocol": "uniswap",
	})
	require.False(t, res.IsError)

	a, ok := res.Data.(risk.Assessment)
	require.True(t, ok)
	assert.Equal(t, 25, a.Score.Overall)
	assert.Equal(t, "Low Risk", a.Level)
	assert.Contains(t, firstText(t, res), "UNISWAP")
}

func TestCallToolAssessRiskTokenUsesAddress(t *testing.T) {
	d := newTestDispatcher()
	res := d.CallTool(context.Background(), ToolAssessRisk, map[string]any{
		"type":    "token",
		"address": "0xdeadbeef",
	})
	require.False(t, res.IsError)

	a, ok := res.Data.(risk.Assessment)
	require.True(t, ok)
	assert.Equal(t, "0xdeadbeef", a.Target)
	assert.True(t, a.Partial)
}

func TestCallToolAssessRiskBadAmount(t *testing.T) {
	d := newTestDispatcher()
	res := d.CallTool(context.Background(), ToolAssessRisk, map[string]any{
		"type":   "transaction",
		"amount": "plenty",
	})
	assert.True(t, res.IsError)
	assert.Equal(t, `Error executing tool assess_risk: invalid amount: "plenty"`, firstText(t, res))
}

func TestCallToolSimulateTransaction(t *testing.T) {
	d := newTestDispatcher()
	res := d.CallTool(context.Background(), ToolSimulateTransaction, map[string]any{
		"type":     "swap",
		"tokenA":   "ETH",
		"tokenB":   "USDC",
		"amount":   "100",
		"protocol": "uniswap",
	})
	require.False(t, res.IsError)

	sim, ok := res.Data.(simulate.Result)
	require.True(t, ok)
	assert.Equal(t, "150000", sim.EstimatedGas)
	assert.Equal(t, "95.000000 USDC", sim.ExpectedOutput)
}

func TestCallToolGetProtocolDataUnknownProtocol(t *testing.T) {
	d := newTestDispatcher()
	res := d.CallTool(context.Background(), ToolGetProtocolData, map[string]any{
		"protocol": "sushiswap",
		"dataType": "tvl",
	})
	assert.True(t, res.IsError)
	assert.Equal(t, "Error executing tool get_protocol_data: protocol sushiswap not found", firstText(t, res))
}

func TestCallToolGenerateQuizFallback(t *testing.T) {
	d := newTestDispatcher()
	res := d.CallTool(context.Background(), ToolGenerateQuiz, map[string]any{
		"topic": "liquidity pools",
	})
	require.False(t, res.IsError)

	q, ok := res.Data.(quiz.Quiz)
	require.True(t, ok)
	assert.Equal(t, "static", q.Source)
	assert.NotEmpty(t, q.Questions)
}

func TestCallToolTrackProgressPassQuiz(t *testing.T) {
	d := newTestDispatcher()
	res := d.CallTool(context.Background(), ToolTrackProgress, map[string]any{
		"userId":   "u1",
		"action":   "pass_quiz",
		"lessonId": "quiz-7",
		"score":    float64(85),
	})
	require.False(t, res.IsError)

	resp, ok := res.Data.(trackResponse)
	require.True(t, ok)
	require.NotNil(t, resp.Passed)
	assert.True(t, *resp.Passed)
	assert.Equal(t, 7, resp.Progress.PassedQuizzes)
}

func TestCallToolTrackProgressFailedQuiz(t *testing.T) {
	d := newTestDispatcher()
	res := d.CallTool(context.Background(), ToolTrackProgress, map[string]any{
		"userId": "u1",
		"action": "pass_quiz",
		"score":  float64(40),
	})
	require.False(t, res.IsError)

	resp, ok := res.Data.(trackResponse)
	require.True(t, ok)
	require.NotNil(t, resp.Passed)
	assert.False(t, *resp.Passed)
	// seeded count unchanged below the pass mark
	assert.Equal(t, 6, resp.Progress.PassedQuizzes)
}

func TestCallToolTrackProgressReport(t *testing.T) {
	d := newTestDispatcher()
	res := d.CallTool(context.Background(), ToolTrackProgress, map[string]any{
		"userId": "u1",
		"action": "get_progress",
	})
	require.False(t, res.IsError)

	resp, ok := res.Data.(trackResponse)
	require.True(t, ok)
	assert.Nil(t, resp.Passed)
	assert.Equal(t, 42, resp.Progress.OverallProgress)
	assert.Contains(t, firstText(t, res), "Learning Progress")
}

func TestCallToolTrackProgressScoreBounds(t *testing.T) {
	d := newTestDispatcher()
	res := d.CallTool(context.Background(), ToolTrackProgress, map[string]any{
		"userId": "u1",
		"action": "get_progress",
		"score":  float64(150),
	})
	assert.True(t, res.IsError)
	assert.Contains(t, firstText(t, res), "argument score must be <= 100")
}

func TestListToolsCatalog(t *testing.T) {
	d := newTestDispatcher()
	descs := d.ListTools()
	require.Len(t, descs, 6)

	names := make(map[string]bool, len(descs))
	for _, desc := range descs {
		names[desc.Name] = true
		assert.Equal(t, "object", desc.InputSchema.Type)
		assert.NotEmpty(t, desc.Description)
	}
	for _, want := range []string{
		ToolExplainConcept, ToolAssessRisk, ToolSimulateTransaction,
		ToolGetProtocolData, ToolGenerateQuiz, ToolTrackProgress,
	} {
		assert.True(t, names[want], "missing %s", want)
	}
}
