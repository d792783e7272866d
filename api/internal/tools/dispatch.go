package tools

import (
	"context"
	"fmt"
	"strconv"

	"defi-navigator/api/internal/concepts"
	"defi-navigator/api/internal/progress"
	"defi-navigator/api/internal/protocoldata"
	"defi-navigator/api/internal/quiz"
	"defi-navigator/api/internal/risk"
	"defi-navigator/api/internal/simulate"
)

// Dispatcher routes validated tool calls to the domain engines and
// normalizes every outcome into a Result. It never lets an engine error
// escape to a transport: every invocation terminates in an envelope.
type Dispatcher struct {
	Tracker   *progress.Tracker
	Quiz      *quiz.Generator
	Explainer *concepts.Explainer
}

func New(tracker *progress.Tracker, gen *quiz.Generator, exp *concepts.Explainer) *Dispatcher {
	return &Dispatcher{Tracker: tracker, Quiz: gen, Explainer: exp}
}

func (d *Dispatcher) ListTools() []Descriptor { return Catalog() }

func (d *Dispatcher) CallTool(ctx context.Context, name string, args map[string]any) Result {
	desc, ok := lookup(name)
	if !ok {
		return ErrorResult(fmt.Sprintf("Unknown tool: %s", name))
	}
	if args == nil {
		args = map[string]any{}
	}
	if err := validateArgs(desc, args); err != nil {
		return ErrorResult(err.Error())
	}

	res, err := d.dispatch(ctx, name, args)
	if err != nil {
		return ErrorResult(fmt.Sprintf("Error executing tool %s: %s", name, err))
	}
	return res
}

func (d *Dispatcher) dispatch(ctx context.Context, name string, args map[string]any) (Result, error) {
	switch name {
	case ToolExplainConcept:
		return d.explainConcept(ctx, args)
	case ToolAssessRisk:
		return d.assessRisk(args)
	case ToolSimulateTransaction:
		return d.simulateTransaction(args)
	case ToolGetProtocolData:
		return d.getProtocolData(args)
	case ToolGenerateQuiz:
		return d.generateQuiz(ctx, args)
	case ToolTrackProgress:
		return d.trackProgress(ctx, args)
	default:
		// Unreachable: lookup already filtered unknown names.
		return Result{}, fmt.Errorf("unknown tool: %s", name)
	}
}

func (d *Dispatcher) explainConcept(ctx context.Context, args map[string]any) (Result, error) {
	exp := d.Explainer.Explain(ctx,
		stringArg(args, "concept", ""),
		stringArg(args, "userLevel", "beginner"),
		boolArg(args, "includeExample", true),
	)
	return TextResult(exp.Render(), exp), nil
}

func (d *Dispatcher) assessRisk(args map[string]any) (Result, error) {
	kind, err := risk.ParseKind(stringArg(args, "type", ""))
	if err != nil {
		return Result{}, err
	}

	var target string
	switch kind {
	case risk.KindToken, risk.KindPortfolio:
		target = stringArg(args, "address", "")
	default:
		target = stringArg(args, "protocol", "")
	}

	var amount float64
	if kind == risk.KindTransaction {
		raw := stringArg(args, "amount", "0")
		amount, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return Result{}, fmt.Errorf("invalid amount: %q", raw)
		}
	}

	a, err := risk.Assess(kind, target, amount)
	if err != nil {
		return Result{}, err
	}
	return TextResult(a.Render(), a), nil
}

func (d *Dispatcher) simulateTransaction(args map[string]any) (Result, error) {
	kind, err := simulate.ParseKind(stringArg(args, "type", ""))
	if err != nil {
		return Result{}, err
	}
	protocol := stringArg(args, "protocol", "")
	res, err := simulate.Simulate(kind,
		stringArg(args, "tokenA", ""),
		stringArg(args, "tokenB", ""),
		stringArg(args, "amount", ""),
		protocol,
	)
	if err != nil {
		return Result{}, err
	}
	return TextResult(res.Render(kind, protocol), res), nil
}

func (d *Dispatcher) getProtocolData(args map[string]any) (Result, error) {
	metric, err := protocoldata.ParseMetric(stringArg(args, "dataType", ""))
	if err != nil {
		return Result{}, err
	}
	data, err := protocoldata.Fetch(stringArg(args, "protocol", ""), metric)
	if err != nil {
		return Result{}, err
	}
	return TextResult(data.Render(), data), nil
}

func (d *Dispatcher) generateQuiz(ctx context.Context, args map[string]any) (Result, error) {
	q := d.Quiz.BuildQuiz(ctx,
		stringArg(args, "topic", ""),
		stringArg(args, "difficulty", "easy"),
		int(numberArg(args, "questionCount", 5)),
	)
	return TextResult(q.Render(), q), nil
}

// trackResponse is the structured payload for track_progress calls.
type trackResponse struct {
	Progress        progress.Progress      `json:"progress"`
	NewAchievements []progress.Achievement `json:"newAchievements"`
	Passed          *bool                  `json:"passed,omitempty"`
}

func (d *Dispatcher) trackProgress(ctx context.Context, args map[string]any) (Result, error) {
	action, err := progress.ParseAction(stringArg(args, "action", ""))
	if err != nil {
		return Result{}, err
	}
	userID := stringArg(args, "userId", "")
	itemID := stringArg(args, "lessonId", "")
	score := int(numberArg(args, "score", 0))

	p, unlocked, err := d.Tracker.Track(ctx, userID, progress.Event{
		Action: action,
		ItemID: itemID,
		Score:  score,
	})
	if err != nil {
		return Result{}, err
	}

	resp := trackResponse{Progress: p, NewAchievements: unlocked}
	var text string
	switch action {
	case progress.ActionCompleteLesson:
		text = progress.RenderLessonCompletion(itemID, p, unlocked)
	case progress.ActionPassQuiz:
		passed := score >= progress.PassingScore
		resp.Passed = &passed
		text = progress.RenderQuizCompletion(itemID, score, p, unlocked)
	case progress.ActionCompleteSimulation:
		text = progress.RenderSimulationCompletion(itemID, p, unlocked)
	case progress.ActionGetProgress:
		text = progress.RenderReport(p)
	}
	return TextResult(text, resp), nil
}
