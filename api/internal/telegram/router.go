package telegram

import (
	"context"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"defi-navigator/api/internal/tools"
	"defi-navigator/api/internal/util"
)

const usage = `Commands:
/explain <concept> — explain a DeFi concept
/risk <protocol> — assess protocol risk
/quiz <topic> — generate a quiz
/simulate <type> <tokenA> <amount> <protocol> [tokenB] — simulate a transaction
/progress — your learning progress
/health — liveness check`

// Router maps bot commands onto dispatcher tool calls. It is a thin
// transport like the HTTP surface: text in, envelope text out.
type Router struct {
	Bot  *tgbotapi.BotAPI
	Disp *tools.Dispatcher
}

func (r *Router) HandleUpdate(upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	cid := upd.Message.Chat.ID

	if !upd.Message.IsCommand() {
		r.send(cid, usage)
		return
	}

	args := strings.TrimSpace(upd.Message.CommandArguments())
	switch upd.Message.Command() {
	case "start":
		r.send(cid, "Welcome to DeFi Navigator — learn DeFi safely.\n\n"+usage)
	case "health":
		r.send(cid, "✅ OK")
	case "explain":
		if args == "" {
			r.send(cid, "Usage: /explain <concept>")
			return
		}
		r.callTool(cid, tools.ToolExplainConcept, map[string]any{"concept": args})
	case "risk":
		if args == "" {
			r.send(cid, "Usage: /risk <protocol>")
			return
		}
		r.callTool(cid, tools.ToolAssessRisk, map[string]any{
			"type":     "protocol",
			"protocol": args,
		})
	case "quiz":
		if args == "" {
			r.send(cid, "Usage: /quiz <topic>")
			return
		}
		r.callTool(cid, tools.ToolGenerateQuiz, map[string]any{"topic": args})
	case "simulate":
		fields := strings.Fields(args)
		if len(fields) < 4 {
			r.send(cid, "Usage: /simulate <type> <tokenA> <amount> <protocol> [tokenB]")
			return
		}
		callArgs := map[string]any{
			"type":     fields[0],
			"tokenA":   fields[1],
			"amount":   fields[2],
			"protocol": fields[3],
		}
		if len(fields) > 4 {
			callArgs["tokenB"] = fields[4]
		}
		r.callTool(cid, tools.ToolSimulateTransaction, callArgs)
	case "progress":
		r.callTool(cid, tools.ToolTrackProgress, map[string]any{
			"userId": strconv.FormatInt(cid, 10),
			"action": "get_progress",
		})
	default:
		r.send(cid, "Unknown command.\n\n"+usage)
	}
}

func (r *Router) callTool(cid int64, name string, args map[string]any) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	res := r.Disp.CallTool(ctx, name, args)
	text := ""
	if len(res.Content) > 0 {
		text = res.Content[0].Text
	}
	if res.IsError {
		text = "⚠️ " + text
	}
	r.send(cid, util.Truncate(text, 3900))
}

func (r *Router) send(cid int64, text string) {
	_, _ = r.Bot.Send(tgbotapi.NewMessage(cid, text))
}
