package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"defi-navigator/api/internal/concepts"
	"defi-navigator/api/internal/config"
	"defi-navigator/api/internal/handle"
	"defi-navigator/api/internal/llm"
	"defi-navigator/api/internal/llm/gemini"
	"defi-navigator/api/internal/llm/openai"
	"defi-navigator/api/internal/mcpserver"
	"defi-navigator/api/internal/progress"
	"defi-navigator/api/internal/quiz"
	"defi-navigator/api/internal/store"
	"defi-navigator/api/internal/tools"
)

func main() {
	cfg := config.Load()

	disp, db := buildDispatcher(cfg)
	if db != nil {
		defer db.Close()
	}

	// MCP_STDIO=true serves the structured protocol instead of HTTP.
	if v := strings.ToLower(strings.TrimSpace(os.Getenv("MCP_STDIO"))); v == "1" || v == "true" {
		log.Printf("defi-navigator tool server running on stdio")
		if err := mcpserver.New(disp).Serve(context.Background(), os.Stdin, os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	h := handle.New(disp)
	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/tools", h.ListTools)
	mux.HandleFunc("/tools/", h.CallTool)

	addr := ":" + cfg.Port
	log.Printf("defi-navigator listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}

func buildDispatcher(cfg *config.Config) (*tools.Dispatcher, *sql.DB) {
	engine := buildEngine(cfg)

	var (
		repo progress.Repository = progress.MockRepo{}
		db   *sql.DB
	)
	if cfg.DatabaseURL != "" {
		var err error
		db, err = sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("sql.Open: %v", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(1 * time.Hour)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("db.Ping: %v", err)
		}
		pr := store.NewProgressRepo(db)
		if err := pr.EnsureSchema(ctx); err != nil {
			log.Fatalf("db schema: %v", err)
		}
		repo = pr
		log.Printf("progress store: postgres")
	} else {
		log.Printf("progress store: in-memory mock (set DATABASE_URL for persistence)")
	}

	tracker := &progress.Tracker{Repo: repo}
	return tools.New(tracker, quiz.NewGenerator(engine), concepts.NewExplainer(engine)), db
}

// buildEngine picks the configured generative backend. A missing API key
// is not fatal: engines fall back to static content.
func buildEngine(cfg *config.Config) llm.Engine {
	engines := &llm.Engines{
		Gemini: gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel),
		OpenAI: openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel),
	}
	eng, err := engines.GetEngine(cfg.LLMEngine)
	if err != nil {
		log.Fatalf("LLM_ENGINE: %v", err)
	}
	switch cfg.LLMEngine {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			log.Printf("GEMINI_API_KEY is empty; quizzes and explanations use static fallbacks")
			return nil
		}
	default:
		if cfg.OpenAIAPIKey == "" {
			log.Printf("OPENAI_API_KEY is empty; quizzes and explanations use static fallbacks")
			return nil
		}
	}
	return eng
}
