package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"defi-navigator/api/internal/concepts"
	"defi-navigator/api/internal/config"
	"defi-navigator/api/internal/llm"
	"defi-navigator/api/internal/llm/gemini"
	"defi-navigator/api/internal/llm/openai"
	"defi-navigator/api/internal/progress"
	"defi-navigator/api/internal/quiz"
	"defi-navigator/api/internal/store"
	"defi-navigator/api/internal/telegram"
	"defi-navigator/api/internal/tools"
)

func main() {
	cfg := config.Load()
	if cfg.TelegramBotToken == "" {
		log.Fatal("missing TELEGRAM_BOT_TOKEN")
	}

	engines := &llm.Engines{
		Gemini: gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel),
		OpenAI: openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel),
	}
	engine, err := engines.GetEngine(cfg.LLMEngine)
	if err != nil {
		log.Fatalf("LLM_ENGINE: %v", err)
	}
	if cfg.GeminiAPIKey == "" && cfg.OpenAIAPIKey == "" {
		log.Printf("no generative API key set; quizzes and explanations use static fallbacks")
		engine = nil
	}

	var repo progress.Repository = progress.MockRepo{}
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("sql.Open: %v", err)
		}
		defer db.Close()
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(1 * time.Hour)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := db.PingContext(ctx); err != nil {
			cancel()
			log.Fatalf("db.Ping: %v", err)
		}
		pr := store.NewProgressRepo(db)
		if err := pr.EnsureSchema(ctx); err != nil {
			cancel()
			log.Fatalf("db schema: %v", err)
		}
		cancel()
		repo = pr
	}

	disp := tools.New(
		&progress.Tracker{Repo: repo},
		quiz.NewGenerator(engine),
		concepts.NewExplainer(engine),
	)

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		log.Fatal(err)
	}
	bot.Debug = false

	r := &telegram.Router{Bot: bot, Disp: disp}

	// Liveness endpoint next to the polling loop.
	go func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
		addr := "0.0.0.0:" + cfg.Port
		log.Printf("bot healthz listening on %s", addr)
		log.Fatal(http.ListenAndServe(addr, mux))
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := bot.GetUpdatesChan(u)
	log.Printf("bot @%s polling for updates", bot.Self.UserName)
	for upd := range updates {
		r.HandleUpdate(upd)
	}
}
