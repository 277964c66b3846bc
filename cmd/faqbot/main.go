package main

import (
	"flag"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"faqbot/internal/bot"
	"faqbot/internal/config"
	"faqbot/internal/domain"
	"faqbot/internal/knowledge"
	"faqbot/internal/knowledge/memory"
	"faqbot/internal/knowledge/sqlite"
	"faqbot/internal/nlp"
	"faqbot/internal/tui"
	"faqbot/internal/watcher"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/faqbot/config.yaml if not provided)")
	flag.Parse()

	logger := newLogger()
	defer logger.Sync()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	// Assemble components
	var tokenizer *nlp.Tokenizer
	if len(cfg.Tokenizer.Stopwords) > 0 {
		tokenizer = nlp.NewTokenizerWithStopwords(cfg.Tokenizer.Stopwords)
	} else {
		tokenizer = nlp.NewTokenizer()
	}

	var store domain.KnowledgeStore
	switch cfg.Store.Type {
	case "memory", "":
		if loaded, lerr := knowledge.Load(cfg.Snapshot.Path); lerr == nil {
			store = loaded
		} else {
			store = memory.NewStore()
		}
	case "sqlite":
		st, serr := sqlite.NewStore(cfg.Store.Path)
		if serr != nil {
			logger.Fatal("sqlite store init failed", zap.Error(serr))
		}
		defer st.Close()
		store = st
	default:
		logger.Fatal("unknown store type", zap.String("type", cfg.Store.Type))
	}
	if store.IsEmpty() {
		seedDefaults(store)
	}

	responder := bot.New(store, tokenizer, bot.Thresholds{
		High:   cfg.Matcher.HighConfidence,
		Medium: cfg.Matcher.MediumConfidence,
	})

	m := tui.New(responder, store, cfg.Snapshot.Path)
	p := tea.NewProgram(m)

	if cfg.Snapshot.Watch {
		w, werr := watcher.New(cfg.Snapshot.Path, func() {
			p.Send(tui.SnapshotChangedMsg{})
		}, logger)
		if werr != nil {
			logger.Warn("snapshot watcher disabled", zap.Error(werr))
		} else {
			defer w.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		logger.Fatal("program failed", zap.Error(err))
	}
}

// seedDefaults installs the starter FAQ used on first run.
func seedDefaults(store domain.KnowledgeStore) {
	seed := [][2]string{
		{"what is your name", "I am faqbot - a demo FAQ assistant."},
		{"how can i save knowledge", "Use /save to persist Q/A pairs to disk."},
		{"how to train you", "/train adds a question and its answer to my memory."},
		{"what can you do", "I can answer FAQs, be trained with new Q/A, and save/load my memory."},
	}
	for _, qa := range seed {
		_, _ = store.Add(qa[0], qa[1])
	}
}

func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	if os.Getenv("ENV") == "development" {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
