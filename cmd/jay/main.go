// Command jay is a rule-based question/answer chat bot that learns new
// answers from the person talking to it.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kittclouds/jay/internal/config"
	"github.com/kittclouds/jay/internal/store"
	"github.com/kittclouds/jay/pkg/chat"
	"github.com/kittclouds/jay/pkg/intent"
	"github.com/kittclouds/jay/pkg/lexicon"
	"github.com/kittclouds/jay/pkg/matcher"
	"github.com/kittclouds/jay/pkg/sentiment"
	"github.com/kittclouds/jay/pkg/similarity"
	"github.com/kittclouds/jay/pkg/textnorm"
)

// app carries what the persistent pre-run resolved for a subcommand.
type app struct {
	configFile string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "jay",
		Short: "Jay - a chat bot that answers from a knowledge base and learns what it doesn't know",
		Long: `Jay answers questions from a JSON or SQLite knowledge base.

When it does not know an answer it asks for one and remembers it.
Type "apprendre" to teach an answer to your last message, "quit" to leave.

Run without arguments to start chatting.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runChat(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "Config file (default: ./config.yaml or ~/.config/jay/config.yaml)")
	rootCmd.PersistentFlags().String("kb", "", "Knowledge base file (default: knowledge_base.json)")
	rootCmd.PersistentFlags().String("backend", "", "Knowledge base backend: json or sqlite")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(a.newKBCmd())
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	if a.verbose {
		level = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	a.logger, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func (a *app) openStore() (store.Store, error) {
	opts, err := a.cfg.StoreOptions()
	if err != nil {
		return nil, err
	}
	s, err := store.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open knowledge base (run \"jay kb init\" to create one): %w", err)
	}
	return s, nil
}

func (a *app) runChat(cmd *cobra.Command) error {
	st, err := a.openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	kb, err := st.Load()
	if err != nil {
		return err
	}

	norm, err := textnorm.New(a.cfg.Language)
	if err != nil {
		return err
	}
	m := matcher.New(norm, similarity.NewVectorSpace(), a.cfg.Matcher.Threshold)
	m.Fit(kb.Questions())

	lex, err := lexicon.LoadFile(a.cfg.LexiconPath)
	if err != nil {
		return err
	}
	detector, err := intent.NewDetector(lex)
	if err != nil {
		return err
	}
	analyzer, err := sentiment.NewAnalyzer(lex)
	if err != nil {
		return err
	}

	a.logger.Debug("knowledge base loaded",
		zap.String("path", a.cfg.KnowledgeBase.Path),
		zap.String("backend", a.cfg.KnowledgeBase.Backend),
		zap.Int("entries", kb.Len()))

	session := chat.NewSession(kb, chat.Dependencies{
		Store:     st,
		Matcher:   m,
		Intents:   detector,
		Sentiment: analyzer,
		Terminal:  chat.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout(), a.cfg.BotName),
		Logger:    a.logger,
	}, a.cfg.SessionOptions())

	return session.Run(cmd.Context())
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
