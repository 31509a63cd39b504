package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio-chat/internal/analytics"
	"github.com/Zachkp/portfolio-chat/internal/chat"
	"github.com/Zachkp/portfolio-chat/internal/faq"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "portfolio-chat",
		Short:        "Portfolio FAQ chat service",
		SilenceUsage: true,
		RunE:         runServe,
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP server",
			Args:  cobra.NoArgs,
			RunE:  runServe,
		},
		newAskCmd(),
		newCorpusCmd(),
	)
	return root
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if os.Getenv(gin.EnvGinMode) == "" && cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	corpus, err := loadCorpus(cfg.CorpusFile)
	if err != nil {
		logger.Error("loading corpus", zap.Error(err))
		return err
	}
	logger.Info("corpus loaded",
		zap.Int("records", corpus.Len()),
		zap.Int("keywords", corpus.KeywordCount()),
		zap.String("file", cfg.CorpusFile),
	)

	responder := chat.NewResponder(corpus, chat.Options{
		MatchSuggestions:    cfg.MatchSuggestions,
		FallbackSuggestions: cfg.FallbackSuggestions,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events, err := openAnalytics(ctx, cfg, logger)
	if err != nil {
		logger.Error("opening analytics store", zap.Error(err))
		return err
	}
	if events != nil {
		defer events.Close()
	}

	srv, err := NewServer(cfg, responder, events, NewMetrics(cfg.MetricsNamespace), logger)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}

// openAnalytics opens the analytics store and runs one retention cleanup. It
// returns a nil store when analytics is disabled.
func openAnalytics(ctx context.Context, cfg Config, logger *zap.Logger) (*analytics.Store, error) {
	if !cfg.AnalyticsEnabled() {
		logger.Info("analytics disabled, set ANALYTICS_DB_PATH to enable")
		return nil, nil
	}

	salt := cfg.HashSalt
	if salt == "" {
		var err error
		if salt, err = generateToken(); err != nil {
			return nil, err
		}
		logger.Warn("ANALYTICS_HASH_SALT not set, unique visitor counts reset on restart")
	}

	events, err := analytics.Open(cfg.AnalyticsDBPath, salt)
	if err != nil {
		return nil, err
	}

	n, err := events.Cleanup(ctx, cfg.AnalyticsRetention)
	if err != nil {
		logger.Warn("analytics cleanup failed", zap.Error(err))
	} else if n > 0 {
		logger.Info("analytics cleanup", zap.Int64("deleted", n), zap.Duration("retention", cfg.AnalyticsRetention))
	}
	logger.Info("analytics enabled", zap.String("path", cfg.AnalyticsDBPath))
	return events, nil
}

func newAskCmd() *cobra.Command {
	var corpusFile string
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a single question from the FAQ",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			corpus, err := loadCorpus(corpusFile)
			if err != nil {
				return err
			}
			r := chat.NewResponder(corpus, chat.Options{})
			reply, err := r.Respond([]chat.Message{{Role: chat.RoleUser, Content: strings.Join(args, " ")}})
			if err != nil {
				return err
			}
			printReply(cmd.OutOrStdout(), reply)
			return nil
		},
	}
	cmd.Flags().StringVar(&corpusFile, "corpus", os.Getenv("FAQ_CORPUS_FILE"), "TOML corpus file (default: built-in corpus)")
	return cmd
}

func newCorpusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Inspect FAQ corpora",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "check [file]",
			Short: "Validate a TOML corpus file, or the built-in corpus",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				file := ""
				if len(args) == 1 {
					file = args[0]
				}
				corpus, err := loadCorpus(file)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok: %d records, %d keywords\n", corpus.Len(), corpus.KeywordCount())
				return nil
			},
		},
		&cobra.Command{
			Use:   "export",
			Short: "Print the built-in corpus as TOML",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return faq.Encode(cmd.OutOrStdout(), faq.Default())
			},
		},
	)
	return cmd
}

// loadCorpus reads a TOML corpus file, or returns the built-in corpus when file
// is empty.
func loadCorpus(file string) (*faq.Corpus, error) {
	if file == "" {
		return faq.Default(), nil
	}
	return faq.LoadFile(file)
}

func printReply(w io.Writer, reply chat.Reply) {
	fmt.Fprintln(w, reply.Answer)
	if len(reply.Suggestions) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "You could also ask:")
	for _, s := range reply.Suggestions {
		fmt.Fprintf(w, "  - %s\n", s.Question)
	}
}
