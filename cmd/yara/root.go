package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/zhouzirui/yara-ai/internal/app"
	"github.com/zhouzirui/yara-ai/internal/config"
	applog "github.com/zhouzirui/yara-ai/internal/log"
	"github.com/zhouzirui/yara-ai/internal/model/notification"
)

type rootOptions struct {
	configPath string
	logLevel   string
	seed       int64
	noDelay    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "yara",
		Short:         "Yara AI assistant: chat, document creator and video editor previews",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML config file (default ./yara.yaml if present)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flags.Int64Var(&opts.seed, "seed", 0, "random seed for reproducible replies and figures (0 = random)")
	flags.BoolVar(&opts.noDelay, "no-delay", false, "skip the simulated processing delays")

	cmd.AddCommand(
		newChatCmd(opts),
		newAskCmd(opts),
		newDocumentCmd(opts),
		newVideoCmd(opts),
		newContactCmd(opts),
		newConfigCmd(),
	)
	return cmd
}

// bootstrap loads configuration, applies flag overrides and wires the app.
func (o *rootOptions) bootstrap(ctx context.Context) (*app.App, error) {
	bootLog := applog.New(o.logLevel)

	cfg, path, err := config.Load(bootLog, o.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.seed != 0 {
		cfg.Seed = o.seed
	}
	if o.noDelay {
		cfg.Chat.TypingDelay = 0
		cfg.Documents.GenerationDelay = 0
	}

	logger := applog.New(cfg.LogLevel)
	if path != "" {
		logger.Debug().Str("path", path).Msg("using config file")
	}
	return app.New(ctx, cfg, logger)
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func printNotice(w io.Writer, n notification.Notification) {
	fmt.Fprintf(w, "(%s) [%s] %s\n", n.Icon(), n.Kind, n.Message)
}
