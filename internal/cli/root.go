package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sproutly/internal/chatbot"
	"sproutly/internal/config"
	"sproutly/internal/content"
	"sproutly/internal/logger"
	"sproutly/internal/market"
	"sproutly/internal/styles"
	"sproutly/internal/ui"
)

var ErrNotTerminal = errors.New("sproutly needs an interactive terminal")

// Launcher runs the shell until the user quits
type Launcher func(ctx context.Context, m *ui.Model) error

type hooks struct {
	isTerminal func() bool
	launch     Launcher
}

func defaultHooks() hooks {
	return hooks{
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdout.Fd())) },
		launch:     runProgram,
	}
}

func runProgram(ctx context.Context, m *ui.Model) error {
	p := ui.NewProgram(m, tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

type rootFlags struct {
	configFile string
}

// flag name -> config key
var boundFlags = map[string]string{
	"theme":       "theme",
	"skip-splash": "skip_splash",
	"seed":        "seed",
	"width":       "width",
	"log-file":    "log_file",
	"log-level":   "log_level",
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultHooks())
}

func newRootCmd(rt hooks) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "sproutly",
		Short:         "Sproutly is a gardening assistant for the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !rt.isTerminal() {
				return ErrNotTerminal
			}

			loader := config.NewLoader()
			loader.SetConfigFile(flags.configFile)
			for name, key := range boundFlags {
				if err := loader.Viper().BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
					return fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
			cfg, err := loader.Load()
			if err != nil {
				return err
			}

			return run(cmd.Context(), cfg, rt.launch)
		},
	}

	def := config.Default()
	cmd.Flags().StringVar(&flags.configFile, "config", "", "Path to a YAML config file")
	cmd.Flags().String("theme", def.Theme, "Color theme: light, dark or auto")
	cmd.Flags().Bool("skip-splash", def.SkipSplash, "Skip the loading screen")
	cmd.Flags().Int64("seed", def.Seed, "Seed for chatbot default replies (0 = random)")
	cmd.Flags().Int("width", def.Width, fmt.Sprintf("Card width in cells (%d-%d)", styles.MinCardWidth, styles.MaxCardWidth))
	cmd.Flags().String("log-file", def.LogFile, "Write logs to this file")
	cmd.Flags().String("log-level", def.LogLevel, "Log level: debug, info, warn or error")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

func run(ctx context.Context, cfg config.Config, launch Launcher) error {
	if ctx == nil {
		ctx = context.Background()
	}

	log, closer, err := logger.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	seed, err := content.Load()
	if err != nil {
		return err
	}

	catalog, err := market.Open(ctx, seed.Products)
	if err != nil {
		log.Error(err, "open catalog")
		return err
	}
	defer catalog.Close()

	dark := cfg.Dark(nil)
	log.WithFields(map[string]any{
		"theme":       cfg.Theme,
		"dark":        dark,
		"width":       cfg.Width,
		"skip_splash": cfg.SkipSplash,
	}).Info("starting")

	m := ui.NewModel(ui.Options{
		Context:    ctx,
		Dark:       dark,
		Width:      cfg.Width,
		SkipSplash: cfg.SkipSplash,
		ReplyDelay: cfg.ReplyDelay,
		Timings:    cfg.Timings(),
		Bot:        chatbot.NewSeeded(cfg.Seed),
		Catalog:    catalog,
		Content:    seed,
		Logger:     log,
	})

	if err := launch(ctx, m); err != nil {
		log.Error(err, "program exited")
		return err
	}
	log.Info("bye")
	return nil
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
