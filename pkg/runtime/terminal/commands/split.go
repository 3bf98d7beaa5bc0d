package commands

import (
	"fmt"

	"github.com/de-tools/billsplit/pkg/adapters"
	"github.com/de-tools/billsplit/pkg/models/domain"
	"github.com/de-tools/billsplit/pkg/services/allocation"
	"github.com/de-tools/billsplit/pkg/services/bill"
	"github.com/de-tools/billsplit/pkg/services/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type ReportHandler interface {
	Handle(report *domain.Report) error
}

type SplitCmd struct {
	configPath   string
	envFile      string
	profilesPath string
	profile      string
	verbose      bool
	reporters    map[string]ReportHandler
}

func NewSplitCmd(reporters map[string]ReportHandler) *cobra.Command {
	sc := &SplitCmd{reporters: reporters}
	cmd := &cobra.Command{
		Use:           "billsplit <bill-file>",
		Short:         "Split a shared bill between its participants",
		Long: `Split a shared bill between its participants.

Percentage discounts are taken off the item subtotal. Use
--discount-base charged to take them off subtotal plus charge, rounded
to cents, which matches totals printed by bill_splitter.py.

A bill file named "profiles" is read as the profiles subcommand; pass it
as ./profiles instead.`,
		Args:          cobra.ExactArgs(1),
		RunE:          sc.run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&sc.configPath, "config", "", "Path to a settings file")
	cmd.Flags().StringVar(&sc.envFile, "env-file", "", "Path to a .env file (default .env when present)")
	cmd.PersistentFlags().StringVar(&sc.profilesPath, "profiles", "", "Path to an ini file of named profiles")
	cmd.Flags().StringVar(&sc.profile, "profile", "", "Profile to apply from the profiles file")
	cmd.Flags().BoolVarP(&sc.verbose, "verbose", "v", false, "Log parsing and allocation details to stderr")

	cmd.Flags().String("currency", "", "Currency symbol prefixed to amounts")
	cmd.Flags().String("discount-base", "", "Base of percentage discounts: subtotal or charged")
	cmd.Flags().String("format", "", "Report format: text or table")
	cmd.Flags().String("comment-prefix", "", "Lines starting with this prefix are skipped")

	return cmd
}

var flagKeys = map[string]string{
	"currency":       config.KeyCurrency,
	"discount-base":  config.KeyDiscountBase,
	"format":         config.KeyFormat,
	"comment-prefix": config.KeyCommentPrefix,
}

func (sc *SplitCmd) run(cmd *cobra.Command, args []string) error {
	level := zerolog.WarnLevel
	if sc.verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(level).
		With().Timestamp().
		Logger()
	ctx := logger.WithContext(cmd.Context())

	settings, err := config.Load(config.LoadOptions{
		ConfigPath:   sc.configPath,
		EnvFile:      sc.envFile,
		ProfilesPath: sc.profilesPath,
		Profile:      sc.profile,
		Flags:        cmd.Flags(),
		FlagKeys:     flagKeys,
	})
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	reporter, ok := sc.reporters[settings.Format]
	if !ok {
		return fmt.Errorf("no reporter for format %q", settings.Format)
	}
	base, err := allocation.ParseDiscountBase(settings.DiscountBase)
	if err != nil {
		return err
	}

	logger.Debug().
		Str("file", args[0]).
		Str("discount_base", string(base)).
		Str("format", settings.Format).
		Msg("splitting bill")

	b, err := bill.ParseFile(ctx, args[0], bill.ReaderOptions{CommentPrefix: settings.CommentPrefix})
	if err != nil {
		return err
	}
	logger.Debug().
		Int("items", len(b.Items)).
		Bool("charge", b.Charge != nil).
		Bool("discount", b.Discount != nil).
		Msg("bill parsed")

	result, err := allocation.NewEngine(allocation.Options{DiscountBase: base}).Allocate(ctx, b)
	if err != nil {
		return err
	}

	return reporter.Handle(adapters.MapAllocationToReport(b, result, settings.Currency))
}
