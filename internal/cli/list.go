package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gleemora/survivors/internal/config"
	"github.com/gleemora/survivors/internal/loader"
	"github.com/gleemora/survivors/internal/logging"
	"github.com/gleemora/survivors/internal/pagination"
	"github.com/gleemora/survivors/internal/survivor"
	"github.com/gleemora/survivors/internal/tui"
)

// listFlags holds the flags of the list command.
type listFlags struct {
	endpoint       string
	pageSize       string
	page           int
	output         string
	plain          bool
	showLoadErrors bool
}

// listOptions is the resolved configuration of one list run.
type listOptions struct {
	endpoint       string
	state          pagination.State
	output         string
	plain          bool
	showLoadErrors bool
	source         config.SourceConfig
}

// NewListCmd creates the list command, which fetches the survivor list once and
// shows it as a paginated table.
func NewListCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show survivors in a paginated table",
		Long: `Fetches the survivor list once and shows it as a paginated table.

In a terminal the table is interactive: use ←/→ to change page, home/end for the
first and last page, r to choose rows per page and enter to see a full record.
When stdout is not a terminal, or with --plain, the selected page is printed once.`,
		Example: `  # Interactive table
  survivors list

  # Third page of 10 rows, printed as text
  survivors list --plain --page-size 10 --page 2

  # Everything as JSON
  survivors list --output json --page-size all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := resolveListOptions(cmd, flags)
			if err != nil {
				return err
			}
			return runList(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&flags.endpoint, "endpoint", "", "survivor API endpoint (overrides config)")
	cmd.Flags().StringVar(&flags.pageSize, "page-size", "", "rows per page: 5, 10, 25 or all")
	cmd.Flags().IntVar(&flags.page, "page", pagination.DefaultPage, "zero-based page to print (plain and json output)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output format: table or json")
	cmd.Flags().BoolVar(&flags.plain, "plain", false, "print once instead of starting the interactive table")
	cmd.Flags().BoolVar(&flags.showLoadErrors, "show-load-errors", false,
		"report fetch failures instead of showing an empty table")

	return cmd
}

// resolveListOptions merges flags over the loaded configuration. Flags win only
// when explicitly set.
func resolveListOptions(cmd *cobra.Command, flags listFlags) (listOptions, error) {
	cfg := config.GetGlobalConfig()

	opts := listOptions{
		endpoint:       cfg.Source.Endpoint,
		state:          pagination.NewState(cfg.View.PageSize),
		output:         cfg.View.Output,
		plain:          flags.plain,
		showLoadErrors: cfg.View.ShowLoadErrors,
		source:         cfg.Source,
	}

	if cmd.Flags().Changed("endpoint") {
		opts.endpoint = flags.endpoint
	}
	if cmd.Flags().Changed("page-size") {
		size, err := pagination.ParsePageSize(flags.pageSize)
		if err != nil {
			return listOptions{}, err
		}
		opts.state = pagination.NewState(size)
	}
	if err := pagination.ValidatePage(flags.page); err != nil {
		return listOptions{}, err
	}
	opts.state.Page = flags.page
	if cmd.Flags().Changed("output") {
		opts.output = strings.ToLower(flags.output)
	}
	if cmd.Flags().Changed("show-load-errors") {
		opts.showLoadErrors = flags.showLoadErrors
	}

	switch opts.output {
	case config.OutputTable, config.OutputJSON:
	default:
		return listOptions{}, fmt.Errorf("unsupported output format: %s", opts.output)
	}
	return opts, nil
}

// runList routes to the interactive table, a static table or JSON.
func runList(cmd *cobra.Command, opts listOptions) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	src := loader.NewHTTPSource(opts.endpoint, opts.source.Timeout)
	ldr := loader.New(src, loader.WithStatusObserver(func(from, to loader.Status) {
		log.Debug().Ctx(ctx).
			Str("from", from.String()).
			Str("to", to.String()).
			Msg("load status changed")
	}))

	if opts.output == config.OutputJSON {
		return runStaticList(ctx, cmd.OutOrStdout(), ldr, opts, tui.RenderJSON)
	}

	switch tui.DetectOutputMode(false, false, opts.plain) {
	case tui.OutputModeInteractive:
		return runInteractiveList(ctx, ldr, opts)
	case tui.OutputModeStyled:
		return runStaticList(ctx, cmd.OutOrStdout(), ldr, opts, tui.RenderStyled)
	default:
		return runStaticList(ctx, cmd.OutOrStdout(), ldr, opts, tui.RenderPlain)
	}
}

func runInteractiveList(ctx context.Context, ldr *loader.Loader, opts listOptions) error {
	model := tui.NewSurvivorsModel(ctx, ldr, tui.Options{
		PageSize:       opts.state.PageSize,
		ShowLoadErrors: opts.showLoadErrors,
	})
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return nil
}

// runStaticList loads synchronously and renders one page. A failed load
// renders the empty table; with showLoadErrors it is returned instead.
func runStaticList(
	ctx context.Context,
	w io.Writer,
	ldr *loader.Loader,
	opts listOptions,
	render func(io.Writer, tui.PageView) error,
) error {
	if err := ldr.Load(ctx); err != nil {
		logging.FromContext(ctx).Warn().Ctx(ctx).
			Err(err).
			Str("failure", ldr.Failure().String()).
			Msg("survivor fetch failed")
		if opts.showLoadErrors {
			return fmt.Errorf("loading survivors: %w", err)
		}
	}

	return render(w, tui.PageView{
		Records:   ldr.Records(),
		State:     opts.state,
		Formatter: survivor.Formatter{},
	})
}
