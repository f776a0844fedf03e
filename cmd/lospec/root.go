package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/lospec"
	"github.com/fwojciec/lospec/bubbletea"
	"github.com/fwojciec/lospec/chroma"
	"github.com/fwojciec/lospec/clipboard"
	"github.com/fwojciec/lospec/config"
	"github.com/fwojciec/lospec/export"
	"github.com/fwojciec/lospec/fs"
	lospechttp "github.com/fwojciec/lospec/http"
	lospeclipgloss "github.com/fwojciec/lospec/lipgloss"
	"github.com/fwojciec/lospec/logging"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Build information, set with -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Deps holds the process-level collaborators commands are built from.
// Tests replace them to run commands without a network or terminal.
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer

	// IsTerminal reports whether Stdout is an interactive terminal.
	IsTerminal func() bool
	// LoadConfig loads configuration from an optional explicit path.
	LoadConfig func(path string) (config.Config, error)
	// SetupLogging configures the global logger and returns its closer.
	SetupLogging func(opts logging.Options) func() error
	// NewFetcher builds the catalog transport.
	NewFetcher func(cfg config.Config) lospec.Fetcher
	// NewViewer builds the interactive browser.
	NewViewer func(theme lospec.Theme) lospec.Viewer
	// NewFileSystem builds the filesystem exports write to.
	NewFileSystem func() lospec.FileSystem
}

// rootOptions holds persistent flag values and state shared by subcommands.
type rootOptions struct {
	verbosity  int
	configPath string
	noColor    bool

	cfg      config.Config
	closeLog func() error
}

// newRootCmd builds the command tree.
func newRootCmd(deps Deps) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "lospec",
		Short: "Search and download palettes from the Lospec catalog",
		Long: `lospec searches the Lospec palette catalog and downloads palettes in
several formats, including Xcode .colorset folders, GIMP palettes and PNG
images.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := deps.LoadConfig(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			opts.closeLog = deps.SetupLogging(logging.Options{
				Out:       deps.Stderr,
				Verbosity: opts.verbosity,
				File:      cfg.Log.File,
				NoColor:   opts.noColor,
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.closeLog != nil {
				return opts.closeLog()
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(deps.Stdout)
	cmd.SetErr(deps.Stderr)

	cmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/lospec/config.toml)")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(
		newSearchCmd(deps, opts),
		newBrowseCmd(deps, opts),
		newDownloadCmd(deps, opts),
		newFormatsCmd(deps, opts),
		newVersionCmd(),
		newCompletionCmd(),
	)
	return cmd
}

// searchFlags holds the filter, sorting and paging flags shared by search
// and browse.
type searchFlags struct {
	max, min, exact uint16
	sorting         string
	tag             string
	page            int
}

func (f *searchFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint16Var(&f.max, "max", 0, "Only palettes with at most N colors")
	cmd.Flags().Uint16Var(&f.min, "min", 0, "Only palettes with at least N colors")
	cmd.Flags().Uint16Var(&f.exact, "exact", 0, "Only palettes with exactly N colors")
	cmd.MarkFlagsMutuallyExclusive("max", "min", "exact")
	cmd.Flags().StringVar(&f.sorting, "sorting", "default", "Result order: default, az, downloads or newest")
	cmd.Flags().StringVar(&f.tag, "tag", "", "Only palettes with this tag")
	cmd.Flags().IntVarP(&f.page, "page", "p", 1, "Result page, starting at 1")
	_ = cmd.RegisterFlagCompletionFunc("sorting", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return lospec.SortingNames, cobra.ShellCompDirectiveNoFileComp
	})
}

// request converts the flags into a SearchRequest. Only flags set on the
// command line select a filter.
func (f *searchFlags) request(cmd *cobra.Command) (lospec.SearchRequest, error) {
	sorting, err := lospec.ParseSorting(f.sorting)
	if err != nil {
		return lospec.SearchRequest{}, err
	}
	if f.page < 1 {
		return lospec.SearchRequest{}, fmt.Errorf("page must be at least 1, got %d", f.page)
	}

	var filter lospec.Filter = lospec.AnyColors{}
	switch {
	case cmd.Flags().Changed("max"):
		filter = lospec.MaxColors(f.max)
	case cmd.Flags().Changed("min"):
		filter = lospec.MinColors(f.min)
	case cmd.Flags().Changed("exact"):
		filter = lospec.ExactColors(f.exact)
	}

	return lospec.SearchRequest{
		Filter:  filter,
		Sorting: sorting,
		Tag:     f.tag,
		Page:    f.page,
	}, nil
}

func newSearchCmd(deps Deps, opts *rootOptions) *cobra.Command {
	flags := &searchFlags{}
	var labels bool

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the catalog and print palettes as color swatches",
		Example: `  lospec search --exact 8 --sorting downloads
  lospec search --tag gameboy --labels`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request(cmd)
			if err != nil {
				return err
			}
			theme, err := lospeclipgloss.ThemeByName(opts.cfg.UI.Theme)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("labels") {
				labels = opts.cfg.UI.Labels
			}

			app := &SearchApp{
				BaseURL: opts.cfg.Catalog.BaseURL,
				Fetcher: deps.NewFetcher(opts.cfg),
				Renderer: lospeclipgloss.NewRenderer(
					lospeclipgloss.WithRenderer(newLipglossRenderer(deps.Stdout, opts.noColor)),
					lospeclipgloss.WithTheme(theme),
					lospeclipgloss.WithHexLabels(labels),
				),
				Stdout: deps.Stdout,
			}
			return app.Run(cmd.Context(), req)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&labels, "labels", false, "Print hex values inside swatches")
	return cmd
}

func newBrowseCmd(deps Deps, opts *rootOptions) *cobra.Command {
	flags := &searchFlags{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Search the catalog and browse the results interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !deps.IsTerminal() {
				return fmt.Errorf("browse needs an interactive terminal; use search instead")
			}
			req, err := flags.request(cmd)
			if err != nil {
				return err
			}
			theme, err := lospeclipgloss.ThemeByName(opts.cfg.UI.Theme)
			if err != nil {
				return err
			}

			app := &SearchApp{
				BaseURL: opts.cfg.Catalog.BaseURL,
				Fetcher: deps.NewFetcher(opts.cfg),
				Viewer:  deps.NewViewer(theme),
				Stdout:  deps.Stdout,
			}
			return app.Browse(cmd.Context(), req)
		},
	}
	flags.register(cmd)
	return cmd
}

func newDownloadCmd(deps Deps, opts *rootOptions) *cobra.Command {
	var (
		format  string
		size    int
		workers int
		dryRun  bool
		quiet   bool
	)

	cmd := &cobra.Command{
		Use:   "download <slug> [path]",
		Short: "Download a palette in one of the supported formats",
		Long: `Download fetches a palette by its slug and writes it to path. Without a
path, the palette is written to <slug>.<ext>, or to a directory named <slug>
for the colorset format.`,
		Example: `  lospec download sweetie-16 --format gpl
  lospec download sweetie-16 Assets.xcassets/Sweetie16 --format colorset
  lospec download sweetie-16 --format png --size 8`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if !cmd.Flags().Changed("format") {
				format = cfg.Download.Format
			}
			f, err := lospec.ParseFormat(format)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("size") {
				size = cfg.Download.Size
			}
			if size < 1 {
				return fmt.Errorf("size must be at least 1, got %d", size)
			}
			if !cmd.Flags().Changed("workers") {
				workers = cfg.Download.Workers
			}

			slug := args[0]
			path := DefaultPath(slug, f)
			if len(args) == 2 {
				path = args[1]
			}

			fsys := deps.NewFileSystem()
			if dryRun {
				fsys = newPreview(deps.Stdout, cfg, opts.noColor)
				// Sequential writes keep the preview in order.
				workers = 1
			}

			app := &DownloadApp{
				Exporter: export.NewExporter(deps.NewFetcher(cfg), fsys,
					export.WithBaseURL(cfg.Catalog.BaseURL),
					export.WithWorkers(workers),
				),
				Stdout: deps.Stdout,
				Quiet:  quiet || dryRun,
			}
			return app.Run(cmd.Context(), lospec.DownloadRequest{
				Slug:   slug,
				Path:   path,
				Format: f,
				Size:   size,
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(lospec.FormatHex), "Output format (see 'lospec formats')")
	cmd.Flags().IntVarP(&size, "size", "s", lospec.DefaultSize, "Scale for png output")
	cmd.Flags().IntVar(&workers, "workers", export.DefaultWorkers, "Concurrent writes for colorset output")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print what would be written without touching disk")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print a summary")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return lospec.FormatNames(), cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func newFormatsCmd(deps Deps, opts *rootOptions) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List supported output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := renderMarkdown(FormatsMarkdown(), width, deps.IsTerminal() && !opts.noColor)
			if err != nil {
				return err
			}
			_, err = io.WriteString(deps.Stdout, out)
			return err
		},
	}
	cmd.Flags().IntVar(&width, "width", 80, "Wrap output at this many columns (0 disables wrapping)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "lospec version %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `To load completions:

Bash:
  $ source <(lospec completion bash)

Zsh:
  $ lospec completion zsh > "${fpath[1]}/_lospec"

Fish:
  $ lospec completion fish | source

PowerShell:
  PS> lospec completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

// newLipglossRenderer returns a renderer for w, forced to plain output when
// color is disabled.
func newLipglossRenderer(w io.Writer, noColor bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// newPreview builds the dry-run filesystem with manifest highlighting.
func newPreview(w io.Writer, cfg config.Config, noColor bool) lospec.FileSystem {
	theme, err := lospeclipgloss.ThemeByName(cfg.UI.Theme)
	if err != nil {
		theme = lospeclipgloss.DefaultTheme()
	}
	opts := []lospeclipgloss.PreviewOption{
		lospeclipgloss.WithPreviewRenderer(newLipglossRenderer(w, noColor)),
		lospeclipgloss.WithPreviewTheme(theme),
	}
	if tokenizer, err := chroma.NewTokenizer(chroma.StyleFromStyles(theme.Styles())); err == nil {
		opts = append(opts, lospeclipgloss.WithHighlighting(tokenizer, chroma.NewDetector()))
	}
	return lospeclipgloss.NewPreview(w, opts...)
}

// defaultDeps wires the production collaborators.
func defaultDeps(stdout, stderr io.Writer, isTerminal func() bool) Deps {
	return Deps{
		Stdout:       stdout,
		Stderr:       stderr,
		IsTerminal:   isTerminal,
		LoadConfig:   config.Load,
		SetupLogging: logging.Setup,
		NewFetcher: func(cfg config.Config) lospec.Fetcher {
			return lospechttp.NewClient(
				lospechttp.WithTimeout(cfg.Catalog.Timeout),
				lospechttp.WithUserAgent(lospechttp.DefaultUserAgent+"/"+version),
			)
		},
		NewViewer: func(theme lospec.Theme) lospec.Viewer {
			opts := []bubbletea.BrowseModelOption{bubbletea.WithTheme(theme)}
			if cb, err := clipboard.Detect(); err == nil {
				opts = append(opts, bubbletea.WithClipboard(cb))
			}
			return bubbletea.NewViewer(opts...)
		},
		NewFileSystem: func() lospec.FileSystem {
			return fs.NewFileSystem()
		},
	}
}
