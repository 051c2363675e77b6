package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/five82/folio/internal/config"
	"github.com/five82/folio/internal/content"
	"github.com/five82/folio/internal/logtail"
	"github.com/five82/folio/internal/prefs"
	"github.com/five82/folio/internal/server"
	"github.com/five82/folio/internal/state"
	"github.com/five82/folio/internal/theme"
	"github.com/five82/folio/internal/ui"
)

// Options configure the folio application. Empty fields fall back to the
// config file and environment.
type Options struct {
	ConfigPath  string
	ContentPath string
	PrefsPath   string
	Verbose     bool

	// Stdout receives headless output. Nil uses os.Stdout.
	Stdout io.Writer
}

// runtime is everything a command needs after configuration is resolved.
type runtime struct {
	cfg        config.Config
	logger     *zap.Logger
	portfolios *state.Value[*content.Portfolio]
	reloader   *Reloader
}

func setup(opts Options, stderr bool) (*runtime, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.LogFile, cfg.LogLevel, opts.Verbose, stderr)
	if err != nil {
		return nil, err
	}

	portfolio, err := content.Load(cfg.Content)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}

	rt := &runtime{
		cfg:        cfg,
		logger:     logger,
		portfolios: state.NewValue(portfolio),
	}
	if cfg.Content != "" {
		rt.reloader = NewReloader(cfg.Content, rt.portfolios, logger)
	}
	return rt, nil
}

func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if opts.ContentPath != "" {
		path, err := prefs.ExpandPath(opts.ContentPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("resolve content path: %w", err)
		}
		cfg.Content = path
	}
	if opts.PrefsPath != "" {
		path, err := prefs.ExpandPath(opts.PrefsPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("resolve prefs path: %w", err)
		}
		cfg.Prefs = path
	}
	return cfg, nil
}

// watch runs the content reloader, if any, until ctx is cancelled.
func (rt *runtime) watch(ctx context.Context, g *errgroup.Group) {
	if rt.reloader == nil {
		return
	}
	g.Go(func() error { return rt.reloader.Run(ctx) })
}

// Run boots the portfolio TUI until the user quits or ctx is cancelled. When
// stdout is not a terminal the page is printed once instead.
func Run(ctx context.Context, opts Options) error {
	rt, err := setup(opts, false)
	if err != nil {
		return err
	}
	defer func() { _ = rt.logger.Sync() }()

	renderer := lipgloss.DefaultRenderer()
	manager := theme.NewManager(prefs.File{Path: rt.cfg.Prefs},
		theme.RendererMarker{Renderer: renderer}, theme.WithLogger(rt.logger))
	mode := manager.Initialize()

	if !isTerminal(os.Stdout) || opts.Stdout != nil {
		return printPage(stdout(opts), rt.portfolios.Get(), mode)
	}

	rt.logger.Info("starting tui", zap.Stringer("theme", mode))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	rt.watch(gctx, g)
	g.Go(func() error {
		defer cancel()
		return ui.Run(gctx, ui.Options{
			Logger:   rt.logger,
			Renderer: renderer,
			Theme:    manager,
			Content:  rt.portfolios,
		})
	})
	return g.Wait()
}

// printPage writes the rendered page for non-interactive output.
func printPage(w io.Writer, p *content.Portfolio, mode theme.Mode) error {
	r := lipgloss.NewRenderer(w)
	r.SetHasDarkBackground(mode.IsDark())

	page := ui.RenderPage(p, ui.LayoutMaxContentWidth, mode, r)
	if _, err := io.WriteString(w, page); err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	return nil
}

// Serve runs the SSH server until ctx is cancelled.
func Serve(ctx context.Context, opts Options) error {
	rt, err := setup(opts, true)
	if err != nil {
		return err
	}
	defer func() { _ = rt.logger.Sync() }()

	srv, err := server.New(server.Options{
		Config:  rt.cfg.SSH,
		Content: rt.portfolios,
		Logger:  rt.logger,
	})
	if err != nil {
		return fmt.Errorf("create ssh server: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	rt.watch(gctx, g)
	g.Go(func() error { return srv.Run(gctx) })
	return g.Wait()
}

// Theme prints the saved theme, toggling it first when toggle is set.
func Theme(opts Options, toggle bool) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogFile, cfg.LogLevel, opts.Verbose, false)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	store := prefs.File{Path: cfg.Prefs}
	manager := theme.NewManager(store, &theme.FlagMarker{}, theme.WithLogger(logger))
	mode := manager.Initialize()
	if toggle {
		mode = manager.Toggle()
		// The manager only logs a failed save.
		if err := verifySaved(store, mode); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(stdout(opts), mode)
	return err
}

func verifySaved(store prefs.Store, mode theme.Mode) error {
	p, err := store.Load()
	if err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	if saved, ok := theme.ParseMode(p.Theme); !ok || saved != mode {
		return fmt.Errorf("save theme: %w: %s not persisted", prefs.ErrUnavailable, mode)
	}
	return nil
}

// Logs prints the last n lines of the log file, formatted. A non-positive n
// prints everything.
func Logs(opts Options, n int) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	lines, err := logtail.Read(cfg.LogFile, n)
	if err != nil {
		return err
	}

	w := stdout(opts)
	if len(lines) == 0 {
		_, err = fmt.Fprintf(w, "no log entries in %s\n", cfg.LogFile)
		return err
	}

	f := logtail.NewFormatter(lipgloss.NewRenderer(w))
	_, err = io.WriteString(w, strings.Join(f.FormatLines(lines), "\n")+"\n")
	return err
}

func stdout(opts Options) io.Writer {
	if opts.Stdout != nil {
		return opts.Stdout
	}
	return os.Stdout
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
