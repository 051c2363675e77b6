package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	"go.uber.org/zap"

	"github.com/five82/folio/internal/config"
	"github.com/five82/folio/internal/content"
	"github.com/five82/folio/internal/prefs"
	"github.com/five82/folio/internal/state"
	"github.com/five82/folio/internal/theme"
	"github.com/five82/folio/internal/ui"
)

const shutdownTimeout = 5 * time.Second

// Options configures the SSH server.
type Options struct {
	Config  config.SSH
	Content *state.Value[*content.Portfolio]
	Logger  *zap.Logger
}

// Server serves the portfolio TUI to SSH clients. Every session gets its own
// renderer, theme manager, and scroll sampler; content is shared.
type Server struct {
	cfg     config.SSH
	content *state.Value[*content.Portfolio]
	logger  *zap.Logger
	server  *ssh.Server
	active  atomic.Int64
}

// New builds the server. The host key is generated on first use.
func New(opts Options) (*Server, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	portfolios := opts.Content
	if portfolios == nil {
		portfolios = state.NewValue(content.Default())
	}

	s := &Server{
		cfg:     opts.Config,
		content: portfolios,
		logger:  logger.Named("ssh"),
	}

	if dir := filepath.Dir(s.cfg.HostKey); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create host key dir: %w", err)
		}
	}

	// The last middleware runs first.
	srv, err := wish.NewServer(
		wish.WithAddress(s.cfg.Address()),
		wish.WithHostKeyPath(s.cfg.HostKey),
		wish.WithIdleTimeout(s.cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			RateLimitMiddleware(s.cfg.RateLimitPerMinute, s.cfg.Burst, s.logger),
			logging.MiddlewareWithLogger(zap.NewStdLog(s.logger)),
		),
	)
	if err != nil {
		return nil, err
	}
	s.server = srv
	return s, nil
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// Active returns the number of open sessions.
func (s *Server) Active() int {
	return int(s.active.Load())
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-ctx.Done():
		case <-stopped:
			return
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("ssh shutdown", zap.Error(err))
		}
	}()

	s.logger.Info("ssh server starting",
		zap.String("addr", s.Addr()),
		zap.String("host_key", s.cfg.HostKey),
		zap.Duration("idle_timeout", s.cfg.IdleTimeout),
		zap.Int("rate_limit_per_minute", s.cfg.RateLimitPerMinute),
		zap.Int("burst", s.cfg.Burst))

	err := s.server.ListenAndServe()
	if err == nil || errors.Is(err, ssh.ErrServerClosed) {
		s.logger.Info("ssh server stopped")
		return nil
	}
	return fmt.Errorf("serve ssh: %w", err)
}

func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	renderer := bubbletea.MakeRenderer(sess)
	m := s.sessionModel(sess.Context(), renderer, sess.User(), remoteIP(sess))
	return m, []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
}

// sessionModel builds the model for one session and closes it when ctx is
// done. The theme starts from the client's detected background and is kept
// in memory for the session only.
func (s *Server) sessionModel(ctx context.Context, r *lipgloss.Renderer, user, remote string) ui.Model {
	logger := s.logger.With(zap.String("user", user), zap.String("remote_ip", remote))

	seed := theme.Light
	if r.HasDarkBackground() {
		seed = theme.Dark
	}
	manager := theme.NewManager(prefs.NewMemory(prefs.Prefs{Theme: seed.String()}),
		theme.RendererMarker{Renderer: r}, theme.WithLogger(logger))
	manager.Initialize()

	m := ui.New(ui.Options{
		Logger:   logger,
		Renderer: r,
		Theme:    manager,
		Content:  s.content,
	})

	active := s.active.Add(1)
	logger.Info("session opened", zap.Int64("active", active))
	go func() {
		<-ctx.Done()
		m.Close()
		logger.Info("session closed", zap.Int64("active", s.active.Add(-1)))
	}()
	return m
}
