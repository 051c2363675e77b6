package ui

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/folio/internal/content"
	"github.com/five82/folio/internal/prefs"
	"github.com/five82/folio/internal/scroll"
	"github.com/five82/folio/internal/state"
	"github.com/five82/folio/internal/theme"
)

// Options configures the UI.
type Options struct {
	Logger *zap.Logger

	// Renderer draws every style. The theme manager's marker must write to
	// the same renderer. Nil uses lipgloss's default renderer.
	Renderer *lipgloss.Renderer

	// Theme must already be initialized. Nil gives an in-memory manager
	// starting in light mode.
	Theme *theme.Manager

	// Content is watched for reloads. Nil shows the built-in portfolio.
	Content *state.Value[*content.Portfolio]

	SkipSplash bool
}

type contentChangedMsg struct{}

type themeChangedMsg struct{}

// live is the part of the model shared by every copy Bubble Tea makes of it.
type live struct {
	events chan tea.Msg
	done   chan struct{}

	closeOnce sync.Once
	unsubs    []func()

	flags        scroll.Flags
	computations int
	ticking      bool
}

func (l *live) notify(msg tea.Msg) {
	select {
	case l.events <- msg:
	default:
		// A queued message of any kind triggers a full refresh.
	}
}

func (l *live) listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-l.events:
			return msg
		case <-l.done:
			return nil
		}
	}
}

// Model is the root application state for Bubble Tea.
type Model struct {
	logger   *zap.Logger
	renderer *lipgloss.Renderer
	theme    *theme.Manager
	styles   Styles
	keys     keyMap
	live     *live

	// Scroll sampling
	frames   *frameQueue
	source   *viewportSource
	sampler  *scroll.Sampler
	spring   *scroll.Spring
	flags    scroll.Flags
	progress float64

	// Page
	portfolios   *state.Value[*content.Portfolio]
	portfolio    *content.Portfolio
	pages        *pageRenderer
	page         Page
	renderedMode theme.Mode
	vp           viewport.Model
	filter       content.Filter

	// UI state
	width   int
	height  int
	ready   bool
	splash  bool
	spinner spinner.Model
	typer   typewriter

	showHelp   bool
	showMenu   bool
	menuCursor int

	showContact bool
	contact     contactForm
	lastContact ContactMessage

	searching bool
	search    textinput.Model
	searchSeq int
}

// New creates the model and starts its scroll sampler. Call Close when the
// model is discarded; Run does this itself.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	manager := opts.Theme
	if manager == nil {
		manager = theme.NewManager(prefs.NewMemory(prefs.Defaults()),
			theme.RendererMarker{Renderer: renderer}, theme.WithLogger(logger))
		manager.Initialize()
	}
	portfolios := opts.Content
	if portfolios == nil {
		portfolios = state.NewValue(content.Default())
	}
	portfolio := portfolios.Get()
	if portfolio == nil {
		portfolio = content.Default()
	}

	styles := NewStyles(renderer, theme.DefaultPalette())
	l := &live{
		events: make(chan tea.Msg, 4),
		done:   make(chan struct{}),
	}
	frames := &frameQueue{}
	source := &viewportSource{}
	sampler := scroll.NewSampler(source, frames, scroll.WithLogger(logger))

	l.unsubs = append(l.unsubs,
		sampler.Subscribe(func(f scroll.Flags) {
			l.flags = f
			l.computations++
		}),
		manager.Subscribe(func(theme.Mode) { l.notify(themeChangedMsg{}) }),
		portfolios.Subscribe(func(*content.Portfolio) { l.notify(contentChangedMsg{}) }),
	)
	sampler.Start()

	vp := viewport.New(0, 0)
	vp.KeyMap = viewportKeyMap()
	vp.MouseWheelEnabled = false

	return Model{
		logger:       logger,
		renderer:     renderer,
		theme:        manager,
		styles:       styles,
		keys:         DefaultKeyMap(),
		live:         l,
		frames:       frames,
		source:       source,
		sampler:      sampler,
		spring:       scroll.NewSpring(),
		portfolios:   portfolios,
		portfolio:    portfolio,
		pages:        newPageRenderer(renderer),
		renderedMode: manager.Mode(),
		vp:           vp,
		filter:       content.Filter{Category: content.CategoryAll},
		splash:       !opts.SkipSplash,
		spinner:      newSpinner(styles),
		typer:        newTypewriter(portfolio.Profile.Roles, 0),
		contact:      newContactForm(),
		search:       newSearchInput(styles),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.live.listen(),
		m.typer.tick(TypeInterval),
	}
	if m.splash {
		cmds = append(cmds, splashCmd(), m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = max(msg.Height-chromeRows, 1)
		m.contact.setWidth(min(msg.Width-12, 48))
		if !isMobile(msg.Width) {
			m.showMenu = false
		}
		m.ready = true
		m.rebuild()
		cmd := m.observe()
		return m, cmd

	case frameMsg:
		m.live.ticking = false
		m.frames.Drain()
		m.flags = m.live.flags
		m.progress = m.spring.Step(m.flags.Progress)
		cmd := m.scheduleFrame()
		return m, cmd

	case typeTickMsg:
		if msg.seq != m.typer.seq {
			return m, nil
		}
		d := m.typer.step()
		return m, m.typer.tick(d)

	case splashDoneMsg:
		m.splash = false
		return m, nil

	case spinner.TickMsg:
		if !m.splash {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case thanksDoneMsg:
		if msg.seq == m.contact.seq && m.contact.submitted {
			m.contact.reset()
		}
		return m, nil

	case searchApplyMsg:
		if msg.seq != m.searchSeq || !m.searching {
			return m, nil
		}
		m.applyQuery(m.search.Value())
		cmd := m.observe()
		return m, cmd

	case themeChangedMsg:
		if m.theme.Mode() != m.renderedMode {
			m.rebuild()
		}
		cmd := m.observe()
		return m, tea.Batch(cmd, m.live.listen())

	case contentChangedMsg:
		if p := m.portfolios.Get(); p != nil && p != m.portfolio {
			m.portfolio = p
			m.typer = newTypewriter(p.Profile.Roles, m.typer.seq+1)
			m.rebuild()
			cmd := m.observe()
			m.logger.Info("portfolio reloaded", zap.Int("projects", len(p.Projects)))
			return m, tea.Batch(cmd, m.typer.tick(TypeInterval), m.live.listen())
		}
		return m, m.live.listen()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.splash {
		return m.renderSplash()
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showContact {
		return m.renderContact()
	}

	screen := strings.Join([]string{
		m.renderProgressBar(),
		m.renderHeader(),
		m.renderBody(),
		m.renderCommandBar(),
	}, "\n")

	if m.showMenu {
		r := menuRect(m.width)
		screen = overlay(screen, m.renderMenu(), r.X, r.Y)
	}
	return screen
}

// renderBody centres the viewport on wide terminals.
func (m Model) renderBody() string {
	margin := max((m.width-LayoutMaxContentWidth)/2, 0)
	lines := strings.Split(fitLines(m.vp.View(), m.vp.Height), "\n")
	pad := strings.Repeat(" ", margin)
	for i, line := range lines {
		lines[i] = truncate(pad+line, m.width)
	}
	return strings.Join(lines, "\n")
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.splash {
		if key.Matches(msg, m.keys.Quit) {
			return m, m.quit()
		}
		m.splash = false
		return m, nil
	}

	if m.showHelp {
		if msg.String() == "ctrl+c" {
			return m, m.quit()
		}
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.showContact {
		return m.handleContactKey(msg)
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	if m.showMenu {
		switch {
		case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Menu):
			m.showMenu = false
			return m, nil
		case key.Matches(msg, m.keys.MenuUp):
			m.menuCursor = (m.menuCursor - 1 + len(content.SectionIDs)) % len(content.SectionIDs)
			return m, nil
		case key.Matches(msg, m.keys.MenuDown):
			m.menuCursor = (m.menuCursor + 1) % len(content.SectionIDs)
			return m, nil
		case key.Matches(msg, m.keys.Confirm):
			m.jump(content.SectionIDs[m.menuCursor])
			cmd := m.observe()
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.ToggleTheme):
		m.theme.Toggle()
		m.rebuild()
		cmd := m.observe()
		return m, cmd

	case key.Matches(msg, m.keys.Escape):
		if m.filter.Query != "" {
			m.search.SetValue("")
			m.applyQuery("")
		}
		cmd := m.observe()
		return m, cmd

	case key.Matches(msg, m.keys.Jump):
		idx := int(msg.String()[0] - '1')
		if idx >= 0 && idx < len(content.SectionIDs) {
			m.jump(content.SectionIDs[idx])
		}
		cmd := m.observe()
		return m, cmd

	case key.Matches(msg, m.keys.Menu) && isMobile(m.width):
		m.showMenu = true
		m.menuCursor = indexOf(activeSection(m.page.Anchors, m.vp.YOffset))
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.filter.Category = m.filter.Category.Next()
		m.rebuild()
		cmd := m.observe()
		return m, cmd

	case key.Matches(msg, m.keys.Search):
		return m.startSearch()

	case key.Matches(msg, m.keys.Contact):
		m.showContact = true
		m.contact.setFocus(fieldName)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Top):
		m.vp.GotoTop()
		cmd := m.observe()
		return m, cmd

	case key.Matches(msg, m.keys.Bottom):
		m.vp.GotoBottom()
		cmd := m.observe()
		return m, cmd
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, tea.Batch(cmd, m.observe())
}

const wheelRows = 3

// handleMouse handles clicks on the navigation and menu, and wheel scrolling.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.splash || m.showHelp || m.showContact || !m.ready {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.vp.SetYOffset(m.vp.YOffset - wheelRows)
		cmd := m.observe()
		return m, cmd
	case tea.MouseButtonWheelDown:
		m.vp.SetYOffset(m.vp.YOffset + wheelRows)
		cmd := m.observe()
		return m, cmd
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}

	if m.showMenu {
		if idx, ok := menuItemAt(m.width, msg.X, msg.Y); ok {
			m.jump(content.SectionIDs[idx])
			cmd := m.observe()
			return m, cmd
		}
		// Clicks outside the menu close it, including on the toggle.
		if !menuRect(m.width).contains(msg.X, msg.Y) {
			m.showMenu = false
		}
		return m, nil
	}

	if isMobile(m.width) {
		if menuToggleRect(m.width).contains(msg.X, msg.Y) {
			m.showMenu = true
			m.menuCursor = indexOf(activeSection(m.page.Anchors, m.vp.YOffset))
		}
		return m, nil
	}

	for _, slot := range navLayout(m.width, m.portfolio.Profile.Initials) {
		if slot.rect().contains(msg.X, msg.Y) {
			m.jump(slot.ID)
			cmd := m.observe()
			return m, cmd
		}
	}
	return m, nil
}

// jump scrolls the section's first line to the top and closes the menu.
func (m *Model) jump(id content.SectionID) {
	m.showMenu = false
	if line, ok := m.page.Anchors[id]; ok {
		m.vp.SetYOffset(line)
	}
}

// rebuild re-renders the page for the current width, mode, filter, and
// content. The scroll position is kept where the new page allows it.
func (m *Model) rebuild() {
	if !m.ready {
		return
	}
	mode := m.theme.Mode()
	offset := m.vp.YOffset
	m.page = m.pages.Render(m.portfolio, m.filter, m.vp.Width, mode)
	m.renderedMode = mode
	m.vp.SetContent(m.page.Body)
	m.vp.SetYOffset(offset)
}

// observe reports the viewport position to the sampler and makes sure a
// frame is coming if the sampler asked for one.
func (m *Model) observe() tea.Cmd {
	m.source.Observe(m.vp)
	return m.scheduleFrame()
}

func (m *Model) scheduleFrame() tea.Cmd {
	if m.live.ticking {
		return nil
	}
	if !m.frames.Pending() && m.spring.Settled() {
		return nil
	}
	m.live.ticking = true
	return frameCmd()
}

func (m Model) quit() tea.Cmd {
	m.Close()
	return tea.Quit
}

// Close stops the scroll sampler and drops every subscription. It is safe to
// call more than once and from any goroutine.
func (m Model) Close() {
	if m.live == nil {
		return
	}
	m.live.closeOnce.Do(func() {
		m.sampler.Stop()
		for _, unsub := range m.live.unsubs {
			unsub()
		}
		close(m.live.done)
	})
}

// Flags returns the scroll flags the model last drew with.
func (m Model) Flags() scroll.Flags { return m.flags }

// LastContact returns the most recent accepted contact form submission.
func (m Model) LastContact() ContactMessage { return m.lastContact }

func indexOf(id content.SectionID) int {
	for i, s := range content.SectionIDs {
		if s == id {
			return i
		}
	}
	return 0
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options, progOpts ...tea.ProgramOption) error {
	m := New(opts)
	defer m.Close()

	progOpts = append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, progOpts...)

	p := tea.NewProgram(m, progOpts...)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
