package ui

import (
	"log/slog"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"verse-order/internal/audio"
	"verse-order/internal/game"
	"verse-order/internal/settings"
	"verse-order/internal/theme"
)

const (
	loadingMessage   = "Loading chapter..."
	loadErrorMessage = "Error loading chapter. Check the chapter source and try again."

	headerHeight = 2
	footerHeight = 2
	wheelStep    = 3
)

// Options wires the model to its collaborators.
type Options struct {
	Loader       ChapterLoader
	Player       *audio.Player
	Logger       *slog.Logger
	Theme        theme.Theme
	Mode         game.Mode
	Chapter      string
	FetchTimeout time.Duration
	SettingsPath string
	// Shuffler overrides the scramble source; nil is random.
	Shuffler     game.Shuffler
}

type Model struct {
	loader       ChapterLoader
	player       *audio.Player
	log          *slog.Logger
	theme        theme.Theme
	fetchTimeout time.Duration
	settingsPath string
	shuffle      game.Shuffler

	keys keyMap
	help help.Model

	chapters []string
	chapter  string
	selected game.Mode

	session    *game.Session
	generation uint64
	loading    bool
	status     string
	statusErr  bool
	canVerify  bool

	panes  [2]viewport.Model
	boxes  [2]map[int]game.Box
	scroll game.ScrollSync

	focus     game.Region
	cursor    [2]int
	held      bool
	mouseDrag bool

	width  int
	height int
	ready  bool
}

func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = defaultFetchTimeout
	}
	if opts.Theme.Slug == "" {
		opts.Theme = theme.CatppuccinMocha
	}

	return Model{
		loader:       opts.Loader,
		player:       opts.Player,
		log:          opts.Logger,
		theme:        opts.Theme,
		fetchTimeout: opts.FetchTimeout,
		settingsPath: opts.SettingsPath,
		shuffle:      opts.Shuffler,
		keys:         defaultKeyMap(),
		help:         help.New(),
		chapter:      opts.Chapter,
		selected:     opts.Mode,
		generation:   1,
		loading:      true,
		status:       loadingMessage,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		listChapters(m.loader, m.fetchTimeout),
		loadChapter(m.loader, m.chapter, m.selected, m.generation, m.fetchTimeout),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case chaptersListedMsg:
		m.chapters = msg.ids

	case listFailedMsg:
		m.log.Warn("listing chapters failed", "error", msg.err)

	case chapterLoadedMsg:
		m.chapterLoaded(msg)

	case chapterFailedMsg:
		if msg.generation != m.generation {
			m.log.Debug("discarding stale chapter error", "chapter", msg.id, "generation", msg.generation)
			return m, nil
		}
		m.log.Error("loading chapter failed", "chapter", msg.id, "generation", msg.generation, "error", msg.err)
		m.loading = false
		m.status = loadErrorMessage
		m.statusErr = true
		m.canVerify = false

	case settingsSavedMsg:
		if msg.err != nil {
			m.log.Warn("saving settings failed", "error", msg.err)
		}
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Check):
		m.verify()

	case key.Matches(msg, m.keys.Mode):
		m.selected = m.selected.Toggle()
		return m, tea.Batch(m.startLoad(), m.persist())

	case key.Matches(msg, m.keys.NextChapter):
		return m.cycleChapter(1)

	case key.Matches(msg, m.keys.PrevChapter):
		return m.cycleChapter(-1)

	case key.Matches(msg, m.keys.Reload):
		return m, m.startLoad()

	case key.Matches(msg, m.keys.Theme):
		m.theme = theme.Next(m.theme)
		m.refresh()
		return m, m.persist()

	case key.Matches(msg, m.keys.Grab):
		m.toggleGrab()

	case key.Matches(msg, m.keys.Cancel):
		if m.held {
			m.release()
		}

	case key.Matches(msg, m.keys.Switch):
		if !m.held {
			m.focus = m.focus.Other()
			m.clampCursor()
			m.refresh()
		}

	case key.Matches(msg, m.keys.Left):
		m.shift(game.RegionSource)

	case key.Matches(msg, m.keys.Right):
		m.shift(game.RegionTarget)

	case key.Matches(msg, m.keys.Up):
		m.step(-1)

	case key.Matches(msg, m.keys.Down):
		m.step(1)

	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(m.focus, -m.panes[m.focus].Height)

	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(m.focus, m.panes[m.focus].Height)
	}
	return m, nil
}

// startLoad begins loading the current chapter in the selected mode. Any
// load already in flight becomes stale.
func (m *Model) startLoad() tea.Cmd {
	m.generation++
	m.loading = true
	m.status = loadingMessage
	m.statusErr = false
	m.log.Info("loading chapter", "chapter", m.chapter, "mode", m.selected.String(), "generation", m.generation)
	return loadChapter(m.loader, m.chapter, m.selected, m.generation, m.fetchTimeout)
}

func (m Model) cycleChapter(delta int) (tea.Model, tea.Cmd) {
	if len(m.chapters) == 0 {
		return m, nil
	}
	i := slices.Index(m.chapters, m.chapter)
	switch {
	case i < 0:
		i = 0
	default:
		i = (i + delta + len(m.chapters)) % len(m.chapters)
	}
	m.chapter = m.chapters[i]
	return m, tea.Batch(m.startLoad(), m.persist())
}

func (m *Model) persist() tea.Cmd {
	return saveSettings(m.settingsPath, settings.Settings{
		Chapter: m.chapter,
		Mode:    m.selected.String(),
		Theme:   m.theme.Slug,
	})
}

func (m *Model) chapterLoaded(msg chapterLoadedMsg) {
	if msg.generation != m.generation {
		m.log.Debug("discarding stale chapter", "chapter", msg.chapter.ID, "generation", msg.generation)
		return
	}

	m.session = game.NewSession(msg.chapter, msg.mode, msg.generation, m.shuffle)
	m.loading = false
	m.status = m.session.Intro()
	m.statusErr = false
	m.canVerify = m.session.CanVerify()
	m.held = false
	m.mouseDrag = false
	m.cursor = [2]int{}
	m.focus = game.RegionSource
	if msg.mode == game.ModeStudy {
		m.focus = game.RegionTarget
	}

	m.refresh()
	for r := range m.panes {
		m.panes[r].GotoTop()
	}

	m.log.Info("chapter loaded",
		"session", m.session.ID,
		"chapter", msg.chapter.ID,
		"mode", msg.mode.String(),
		"verses", msg.chapter.Len(),
		"generation", msg.generation,
	)
	m.player.Play(audio.CueLoad)
}

func (m *Model) verify() {
	wrongMode := m.selected != game.ModeGame ||
		(m.session != nil && m.session.Mode != game.ModeGame)
	if wrongMode {
		m.status = game.WrongModeVerdict().Message()
		m.statusErr = false
		return
	}
	if m.session == nil || !m.canVerify || m.loading {
		return
	}

	v := m.session.Verify()
	m.status = v.Message()
	m.statusErr = false
	m.refresh()

	if !v.Scored() {
		return
	}
	m.log.Info("order checked",
		"session", m.session.ID,
		"success", v.Status == game.StatusSuccess,
		"placed", v.Placed,
		"total", v.Total,
	)
	if v.Status == game.StatusSuccess {
		m.player.Play(audio.CueCorrect)
	} else {
		m.player.Play(audio.CueIncorrect)
	}
}

// cursorCard returns the verse index under the keyboard cursor.
func (m *Model) cursorCard() (int, bool) {
	if m.session == nil {
		return 0, false
	}
	cards := m.session.Cards(m.focus)
	if len(cards) == 0 {
		return 0, false
	}
	return cards[m.cursor[m.focus]], true
}

func (m *Model) toggleGrab() {
	if m.session == nil || m.loading || m.mouseDrag {
		return
	}
	if m.held {
		m.release()
		return
	}
	i, ok := m.cursorCard()
	if !ok || !m.session.PickUp(i) {
		return
	}
	m.held = true
	m.player.Play(audio.CueMove)
	m.refresh()
}

func (m *Model) release() {
	m.session.EndDrag()
	m.held = false
	m.refresh()
}

// shift changes the focused pane, carrying the held card along.
func (m *Model) shift(to game.Region) {
	if m.session == nil || m.focus == to {
		return
	}
	if m.held {
		i, _ := m.session.Dragged()
		m.session.Move(i, to, m.cursor[m.focus])
		m.follow(i)
	} else {
		m.focus = to
		m.clampCursor()
	}
	m.refresh()
	m.ensureVisible()
}

// step moves the cursor, or the held card, up or down.
func (m *Model) step(delta int) {
	if m.session == nil {
		return
	}
	if m.held {
		i, _ := m.session.Dragged()
		_, pos, _ := m.session.Locate(i)
		m.session.Move(i, m.focus, pos+delta)
		m.follow(i)
	} else {
		m.cursor[m.focus] += delta
		m.clampCursor()
	}
	m.refresh()
	m.ensureVisible()
}

// follow moves focus and cursor onto verse index i.
func (m *Model) follow(i int) {
	r, pos, ok := m.session.Locate(i)
	if !ok {
		return
	}
	m.focus = r
	m.cursor[r] = pos
}

func (m *Model) clampCursor() {
	if m.session == nil {
		m.cursor = [2]int{}
		return
	}
	for r := range m.cursor {
		n := len(m.session.Cards(game.Region(r)))
		m.cursor[r] = max(0, min(m.cursor[r], n-1))
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if !m.ready {
		return
	}
	region := m.regionAt(msg.X)

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scrollBy(region, -wheelStep)
	case msg.Button == tea.MouseButtonWheelDown:
		m.scrollBy(region, wheelStep)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if m.session == nil || m.loading || m.held || m.mouseDrag {
			return
		}
		i, ok := m.cardAt(region, msg.Y)
		if !ok || !m.session.PickUp(i) {
			return
		}
		m.mouseDrag = true
		m.follow(i)
		m.player.Play(audio.CueMove)
		m.refresh()

	case msg.Action == tea.MouseActionMotion && m.mouseDrag:
		m.session.DragOver(region, m.contentY(region, msg.Y), m.boxOf(region))
		m.refresh()

	case msg.Action == tea.MouseActionRelease && m.mouseDrag:
		m.session.Drop(region)
		if i, ok := m.session.Dragged(); ok {
			m.follow(i)
		}
		m.session.EndDrag()
		m.mouseDrag = false
		m.refresh()
	}
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	paneHeight := max(1, height-headerHeight-footerHeight-2)
	for r := range m.panes {
		w := max(1, m.paneWidth(game.Region(r))-2)
		if !m.ready {
			m.panes[r] = viewport.New(w, paneHeight)
			m.panes[r].MouseWheelEnabled = false
		} else {
			m.panes[r].Width = w
			m.panes[r].Height = paneHeight
		}
	}
	m.ready = true
	m.refresh()
}

func (m *Model) scrollBy(r game.Region, delta int) {
	if !m.ready {
		return
	}
	m.panes[r].SetYOffset(m.panes[r].YOffset + delta)
	m.scroll.Scrolled(r, m.panes[r].YOffset, m.setOffset)
}

func (m *Model) setOffset(r game.Region, offset int) {
	m.panes[r].SetYOffset(offset)
}

// ensureVisible scrolls the focused pane so the cursor card is on screen.
func (m *Model) ensureVisible() {
	i, ok := m.cursorCard()
	if !ok || !m.ready {
		return
	}
	box, ok := m.boxes[m.focus][i]
	if !ok {
		return
	}
	pane := &m.panes[m.focus]
	top, bottom := int(box.Top), int(box.Top+box.Height)
	switch {
	case top < pane.YOffset:
		m.scrollBy(m.focus, top-pane.YOffset)
	case bottom > pane.YOffset+pane.Height:
		m.scrollBy(m.focus, bottom-pane.YOffset-pane.Height)
	}
}

func (m *Model) paneWidth(r game.Region) int {
	left := m.width / 2
	if r == game.RegionSource {
		return left
	}
	return m.width - left
}

func (m *Model) regionAt(x int) game.Region {
	if x < m.width/2 {
		return game.RegionSource
	}
	return game.RegionTarget
}

// paneTop is the screen row of the first content line in a pane.
func (m *Model) paneTop() int { return headerHeight + 1 }

// contentY converts a screen row to pane content coordinates, taking the
// middle of the cell.
func (m *Model) contentY(r game.Region, y int) float64 {
	return float64(y-m.paneTop()+m.panes[r].YOffset) + 0.5
}

// cardAt returns the verse whose card is drawn at screen row y. Rows
// outside the pane's visible area hit nothing.
func (m *Model) cardAt(r game.Region, y int) (int, bool) {
	if y < m.paneTop() || y >= m.paneTop()+m.panes[r].Height {
		return 0, false
	}
	cy := m.contentY(r, y)
	for i, box := range m.boxes[r] {
		if cy >= box.Top && cy < box.Top+box.Height {
			return i, true
		}
	}
	return 0, false
}

func (m *Model) boxOf(r game.Region) func(int) game.Box {
	return func(i int) game.Box { return m.boxes[r][i] }
}
