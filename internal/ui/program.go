package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// refreshMsg tells the model to re-read the controller state.
type refreshMsg struct{}

// formMode is the form currently bound to the text inputs.
type formMode int

const (
	modeBrowse formMode = iota
	modeSettings
	modeItem
	modePackaging
	modeDestination
)

// Model is the bubbletea model of the terminal frontend.
type Model struct {
	ctx  context.Context
	ctrl *Controller

	state AppState

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	mode        formMode
	editingDest bool
	inputs      []textinput.Model
	focus       int

	cursor     int
	lineCursor int

	width  int
	height int
}

// NewModel creates the program model. State is loaded by Init.
func NewModel(ctx context.Context, ctrl *Controller) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		ctx:     ctx,
		ctrl:    ctrl,
		state:   ctrl.Snapshot(),
		keys:    defaultKeyMap(),
		help:    help.New(),
		spinner: s,
	}
}

// Run starts the interactive program and blocks until the user quits.
func Run(ctx context.Context, ctrl *Controller, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(NewModel(ctx, ctrl), opts...)
	_, err := p.Run()
	return err
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.remote(LoadEvent{}))
}

// remote runs ev off the update loop.
func (m Model) remote(ev Event) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		ctrl.Dispatch(ctx, ev)
		return refreshMsg{}
	}
}

// send dispatches ev inline when it is local, otherwise as a command.
func (m Model) send(ev Event) (Model, tea.Cmd) {
	if Remote(ev) {
		return m, m.remote(ev)
	}
	m.ctrl.Dispatch(m.ctx, ev)
	return m.refresh(), nil
}

// refresh re-reads the state and rebinds the inputs when the active form changed.
func (m Model) refresh() Model {
	m.state = m.ctrl.Snapshot()

	mode := m.activeMode()
	if mode != m.mode {
		m.mode = mode
		m.bindInputs()
	}

	m.cursor = clamp(m.cursor, m.listLen())
	m.lineCursor = clamp(m.lineCursor, len(m.state.Quote.Lines))
	return m
}

func (m Model) activeMode() formMode {
	switch {
	case m.state.SettingsModal.Show:
		return modeSettings
	case m.state.ItemModal.Show:
		return modeItem
	case m.state.PackagingModal.Show:
		return modePackaging
	case m.editingDest:
		return modeDestination
	default:
		return modeBrowse
	}
}

func (m *Model) bindInputs() {
	var (
		fields []Field
		values []string
	)
	switch m.mode {
	case modeSettings:
		fields, values = SettingsFields, m.state.SettingsModal.Form.Values()
	case modeItem:
		fields, values = ItemFields, m.state.ItemModal.Form.Values()
	case modePackaging:
		fields, values = PackagingFields, m.state.PackagingModal.Form.Values()
	case modeDestination:
		fields, values = DestinationFields, m.state.Quote.Values()
	default:
		m.inputs = nil
		m.focus = 0
		return
	}

	m.inputs = make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Placeholder = f.Placeholder
		in.CharLimit = 120
		in.Width = 40
		in.SetValue(values[i])
		m.inputs[i] = in
	}
	m.focus = 0
	m.inputs[0].Focus()
}

func (m Model) formTarget() Form {
	switch m.mode {
	case modeItem:
		return FormItem
	case modePackaging:
		return FormPackaging
	case modeDestination:
		return FormDestination
	default:
		return FormSettings
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case refreshMsg:
		return m.refresh(), nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m.refresh(), cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.mode != modeBrowse {
			return m.updateForm(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m.closeForm()

	case key.Matches(msg, m.keys.Save):
		switch m.mode {
		case modeSettings:
			return m.send(SaveSettingsEvent{})
		case modeItem:
			return m.send(SaveItemEvent{})
		case modePackaging:
			return m.send(SavePackagingEvent{})
		default:
			m.editingDest = false
			return m.refresh(), nil
		}

	case key.Matches(msg, m.keys.FormTheme):
		return m.send(SetThemeEvent{Theme: NextTheme(m.state.Theme)})

	case key.Matches(msg, m.keys.NextField):
		return m.moveFocus(1), nil

	case key.Matches(msg, m.keys.PrevField):
		return m.moveFocus(-1), nil
	}

	if len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.ctrl.Dispatch(m.ctx, SetFieldEvent{Form: m.formTarget(), Index: m.focus, Value: m.inputs[m.focus].Value()})
	return m.refresh(), cmd
}

func (m Model) closeForm() (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeSettings:
		return m.send(CloseSettingsEvent{})
	case modeItem:
		return m.send(CloseItemModalEvent{})
	case modePackaging:
		return m.send(ClosePackagingModalEvent{})
	default:
		m.editingDest = false
		return m.refresh(), nil
	}
}

func (m Model) moveFocus(delta int) Model {
	if len(m.inputs) == 0 {
		return m
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.NextTab):
		return m.switchView(1)
	case key.Matches(msg, m.keys.PrevTab):
		return m.switchView(-1)
	case key.Matches(msg, m.keys.Settings):
		return m.send(OpenSettingsEvent{})
	case key.Matches(msg, m.keys.Theme):
		return m.send(SetThemeEvent{Theme: NextTheme(m.state.Theme)})
	}

	switch m.state.ActiveView {
	case ViewItems:
		return m.updateItems(msg)
	case ViewPackaging:
		return m.updatePackaging(msg)
	default:
		return m.updateQuote(msg)
	}
}

func (m Model) switchView(delta int) (tea.Model, tea.Cmd) {
	next := Views[(int(m.state.ActiveView)+delta+len(Views))%len(Views)]
	m.cursor = 0
	switch next {
	case ViewItems:
		m.ctrl.SetView(ViewItems)
		m = m.refresh()
		return m, m.remote(OpenItemsEvent{})
	case ViewPackaging:
		m.ctrl.SetView(ViewPackaging)
		m = m.refresh()
		return m, m.remote(OpenPackagingEvent{})
	default:
		return m.send(ShowQuoteEvent{})
	}
}

func (m Model) updateItems(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.state.Items
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = clamp(m.cursor-1, len(items))
	case key.Matches(msg, m.keys.Down):
		m.cursor = clamp(m.cursor+1, len(items))
	case key.Matches(msg, m.keys.Add):
		return m.send(StartCreateItemEvent{})
	case key.Matches(msg, m.keys.Edit), key.Matches(msg, m.keys.Submit):
		if len(items) > 0 {
			return m.send(StartEditItemEvent{ID: items[m.cursor].ID})
		}
	case key.Matches(msg, m.keys.Delete):
		if len(items) > 0 {
			return m.send(DeleteItemEvent{ID: items[m.cursor].ID})
		}
	}
	return m, nil
}

func (m Model) updatePackaging(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	packaging := m.state.Packaging
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = clamp(m.cursor-1, len(packaging))
	case key.Matches(msg, m.keys.Down):
		m.cursor = clamp(m.cursor+1, len(packaging))
	case key.Matches(msg, m.keys.Add):
		return m.send(StartCreatePackagingEvent{})
	case key.Matches(msg, m.keys.Edit), key.Matches(msg, m.keys.Submit):
		if len(packaging) > 0 {
			return m.send(StartEditPackagingEvent{ID: packaging[m.cursor].ID})
		}
	case key.Matches(msg, m.keys.Delete):
		if len(packaging) > 0 {
			return m.send(DeletePackagingEvent{ID: packaging[m.cursor].ID})
		}
	}
	return m, nil
}

func (m Model) updateQuote(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lines := m.state.Quote.Lines
	line := lines[m.lineCursor]

	switch {
	case key.Matches(msg, m.keys.Up):
		m.lineCursor = clamp(m.lineCursor-1, len(lines))
	case key.Matches(msg, m.keys.Down):
		m.lineCursor = clamp(m.lineCursor+1, len(lines))
	case key.Matches(msg, m.keys.Left):
		return m.send(SetLineQuantityEvent{Index: m.lineCursor, Quantity: line.Quantity - 1})
	case key.Matches(msg, m.keys.Right):
		return m.send(SetLineQuantityEvent{Index: m.lineCursor, Quantity: line.Quantity + 1})
	case key.Matches(msg, m.keys.NextItem):
		return m.send(SetLineItemEvent{Index: m.lineCursor, ItemID: m.cycleItem(line.ItemID, 1)})
	case key.Matches(msg, m.keys.PrevItem):
		return m.send(SetLineItemEvent{Index: m.lineCursor, ItemID: m.cycleItem(line.ItemID, -1)})
	case key.Matches(msg, m.keys.AddLine):
		m.lineCursor = len(lines)
		return m.send(AddLineEvent{})
	case key.Matches(msg, m.keys.RemoveLine):
		return m.send(RemoveLineEvent{Index: m.lineCursor})
	case key.Matches(msg, m.keys.Packaging):
		return m.send(SelectPackagingEvent{ID: m.cyclePackaging(m.state.Quote.PackagingID)})
	case key.Matches(msg, m.keys.Express):
		return m.send(SetExpressEvent{Express: !m.state.Quote.IsExpress})
	case key.Matches(msg, m.keys.Edit):
		m.editingDest = true
		return m.refresh(), nil
	case key.Matches(msg, m.keys.Submit):
		return m.send(SubmitQuoteEvent{})
	}
	return m, nil
}

func (m Model) cycleItem(current string, delta int) string {
	ids := make([]string, len(m.state.Items))
	for i, it := range m.state.Items {
		ids[i] = it.ID
	}
	return cycle(ids, current, delta)
}

func (m Model) cyclePackaging(current string) string {
	ids := make([]string, len(m.state.Packaging))
	for i, p := range m.state.Packaging {
		ids[i] = p.ID
	}
	return cycle(ids, current, 1)
}

func cycle(ids []string, current string, delta int) string {
	if len(ids) == 0 {
		return ""
	}
	for i, id := range ids {
		if id == current {
			return ids[(i+delta+len(ids))%len(ids)]
		}
	}
	return ids[0]
}

func (m Model) listLen() int {
	switch m.state.ActiveView {
	case ViewItems:
		return len(m.state.Items)
	case ViewPackaging:
		return len(m.state.Packaging)
	default:
		return 0
	}
}

func (m Model) busy() bool {
	s := m.state
	return s.IsLoading || s.QuoteLoading || s.SettingsModal.Loading || s.ItemModal.Loading || s.PackagingModal.Loading
}

// View implements tea.Model
func (m Model) View() string {
	st := StylesFor(m.state.Theme)

	header := st.Title.Render("Postage Comparator") + "  " + RenderOrigin(st, m.state.Settings) +
		st.Subtle.Render("  theme: "+st.Name)
	if m.busy() {
		header += " " + m.spinner.View()
	}

	parts := []string{header}
	if banner := RenderStatusBanner(st, m.state.IsLoading, m.state.LoadError); banner != "" {
		parts = append(parts, banner)
	}
	if m.state.ThemeError != "" && m.mode != modeSettings {
		parts = append(parts, st.Error.Render(m.state.ThemeError))
	}
	parts = append(parts, RenderTabs(st, m.state.ActiveView), m.body(st))

	if m.mode == modeBrowse {
		parts = append(parts, m.help.View(m.keys))
	} else {
		parts = append(parts, m.help.View(formKeyMap{keys: m.keys}))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) body(st Styles) string {
	switch m.mode {
	case modeSettings:
		return RenderModal(st, SettingsModalProps(st, m.state, m.inputViews(), m.focus))
	case modeItem:
		return RenderModal(st, ItemModalProps(m.state, m.inputViews(), m.focus))
	case modePackaging:
		return RenderModal(st, PackagingModalProps(m.state, m.inputViews(), m.focus))
	}

	switch m.state.ActiveView {
	case ViewItems:
		return RenderItemsPanel(st, m.state.Items, ListPanelProps{Cursor: m.cursor, Error: m.state.ItemsError})
	case ViewPackaging:
		return RenderPackagingPanel(st, m.state.Packaging, ListPanelProps{Cursor: m.cursor, Error: m.state.PackagingError})
	default:
		props := QuotePanelProps{State: m.state, LineCursor: m.lineCursor}
		if m.mode == modeDestination {
			props.Destination = m.inputViews()
		}
		return RenderQuotePanel(st, props)
	}
}

func (m Model) inputViews() []string {
	views := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		views[i] = strings.TrimRight(in.View(), " ")
	}
	return views
}

func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
