package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/postage-comparator/internal/domain/model"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = press(t, m, runes(string(r)))
	}
	return m
}

// finish runs a command synchronously and feeds its message back.
func finish(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	m, _ = press(t, m, cmd())
	return m
}

func TestModel_FirstRunForcesSettings(t *testing.T) {
	c, api := newTestController(t)
	api.On("GetOriginSettings", mock.Anything).Return(nil, nil)
	api.On("ListItems", mock.Anything).Return([]model.Item{}, nil)
	api.On("ListPackaging", mock.Anything).Return([]model.Packaging{}, nil)

	m := NewModel(context.Background(), c)
	m = finish(t, m, m.remote(LoadEvent{}))

	require.Equal(t, modeSettings, m.mode)
	require.Len(t, m.inputs, len(SettingsFields))
	assert.Contains(t, m.View(), "Origin settings are required before quoting.")

	m = typeText(t, m, "2000")
	assert.Equal(t, "2000", c.Snapshot().SettingsModal.Form.Postcode)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeSettings, m.mode, "settings cannot be dismissed before they exist")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.focus)
	m = typeText(t, m, "Sydney")
	assert.Equal(t, "Sydney", c.Snapshot().SettingsModal.Form.Suburb)

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, "State is required", c.Snapshot().SettingsModal.Error)
}

func TestModel_ItemsTab(t *testing.T) {
	c, api := loadedController(t)
	api.On("ListItems", mock.Anything).Return(testItems(), nil).Once()

	m := NewModel(context.Background(), c)
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ViewItems, m.state.ActiveView)
	m = finish(t, m, cmd)

	m, _ = press(t, m, runes("j"))
	assert.Equal(t, 1, m.cursor)
	assert.Contains(t, m.View(), cursorMark+" Gadget")

	m, _ = press(t, m, runes("e"))
	require.Equal(t, modeItem, m.mode)
	assert.Equal(t, "item-2", c.Snapshot().ItemModal.EditingID)
	assert.Contains(t, m.View(), "Edit item")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeBrowse, m.mode)

	m, _ = press(t, m, runes("a"))
	require.Equal(t, modeItem, m.mode)
	m = typeText(t, m, "Mug")
	assert.Equal(t, "Mug", c.Snapshot().ItemModal.Form.Name)
	assert.Contains(t, m.View(), "Add item")
}

func TestModel_QuoteEditing(t *testing.T) {
	c, api := loadedController(t)
	api.On("CreateQuote", mock.Anything, mock.MatchedBy(func(req model.ShipmentRequest) bool {
		return req.DestinationPostcode == "3000" && req.PackagingID == "pack-2" && req.IsExpress &&
			len(req.Items) == 1 && req.Items[0] == model.ShipmentItemSelection{ItemID: "item-1", Quantity: 2}
	})).Return(testQuoteResult(), nil)

	m := NewModel(context.Background(), c)

	m, _ = press(t, m, runes("]"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, QuoteLine{ItemID: "item-1", Quantity: 2}, c.Snapshot().Quote.Lines[0])

	m, _ = press(t, m, runes("+"))
	assert.Len(t, c.Snapshot().Quote.Lines, 2)
	assert.Equal(t, 1, m.lineCursor)
	m, _ = press(t, m, runes("-"))
	assert.Len(t, c.Snapshot().Quote.Lines, 1)

	m, _ = press(t, m, runes("p"))
	m, _ = press(t, m, runes("x"))
	s := c.Snapshot()
	assert.Equal(t, "pack-2", s.Quote.PackagingID)
	assert.True(t, s.Quote.IsExpress)

	m, _ = press(t, m, runes("e"))
	require.Equal(t, modeDestination, m.mode)
	m = typeText(t, m, "3000")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "3000", c.Snapshot().Quote.DestinationPostcode)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = finish(t, m, cmd)
	assert.Contains(t, m.View(), "Total weight: 500 g (0.5 kg)")
}

func TestModel_GlobalKeys(t *testing.T) {
	c, _ := loadedController(t)
	m := NewModel(context.Background(), c)

	m, _ = press(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)

	m, _ = press(t, m, runes("s"))
	assert.Equal(t, modeSettings, m.mode)
	assert.Equal(t, "2000", m.inputs[0].Value())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeBrowse, m.mode)

	_, cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCycle(t *testing.T) {
	ids := []string{"a", "b", "c"}
	assert.Equal(t, "a", cycle(ids, "", 1))
	assert.Equal(t, "b", cycle(ids, "a", 1))
	assert.Equal(t, "a", cycle(ids, "c", 1))
	assert.Equal(t, "c", cycle(ids, "a", -1))
	assert.Empty(t, cycle(nil, "a", 1))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, clamp(-1, 3))
	assert.Equal(t, 2, clamp(5, 3))
	assert.Equal(t, 1, clamp(1, 3))
	assert.Equal(t, 0, clamp(1, 0))
}
