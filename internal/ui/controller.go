package ui

import (
	"context"
	"sync"

	"github.com/guttosm/postage-comparator/internal/client"
	"github.com/guttosm/postage-comparator/internal/domain/model"
	"github.com/guttosm/postage-comparator/internal/logger"
)

// Form identifies which form a field edit targets.
type Form int

const (
	FormSettings Form = iota
	FormItem
	FormPackaging
	FormDestination
)

// Controller owns AppState and performs every API call.
// API calls run without the lock held; state changes happen under it.
type Controller struct {
	api API

	mu    sync.Mutex
	state AppState
}

// NewController creates a controller in the initializing phase.
func NewController(api API) *Controller {
	return &Controller{api: api, state: NewAppState()}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() AppState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// CanQuote reports whether settings, items and packaging all exist.
func (c *Controller) CanQuote() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.CanQuote()
}

func (c *Controller) update(fn func(s *AppState)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.state)
}

// Load fetches settings, items and packaging. Missing settings force the settings modal open.
func (c *Controller) Load(ctx context.Context) {
	c.update(func(s *AppState) {
		s.Phase = PhaseInitializing
		s.IsLoading = true
		s.LoadError = ""
	})

	settings, items, packaging, err := c.fetchAll(ctx)

	c.update(func(s *AppState) {
		s.IsLoading = false
		if err != nil {
			s.Phase = PhaseReadyWithError
			s.LoadError = client.Message(err)
			return
		}

		s.Phase = PhaseReady
		s.Settings = settings
		if theme := settings.Theme(); theme != "" {
			s.Theme = theme
		}
		s.Items = items
		s.Packaging = packaging
		pruneLines(s, "")
		if s.Quote.PackagingID == "" && len(packaging) > 0 {
			s.Quote.PackagingID = packaging[0].ID
		}

		if settings == nil {
			s.SettingsModal = ModalState[SettingsForm]{Show: true}
		}
	})
	if err != nil {
		log := logger.Component("ui")
		log.Warn().Err(err).Msg("Initial load failed")
	}
}

func (c *Controller) fetchAll(ctx context.Context) (*model.OriginSettings, []model.Item, []model.Packaging, error) {
	settings, err := c.api.GetOriginSettings(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	items, err := c.api.ListItems(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	packaging, err := c.api.ListPackaging(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return settings, items, packaging, nil
}

// SetView switches the main tab without fetching.
func (c *Controller) SetView(v View) {
	c.update(func(s *AppState) { s.ActiveView = v })
}

// SetFormField writes the i-th text field of form.
func (c *Controller) SetFormField(form Form, i int, value string) {
	c.update(func(s *AppState) {
		switch form {
		case FormSettings:
			s.SettingsModal.Form.Set(i, value)
		case FormItem:
			s.ItemModal.Form.Set(i, value)
		case FormPackaging:
			s.PackagingModal.Form.Set(i, value)
		case FormDestination:
			s.Quote.Set(i, value)
		}
	})
}

// OpenSettings shows the settings modal filled from the stored settings.
func (c *Controller) OpenSettings() {
	c.update(func(s *AppState) {
		s.SettingsModal = ModalState[SettingsForm]{
			Show:    true,
			Editing: s.Settings != nil,
			Form:    settingsFormFrom(s.Settings),
		}
	})
}

// CloseSettings hides the settings modal. It refuses, returning false, while no
// settings have been saved.
func (c *Controller) CloseSettings() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Settings == nil {
		return false
	}
	c.state.SettingsModal.Show = false
	c.state.SettingsModal.Error = ""
	return true
}

// SaveSettings validates and saves the settings form. The modal closes only when the save succeeds.
func (c *Controller) SaveSettings(ctx context.Context) {
	var settings model.OriginSettings
	if !c.begin(func(s *AppState) bool {
		if s.SettingsModal.Loading {
			return false
		}
		var msg string
		settings, msg = validateSettings(s.SettingsModal.Form)
		s.SettingsModal.Error = msg
		s.SettingsModal.Loading = msg == ""
		return msg == ""
	}) {
		return
	}

	saved, err := c.api.UpdateOriginSettings(ctx, settings)

	c.update(func(s *AppState) {
		s.SettingsModal.Loading = false
		if err != nil {
			s.SettingsModal.Error = client.Message(err)
			return
		}
		s.Settings = saved
		if theme := saved.Theme(); theme != "" {
			s.Theme = theme
		}
		s.SettingsModal = ModalState[SettingsForm]{}
	})
}

// SetTheme applies theme at once and persists it. A failure is shown inline and
// the selection is kept.
func (c *Controller) SetTheme(ctx context.Context, theme string) {
	c.update(func(s *AppState) {
		s.Theme = theme
		s.ThemeError = ""
	})

	saved, err := c.api.UpdateThemePreference(ctx, theme)

	c.update(func(s *AppState) {
		if err != nil {
			s.ThemeError = client.Message(err)
			return
		}
		s.Settings = saved
	})
}

// OpenItems shows the items tab and re-fetches the list.
func (c *Controller) OpenItems(ctx context.Context) {
	c.update(func(s *AppState) {
		s.ActiveView = ViewItems
		s.ItemsError = ""
	})
	c.refreshItems(ctx, "")
}

// OpenPackaging shows the packaging tab and re-fetches the list.
func (c *Controller) OpenPackaging(ctx context.Context) {
	c.update(func(s *AppState) {
		s.ActiveView = ViewPackaging
		s.PackagingError = ""
	})
	c.refreshPackaging(ctx, "")
}

// StartCreateItem opens an empty item modal.
func (c *Controller) StartCreateItem() {
	c.update(func(s *AppState) {
		s.ItemModal = ModalState[ItemForm]{Show: true}
	})
}

// StartEditItem opens the item modal for id. Unknown ids are ignored.
func (c *Controller) StartEditItem(id string) {
	c.update(func(s *AppState) {
		for _, item := range s.Items {
			if item.ID == id {
				s.ItemModal = ModalState[ItemForm]{Show: true, Editing: true, EditingID: id, Form: itemFormFrom(item)}
				return
			}
		}
	})
}

// CloseItemModal discards the item form.
func (c *Controller) CloseItemModal() {
	c.update(func(s *AppState) { s.ItemModal = ModalState[ItemForm]{} })
}

// SaveItem creates or updates the item, then re-fetches the list.
func (c *Controller) SaveItem(ctx context.Context) {
	var (
		input     model.ItemInput
		editingID string
	)
	if !c.begin(func(s *AppState) bool {
		if s.ItemModal.Loading {
			return false
		}
		var msg string
		input, msg = validateItem(s.ItemModal.Form, s.ItemModal.Editing)
		editingID = s.ItemModal.EditingID
		s.ItemModal.Error = msg
		s.ItemModal.Loading = msg == ""
		return msg == ""
	}) {
		return
	}

	var err error
	if editingID != "" {
		_, err = c.api.UpdateItem(ctx, editingID, input)
	} else {
		_, err = c.api.CreateItem(ctx, input)
	}
	if err != nil {
		c.update(func(s *AppState) {
			s.ItemModal.Loading = false
			s.ItemModal.Error = client.Message(err)
		})
		return
	}

	c.update(func(s *AppState) { s.ItemModal = ModalState[ItemForm]{} })
	c.refreshItems(ctx, "")
}

// DeleteItem deletes the item and blanks every quote line that referenced it.
func (c *Controller) DeleteItem(ctx context.Context, id string) {
	c.update(func(s *AppState) { s.ItemsError = "" })

	if err := c.api.DeleteItem(ctx, id); err != nil {
		c.update(func(s *AppState) { s.ItemsError = client.Message(err) })
		return
	}
	c.refreshItems(ctx, id)
}

// refreshItems replaces the item list with the server's. deletedID, when set, is
// dropped locally if the re-fetch fails.
func (c *Controller) refreshItems(ctx context.Context, deletedID string) {
	items, err := c.api.ListItems(ctx)

	c.update(func(s *AppState) {
		if err != nil {
			s.ItemsError = client.Message(err)
			items = removeItem(s.Items, deletedID)
		}
		s.Items = items
		pruneLines(s, deletedID)
	})
}

// StartCreatePackaging opens an empty packaging modal.
func (c *Controller) StartCreatePackaging() {
	c.update(func(s *AppState) {
		s.PackagingModal = ModalState[PackagingForm]{Show: true}
	})
}

// StartEditPackaging opens the packaging modal for id. Unknown ids are ignored.
func (c *Controller) StartEditPackaging(id string) {
	c.update(func(s *AppState) {
		for _, p := range s.Packaging {
			if p.ID == id {
				s.PackagingModal = ModalState[PackagingForm]{Show: true, Editing: true, EditingID: id, Form: packagingFormFrom(p)}
				return
			}
		}
	})
}

// ClosePackagingModal discards the packaging form.
func (c *Controller) ClosePackagingModal() {
	c.update(func(s *AppState) { s.PackagingModal = ModalState[PackagingForm]{} })
}

// SavePackaging creates or updates the packaging, then re-fetches the list.
func (c *Controller) SavePackaging(ctx context.Context) {
	var (
		input     model.PackagingInput
		editingID string
	)
	if !c.begin(func(s *AppState) bool {
		if s.PackagingModal.Loading {
			return false
		}
		var msg string
		input, msg = validatePackaging(s.PackagingModal.Form, s.PackagingModal.Editing)
		editingID = s.PackagingModal.EditingID
		s.PackagingModal.Error = msg
		s.PackagingModal.Loading = msg == ""
		return msg == ""
	}) {
		return
	}

	var err error
	if editingID != "" {
		_, err = c.api.UpdatePackaging(ctx, editingID, input)
	} else {
		_, err = c.api.CreatePackaging(ctx, input)
	}
	if err != nil {
		c.update(func(s *AppState) {
			s.PackagingModal.Loading = false
			s.PackagingModal.Error = client.Message(err)
		})
		return
	}

	c.update(func(s *AppState) { s.PackagingModal = ModalState[PackagingForm]{} })
	c.refreshPackaging(ctx, "")
}

// DeletePackaging deletes the packaging. If it was selected for the quote, the
// selection moves to the first remaining packaging.
func (c *Controller) DeletePackaging(ctx context.Context, id string) {
	c.update(func(s *AppState) { s.PackagingError = "" })

	if err := c.api.DeletePackaging(ctx, id); err != nil {
		c.update(func(s *AppState) { s.PackagingError = client.Message(err) })
		return
	}
	c.refreshPackaging(ctx, id)
}

func (c *Controller) refreshPackaging(ctx context.Context, deletedID string) {
	packaging, err := c.api.ListPackaging(ctx)

	c.update(func(s *AppState) {
		if err != nil {
			s.PackagingError = client.Message(err)
			packaging = removePackaging(s.Packaging, deletedID)
		}
		s.Packaging = packaging
		reconcilePackaging(s, deletedID)
	})
}

// AddLine appends an unselected quote line.
func (c *Controller) AddLine() {
	c.update(func(s *AppState) { s.Quote.Lines = append(s.Quote.Lines, emptyLine()) })
}

// RemoveLine removes the line at index. Removing the only line leaves one blank line.
func (c *Controller) RemoveLine(index int) {
	c.update(func(s *AppState) {
		if index < 0 || index >= len(s.Quote.Lines) {
			return
		}
		s.Quote.Lines = append(s.Quote.Lines[:index:index], s.Quote.Lines[index+1:]...)
		if len(s.Quote.Lines) == 0 {
			s.Quote.Lines = []QuoteLine{emptyLine()}
		}
	})
}

// SetLineItem selects itemID on the line at index.
func (c *Controller) SetLineItem(index int, itemID string) {
	c.update(func(s *AppState) {
		if index >= 0 && index < len(s.Quote.Lines) {
			s.Quote.Lines[index].ItemID = itemID
		}
	})
}

// SetLineQuantity sets the quantity of the line at index. Values below 1 become 1.
func (c *Controller) SetLineQuantity(index, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	c.update(func(s *AppState) {
		if index >= 0 && index < len(s.Quote.Lines) {
			s.Quote.Lines[index].Quantity = quantity
		}
	})
}

// SetQuoteField writes the i-th destination field of the quote form.
func (c *Controller) SetQuoteField(i int, value string) {
	c.SetFormField(FormDestination, i, value)
}

// SelectPackaging sets the packaging of the quote form.
func (c *Controller) SelectPackaging(id string) {
	c.update(func(s *AppState) { s.Quote.PackagingID = id })
}

// SetExpress sets the express flag of the quote form.
func (c *Controller) SetExpress(express bool) {
	c.update(func(s *AppState) { s.Quote.IsExpress = express })
}

// SubmitQuote sends the quote form without its unselected lines. On failure the
// previous result stays displayed next to the new error.
func (c *Controller) SubmitQuote(ctx context.Context) {
	var req model.ShipmentRequest
	if !c.begin(func(s *AppState) bool {
		if s.QuoteLoading {
			return false
		}
		if s.Settings == nil {
			s.QuoteError = "Origin settings are required before quoting."
			return false
		}
		if !s.CanQuote() {
			s.QuoteError = "Complete settings, items, and packaging first."
			return false
		}
		req = s.Quote.Request()
		if msg := validateShipment(req); msg != "" {
			s.QuoteError = msg
			return false
		}
		s.QuoteLoading = true
		return true
	}) {
		return
	}

	result, err := c.api.CreateQuote(ctx, req)

	c.update(func(s *AppState) {
		s.QuoteLoading = false
		if err != nil {
			s.QuoteError = client.Message(err)
			return
		}
		s.QuoteResult = result
		s.QuoteError = ""
	})
	if err != nil {
		log := logger.Component("ui")
		log.Debug().Err(err).Msg("Quote request failed")
	}
}

// begin runs fn under the lock and reports whether the caller should go on.
func (c *Controller) begin(fn func(s *AppState) bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fn(&c.state)
}

// pruneLines blanks quote lines whose item is gone, or equals deletedID, keeping at least one line.
func pruneLines(s *AppState, deletedID string) {
	known := make(map[string]struct{}, len(s.Items))
	for _, it := range s.Items {
		known[it.ID] = struct{}{}
	}
	for i, line := range s.Quote.Lines {
		if line.ItemID == "" {
			continue
		}
		if _, ok := known[line.ItemID]; !ok || line.ItemID == deletedID {
			s.Quote.Lines[i].ItemID = ""
		}
	}
	if len(s.Quote.Lines) == 0 {
		s.Quote.Lines = []QuoteLine{emptyLine()}
	}
}

// reconcilePackaging keeps the quote's packaging pointing at an existing profile.
// Only a selection that was deleted or vanished moves to the first remaining profile.
func reconcilePackaging(s *AppState, deletedID string) {
	selected := s.Quote.PackagingID
	if selected == "" {
		return
	}
	if selected != deletedID && s.PackagingName(selected) != "" {
		return
	}
	s.Quote.PackagingID = ""
	if len(s.Packaging) > 0 {
		s.Quote.PackagingID = s.Packaging[0].ID
	}
}

func removeItem(items []model.Item, id string) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if id == "" || it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

func removePackaging(packaging []model.Packaging, id string) []model.Packaging {
	out := make([]model.Packaging, 0, len(packaging))
	for _, p := range packaging {
		if id == "" || p.ID != id {
			out = append(out, p)
		}
	}
	return out
}
