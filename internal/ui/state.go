// Package ui is the terminal frontend of the postage comparator.
//
// AppState is the single source of truth. The Controller owns it, performs every
// API call and applies the reconciliation rules after mutations. Render functions
// are pure views over a snapshot, and the bubbletea Model translates key presses
// into Events that the Controller dispatches.
package ui

import (
	"strconv"
	"strings"

	"github.com/guttosm/postage-comparator/internal/domain/model"
)

// Phase is the lifecycle of the initial data load.
type Phase int

const (
	PhaseInitializing Phase = iota
	PhaseReady
	PhaseReadyWithError
)

func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhaseReady:
		return "ready"
	case PhaseReadyWithError:
		return "ready-with-error"
	default:
		return "unknown"
	}
}

// View is the tab shown in the main area.
type View int

const (
	ViewQuote View = iota
	ViewItems
	ViewPackaging
)

// Views lists the tabs in display order.
var Views = []View{ViewQuote, ViewItems, ViewPackaging}

func (v View) String() string {
	switch v {
	case ViewItems:
		return "Items"
	case ViewPackaging:
		return "Packaging"
	default:
		return "Quote"
	}
}

// Field describes one editable text field of a form.
type Field struct {
	Label       string
	Placeholder string
}

// Form field tables, in tab order.
var (
	SettingsFields = []Field{
		{Label: "Postcode", Placeholder: "2000"},
		{Label: "Suburb", Placeholder: "Sydney"},
		{Label: "State", Placeholder: "NSW"},
		{Label: "Country", Placeholder: "AU"},
	}
	ItemFields = []Field{
		{Label: "Name"},
		{Label: "Description"},
		{Label: "Unit weight (g)", Placeholder: "250"},
	}
	PackagingFields = []Field{
		{Label: "Name"},
		{Label: "Description"},
		{Label: "Length (cm)", Placeholder: "22"},
		{Label: "Width (cm)", Placeholder: "16"},
		{Label: "Height (cm)", Placeholder: "7"},
		{Label: "Internal volume (cm³)", Placeholder: "auto"},
		{Label: "Packaging cost (AUD)", Placeholder: "1.50"},
	}
	DestinationFields = []Field{
		{Label: "Postcode", Placeholder: "3000"},
		{Label: "Suburb", Placeholder: "Melbourne"},
		{Label: "State", Placeholder: "VIC"},
		{Label: "Country", Placeholder: "AU"},
	}
)

// SettingsForm is the editable copy of the origin settings.
type SettingsForm struct {
	Postcode        string
	Suburb          string
	State           string
	Country         string
	ThemePreference *string
}

func settingsFormFrom(s *model.OriginSettings) SettingsForm {
	if s == nil {
		return SettingsForm{}
	}
	return SettingsForm{
		Postcode:        s.Postcode,
		Suburb:          s.Suburb,
		State:           s.State,
		Country:         s.Country,
		ThemePreference: s.ThemePreference,
	}
}

// Values returns the text fields in SettingsFields order.
func (f SettingsForm) Values() []string {
	return []string{f.Postcode, f.Suburb, f.State, f.Country}
}

// Set writes the i-th text field.
func (f *SettingsForm) Set(i int, v string) {
	switch i {
	case 0:
		f.Postcode = v
	case 1:
		f.Suburb = v
	case 2:
		f.State = v
	case 3:
		f.Country = v
	}
}

// ItemForm is the editable copy of an item. Numbers stay text until saved.
type ItemForm struct {
	Name            string
	Description     string
	UnitWeightGrams string
}

func itemFormFrom(item model.Item) ItemForm {
	form := ItemForm{Name: item.Name, UnitWeightGrams: strconv.Itoa(item.UnitWeightGrams)}
	if item.Description != nil {
		form.Description = *item.Description
	}
	return form
}

// Values returns the text fields in ItemFields order.
func (f ItemForm) Values() []string {
	return []string{f.Name, f.Description, f.UnitWeightGrams}
}

// Set writes the i-th text field.
func (f *ItemForm) Set(i int, v string) {
	switch i {
	case 0:
		f.Name = v
	case 1:
		f.Description = v
	case 2:
		f.UnitWeightGrams = v
	}
}

// PackagingForm is the editable copy of a packaging profile.
type PackagingForm struct {
	Name                  string
	Description           string
	LengthCm              string
	WidthCm               string
	HeightCm              string
	InternalVolumeCubicCm string
	PackagingCostAud      string
}

// packagingFormFrom leaves the volume blank when it is the plain L×W×H product,
// so a dimension edit lets the API derive the volume again.
func packagingFormFrom(p model.Packaging) PackagingForm {
	form := PackagingForm{
		Name:             p.Name,
		LengthCm:         strconv.Itoa(p.LengthCm),
		WidthCm:          strconv.Itoa(p.WidthCm),
		HeightCm:         strconv.Itoa(p.HeightCm),
		PackagingCostAud: strconv.FormatFloat(p.PackagingCostAud, 'f', -1, 64),
	}
	if p.InternalVolumeCubicCm != p.LengthCm*p.WidthCm*p.HeightCm {
		form.InternalVolumeCubicCm = strconv.Itoa(p.InternalVolumeCubicCm)
	}
	if p.Description != nil {
		form.Description = *p.Description
	}
	return form
}

// Values returns the text fields in PackagingFields order.
func (f PackagingForm) Values() []string {
	return []string{f.Name, f.Description, f.LengthCm, f.WidthCm, f.HeightCm, f.InternalVolumeCubicCm, f.PackagingCostAud}
}

// Set writes the i-th text field.
func (f *PackagingForm) Set(i int, v string) {
	switch i {
	case 0:
		f.Name = v
	case 1:
		f.Description = v
	case 2:
		f.LengthCm = v
	case 3:
		f.WidthCm = v
	case 4:
		f.HeightCm = v
	case 5:
		f.InternalVolumeCubicCm = v
	case 6:
		f.PackagingCostAud = v
	}
}

// QuoteLine is one (item, quantity) row of the quote form. An empty ItemID is an unselected row.
type QuoteLine struct {
	ItemID   string
	Quantity int
}

// QuoteForm holds the shipment being prepared. Lines is never empty.
type QuoteForm struct {
	DestinationPostcode string
	DestinationSuburb   string
	DestinationState    string
	Country             string
	PackagingID         string
	IsExpress           bool
	Lines               []QuoteLine
}

// NewQuoteForm returns a blank form with one unselected line.
func NewQuoteForm() QuoteForm {
	return QuoteForm{Lines: []QuoteLine{emptyLine()}}
}

func emptyLine() QuoteLine {
	return QuoteLine{Quantity: 1}
}

// Values returns the destination fields in DestinationFields order.
func (f QuoteForm) Values() []string {
	return []string{f.DestinationPostcode, f.DestinationSuburb, f.DestinationState, f.Country}
}

// Set writes the i-th destination field.
func (f *QuoteForm) Set(i int, v string) {
	switch i {
	case 0:
		f.DestinationPostcode = v
	case 1:
		f.DestinationSuburb = v
	case 2:
		f.DestinationState = v
	case 3:
		f.Country = v
	}
}

// Request builds the shipment request, dropping lines without an item.
func (f QuoteForm) Request() model.ShipmentRequest {
	items := make([]model.ShipmentItemSelection, 0, len(f.Lines))
	for _, line := range f.Lines {
		if line.ItemID == "" {
			continue
		}
		items = append(items, model.ShipmentItemSelection{ItemID: line.ItemID, Quantity: line.Quantity})
	}
	return model.ShipmentRequest{
		DestinationPostcode: strings.TrimSpace(f.DestinationPostcode),
		DestinationSuburb:   strings.TrimSpace(f.DestinationSuburb),
		DestinationState:    strings.TrimSpace(f.DestinationState),
		Country:             strings.TrimSpace(f.Country),
		PackagingID:         f.PackagingID,
		IsExpress:           f.IsExpress,
		Items:               items,
	}
}

func (f QuoteForm) clone() QuoteForm {
	f.Lines = append([]QuoteLine(nil), f.Lines...)
	return f
}

// ModalState is the display state of one modal bound to a caller-owned form.
type ModalState[F any] struct {
	Show      bool
	Editing   bool
	EditingID string
	Form      F
	Error     string
	Loading   bool
}

// AppState is everything the frontend shows.
type AppState struct {
	Phase     Phase
	IsLoading bool
	LoadError string

	Settings   *model.OriginSettings
	Theme      string
	ThemeError string

	Items          []model.Item
	Packaging      []model.Packaging
	ItemsError     string
	PackagingError string

	Quote        QuoteForm
	QuoteResult  *model.QuoteResult
	QuoteError   string
	QuoteLoading bool

	SettingsModal  ModalState[SettingsForm]
	ItemModal      ModalState[ItemForm]
	PackagingModal ModalState[PackagingForm]

	ActiveView View
}

// NewAppState returns the state before the first load.
func NewAppState() AppState {
	return AppState{
		Phase: PhaseInitializing,
		Theme: model.ThemeDark,
		Quote: NewQuoteForm(),
	}
}

// CanQuote reports whether settings, items and packaging all exist.
func (s AppState) CanQuote() bool {
	return s.Settings != nil && len(s.Items) > 0 && len(s.Packaging) > 0
}

// SettingsIncomplete reports whether origin settings have never been saved.
func (s AppState) SettingsIncomplete() bool {
	return s.Settings == nil
}

// ItemName returns the name of the item with id, or "" when unknown.
func (s AppState) ItemName(id string) string {
	for _, it := range s.Items {
		if it.ID == id {
			return it.Name
		}
	}
	return ""
}

// PackagingName returns the name of the packaging with id, or "" when unknown.
func (s AppState) PackagingName(id string) string {
	for _, p := range s.Packaging {
		if p.ID == id {
			return p.Name
		}
	}
	return ""
}

func (s AppState) clone() AppState {
	out := s
	out.Items = append([]model.Item(nil), s.Items...)
	out.Packaging = append([]model.Packaging(nil), s.Packaging...)
	out.Quote = s.Quote.clone()
	if s.Settings != nil {
		settings := *s.Settings
		out.Settings = &settings
	}
	return out
}
