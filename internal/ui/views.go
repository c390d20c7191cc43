package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/guttosm/postage-comparator/internal/domain/model"
)

const cursorMark = "›"

// RenderStatusBanner shows the initial load progress or failure. It is empty once data loaded.
func RenderStatusBanner(st Styles, isLoading bool, loadError string) string {
	switch {
	case isLoading:
		return st.Subtle.Render("Loading data...")
	case loadError != "":
		return st.Error.Render("Failed to load data: " + loadError)
	default:
		return ""
	}
}

// RenderTabs renders the view switcher with active highlighted.
func RenderTabs(st Styles, active View) string {
	tabs := make([]string, 0, len(Views))
	for _, v := range Views {
		if v == active {
			tabs = append(tabs, st.TabOn.Render(v.String()))
		} else {
			tabs = append(tabs, st.Tab.Render(v.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// RenderOrigin summarises the origin settings for the header.
func RenderOrigin(st Styles, settings *model.OriginSettings) string {
	if settings == nil {
		return st.Warning.Render("Origin settings are required before quoting.")
	}
	return st.Subtle.Render(fmt.Sprintf("From %s %s %s %s", settings.Suburb, settings.State, settings.Postcode, settings.Country))
}

// ListPanelProps feed the items and packaging panels.
type ListPanelProps struct {
	Cursor int
	Error  string
}

// RenderItemsPanel lists items with their unit weight.
func RenderItemsPanel(st Styles, items []model.Item, props ListPanelProps) string {
	var b strings.Builder
	b.WriteString(st.Title.Render("Items"))
	b.WriteString("\n")

	if len(items) == 0 {
		b.WriteString(st.Subtle.Render("No items yet."))
		b.WriteString("\n")
	}
	for i, item := range items {
		line := fmt.Sprintf("%s  %d g", item.Name, item.UnitWeightGrams)
		if item.Description != nil && *item.Description != "" {
			line += "  " + st.Subtle.Render(*item.Description)
		}
		b.WriteString(listRow(st, line, i == props.Cursor))
	}

	if props.Error != "" {
		b.WriteString(st.Error.Render(props.Error))
		b.WriteString("\n")
	}
	b.WriteString(st.Subtle.Render("[a] Add item  [e] Edit  [d] Delete"))
	return st.Panel.Render(b.String())
}

// RenderPackagingPanel lists packaging with dimensions, volume and cost.
func RenderPackagingPanel(st Styles, packaging []model.Packaging, props ListPanelProps) string {
	var b strings.Builder
	b.WriteString(st.Title.Render("Packaging"))
	b.WriteString("\n")

	if len(packaging) == 0 {
		b.WriteString(st.Subtle.Render("No packaging yet."))
		b.WriteString("\n")
	}
	for i, p := range packaging {
		line := fmt.Sprintf("%s  %dx%dx%d cm  %d cm³  %s",
			p.Name, p.LengthCm, p.WidthCm, p.HeightCm, p.InternalVolumeCubicCm, FormatAUD(p.PackagingCostAud))
		if p.Description != nil && *p.Description != "" {
			line += "  " + st.Subtle.Render(*p.Description)
		}
		b.WriteString(listRow(st, line, i == props.Cursor))
	}

	if props.Error != "" {
		b.WriteString(st.Error.Render(props.Error))
		b.WriteString("\n")
	}
	b.WriteString(st.Subtle.Render("[a] Add packaging  [e] Edit  [d] Delete"))
	return st.Panel.Render(b.String())
}

func listRow(st Styles, text string, selected bool) string {
	if selected {
		return st.Selected.Render(cursorMark+" "+text) + "\n"
	}
	return "  " + st.Text.Render(text) + "\n"
}

// QuotePanelProps feed RenderQuotePanel. Destination holds the rendered destination inputs.
type QuotePanelProps struct {
	State       AppState
	Destination []string
	LineCursor  int
}

// RenderQuotePanel renders the quote form, its error and the last result.
func RenderQuotePanel(st Styles, props QuotePanelProps) string {
	s := props.State
	var b strings.Builder
	b.WriteString(st.Title.Render("Quote"))
	b.WriteString("\n")

	if !s.CanQuote() {
		b.WriteString(st.Warning.Render("Complete settings, items, and packaging first."))
		b.WriteString("\n")
	}

	values := props.Destination
	if len(values) != len(DestinationFields) {
		values = s.Quote.Values()
	}
	for i, f := range DestinationFields {
		b.WriteString(st.Label.Render(f.Label+": ") + values[i] + "\n")
	}

	packaging := s.PackagingName(s.Quote.PackagingID)
	if packaging == "" {
		packaging = "none"
	}
	b.WriteString(st.Label.Render("Packaging: ") + packaging + "\n")
	b.WriteString(st.Label.Render("Express: ") + yesNo(s.Quote.IsExpress) + "\n")

	b.WriteString("\n" + st.Label.Render("Lines") + "\n")
	for i, line := range s.Quote.Lines {
		name := s.ItemName(line.ItemID)
		if name == "" {
			name = "(select item)"
		}
		b.WriteString(listRow(st, fmt.Sprintf("%s x %d", name, line.Quantity), i == props.LineCursor))
	}

	b.WriteString("\n")
	if s.QuoteLoading {
		b.WriteString(st.Subtle.Render("Quoting…"))
	} else {
		b.WriteString(st.Subtle.Render("[enter] Get quote  [+] Add line  [-] Remove line"))
	}
	b.WriteString("\n")

	if s.QuoteError != "" {
		b.WriteString(st.Error.Render(s.QuoteError))
		b.WriteString("\n")
	}
	if s.QuoteResult != nil {
		b.WriteString("\n")
		b.WriteString(RenderQuoteResult(st, s.QuoteResult))
	}
	return st.Panel.Render(b.String())
}

// RenderQuoteResult renders the shipment figures and one block per carrier quote.
func RenderQuoteResult(st Styles, r *model.QuoteResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total weight: %d g (%s kg)\n", r.TotalWeightGrams, formatNumber(r.WeightInKg))
	fmt.Fprintf(&b, "Volume weight: %s kg\n", formatNumber(r.VolumeWeightInKg))
	fmt.Fprintf(&b, "Total volume: %d cm³\n", r.TotalVolumeCubicCm)

	for _, q := range r.CarrierQuotes {
		b.WriteString("\n")
		b.WriteString(st.Selected.Render(fmt.Sprintf("%s %s  %s", q.Carrier, q.ServiceName, FormatAUD(q.TotalCostAud))))
		b.WriteString("\n")
		costs := fmt.Sprintf("  Delivery %s  Packaging %s", FormatAUD(q.DeliveryCostAud), FormatAUD(q.PackagingCostAud))
		if q.SurchargesAud != nil {
			costs += "  Surcharges " + FormatAUD(*q.SurchargesAud)
		}
		b.WriteString(costs + "\n")
		source := "  Source: " + PricingSourceLabel(q.PricingSource)
		if q.RuleFallbackUsed {
			source += " (rule fallback)"
		}
		b.WriteString(source + "\n")
		b.WriteString("  ETA: " + FormatEta(q.DeliveryEtaDaysMin, q.DeliveryEtaDaysMax) + "\n")
	}
	return b.String()
}

// ModalProps feed RenderModal. Values holds the rendered inputs in Fields order.
type ModalProps struct {
	Title     string
	Notice    string
	Fields    []Field
	Values    []string
	Focus     int
	Error     string
	Loading   bool
	SaveLabel string
	Footer    string
}

// RenderModal renders a form modal.
func RenderModal(st Styles, props ModalProps) string {
	var b strings.Builder
	b.WriteString(st.Title.Render(props.Title))
	b.WriteString("\n")
	if props.Notice != "" {
		b.WriteString(st.Warning.Render(props.Notice))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, f := range props.Fields {
		value := ""
		if i < len(props.Values) {
			value = props.Values[i]
		}
		label := st.Label.Render(f.Label + ": ")
		if i == props.Focus {
			label = st.Selected.Render(f.Label + ": ")
		}
		b.WriteString(label + value + "\n")
	}

	if props.Footer != "" {
		b.WriteString("\n" + props.Footer + "\n")
	}
	if props.Error != "" {
		b.WriteString("\n" + st.Error.Render(props.Error) + "\n")
	}

	b.WriteString("\n")
	if props.Loading {
		b.WriteString(st.Subtle.Render("Saving…"))
	} else {
		b.WriteString(st.Subtle.Render("[enter] " + props.SaveLabel + "  [esc] Cancel"))
	}
	return st.Modal.Render(b.String())
}

// SettingsModalProps builds the settings modal from state. The theme line carries any theme error.
func SettingsModalProps(st Styles, s AppState, values []string, focus int) ModalProps {
	props := ModalProps{
		Title:     "Origin settings",
		Fields:    SettingsFields,
		Values:    values,
		Focus:     focus,
		Error:     s.SettingsModal.Error,
		Loading:   s.SettingsModal.Loading,
		SaveLabel: "Save settings",
		Footer:    st.Label.Render("Theme: ") + s.Theme + st.Subtle.Render("  [ctrl+t] change"),
	}
	if s.SettingsIncomplete() {
		props.Notice = "Origin settings are required before quoting."
	}
	if s.ThemeError != "" {
		props.Footer += "\n" + st.Error.Render(s.ThemeError)
	}
	return props
}

// ItemModalProps builds the item modal from state.
func ItemModalProps(s AppState, values []string, focus int) ModalProps {
	props := ModalProps{
		Title:     "Add item",
		Fields:    ItemFields,
		Values:    values,
		Focus:     focus,
		Error:     s.ItemModal.Error,
		Loading:   s.ItemModal.Loading,
		SaveLabel: "Add item",
	}
	if s.ItemModal.Editing {
		props.Title = "Edit item"
		props.SaveLabel = "Save item"
	}
	return props
}

// PackagingModalProps builds the packaging modal from state.
func PackagingModalProps(s AppState, values []string, focus int) ModalProps {
	props := ModalProps{
		Title:     "Add packaging",
		Fields:    PackagingFields,
		Values:    values,
		Focus:     focus,
		Error:     s.PackagingModal.Error,
		Loading:   s.PackagingModal.Loading,
		SaveLabel: "Add packaging",
	}
	if s.PackagingModal.Editing {
		props.Title = "Edit packaging"
		props.SaveLabel = "Save packaging"
	}
	return props
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
