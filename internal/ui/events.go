package ui

import "context"

// Event is a user intent emitted by a view. The concrete types below are the only implementations.
type Event interface {
	isEvent()
}

type (
	LoadEvent                 struct{}
	OpenSettingsEvent         struct{}
	CloseSettingsEvent        struct{}
	SaveSettingsEvent         struct{}
	SetThemeEvent             struct{ Theme string }
	ShowQuoteEvent            struct{}
	OpenItemsEvent            struct{}
	OpenPackagingEvent        struct{}
	StartCreateItemEvent      struct{}
	StartEditItemEvent        struct{ ID string }
	CloseItemModalEvent       struct{}
	SaveItemEvent             struct{}
	DeleteItemEvent           struct{ ID string }
	StartCreatePackagingEvent struct{}
	StartEditPackagingEvent   struct{ ID string }
	ClosePackagingModalEvent  struct{}
	SavePackagingEvent        struct{}
	DeletePackagingEvent      struct{ ID string }
	AddLineEvent              struct{}
	RemoveLineEvent           struct{ Index int }
	SetLineItemEvent          struct {
		Index  int
		ItemID string
	}
	SetLineQuantityEvent struct {
		Index    int
		Quantity int
	}
	SetFieldEvent struct {
		Form  Form
		Index int
		Value string
	}
	SelectPackagingEvent struct{ ID string }
	SetExpressEvent      struct{ Express bool }
	SubmitQuoteEvent     struct{}
)

func (LoadEvent) isEvent()                 {}
func (OpenSettingsEvent) isEvent()         {}
func (CloseSettingsEvent) isEvent()        {}
func (SaveSettingsEvent) isEvent()         {}
func (SetThemeEvent) isEvent()             {}
func (ShowQuoteEvent) isEvent()            {}
func (OpenItemsEvent) isEvent()            {}
func (OpenPackagingEvent) isEvent()        {}
func (StartCreateItemEvent) isEvent()      {}
func (StartEditItemEvent) isEvent()        {}
func (CloseItemModalEvent) isEvent()       {}
func (SaveItemEvent) isEvent()             {}
func (DeleteItemEvent) isEvent()           {}
func (StartCreatePackagingEvent) isEvent() {}
func (StartEditPackagingEvent) isEvent()   {}
func (ClosePackagingModalEvent) isEvent()  {}
func (SavePackagingEvent) isEvent()        {}
func (DeletePackagingEvent) isEvent()      {}
func (AddLineEvent) isEvent()              {}
func (RemoveLineEvent) isEvent()           {}
func (SetLineItemEvent) isEvent()          {}
func (SetLineQuantityEvent) isEvent()      {}
func (SetFieldEvent) isEvent()             {}
func (SelectPackagingEvent) isEvent()      {}
func (SetExpressEvent) isEvent()           {}
func (SubmitQuoteEvent) isEvent()          {}

// Remote reports whether handling ev calls the API.
func Remote(ev Event) bool {
	switch ev.(type) {
	case LoadEvent, SaveSettingsEvent, SetThemeEvent,
		OpenItemsEvent, OpenPackagingEvent,
		SaveItemEvent, DeleteItemEvent,
		SavePackagingEvent, DeletePackagingEvent,
		SubmitQuoteEvent:
		return true
	default:
		return false
	}
}

// Dispatch applies ev to the controller.
func (c *Controller) Dispatch(ctx context.Context, ev Event) {
	switch e := ev.(type) {
	case LoadEvent:
		c.Load(ctx)
	case OpenSettingsEvent:
		c.OpenSettings()
	case CloseSettingsEvent:
		c.CloseSettings()
	case SaveSettingsEvent:
		c.SaveSettings(ctx)
	case SetThemeEvent:
		c.SetTheme(ctx, e.Theme)
	case ShowQuoteEvent:
		c.SetView(ViewQuote)
	case OpenItemsEvent:
		c.OpenItems(ctx)
	case OpenPackagingEvent:
		c.OpenPackaging(ctx)
	case StartCreateItemEvent:
		c.StartCreateItem()
	case StartEditItemEvent:
		c.StartEditItem(e.ID)
	case CloseItemModalEvent:
		c.CloseItemModal()
	case SaveItemEvent:
		c.SaveItem(ctx)
	case DeleteItemEvent:
		c.DeleteItem(ctx, e.ID)
	case StartCreatePackagingEvent:
		c.StartCreatePackaging()
	case StartEditPackagingEvent:
		c.StartEditPackaging(e.ID)
	case ClosePackagingModalEvent:
		c.ClosePackagingModal()
	case SavePackagingEvent:
		c.SavePackaging(ctx)
	case DeletePackagingEvent:
		c.DeletePackaging(ctx, e.ID)
	case AddLineEvent:
		c.AddLine()
	case RemoveLineEvent:
		c.RemoveLine(e.Index)
	case SetLineItemEvent:
		c.SetLineItem(e.Index, e.ItemID)
	case SetLineQuantityEvent:
		c.SetLineQuantity(e.Index, e.Quantity)
	case SetFieldEvent:
		c.SetFormField(e.Form, e.Index, e.Value)
	case SelectPackagingEvent:
		c.SelectPackaging(e.ID)
	case SetExpressEvent:
		c.SetExpress(e.Express)
	case SubmitQuoteEvent:
		c.SubmitQuote(ctx)
	}
}
