package repository

import (
	"context"

	"github.com/guttosm/postage-comparator/internal/circuitbreaker"
	"github.com/guttosm/postage-comparator/internal/domain/model"
)

// guardedSettings routes every SettingsStore call through a breaker.
type guardedSettings struct {
	next SettingsStore
	cb   *circuitbreaker.CircuitBreaker
}

func (g guardedSettings) Get(ctx context.Context) (*model.OriginSettings, error) {
	return circuitbreaker.Call(ctx, g.cb, func() (*model.OriginSettings, error) { return g.next.Get(ctx) })
}

func (g guardedSettings) Save(ctx context.Context, settings model.OriginSettings) error {
	return g.cb.Execute(ctx, func() error { return g.next.Save(ctx, settings) })
}

// guardedItems routes every ItemStore call through a breaker.
type guardedItems struct {
	next ItemStore
	cb   *circuitbreaker.CircuitBreaker
}

func (g guardedItems) List(ctx context.Context) ([]model.Item, error) {
	return circuitbreaker.Call(ctx, g.cb, func() ([]model.Item, error) { return g.next.List(ctx) })
}

func (g guardedItems) Get(ctx context.Context, id string) (*model.Item, error) {
	return circuitbreaker.Call(ctx, g.cb, func() (*model.Item, error) { return g.next.Get(ctx, id) })
}

func (g guardedItems) Create(ctx context.Context, item model.Item) error {
	return g.cb.Execute(ctx, func() error { return g.next.Create(ctx, item) })
}

func (g guardedItems) Update(ctx context.Context, item model.Item) error {
	return g.cb.Execute(ctx, func() error { return g.next.Update(ctx, item) })
}

func (g guardedItems) Delete(ctx context.Context, id string) error {
	return g.cb.Execute(ctx, func() error { return g.next.Delete(ctx, id) })
}

// guardedPackaging routes every PackagingStore call through a breaker.
type guardedPackaging struct {
	next PackagingStore
	cb   *circuitbreaker.CircuitBreaker
}

func (g guardedPackaging) List(ctx context.Context) ([]model.Packaging, error) {
	return circuitbreaker.Call(ctx, g.cb, func() ([]model.Packaging, error) { return g.next.List(ctx) })
}

func (g guardedPackaging) Get(ctx context.Context, id string) (*model.Packaging, error) {
	return circuitbreaker.Call(ctx, g.cb, func() (*model.Packaging, error) { return g.next.Get(ctx, id) })
}

func (g guardedPackaging) Create(ctx context.Context, packaging model.Packaging) error {
	return g.cb.Execute(ctx, func() error { return g.next.Create(ctx, packaging) })
}

func (g guardedPackaging) Update(ctx context.Context, packaging model.Packaging) error {
	return g.cb.Execute(ctx, func() error { return g.next.Update(ctx, packaging) })
}

func (g guardedPackaging) Delete(ctx context.Context, id string) error {
	return g.cb.Execute(ctx, func() error { return g.next.Delete(ctx, id) })
}

// WithCircuitBreakers wraps every store in s with its own breaker built from cfg.
// Breakers are named "<prefix>_<store>", returned in settings, items, packaging
// order, and ignore caller errors such as ErrNotFound.
func WithCircuitBreakers(s Stores, prefix string, cfg circuitbreaker.Config) (Stores, []*circuitbreaker.CircuitBreaker) {
	build := func(name string) *circuitbreaker.CircuitBreaker {
		c := cfg
		c.Name = prefix + "_" + name
		c.IsFailure = func(err error) bool { return !IsCallerError(err) }
		return circuitbreaker.New(c)
	}
	settingsCB, itemsCB, packagingCB := build("settings"), build("items"), build("packaging")

	s.Settings = guardedSettings{next: s.Settings, cb: settingsCB}
	s.Items = guardedItems{next: s.Items, cb: itemsCB}
	s.Packaging = guardedPackaging{next: s.Packaging, cb: packagingCB}
	return s, []*circuitbreaker.CircuitBreaker{settingsCB, itemsCB, packagingCB}
}
