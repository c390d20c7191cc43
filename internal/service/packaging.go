package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/guttosm/postage-comparator/internal/domain/model"
	"github.com/guttosm/postage-comparator/internal/metrics"
	"github.com/guttosm/postage-comparator/internal/repository"
)

// PackagingService manages packaging profiles.
type PackagingService interface {
	List(ctx context.Context) ([]model.Packaging, error)
	Get(ctx context.Context, id string) (*model.Packaging, error)
	Create(ctx context.Context, input model.PackagingInput) (*model.Packaging, error)
	Update(ctx context.Context, id string, input model.PackagingInput) (*model.Packaging, error)
	Delete(ctx context.Context, id string) error
}

// PackagingServiceImpl implements PackagingService.
type PackagingServiceImpl struct {
	store repository.PackagingStore
	newID func() string
}

// NewPackagingService creates a new packaging service.
func NewPackagingService(store repository.PackagingStore) PackagingService {
	return &PackagingServiceImpl{store: store, newID: uuid.NewString}
}

func (s *PackagingServiceImpl) List(ctx context.Context) ([]model.Packaging, error) {
	if s.store == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.store.List(ctx)
}

// Get returns a NotFoundError for unknown ids.
func (s *PackagingServiceImpl) Get(ctx context.Context, id string) (*model.Packaging, error) {
	if s.store == nil {
		return nil, ErrRepositoryNotConfigured
	}
	packaging, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if packaging == nil {
		return nil, notFound("Packaging", id)
	}
	return packaging, nil
}

// Create stores a new profile. A non-positive volume is derived from the dimensions.
func (s *PackagingServiceImpl) Create(ctx context.Context, input model.PackagingInput) (*model.Packaging, error) {
	if s.store == nil {
		return nil, ErrRepositoryNotConfigured
	}

	input.Name = strings.TrimSpace(input.Name)
	switch {
	case input.Name == "":
		return nil, invalid("Packaging name is required")
	case input.LengthCm <= 0 || input.WidthCm <= 0 || input.HeightCm <= 0:
		return nil, invalid("Packaging dimensions (length, height, width) must be greater than 0")
	case input.PackagingCostAud <= 0:
		return nil, invalid("Packaging cost must be greater than 0")
	}
	if input.InternalVolumeCubicCm <= 0 {
		input.InternalVolumeCubicCm = input.OuterVolume()
	}

	packaging := model.Packaging{
		ID:                    s.newID(),
		Name:                  input.Name,
		Description:           input.Description,
		LengthCm:              input.LengthCm,
		WidthCm:               input.WidthCm,
		HeightCm:              input.HeightCm,
		InternalVolumeCubicCm: input.InternalVolumeCubicCm,
		PackagingCostAud:      input.PackagingCostAud,
	}
	if err := s.ensureUniqueName(ctx, packaging); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, packaging); err != nil {
		return nil, s.storeError(err, packaging)
	}
	metrics.RecordCatalogMutation("packaging", "create")
	return &packaging, nil
}

// Update merges positive values and non-blank names into the stored profile.
// Changing a dimension without an explicit volume recomputes the volume.
func (s *PackagingServiceImpl) Update(ctx context.Context, id string, input model.PackagingInput) (*model.Packaging, error) {
	packaging, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		packaging.Name = name
	}
	if input.Description != nil {
		packaging.Description = input.Description
	}

	dimsChanged := false
	for _, dim := range []struct {
		in  int
		out *int
	}{
		{input.LengthCm, &packaging.LengthCm},
		{input.WidthCm, &packaging.WidthCm},
		{input.HeightCm, &packaging.HeightCm},
	} {
		if dim.in > 0 && dim.in != *dim.out {
			*dim.out = dim.in
			dimsChanged = true
		}
	}

	switch {
	case input.InternalVolumeCubicCm > 0:
		packaging.InternalVolumeCubicCm = input.InternalVolumeCubicCm
	case dimsChanged:
		packaging.InternalVolumeCubicCm = packaging.Input().OuterVolume()
	}
	if input.PackagingCostAud > 0 {
		packaging.PackagingCostAud = input.PackagingCostAud
	}

	if err := s.ensureUniqueName(ctx, *packaging); err != nil {
		return nil, err
	}
	if err := s.store.Update(ctx, *packaging); err != nil {
		return nil, s.storeError(err, *packaging)
	}
	metrics.RecordCatalogMutation("packaging", "update")
	return packaging, nil
}

func (s *PackagingServiceImpl) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return ErrRepositoryNotConfigured
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return s.storeError(err, model.Packaging{ID: id})
	}
	metrics.RecordCatalogMutation("packaging", "delete")
	return nil
}

func (s *PackagingServiceImpl) ensureUniqueName(ctx context.Context, packaging model.Packaging) error {
	all, err := s.store.List(ctx)
	if err != nil {
		return err
	}
	key := model.NameKey(packaging.Name)
	for _, existing := range all {
		if existing.ID != packaging.ID && model.NameKey(existing.Name) == key {
			return duplicatePackaging(packaging.Name)
		}
	}
	return nil
}

func (s *PackagingServiceImpl) storeError(err error, packaging model.Packaging) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return notFound("Packaging", packaging.ID)
	case errors.Is(err, repository.ErrDuplicateName):
		return duplicatePackaging(packaging.Name)
	default:
		return err
	}
}

func duplicatePackaging(name string) error {
	return invalid("Packaging with name '%s' already exists", name)
}
