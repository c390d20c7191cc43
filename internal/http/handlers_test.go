package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/postage-comparator/internal/domain/dto"
	"github.com/guttosm/postage-comparator/internal/domain/model"
	"github.com/guttosm/postage-comparator/internal/mocks"
	"github.com/guttosm/postage-comparator/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiMocks struct {
	settings  *mocks.MockSettingsService
	items     *mocks.MockItemService
	packaging *mocks.MockPackagingService
	quotes    *mocks.MockQuoteService
}

func newTestAPI(t *testing.T) (*gin.Engine, *apiMocks) {
	t.Helper()
	m := &apiMocks{
		settings:  &mocks.MockSettingsService{},
		items:     &mocks.MockItemService{},
		packaging: &mocks.MockPackagingService{},
		quotes:    &mocks.MockQuoteService{},
	}
	t.Cleanup(func() {
		m.settings.AssertExpectations(t)
		m.items.AssertExpectations(t)
		m.packaging.AssertExpectations(t)
		m.quotes.AssertExpectations(t)
	})

	cfg := DefaultRouterConfig()
	cfg.SettingsService = m.settings
	cfg.ItemService = m.items
	cfg.PackagingService = m.packaging
	cfg.QuoteService = m.quotes
	return NewRouter(NewHealthHandler(), cfg), m
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sydneySettings() *model.OriginSettings {
	updated := time.Date(2025, 1, 28, 10, 0, 0, 0, time.UTC)
	return &model.OriginSettings{
		Postcode:        "2000",
		Suburb:          "Sydney",
		State:           "NSW",
		Country:         "AU",
		ThemePreference: model.StringPtr(model.ThemeDark),
		UpdatedAt:       &updated,
	}
}

func TestSettingsHandler(t *testing.T) {
	tests := []struct {
		name            string
		method          string
		path            string
		body            string
		setup           func(m *apiMocks)
		expectedStatus  int
		expectedMessage string
		validate        func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name:   "get returns saved settings",
			method: http.MethodGet,
			path:   "/api/settings/origin",
			setup: func(m *apiMocks) {
				m.settings.On("Get", mock.Anything).Return(sydneySettings(), nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				var got model.OriginSettings
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, "2000", got.Postcode)
				assert.Equal(t, model.ThemeDark, got.Theme())
			},
		},
		{
			name:   "get without settings is 404",
			method: http.MethodGet,
			path:   "/api/settings/origin",
			setup: func(m *apiMocks) {
				m.settings.On("Get", mock.Anything).Return(nil, nil)
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Origin settings not found",
		},
		{
			name:   "put saves settings",
			method: http.MethodPut,
			path:   "/api/settings/origin",
			body:   `{"postcode":"2000","suburb":"Sydney","state":"NSW","country":"AU","themePreference":null,"updatedAt":null}`,
			setup: func(m *apiMocks) {
				m.settings.On("Save", mock.Anything, model.OriginSettings{
					Postcode: "2000", Suburb: "Sydney", State: "NSW", Country: "AU",
				}).Return(sydneySettings(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:            "put rejects a bad postcode before the service",
			method:          http.MethodPut,
			path:            "/api/settings/origin",
			body:            `{"postcode":"200","suburb":"Sydney","state":"NSW","country":"AU"}`,
			setup:           func(m *apiMocks) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Postcode must be 4 digits",
		},
		{
			name:   "put surfaces service validation",
			method: http.MethodPut,
			path:   "/api/settings/origin",
			body:   `{"postcode":"2000","suburb":"  ","state":"NSW","country":"AU"}`,
			setup: func(m *apiMocks) {
				m.settings.On("Save", mock.Anything, mock.Anything).
					Return(nil, &service.ValidationError{Message: "Suburb is required"})
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Suburb is required",
		},
		{
			name:   "theme update",
			method: http.MethodPut,
			path:   "/api/settings/theme",
			body:   `{"themePreference":"sepia"}`,
			setup: func(m *apiMocks) {
				saved := sydneySettings()
				saved.ThemePreference = model.StringPtr(model.ThemeSepia)
				m.settings.On("SetTheme", mock.Anything, "sepia").Return(saved, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), `"themePreference":"sepia"`)
			},
		},
		{
			name:   "theme update without settings",
			method: http.MethodPut,
			path:   "/api/settings/theme",
			body:   `{"themePreference":"light"}`,
			setup: func(m *apiMocks) {
				m.settings.On("SetTheme", mock.Anything, "light").
					Return(nil, &service.NotFoundError{Message: "Origin settings not found"})
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Origin settings not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestAPI(t)
			tt.setup(m)

			w := doJSON(router, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, decodeError(t, w).Message)
			}
			if tt.validate != nil {
				tt.validate(t, w)
			}
		})
	}
}

func TestCatalogHandlers(t *testing.T) {
	mug := model.Item{ID: "item-1", Name: "Mug", UnitWeightGrams: 350}
	box := model.Packaging{ID: "pack-1", Name: "Small box", LengthCm: 20, WidthCm: 15, HeightCm: 10, InternalVolumeCubicCm: 3000, PackagingCostAud: 1.5}

	tests := []struct {
		name            string
		method          string
		path            string
		body            string
		setup           func(m *apiMocks)
		expectedStatus  int
		expectedMessage string
		expectedBody    string
	}{
		{
			name:   "list items",
			method: http.MethodGet,
			path:   "/api/items",
			setup: func(m *apiMocks) {
				m.items.On("List", mock.Anything).Return([]model.Item{mug}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"id":"item-1","name":"Mug","unitWeightGrams":350}]`,
		},
		{
			name:   "empty item list is an empty array",
			method: http.MethodGet,
			path:   "/api/items",
			setup: func(m *apiMocks) {
				m.items.On("List", mock.Anything).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:   "create item",
			method: http.MethodPost,
			path:   "/api/items",
			body:   `{"name":"Mug","unitWeightGrams":350}`,
			setup: func(m *apiMocks) {
				m.items.On("Create", mock.Anything, model.ItemInput{Name: "Mug", UnitWeightGrams: 350}).Return(&mug, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"id":"item-1","name":"Mug","unitWeightGrams":350}`,
		},
		{
			name:   "create duplicate item",
			method: http.MethodPost,
			path:   "/api/items",
			body:   `{"name":"mug","unitWeightGrams":350}`,
			setup: func(m *apiMocks) {
				m.items.On("Create", mock.Anything, mock.Anything).
					Return(nil, &service.ValidationError{Message: "Item with name 'mug' already exists"})
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Item with name 'mug' already exists",
		},
		{
			name:   "update unknown item",
			method: http.MethodPut,
			path:   "/api/items/missing",
			body:   `{"name":"Cup"}`,
			setup: func(m *apiMocks) {
				m.items.On("Update", mock.Anything, "missing", model.ItemInput{Name: "Cup"}).
					Return(nil, &service.NotFoundError{Message: "Item with id missing not found"})
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Item with id missing not found",
		},
		{
			name:   "delete item",
			method: http.MethodDelete,
			path:   "/api/items/item-1",
			setup: func(m *apiMocks) {
				m.items.On("Delete", mock.Anything, "item-1").Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:   "list packaging",
			method: http.MethodGet,
			path:   "/api/packaging",
			setup: func(m *apiMocks) {
				m.packaging.On("List", mock.Anything).Return([]model.Packaging{box}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"id":"pack-1","name":"Small box","lengthCm":20,"widthCm":15,"heightCm":10,"internalVolumeCubicCm":3000,"packagingCostAud":1.5}]`,
		},
		{
			name:   "create packaging",
			method: http.MethodPost,
			path:   "/api/packaging",
			body:   `{"name":"Small box","lengthCm":20,"widthCm":15,"heightCm":10,"packagingCostAud":1.5}`,
			setup: func(m *apiMocks) {
				m.packaging.On("Create", mock.Anything, model.PackagingInput{
					Name: "Small box", LengthCm: 20, WidthCm: 15, HeightCm: 10, PackagingCostAud: 1.5,
				}).Return(&box, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "update packaging",
			method: http.MethodPut,
			path:   "/api/packaging/pack-1",
			body:   `{"packagingCostAud":2}`,
			setup: func(m *apiMocks) {
				updated := box
				updated.PackagingCostAud = 2
				m.packaging.On("Update", mock.Anything, "pack-1", model.PackagingInput{PackagingCostAud: 2}).Return(&updated, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "delete unknown packaging",
			method: http.MethodDelete,
			path:   "/api/packaging/missing",
			setup: func(m *apiMocks) {
				m.packaging.On("Delete", mock.Anything, "missing").
					Return(&service.NotFoundError{Message: "Packaging with id missing not found"})
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Packaging with id missing not found",
		},
		{
			name:   "storage failure",
			method: http.MethodGet,
			path:   "/api/packaging",
			setup: func(m *apiMocks) {
				m.packaging.On("List", mock.Anything).Return(nil, errors.New("read packaging.json: permission denied"))
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestAPI(t)
			tt.setup(m)

			w := doJSON(router, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, decodeError(t, w).Message)
			}
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestQuoteHandler(t *testing.T) {
	request := `{"destinationPostcode":"3000","destinationSuburb":"Melbourne","destinationState":"VIC","country":"AU","packagingId":"pack-1","isExpress":false,"items":[{"itemId":"item-1","quantity":2}]}`
	expectedRequest := model.ShipmentRequest{
		DestinationPostcode: "3000",
		DestinationSuburb:   "Melbourne",
		DestinationState:    "VIC",
		Country:             "AU",
		PackagingID:         "pack-1",
		Items:               []model.ShipmentItemSelection{{ItemID: "item-1", Quantity: 2}},
	}

	tests := []struct {
		name            string
		body            string
		setup           func(m *apiMocks)
		expectedStatus  int
		expectedCode    string
		expectedMessage string
	}{
		{
			name: "quote succeeds",
			body: request,
			setup: func(m *apiMocks) {
				m.quotes.On("Quote", mock.Anything, expectedRequest).Return(&model.QuoteResult{
					TotalWeightGrams: 700,
					WeightInKg:       0.7,
					Currency:         "AUD",
					CarrierQuotes: []model.CarrierQuote{{
						Carrier:          "AUSPOST",
						ServiceName:      "Derived from rules",
						PackagingCostAud: 1.5,
						DeliveryCostAud:  15.25,
						TotalCostAud:     16.75,
						PricingSource:    model.PricingSourceRules,
						RuleFallbackUsed: true,
					}},
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "origin missing",
			body: request,
			setup: func(m *apiMocks) {
				m.quotes.On("Quote", mock.Anything, expectedRequest).Return(nil, service.ErrOriginNotConfigured)
			},
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedCode:    dto.ErrCodeUnprocessable,
			expectedMessage: "Origin settings are required before quoting",
		},
		{
			name: "no carrier could price it",
			body: request,
			setup: func(m *apiMocks) {
				m.quotes.On("Quote", mock.Anything, expectedRequest).Return(nil, service.ErrNoCarrierQuote)
			},
			expectedStatus:  http.StatusUnprocessableEntity,
			expectedCode:    dto.ErrCodeUnprocessable,
			expectedMessage: "No carrier quote available",
		},
		{
			name:            "malformed body",
			body:            `{"destinationPostcode":`,
			setup:           func(m *apiMocks) {},
			expectedStatus:  http.StatusBadRequest,
			expectedCode:    dto.ErrCodeBadRequest,
			expectedMessage: "Malformed JSON request body",
		},
		{
			name:            "missing packaging",
			body:            `{"destinationPostcode":"3000","items":[{"itemId":"item-1","quantity":1}]}`,
			setup:           func(m *apiMocks) {},
			expectedStatus:  http.StatusBadRequest,
			expectedCode:    dto.ErrCodeBadRequest,
			expectedMessage: "Packaging is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestAPI(t)
			tt.setup(m)

			w := doJSON(router, http.MethodPost, "/api/quotes", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var got model.QuoteResult
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				require.Len(t, got.CarrierQuotes, 1)
				assert.Equal(t, 16.75, got.CarrierQuotes[0].TotalCostAud)
				return
			}
			body := decodeError(t, w)
			assert.Equal(t, tt.expectedCode, body.Code)
			assert.Equal(t, tt.expectedMessage, body.Message)
			assert.Equal(t, w.Header().Get("X-Request-ID"), body.RequestID)
		})
	}
}
