package carrier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/postage-comparator/internal/domain/model"
)

type namedProvider string

func (n namedProvider) Name() string { return string(n) }
func (n namedProvider) Quote(context.Context, Request) (*model.CarrierQuote, error) {
	return nil, nil
}

func names(providers []Provider) []string {
	out := make([]string, 0, len(providers))
	for _, p := range providers {
		out = append(out, p.Name())
	}
	return out
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(namedProvider("rules"), namedProvider("sendle"), namedProvider("aramex"))

	t.Run("duplicate names are rejected", func(t *testing.T) {
		assert.Error(t, r.Register(namedProvider("RULES")))
		assert.Len(t, r.All(), 3)
	})

	tests := []struct {
		name    string
		enabled []string
		want    []string
	}{
		{"empty enables all", nil, []string{"rules", "sendle", "aramex"}},
		{"keeps registration order", []string{"aramex", "rules"}, []string{"rules", "aramex"}},
		{"ignores case and blanks", []string{" Sendle "}, []string{"sendle"}},
		{"unknown names", []string{"fedex"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(r.Enabled(tt.enabled)))
		})
	}
}
