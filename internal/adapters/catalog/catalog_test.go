package catalog

import (
	"context"
	"listings-service/internal/core/domain"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	c, err := LoadEmbedded()
	require.NoError(t, err)
	assert.Equal(t, 6, c.Len())

	props, err := c.List(context.Background())
	require.NoError(t, err)

	ids := make(map[string]bool)
	slugs := make(map[string]bool)
	for _, p := range props {
		assert.False(t, ids[p.ID], "duplicate id %s", p.ID)
		assert.False(t, slugs[p.Slug], "duplicate slug %s", p.Slug)
		ids[p.ID] = true
		slugs[p.Slug] = true

		assert.True(t, p.Type.IsValid())
		assert.GreaterOrEqual(t, p.Price, 0)
		assert.NotEmpty(t, p.Images)
		assert.NotNil(t, p.Features)
		assert.NotNil(t, p.Location)
		assert.Len(t, p.Geohash, geohashPrecision)
	}

	assert.Equal(t, "1", props[0].ID)
	assert.Equal(t, domain.RoomTypeExterior, props[0].Images[0].Room)
	require.NotNil(t, props[0].AvailableDate)
	assert.Equal(t, "2024-02-01", props[0].AvailableDate.Format(availableDateLayout))
	assert.Equal(t, 2.5, props[0].Bathrooms)
}

func TestGetByRef(t *testing.T) {
	c, err := LoadEmbedded()
	require.NoError(t, err)
	ctx := context.Background()

	bySlug, err := c.GetByRef(ctx, "cozy-studio-apartment")
	require.NoError(t, err)
	assert.Equal(t, "4", bySlug.ID)
	assert.Equal(t, "Studio", bySlug.BedroomText())

	byID, err := c.GetByRef(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, bySlug.Slug, byID.Slug)

	_, err = c.GetByRef(ctx, "castle-on-the-hill")
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestListReturnsCopies(t *testing.T) {
	c, err := LoadEmbedded()
	require.NoError(t, err)
	ctx := context.Background()

	first, _ := c.List(ctx)
	first[0].Title = "changed"
	first[0].Features[0] = "changed"

	second, _ := c.List(ctx)
	assert.Equal(t, "Spacious Family Home", second[0].Title)
	assert.Equal(t, "Central Air Conditioning", second[0].Features[0])
}

func TestGetByRefReturnsDeepCopy(t *testing.T) {
	c, err := LoadEmbedded()
	require.NoError(t, err)
	ctx := context.Background()

	p, err := c.GetByRef(ctx, "spacious-family-home")
	require.NoError(t, err)
	require.NotNil(t, p.AvailableDate)
	require.NotNil(t, p.PetDeposit)
	require.NotNil(t, p.PetRent)
	require.NotNil(t, p.YearBuilt)
	require.NotNil(t, p.Location)

	*p.AvailableDate = p.AvailableDate.AddDate(1, 0, 0)
	*p.PetDeposit = 0
	*p.PetRent = 0
	*p.YearBuilt = 1900
	p.Location.Lat = 0

	again, err := c.GetByRef(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", again.AvailableDate.Format("2006-01-02"))
	assert.Equal(t, 300, *again.PetDeposit)
	assert.Equal(t, 35, *again.PetRent)
	assert.Equal(t, 2015, *again.YearBuilt)
	assert.NotZero(t, again.Location.Lat)

	listed, err := c.List(ctx)
	require.NoError(t, err)
	*listed[0].YearBuilt = 1900
	assert.Equal(t, 2015, *c.properties[0].YearBuilt)
}

func TestLoad_Invariants(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "duplicate id",
			yaml: `properties:
  - {id: "1", slug: a, type: house, price: 1}
  - {id: "1", slug: b, type: house, price: 1}`,
			wantErr: "duplicate property id",
		},
		{
			name: "duplicate slug",
			yaml: `properties:
  - {id: "1", slug: a, type: house, price: 1}
  - {id: "2", slug: a, type: house, price: 1}`,
			wantErr: "duplicate property slug",
		},
		{
			name:    "unknown type",
			yaml:    `properties: [{id: "1", type: castle, price: 1}]`,
			wantErr: "unknown type",
		},
		{
			name:    "negative price",
			yaml:    `properties: [{id: "1", type: house, price: -5}]`,
			wantErr: "negative price",
		},
		{
			name:    "bad date",
			yaml:    `properties: [{id: "1", type: house, price: 5, availableDate: "soon"}]`,
			wantErr: "invalid availableDate",
		},
		{
			name:    "unknown field",
			yaml:    `properties: [{id: "1", type: house, price: 5, color: red}]`,
			wantErr: "failed to decode catalog",
		},
		{
			name:    "empty",
			yaml:    ``,
			wantErr: "catalog is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	c, err := Load(strings.NewReader(`properties:
  - id: "42"
    type: duplex
    price: 900
    images:
      - url: https://example.com/1.jpg`))
	require.NoError(t, err)

	p, err := c.GetByRef(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "42", p.Slug)
	assert.Equal(t, domain.RoomTypeOther, p.Images[0].Room)
	assert.Nil(t, p.Location)
	assert.Empty(t, p.Geohash)
	assert.NotNil(t, p.Utilities)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`properties:
  - {id: "1", slug: loft, type: apartment, price: 1300, location: {lat: 39.78, lng: -89.65}}`), 0o600))

	c, err := LoadFromFile(path)
	require.NoError(t, err)
	p, err := c.GetByRef(context.Background(), "loft")
	require.NoError(t, err)
	assert.Equal(t, "dp0", p.Geohash[:3])

	_, err = LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
