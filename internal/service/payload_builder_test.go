package service

import (
	"encoding/json"
	"testing"

	"karla-connector/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func translation(code string, name string) domain.Translation {
	return domain.Translation{
		Language: &domain.Language{Locale: &domain.Locale{Code: code}},
		Name:     name,
	}
}

func TestBuildVariantPayload_Standalone(t *testing.T) {
	item := &domain.CatalogItem{
		ID:            "p1",
		Name:          "Mug",
		SKU:           "MUG-1",
		Price:         floatPtr(9.99),
		CoverImageURL: strPtr("https://cdn.example.com/mug.png"),
	}

	p := BuildVariantPayload(item, nil)

	assert.Equal(t, "p1", p.ProductID)
	assert.Equal(t, "p1", p.VariantID)
	assert.Equal(t, "Mug", p.Title)
	assert.Nil(t, p.VariantTitle)
	require.NotNil(t, p.Price)
	assert.Equal(t, 9.99, *p.Price)
	require.NotNil(t, p.ImageURL)
	assert.Equal(t, "https://cdn.example.com/mug.png", *p.ImageURL)
	assert.Nil(t, p.Translations)
}

func TestBuildVariantPayload_VariantInheritsFromParent(t *testing.T) {
	parent := &domain.CatalogItem{
		ID:            "parent",
		Name:          "T-Shirt",
		ChildCount:    2,
		Price:         floatPtr(19.0),
		CoverImageURL: strPtr("https://cdn.example.com/shirt.png"),
	}
	variant := &domain.CatalogItem{ID: "v-red", ParentID: strPtr("parent"), Name: "Red / M"}

	p := BuildVariantPayload(variant, parent)

	assert.Equal(t, "parent", p.ProductID)
	assert.Equal(t, "v-red", p.VariantID)
	assert.Equal(t, "T-Shirt", p.Title)
	require.NotNil(t, p.VariantTitle)
	assert.Equal(t, "Red / M", *p.VariantTitle)
	assert.Equal(t, 19.0, *p.Price)
	assert.Equal(t, "https://cdn.example.com/shirt.png", *p.ImageURL)
}

func TestBuildVariantPayload_OwnValuesWinOverParent(t *testing.T) {
	parent := &domain.CatalogItem{ID: "parent", Name: "Shoe", Price: floatPtr(50), CoverImageURL: strPtr("parent.png")}
	variant := &domain.CatalogItem{ID: "v", ParentID: strPtr("parent"), Name: "42", Price: floatPtr(55), CoverImageURL: strPtr("own.png")}

	p := BuildVariantPayload(variant, parent)

	assert.Equal(t, 55.0, *p.Price)
	assert.Equal(t, "own.png", *p.ImageURL)
}

func TestBuildVariantPayload_NameFallbackChain(t *testing.T) {
	tests := []struct {
		name string
		item domain.CatalogItem
		want string
	}{
		{"name", domain.CatalogItem{ID: "a", Name: "Lamp", SKU: "L-1"}, "Lamp"},
		{"sku when name empty", domain.CatalogItem{ID: "a", SKU: "L-1"}, "L-1"},
		{"unknown when both empty", domain.CatalogItem{ID: "a"}, "Unknown Product"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildVariantPayload(&tt.item, nil)
			assert.Equal(t, tt.want, p.Title)
		})
	}

	t.Run("applied to parent and variant independently", func(t *testing.T) {
		parent := &domain.CatalogItem{ID: "parent", SKU: "PARENT-SKU"}
		variant := &domain.CatalogItem{ID: "v", ParentID: strPtr("parent")}

		p := BuildVariantPayload(variant, parent)
		assert.Equal(t, "PARENT-SKU", p.Title)
		assert.Equal(t, "Unknown Product", *p.VariantTitle)
	})
}

func TestBuildVariantPayload_UnresolvedParent(t *testing.T) {
	variant := &domain.CatalogItem{ID: "v", ParentID: strPtr("gone"), Name: "Blue"}

	p := BuildVariantPayload(variant, nil)

	assert.Equal(t, "gone", p.ProductID)
	assert.Equal(t, "Blue", p.Title)
	assert.Equal(t, "Blue", *p.VariantTitle)
	assert.Nil(t, p.Price)
	assert.Nil(t, p.ImageURL)
}

func TestBuildVariantPayload_Translations(t *testing.T) {
	t.Run("filters invalid entries", func(t *testing.T) {
		item := &domain.CatalogItem{ID: "a", Name: "A", Translations: []domain.Translation{
			{Language: nil, Name: "No language"},
			{Language: &domain.Language{Locale: nil}, Name: "No locale"},
			translation("x", "Short code"),
			translation("", "Empty code"),
		}}

		p := BuildVariantPayload(item, nil)
		assert.Nil(t, p.Translations)

		out, err := json.Marshal(p)
		require.NoError(t, err)
		assert.NotContains(t, string(out), "translations")
	})

	t.Run("keys by language code", func(t *testing.T) {
		item := &domain.CatalogItem{ID: "a", Name: "A", Translations: []domain.Translation{
			translation("de-DE", "Foo"),
			translation("en-GB", "Bar"),
			translation("fr-FR", ""),
		}}

		p := BuildVariantPayload(item, nil)
		assert.Equal(t, map[string]domain.TranslationPayload{
			"de": {Title: "Foo"},
			"en": {Title: "Bar"},
		}, p.Translations)
	})
}

func TestBuildVariantPayload_EmptyImageOmitted(t *testing.T) {
	item := &domain.CatalogItem{ID: "a", Name: "A", CoverImageURL: strPtr("")}

	out, err := json.Marshal(BuildVariantPayload(item, nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"product_id":"a","variant_id":"a","title":"A","variant_title":null,"price":null}`, string(out))
}

func TestBuildVariantPayloads(t *testing.T) {
	parent := &domain.CatalogItem{ID: "p", Name: "Parent"}
	items := []domain.CatalogItem{
		{ID: "s", Name: "Standalone"},
		{ID: "v1", ParentID: strPtr("p"), Name: "One"},
		{ID: "v2", ParentID: strPtr("p"), Name: "Two"},
	}

	payloads := BuildVariantPayloads(items, map[string]*domain.CatalogItem{"p": parent})

	require.Len(t, payloads, 3)
	assert.Equal(t, "Standalone", payloads[0].Title)
	assert.Equal(t, "Parent", payloads[1].Title)
	assert.Equal(t, "Two", *payloads[2].VariantTitle)
}
