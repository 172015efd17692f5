package service

import "karla-connector/internal/core/domain"

// BuildVariantPayload maps an item and its resolved parent (nil for
// standalone items or unresolved parents) to the Karla catalog payload.
// It never fails: missing data falls back or is left out.
func BuildVariantPayload(item *domain.CatalogItem, parent *domain.CatalogItem) domain.VariantPayload {
	p := domain.VariantPayload{
		ProductID: item.ProductID(),
		VariantID: item.ID,
		Title:     item.DisplayName(),
	}

	if item.IsVariant() {
		own := item.DisplayName()
		p.VariantTitle = &own
		if parent != nil {
			p.Title = parent.DisplayName()
		}
	}

	switch {
	case item.Price != nil:
		p.Price = copyFloat(item.Price)
	case parent != nil && parent.Price != nil:
		p.Price = copyFloat(parent.Price)
	}

	switch {
	case nonEmpty(item.CoverImageURL):
		p.ImageURL = copyString(item.CoverImageURL)
	case parent != nil && nonEmpty(parent.CoverImageURL):
		p.ImageURL = copyString(parent.CoverImageURL)
	}

	if tr := buildTranslations(item.Translations); len(tr) > 0 {
		p.Translations = tr
	}
	return p
}

// BuildVariantPayloads builds one payload per item. parents is keyed by id.
func BuildVariantPayloads(items []domain.CatalogItem, parents map[string]*domain.CatalogItem) []domain.VariantPayload {
	out := make([]domain.VariantPayload, 0, len(items))
	for i := range items {
		item := &items[i]
		var parent *domain.CatalogItem
		if item.ParentID != nil {
			parent = parents[*item.ParentID]
		}
		out = append(out, BuildVariantPayload(item, parent))
	}
	return out
}

// buildTranslations keys titles by the first two characters of the locale
// code. Entries without language, locale, a code of at least two characters
// or a title are skipped.
func buildTranslations(translations []domain.Translation) map[string]domain.TranslationPayload {
	out := make(map[string]domain.TranslationPayload)
	for _, t := range translations {
		if t.Language == nil || t.Language.Locale == nil {
			continue
		}
		code := t.Language.Locale.Code
		if len(code) < 2 || t.Name == "" {
			continue
		}
		out[code[:2]] = domain.TranslationPayload{Title: t.Name}
	}
	return out
}

func nonEmpty(s *string) bool {
	return s != nil && *s != ""
}

func copyString(s *string) *string {
	v := *s
	return &v
}

func copyFloat(f *float64) *float64 {
	v := *f
	return &v
}
