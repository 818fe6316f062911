package repository

import (
	"context"
	"fmt"

	"kanakku/internal/i18n"
	"kanakku/internal/storage"
)

// Settings persists the active locale in its own store slot.
type Settings struct {
	store storage.KV
}

func NewSettings(store storage.KV) *Settings {
	return &Settings{store: store}
}

// Locale returns the stored locale; ok is false when none was ever
// chosen (first launch).
func (s *Settings) Locale(ctx context.Context) (i18n.Locale, bool, error) {
	raw, ok, err := s.store.Get(ctx, storage.KeyLocale)
	if err != nil {
		return i18n.DefaultLocale, false, fmt.Errorf("load locale: %w", err)
	}
	if !ok {
		return i18n.DefaultLocale, false, nil
	}
	return i18n.ParseLocale(raw), true, nil
}

func (s *Settings) SetLocale(ctx context.Context, locale i18n.Locale) error {
	if err := s.store.Set(ctx, storage.KeyLocale, string(locale)); err != nil {
		return fmt.Errorf("store locale: %w", err)
	}
	return nil
}
