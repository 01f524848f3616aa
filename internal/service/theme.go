package service

import (
	"context"

	"github.com/nikkjke/finance-tracker/internal/logging"
	"github.com/nikkjke/finance-tracker/internal/storage"
)

// Theme is the display preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// ThemeService manages the theme slot. It is local: no latency, no faults.
type ThemeService struct {
	store storage.Store
	opts  Options
}

func NewThemeService(store storage.Store, opts Options) *ThemeService {
	return &ThemeService{store: store, opts: opts}
}

// Get returns the stored theme, or light when none is stored.
func (s *ThemeService) Get(ctx context.Context) Theme {
	t, ok, err := storage.LoadValue[Theme](ctx, s.store, storage.KeyTheme)
	if err != nil {
		logging.Warnf("theme: read: %v", err)
	}
	if !ok || err != nil || !t.Valid() {
		return ThemeLight
	}
	return t
}

// Set stores t.
func (s *ThemeService) Set(ctx context.Context, t Theme) (Theme, error) {
	if !t.Valid() {
		return "", newError(KindValidation, "theme.set", "Unknown theme %s.", quoted(t))
	}
	if err := s.opts.persisted("theme.set", storage.SaveValue(ctx, s.store, storage.KeyTheme, t)); err != nil {
		return "", err
	}
	return t, nil
}

// Toggle switches between light and dark and returns the new theme.
func (s *ThemeService) Toggle(ctx context.Context) (Theme, error) {
	next := ThemeDark
	if s.Get(ctx) == ThemeDark {
		next = ThemeLight
	}
	return s.Set(ctx, next)
}
