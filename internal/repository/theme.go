package repository

import "errors"

const themeKey = "theme"

// ErrUnknownTheme is returned by Save for a value outside the known set.
var ErrUnknownTheme = errors.New("unknown theme value")

// Valid theme preference values.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// ThemeRepository persists the theme preference under its own key.
type ThemeRepository struct {
	kv Store
}

// NewThemeRepository returns a repository over kv.
func NewThemeRepository(kv Store) *ThemeRepository {
	return &ThemeRepository{kv: kv}
}

// Load returns the stored preference, or ThemeSystem when absent or not one
// of the known values.
func (r *ThemeRepository) Load() string {
	raw, ok, err := r.kv.Get(themeKey)
	if err != nil || !ok {
		return ThemeSystem
	}
	switch raw {
	case ThemeLight, ThemeDark, ThemeSystem:
		return raw
	}
	return ThemeSystem
}

// Save stores the preference. Unknown values are rejected.
func (r *ThemeRepository) Save(theme string) error {
	switch theme {
	case ThemeLight, ThemeDark, ThemeSystem:
		return r.kv.Set(themeKey, theme)
	}
	return ErrUnknownTheme
}
