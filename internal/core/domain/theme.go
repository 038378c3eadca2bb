package domain

import "errors"

// Theme is the UI colour scheme a client prefers.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	DefaultTheme = ThemeLight
)

var ErrInvalidTheme = errors.New("invalid theme")

// ParseTheme validates an explicit theme choice.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	}
	return "", ErrInvalidTheme
}

// ThemeFromStored reads a persisted value. Anything but "dark" is light.
func ThemeFromStored(s string) Theme {
	if Theme(s) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
