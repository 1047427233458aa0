// Package themes loads color tables from embedded yaml files. The dark
// mode setting selects between the light and dark tables; values missing
// from the chosen theme fall back to the light defaults.
package themes

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	// LightTheme is the default color table.
	LightTheme = "light"
	// DarkTheme is loaded when the dark mode setting is on.
	DarkTheme = "dark"
)

// loadTheme reads themes/${theme}.yml into a string map.
func loadTheme(allThemes embed.FS, theme string) (map[string]string, error) {
	if theme == "" {
		theme = LightTheme
	}

	t := make(map[string]string)
	file := fmt.Sprintf("themes/%v.yml", theme)

	b, err := allThemes.ReadFile(file)
	if err != nil {
		return t, fmt.Errorf("failed to load file %v: %w", file, err)
	}

	err = yaml.Unmarshal(b, &t)
	if err != nil {
		return t, fmt.Errorf("failed to unmarshal file %v: %w", file, err)
	}

	return t, nil
}

// Load returns the merged color table for the named theme. The light theme
// is always loaded first so that colors missing from the requested theme
// still resolve to something visible.
func Load(allThemes embed.FS, theme string) (map[string]string, error) {
	t, err := loadTheme(allThemes, LightTheme)
	if err != nil {
		return t, fmt.Errorf("failed to load default theme %v: %w", LightTheme, err)
	}

	if theme == "" || theme == LightTheme {
		return t, nil
	}

	u, err := loadTheme(allThemes, theme)
	if err != nil {
		return t, fmt.Errorf("failed to load specified theme %v: %w", theme, err)
	}

	for k, v := range u {
		t[k] = v
	}

	return t, nil
}
