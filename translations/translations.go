// Package translations loads the user-visible string table from embedded
// yaml files, merging the $LANG-specific table over the default language.
package translations

import (
	"embed"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultLanguage = "en_US.UTF-8"

// load reads translations/${language}.yml into a string map, falling back
// to the default language file when the requested one is missing.
func load(allTranslations embed.FS, language string) (map[string]string, error) {
	if language == "" {
		language = defaultLanguage
	}

	t := make(map[string]string)
	file := fmt.Sprintf("translations/%v.yml", language)

	b, err := allTranslations.ReadFile(file)
	if err != nil {
		log.Printf("failed to load file %v: %v", file, err.Error())

		file = fmt.Sprintf("translations/%v.yml", defaultLanguage)

		b, err = allTranslations.ReadFile(file)
		if err != nil {
			return t, fmt.Errorf("failed to load default language file %v: %w", file, err)
		}
	}

	err = yaml.Unmarshal(b, &t)
	if err != nil {
		return t, fmt.Errorf("failed to unmarshal file %v: %w", file, err)
	}

	return t, nil
}

// Load returns the merged string table for the current $LANG. Strings that
// are not yet translated keep their default-language text instead of
// rendering empty.
func Load(allTranslations embed.FS) (map[string]string, error) {
	t, err := load(allTranslations, defaultLanguage)
	if err != nil {
		return t, fmt.Errorf("failed to load default translations %v: %w", defaultLanguage, err)
	}

	language := os.Getenv("LANG")
	if language == "" || language == defaultLanguage {
		return t, nil
	}

	u, err := load(allTranslations, language)
	if err != nil {
		return t, fmt.Errorf("failed to load specified translations %v: %w", language, err)
	}

	for k, v := range u {
		t[k] = v
	}

	return t, nil
}
