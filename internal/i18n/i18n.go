package i18n

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tag identifies a supported display language.
type Tag string

const (
	// TagEnUS is the base language; message keys are en_US text.
	TagEnUS Tag = "en_US"
	// TagPtBR is Brazilian Portuguese.
	TagPtBR Tag = "pt_BR"
)

// Message keys are the literal base-language strings, so the base
// language needs no catalog and unknown keys degrade to themselves.
const (
	MsgHello           = "Hello!\n"
	MsgIntro           = "I'm %s and I came here to help you.\n"
	MsgWhatToDo        = "What would you like to do?\n\n"
	MsgSupportItem     = "/support - Opens a new support ticket\n"
	MsgSettingsItem    = "/settings - Settings of your account\n\n"
	MsgSupportPrompt   = "Please, tell me what you need support with :)"
	MsgAck             = "Give me some time to think. Soon I will return to you with an answer."
	MsgChooseLanguage  = "Please, choose a language:\n"
	MsgLanguageUpdated = "Language updated to %s"
	MsgUnknownLanguage = "Unknown language! :("
	MsgUnknownCommand  = "Sorry, I don't know what you're asking for."
	MsgNoAttribution   = "I can't tell who originally sent that message, so the reply was not delivered."
	MsgStoreFailure    = "Sorry, something went wrong. Please try again later."
)

// Supported lists the closed set of selectable languages, in menu order.
func Supported() []Tag {
	return []Tag{TagEnUS, TagPtBR}
}

// Valid reports whether the tag is a member of the supported set.
// Comparison is an exact string match.
func (t Tag) Valid() bool {
	for _, tag := range Supported() {
		if t == tag {
			return true
		}
	}
	return false
}

// DisplayName returns the human-readable language name.
func (t Tag) DisplayName() string {
	switch t {
	case TagEnUS:
		return "English (US)"
	case TagPtBR:
		return "Português (Brasil)"
	default:
		return string(t)
	}
}

// MenuLabel returns the settings keyboard label, e.g. "en_US - English (US)".
func (t Tag) MenuLabel() string {
	return fmt.Sprintf("%s - %s", t, t.DisplayName())
}

// STTLanguage returns the ISO 639-1 hint for speech-to-text.
func (t Tag) STTLanguage() string {
	if t == TagPtBR {
		return "pt"
	}
	return "en"
}

// Translator maps a message key to localized text.
type Translator func(key string) string

// Identity is the base-language translator: keys are already en_US text.
func Identity(key string) string {
	return key
}

// Catalog holds the loaded translation tables.
type Catalog struct {
	translations map[Tag]map[string]string
}

//go:embed pt_br.yaml
var files embed.FS

// Load reads the embedded catalogs for every non-base language.
func Load() (*Catalog, error) {
	entries, err := loadEntries("pt_br.yaml")
	if err != nil {
		return nil, err
	}
	return &Catalog{
		translations: map[Tag]map[string]string{TagPtBR: entries},
	}, nil
}

// For returns the translator for a tag. Unset or unknown tags get the
// identity translator; keys missing from a catalog fall back to the key.
func (c *Catalog) For(tag Tag) Translator {
	entries, ok := c.translations[tag]
	if !ok {
		return Identity
	}
	return func(key string) string {
		if text, ok := entries[key]; ok && strings.TrimSpace(text) != "" {
			return text
		}
		return key
	}
}

func loadEntries(name string) (map[string]string, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", name, err)
	}
	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", name, err)
	}
	return entries, nil
}
