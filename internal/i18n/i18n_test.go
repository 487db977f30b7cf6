package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityReturnsKeyUnchanged(t *testing.T) {
	assert.Equal(t, "Hello!\n", Identity("Hello!\n"))
}

func TestForUnsetTagIsIdentity(t *testing.T) {
	catalog, err := Load()
	require.NoError(t, err)

	translate := catalog.For("")
	assert.Equal(t, MsgHello, translate(MsgHello))
	assert.Equal(t, MsgAck, translate(MsgAck))
}

func TestForUnknownTagIsIdentity(t *testing.T) {
	catalog, err := Load()
	require.NoError(t, err)

	translate := catalog.For("fr_FR")
	assert.Equal(t, MsgHello, translate(MsgHello))
}

func TestForPortugueseTranslates(t *testing.T) {
	catalog, err := Load()
	require.NoError(t, err)

	translate := catalog.For(TagPtBR)
	assert.Equal(t, "Olá!\n", translate(MsgHello))
	assert.Equal(t, "Idioma desconhecido! :(", translate(MsgUnknownLanguage))
}

func TestPortugueseCatalogCoversAllMessages(t *testing.T) {
	catalog, err := Load()
	require.NoError(t, err)

	translate := catalog.For(TagPtBR)
	keys := []string{
		MsgHello, MsgIntro, MsgWhatToDo, MsgSupportItem, MsgSettingsItem,
		MsgSupportPrompt, MsgAck, MsgChooseLanguage, MsgLanguageUpdated,
		MsgUnknownLanguage, MsgUnknownCommand, MsgNoAttribution, MsgStoreFailure,
	}
	for _, key := range keys {
		assert.NotEqual(t, key, translate(key), "missing pt_BR entry for %q", key)
	}
}

func TestMissingKeyFallsBackToKey(t *testing.T) {
	catalog, err := Load()
	require.NoError(t, err)

	translate := catalog.For(TagPtBR)
	assert.Equal(t, "no such key", translate("no such key"))
}

func TestTagValid(t *testing.T) {
	assert.True(t, TagEnUS.Valid())
	assert.True(t, TagPtBR.Valid())
	assert.False(t, Tag("fr_FR").Valid())
	assert.False(t, Tag("").Valid())
	assert.False(t, Tag("pt_br").Valid(), "comparison is exact")
}

func TestTagDisplayNameAndMenuLabel(t *testing.T) {
	assert.Equal(t, "English (US)", TagEnUS.DisplayName())
	assert.Equal(t, "Português (Brasil)", TagPtBR.DisplayName())
	assert.Equal(t, "en_US - English (US)", TagEnUS.MenuLabel())
	assert.Equal(t, "pt_BR - Português (Brasil)", TagPtBR.MenuLabel())
}

func TestSTTLanguage(t *testing.T) {
	assert.Equal(t, "pt", TagPtBR.STTLanguage())
	assert.Equal(t, "en", TagEnUS.STTLanguage())
	assert.Equal(t, "en", Tag("").STTLanguage())
}
