package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestNewCatalog_SelectsLanguage(t *testing.T) {
	tests := []struct {
		locale string
		want   language.Tag
	}{
		{"ja", language.Japanese},
		{"ja-JP", language.Japanese},
		{"en", language.English},
		{"en-GB", language.English},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			c, err := NewCatalog(tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Language())
		})
	}
}

func TestNewCatalog_InvalidLocale(t *testing.T) {
	_, err := NewCatalog("not a locale!")
	assert.Error(t, err)
}

func TestCatalog_Get(t *testing.T) {
	ja, err := NewCatalog("ja")
	require.NoError(t, err)
	en, err := NewCatalog("en")
	require.NoError(t, err)

	assert.Equal(t, "欠席", ja.Get(KeyStatusAbsent))
	assert.Equal(t, "Absent", en.Get(KeyStatusAbsent))
	assert.Equal(t, "出勤時間が正しく入力されていません。", ja.Get(KeyInputInvalid, ja.Get(KeyFieldStartTime)))
	assert.Equal(t, "1時間30分", ja.Get(KeyBlankTimeFormat, 1, 30))
	assert.Equal(t, "2024年4月1日(月)", ja.Get(KeyDateWithWeekday, "2024", 4, 1, ja.Get(KeyWeekdayPrefix+"1")))
}

func TestCatalog_GetUnknownKey(t *testing.T) {
	c, err := NewCatalog("en")
	require.NoError(t, err)
	assert.Equal(t, "no.such.key", c.Get("no.such.key"))
}

func TestCatalog_Translations(t *testing.T) {
	c, err := NewCatalog("en")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"欠席", "Absent"}, c.Translations(KeyStatusAbsent))
}

func TestTranslations_SameKeys(t *testing.T) {
	ja := translations[language.Japanese]
	en := translations[language.English]
	require.Len(t, en, len(ja))
	for key := range ja {
		_, ok := en[key]
		assert.True(t, ok, "missing english text for %s", key)
	}
}
