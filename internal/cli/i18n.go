package cli

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-addressbook/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator resolves message keys against the embedded locale files.
type Translator struct {
	Bundle    *i18n.Bundle
	Localizer *i18n.Localizer

	// Languages lists the locale codes found in the embedded files.
	Languages []string
}

// NewTranslator loads every embedded locale and selects lang,
// falling back to English for unknown languages or missing keys.
func NewTranslator(lang string) *Translator {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	t := &Translator{Bundle: bundle}

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		t.SetLanguage(lang)
		return t
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		t.Languages = append(t.Languages, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
		)
	}

	t.SetLanguage(lang)
	return t
}

// SetLanguage switches the active language.
func (t *Translator) SetLanguage(lang string) {
	if lang == "" {
		lang = config.DefaultLanguage
	}
	t.Localizer = i18n.NewLocalizer(t.Bundle, lang, config.DefaultLanguage)
}

// Msg translates a key safely. Unknown keys are returned verbatim.
func (t *Translator) Msg(key string) string {
	return t.Msgf(key, nil)
}

// Msgf translates a key and fills its template with data.
func (t *Translator) Msgf(key string, data map[string]any) string {
	if t == nil || t.Localizer == nil {
		return key
	}
	msg, err := t.Localizer.Localize(&i18n.LocalizeConfig{MessageID: key, TemplateData: data})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}

// EventSummary localizes calendar event titles. It fits
// engine.CalendarGenerator.FormatSummary.
func (t *Translator) EventSummary(name string, age int) string {
	if age == 0 {
		return t.Msgf(config.TKeyEvtSummary, map[string]any{"Name": name})
	}
	return t.Msgf(config.TKeyEvtSummaryAge, map[string]any{"Name": name, "Age": age})
}
