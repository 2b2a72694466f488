package i18n

import (
	"fmt"
	"strings"
)

// Lang is a supported interface language.
type Lang string

const (
	English  Lang = "en"
	Japanese Lang = "ja"

	DefaultLang = English
)

// Languages lists every supported language in display order.
var Languages = []Lang{English, Japanese}

// ParseLang validates a language code.
func ParseLang(code string) (Lang, error) {
	for _, lang := range Languages {
		if string(lang) == code {
			return lang, nil
		}
	}
	return "", fmt.Errorf("unsupported language %q (available: en, ja)", code)
}

// Catalog looks up messages for one language.
type Catalog struct {
	lang Lang
}

func NewCatalog(lang Lang) Catalog {
	if _, ok := messages[lang]; !ok {
		lang = DefaultLang
	}
	return Catalog{lang: lang}
}

func (c Catalog) Lang() Lang {
	return c.lang
}

// Msg returns the message for key, falling back to English and then to the
// key itself. args are placeholder/value pairs substituted for %{placeholder}.
func (c Catalog) Msg(key MessageKey, args ...any) string {
	msg, ok := messages[c.lang][key]
	if !ok {
		msg, ok = messages[DefaultLang][key]
	}
	if !ok {
		msg = string(key)
	}
	return interpolate(msg, args)
}

func interpolate(msg string, args []any) string {
	if len(args) < 2 || !strings.Contains(msg, "%{") {
		return msg
	}
	pairs := make([]string, 0, len(args))
	for i := 0; i+1 < len(args); i += 2 {
		pairs = append(pairs, "%{"+fmt.Sprint(args[i])+"}", fmt.Sprint(args[i+1]))
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}
