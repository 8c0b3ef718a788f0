// Package i18n переводит сообщения интерфейса (ru по умолчанию, en).
//
// Ключи сообщений — английские строки. Язык выбирается по Accept-Language,
// при отсутствии совпадения используется язык из locale.default.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Bundle — каталог переводов и матчер языков. Создаётся один раз при старте.
type Bundle struct {
	cat     *catalog.Builder
	tags    []language.Tag
	matcher language.Matcher
}

// New собирает каталог. defaultLang — "ru" или "en".
func New(defaultLang string) (*Bundle, error) {
	def, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("parse default locale: %w", err)
	}
	base, _ := def.Base()

	var tags []language.Tag
	switch base.String() {
	case "ru":
		tags = []language.Tag{language.Russian, language.English}
	case "en":
		tags = []language.Tag{language.English, language.Russian}
	default:
		return nil, fmt.Errorf("unsupported locale %q", defaultLang)
	}

	cat := catalog.NewBuilder(catalog.Fallback(tags[0]))
	for _, e := range entries {
		if err := cat.SetString(language.English, e.key, e.key); err != nil {
			return nil, fmt.Errorf("catalog en %q: %w", e.key, err)
		}
		if err := cat.SetString(language.Russian, e.key, e.ru); err != nil {
			return nil, fmt.Errorf("catalog ru %q: %w", e.key, err)
		}
	}

	return &Bundle{cat: cat, tags: tags, matcher: language.NewMatcher(tags)}, nil
}

// Localizer выбирает язык по заголовку Accept-Language.
func (b *Bundle) Localizer(acceptLanguage string) *Localizer {
	_, idx := language.MatchStrings(b.matcher, acceptLanguage)
	tag := b.tags[idx]
	return &Localizer{
		tag: tag,
		p:   message.NewPrinter(tag, message.Catalog(b.cat)),
	}
}

// Localizer переводит строки на один язык. Используется в шаблонах: {{.L.T "Submit"}}.
type Localizer struct {
	tag language.Tag
	p   *message.Printer
}

// T возвращает перевод key, подставляя args как в fmt.Sprintf.
func (l *Localizer) T(key string, args ...any) string {
	return l.p.Sprintf(key, args...)
}

// Lang — код языка для <html lang="...">.
func (l *Localizer) Lang() string {
	base, _ := l.tag.Base()
	return base.String()
}

// Label — подпись поля формы по его имени в HTML.
func (l *Localizer) Label(field string) string {
	key, ok := labels[field]
	if !ok {
		return field
	}
	return l.T(key)
}
