package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"net/http"
	"path"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/pl"
	ut "github.com/go-playground/universal-translator"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var catalogs embed.FS

type ctxKey struct{}

// Translator resolves dotted message keys for the supported locales
type Translator struct {
	uni       *ut.UniversalTranslator
	supported []language.Tag
	matcher   language.Matcher
	fallback  string
}

func New(defaultLocale string) (*Translator, error) {
	localeSet := []locales.Translator{en.New(), pl.New()}
	supported := []language.Tag{language.English, language.Polish}

	uni := ut.New(localeSet[0], localeSet...)
	for _, l := range localeSet {
		trans, _ := uni.GetTranslator(l.Locale())
		if err := loadCatalog(trans, l.Locale()); err != nil {
			return nil, err
		}
	}

	t := &Translator{
		uni:       uni,
		supported: supported,
		matcher:   language.NewMatcher(supported),
		fallback:  "en",
	}
	if _, found := uni.GetTranslator(defaultLocale); found {
		t.fallback = defaultLocale
	}
	return t, nil
}

func loadCatalog(trans ut.Translator, locale string) error {
	raw, err := catalogs.ReadFile(path.Join("locales", locale+".json"))
	if err != nil {
		return fmt.Errorf("missing catalog for %s: %w", locale, err)
	}

	messages := map[string]string{}
	if err := json.Unmarshal(raw, &messages); err != nil {
		return fmt.Errorf("invalid catalog for %s: %w", locale, err)
	}
	for key, text := range messages {
		if err := trans.Add(key, text, false); err != nil {
			return fmt.Errorf("catalog %s key %s: %w", locale, key, err)
		}
	}
	return nil
}

// Universal exposes the underlying translator set for validator message registration
func (t *Translator) Universal() *ut.UniversalTranslator {
	return t.uni
}

// Fallback is the locale used when nothing in the request matches
func (t *Translator) Fallback() string {
	return t.fallback
}

// Translate resolves key for locale, then for English, then returns the key itself
func (t *Translator) Translate(locale, key string) string {
	for _, loc := range []string{locale, t.fallback, "en"} {
		trans, found := t.uni.GetTranslator(loc)
		if !found {
			continue
		}
		if msg, err := trans.T(key); err == nil {
			return msg
		}
	}
	return key
}

// Match picks the best supported locale for a lng query value or an Accept-Language header
func (t *Translator) Match(lng, acceptLanguage string) string {
	if lng != "" {
		if tag, err := language.Parse(lng); err == nil {
			if loc, ok := t.pick(tag); ok {
				return loc
			}
		}
	}

	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			if loc, ok := t.pick(tags...); ok {
				return loc
			}
		}
	}
	return t.fallback
}

func (t *Translator) pick(tags ...language.Tag) (string, bool) {
	_, idx, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return "", false
	}
	base, _ := t.supported[idx].Base()
	return base.String(), true
}

// FromRequest resolves the locale for an incoming request
func (t *Translator) FromRequest(r *http.Request) string {
	return t.Match(r.URL.Query().Get("lng"), r.Header.Get("Accept-Language"))
}

// WithLocale stores the request locale on ctx
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, ctxKey{}, locale)
}

// LocaleFrom reads the request locale stored by WithLocale
func LocaleFrom(ctx context.Context) string {
	if loc, ok := ctx.Value(ctxKey{}).(string); ok {
		return loc
	}
	return ""
}
