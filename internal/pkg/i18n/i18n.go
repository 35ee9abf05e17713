// Package i18n resolves localized client-facing messages.
//
// Resolution is a pure function over a nested locale→type→key catalog:
// an unsupported locale falls back to English, and a key missing even
// under the fallback yields a synthetic placeholder embedding the key
// so the gap is visible instead of silently swallowed.
package i18n

import (
	"context"
	"strings"
)

// Locale is a lowercase two-letter language tag.
type Locale string

const (
	// LocaleEN is the fallback locale; its catalog is authoritative.
	LocaleEN Locale = "en"
	// LocaleKO is the Korean catalog.
	LocaleKO Locale = "ko"
)

// Type separates success messages (keyed by message key) from error
// messages (keyed by wire error code).
type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
)

// Resolve returns the message for key under loc and typ.
//
// Lookup order: requested locale, then English, then a placeholder.
// Error placeholders read "Error: <key>"; success placeholders read
// "?<key>?".
func Resolve(loc Locale, typ Type, key string) string {
	if byType, ok := catalog[loc]; ok {
		if msg, ok := byType[typ][key]; ok {
			return msg
		}
	}

	if msg, ok := catalog[LocaleEN][typ][key]; ok {
		return msg
	}

	if typ == TypeError {
		return "Error: " + key
	}

	return "?" + key + "?"
}

// FromAcceptLanguage extracts the locale from an Accept-Language header
// value: first tag, region stripped, lowercased. Absent or unsupported
// values resolve to English.
func FromAcceptLanguage(header string) Locale {
	if header == "" {
		return LocaleEN
	}

	tag := header
	if i := strings.IndexByte(tag, ','); i >= 0 {
		tag = tag[:i]
	}
	if i := strings.IndexByte(tag, ';'); i >= 0 {
		tag = tag[:i]
	}
	if i := strings.IndexByte(tag, '-'); i >= 0 {
		tag = tag[:i]
	}

	loc := Locale(strings.ToLower(strings.TrimSpace(tag)))
	if _, ok := catalog[loc]; !ok {
		return LocaleEN
	}

	return loc
}

type contextKey struct{}

// WithLocale stores the request locale in the context.
func WithLocale(ctx context.Context, loc Locale) context.Context {
	return context.WithValue(ctx, contextKey{}, loc)
}

// FromContext returns the request locale, defaulting to English.
func FromContext(ctx context.Context) Locale {
	if loc, ok := ctx.Value(contextKey{}).(Locale); ok {
		return loc
	}

	return LocaleEN
}
