package i18n

import (
	"context"
	"testing"
)

func TestResolve(t *testing.T) {

	t.Run("SupportedLocale", func(t *testing.T) {
		got := Resolve(LocaleKO, TypeSuccess, KeyTodoCreated)
		if got != "할 일이 생성되었습니다" {
			t.Fatalf("unexpected message: %s", got)
		}
	})

	t.Run("UnsupportedLocaleFallsBackToEnglish", func(t *testing.T) {
		got := Resolve(Locale("fr"), TypeError, "E404T001")
		if got != "Todo not found" {
			t.Fatalf("unexpected message: %s", got)
		}
	})

	t.Run("KeyMissingInLocaleFallsBackToEnglish", func(t *testing.T) {
		// ko has no entry for E422T002.
		got := Resolve(LocaleKO, TypeError, "E422T002")
		if got != "Invalid request format" {
			t.Fatalf("unexpected message: %s", got)
		}
	})

	t.Run("MissingErrorKeyYieldsPlaceholder", func(t *testing.T) {
		got := Resolve(LocaleEN, TypeError, "E599X999")
		if got != "Error: E599X999" {
			t.Fatalf("unexpected placeholder: %s", got)
		}
	})

	t.Run("MissingSuccessKeyYieldsPlaceholder", func(t *testing.T) {
		got := Resolve(LocaleEN, TypeSuccess, "NO_SUCH_KEY")
		if got != "?NO_SUCH_KEY?" {
			t.Fatalf("unexpected placeholder: %s", got)
		}
	})
}

func TestFromAcceptLanguage(t *testing.T) {
	cases := []struct {
		header string
		want   Locale
	}{
		{"", LocaleEN},
		{"ko", LocaleKO},
		{"ko-KR,ko;q=0.9,en;q=0.8", LocaleKO},
		{"en-US,en;q=0.5", LocaleEN},
		{"fr-FR", LocaleEN},
		{"KO", LocaleKO},
	}

	for _, tc := range cases {
		if got := FromAcceptLanguage(tc.header); got != tc.want {
			t.Fatalf("%q: got %s, want %s", tc.header, got, tc.want)
		}
	}
}

func TestLocaleContext(t *testing.T) {
	ctx := context.Background()

	if got := FromContext(ctx); got != LocaleEN {
		t.Fatalf("expected fallback locale, got %s", got)
	}

	ctx = WithLocale(ctx, LocaleKO)
	if got := FromContext(ctx); got != LocaleKO {
		t.Fatalf("expected ko, got %s", got)
	}
}
