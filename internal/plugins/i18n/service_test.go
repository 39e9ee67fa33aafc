package i18n

import (
	"io"
	"log/slog"
	"testing"
)

func newTestService() I18nService {
	return NewI18nService(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestTranslateActiveLanguage(t *testing.T) {
	svc := newTestService()

	if got := svc.T("dashboard"); got != "Dashboard" {
		t.Errorf("expected Dashboard, got %q", got)
	}

	if err := svc.SetLanguage(French); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := svc.T("dashboard"); got != "Tableau de bord" {
		t.Errorf("expected Tableau de bord, got %q", got)
	}
}

func TestTranslateFallsBackToEnglish(t *testing.T) {
	translations[English]["test_only_key"] = "Test Only"
	defer delete(translations[English], "test_only_key")

	svc := newTestService()
	if err := svc.SetLanguage(French); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := svc.T("test_only_key"); got != "Test Only" {
		t.Errorf("expected English fallback, got %q", got)
	}
}

func TestTranslateUnknownKeyReturnsKey(t *testing.T) {
	svc := newTestService()
	if got := svc.T("nonexistent_key"); got != "nonexistent_key" {
		t.Errorf("expected key passthrough, got %q", got)
	}
}

func TestTranslateInterpolation(t *testing.T) {
	translations[English]["greeting_name"] = "Hello, {{name}}! You have {{count}} reports."
	defer delete(translations[English], "greeting_name")

	svc := newTestService()
	got := svc.TI("greeting_name", map[string]string{"name": "Ama", "count": "3"})
	if got != "Hello, Ama! You have 3 reports." {
		t.Errorf("unexpected interpolation result: %q", got)
	}
}

func TestSetLanguageRejectsUnsupported(t *testing.T) {
	svc := newTestService()
	if err := svc.SetLanguage(Language("de")); err == nil {
		t.Fatal("expected error for unsupported language")
	}
	if svc.Current() != English {
		t.Errorf("current language changed after rejected set: %s", svc.Current())
	}
}

func TestSetLanguageNotifiesOnChangeOnly(t *testing.T) {
	svc := newTestService()

	var calls []Language
	unsubscribe := svc.Subscribe(func(lang Language) {
		calls = append(calls, lang)
	})

	if err := svc.SetLanguage(French); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.SetLanguage(French); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calls) != 1 || calls[0] != French {
		t.Fatalf("expected exactly one notification for fr, got %v", calls)
	}

	unsubscribe()
	if err := svc.SetLanguage(English); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calls) != 1 {
		t.Errorf("listener called after unsubscribe: %v", calls)
	}
}

func TestTranslationsDictionary(t *testing.T) {
	svc := newTestService()

	dict, err := svc.Translations(French)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dict["drafts"] != "Brouillons" {
		t.Errorf("unexpected fr dictionary entry: %q", dict["drafts"])
	}

	if _, err := svc.Translations(Language("xx")); err == nil {
		t.Fatal("expected error for unknown language")
	}
}

func TestLanguagesOrderedAndComplete(t *testing.T) {
	svc := newTestService()
	infos := svc.Languages()
	if len(infos) != 2 {
		t.Fatalf("expected 2 languages, got %d", len(infos))
	}
	if infos[0].Code != English || infos[1].Code != French {
		t.Errorf("unexpected language order: %+v", infos)
	}
}
