package prefs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/auditdesk/auditdesk/internal/kvstore"
	"github.com/auditdesk/auditdesk/internal/plugins/currency"
	"github.com/auditdesk/auditdesk/internal/plugins/i18n"
)

type mockStore struct {
	getFn    func(ctx context.Context, key string) (string, error)
	setFn    func(ctx context.Context, key, value string) error
	deleteFn func(ctx context.Context, key string) error
}

func (m *mockStore) Get(ctx context.Context, key string) (string, error) {
	return m.getFn(ctx, key)
}

func (m *mockStore) Set(ctx context.Context, key, value string) error {
	return m.setFn(ctx, key, value)
}

func (m *mockStore) Delete(ctx context.Context, key string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, key)
	}
	return nil
}

func memStore(values map[string]string) *mockStore {
	return &mockStore{
		getFn: func(_ context.Context, key string) (string, error) {
			v, ok := values[key]
			if !ok {
				return "", kvstore.ErrNotFound
			}
			return v, nil
		},
		setFn: func(_ context.Context, key, value string) error {
			values[key] = value
			return nil
		},
	}
}

func newTestService(store kvstore.Store) (PrefsService, i18n.I18nService) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	i18nSvc := i18n.NewI18nService(logger)
	return NewPrefsService(store, kvstore.NewKeys("audit_demo"), i18nSvc, logger), i18nSvc
}

func TestGetDefaults(t *testing.T) {
	svc, _ := newTestService(memStore(map[string]string{}))

	got := svc.Get(context.Background())
	want := Preferences{Theme: ThemeLight, Currency: currency.USD, Language: i18n.English}
	if got != want {
		t.Errorf("expected defaults %+v, got %+v", want, got)
	}
}

func TestGetStoredValues(t *testing.T) {
	svc, _ := newTestService(memStore(map[string]string{
		"audit_demo:theme":    "dark",
		"audit_demo:currency": "GHS",
		"audit_demo:language": "fr",
	}))

	got := svc.Get(context.Background())
	want := Preferences{Theme: ThemeDark, Currency: currency.GHS, Language: i18n.French}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestGetIgnoresInvalidStoredValues(t *testing.T) {
	svc, _ := newTestService(memStore(map[string]string{
		"audit_demo:theme":    "solarized",
		"audit_demo:currency": "XBT",
		"audit_demo:language": "de",
	}))

	got := svc.Get(context.Background())
	want := Preferences{Theme: ThemeLight, Currency: currency.USD, Language: i18n.English}
	if got != want {
		t.Errorf("expected defaults for invalid values, got %+v", got)
	}
}

func TestGetSwallowsReadFailure(t *testing.T) {
	store := &mockStore{
		getFn: func(context.Context, string) (string, error) {
			return "", errors.New("connection refused")
		},
	}
	svc, _ := newTestService(store)

	got := svc.Get(context.Background())
	if got.Theme != ThemeLight || got.Currency != currency.USD {
		t.Errorf("expected defaults on read failure, got %+v", got)
	}
}

func TestSetThemeValidation(t *testing.T) {
	values := map[string]string{}
	svc, _ := newTestService(memStore(values))

	if err := svc.SetTheme(context.Background(), Theme("neon")); err == nil {
		t.Fatal("expected error for invalid theme")
	}
	if err := svc.SetTheme(context.Background(), ThemeDark); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if values["audit_demo:theme"] != "dark" {
		t.Errorf("theme not persisted: %v", values)
	}
}

func TestSetCurrencyValidation(t *testing.T) {
	values := map[string]string{}
	svc, _ := newTestService(memStore(values))

	if err := svc.SetCurrency(context.Background(), currency.Code("XBT")); err == nil {
		t.Fatal("expected error for unknown currency")
	}
	if err := svc.SetCurrency(context.Background(), currency.NGN); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if values["audit_demo:currency"] != "NGN" {
		t.Errorf("currency not persisted: %v", values)
	}
}

func TestSetLanguageSwitchesTranslations(t *testing.T) {
	values := map[string]string{}
	svc, i18nSvc := newTestService(memStore(values))

	if err := svc.SetLanguage(context.Background(), i18n.French); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if i18nSvc.Current() != i18n.French {
		t.Errorf("translation service not switched: %s", i18nSvc.Current())
	}
	if values["audit_demo:language"] != "fr" {
		t.Errorf("language not persisted: %v", values)
	}

	if err := svc.SetLanguage(context.Background(), i18n.Language("de")); err == nil {
		t.Fatal("expected error for unsupported language")
	}
}

func TestSetSwallowsWriteFailure(t *testing.T) {
	store := &mockStore{
		getFn: func(context.Context, string) (string, error) {
			return "", kvstore.ErrNotFound
		},
		setFn: func(context.Context, string, string) error {
			return errors.New("connection refused")
		},
	}
	svc, _ := newTestService(store)

	if err := svc.SetTheme(context.Background(), ThemeDark); err != nil {
		t.Errorf("write failure surfaced: %v", err)
	}
}
