package prefs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/auditdesk/auditdesk/internal/apperror"
	"github.com/auditdesk/auditdesk/internal/kvstore"
	"github.com/auditdesk/auditdesk/internal/plugins/currency"
	"github.com/auditdesk/auditdesk/internal/plugins/i18n"
)

// PrefsService reads and writes the preference scalars. Reads never fail:
// a missing, unreadable or invalid stored value resolves to the default.
// Writes validate the value, persist it, and log (without surfacing)
// storage failures.
type PrefsService interface {
	Get(ctx context.Context) Preferences
	SetTheme(ctx context.Context, theme Theme) error
	SetCurrency(ctx context.Context, code currency.Code) error
	SetLanguage(ctx context.Context, lang i18n.Language) error
}

type prefsService struct {
	store  kvstore.Store
	keys   kvstore.Keys
	i18n   i18n.I18nService
	logger *slog.Logger
}

func NewPrefsService(store kvstore.Store, keys kvstore.Keys, i18nSvc i18n.I18nService, logger *slog.Logger) PrefsService {
	return &prefsService{store: store, keys: keys, i18n: i18nSvc, logger: logger}
}

func (s *prefsService) Get(ctx context.Context) Preferences {
	out := Preferences{
		Theme:    DefaultTheme,
		Currency: DefaultCurrency,
		Language: i18n.DefaultLanguage,
	}

	if v, ok := s.load(ctx, s.keys.Theme); ok {
		if t := Theme(v); t.Valid() {
			out.Theme = t
		}
	}
	if v, ok := s.load(ctx, s.keys.Currency); ok {
		if c := currency.Code(v); c.Valid() {
			out.Currency = c
		}
	}
	if v, ok := s.load(ctx, s.keys.Language); ok {
		if l := i18n.Language(v); l.Valid() {
			out.Language = l
		}
	}
	return out
}

func (s *prefsService) SetTheme(ctx context.Context, theme Theme) error {
	if !theme.Valid() {
		return apperror.NewValidation(fmt.Sprintf("unsupported theme: %s", theme))
	}
	s.save(ctx, s.keys.Theme, string(theme))
	return nil
}

func (s *prefsService) SetCurrency(ctx context.Context, code currency.Code) error {
	if !code.Valid() {
		return apperror.NewValidation(fmt.Sprintf("unsupported currency: %s", code))
	}
	s.save(ctx, s.keys.Currency, string(code))
	return nil
}

// SetLanguage persists the selection and switches the live translation
// service so subscribers see the change immediately.
func (s *prefsService) SetLanguage(ctx context.Context, lang i18n.Language) error {
	if err := s.i18n.SetLanguage(lang); err != nil {
		return err
	}
	s.save(ctx, s.keys.Language, string(lang))
	return nil
}

// load returns the stored scalar and whether one was present. Read
// failures count as absent.
func (s *prefsService) load(ctx context.Context, key string) (string, bool) {
	v, err := s.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			s.logger.Error("failed to read preference", "key", key, "error", err)
		}
		return "", false
	}
	return v, true
}

func (s *prefsService) save(ctx context.Context, key, value string) {
	if err := s.store.Set(ctx, key, value); err != nil {
		s.logger.Error("failed to save preference", "key", key, "error", err)
	}
}
