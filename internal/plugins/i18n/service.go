package i18n

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/auditdesk/auditdesk/internal/apperror"
)

// Listener is invoked after the active language changes.
type Listener func(lang Language)

// I18nService resolves translation keys against the active language.
type I18nService interface {
	T(key string) string
	TI(key string, params map[string]string) string
	Current() Language
	SetLanguage(lang Language) error
	Languages() []Info
	Translations(lang Language) (map[string]string, error)
	Subscribe(fn Listener) (unsubscribe func())
}

type i18nService struct {
	logger *slog.Logger

	mu        sync.RWMutex
	current   Language
	listeners map[int]Listener
	nextID    int
}

func NewI18nService(logger *slog.Logger) I18nService {
	return &i18nService{
		logger:    logger,
		current:   DefaultLanguage,
		listeners: make(map[int]Listener),
	}
}

// T looks up key in the active language, falling back to English and
// finally to the key itself. Missing keys are logged once per lookup.
func (s *i18nService) T(key string) string {
	s.mu.RLock()
	lang := s.current
	s.mu.RUnlock()

	if v, ok := translations[lang][key]; ok {
		return v
	}
	if v, ok := translations[English][key]; ok {
		return v
	}
	s.logger.Warn("missing translation key", "key", key, "language", string(lang))
	return key
}

// TI resolves key like T and substitutes {{name}} placeholders from params.
func (s *i18nService) TI(key string, params map[string]string) string {
	out := s.T(key)
	for name, value := range params {
		out = strings.ReplaceAll(out, "{{"+name+"}}", value)
	}
	return out
}

func (s *i18nService) Current() Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SetLanguage switches the active language and notifies subscribers.
// Setting the language already active is a no-op and notifies nobody.
func (s *i18nService) SetLanguage(lang Language) error {
	if !lang.Valid() {
		return apperror.NewValidation(fmt.Sprintf("unsupported language: %s", lang))
	}

	s.mu.Lock()
	if s.current == lang {
		s.mu.Unlock()
		return nil
	}
	s.current = lang
	notify := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		notify = append(notify, fn)
	}
	s.mu.Unlock()

	for _, fn := range notify {
		fn(lang)
	}
	return nil
}

func (s *i18nService) Languages() []Info {
	out := make([]Info, 0, len(languageOrder))
	for _, lang := range languageOrder {
		out = append(out, languages[lang])
	}
	return out
}

// Translations returns the full dictionary for lang.
func (s *i18nService) Translations(lang Language) (map[string]string, error) {
	if !lang.Valid() {
		return nil, apperror.NewNotFound(fmt.Sprintf("language %s", lang))
	}
	dict := translations[lang]
	out := make(map[string]string, len(dict))
	for k, v := range dict {
		out[k] = v
	}
	return out, nil
}

func (s *i18nService) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}
