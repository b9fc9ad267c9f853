package data

import (
	"fmt"

	"go.uber.org/zap"
)

// Settings holds the header controls: colour theme and translation edition.
type Settings struct {
	kv     KV
	logger *zap.Logger
}

func NewSettings(kv KV, logger *zap.Logger) *Settings {
	return &Settings{kv: kv, logger: logger}
}

func (s *Settings) Preferences() Preferences {
	return Preferences{Theme: s.Theme(), Translation: s.Translation()}
}

func (s *Settings) Theme() Theme {
	t := Load(s.kv, ThemeKey, s.logger)
	if t != ThemeLight && t != ThemeDark {
		return ThemeKey.Default()
	}
	return t
}

func (s *Settings) SetTheme(t Theme) error {
	if _, err := ParseTheme(string(t)); err != nil {
		return err
	}
	return Save(s.kv, ThemeKey, t)
}

func (s *Settings) ToggleTheme() (Theme, error) {
	next := s.Theme().Toggle()
	return next, s.SetTheme(next)
}

func (s *Settings) Translation() string {
	code := Load(s.kv, TranslationKey, s.logger)
	if _, ok := LookupTranslation(code); !ok {
		return DefaultTranslation
	}
	return code
}

func (s *Settings) SetTranslation(code string) error {
	if _, ok := LookupTranslation(code); !ok {
		return fmt.Errorf("unknown translation %q", code)
	}
	return Save(s.kv, TranslationKey, code)
}
