package app

import (
	"context"

	"go.uber.org/zap"

	"tableflip.dev/meditary/pkg/settings"
	"tableflip.dev/meditary/pkg/store"
)

// Settings returns the current preferences.
func (s *Service) Settings() settings.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings applies fn to a copy of the preferences, validates and
// persists it.
func (s *Service) UpdateSettings(ctx context.Context, fn func(*settings.Settings)) (settings.Settings, error) {
	s.settingsMu.Lock()
	defer s.settingsMu.Unlock()
	if err := s.writable(store.KeySettings); err != nil {
		return settings.Settings{}, err
	}

	s.mu.RLock()
	next := s.settings
	s.mu.RUnlock()

	fn(&next)
	if err := next.Validate(); err != nil {
		return settings.Settings{}, err
	}
	if err := s.commit(ctx, store.KeySettings, next, func() { s.settings = next }); err != nil {
		return settings.Settings{}, err
	}
	s.log.Debug("settings saved", zap.String("language", next.Language), zap.Bool("reminder", next.Reminder.Enabled))
	return next, nil
}

// SetLanguage switches the display language.
func (s *Service) SetLanguage(ctx context.Context, lang string) error {
	_, err := s.UpdateSettings(ctx, func(p *settings.Settings) {
		p.Language = lang
	})
	return err
}

// SetReminder configures the daily reminder.
func (s *Service) SetReminder(ctx context.Context, r settings.Reminder) error {
	_, err := s.UpdateSettings(ctx, func(p *settings.Settings) {
		p.Reminder = r
	})
	return err
}
