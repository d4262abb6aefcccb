// Package prefs runs the settings commands.
package prefs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/meditary/pkg/app"
	"tableflip.dev/meditary/pkg/settings"
)

var errNoService = errors.New("prefs: no service")

type Get struct {
	Service *app.Service
}

func (n *Get) Do(_ context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	Print(n.Service.Settings())
	return nil
}

// Print renders the settings as a two-column table.
func Print(s settings.Settings) {
	reminder := "off"
	if s.Reminder.Enabled {
		reminder = s.ReminderTime()
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("language", s.Language)
	tbl.AddRow("reminder", reminder)
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Set changes the fields that were given. Reminder accepts HH:MM, "on" or
// "off".
type Set struct {
	Service  *app.Service
	Language *string
	Reminder *string
}

func (n *Set) Do(ctx context.Context) error {
	if n.Service == nil {
		return errNoService
	}
	var reminder *settings.Reminder
	if n.Reminder != nil {
		r, err := ParseReminder(n.Service.Settings().Reminder, *n.Reminder)
		if err != nil {
			return err
		}
		reminder = &r
	}
	s, err := n.Service.UpdateSettings(ctx, func(p *settings.Settings) {
		if n.Language != nil {
			p.Language = strings.ToLower(strings.TrimSpace(*n.Language))
		}
		if reminder != nil {
			p.Reminder = *reminder
		}
	})
	if err != nil {
		return err
	}
	Print(s)
	return nil
}

// ParseReminder applies raw to current: "off" disables, "on" enables at the
// stored time, HH:MM enables at that time.
func ParseReminder(current settings.Reminder, raw string) (settings.Reminder, error) {
	switch v := strings.ToLower(strings.TrimSpace(raw)); v {
	case "off", "false", "no":
		current.Enabled = false
		return current, nil
	case "on", "true", "yes":
		current.Enabled = true
		return current, nil
	default:
		h, m, err := settings.ParseReminderTime(v)
		if err != nil {
			return settings.Reminder{}, err
		}
		return settings.Reminder{Enabled: true, Hour: h, Minute: m}, nil
	}
}
