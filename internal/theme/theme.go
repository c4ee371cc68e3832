package theme

import (
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/AhmetOsmn/ufc-events-ui/internal/config"
	"github.com/AhmetOsmn/ufc-events-ui/internal/domain"
	"github.com/AhmetOsmn/ufc-events-ui/internal/eventbus"
)

// Theme is the color theme preference
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Store holds the theme preference. An explicit user choice is persisted
// in the config; without one the terminal background decides.
type Store struct {
	cfg *config.Config
	svc config.Service
	bus eventbus.EventBus
	log *zap.Logger

	current  Theme
	explicit bool

	systemDark func() bool
}

// NewStore creates a theme store backed by the given config
func NewStore(cfg *config.Config, svc config.Service, bus eventbus.EventBus, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		cfg:        cfg,
		svc:        svc,
		bus:        bus,
		log:        log,
		systemDark: lipgloss.HasDarkBackground,
	}
}

// Init resolves the starting theme: the persisted choice when present,
// otherwise the terminal's background color
func (s *Store) Init() Theme {
	switch Theme(s.cfg.Theme) {
	case Light, Dark:
		s.current = Theme(s.cfg.Theme)
		s.explicit = true
	default:
		s.explicit = false
		if s.systemDark != nil && s.systemDark() {
			s.current = Dark
		} else {
			s.current = Light
		}
	}
	return s.current
}

// Current returns the active theme
func (s *Store) Current() Theme {
	return s.current
}

// IsDark reports whether the active theme is dark
func (s *Store) IsDark() bool {
	return s.current == Dark
}

// SyncSystem re-evaluates the terminal background. A no-op once the user
// has chosen explicitly.
func (s *Store) SyncSystem() Theme {
	if s.explicit {
		return s.current
	}
	if s.systemDark != nil && s.systemDark() {
		s.current = Dark
	} else {
		s.current = Light
	}
	return s.current
}

// Toggle switches between light and dark, persists the choice, and
// publishes a ThemeChangedEvent
func (s *Store) Toggle() Theme {
	if s.current == Dark {
		return s.Set(Light)
	}
	return s.Set(Dark)
}

// Set makes the given theme the explicit, persisted preference
func (s *Store) Set(t Theme) Theme {
	s.current = t
	s.explicit = true
	s.cfg.Theme = string(t)

	if s.svc != nil {
		if err := s.svc.Save(s.cfg); err != nil {
			s.log.Warn("failed to persist theme", zap.Error(err))
		}
	}
	if s.bus != nil {
		s.bus.Publish(domain.ThemeChangedEvent{Theme: string(t)})
	}
	return s.current
}
