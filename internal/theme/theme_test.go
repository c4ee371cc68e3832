package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmetOsmn/ufc-events-ui/internal/config"
)

type fakeConfigService struct {
	saved *config.Config
}

func (f *fakeConfigService) Load() (*config.Config, error)               { return config.Default(), nil }
func (f *fakeConfigService) Save(cfg *config.Config) error               { f.saved = cfg; return nil }
func (f *fakeConfigService) LoadFromPath(string) (*config.Config, error) { return config.Default(), nil }
func (f *fakeConfigService) SaveToPath(*config.Config, string) error     { return nil }
func (f *fakeConfigService) Path() string                                { return "" }

func newTestStore(cfg *config.Config, systemDark bool) (*Store, *fakeConfigService) {
	svc := &fakeConfigService{}
	s := NewStore(cfg, svc, nil, nil)
	s.systemDark = func() bool { return systemDark }
	return s, svc
}

func TestInitUsesPersistedChoice(t *testing.T) {
	cfg := config.Default()
	cfg.Theme = "dark"

	// Persisted dark wins even on a light terminal
	s, _ := newTestStore(cfg, false)
	assert.Equal(t, Dark, s.Init())
	assert.True(t, s.IsDark())
}

func TestInitFallsBackToTerminalBackground(t *testing.T) {
	s, _ := newTestStore(config.Default(), true)
	assert.Equal(t, Dark, s.Init())

	s, _ = newTestStore(config.Default(), false)
	assert.Equal(t, Light, s.Init())
}

func TestInitIgnoresUnknownPersistedValue(t *testing.T) {
	cfg := config.Default()
	cfg.Theme = "solarized"

	s, _ := newTestStore(cfg, true)
	assert.Equal(t, Dark, s.Init())
}

func TestTogglePersistsChoice(t *testing.T) {
	cfg := config.Default()
	s, svc := newTestStore(cfg, false)
	s.Init()

	assert.Equal(t, Dark, s.Toggle())
	require.NotNil(t, svc.saved)
	assert.Equal(t, "dark", svc.saved.Theme)

	assert.Equal(t, Light, s.Toggle())
	assert.Equal(t, "light", svc.saved.Theme)
}

func TestSyncSystemFollowsTerminalUntilExplicitChoice(t *testing.T) {
	s, _ := newTestStore(config.Default(), false)
	s.Init()
	assert.Equal(t, Light, s.Current())

	s.systemDark = func() bool { return true }
	assert.Equal(t, Dark, s.SyncSystem())
}

func TestSyncSystemIsNoOpAfterExplicitChoice(t *testing.T) {
	s, _ := newTestStore(config.Default(), false)
	s.Init()
	s.Set(Light)

	s.systemDark = func() bool { return true }
	assert.Equal(t, Light, s.SyncSystem())
}
