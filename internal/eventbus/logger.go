package eventbus

import (
	"go.uber.org/zap"

	"github.com/AhmetOsmn/ufc-events-ui/internal/domain"
)

// AttachLogger subscribes a zap-backed consumer to every domain event so the
// session log records the full event flow. Email addresses stay out of the
// log. Returns a function detaching all subscriptions.
func AttachLogger(bus EventBus, log *zap.Logger) func() {
	if log == nil {
		log = zap.NewNop()
	}

	unsubs := []func(){
		bus.Subscribe(EventCatalogRequested, func(DomainEvent) {
			log.Info("catalog fetch requested")
		}),
		bus.Subscribe(EventCatalogLoaded, func(e DomainEvent) {
			ev := e.(domain.CatalogLoadedEvent)
			log.Info("catalog loaded",
				zap.Int("count", len(ev.Events)),
				zap.Strings("event_ids", domain.EventIDs(ev.Events)))
		}),
		bus.Subscribe(EventCatalogLoadFailed, func(e DomainEvent) {
			ev := e.(domain.CatalogLoadFailedEvent)
			log.Warn("catalog load failed", zap.String("message", ev.Message), zap.Error(ev.Err))
		}),
		bus.Subscribe(EventSelectionChanged, func(e DomainEvent) {
			ev := e.(domain.SelectionChangedEvent)
			log.Debug("selection changed", zap.Int("total", ev.Total))
		}),
		bus.Subscribe(EventSubscriptionStarted, func(e DomainEvent) {
			ev := e.(domain.SubscriptionStartedEvent)
			log.Info("calendar request started", zap.Int("events", len(ev.EventIDs)))
		}),
		bus.Subscribe(EventSubscriptionSucceeded, func(e DomainEvent) {
			ev := e.(domain.SubscriptionSucceededEvent)
			log.Info("calendar request succeeded", zap.Int("events", len(ev.EventIDs)))
		}),
		bus.Subscribe(EventSubscriptionFailed, func(e DomainEvent) {
			ev := e.(domain.SubscriptionFailedEvent)
			log.Warn("calendar request failed", zap.String("message", ev.Message), zap.Error(ev.Err))
		}),
		bus.Subscribe(EventThemeChanged, func(e DomainEvent) {
			ev := e.(domain.ThemeChangedEvent)
			log.Info("theme changed", zap.String("theme", ev.Theme))
		}),
		bus.Subscribe(EventCalendarExported, func(e DomainEvent) {
			ev := e.(domain.CalendarExportedEvent)
			log.Info("calendar exported", zap.String("path", ev.Path), zap.Int("events", ev.Events))
		}),
		bus.Subscribe(EventError, func(e DomainEvent) {
			ev := e.(domain.ErrorEvent)
			log.Error("error", zap.String("message", ev.Message), zap.Error(ev.Err))
		}),
		bus.Subscribe(EventConfigLoaded, func(e DomainEvent) {
			ev := e.(domain.ConfigLoadedEvent)
			log.Info("config loaded", zap.String("path", ev.Path))
		}),
		bus.Subscribe(EventConfigSaved, func(DomainEvent) {
			log.Debug("config saved")
		}),
	}

	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
