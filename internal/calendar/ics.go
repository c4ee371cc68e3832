package calendar

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	crerr "github.com/cockroachdb/errors"

	"github.com/AhmetOsmn/ufc-events-ui/internal/domain"
)

const (
	productID = "-//ufc-events-ui//event catalog//TR"

	// Fight cards have no published end time; block out a full card's worth
	defaultEventDuration = 5 * time.Hour
)

// Build renders the given events as an iCalendar document
func Build(events []domain.Event) (*ics.Calendar, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)

	for _, e := range events {
		start, err := time.Parse(time.RFC3339, e.Date)
		if err != nil {
			return nil, crerr.Wrapf(err, "event %s has unparsable date %q", e.ID, e.Date)
		}

		ev := cal.AddEvent(e.ID)
		ev.SetDtStampTime(time.Now())
		ev.SetStartAt(start)
		ev.SetEndAt(start.Add(defaultEventDuration))
		ev.SetSummary(e.Title)
		ev.SetLocation(e.Location)
		if desc := fightCardDescription(e.Fights); desc != "" {
			ev.SetDescription(desc)
		}
	}

	return cal, nil
}

// Export writes the events to an .ics file in dir ("" means the current
// directory) and returns the file path
func Export(events []domain.Event, dir string) (string, error) {
	if len(events) == 0 {
		return "", crerr.New("no events to export")
	}

	cal, err := Build(events)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("ufc-events-%s.ics", time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)

	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", crerr.Wrap(err, "create export directory")
		}
	}

	if err := os.WriteFile(path, []byte(cal.Serialize()), 0o644); err != nil {
		return "", crerr.Wrap(err, "write ics file")
	}
	return path, nil
}

func fightCardDescription(fights []domain.Fight) string {
	var b strings.Builder
	for i, f := range fights {
		if i > 0 {
			b.WriteString("\n")
		}
		names := make([]string, 0, len(f.Fighters))
		for _, fr := range f.Fighters {
			names = append(names, fr.Name)
		}
		b.WriteString(fmt.Sprintf("%s (%s): %s", f.OrderLabel(), f.WeightClass, strings.Join(names, " vs ")))
	}
	return b.String()
}
