package calendar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmetOsmn/ufc-events-ui/internal/domain"
)

func sampleEvents() []domain.Event {
	three := 3
	return []domain.Event{
		{
			ID:       "ufc-319",
			Title:    "UFC 319",
			Location: "United Center, Chicago",
			Date:     "2025-08-16T22:00:00Z",
			Fights: []domain.Fight{
				{
					WeightClass: "Middleweight",
					Order:       1,
					Fighters: []domain.Fighter{
						{Name: "Dricus Du Plessis", Record: "23-2-0"},
						{Name: "Khamzat Chimaev", Record: "14-0-0", Ranking: &three},
					},
				},
			},
		},
		{
			ID:       "ufc-320",
			Title:    "UFC 320",
			Location: "T-Mobile Arena, Las Vegas",
			Date:     "2025-10-04T22:00:00Z",
		},
	}
}

func TestBuildCalendar(t *testing.T) {
	cal, err := Build(sampleEvents())
	require.NoError(t, err)

	out := cal.Serialize()
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "SUMMARY:UFC 319")
	assert.Contains(t, out, "UFC 320")
	assert.Contains(t, out, "Chicago")
	assert.Contains(t, out, "DTSTART:20250816T220000Z")
	// Card block is five hours long
	assert.Contains(t, out, "DTEND:20250817T030000Z")
	assert.Contains(t, out, "Ana Maç (Middleweight)")
	assert.Contains(t, out, "Dricus Du Plessis")
}

func TestBuildRejectsUnparsableDate(t *testing.T) {
	events := []domain.Event{{ID: "bad", Date: "16 Ağustos 2025"}}

	_, err := Build(events)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad")
}

func TestExportWritesFile(t *testing.T) {
	dir := t.TempDir()

	path, err := Export(sampleEvents(), dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, ".ics"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "SUMMARY:UFC 319")
}

func TestExportRejectsEmptySelection(t *testing.T) {
	_, err := Export(nil, t.TempDir())
	assert.Error(t, err)
}
