package domain

import "strconv"

// Event represents a single fight-card event in the catalog
type Event struct {
	ID       string  `json:"id"`
	Title    string  `json:"eventTitle"`
	Location string  `json:"eventLocation"`
	Date     string  `json:"eventDate"` // ISO-8601 timestamp string
	Fights   []Fight `json:"fights"`
}

// Fight represents one bout on an event's card. The slice order as returned
// by the API is authoritative for display; Order only feeds the label lookup.
type Fight struct {
	WeightClass string    `json:"weightClass"`
	Order       int       `json:"order"`
	Fighters    []Fighter `json:"fighters"`
}

// Fighter represents one competitor in a fight
type Fighter struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	Record  string `json:"record"`            // free-form, e.g. "22-3-0"
	Ranking *int   `json:"ranking,omitempty"` // nil means unranked, not zero
}

// OrderLabel returns the display label for the fight's position on the card
func (f Fight) OrderLabel() string {
	switch f.Order {
	case 1:
		return "Ana Maç"
	case 2:
		return "Ortak Ana Maç"
	case 3:
		return "Öne Çıkan Maç"
	case 4:
		return "Ön Eleme"
	case 5:
		return "Açılış Maçı"
	default:
		return strconv.Itoa(f.Order) + ". Maç"
	}
}

// IsRanked reports whether the fighter carries a numeric ranking
func (f Fighter) IsRanked() bool {
	return f.Ranking != nil
}

// EventIDs returns the ids of the given events in catalog order
func EventIDs(events []Event) []string {
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	return ids
}

// FindEvent returns the event with the given id, or nil if absent
func FindEvent(events []Event, id string) *Event {
	for i := range events {
		if events[i].ID == id {
			return &events[i]
		}
	}
	return nil
}
