package catalog

// ===============================
// Reference types
// ===============================

type Service struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	BasePrice     int      `json:"base_price"` // whole Naira
	DurationHours int      `json:"duration_hours"`
	Features      []string `json:"features"`
	Image         string   `json:"image"`
}

type Addon struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

type Neighborhood struct {
	Name      string `json:"name"`
	Surcharge int    `json:"surcharge"` // transport cost for far areas
}

// ===============================
// Lookups
// ===============================

// The tables below are fixed for the lifetime of the process.

func Services() []Service {
	return services
}

func ServiceByID(id string) (Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

func Addons() []Addon {
	return addons
}

// ResolveAddons maps addon ids to catalog entries. Ids are de-duplicated
// first so a repeated id cannot be charged twice; ids that do not
// resolve are returned separately so callers can log them.
func ResolveAddons(ids []string) ([]Addon, []string) {
	var (
		resolved []Addon
		dropped  []string
		seen     = make(map[string]bool, len(ids))
	)

	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		if a, ok := addonByID(id); ok {
			resolved = append(resolved, a)
		} else {
			dropped = append(dropped, id)
		}
	}

	return resolved, dropped
}

func addonByID(id string) (Addon, bool) {
	for _, a := range addons {
		if a.ID == id {
			return a, true
		}
	}
	return Addon{}, false
}

func Neighborhoods() []Neighborhood {
	return neighborhoods
}

func NeighborhoodByName(name string) (Neighborhood, bool) {
	for _, n := range neighborhoods {
		if n.Name == name {
			return n, true
		}
	}
	return Neighborhood{}, false
}

func TimeSlots() []string {
	return timeSlots
}

func IsTimeSlot(label string) bool {
	for _, s := range timeSlots {
		if s == label {
			return true
		}
	}
	return false
}
