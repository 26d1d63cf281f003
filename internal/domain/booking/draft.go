package booking

// Draft is the in-progress request assembled by the booking wizard.
// It intentionally has no price field: the persisted total can only
// come from ComputeTotal at submission time.
type Draft struct {
	ServiceID string
	AddonIDs  []string

	Address      string
	Neighborhood string

	Date     string // YYYY-MM-DD
	TimeSlot string // one of catalog.TimeSlots()

	Name  string
	Email string
	Phone string
}
