package dto

// ChosenFood pairs a category name with the dish picked for it, for display
// and journaling.
type ChosenFood struct {
	Category string
	Food     string
}

// RunOutput summarizes one workflow run. Exactly one of Submitted, NoOrders,
// or Declined describes how the run ended; all three endings exit cleanly.
type RunOutput struct {
	Username    string
	Date        string
	Status      string
	Foods       []ChosenFood
	Submitted   bool
	Resubmitted bool
	NoOrders    bool
	Declined    bool
}
