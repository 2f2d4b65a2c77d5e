package dto

type RoadRequest struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Distance int    `json:"distance"`
}

type PackageRequest struct {
	Name   string `json:"name"`
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int    `json:"weight"`
}

// PlanRequest names a stored scenario or carries one inline.
// Exactly one of Scenario and Depot must be set.
type PlanRequest struct {
	Scenario   string           `json:"scenario"`
	Depot      string           `json:"depot"`
	Capacity   int              `json:"capacity"`
	Roads      []RoadRequest    `json:"roads"`
	Packages   []PackageRequest `json:"packages"`
	Strategies []string         `json:"strategies"`
}

type PackageResponse struct {
	Name   string `json:"name"`
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int    `json:"weight"`
}

type PlanStepResponse struct {
	From       string            `json:"from"`
	To         string            `json:"to"`
	Path       []string          `json:"path,omitempty"`
	PickedUp   []PackageResponse `json:"picked_up"`
	DroppedOff []PackageResponse `json:"dropped_off"`
}

type PlanResponse struct {
	PlanID        string             `json:"plan_id"`
	Strategy      string             `json:"strategy"`
	Depot         string             `json:"depot"`
	Capacity      int                `json:"capacity"`
	TotalDistance int                `json:"total_distance"`
	FuelCost      float64            `json:"fuel_cost"`
	Steps         []PlanStepResponse `json:"steps"`
}

type ListPlanResponse struct {
	Plans []PlanResponse `json:"plans"`
}
