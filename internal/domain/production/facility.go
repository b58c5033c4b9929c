package production

// Facility represents a machine type that executes recipes.
// ProcessTime is the length of one production cycle in minutes.
type Facility struct {
	ID          string
	ProcessTime float64
	SpriteCol   int
	SpriteRow   int
}
