package settings

type Settings struct {
	// upper bound on the number of characters accepted for a single encryption
	MaxTextLength int
}
