package tags

// Resolv tags for the top-down layout space built by lint
const (
	ResolvSolid = "solid" // Buildings and decorations; lint queries filter on it
)
