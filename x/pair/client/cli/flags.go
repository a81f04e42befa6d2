package cli

// Flag names for pair transaction commands
const (
	flagCalleeData = "callee-data"
)
