package completion

// Flag is the completion view of a flag definition
type Flag struct {
	Long        string
	Short       string
	Description string
	// TakesValue marks flags whose next word is a value, not another flag
	TakesValue bool
}

// Data holds the flags offered for completion, in definition order
type Data struct {
	Flags []Flag
}

// FileInfo holds shell-specific naming conventions for completion scripts
type FileInfo struct {
	Prefix    string // Some shells require specific prefixes
	Extension string // File extension if required
}
