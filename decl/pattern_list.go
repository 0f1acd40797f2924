package decl

// PatternList is a loaded pattern in human-readable form,
// for debugging and listing what a definition file declared.
//
// Fields:
//   - Name: the key of the pattern in the definition
//   - Template: the pattern rendered as e.g. "/users/{id:int}"
type PatternList struct {
	Name     string
	Template string
}
