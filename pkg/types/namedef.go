package types

// NameDefinition maps a lexeme id to a human-readable name and an
// optional data type, loaded from a domain's side file. Read-only after
// load; lookups that miss simply leave a record unenriched.
type NameDefinition struct {
	Name     string `json:"name"`
	Number   int64  `json:"number"`
	DataType string `json:"dataType,omitempty"`
}
