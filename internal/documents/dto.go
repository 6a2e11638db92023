package documents

// documentRequest carries document text inbound on save and validate.
type documentRequest struct {
	YAML string `json:"yaml"`
}

// documentResponse is the outward-facing representation of the stored
// document text.
type documentResponse struct {
	YAML string `json:"yaml"`
}

// statusResponse reports the outcome of a save or validate call. Error
// holds the parser diagnostic verbatim when OK is false.
type statusResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}
