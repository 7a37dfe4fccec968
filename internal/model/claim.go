package model

// Claim is a sentence extracted from a memo section judged likely
// to contain a verifiable fact
type Claim struct {
	Text     string `json:"text"`
	Signal   string `json:"signal,omitempty"`   // Which fact signal matched (e.g., "money", "year")
	Sentence int    `json:"sentence,omitempty"` // Sentence index in the section (0-based)
}
