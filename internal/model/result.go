package model

// PassThreshold is the score at or above which a result passes.
const PassThreshold = 50

// Status is the pass/fail outcome of one verification
type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
)

// StatusForScore derives the status from an accuracy score
func StatusForScore(score int) Status {
	if score >= PassThreshold {
		return StatusPass
	}
	return StatusFail
}

// VerificationType labels how a result was established
type VerificationType string

const (
	TypeContextualMatch      VerificationType = "Contextual Match"
	TypeDirectMatch          VerificationType = "Direct Match"
	TypeNoMatch              VerificationType = "No Match"
	TypeContextuallyVerified VerificationType = "Contextually Verified"
	TypeIssuesFound          VerificationType = "Issues Found"
	TypeEmptySection         VerificationType = "Empty Section"
	TypeError                VerificationType = "Error"
)

// Provenance identifies where a piece of evidence was found
type Provenance struct {
	Document string `json:"document"` // Normalized source document name
	Page     int    `json:"page"`     // Page or slide number (1-based)
}

// VerificationResult is one judgment for a field or a memo section.
// Immutable once returned by the engine.
type VerificationResult struct {
	Name            string           `json:"name"`                  // Field or section name
	AIValue         string           `json:"ai_value,omitempty"`    // Value under verification (field mode)
	AccuracyScore   int              `json:"accuracy_score"`        // 0-100
	Status          Status           `json:"status"`                // PASS iff score >= PassThreshold
	Type            VerificationType `json:"verification_type"`
	SourceValue     string           `json:"source_value,omitempty"` // What the source contains (field mode)
	WrongInfo       string           `json:"wrong_info,omitempty"`   // Contradictions found (section mode)
	CorrectInfo     string           `json:"correct_info,omitempty"` // Corrections from source (section mode)
	Citation        string           `json:"citation,omitempty"`     // Supporting/contradicting quote
	ContextualMatch bool             `json:"contextual_match"`
	Provenance      *Provenance      `json:"provenance,omitempty"` // nil when resolution missed
	ParseTier       string           `json:"parse_tier,omitempty"` // Which parser tier produced the fields
	Error           string           `json:"error,omitempty"`      // Transport error message, if any
}
