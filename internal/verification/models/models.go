package models

// Fixed values of the result synthesized for codes missing from the reference table.
const (
	NotFoundMessage = "❌ Invalid Code - Product not found in our database"
	UnknownProduct  = "Unknown"
)

// Record is one entry of the shipped reference table.
type Record struct {
	Code    string `json:"code" yaml:"code"`
	Valid   bool   `json:"valid" yaml:"valid"`
	Product string `json:"product" yaml:"product"`
	Message string `json:"message" yaml:"message"`
}

// Result is what a lookup reports back: either a copy of the matched record
// or a synthesized not-found result. It is never persisted.
type Result Record

// NotFound synthesizes the result for a code absent from the table.
// code is kept exactly as entered (after trimming), including its case.
func NotFound(code string) Result {
	return Result{
		Code:    code,
		Valid:   false,
		Product: UnknownProduct,
		Message: NotFoundMessage,
	}
}

// Outcome classifies a lookup for metrics, traces and logs.
// It is not part of Result: a known-invalid record and an unknown code
// both surface as Valid == false to callers.
type Outcome string

const (
	OutcomeVerified     Outcome = "verified"
	OutcomeKnownInvalid Outcome = "known_invalid"
	OutcomeNotFound     Outcome = "not_found"
)

func Classify(found bool, rec Record) Outcome {
	switch {
	case !found:
		return OutcomeNotFound
	case rec.Valid:
		return OutcomeVerified
	default:
		return OutcomeKnownInvalid
	}
}

func (o Outcome) String() string {
	return string(o)
}
