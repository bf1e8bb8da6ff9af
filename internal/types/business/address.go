package business

import "github.com/address-cleanser/address-cleanser/internal/constants"

// TaggedResult is the uniform output of the tagger adapter. When Error is
// set, Tokens is empty and Confidence is 0.
type TaggedResult struct {
	Original        string            `json:"original"`
	Tokens          map[string]string `json:"parsed"`
	AddressType     string            `json:"address_type"`
	Confidence      float64           `json:"confidence"`
	Error           string            `json:"error,omitempty"`
	ParsingStrategy string            `json:"parsing_strategy,omitempty"`
}

// Failed reports whether tagging gave up.
func (t TaggedResult) Failed() bool {
	return t.Error != ""
}

// ValidationOutcome is the verdict on a set of components.
// Valid holds exactly when ZipValid, StateValid and IsComplete all hold.
type ValidationOutcome struct {
	Valid         bool     `json:"valid"`
	ZipValid      bool     `json:"zip_valid"`
	StateValid    bool     `json:"state_valid"`
	IsComplete    bool     `json:"is_complete"`
	Confidence    float64  `json:"confidence"`
	Issues        []string `json:"issues"`
	MissingFields []string `json:"missing_fields"`
}

// FormattedAddress is the terminal record produced once per input address.
type FormattedAddress struct {
	Original    string     `json:"original"`
	Parsed      Components `json:"parsed"`
	Formatted   Components `json:"formatted"`
	SingleLine  string     `json:"single_line"`
	MultiLine   []string   `json:"multi_line"`
	Confidence  float64    `json:"confidence"`
	Valid       bool       `json:"valid"`
	Issues      []string   `json:"issues"`
	AddressType string     `json:"address_type"`

	// Validation carries the per-check flags behind Valid.
	Validation ValidationOutcome `json:"-"`
}

// HasError reports whether the record came from a failed pipeline run
// rather than an ordinary validation verdict.
func (f FormattedAddress) HasError() bool {
	return f.AddressType == constants.AddressTypeError
}
