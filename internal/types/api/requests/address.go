package requests

// ValidationOptions controls which optional fields an address response carries
type ValidationOptions struct {
	ReturnParsed     *bool `json:"return_parsed,omitempty"`
	ReturnConfidence *bool `json:"return_confidence,omitempty"`
	ReturnOriginal   *bool `json:"return_original,omitempty"`
}

// SingleAddressRequest represents the request body for validating one address.
// Address is a pointer so an empty string still reaches the service.
type SingleAddressRequest struct {
	Address *string            `json:"address" binding:"required"`
	Options *ValidationOptions `json:"options,omitempty"`
}

// BatchAddressRequest represents the request body for validating many addresses
type BatchAddressRequest struct {
	Addresses        []string `json:"addresses" binding:"required"`
	OutputFormat     string   `json:"output_format,omitempty"`
	ReturnParsed     bool     `json:"return_parsed,omitempty"`
	ReturnConfidence bool     `json:"return_confidence,omitempty"`
}

// ProcessOptions is the resolved form of ValidationOptions
type ProcessOptions struct {
	ReturnParsed     bool
	ReturnConfidence bool
	ReturnOriginal   bool
}

// DefaultSingleOptions are applied to POST /validate when options are omitted
func DefaultSingleOptions() ProcessOptions {
	return ProcessOptions{ReturnParsed: true, ReturnConfidence: true}
}

// DefaultBatchOptions are applied to batch requests
func DefaultBatchOptions() ProcessOptions {
	return ProcessOptions{}
}

// Resolve merges explicitly set options over the single-address defaults
func (o *ValidationOptions) Resolve() ProcessOptions {
	out := DefaultSingleOptions()
	if o == nil {
		return out
	}
	if o.ReturnParsed != nil {
		out.ReturnParsed = *o.ReturnParsed
	}
	if o.ReturnConfidence != nil {
		out.ReturnConfidence = *o.ReturnConfidence
	}
	if o.ReturnOriginal != nil {
		out.ReturnOriginal = *o.ReturnOriginal
	}
	return out
}
