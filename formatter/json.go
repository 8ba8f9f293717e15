package formatter

import (
	"encoding/json"
)

type responseBuilder struct {
	indent string
}

func newResponseBuilder(indent string) *responseBuilder { return &responseBuilder{indent: indent} }

// NewResponseBuilder creates a builder for formatting responses. A non-empty
// indent pretty-prints JSON output.
func NewResponseBuilder(indent string) *responseBuilder {
	return newResponseBuilder(indent)
}

// BuildJSON serializes a response to JSON
func (rb *responseBuilder) BuildJSON(res *Response) ([]byte, error) {
	if rb.indent != "" {
		return json.MarshalIndent(res, "", rb.indent)
	}
	return json.Marshal(res)
}
