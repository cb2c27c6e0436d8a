// Package bdfd provides the wire types and HTTP client for the BDFD public
// catalog API. Values here mirror the JSON the service returns; reshaping
// into client-facing records happens in pkg/catalog.
package bdfd

import "encoding/json"

// FunctionResponse is a function record as returned by the catalog.
type FunctionResponse struct {
	Tag              string     `json:"tag"`
	ShortDescription string     `json:"shortDescription"`
	LongDescription  string     `json:"longDescription"`
	Arguments        []Argument `json:"arguments"`
	Intents          int        `json:"intents"`
	Premium          bool       `json:"premium"`
	// Color is deprecated by the service and always 0.
	Color int `json:"color"`
}

// CallbackResponse is a callback record as returned by the catalog.
type CallbackResponse struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Arguments   []Argument `json:"arguments"`
	Intents     int        `json:"intents"`
	IsPremium   bool       `json:"is_premium"`
}

// Argument describes one argument of a function or callback. Repeatable,
// Empty and EnumData are only sent for functions.
type Argument struct {
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Type        string          `json:"type"`
	Required    bool            `json:"required"`
	Repeatable  *bool           `json:"repeatable,omitempty"`
	Empty       *bool           `json:"empty,omitempty"`
	EnumData    json.RawMessage `json:"enumData,omitempty"`
}

// ErrorResponse is the body the service sends with some non-2xx statuses.
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// ParseErrorResponse attempts to extract a message from an error body.
// It returns "" when the body is not a recognizable error document.
func ParseErrorResponse(data []byte) string {
	var errResp ErrorResponse
	if err := json.Unmarshal(data, &errResp); err != nil {
		return ""
	}
	if errResp.Message != "" {
		return errResp.Message
	}
	return errResp.Error
}
