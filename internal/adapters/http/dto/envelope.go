// Package dto provides the wire representations for HTTP request and
// response handling, serializable to both JSON and XML.
package dto

import "encoding/xml"

// Response is the uniform envelope wrapping every API payload. Fields
// without a value are omitted from the serialized form entirely, never
// emitted as null. The XML document root is <response>; the payload
// element name comes from the payload type's own XMLName.
type Response struct {
	XMLName xml.Name `json:"-" xml:"response"`
	Success bool     `json:"success" xml:"success"`
	Data    any      `json:"data,omitempty" xml:"data,omitempty"`
	Message string   `json:"message,omitempty" xml:"message,omitempty"`
	Error   string   `json:"error,omitempty" xml:"error,omitempty"`
	Errors  []string `json:"errors,omitempty" xml:"errors>error,omitempty"`
}

// NewSuccessResponse wraps a payload and a human-readable message.
func NewSuccessResponse(data any, message string) *Response {
	return &Response{
		Success: true,
		Data:    data,
		Message: message,
	}
}

// NewErrorResponse wraps a single human-readable failure summary.
func NewErrorResponse(summary string) *Response {
	return &Response{
		Success: false,
		Error:   summary,
	}
}

// NewErrorResponseWithDetails wraps a failure summary plus detail
// strings, such as the collected field-validation messages.
func NewErrorResponseWithDetails(summary string, details []string) *Response {
	return &Response{
		Success: false,
		Error:   summary,
		Errors:  details,
	}
}
