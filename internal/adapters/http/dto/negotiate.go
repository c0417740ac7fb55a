package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// SupportedMediaTypes lists the content types the API can decode
// request bodies from and encode responses into. JSON is the default
// when the client declares no preference.
var SupportedMediaTypes = []string{gin.MIMEJSON, gin.MIMEXML, gin.MIMEXML2}

// ErrBinding indicates the request body could not be decoded.
var ErrBinding = errors.New("binding failed")

// UnsupportedMediaTypeError reports a declared content type the server
// cannot decode, or an accept preference it cannot encode.
type UnsupportedMediaTypeError struct {
	MediaType string
}

// Error implements the error interface. The message enumerates the
// supported types so the client can correct the request.
func (e *UnsupportedMediaTypeError) Error() string {
	return "Unsupported media type. Please use one of: " + strings.Join(SupportedMediaTypes, ", ")
}

// NewUnsupportedMediaTypeError creates an unsupported media type error.
func NewUnsupportedMediaTypeError(mediaType string) error {
	return &UnsupportedMediaTypeError{MediaType: mediaType}
}

// IsUnsupportedMediaType reports whether err is an unsupported media
// type failure.
func IsUnsupportedMediaType(err error) bool {
	var target *UnsupportedMediaTypeError
	return errors.As(err, &target)
}

// BindPostRequest decodes the request body according to the declared
// Content-Type. A missing Content-Type is treated as JSON.
func BindPostRequest(c *gin.Context, req *PostRequest) error {
	switch c.ContentType() {
	case "", gin.MIMEJSON:
		if err := c.ShouldBindJSON(req); err != nil {
			return fmt.Errorf("%w: %w", ErrBinding, err)
		}
	case gin.MIMEXML, gin.MIMEXML2:
		if err := c.ShouldBindXML(req); err != nil {
			return fmt.Errorf("%w: %w", ErrBinding, err)
		}
	default:
		return NewUnsupportedMediaTypeError(c.ContentType())
	}

	return nil
}

// ResponseFormat resolves the response media type from the Accept
// header, defaulting to JSON when the header is absent or ambiguous.
// Fails with UnsupportedMediaTypeError when the client accepts none of
// the supported types.
func ResponseFormat(c *gin.Context) (string, error) {
	format := c.NegotiateFormat(SupportedMediaTypes...)
	if format == "" {
		return "", NewUnsupportedMediaTypeError(c.GetHeader("Accept"))
	}

	return format, nil
}

// Render writes the envelope in the given media type. Unrecognized
// formats fall back to JSON so an error body is always produced.
func Render(c *gin.Context, status int, format string, payload *Response) {
	switch format {
	case gin.MIMEXML, gin.MIMEXML2:
		c.XML(status, payload)
	default:
		c.JSON(status, payload)
	}
}
