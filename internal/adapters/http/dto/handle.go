package dto

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/senibo/blog-api/internal/domain"
	"github.com/senibo/blog-api/internal/platform/logging"
)

// validationSummary is the single human-readable summary accompanying
// the collected field-level messages on a validation failure.
const validationSummary = "You have the following validation errors"

// internalErrorMessage is returned for unclassified failures so
// internal state never leaks to clients.
const internalErrorMessage = "an internal error occurred"

// MapError maps a failure to an HTTP status code and error envelope.
// Domain errors carry client-safe messages and pass through verbatim;
// anything unclassified becomes a 500 with a generic message.
func MapError(err error) (int, *Response) {
	if err == nil {
		return http.StatusOK, nil
	}

	switch {
	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(err.Error())

	case domain.IsValidation(err):
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && len(validationErr.Messages) > 0 {
			return http.StatusBadRequest,
				NewErrorResponseWithDetails(validationSummary, validationErr.Messages)
		}

		return http.StatusBadRequest, NewErrorResponse(validationSummary)

	case domain.IsInvalidCategory(err),
		domain.IsInvalidTagSet(err),
		domain.IsMalformedID(err):
		return http.StatusBadRequest, NewErrorResponse(err.Error())

	case errors.Is(err, ErrBinding):
		return http.StatusBadRequest, NewErrorResponse("Malformed request body")

	case IsUnsupportedMediaType(err):
		return http.StatusUnsupportedMediaType, NewErrorResponse(err.Error())

	case domain.IsConflict(err):
		return http.StatusConflict, NewErrorResponse(err.Error())

	case domain.IsUnavailable(err):
		return http.StatusServiceUnavailable, NewErrorResponse(err.Error())

	default:
		return http.StatusInternalServerError, NewErrorResponse(internalErrorMessage)
	}
}

// HandleError writes the envelope for err in the client's accepted
// format. Internal errors are logged with full detail before the
// sanitized envelope goes out.
func HandleError(c *gin.Context, err error) {
	status, resp := MapError(err)

	if status == http.StatusInternalServerError {
		logger := logging.FromContext(c.Request.Context())
		logger.Error("internal error",
			"error", err.Error(),
			"path", c.FullPath(),
		)
	}

	format, formatErr := ResponseFormat(c)
	if formatErr != nil {
		// The client accepts none of the supported formats; report that
		// instead, encoded as JSON so a body is always produced.
		status, resp = MapError(formatErr)
		format = ""
	}

	Render(c, status, format, resp)
}

// AbortWithError stops the handler chain and writes the envelope for
// err. Use in middleware to halt further processing.
func AbortWithError(c *gin.Context, err error) {
	HandleError(c, err)
	c.Abort()
}
