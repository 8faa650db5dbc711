package httpapi

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Rako024/transcript-archive/pkg/apperror"
)

type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

type errorEnvelope struct {
	Error apiError `json:"error"`
}

// respondError maps the error taxonomy onto the response envelope. Every
// failure that reaches the client goes through here.
func respondError(c *gin.Context, err error) {
	c.JSON(apperror.HTTPStatus(err), errorEnvelope{
		Error: apiError{
			Message: err.Error(),
			Code:    errorCode(err),
		},
	})
}

func errorCode(err error) string {
	var (
		notFound *apperror.NotFoundError
		invalid  *apperror.InvalidInputError
		storeErr *apperror.StoreUnavailableError
		summErr  *apperror.SummarizationError
	)
	switch {
	case errors.As(err, &notFound):
		return "not_found"
	case errors.As(err, &invalid):
		return "invalid_input"
	case errors.As(err, &summErr):
		return "summarization_failed"
	case errors.As(err, &storeErr):
		return "store_unavailable"
	default:
		return "internal"
	}
}
