package api

import (
	"errors"
	"net/http"
	"strings"

	"salon-storefront/internal/handler/httperr"
	"salon-storefront/internal/infra/docid"
	"salon-storefront/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	msgInvalidID          = "Invalid id"
	msgInvalidRequest     = "Invalid request"
	msgInvalidQuery       = "Invalid query parameter"
	msgInvalidCredentials = "Invalid credentials"
	msgInternal           = "Internal server error"
)

// FieldError is one entry of the detail list returned for a rejected body.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// respondError maps a use case error onto the status taxonomy. notFound is
// the entity-specific message for a missing document.
func respondError(c *gin.Context, err error, notFound string) {
	switch {
	case errs.Is(err, errs.ErrInvalidIdentifier):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidID, nil)
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, validationMessage(err))
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, notFound, nil)
	case errs.Is(err, errs.ErrUnauthorized):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, msgInvalidCredentials, nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
	}
}

// respondBindError reports a body that could not be decoded or failed its
// binding rules.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, fields)
		return
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, err.Error())
}

// pathID reads and checks the :id parameter. On failure the response has
// already been written.
func pathID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if err := docid.Validate(id); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidID, nil)
		return "", false
	}
	return id, true
}

// Only the outermost message of a domain validation error is shown.
func validationMessage(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}
