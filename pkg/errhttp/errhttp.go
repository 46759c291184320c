// Package errhttp is the single place where domain errors become HTTP
// responses. Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/bizservices/pkg/httpx"
	deptdomain "github.com/ghuser/bizservices/services/department/domain"
	empdomain "github.com/ghuser/bizservices/services/employee/domain"
	orderdomain "github.com/ghuser/bizservices/services/order/domain"
	productdomain "github.com/ghuser/bizservices/services/product/domain"
)

// InternalErrorMessage is the only message clients see for unexpected failures.
const InternalErrorMessage = "An unexpected error occurred"

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Unrecognized errors become 500 with a generic message; the real error is
// recorded on the request span and reported to Sentry.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := mapErrorToStatus(err)
	if status < http.StatusInternalServerError {
		httpx.JSONError(w, status, err.Error())
		return
	}

	ctx := r.Context()
	span := trace.SpanFromContext(ctx)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.CaptureException(err)
	}
	httpx.JSONError(w, status, InternalErrorMessage)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, deptdomain.ErrDepartmentNotFound),
		errors.Is(err, empdomain.ErrEmployeeNotFound),
		errors.Is(err, orderdomain.ErrOrderNotFound),
		errors.Is(err, productdomain.ErrProductNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, deptdomain.ErrDepartmentAlreadyExists),
		errors.Is(err, empdomain.ErrEmployeeAlreadyExists),
		errors.Is(err, orderdomain.ErrOrderAlreadyExists),
		errors.Is(err, productdomain.ErrProductAlreadyExists):
		return http.StatusConflict // 409
	case errors.Is(err, orderdomain.ErrInvalidOrderStatus),
		errors.Is(err, orderdomain.ErrAmountOutOfRange),
		errors.Is(err, httpx.ErrBadParam):
		return http.StatusBadRequest // 400
	default:
		return http.StatusInternalServerError // 500
	}
}
