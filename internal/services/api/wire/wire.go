// Package wire holds the legacy mobile envelope shared by the marketplace
// endpoints: {success, message?, <entity-list>, pagination}. The mobile
// clients key off the success flag, so application-level failures go out
// as HTTP 200 with success=false and a display message; only auth
// failures use their real status code
package wire

import (
	stdhttp "net/http"

	perr "fundi/internal/platform/errors"
	phttp "fundi/internal/platform/net/http"
)

// Failure is the error body for the legacy envelope
type Failure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Fail writes err in the legacy envelope. Unauthorized keeps its 401 so
// clients can trigger a login; everything else is 200 + success=false
func Fail(w stdhttp.ResponseWriter, err error) {
	status := stdhttp.StatusOK
	if perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		status = stdhttp.StatusUnauthorized
	}
	msg := perr.WireFrom(err).Message
	if msg == "" {
		msg = "Something went wrong. Please try again"
	}
	phttp.JSON(w, status, Failure{Success: false, Message: msg})
}

// OK writes body as-is with a 200. Bodies embed Success themselves
func OK(w stdhttp.ResponseWriter, body any) {
	phttp.JSON(w, stdhttp.StatusOK, body)
}

// Values is the reference-list body ({success, values})
type Values struct {
	Success bool     `json:"success"`
	Values  []string `json:"values"`
}
