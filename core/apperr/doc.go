// Package apperr defines the error classification shared by the control plane.
//
// Every failure that can reach the UI carries one Kind. Components wrap the
// underlying cause with New, and callers match on the sentinel values with
// errors.Is:
//
//	if errors.Is(err, apperr.ErrAlreadyRunning) {
//	    // keep the current server
//	}
//
// Message and HTTPStatus translate a Kind into the short, stable text and the
// status code the panel API renders. Raw causes are logged, never shown.
package apperr
