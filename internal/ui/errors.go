package ui

import (
	"errors"

	"github.com/abelbrown/intercede/internal/api"
)

// User-facing copy for failed attempts.
const (
	MsgNoPrayers = "No prayers returned. Please try again in a moment."
	MsgConnect   = "Could not connect to the Intercede API. Is the backend running?"
	MsgGeneric   = "Something unexpected happened while loading prayers."
)

// UserMessage maps a failed attempt to the single message shown in the
// error box.
func UserMessage(err error) string {
	var reqErr *api.RequestError
	var netErr *api.NetworkError

	switch {
	case err == nil:
		return MsgGeneric
	case errors.Is(err, api.ErrNoPrayers):
		return MsgNoPrayers
	case errors.As(err, &reqErr):
		return reqErr.Message
	case errors.As(err, &netErr):
		return MsgConnect
	case err.Error() != "":
		return err.Error()
	default:
		return MsgGeneric
	}
}
