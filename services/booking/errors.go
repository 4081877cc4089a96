package booking

import "fmt"

// ActionNotAllowedError reports a dispatch refused by the client-side gate.
// The backend stays authoritative; this gate only mirrors what the dashboard
// would grey out.
type ActionNotAllowedError struct {
	Status string
	Action Action
}

func (e *ActionNotAllowedError) Error() string {
	return fmt.Sprintf("action %q not allowed for booking status %q", e.Action, e.Status)
}
