package repository

import (
	"errors"
	"strings"
)

// ErrTableMissing signals that the backing table has not been provisioned.
// Handlers map it to a setup-instructions response instead of a generic
// failure, so a fresh deployment is diagnosable from the UI.
var ErrTableMissing = errors.New("table not provisioned")

func wrapTableError(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "no such table") {
		return ErrTableMissing
	}
	return err
}
