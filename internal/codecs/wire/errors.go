package wire

import "errors"

var errMissingField = errors.New("missing required field")
