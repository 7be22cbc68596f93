package favorite

import "errors"

var ErrMissingField = errors.New("state, place_name and category are required")
