package catalog

import "errors"

var ErrProductNotFound = errors.New("product not found")
var ErrMalformedRecord = errors.New("malformed product record")
