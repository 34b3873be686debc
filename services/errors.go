package services

import "errors"

// ErrMealNotFound covers both a truly absent meal and a meal owned by
// another session. Callers must not be able to tell the two apart.
var ErrMealNotFound = errors.New("meal not found")
