package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrMissingRate indicates that a currency is absent from the exchange rate
// table, so a conversion cannot proceed.
var ErrMissingRate = errors.New("missing exchange rate")

// ErrTrackingConflict indicates that time tracking was started while another
// time block is still active.
var ErrTrackingConflict = errors.New("time tracking already active")
