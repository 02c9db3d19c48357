package predict

import "errors"

var (
	// ErrNotFitted indicates Predict was called before a successful Fit.
	ErrNotFitted = errors.New("predict: model is not fitted, call Fit first")
	// ErrInvalidParameter indicates an out-of-range argument to Fit or Predict.
	ErrInvalidParameter = errors.New("predict: invalid parameter")
)
