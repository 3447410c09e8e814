package apperror

// AppError is a custom error type that includes an HTTP status code and a
// machine-readable code string for API clients to branch on.
type AppError struct {
	Status  int    // HTTP status code (e.g., 400, 403)
	Code    string // Stable machine-readable code (e.g., "INVALID_RANGE")
	Message string // User-facing error message
	Err     error  // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a status, code and message.
func New(status int, code, message string) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, status int, code, message string) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithCause returns a copy of the AppError carrying the given underlying
// error, so sentinel AppErrors can record what actually failed while still
// matching with errors.Is.
func (e *AppError) WithCause(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

// Is matches AppErrors by code, letting errors.Is recognize wrapped copies
// of a sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
