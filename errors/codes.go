package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Pipeline errors — one code per stage of the request pipeline that can fail.
const (
	// ErrCodeDecodeFailed indicates the request body did not parse into the
	// declared input shape.
	ErrCodeDecodeFailed ErrorCode = "DECODE_FAILED"
	// ErrCodeUnauthorized indicates the caller failed authorization.
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrCodeContractViolation indicates an authorizer and a handler disagree
	// about the authorization context — a wiring defect, not a caller error.
	ErrCodeContractViolation ErrorCode = "CONTRACT_VIOLATION"
	// ErrCodeEncodeFailed indicates a handler returned a value that could not
	// be encoded to its declared output shape.
	ErrCodeEncodeFailed ErrorCode = "ENCODE_FAILED"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input decoded but failed validation.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Resource and availability errors
const (
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeAlreadyExists indicates the resource already exists.
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"
	// ErrCodeTimeout indicates the request timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeTimeout: true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
// None of the pipeline codes are retryable: decode, authorization, and
// contract failures are deterministic for a given request.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
