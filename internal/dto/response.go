package dto

// ErrorBody is the failure half of the uniform response envelope. Every
// endpoint returns either {"success":true, ...payload} or
// {"success":false, "error": ErrorBody}.
type ErrorBody struct {
	Code          string `json:"code"`
	Message       string `json:"message"`
	RequestStatus string `json:"request_status,omitempty"`
}

// Error codes used across the API.
const (
	CodeValidationError  = "validation_error"
	CodeNotFound         = "not_found"
	CodeUnauthorized     = "unauthorized"
	CodeConflict         = "conflict"
	CodeInvalidOperation = "invalid_operation"
	CodeOperationFailed  = "operation_failed"
)
