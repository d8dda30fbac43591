package errors

// Response is the envelope every HTTP reply uses, success or failure.
// On failure Data is always null.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Success    bool   `json:"success"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
}

// NewErrorResponse builds the failure envelope for an AppError.
func NewErrorResponse(appErr AppError) Response {
	return Response{
		StatusCode: appErr.HTTPCode(),
		Success:    false,
		Data:       nil,
		Message:    appErr.Message(),
	}
}
