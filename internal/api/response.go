package api

// ListResponse wraps collection responses.
// @Description Collection response
type ListResponse struct {
	Data  any `json:"data"`
	Count int `json:"count"`
}

// ErrorResponse represents all API error responses.
// @Description Standard error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the specifics of an API error.
// @Description Error details
type ErrorDetail struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Param   string `json:"param,omitempty"`
}

func NewListResponse(data any, count int) *ListResponse {
	return &ListResponse{
		Data:  data,
		Count: count,
	}
}

func NewErrorResponse(httpStatusCode int, code, message, param string) *ErrorResponse {
	errorType := "api_error"
	if httpStatusCode >= 400 && httpStatusCode < 500 {
		errorType = "invalid_request_error"
	}

	if code == "" {
		code = "unknown_error"
	}

	return &ErrorResponse{
		Error: ErrorDetail{
			Type:    errorType,
			Code:    code,
			Message: message,
			Param:   param,
		},
	}
}
