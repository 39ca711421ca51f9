package dto

// Res is the uniform success envelope.
type Res struct {
	Status  int    `json:"status"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// ResError is the uniform failure envelope. Data is always null.
type ResError struct {
	Status  int      `json:"status"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
	Data    any      `json:"data"`
}

func NewRes(status int, data any, message string) Res {
	return Res{Status: status, Data: data, Message: message}
}

func NewResError(status int, message string, errs []string) ResError {
	if errs == nil {
		errs = []string{}
	}
	return ResError{Status: status, Message: message, Errors: errs, Data: nil}
}
