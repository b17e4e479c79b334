package client

// ServiceError is a failure reported by the analysis service itself, with a
// message meant to be shown to the user verbatim.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return "analysis service error: " + e.Message
}

// TransportError is any failure between client and service that is not a
// service-reported error: network failure, unexpected status, or a response
// body that could not be parsed. The wrapped detail is for logs, not users.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "analysis request failed: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
