package checkin

// Result is the outcome of one room service call. It is either Ok or
// NetworkError; callers switch on the concrete type.
type Result interface {
	// Response is the shape stored on the desk for this outcome.
	Response() CheckInResponse
	isResult()
}

// Ok carries a decoded room service reply.
type Ok struct {
	Reply CheckInResponse
}

func (o Ok) Response() CheckInResponse {
	reply := o.Reply
	reply.Message = NormalizeMessage(reply.Message)
	return reply
}

func (Ok) isResult() {}

// NetworkError means the service could not be reached or its reply could not
// be decoded. Err keeps the cause for logging; Message is what the desk sees.
type NetworkError struct {
	Message string
	Err     error
}

func (n NetworkError) Response() CheckInResponse {
	return CheckInResponse{Error: n.Message}
}

func (n NetworkError) Error() string {
	if n.Err == nil {
		return n.Message
	}
	return n.Message + ": " + n.Err.Error()
}

func (n NetworkError) Unwrap() error {
	return n.Err
}

func (NetworkError) isResult() {}
