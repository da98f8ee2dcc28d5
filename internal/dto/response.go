package dto

// Envelope wraps every successful response body.
type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
}

func NewEnvelope(status int, message string, data interface{}) Envelope {
	return Envelope{StatusCode: status, Message: message, Data: data}
}
