// Package envelope defines the {success, message, data} wrapper every API
// response uses, for both the HTTP surface and the mock transport.
package envelope

// ListMeta is pagination info attached to list responses.
type ListMeta struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	TotalItems  int `json:"total_items"`
}

// Envelope wraps a payload with its outcome.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *ListMeta   `json:"meta,omitempty"`
}

func OK(message string, data interface{}) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

func OKList(message string, data interface{}, total int) Envelope {
	return Envelope{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    &ListMeta{CurrentPage: 1, TotalPages: 1, TotalItems: total},
	}
}

func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}
