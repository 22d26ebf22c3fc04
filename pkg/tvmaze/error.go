package tvmaze

import (
	"fmt"
	"net/http"
)

// Error represents TVMaze API error structure.
type Error struct {
	Name     string `json:"name"`
	Message  string `json:"message"`
	ErrCode  int    `json:"code"`
	Status   int    `json:"status"`
	request  *http.Request
	response *http.Response
}

func (e Error) Error() string {
	return fmt.Sprintf("tvmaze api error[%d]: %s", e.Status, e.Message)
}

// ErrorName returns a human-readable name of the error.
func (e Error) ErrorName() string {
	if e.Name != "" {
		return e.Name
	}
	return http.StatusText(e.Status)
}

// ErrorUserMessage returns error message for end user.
func (e Error) ErrorUserMessage() string {
	return e.Message
}

// StatusCode returns HTTP status code.
// If the error was not produced by a response, the Status field is returned.
func (e Error) StatusCode() int {
	if e.response == nil {
		return e.Status
	}
	return e.response.StatusCode
}

// SetRequest method allows injection of HTTP request to the error, it implements client.errorWithRequest.
func (e *Error) SetRequest(request *http.Request) {
	e.request = request
}

// SetResponse method allows injection of HTTP response to the error, it implements client.errorWithResponse.
func (e *Error) SetResponse(response *http.Response) {
	e.response = response
}
