package practicum

import "fmt"

// EndpointError means the API endpoint could not be reached or answered with an unreadable body.
type EndpointError struct {
	Endpoint string
	Err      error
}

func (e *EndpointError) Error() string {
	return fmt.Sprintf("не удалось получить ответ от эндпоинта %s: %v", e.Endpoint, e.Err)
}

func (e *EndpointError) Unwrap() error {
	return e.Err
}

// HTTPStatusError means the endpoint answered with a status other than 200 OK.
type HTTPStatusError struct {
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("запрос к API завершился с кодом ошибки: %d", e.StatusCode)
}
