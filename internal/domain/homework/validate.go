package homework

import "fmt"

// Validate checks the shape of a decoded API response.
// An empty response is not an error: it returns false and the caller skips the iteration.
func Validate(response any) (bool, error) {
	if isEmpty(response) {
		return false, nil
	}

	payload, ok := response.(map[string]any)
	if !ok {
		return false, fmt.Errorf("%w: ответ от API не является словарём (%T)", ErrType, response)
	}

	raw, ok := payload[KeyHomeworks]
	if !ok {
		return false, fmt.Errorf("%w: ключа %q нет в словаре", ErrKey, KeyHomeworks)
	}

	if _, ok := raw.([]any); !ok {
		return false, fmt.Errorf("%w: данные по ключу %q не являются списком (%T)", ErrType, KeyHomeworks, raw)
	}

	return true, nil
}

// Homeworks returns the records of a response that passed Validate.
func Homeworks(response any) []any {
	payload, _ := response.(map[string]any)
	list, _ := payload[KeyHomeworks].([]any)
	return list
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case float64:
		return t == 0
	case int:
		return t == 0
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	}
	return false
}
