package homework

import "fmt"

// Interpret builds the user-facing message for a homework record.
// The result depends only on the record, so repeated calls return the same text.
func Interpret(record any) (string, error) {
	fields, err := asRecord(record)
	if err != nil {
		return "", err
	}

	name, err := stringField(fields, KeyName)
	if err != nil {
		return "", err
	}

	status, err := StatusOf(fields)
	if err != nil {
		return "", err
	}

	verdict, ok := Verdict(status)
	if !ok {
		return "", fmt.Errorf("%w: unknown status: %s", ErrKey, status)
	}

	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", name, verdict), nil
}

// StatusOf extracts the raw status of a record without checking it against the verdict table.
func StatusOf(record any) (Status, error) {
	fields, err := asRecord(record)
	if err != nil {
		return "", err
	}
	s, err := stringField(fields, KeyStatus)
	if err != nil {
		return "", err
	}
	return Status(s), nil
}

// NameOf extracts the homework name of a record.
func NameOf(record any) (string, error) {
	fields, err := asRecord(record)
	if err != nil {
		return "", err
	}
	return stringField(fields, KeyName)
}

func asRecord(record any) (map[string]any, error) {
	fields, ok := record.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: запись о домашней работе не является словарём (%T)", ErrType, record)
	}
	return fields, nil
}

func stringField(fields map[string]any, key string) (string, error) {
	raw, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("%w: ключ %q отсутствует в словаре homework", ErrKey, key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: значение %q не является строкой (%T)", ErrType, key, raw)
	}
	return s, nil
}
