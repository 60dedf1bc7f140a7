package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Decode разбирает JSON тела запроса. Пустое тело даёт нулевое значение.
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	if body == nil {
		return payload, nil
	}

	err := json.NewDecoder(body).Decode(&payload)
	if err != nil && !errors.Is(err, io.EOF) {
		return payload, fmt.Errorf("decode request: %w", err)
	}
	return payload, nil
}
