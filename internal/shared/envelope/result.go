package envelope

import (
	"fmt"

	"github.com/goccy/go-json"
)

// RejectedError signale une réponse du backend avec success=false.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return "requête refusée par le serveur"
	}
	return e.Message
}

// Result est le résultat typé d'un appel: une valeur ou une raison d'échec, jamais les deux.
type Result[T any] struct {
	value T
	err   error
}

func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

func (r Result[T]) IsOk() bool {
	return r.err == nil
}

func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// Decode convertit une enveloppe normalisée en Result.
func Decode[T any](env Envelope) Result[T] {
	if !env.Success {
		return Err[T](&RejectedError{Message: env.Message})
	}

	var value T
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return Ok(value)
	}
	if err := json.Unmarshal(env.Data, &value); err != nil {
		return Err[T](fmt.Errorf("décodage de la réponse: %w", err))
	}
	return Ok(value)
}
