package service

// Result is the uniform envelope handed to presentation code. Data is set
// only on success.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Kind    Kind   `json:"kind,omitempty"`
}

// NewResult converts an operation's return values into an envelope.
func NewResult[T any](v T, err error) Result[T] {
	if err != nil {
		return Result[T]{Error: err.Error(), Kind: KindOf(err)}
	}
	return Result[T]{Success: true, Data: &v}
}

// Done builds the envelope of an operation that returns no data.
func Done(err error) Result[struct{}] {
	if err != nil {
		return Result[struct{}]{Error: err.Error(), Kind: KindOf(err)}
	}
	return Result[struct{}]{Success: true}
}
