package services

// ErrorConflicto reports a create that collides with an existing natural key.
// The message is user-facing Spanish, per entity.
type ErrorConflicto struct {
	Mensaje string
}

func (e *ErrorConflicto) Error() string { return e.Mensaje }

// ErrorNoEncontrado reports a lookup, update or delete against a missing id.
type ErrorNoEncontrado struct {
	Mensaje string
}

func (e *ErrorNoEncontrado) Error() string { return e.Mensaje }
