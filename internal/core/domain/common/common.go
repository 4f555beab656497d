package common

import (
	"fmt"
	"strings"
)

// Optional models a value that may be absent, mirroring nullable
// columns of the account store.
type Optional[T any] struct {
	Value     T
	IsPresent bool
}

func NewOptional[T any](value T, isPresent bool) Optional[T] {
	return Optional[T]{Value: value, IsPresent: isPresent}
}

func NewPresent[T any](value T) Optional[T] {
	return Optional[T]{Value: value, IsPresent: true}
}

func (o *Optional[T]) String() string {
	if !o.IsPresent {
		return "[-]"
	}
	return fmt.Sprintf("[%v]", o.Value)
}

type Email string

func NewEmail(rawEmail string) Email {
	return Email(strings.ToLower(strings.TrimSpace(rawEmail)))
}
