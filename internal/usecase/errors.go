package usecase

import "fmt"

// NotFoundError distingue "não existe" de falha de verdade. Handler traduz
// para 404; qualquer outro erro vira 500.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s não encontrado: %s", e.Resource, e.Key)
}

func IsNotFound(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}
