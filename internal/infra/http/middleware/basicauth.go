package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// BasicAuth protege as rotas do dashboard com o par usuário/senha do
// ambiente. Mismatch devolve 401 com o challenge WWW-Authenticate (é o que
// faz o navegador abrir o prompt de login).
func BasicAuth(username, password string) func(http.Handler) http.Handler {
	return chimw.BasicAuth("Login Required", map[string]string{
		username: password,
	})
}
