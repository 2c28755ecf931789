package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
)

// AdminAuth protege o console administrativo com um bearer token fixo.
// Sem token configurado, a rota fica fechada (nega tudo).
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				denyAccess(w, "admin não configurado")
				return
			}

			authHeader := r.Header.Get("Authorization")
			provided, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				denyAccess(w, "token ausente")
				return
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				denyAccess(w, "token inválido")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func denyAccess(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
