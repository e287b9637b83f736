package middleware

import (
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"kingdom_backend/pkg/resp"
	"kingdom_backend/pkg/token"
)

const bearerPrefix = "Bearer "

// Auth проверяет access token и кладет ID игрока в контекст
func Auth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				resp.WriteError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			playerID, err := token.PlayerID(strings.TrimSpace(header[len(bearerPrefix):]), secretKey)
			if err != nil {
				log.WithError(err).WithField("path", r.URL.Path).Debug("rejected token")
				resp.WriteError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPlayerID(r.Context(), playerID)))
		})
	}
}
