package middleware

import (
	"net/http"
	"strings"

	"github.com/zhaygo/backend/pkg/auth"
	"github.com/zhaygo/backend/pkg/response"
)

// Auth verifies the Authorization header on protected routes.
//
// A missing or malformed header is a 401; a token that fails validation
// (bad signature, expired, garbled) is a 403. On success the verified user
// id is stored in the request context via auth.WithUserID.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			response.Error(w, http.StatusUnauthorized, "Access denied. Token is required.")
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Error(w, http.StatusUnauthorized, "Access denied. Token is required.")
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Error(w, http.StatusForbidden, "Invalid token")
			return
		}

		ctx := auth.WithUserID(r.Context(), claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
