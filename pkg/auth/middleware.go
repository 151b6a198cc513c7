package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/savichev/restofloor/pkg/utils"
)

type ContextKey string

const (
	EmployeeIDKey ContextKey = "employeeID"
	PositionKey   ContextKey = "position"
)

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		jwtService := &JWTService{}
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), EmployeeIDKey, claims.EmployeeID)
		ctx = context.WithValue(ctx, PositionKey, claims.Position)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
