package middleware

import (
	"context"
	"net/http"

	"gorm.io/gorm"

	"github.com/adityavk/portfolio-server/internal/auth"
	"github.com/adityavk/portfolio-server/internal/models"
	"github.com/adityavk/portfolio-server/internal/utils"
)

type contextKey string

const userKey contextKey = "user"

// UserFromContext returns the authenticated user attached by RequireAuth.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}

// ContextWithUser is exported for handler tests that bypass the middleware.
func ContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// RequireAuth verifies the session cookie and resolves the user record
// before the wrapped handler runs. Any failure, including a token whose
// user no longer exists, is a 401 with no side effects.
func RequireAuth(tokens *auth.TokenIssuer, db *gorm.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie(utils.SessionCookieName)
			if err != nil {
				unauthorized(w)
				return
			}

			userID, err := tokens.Verify(cookie.Value)
			if err != nil {
				unauthorized(w)
				return
			}

			var user models.User
			if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
				unauthorized(w)
				return
			}

			ctx := ContextWithUser(r.Context(), &user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
		Success: false,
		Message: "Unauthorized",
	})
}
