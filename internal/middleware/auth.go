package middleware

import (
	"errors"
	"net/http"

	"dalarosa-be/internal/auth"
	"dalarosa-be/internal/backend"
	"dalarosa-be/internal/logger"
	"dalarosa-be/internal/user"
	"dalarosa-be/internal/utils"

	"go.uber.org/zap"
)

const LoginPath = "/login"

// AdminGate lets a request through only with a valid admin session. Browser
// navigations are redirected to the login page, API calls get a 401.
func AdminGate(b backend.Backend) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token := auth.ExtractAccessToken(r)

			u, err := b.CurrentUser(ctx, token)
			if err != nil {
				if errors.Is(err, backend.ErrRemote) {
					logger.FromCtx(ctx).Error("session check failed", zap.Error(err))
					utils.WriteJSONError(w, "could not verify session", http.StatusBadGateway)
					return
				}
				deny(w, r)
				return
			}

			ctx = utils.SetUserContext(ctx, u.ID, u.Email, string(u.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func deny(w http.ResponseWriter, r *http.Request) {
	if utils.WantsJSON(r) {
		utils.WriteJSONError(w, user.ErrInvalidToken.Error(), http.StatusUnauthorized)
		return
	}
	http.Redirect(w, r, LoginPath, http.StatusSeeOther)
}
