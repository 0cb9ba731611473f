package middleware

import (
	"net/http"
	"strings"

	"stayease/internal/data/entity"
	"stayease/internal/data/repository"
	"stayease/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession validates the bearer session token and loads the owning user
// into the request context. Every gated route sits behind this.
func AuthSession(sessionRepo repository.SessionRepository, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session",
					zap.String("token", token),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session", zap.String("token", token))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			user, err := userRepo.FindByID(r.Context(), session.UserID)
			if err != nil {
				logger.Error("Failed to load session user",
					zap.Error(err),
					zap.String("user_id", session.UserID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if user == nil {
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Role))
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Staff allows staff and admin roles. Lifecycle transitions and room
// management sit behind this gate.
func Staff(logger *zap.Logger) func(http.Handler) http.Handler {
	return requireRole(logger, "staff access required", entity.RoleStaff, entity.RoleAdmin)
}

// Admin allows the admin role only.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return requireRole(logger, "admin access required", entity.RoleAdmin)
}

func requireRole(logger *zap.Logger, message string, allowed ...entity.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			for _, a := range allowed {
				if entity.UserRole(role) == a {
					next.ServeHTTP(w, r)
					return
				}
			}

			logger.Warn("Role check: access denied",
				zap.String("role", role),
				zap.String("path", r.URL.Path))
			utils.ResponseForbidden(w, message)
		})
	}
}
