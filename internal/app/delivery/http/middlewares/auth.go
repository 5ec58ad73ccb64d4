package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"taskgo-service/internal/pkg/constvars"
	"taskgo-service/internal/pkg/exceptions"
	"taskgo-service/internal/pkg/utils"
	"time"
)

// Authenticate guards the portal endpoints. Requests without a valid session
// get a 401 with a Location header pointing at the landing page so the
// frontend knows where to send the user.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			w.Header().Set(constvars.HeaderLocation, constvars.RouteLanding)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			w.Header().Set(constvars.HeaderLocation, constvars.RouteLanding)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		session, err := m.SessionService.GetSession(ctx, sessionID)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerDeadlineExceeded(err))
				return
			}
			w.Header().Set(constvars.HeaderLocation, constvars.RouteLanding)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx = context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RedirectIfAuthenticated sits on the public auth endpoints. A caller who
// already holds a live session is pointed at the order history instead of
// being allowed to log in or register again.
func (m *Middlewares) RedirectIfAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		_, err = m.SessionService.GetSession(ctx, sessionID)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set(constvars.HeaderLocation, constvars.RouteOrderHistory)
		w.WriteHeader(constvars.StatusSeeOther)
	})
}
