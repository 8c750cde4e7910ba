package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsvoboda/accounts-api/internal/api/shared"
	"github.com/jsvoboda/accounts-api/internal/service/auth"
	"github.com/jsvoboda/accounts-api/internal/store"
)

// AuthMiddleware resolves the acting principal for mutating routes using
// HTTP Basic authentication. Credentials are verified against the stored
// credential hash; on success the account's username is placed in the request
// context as the principal identity string. There are no sessions or tokens.
type AuthMiddleware struct {
	accountStore store.AccountStore
	verifier     auth.PasswordVerifier
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(accountStore store.AccountStore, verifier auth.PasswordVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		accountStore: accountStore,
		verifier:     verifier,
	}
}

// Authenticate validates Basic credentials from the Authorization header and
// adds the authenticated username to the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			m.unauthorized(w, r, "Authorization required")
			return
		}

		account, err := m.accountStore.GetByUsername(r.Context(), username)
		if err != nil {
			if errors.Is(err, store.ErrAccountNotFound) {
				// Same response as a bad password so the header never
				// reveals which usernames exist.
				m.unauthorized(w, r, "Invalid credentials")
				return
			}
			slog.Error("failed to resolve principal", "error", err)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}

		if err := m.verifier.Compare(account.HashedPassword, password); err != nil {
			m.unauthorized(w, r, "Invalid credentials")
			return
		}

		ctx := shared.SetPrincipal(r.Context(), account.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) unauthorized(w http.ResponseWriter, r *http.Request, message string) {
	w.Header().Set("WWW-Authenticate", `Basic realm="accounts", charset="UTF-8"`)
	shared.RespondWithError(w, r, http.StatusUnauthorized, message)
}

// GetPrincipal extracts the authenticated username from the request context.
// Returns the username and a boolean indicating if it was found.
func GetPrincipal(r *http.Request) (string, bool) {
	return shared.GetPrincipal(r.Context())
}
