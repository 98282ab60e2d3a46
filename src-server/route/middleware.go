package route

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"gridcal/src-server/utils"
)

// APIKeyMiddleware guards mutating routes. The key is read from either the
// X-Api-Key header or a bearer Authorization header and compared in constant
// time. A blank configured key leaves the route open (single-user setups).
func APIKeyMiddleware(as *utils.AppState, next func(http.ResponseWriter, *http.Request)) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		configured := as.Config.GetAPIKey()
		if configured == "" {
			next(w, r)
			return
		}

		provided := func() string {
			if key := strings.TrimSpace(r.Header.Get("X-Api-Key")); key != "" {
				return key
			}
			auth := r.Header.Get("Authorization")
			if bearer, found := strings.CutPrefix(auth, "Bearer "); found {
				return strings.TrimSpace(bearer)
			}
			return ""
		}()
		if provided == "" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("API key not provided"))
			return
		}
		if subtle.ConstantTimeCompare([]byte(provided), []byte(configured)) != 1 {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Invalid API key"))
			return
		}

		next(w, r)
	}
}
