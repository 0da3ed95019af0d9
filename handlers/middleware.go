package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/centerdesk/portal/i18n"
	"github.com/centerdesk/portal/upstream"
)

// Response is the standard JSON envelope for all portal responses.
type Response struct {
	Data  any    `json:"data"`
	Error string `json:"error,omitempty"`
}

// Upstream is the shared platform API client used by all handlers.
var Upstream *upstream.Client

// OperatorRole is the only role allowed through the route gate.
var OperatorRole = "center_operator"

// DefaultLanguage is used when the request carries no usable language hint.
var DefaultLanguage = i18n.LangEnglish

// Session is the caller's identity for one request. It is the single read
// boundary for token and role; handlers never look at headers or cookies
// themselves.
type Session struct {
	Token  string
	Role   string
	UserID string
	Lang   string
}

type ctxKey int

const sessionKey ctxKey = iota

// SessionFrom returns the session placed on the request by RequireOperator.
func SessionFrom(r *http.Request) Session {
	s, _ := r.Context().Value(sessionKey).(Session)
	return s
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Data: data})
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Error: msg})
}

// writeValidationError localizes a validation message key for the caller.
func writeValidationError(w http.ResponseWriter, r *http.Request, key string) {
	writeError(w, http.StatusBadRequest, i18n.T(SessionFrom(r).Lang, key))
}

// RequireOperator is the route gate: it builds the caller's Session from
// the Authorization header (or the token cookie the login page mirrors the
// token into) and rejects requests without a token or with a non-operator
// role. Tokens are opaque here; the platform validates them on every
// forwarded call.
func RequireOperator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := Session{
			Token:  tokenFrom(r),
			Role:   valueFrom(r, "role", "X-User-Role"),
			UserID: valueFrom(r, "uid", "X-User-Id"),
			Lang:   i18n.Negotiate(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"), DefaultLanguage),
		}

		if session.Token == "" {
			writeError(w, http.StatusUnauthorized, i18n.T(session.Lang, "error.auth"))
			return
		}
		if session.Role != OperatorRole {
			writeError(w, http.StatusForbidden, i18n.T(session.Lang, "error.forbidden"))
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, session)))
	})
}

func tokenFrom(r *http.Request) string {
	authorization := strings.TrimSpace(r.Header.Get("Authorization"))
	if strings.HasPrefix(strings.ToLower(authorization), "bearer ") {
		return strings.TrimSpace(authorization[len("Bearer "):])
	}
	if cookie, err := r.Cookie("token"); err == nil {
		return cookie.Value
	}
	return ""
}

func valueFrom(r *http.Request, cookieName, headerName string) string {
	if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return r.Header.Get(headerName)
}

// writeUpstreamError maps a failed platform call to a status code and a
// localized message. The server's own message wins when one was extracted;
// network and server failures always fall back to the generic string.
func writeUpstreamError(w http.ResponseWriter, r *http.Request, err error) {
	lang := SessionFrom(r).Lang
	kind := upstream.KindOf(err)
	slog.Error("upstream call failed", "kind", kind, "error", err)

	switch kind {
	case upstream.KindAuth:
		writeError(w, http.StatusUnauthorized, fallback(upstream.MessageOf(err), i18n.T(lang, "error.auth")))
	case upstream.KindValidation:
		writeError(w, http.StatusBadRequest, fallback(upstream.MessageOf(err), i18n.T(lang, "error.remote")))
	case upstream.KindNotFound:
		writeError(w, http.StatusNotFound, fallback(upstream.MessageOf(err), i18n.T(lang, "error.notfound")))
	default:
		writeError(w, http.StatusBadGateway, i18n.T(lang, "error.remote"))
	}
}

func fallback(msg, generic string) string {
	if msg != "" {
		return msg
	}
	return generic
}
