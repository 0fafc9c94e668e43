package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/makaolabs/makao/internal/advisor"
	"github.com/makaolabs/makao/internal/auth"
	"github.com/makaolabs/makao/internal/normalize"
	"github.com/makaolabs/makao/internal/session"
	"github.com/makaolabs/makao/pkg/types"
)

type Handler struct {
	Auth     auth.Authenticator
	Advisor  *advisor.Service
	Sessions session.Store
}

// AdviceRequest is the wire envelope for POST /v1/advice. The optional
// session ID lets callers continue a profile across turns; fields in
// the body always override the stored profile.
type AdviceRequest struct {
	SessionID string `json:"session_id,omitempty"`
	normalize.RawRequest
}

func (h *Handler) Advice(w http.ResponseWriter, r *http.Request) {
	if !h.ensureAuth(w, r) {
		return
	}
	if h.Advisor == nil {
		writeJSON(w, http.StatusNotImplemented, map[string]string{"error": "advisor not configured"})
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unreadable body"})
		return
	}

	var envelope AdviceRequest
	if err := json.Unmarshal(body, &envelope); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	raw := h.mergeSession(envelope, body)

	resp, err := h.Advisor.Advise(r.Context(), raw)
	if err != nil {
		var verr *normalize.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": verr.Error(), "field": verr.Field})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	h.persistSession(envelope.SessionID, raw)
	writeJSON(w, http.StatusOK, resp)
}

// mergeSession overlays the request body on the stored profile, if any.
// Session state lives entirely at this boundary; the advisory core
// below it stays stateless.
func (h *Handler) mergeSession(envelope AdviceRequest, body []byte) normalize.RawRequest {
	if envelope.SessionID == "" || h.Sessions == nil {
		return envelope.RawRequest
	}
	rec, ok := h.Sessions.Get(envelope.SessionID)
	if !ok {
		return envelope.RawRequest
	}

	var merged normalize.RawRequest
	if err := json.Unmarshal(rec.ProfileJSON, &merged); err != nil {
		return envelope.RawRequest
	}
	if err := json.Unmarshal(body, &merged); err != nil {
		return envelope.RawRequest
	}
	return merged
}

func (h *Handler) persistSession(sessionID string, raw normalize.RawRequest) {
	if sessionID == "" || h.Sessions == nil {
		return
	}
	profile, err := json.Marshal(raw)
	if err != nil {
		return
	}
	_ = h.Sessions.Put(session.Record{
		SessionID:   sessionID,
		ProfileJSON: profile,
		UpdatedAt:   time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	if !h.ensureAuth(w, r) {
		return
	}
	if h.Sessions == nil {
		writeJSON(w, http.StatusNotImplemented, map[string]string{"error": "session store not configured"})
		return
	}

	sessionID := strings.TrimPrefix(r.URL.Path, "/v1/sessions/")
	if sessionID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing session_id"})
		return
	}

	rec, ok := h.Sessions.Get(sessionID)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"session_id": rec.SessionID,
		"profile":    json.RawMessage(rec.ProfileJSON),
		"updated_at": rec.UpdatedAt,
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ensureAuth(w http.ResponseWriter, r *http.Request) bool {
	_, err := h.Auth.Authenticate(r)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(payload)
}

// errorResponse is the body sent when an invariant violation surfaces
// as a panic. The response status mirrors types.StatusError so clients
// see the same taxonomy on every path.
func errorResponse(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"status": string(types.StatusError),
		"error":  "internal error",
	})
}
