package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/tikaramspirits/tikaram-api/internal/usecase"
)

const sessionCookieName = "tikaram_session"

type TrackingHandler struct {
	TrackUC *usecase.TrackVisitUseCase
}

func NewTrackingHandler(trackUC *usecase.TrackVisitUseCase) *TrackingHandler {
	return &TrackingHandler{TrackUC: trackUC}
}

// Handle handles POST /track-location. The response is always 200 with a
// location payload; nothing that goes wrong here may reach the browser as
// an error.
func (h *TrackingHandler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get("X-Session-ID")
	if sessionID == "" {
		if c, err := r.Cookie(sessionCookieName); err == nil {
			sessionID = c.Value
		}
	}
	if sessionID == "" {
		sessionID = uuid.New().String()
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    sessionID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	// Optional body: {"path": "/spirits/..."} for the page being viewed.
	path := r.URL.Path
	var body struct {
		Path string `json:"path"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err == nil && body.Path != "" {
		path = body.Path
	}

	output := h.TrackUC.Execute(r.Context(), usecase.TrackVisitInput{
		SessionID: sessionID,
		Path:      path,
		UserAgent: r.UserAgent(),
	})

	writeJSON(w, http.StatusOK, output)
}
