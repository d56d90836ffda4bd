package handlers

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/tikaramspirits/tikaram-api/internal/entity"
)

// categoryFilters maps the site's filter labels onto stored categories. An
// empty value means no category filter.
var categoryFilters = map[string]string{
	"ALL":             "",
	"UPCOMING EVENTS": "",
	"TASTING EVENTS":  entity.EventCategoryTastings,
	"MUSIC FEST":      entity.EventCategoryMusic,
	"SPECIAL EVENTS":  entity.EventCategoryOther,
}

type EventHandler struct {
	Events entity.EventRepositoryInterface
}

func NewEventHandler(events entity.EventRepositoryInterface) *EventHandler {
	return &EventHandler{Events: events}
}

// List handles GET /events?category=. Like the store locator, it degrades
// to an empty list rather than erroring at the browser.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	var events []entity.Event
	var err error

	switch {
	case category == "UPCOMING EVENTS":
		events, err = h.Events.FindUpcoming(r.Context(), time.Now())
	case categoryFilters[category] != "":
		events, err = h.Events.FindByCategory(r.Context(), categoryFilters[category])
	default:
		events, err = h.Events.FindAll(r.Context())
	}

	if err != nil {
		log.WithError(err).Error("Failed to fetch events")
		events = []entity.Event{}
	}
	if events == nil {
		events = []entity.Event{}
	}

	writeJSON(w, http.StatusOK, map[string][]entity.Event{"events": events})
}
