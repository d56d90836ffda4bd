package handlers

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/tikaramspirits/tikaram-api/internal/entity"
)

type StoreHandler struct {
	Stores entity.StoreRepositoryInterface
}

func NewStoreHandler(stores entity.StoreRepositoryInterface) *StoreHandler {
	return &StoreHandler{Stores: stores}
}

// List handles GET /stores, optionally filtered to stores carrying a
// product. The map surface degrades to an empty list when storage is down;
// the locator page has nothing useful to do with a 500.
func (h *StoreHandler) List(w http.ResponseWriter, r *http.Request) {
	productSlug := r.URL.Query().Get("productSlug")

	var stores []entity.Store
	var err error

	if productSlug != "" {
		stores, err = h.Stores.FindByProductSlug(r.Context(), productSlug)
	} else {
		stores, err = h.Stores.FindAll(r.Context())
	}

	if err != nil {
		log.WithError(err).Error("Failed to fetch stores")
		stores = []entity.Store{}
	}
	if stores == nil {
		stores = []entity.Store{}
	}

	writeJSON(w, http.StatusOK, map[string][]entity.Store{"stores": stores})
}
