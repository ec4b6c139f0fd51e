package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/geocities-ai/backend/internal/cities"
)

type CityHandler struct {
	cities *cities.Service
	logger *zap.Logger
}

func NewCityHandler(svc *cities.Service, logger *zap.Logger) *CityHandler {
	return &CityHandler{cities: svc, logger: logger}
}

func (h *CityHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/cities", h.ListCities).Methods("GET")
	router.HandleFunc("/api/cities", h.CreateCity).Methods("POST")
	router.HandleFunc("/api/cities/{cityId}", h.GetCity).Methods("GET")
	router.HandleFunc("/api/cities/{cityId}", h.UpdateCity).Methods("PUT")
	router.HandleFunc("/api/cities/{cityId}", h.DeleteCity).Methods("DELETE")
}

func (h *CityHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	list, err := h.cities.List(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *CityHandler) CreateCity(w http.ResponseWriter, r *http.Request) {
	var in cities.CityInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	city, err := h.cities.Create(r.Context(), in)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.logger.Info("city created", zap.String("city_id", city.ID), zap.String("name", city.Name))
	writeJSON(w, http.StatusCreated, city)
}

func (h *CityHandler) GetCity(w http.ResponseWriter, r *http.Request) {
	city, err := h.cities.Get(r.Context(), mux.Vars(r)["cityId"])
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, city)
}

func (h *CityHandler) UpdateCity(w http.ResponseWriter, r *http.Request) {
	var in cities.CityInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	city, err := h.cities.Update(r.Context(), mux.Vars(r)["cityId"], in)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, city)
}

func (h *CityHandler) DeleteCity(w http.ResponseWriter, r *http.Request) {
	if err := h.cities.Delete(r.Context(), mux.Vars(r)["cityId"]); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "City deleted successfully"})
}
