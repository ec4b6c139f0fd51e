package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/geocities-ai/backend/internal/pages"
)

type PageHandler struct {
	pages  *pages.Service
	logger *zap.Logger
}

func NewPageHandler(svc *pages.Service, logger *zap.Logger) *PageHandler {
	return &PageHandler{pages: svc, logger: logger}
}

func (h *PageHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/cities/{cityId}/pages", h.ListPages).Methods("GET")
	router.HandleFunc("/api/cities/{cityId}/pages", h.CreatePage).Methods("POST")
	router.HandleFunc("/api/cities/{cityId}/pages/{pageId}", h.GetPage).Methods("GET")
	router.HandleFunc("/api/cities/{cityId}/pages/{pageId}", h.UpdatePage).Methods("PUT")
	router.HandleFunc("/api/cities/{cityId}/pages/{pageId}", h.DeletePage).Methods("DELETE")
}

func (h *PageHandler) ListPages(w http.ResponseWriter, r *http.Request) {
	list, err := h.pages.ListPages(r.Context(), mux.Vars(r)["cityId"])
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *PageHandler) CreatePage(w http.ResponseWriter, r *http.Request) {
	cityID := mux.Vars(r)["cityId"]

	var in pages.CreatePageInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	page, err := h.pages.CreatePage(r.Context(), cityID, in)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.logger.Info("page created",
		zap.String("city_id", cityID),
		zap.String("page_id", page.ID),
		zap.String("content_mode", page.ContentMode),
		zap.String("content_tag", page.ContentTag))
	writeJSON(w, http.StatusCreated, page)
}

func (h *PageHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	page, err := h.pages.GetPage(r.Context(), vars["cityId"], vars["pageId"])
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *PageHandler) UpdatePage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var in pages.UpdatePageInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	page, err := h.pages.UpdatePage(r.Context(), vars["cityId"], vars["pageId"], in)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *PageHandler) DeletePage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.pages.DeletePage(r.Context(), vars["cityId"], vars["pageId"]); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Page deleted successfully"})
}
