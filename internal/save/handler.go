package save

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
)

// Route is the path the save API is served on.
const Route = "/api/save"

// maxBodySize bounds a single save document.
const maxBodySize = 1 << 20

// Handler serves the record over HTTP.
type Handler struct {
	store  *FileStore
	logger *log.Logger
}

// NewHandler creates a handler backed by store.
func NewHandler(store *FileStore, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{store: store, logger: logger}
}

// Register mounts the save API on r.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc(Route, h.load).Methods(http.MethodGet)
	r.HandleFunc(Route, h.save).Methods(http.MethodPost)
}

// NewRouter returns a router serving only the save API.
func NewRouter(store *FileStore, logger *log.Logger) *mux.Router {
	r := mux.NewRouter()
	NewHandler(store, logger).Register(r)
	return r
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) {
	data, err := h.store.LoadRaw(r.Context())
	if err != nil {
		h.logger.Error("load record", "err", err)
		writeJSON(w, http.StatusInternalServerError, statusResponse{Status: "error", Message: "Unable to load"})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Write(data)
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, statusResponse{Status: "error", Message: "Invalid JSON"})
		return
	}

	err = h.store.SaveRaw(r.Context(), body)
	switch {
	case errors.Is(err, ErrInvalid):
		h.logger.Debug("rejected save", "remote", r.RemoteAddr, "bytes", len(body))
		writeJSON(w, http.StatusBadRequest, statusResponse{Status: "error", Message: "Invalid JSON"})
	case err != nil:
		h.logger.Error("save record", "err", err)
		writeJSON(w, http.StatusInternalServerError, statusResponse{Status: "error", Message: "Unable to save"})
	default:
		h.logger.Info("record saved", "remote", r.RemoteAddr, "bytes", len(body))
		writeJSON(w, http.StatusOK, statusResponse{Status: "success"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
