package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"

	"github.com/avvvet/pickup-services/internal/itemsvc/service"
	"github.com/go-chi/jwtauth"
	log "github.com/sirupsen/logrus"
)

// bodies larger than this are rejected as invalid input
const maxBodyBytes = 1 << 20

type Handler struct {
	tokenAuth   *jwtauth.JWTAuth
	itemService *service.ItemService
}

func NewHandler(itemService *service.ItemService, tokenAuth *jwtauth.JWTAuth) *Handler {
	return &Handler{
		tokenAuth:   tokenAuth,
		itemService: itemService,
	}
}

// Response is the item API envelope. Failures carry only success=false.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

func (h *Handler) CreateResponse(w http.ResponseWriter, code int, rsp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(rsp); err != nil {
		log.Errorf("Failed to encode response: %v", err)
	}
}

func (h *Handler) fail(w http.ResponseWriter) {
	h.CreateResponse(w, http.StatusBadRequest, Response{Success: false})
}

// Items serves /items: GET lists, POST creates, anything else is rejected.
func (h *Handler) Items(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.ListItems(w, r)
	case http.MethodPost:
		h.CreateItem(w, r)
	default:
		log.Warnf("rejected %s on /items", r.Method)
		h.fail(w)
	}
}

func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.itemService.ListItems(r.Context())
	if err != nil {
		log.Errorf("Error [ItemService.ListItems] %s", err)
		h.fail(w)
		return
	}

	h.CreateResponse(w, http.StatusOK, Response{Success: true, Data: items})
}

func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil || len(body) > maxBodyBytes {
		log.Warnf("unreadable item body: %v", err)
		h.fail(w)
		return
	}

	item, err := h.itemService.CreateItem(r.Context(), body)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			log.Warnf("Error [ItemService.CreateItem] %s", err)
		} else {
			log.Errorf("Error [ItemService.CreateItem] %s", err)
		}
		h.fail(w)
		return
	}

	h.CreateResponse(w, http.StatusCreated, Response{Success: true, Data: item})
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	rsp := Response{
		Success: true,
		Data:    "item service is running at port " + os.Getenv("ITEM_SERVICE_PORT"),
	}
	h.CreateResponse(w, http.StatusOK, rsp)
}
