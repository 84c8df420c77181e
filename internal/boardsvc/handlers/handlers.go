package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"

	"github.com/avvvet/pickup-services/internal/board"
	"github.com/avvvet/pickup-services/internal/boardsvc/service"
	"github.com/go-chi/chi"
	"github.com/go-chi/jwtauth"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	tokenAuth    *jwtauth.JWTAuth
	boardService *service.BoardService
}

func NewHandler(boardService *service.BoardService, tokenAuth *jwtauth.JWTAuth) *Handler {
	return &Handler{
		tokenAuth:    tokenAuth,
		boardService: boardService,
	}
}

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

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	h.CreateResponse(w, http.StatusOK, Response{Success: true, Data: h.boardService.View()})
}

// UpdateDraft takes the new-game form fields as form values.
func (h *Handler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Warnf("unreadable draft form: %s", err)
		h.CreateResponse(w, http.StatusBadRequest, Response{Success: false})
		return
	}

	draft := board.Draft{
		Sport:           r.PostForm.Get("sport"),
		Date:            r.PostForm.Get("date"),
		Time:            r.PostForm.Get("time"),
		Location:        r.PostForm.Get("location"),
		PlayerThreshold: board.ParseThreshold(r.PostForm.Get("playerThreshold")),
	}

	h.CreateResponse(w, http.StatusOK, Response{Success: true, Data: h.boardService.UpdateDraft(draft)})
}

func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	h.CreateResponse(w, http.StatusCreated, Response{Success: true, Data: h.boardService.CreateGame()})
}

func (h *Handler) BeginJoin(w http.ResponseWriter, r *http.Request) {
	gameID, err := strconv.Atoi(chi.URLParam(r, "gameID"))
	if err != nil {
		log.Warnf("invalid game id %q", chi.URLParam(r, "gameID"))
		h.CreateResponse(w, http.StatusBadRequest, Response{Success: false})
		return
	}

	h.CreateResponse(w, http.StatusOK, Response{Success: true, Data: h.boardService.BeginJoin(gameID)})
}

// ConfirmJoin takes the player name as typed, no trimming.
func (h *Handler) ConfirmJoin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Warnf("unreadable join form: %s", err)
		h.CreateResponse(w, http.StatusBadRequest, Response{Success: false})
		return
	}

	view := h.boardService.ConfirmJoin(r.PostForm.Get("playerName"))
	h.CreateResponse(w, http.StatusOK, Response{Success: true, Data: view})
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	rsp := Response{
		Success: true,
		Data:    "board service is running at port " + os.Getenv("BOARD_SERVICE_PORT"),
	}
	h.CreateResponse(w, http.StatusOK, rsp)
}
