package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/avvvet/pickup-services/internal/board"
	"github.com/avvvet/pickup-services/internal/boardsvc/service"
	"github.com/go-chi/chi"
	"github.com/go-chi/jwtauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type boardResponse struct {
	Success bool       `json:"success"`
	Data    board.View `json:"data"`
}

func newTestRouter(t *testing.T) (*chi.Mux, *jwtauth.JWTAuth) {
	t.Helper()
	svc := service.NewBoardService()
	svc.SetClock(func() time.Time { return time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC) })

	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	h := NewHandler(svc, tokenAuth)

	r := chi.NewRouter()
	h.SetRoutes(r)
	return r, tokenAuth
}

func do(t *testing.T, r http.Handler, method, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBoard(t *testing.T, rec *httptest.ResponseRecorder) board.View {
	t.Helper()
	var resp boardResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.True(t, resp.Success)
	return resp.Data
}

func TestGetEmptyBoard(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(t, r, http.MethodGet, "/v1/board", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	v := decodeBoard(t, rec)
	assert.Equal(t, "2026-10-17", v.ReferenceDate)
	assert.Empty(t, v.Today)
	assert.Equal(t, board.DefaultSport, v.Draft.Sport)
}

func TestCreateGameFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(t, r, http.MethodPut, "/v1/board/draft", url.Values{
		"sport":           {"soccer"},
		"date":            {"2026-10-20"},
		"time":            {"18:00"},
		"location":        {"Pier 7"},
		"playerThreshold": {"10"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, decodeBoard(t, rec).Draft.PlayerThreshold)

	rec = do(t, r, http.MethodPost, "/v1/board/games", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	v := decodeBoard(t, rec)
	require.Len(t, v.Upcoming, 1)
	g := v.Upcoming[0]
	assert.Equal(t, 1, g.ID)
	assert.Equal(t, "soccer at Pier 7 on 2026-10-20 at 18:00", g.Summary)
	assert.Equal(t, "0 / 10 players", g.Roster)
	assert.Equal(t, board.NewDraft(), v.Draft)

	rec = do(t, r, http.MethodPost, "/v1/board/games/1/join", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	v = decodeBoard(t, rec)
	require.NotNil(t, v.Joining)
	assert.Equal(t, 1, *v.Joining)

	rec = do(t, r, http.MethodPost, "/v1/board/join", url.Values{"playerName": {"Ana"}})
	require.Equal(t, http.StatusOK, rec.Code)
	v = decodeBoard(t, rec)
	assert.Nil(t, v.Joining)
	assert.Equal(t, []string{"Ana"}, v.Upcoming[0].Players)
	assert.Equal(t, "1 / 10 players", v.Upcoming[0].Roster)
}

func TestNonNumericThresholdBecomesZero(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(t, r, http.MethodPut, "/v1/board/draft", url.Values{"sport": {"tennis"}, "playerThreshold": {"lots"}})

	require.Equal(t, http.StatusOK, rec.Code)
	v := decodeBoard(t, rec)
	assert.Equal(t, "tennis", v.Draft.Sport)
	assert.Equal(t, 0, v.Draft.PlayerThreshold)
}

func TestBeginJoinRejectsBadID(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := do(t, r, http.MethodPost, "/v1/board/games/abc/join", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false}`, rec.Body.String())
}

func TestConfirmJoinWithoutBeginIsNoop(t *testing.T) {
	r, _ := newTestRouter(t)
	do(t, r, http.MethodPost, "/v1/board/games", nil)

	rec := do(t, r, http.MethodPost, "/v1/board/join", url.Values{"playerName": {"Ana"}})

	require.Equal(t, http.StatusOK, rec.Code)
	v := decodeBoard(t, rec)
	require.Len(t, v.Archived, 1)
	assert.Empty(t, v.Archived[0].Players)
}

func TestHealthRequiresToken(t *testing.T) {
	r, tokenAuth := newTestRouter(t)

	rec := do(t, r, http.MethodGet, "/v1/health", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	_, token, err := tokenAuth.Encode(map[string]interface{}{"service_id": 1})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
