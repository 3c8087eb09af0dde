package tourapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orienteer/api"
	"github.com/katalvlaran/orienteer/api/tourapi"
	"github.com/katalvlaran/orienteer/cache"
	"github.com/katalvlaran/orienteer/service"
	"github.com/katalvlaran/orienteer/solver"
)

func newHandler(t *testing.T, s tourapi.Solver) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	return api.NewRouter(api.Config{
		BaseURL:     "/api",
		Controllers: []api.Controller{tourapi.NewController(s, nil)},
	}).Handler()
}

func post(h http.Handler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tours", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(w, req)

	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) tourapi.TourResponse {
	t.Helper()
	var resp tourapi.TourResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	return resp
}

func TestSolve_OK(t *testing.T) {
	store, err := cache.NewMemory(4)
	require.NoError(t, err)
	tours, err := service.NewTours(service.Config{Store: store})
	require.NoError(t, err)
	h := newHandler(t, tours)

	body := `{"grid": "3,3\nS.@\n...\n@.G\n"}`
	w := post(h, body)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	_, err = uuid.Parse(resp.ID)
	require.NoError(t, err)
	require.Equal(t, 8, resp.Length)
	require.True(t, resp.Solved)
	require.False(t, resp.Cached)
	require.Len(t, resp.Order, 4)
	require.Equal(t, tourapi.Point{X: 0, Y: 0}, resp.Order[0])
	require.Equal(t, tourapi.Point{X: 2, Y: 2}, resp.Order[3])

	again := decode(t, post(h, body))
	require.True(t, again.Cached)
	require.Equal(t, resp.Length, again.Length)
	require.NotEqual(t, resp.ID, again.ID)
}

func TestSolve_NoSolution(t *testing.T) {
	tours, err := service.NewTours(service.Config{})
	require.NoError(t, err)

	w := post(newHandler(t, tours), `{"grid": "3,1\nS#G\n"}`)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	require.Equal(t, solver.NoSolution, resp.Length)
	require.False(t, resp.Solved)
	require.Empty(t, resp.Order)
}

func TestSolve_BadRequests(t *testing.T) {
	tours, err := service.NewTours(service.Config{})
	require.NoError(t, err)
	h := newHandler(t, tours)

	for _, body := range []string{
		`not json`,
		`{}`,
		`{"grid": "2,1\nGG\n"}`,
		`{"grid": "1,1\nS\n"}`,
		`{"grid": "1,4611686018427387904\n"}`,
	} {
		w := post(h, body)
		require.Equal(t, http.StatusBadRequest, w.Code, body)
		require.Contains(t, w.Body.String(), `"error"`)
	}
}

// stub returns a fixed outcome or error.
type stub struct {
	out service.Outcome
	err error
}

func (s stub) Solve(context.Context, string) (service.Outcome, error) { return s.out, s.err }

func TestSolve_InternalError(t *testing.T) {
	w := post(newHandler(t, stub{err: errors.New("boom")}), `{"grid": "x"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotContains(t, w.Body.String(), "boom")
}

func TestSolve_BodyTooLarge(t *testing.T) {
	h := newHandler(t, stub{out: service.Outcome{Length: solver.NoSolution}})

	body := `{"grid": "` + strings.Repeat(".", tourapi.MaxBodyBytes+1) + `"}`
	w := post(h, body)
	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	require.Contains(t, w.Body.String(), `"error"`)

	// a body just under the cap still reaches the solver
	w = post(h, `{"grid": "`+strings.Repeat(".", tourapi.MaxBodyBytes-64)+`"}`)
	require.Equal(t, http.StatusOK, w.Code)
}
