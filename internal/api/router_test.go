package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"pickup-route-service/internal/api/dto"
	"pickup-route-service/internal/domain"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	scenarios map[string]*domain.Scenario
	err       error
}

func (r *stubRepo) ListScenarios(ctx context.Context) ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]string, 0, len(r.scenarios))
	for name := range r.scenarios {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

func (r *stubRepo) GetScenario(ctx context.Context, name string) (*domain.Scenario, error) {
	if r.err != nil {
		return nil, r.err
	}
	s, ok := r.scenarios[name]
	if !ok {
		return nil, fmt.Errorf("get scenario %q: %w", name, domain.ErrScenarioNotFound)
	}
	return s, nil
}

func newTestRouter() http.Handler {
	repo := &stubRepo{scenarios: map[string]*domain.Scenario{
		"triangle": {
			Name:     "triangle",
			Depot:    "A",
			Capacity: 10,
			Roads: []domain.Road{
				{From: "A", To: "B", Distance: 5},
				{From: "B", To: "C", Distance: 5},
				{From: "A", To: "C", Distance: 20},
			},
			Packages: []domain.Package{{Name: "P1", From: "A", To: "C", Weight: 3}},
		},
		"island": {
			Name:     "island",
			Depot:    "A",
			Capacity: 10,
			Roads: []domain.Road{
				{From: "A", To: "B", Distance: 5},
				{From: "X", To: "Y", Distance: 1},
			},
			Packages: []domain.Package{{Name: "P1", From: "A", To: "Y", Weight: 1}},
		},
	}}
	return NewRouter(repo, nil)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, "ok", res.Status)
	require.NotEmpty(t, res.RequestID)
	require.Equal(t, rec.Header().Get("X-Request-ID"), res.RequestID)
}

func TestRequestIDIsPropagated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	require.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestListScenarios(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodGet, "/scenarios", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.ListScenariosResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, []string{"island", "triangle"}, res.Scenarios)
}

func TestListScenariosRepositoryFailure(t *testing.T) {
	h := NewRouter(&stubRepo{err: fmt.Errorf("disk on fire")}, nil)
	rec := do(t, h, http.MethodGet, "/scenarios", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var res dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, "internal server error", res.Error)
	require.NotContains(t, rec.Body.String(), "disk on fire")
	require.Equal(t, rec.Header().Get("X-Request-ID"), res.RequestID)
}

func TestPlanStoredScenario(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodPost, "/plans", `{"scenario":"triangle","strategies":["shortest"]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res dto.ListPlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Plans, 1)

	p := res.Plans[0]
	require.Equal(t, "shortest", p.Strategy)
	require.Equal(t, 20, p.TotalDistance)
	require.NotEmpty(t, p.PlanID)
	require.Len(t, p.Steps, 4)

	require.Equal(t, "A", p.Steps[0].From)
	require.Equal(t, "A", p.Steps[0].To)
	require.Equal(t, "P1", p.Steps[0].PickedUp[0].Name)

	require.Equal(t, "C", p.Steps[1].To)
	require.Equal(t, []string{"A", "B", "C"}, p.Steps[1].Path)

	require.Equal(t, "P1", p.Steps[2].DroppedOff[0].Name)
	require.Equal(t, "A", p.Steps[3].To)
}

func TestPlanInlineScenarioDefaultsToBothStrategies(t *testing.T) {
	body := `{
		"depot": "A",
		"capacity": 5,
		"roads": [{"from":"A","to":"B","distance":4}],
		"packages": [{"name":"P1","from":"B","to":"A","weight":2}]
	}`
	rec := do(t, newTestRouter(), http.MethodPost, "/plans", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res dto.ListPlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Plans, 2)
	require.Equal(t, "shortest", res.Plans[0].Strategy)
	require.Equal(t, "fuel_efficient", res.Plans[1].Strategy)
	for _, p := range res.Plans {
		require.Equal(t, 8, p.TotalDistance)
	}
}

func TestPlanErrors(t *testing.T) {
	cases := []struct {
		name   string
		method string
		body   string
		want   int
	}{
		{"wrong method", http.MethodGet, "", http.StatusMethodNotAllowed},
		{"bad json", http.MethodPost, `{`, http.StatusBadRequest},
		{"unknown field", http.MethodPost, `{"scenario":"triangle","extra":1}`, http.StatusBadRequest},
		{"two objects", http.MethodPost, `{"scenario":"triangle"}{}`, http.StatusBadRequest},
		{"neither source", http.MethodPost, `{}`, http.StatusBadRequest},
		{"both sources", http.MethodPost, `{"scenario":"triangle","depot":"A"}`, http.StatusBadRequest},
		{"unknown strategy", http.MethodPost, `{"scenario":"triangle","strategies":["fastest"]}`, http.StatusBadRequest},
		{"unknown scenario", http.MethodPost, `{"scenario":"nowhere"}`, http.StatusNotFound},
		{"unreachable city", http.MethodPost, `{"scenario":"island"}`, http.StatusUnprocessableEntity},
		{"zero capacity", http.MethodPost, `{"depot":"A","capacity":0}`, http.StatusBadRequest},
		{"negative road", http.MethodPost, `{"depot":"A","capacity":1,"roads":[{"from":"A","to":"B","distance":-1}]}`, http.StatusBadRequest},
		{"road too long", http.MethodPost, `{"depot":"A","capacity":1,"roads":[{"from":"A","to":"B","distance":9223372036854775807}]}`, http.StatusBadRequest},
		{"overweight", http.MethodPost, `{"depot":"A","capacity":1,"roads":[{"from":"A","to":"B","distance":1}],"packages":[{"name":"P","from":"A","to":"B","weight":2}]}`, http.StatusBadRequest},
		{"blank package", http.MethodPost, `{"depot":"A","capacity":1,"packages":[{"name":"","from":"A","to":"B","weight":1}]}`, http.StatusBadRequest},
	}

	h := newTestRouter()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, tc.method, "/plans", tc.body)
			require.Equal(t, tc.want, rec.Code, rec.Body.String())

			var res dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
			require.NotEmpty(t, res.Error)
			require.Equal(t, rec.Header().Get("X-Request-ID"), res.RequestID)
		})
	}
}
