package wcaprofile

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"wca-userinfo/lib/restyutil"
	"wca-userinfo/lib/wca"

	"github.com/stretchr/testify/require"
)

type stubSource struct {
	profiles map[string]wca.Profile
	err      error
}

func (s stubSource) GetProfile(ctx context.Context, wcaID string) (wca.Profile, error) {
	if s.err != nil {
		return wca.Profile{}, s.err
	}
	profile, ok := s.profiles[wcaID]
	if !ok {
		return wca.Profile{}, &UpstreamStatusError{
			Status:     http.StatusNotFound,
			StatusText: "404 Not Found",
			Url:        DefaultBaseUrl + "/" + wcaID,
		}
	}
	return profile, nil
}

func serve(t testing.TB, h http.Handler, path string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body map[string]any
	err := json.Unmarshal(rec.Body.Bytes(), &body)
	if err != nil {
		t.Fatalf("response is not json: %s (%v)", rec.Body.String(), err)
	}
	return rec, body
}

func TestHandlerProfile(t *testing.T) {
	male := wca.GenderMale
	h := NewHandler(stubSource{profiles: map[string]wca.Profile{
		"2015DOEX01": {
			Country:         "USA",
			WcaID:           "2015DOEX01",
			Gender:          &male,
			Competitions:    12,
			CompletedSolves: 340,
			Events:          []wca.Event{},
		},
	}})

	rec, _ := serve(t, h, "/2015DOEX01")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{
		"country": "USA",
		"wca_id": "2015DOEX01",
		"gender": "Male",
		"competitions": 12,
		"completed_solves": 340,
		"events": []
	}`, rec.Body.String())
}

func TestHandlerErrors(t *testing.T) {
	h := NewHandler(stubSource{})

	rec, body := serve(t, h, "/2000NONE01")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, map[string]any{
		"error": "http status 404 Not Found for url (https://www.worldcubeassociation.org/persons/2000NONE01)",
	}, body)

	rec, body = serve(t, h, "/")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, map[string]any{"error": "missing wca id"}, body)

	h = NewHandler(stubSource{err: &wca.StructuralError{
		Region:   "user information",
		Expected: "4 or 5",
		Found:    0,
	}})
	rec, body = serve(t, h, "/2015DOEX01")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, map[string]any{
		"error": "parse error: didn't find expected amount of cells in user information, expected 4 or 5, found 0",
	}, body)
}

func TestHandlerEndToEnd(t *testing.T) {
	upstream, _ := newUpstream(t)

	output := restyutil.NewMemoryOutput()
	SetRestyInstrumentOutput(output)
	defer SetRestyInstrumentOutput(nil)

	client := newTestClient(t, upstream.URL+"/persons")
	server := httptest.NewServer(NewHandler(client))
	defer server.Close()

	get := func(path string) (int, string) {
		res, err := http.Get(server.URL + path)
		require.NoError(t, err)
		defer res.Body.Close()
		body, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		require.Equal(t, "application/json", res.Header.Get("Content-Type"))
		return res.StatusCode, string(body)
	}

	status, body := get("/2015NORE01")
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{
		"country": "USA",
		"wca_id": "2015DOEX01",
		"gender": "Male",
		"competitions": 12,
		"completed_solves": 340,
		"events": []
	}`, body)

	status, body = get("/2015DOEX01")
	require.Equal(t, http.StatusOK, status)
	var profile wca.Profile
	require.NoError(t, json.Unmarshal([]byte(body), &profile))
	require.Equal(t, "United States", profile.Country)
	require.Equal(t, wca.GenderFemale, *profile.Gender)
	require.Len(t, profile.Events, 3)
	require.Equal(t, "1:23.45", *profile.Events[1].Single.Time)
	require.Nil(t, profile.Events[1].Average.Time)

	status, body = get("/2099MALF01")
	require.Equal(t, http.StatusBadRequest, status)
	require.JSONEq(t, `{"error": "personal records row 3: could not parse integer for single.world: \"20,000\""}`, body)

	status, body = get("/2099BROK01")
	require.Equal(t, http.StatusBadRequest, status)
	require.JSONEq(t, `{"error": "parse error: didn't find expected amount of cells in user information, expected 4 or 5, found 1"}`, body)

	status, body = get("/2000NONE01")
	require.Equal(t, http.StatusBadRequest, status)
	require.Contains(t, body, `"error":"http status 404 Not Found for url (`)

	// every upstream round trip was dumped, including the failing ones
	require.Len(t, output.Messages, 5)
}
