package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"fusus-cli/internal/token"
)

type testRecord struct {
	ID int `json:"id"`
}

func pageOf(start, n int) []testRecord {
	out := make([]testRecord, n)
	for i := range out {
		out[i] = testRecord{ID: start + i}
	}
	return out
}

func writeResults(w http.ResponseWriter, recs []testRecord) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"results": recs})
}

func testClient(srv *httptest.Server) *Client {
	return New(srv.URL, &token.Credential{Token: "JWT t.t.t"})
}

func TestFetchAllPagesAccumulatesInOrder(t *testing.T) {
	// 20 + 20 + 5 records over three pages, then an empty page.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		switch page {
		case 1:
			writeResults(w, pageOf(0, 20))
		case 2:
			writeResults(w, pageOf(20, 20))
		case 3:
			writeResults(w, pageOf(40, 5))
		default:
			writeResults(w, nil)
		}
	}))
	defer srv.Close()

	got, err := fetchAllPages[testRecord](testClient(srv), "/api/things/", nil,
		FetchOptions{SizeParam: "pageSize", PageSize: 20}, unwrapResults[testRecord])
	if err != nil {
		t.Fatalf("fetchAllPages: %v", err)
	}
	if len(got) != 45 {
		t.Fatalf("got %d records, want 45", len(got))
	}
	for i, rec := range got {
		if rec.ID != i {
			t.Fatalf("record %d has ID %d, ordering not preserved", i, rec.ID)
		}
	}
}

func TestFetchAllPagesEndOn404(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page > 2 {
			http.NotFound(w, r)
			return
		}
		writeResults(w, pageOf((page-1)*3, 3))
	}))
	defer srv.Close()

	got, err := fetchAllPages[testRecord](testClient(srv), "/api/things/", nil,
		FetchOptions{EndOn404: true}, unwrapResults[testRecord])
	if err != nil {
		t.Fatalf("fetchAllPages: %v", err)
	}
	if len(got) != 6 {
		t.Errorf("got %d records, want 6", len(got))
	}
}

func TestFetchAllPages404IsErrorWithoutOptIn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := fetchAllPages[testRecord](testClient(srv), "/api/things/", nil,
		FetchOptions{}, unwrapResults[testRecord])
	var apiError *APIError
	if !errors.As(err, &apiError) {
		t.Fatalf("got %v, want *APIError", err)
	}
	if apiError.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", apiError.StatusCode)
	}
}

func TestFetchAllPagesRefreshOn401(t *testing.T) {
	const fresh = "fresh.token.value"
	var sawStale, sawFresh bool

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == token.RefreshPath {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"token": %q}`, fresh)
			return
		}
		if r.Header.Get("Authorization") != token.Prefix+fresh {
			sawStale = true
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		sawFresh = true
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page == 1 {
			writeResults(w, pageOf(0, 2))
			return
		}
		writeResults(w, nil)
	}))
	defer srv.Close()

	cred := &token.Credential{Token: "JWT stale.token.value"}
	c := New(srv.URL, cred)

	got, err := fetchAllPages[testRecord](c, "/api/things/", nil,
		FetchOptions{Retries: 3, Backoff: time.Millisecond}, unwrapResults[testRecord])
	if err != nil {
		t.Fatalf("fetchAllPages: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d records, want 2", len(got))
	}
	if !sawStale || !sawFresh {
		t.Errorf("sawStale=%v sawFresh=%v, want both", sawStale, sawFresh)
	}
	if !cred.Refreshed {
		t.Error("credential not marked Refreshed")
	}
	if cred.Token != token.Prefix+fresh {
		t.Errorf("credential token = %q, want refreshed value", cred.Token)
	}
}

func TestFetchAllPagesSkipsExhaustedPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		switch page {
		case 1:
			writeResults(w, pageOf(0, 2))
		case 2:
			// Persistent server failure on this page only.
			w.WriteHeader(http.StatusBadGateway)
		case 3:
			writeResults(w, pageOf(2, 2))
		default:
			writeResults(w, nil)
		}
	}))
	defer srv.Close()

	got, err := fetchAllPages[testRecord](testClient(srv), "/api/things/", nil,
		FetchOptions{Retries: 2, Backoff: time.Millisecond, SkipPageOnExhaust: true},
		unwrapResults[testRecord])
	if err != nil {
		t.Fatalf("fetchAllPages: %v", err)
	}
	if len(got) != 4 {
		t.Errorf("got %d records, want 4 (page 2 skipped)", len(got))
	}
}

func TestFetchAllPagesExhaustionFailsWithPartialResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page == 1 {
			writeResults(w, pageOf(0, 3))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	got, err := fetchAllPages[testRecord](testClient(srv), "/api/things/", nil,
		FetchOptions{Retries: 1, Backoff: time.Millisecond}, unwrapResults[testRecord])
	if err == nil {
		t.Fatal("expected error after retry exhaustion")
	}
	if len(got) != 3 {
		t.Errorf("got %d partial records, want 3", len(got))
	}
}

func TestFetchAllPagesStopOnShortPage(t *testing.T) {
	var pagesServed int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pagesServed++
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page == 1 {
			writeResults(w, pageOf(0, 10))
			return
		}
		writeResults(w, pageOf(10, 4))
	}))
	defer srv.Close()

	got, err := fetchAllPages[testRecord](testClient(srv), "/api/things/", nil,
		FetchOptions{SizeParam: "page_size", PageSize: 10, StopOnShortPage: true},
		unwrapResults[testRecord])
	if err != nil {
		t.Fatalf("fetchAllPages: %v", err)
	}
	if len(got) != 14 {
		t.Errorf("got %d records, want 14", len(got))
	}
	if pagesServed != 2 {
		t.Errorf("served %d pages, want 2 (short page ends pagination)", pagesServed)
	}
}

func TestFetchAllPagesDelayAppliesAfterSkippedPage(t *testing.T) {
	firstSeen := make(map[int]time.Time)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if _, ok := firstSeen[page]; !ok {
			firstSeen[page] = time.Now()
		}
		switch page {
		case 1:
			writeResults(w, pageOf(0, 2))
		case 2:
			w.WriteHeader(http.StatusBadGateway)
		case 3:
			writeResults(w, pageOf(2, 2))
		default:
			writeResults(w, nil)
		}
	}))
	defer srv.Close()

	const delay = 40 * time.Millisecond
	got, err := fetchAllPages[testRecord](testClient(srv), "/api/things/", nil,
		FetchOptions{Retries: 1, Backoff: time.Millisecond, SkipPageOnExhaust: true, PageDelay: delay},
		unwrapResults[testRecord])
	if err != nil {
		t.Fatalf("fetchAllPages: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("got %d records, want 4", len(got))
	}

	// The inter-page rate limit holds even when the preceding page was
	// given up on.
	if gap := firstSeen[3].Sub(firstSeen[2]); gap < delay {
		t.Errorf("page 3 fetched %v after page 2, want at least %v", gap, delay)
	}
}

func TestUnwrapShapes(t *testing.T) {
	results, err := unwrapResults[testRecord]([]byte(`{"results": [{"id": 1}]}`))
	if err != nil || len(results) != 1 {
		t.Errorf("unwrapResults = %v, %v", results, err)
	}
	items, err := unwrapItems[testRecord]([]byte(`{"items": [{"id": 2}, {"id": 3}]}`))
	if err != nil || len(items) != 2 {
		t.Errorf("unwrapItems = %v, %v", items, err)
	}
}
