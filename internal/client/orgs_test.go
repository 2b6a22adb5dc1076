package client

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"fusus-cli/pkg/models"
)

func TestMatchOrg(t *testing.T) {
	orgs := []models.Organization{
		{ID: 1, Name: "Fulton County Schools"},
		{ID: 2, Name: "Fulton County PD"},
	}
	if got := matchOrg(orgs, "fulton county"); got == nil || got.ID != 1 {
		t.Errorf("matchOrg = %+v, want first match (ID 1)", got)
	}
	if got := matchOrg(orgs, "Dekalb"); got != nil {
		t.Errorf("matchOrg = %+v, want nil", got)
	}
}

func TestResolveOrgPrefersSupportDirectory(t *testing.T) {
	supportSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/service/organizations/brief/" {
			t.Errorf("support path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("page_size") != "100" {
			t.Errorf("page_size = %q, want 100", r.URL.Query().Get("page_size"))
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"results": [{"id": 9, "name": "Fulton County PD"}]}`)
	}))
	defer supportSrv.Close()

	oneSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("fallback listing queried despite support hit")
	}))
	defer oneSrv.Close()

	org, err := ResolveOrg(testClient(supportSrv), testClient(oneSrv), "Fulton")
	if err != nil {
		t.Fatalf("ResolveOrg: %v", err)
	}
	if org == nil || org.ID != 9 {
		t.Errorf("org = %+v, want ID 9 from support directory", org)
	}
}

func TestResolveOrgFallsBack(t *testing.T) {
	oneSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/organizations/" {
			t.Errorf("fallback path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("pageSize") != "100" {
			t.Errorf("pageSize = %q, want 100", r.URL.Query().Get("pageSize"))
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"results": [{"id": 3, "name": "Smyrna PD"}]}`)
	}))
	defer oneSrv.Close()

	t.Run("nil support client", func(t *testing.T) {
		org, err := ResolveOrg(nil, testClient(oneSrv), "smyrna")
		if err != nil {
			t.Fatalf("ResolveOrg: %v", err)
		}
		if org == nil || org.ID != 3 {
			t.Errorf("org = %+v, want ID 3 from fallback", org)
		}
	})

	t.Run("support miss", func(t *testing.T) {
		supportSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"results": []}`)
		}))
		defer supportSrv.Close()

		org, err := ResolveOrg(testClient(supportSrv), testClient(oneSrv), "smyrna")
		if err != nil {
			t.Fatalf("ResolveOrg: %v", err)
		}
		if org == nil || org.ID != 3 {
			t.Errorf("org = %+v, want fallback result", org)
		}
	})

	t.Run("no match anywhere", func(t *testing.T) {
		org, err := ResolveOrg(nil, testClient(oneSrv), "Macon")
		if err != nil {
			t.Fatalf("ResolveOrg: %v", err)
		}
		if org != nil {
			t.Errorf("org = %+v, want nil", org)
		}
	})
}
