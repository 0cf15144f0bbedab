package dragonapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForEachPageFollowsNextLinks(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("page") {
		case "3":
			fmt.Fprint(w, `{"items": [{"id": 5, "name": "Freezer"}], "links": {"next": ""}}`)
		case "2":
			fmt.Fprintf(w, `{"items": [{"id": 3, "name": "Raditz"}, {"id": 4, "name": "Bulma"}], "links": {"next": "%s?page=3&limit=10"}}`, srv.URL)
		default:
			assert.Equal(t, "10", r.URL.Query().Get("limit"))
			fmt.Fprintf(w, `{"items": [{"id": 1, "name": "Goku", "ki": "60000000", "race": "Saiyan"}, {"id": 2, "name": "Vegeta"}], "links": {"next": "%s?page=2&limit=10"}}`, srv.URL)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	var all []Character
	pages := 0
	err := client.ForEachPage(context.Background(), func(items []Character) error {
		pages++
		all = append(all, items...)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 3, pages)
	require.Len(t, all, 5)
	assert.Equal(t, 1, all[0].Id)
	assert.Equal(t, "Goku", all[0].Name)
	assert.Equal(t, "60000000", all[0].Ki)
	assert.Equal(t, "Saiyan", all[0].Race)
	assert.Equal(t, "Freezer", all[4].Name)
}

func TestForEachPageLastPageWithoutLinks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items": [{"id": 1, "name": "Goku"}]}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	pages := 0
	err := client.ForEachPage(context.Background(), func(items []Character) error {
		pages++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
}

func TestForEachPageMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items": "not-an-array"}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	err := client.ForEachPage(context.Background(), func(items []Character) error {
		t.Fatal("callback must not run for a malformed page")
		return nil
	})
	assert.Error(t, err)
}

func TestForEachPageUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	err := client.ForEachPage(context.Background(), func(items []Character) error {
		return nil
	})
	assert.ErrorContains(t, err, "unexpected status 500")
}

func TestForEachPageCallbackErrorAborts(t *testing.T) {
	requests := 0
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		fmt.Fprintf(w, `{"items": [{"id": 1, "name": "Goku"}], "links": {"next": "%s?page=2"}}`, srv.URL)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	wantErr := fmt.Errorf("persist failed")
	err := client.ForEachPage(context.Background(), func(items []Character) error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, requests)
}
