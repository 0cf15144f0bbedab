package service

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"dragondex/database"
	"dragondex/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCatalogUpstream serves a two-page catalog with five characters and
// counts the requests it receives.
func newCatalogUpstream(t *testing.T, requests *atomic.Int32) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") == "2" {
			fmt.Fprint(w, `{
				"items": [
					{"id": 4, "name": "Bulma", "race": "Human", "ki": "12"},
					{"id": 5, "name": "Freezer", "race": "Frieza Race", "ki": "530000"}
				],
				"links": {"next": ""}
			}`)
			return
		}
		fmt.Fprintf(w, `{
			"items": [
				{"id": 1, "name": "Goku", "race": "Saiyan", "ki": "60000000"},
				{"id": 2, "name": "Vegeta", "race": "Saiyan", "ki": "54000000"},
				{"id": 3, "name": "Raditz", "race": "Saiyan", "ki": "1500"}
			],
			"links": {"next": "%s?page=2&limit=10"}
		}`, srv.URL)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGetAllBootstrapsOnce(t *testing.T) {
	setupDB(t)

	var requests atomic.Int32
	srv := newCatalogUpstream(t, &requests)
	t.Setenv("DRAGONDEX_CATALOG_API", srv.URL)

	service := CharacterService{}

	characters, err := service.GetAll()
	require.NoError(t, err)
	assert.Len(t, characters, 5)
	assert.Equal(t, int32(2), requests.Load(), "expected one fetch per page")

	// Seeded now: another read must not touch the upstream again.
	characters, err = service.GetAll()
	require.NoError(t, err)
	assert.Len(t, characters, 5)
	assert.Equal(t, int32(2), requests.Load())
}

func TestImportCatalogUpsertsById(t *testing.T) {
	setupDB(t)

	var requests atomic.Int32
	srv := newCatalogUpstream(t, &requests)
	t.Setenv("DRAGONDEX_CATALOG_API", srv.URL)

	// A stale row left behind by an earlier partial import.
	require.NoError(t, database.GetDB().Create(&model.Character{Id: 2, Name: "Vegeta (old)"}).Error)

	service := CharacterService{}
	characters, err := service.GetAll()
	require.NoError(t, err)
	assert.Len(t, characters, 5)

	vegeta, err := service.GetByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Vegeta", vegeta.Name)
}

func TestGetAllFailedImportIsRetried(t *testing.T) {
	setupDB(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	t.Setenv("DRAGONDEX_CATALOG_API", srv.URL)

	service := CharacterService{}
	_, err := service.GetAll()
	require.Error(t, err)

	// The seeded marker must stay unset so the next read retries.
	seeded, err := service.settingService.IsCatalogSeeded()
	require.NoError(t, err)
	assert.False(t, seeded)

	var requests atomic.Int32
	good := newCatalogUpstream(t, &requests)
	t.Setenv("DRAGONDEX_CATALOG_API", good.URL)

	characters, err := service.GetAll()
	require.NoError(t, err)
	assert.Len(t, characters, 5)
}

func seedFixture(t *testing.T) {
	t.Helper()

	fixture := []model.Character{
		{Id: 1, Name: "Goku", Race: "Saiyan"},
		{Id: 2, Name: "Vegeta", Race: "Saiyan"},
		{Id: 3, Name: "Raditz", Race: "Saiyan"},
		{Id: 4, Name: "Bulma", Race: "Human"},
		{Id: 5, Name: "Freezer", Race: "Frieza Race"},
	}
	for i := range fixture {
		require.NoError(t, database.GetDB().Create(&fixture[i]).Error)
	}

	settings := SettingService{}
	require.NoError(t, settings.SetCatalogSeeded(true))
}

func names(characters []model.Character) []string {
	out := make([]string, 0, len(characters))
	for _, c := range characters {
		out = append(out, c.Name)
	}
	return out
}

func TestSearchByName(t *testing.T) {
	setupDB(t)
	seedFixture(t)

	service := CharacterService{}

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"substring matches one", "ve", []string{"Vegeta"}},
		{"case insensitive", "VE", []string{"Vegeta"}},
		{"substring matches several", "a", []string{"Vegeta", "Raditz", "Bulma"}},
		{"exact name", "Goku", []string{"Goku"}},
		{"empty query matches all", "", []string{"Goku", "Vegeta", "Raditz", "Bulma", "Freezer"}},
		{"no match", "cell", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.SearchByName(tt.query)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.expected, names(result))
		})
	}
}

func TestSearchByRace(t *testing.T) {
	setupDB(t)
	seedFixture(t)

	service := CharacterService{}

	result, err := service.SearchByRace("saiyan")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Goku", "Vegeta", "Raditz"}, names(result))

	result, err = service.SearchByRace("hum")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Bulma"}, names(result))
}

func TestGetByIDNotFound(t *testing.T) {
	setupDB(t)
	seedFixture(t)

	service := CharacterService{}

	character, err := service.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Goku", character.Name)

	_, err = service.GetByID(99)
	assert.ErrorIs(t, err, ErrCharacterNotFound)
}
