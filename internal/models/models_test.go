package models

import (
	"encoding/json"
	"testing"

	"swapi/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserJSON_OmitsPassword(t *testing.T) {
	u := User{ID: 1, Name: "Leia", LastName: "Organa", Email: "leia@alderaan.gov", Password: "hash", IsActive: true}
	b, err := json.Marshal(u)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.NotContains(t, m, "password")
	assert.ElementsMatch(t, []string{"id", "name", "last_name", "email", "is_active"}, keys(m))
}

func TestFavoriteJSON_NullReferences(t *testing.T) {
	f := NewFavorite(7, domain.KindCharacter, 3)
	f.ID = 1
	b, err := json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"user_id":7,"character_id":3,"planet_id":null,"vehicle_id":null}`, string(b))
}

func TestNewFavorite_OneReferenceColumn(t *testing.T) {
	for _, kind := range domain.ReferenceKinds {
		f := NewFavorite(2, kind, 11)
		assert.Equal(t, uint(2), f.UserID)

		cols := map[domain.ReferenceKind]*uint{
			domain.KindCharacter: f.CharacterID,
			domain.KindPlanet:    f.PlanetID,
			domain.KindVehicle:   f.VehicleID,
		}
		for k, p := range cols {
			if k == kind {
				require.NotNil(t, p, kind)
				assert.Equal(t, uint(11), *p)
				continue
			}
			assert.Nil(t, p, "%s column set on a %s favorite", k, kind)
		}
	}
}

func TestVehicleJSON_VehicleClass(t *testing.T) {
	v := Vehicle{ID: 4, Name: "Sand Crawler", Passengers: "30", VehicleClass: "wheeled"}
	b, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "wheeled", m["vehicle_class"])
	assert.Equal(t, "30", m["passengers"])
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
