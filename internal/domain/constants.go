package domain

// ReferenceKind names the table a favorite points into. The values double as
// the path segment under /favorite/.
type ReferenceKind string

const (
	KindCharacter ReferenceKind = "people"
	KindPlanet    ReferenceKind = "planet"
	KindVehicle   ReferenceKind = "vehicle"
)

// ReferenceKinds lists every kind a favorite can reference.
var ReferenceKinds = []ReferenceKind{KindCharacter, KindPlanet, KindVehicle}

func (k ReferenceKind) Valid() bool {
	switch k {
	case KindCharacter, KindPlanet, KindVehicle:
		return true
	}
	return false
}

// Column is the favorites column holding the referenced id.
func (k ReferenceKind) Column() string {
	switch k {
	case KindCharacter:
		return "character_id"
	case KindPlanet:
		return "planet_id"
	case KindVehicle:
		return "vehicle_id"
	}
	return ""
}

// LegacyField is the body field older clients send the user id under when
// deleting a favorite (people_id, planet_id, vehicle_id).
func (k ReferenceKind) LegacyField() string {
	if !k.Valid() {
		return ""
	}
	return string(k) + "_id"
}

// Noun is used in human-readable messages.
func (k ReferenceKind) Noun() string {
	switch k {
	case KindCharacter:
		return "character"
	case KindPlanet:
		return "planet"
	case KindVehicle:
		return "vehicle"
	}
	return "entity"
}
