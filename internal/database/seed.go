package database

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"swapi/internal/logging"
	"swapi/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed fixtures/starwars.yaml
var defaultFixtures []byte

// Fixtures is the on-disk shape of a seed file. Rows with an id are upserted
// on that id, so a file can be applied repeatedly.
type Fixtures struct {
	Users      []UserFixture      `yaml:"users"`
	Characters []CharacterFixture `yaml:"characters"`
	Planets    []PlanetFixture    `yaml:"planets"`
	Vehicles   []VehicleFixture   `yaml:"vehicles"`
}

type UserFixture struct {
	ID       uint   `yaml:"id"`
	Name     string `yaml:"name"`
	LastName string `yaml:"last_name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"` // plaintext, hashed before insert
	IsActive bool   `yaml:"is_active"`
}

type CharacterFixture struct {
	ID        uint   `yaml:"id"`
	BirthYear string `yaml:"birth_year"`
	EyeColor  string `yaml:"eye_color"`
	Gender    string `yaml:"gender"`
	HairColor string `yaml:"hair_color"`
	Height    string `yaml:"height"`
	Mass      string `yaml:"mass"`
	Name      string `yaml:"name"`
	SkinColor string `yaml:"skin_color"`
}

type PlanetFixture struct {
	ID             uint   `yaml:"id"`
	Climate        string `yaml:"climate"`
	Diameter       string `yaml:"diameter"`
	Gravity        string `yaml:"gravity"`
	Name           string `yaml:"name"`
	OrbitalPeriod  string `yaml:"orbital_period"`
	Population     string `yaml:"population"`
	RotationPeriod string `yaml:"rotation_period"`
	SurfaceWater   string `yaml:"surface_water"`
	Terrain        string `yaml:"terrain"`
}

type VehicleFixture struct {
	ID                   uint   `yaml:"id"`
	CargoCapacity        string `yaml:"cargo_capacity"`
	Consumables          string `yaml:"consumables"`
	CostInCredits        string `yaml:"cost_in_credits"`
	Crew                 string `yaml:"crew"`
	Length               string `yaml:"length"`
	Manufacturer         string `yaml:"manufacturer"`
	MaxAtmospheringSpeed string `yaml:"max_atmosphering_speed"`
	Model                string `yaml:"model"`
	Name                 string `yaml:"name"`
	Passengers           string `yaml:"passengers"`
	VehicleClass         string `yaml:"vehicle_class"`
}

// SeedResult counts rows written per table.
type SeedResult struct {
	Users, Characters, Planets, Vehicles int
}

// ParseFixtures decodes a YAML seed file, rejecting unknown keys.
func ParseFixtures(r io.Reader) (*Fixtures, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f Fixtures
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &f, nil
}

// LoadFixtures reads fixtures from path, or the bundled catalogue when path
// is empty.
func LoadFixtures(path string) (*Fixtures, error) {
	if path == "" {
		return ParseFixtures(bytes.NewReader(defaultFixtures))
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return ParseFixtures(fh)
}

// Seed writes fixtures in a single transaction.
func Seed(db *gorm.DB, f *Fixtures) (SeedResult, error) {
	var res SeedResult
	users, err := hashUsers(f.Users)
	if err != nil {
		return res, err
	}
	characters := make([]models.Character, len(f.Characters))
	for i, c := range f.Characters {
		characters[i] = models.Character(c)
	}
	planets := make([]models.Planet, len(f.Planets))
	for i, p := range f.Planets {
		planets[i] = models.Planet(p)
	}
	vehicles := make([]models.Vehicle, len(f.Vehicles))
	for i, v := range f.Vehicles {
		vehicles[i] = models.Vehicle(v)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := upsert(tx, users); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		if err := upsert(tx, characters); err != nil {
			return fmt.Errorf("seed characters: %w", err)
		}
		if err := upsert(tx, planets); err != nil {
			return fmt.Errorf("seed planets: %w", err)
		}
		if err := upsert(tx, vehicles); err != nil {
			return fmt.Errorf("seed vehicles: %w", err)
		}
		return nil
	})
	if err != nil {
		return res, err
	}
	res = SeedResult{Users: len(users), Characters: len(characters), Planets: len(planets), Vehicles: len(vehicles)}
	logging.With("seed").Info().
		Int("users", res.Users).
		Int("characters", res.Characters).
		Int("planets", res.Planets).
		Int("vehicles", res.Vehicles).
		Msg("fixtures applied")
	return res, nil
}

func upsert[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rows).Error
}

func hashUsers(in []UserFixture) ([]models.User, error) {
	out := make([]models.User, len(in))
	for i, u := range in {
		if u.Email == "" {
			return nil, fmt.Errorf("user fixture %d: email is required", i)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", u.Email, err)
		}
		out[i] = models.User{
			ID:       u.ID,
			Name:     u.Name,
			LastName: u.LastName,
			Email:    u.Email,
			Password: string(hash),
			IsActive: u.IsActive,
		}
	}
	return out, nil
}
