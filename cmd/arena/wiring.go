package main

import (
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/Kyblue11/Pokemon-DSA/internal/catalogue"
	"github.com/Kyblue11/Pokemon-DSA/internal/entities"
	"github.com/Kyblue11/Pokemon-DSA/internal/errors"
	"github.com/Kyblue11/Pokemon-DSA/internal/pkg/clock"
	"github.com/Kyblue11/Pokemon-DSA/internal/redis"
	"github.com/Kyblue11/Pokemon-DSA/internal/repositories/standings"
	"github.com/Kyblue11/Pokemon-DSA/internal/typechart"
)

// loadChart returns the embedded type chart unless a CSV path was given
func loadChart(path string) (*typechart.Chart, error) {
	if path == "" {
		return typechart.Default(), nil
	}
	return typechart.Load(path)
}

// loadCatalogue returns the embedded species catalogue unless a YAML path
// was given
func loadCatalogue(path string) (*catalogue.Catalogue, error) {
	if path == "" {
		return catalogue.Default(), nil
	}
	return catalogue.Load(path)
}

// buildTeam resolves a team spec: a comma-separated species list, or empty
// for a random pick of the given size
func buildTeam(cat *catalogue.Catalogue, spec string, size int) ([]*entities.Pokemon, error) {
	picker, err := catalogue.NewPicker(&catalogue.PickerConfig{
		Catalogue: cat,
		Roller:    dice.DefaultRoller,
	})
	if err != nil {
		return nil, err
	}

	if spec == "" {
		return picker.PickRandom(size)
	}

	names := strings.Split(spec, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}
	return picker.PickByName(names)
}

// newStandingsRepo wires a Redis-backed repository when an endpoint was
// given, an in-memory one otherwise
func newStandingsRepo(redisAddr string) (standings.Repository, error) {
	if redisAddr == "" {
		return standings.NewMemoryRepository(&standings.MemoryConfig{
			Clock: clock.New(),
		})
	}

	client, err := redis.NewClient(redisAddr, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to redis")
	}

	return standings.NewRedisRepository(&standings.Config{
		Client: client,
		Clock:  clock.New(),
	})
}
