// Package seeder writes the fixture table into the document store, one
// document at a time, in a fixed order: stations (each followed by its
// chargers), users, then transactions.
package seeder

import (
	"context"
	"fmt"

	"evseed/internal/fixture"
	"evseed/internal/model"
	"evseed/internal/repository"

	"github.com/rs/zerolog"
)

// Seeder populates the EV charging collections from a fixture set.
type Seeder struct {
	store    repository.DocumentStore
	fixtures *fixture.Set
	logger   zerolog.Logger
}

// New creates a Seeder writing fixtures into store.
func New(store repository.DocumentStore, fixtures *fixture.Set, logger zerolog.Logger) *Seeder {
	return &Seeder{store: store, fixtures: fixtures, logger: logger}
}

// Run performs the whole seeding sequence. The first failing insert stops
// the run; documents written before it stay in the store and are listed in
// the returned Result together with the error.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	res := &Result{}
	s.logger.Info().Msg("Setting up Firestore collections...")

	if err := s.seedStations(ctx, res); err != nil {
		return res, err
	}
	if err := s.seedUsers(ctx, res); err != nil {
		return res, err
	}
	if err := s.seedTransactions(ctx, res); err != nil {
		return res, err
	}

	s.logger.Info().Int("documents", res.Total()).Msg("Firestore collections setup completed successfully!")
	return res, nil
}

func (s *Seeder) seedStations(ctx context.Context, res *Result) error {
	return insertAll(ctx, s.store, model.CollectionStations, s.fixtures.Stations,
		func(station model.Station, wr *model.WriteResult) error {
			res.add(wr)
			s.logger.Info().Str("station_id", wr.ID).Msgf("Created station: %s with ID: %s", station.Name, wr.ID)

			chargers := s.fixtures.ChargersFor(wr.ID, station)
			err := insertAll(ctx, s.store, model.CollectionChargers, chargers,
				func(_ model.Charger, cwr *model.WriteResult) error {
					res.add(cwr)
					return nil
				})
			if err != nil {
				return fmt.Errorf("create chargers for station %q: %w", station.Name, err)
			}
			s.logger.Info().Msgf("Created %d chargers for station: %s", len(chargers), station.Name)
			return nil
		})
}

func (s *Seeder) seedUsers(ctx context.Context, res *Result) error {
	return insertAll(ctx, s.store, model.CollectionUsers, s.fixtures.Users,
		func(u model.User, wr *model.WriteResult) error {
			res.add(wr)
			s.logger.Info().Str("user_id", wr.ID).Msgf("Created user: %s %s", u.FirstName, u.LastName)
			return nil
		})
}

func (s *Seeder) seedTransactions(ctx context.Context, res *Result) error {
	return insertAll(ctx, s.store, model.CollectionTransactions, s.fixtures.Transactions,
		func(tx model.Transaction, wr *model.WriteResult) error {
			res.add(wr)
			s.logger.Info().Str("transaction_id", wr.ID).Msgf("Created transaction: %s", tx.Description)
			return nil
		})
}

// insertAll creates records in collection one by one, in order, calling
// onCreated after each successful write. It stops at the first error from
// the store or from onCreated.
func insertAll[T any](ctx context.Context, store repository.DocumentStore, collection string, records []T, onCreated func(T, *model.WriteResult) error) error {
	for i, rec := range records {
		wr, err := store.Create(ctx, collection, rec)
		if err != nil {
			return fmt.Errorf("insert %s[%d]: %w", collection, i, err)
		}
		if onCreated == nil {
			continue
		}
		if err := onCreated(rec, wr); err != nil {
			return err
		}
	}
	return nil
}
