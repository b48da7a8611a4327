package postgres

import (
	"context"
	"fmt"

	"fxswap/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ObservationRepository serves the price feed from the price_observations table.
type ObservationRepository struct {
	pool *pgxpool.Pool
}

func (r *ObservationRepository) Name() string { return "postgres:price_observations" }

// FetchObservations returns every stored observation in insertion order.
func (r *ObservationRepository) FetchObservations(ctx context.Context) ([]domain.PriceObservation, error) {
	const q = `
		select currency, price, observed_at
		from price_observations
		order by id;
	`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query price observations: %w", err)
	}
	defer rows.Close()

	observations := make([]domain.PriceObservation, 0, 256)
	for rows.Next() {
		var obs domain.PriceObservation
		if err = rows.Scan(&obs.Currency, &obs.Price, &obs.Date); err != nil {
			return nil, fmt.Errorf("failed to scan price observation: %w", err)
		}
		observations = append(observations, obs)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating price observations: %w", err)
	}
	return observations, nil
}

func NewObservationRepository(pool *pgxpool.Pool) *ObservationRepository {
	return &ObservationRepository{pool: pool}
}
