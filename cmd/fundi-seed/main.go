// fundi-seed loads a small demo dataset into postgres: reference values,
// fundis, jobs, one user with a session token, and a few payments.
// Intended for local development against fundi-api
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fundi/internal/platform/config"
	"fundi/internal/platform/logger"
	"fundi/internal/platform/store"
)

func main() {
	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	l := logger.Get()

	st, err := store.Open(
		context.Background(),
		store.Config{
			PG: store.PGConfig{
				Enabled:  true,
				URL:      pgCfg.MustString("DBURL"),
				MaxConns: int32(pgCfg.MayInt("MAX_CONNS", 2)),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seed(ctx, st.PG); err != nil {
		l.Panic().Err(err).Msg("seed failed")
	}
	l.Info().Msg("seed complete")
}

func seed(ctx context.Context, db store.TxRunner) error {
	return db.Tx(ctx, func(q store.RowQuerier) error {
		if err := seedRefs(ctx, q); err != nil {
			return err
		}
		if err := seedFundis(ctx, q); err != nil {
			return err
		}
		jobIDs, err := seedJobs(ctx, q)
		if err != nil {
			return err
		}
		return seedUserAndPayments(ctx, q, jobIDs)
	})
}

func seedRefs(ctx context.Context, q store.RowQuerier) error {
	kinds := map[string][]string{
		"category": {"Plumbing", "Electrical", "Carpentry", "Painting", "Masonry", "Roofing"},
		"skill":    {"pipe fitting", "wiring", "furniture", "tiling", "welding", "drywall"},
		"location": {"Nairobi", "Mombasa", "Kisumu", "Nakuru", "Eldoret"},
	}
	for kind, values := range kinds {
		for i, v := range values {
			_, err := q.Exec(ctx, `
INSERT INTO ref_values (kind, value, position) VALUES ($1, $2, $3)
ON CONFLICT (kind, value) DO NOTHING`, kind, v, i)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func seedFundis(ctx context.Context, q store.RowQuerier) error {
	type row struct {
		name, location, category string
		skills                   []string
		rating                   float64
		jobs                     int
		verified                 bool
	}
	rows := []row{
		{"Joseph Mwangi", "Nairobi", "Plumbing", []string{"pipe fitting", "tiling"}, 4.8, 120, true},
		{"Grace Wanjiru", "Nairobi", "Electrical", []string{"wiring"}, 4.6, 87, true},
		{"Peter Otieno", "Kisumu", "Carpentry", []string{"furniture"}, 4.2, 45, false},
		{"Amina Hassan", "Mombasa", "Painting", []string{"drywall"}, 4.9, 210, true},
		{"David Kiprop", "Eldoret", "Masonry", []string{"welding", "tiling"}, 3.9, 30, false},
	}
	for _, r := range rows {
		_, err := q.Exec(ctx, `
INSERT INTO fundis (id, name, location, category, skills, rating, jobs_completed, verified, bio, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())`,
			uuid.NewString(), r.name, r.location, r.category, r.skills, r.rating, r.jobs, r.verified,
			fmt.Sprintf("%s based in %s", r.category, r.location))
		if err != nil {
			return err
		}
	}
	return nil
}

func seedJobs(ctx context.Context, q store.RowQuerier) ([]string, error) {
	type row struct {
		title, category, location string
		budgetMin, budgetMax      int64
		status                    string
		deadlineDays              int
	}
	rows := []row{
		{"Fix leaking kitchen sink", "Plumbing", "Nairobi", 2000, 5000, "open", 7},
		{"Rewire 3-bedroom house", "Electrical", "Nakuru", 30000, 60000, "open", 30},
		{"Build wardrobe", "Carpentry", "Kisumu", 15000, 25000, "assigned", 14},
		{"Paint apartment exterior", "Painting", "Mombasa", 40000, 80000, "open", 21},
	}
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		id := uuid.NewString()
		_, err := q.Exec(ctx, `
INSERT INTO jobs (id, title, description, category, location, budget_min, budget_max, budget_currency, status, deadline, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, 'KES', $8, now() + ($9 || ' days')::interval, now())`,
			id, r.title, r.title, r.category, r.location, r.budgetMin, r.budgetMax, r.status, r.deadlineDays)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func seedUserAndPayments(ctx context.Context, q store.RowQuerier, jobIDs []string) error {
	userID := uuid.NewString()
	if _, err := q.Exec(ctx, `
INSERT INTO users (id, name, created_at) VALUES ($1, 'Demo User', now())`, userID); err != nil {
		return err
	}

	// fixed token so local clients can log in without a signup flow
	const token = "demo-token"
	if _, err := q.Exec(ctx, `
INSERT INTO sessions (token, user_id, expires_at) VALUES ($1, $2, now() + interval '30 days')
ON CONFLICT (token) DO UPDATE SET user_id = $2, expires_at = now() + interval '30 days'`,
		token, userID); err != nil {
		return err
	}

	methods := []string{"mpesa", "card"}
	for i, jobID := range jobIDs {
		if i >= 2 {
			break
		}
		_, err := q.Exec(ctx, `
INSERT INTO payments (id, user_id, job_id, amount, currency, method, status, created_at)
VALUES ($1, $2, $3, $4, 'KES', $5, 'completed', now())`,
			uuid.NewString(), userID, jobID, int64(3500*(i+1)), methods[i%len(methods)])
		if err != nil {
			return err
		}
	}
	fmt.Println("demo bearer token:", token)
	return nil
}
