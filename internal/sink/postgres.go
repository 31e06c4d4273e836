package sink

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vk/volsweep/internal/ctxlog"
	"github.com/vk/volsweep/internal/model"
)

const defaultPostgresTable = "sweep_results"

// postgresSink appends rows to a results table, one batch per skip mode.
type postgresSink struct {
	name  string
	runID string
	table string
	pool  *pgxpool.Pool
}

func newPostgres(ctx context.Context, name, runID string, s settings) (Sink, error) {
	dsn, err := s.required("postgres", "dsn")
	if err != nil {
		return nil, err
	}
	table := pgx.Identifier{s.get("table", defaultPostgresTable)}.Sanitize()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	p := &postgresSink{name: name, runID: runID, table: table, pool: pool}
	if err := p.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return p, nil
}

func (p *postgresSink) initSchema(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS `+p.table+` (
		id                 BIGSERIAL PRIMARY KEY,
		run_id             TEXT NOT NULL,
		image              TEXT NOT NULL,
		file               TEXT NOT NULL,
		skipmode           INTEGER NOT NULL,
		blocksize          INTEGER NOT NULL,
		occupancy          DOUBLE PRECISION NOT NULL,
		framerate          DOUBLE PRECISION NOT NULL,
		update_ms          DOUBLE PRECISION NOT NULL,
		imin               DOUBLE PRECISION NOT NULL,
		imax               DOUBLE PRECISION NOT NULL,
		gmin               DOUBLE PRECISION NOT NULL,
		gmax               DOUBLE PRECISION NOT NULL,
		reused             BOOLEAN NOT NULL DEFAULT FALSE,
		gradient_update_ms DOUBLE PRECISION,
		occupancy_count_ms DOUBLE PRECISION,
		created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	if err != nil {
		return fmt.Errorf("failed to create table %s: %w", p.table, err)
	}
	return nil
}

func (p *postgresSink) Name() string { return p.name }

func (p *postgresSink) Publish(ctx context.Context, table *model.Table) error {
	records := Records(p.runID, table)
	if len(records) == 0 {
		return nil
	}

	insert := `INSERT INTO ` + p.table + ` (run_id, image, file, skipmode, blocksize,
		occupancy, framerate, update_ms, imin, imax, gmin, gmax, reused,
		gradient_update_ms, occupancy_count_ms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	batch := &pgx.Batch{}
	for _, r := range records {
		batch.Queue(insert, r.RunID, r.Image, r.File, r.SkipMode, r.BlockSize,
			r.Occupancy, r.Framerate, r.Update, r.IMin, r.IMax, r.GMin, r.GMax, r.Reused,
			r.GradientUpdateMS, r.OccupancyCountMS)
	}

	br := p.pool.SendBatch(ctx, batch)
	for i := range records {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to insert row %d: %w", i, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to finish batch: %w", err)
	}

	ctxlog.FromContext(ctx).Debug("Rows inserted.", "sink", p.name, "table", p.table, "rows", len(records))
	return nil
}

func (p *postgresSink) Close() error {
	p.pool.Close()
	return nil
}
