package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/healthplus/healthplus/internal/model"
)

// PGStore keeps the document as a single JSONB row in Postgres. The
// contract is identical to FileStore: every Load reads the whole document,
// every Save rewrites it. Durability improves; the read-modify-write race
// between concurrent requests remains.
type PGStore struct {
	pool *pgxpool.Pool
}

func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// EnsureSchema creates the backing table if it is missing. Called once at
// startup, before the server accepts requests.
func (s *PGStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS store_document (
			id         smallint PRIMARY KEY,
			doc        jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("ensure store schema: %w", err)
	}
	return nil
}

func (s *PGStore) Load(ctx context.Context) (*model.Document, error) {
	var data []byte
	err := s.pool.QueryRow(ctx, `SELECT doc FROM store_document WHERE id = 1`).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		doc := SeedDocument()
		if err := s.Save(ctx, doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load store document: %w", err)
	}

	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse store document: %w", err)
	}
	doc.Normalize()
	return &doc, nil
}

func (s *PGStore) Save(ctx context.Context, doc *model.Document) error {
	doc.Normalize()
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode store document: %w", err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO store_document (id, doc, updated_at)
		VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
		data)
	if err != nil {
		return fmt.Errorf("save store document: %w", err)
	}
	return nil
}
