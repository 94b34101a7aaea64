package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/liminal/internal/catalog"
)

// RoomRepository stores authored room content.
type RoomRepository struct {
	db *pgxpool.Pool
}

// NewRoomRepository creates a RoomRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{db: db}
}

// Store inserts or updates rooms and, when prune is set, deletes every
// stored room whose slug is not among them. Both happen in one transaction.
// Each room's position is its index in rooms, which fixes catalog order on
// load.
//
// Postcondition: Either every change is committed and the number of pruned
// rows is returned, or nothing changes and an error is returned.
func (r *RoomRepository) Store(ctx context.Context, rooms []catalog.Room, prune bool) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := upsertRooms(ctx, tx, rooms); err != nil {
		return 0, err
	}

	var pruned int64
	if prune {
		keep := make([]string, len(rooms))
		for i, room := range rooms {
			keep[i] = room.Slug
		}
		tag, err := tx.Exec(ctx, `DELETE FROM rooms WHERE NOT (slug = ANY($1))`, keep)
		if err != nil {
			return 0, fmt.Errorf("pruning rooms: %w", err)
		}
		pruned = tag.RowsAffected()
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing rooms: %w", err)
	}
	return pruned, nil
}

func upsertRooms(ctx context.Context, tx pgx.Tx, rooms []catalog.Room) error {
	for i, room := range rooms {
		variants := room.Variants
		if variants == nil {
			variants = []catalog.Variant{}
		}
		exits := room.Exits
		if exits == nil {
			exits = []string{}
		}
		vjson, err := json.Marshal(variants)
		if err != nil {
			return fmt.Errorf("encoding variants for %q: %w", room.Slug, err)
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO rooms (slug, title, content, exits, variants, position, updated_at)
			VALUES ($1, $2, $3, $4, $5::jsonb, $6, NOW())
			ON CONFLICT (slug) DO UPDATE SET
				title      = EXCLUDED.title,
				content    = EXCLUDED.content,
				exits      = EXCLUDED.exits,
				variants   = EXCLUDED.variants,
				position   = EXCLUDED.position,
				updated_at = NOW()`,
			room.Slug, room.Title, room.Content, exits, string(vjson), i,
		)
		if err != nil {
			return fmt.Errorf("upserting room %q: %w", room.Slug, err)
		}
	}
	return nil
}

// LoadAll returns every stored room ordered by position.
//
// Postcondition: Returns a non-nil slice; may be empty.
func (r *RoomRepository) LoadAll(ctx context.Context) ([]catalog.Room, error) {
	rows, err := r.db.Query(ctx, `
		SELECT slug, title, content, exits, variants
		FROM rooms
		ORDER BY position, slug`)
	if err != nil {
		return nil, fmt.Errorf("querying rooms: %w", err)
	}

	rooms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (catalog.Room, error) {
		var (
			room  catalog.Room
			vjson []byte
		)
		if err := row.Scan(&room.Slug, &room.Title, &room.Content, &room.Exits, &vjson); err != nil {
			return catalog.Room{}, err
		}
		if err := json.Unmarshal(vjson, &room.Variants); err != nil {
			return catalog.Room{}, fmt.Errorf("decoding variants for %q: %w", room.Slug, err)
		}
		for _, v := range room.Variants {
			if !v.Tone.Valid() {
				return catalog.Room{}, fmt.Errorf("room %q: %w: %q", room.Slug, catalog.ErrInvalidTone, v.Tone)
			}
		}
		return room, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning rooms: %w", err)
	}
	if rooms == nil {
		rooms = []catalog.Room{}
	}
	return rooms, nil
}

// Count returns the number of stored rooms.
func (r *RoomRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM rooms`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting rooms: %w", err)
	}
	return n, nil
}
