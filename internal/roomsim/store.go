// Package roomsim is a local stand-in for the remote breakfast entitlement
// service, backed by SQLite.
package roomsim

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/nordicsun/gooodmorning/internal/checkin"
	"github.com/nordicsun/gooodmorning/internal/db"
)

var ErrRoomNotFound = errors.New("room not found")

// Room is one row of the simulator's room table.
type Room struct {
	Number            string `yaml:"number" validate:"required"`
	BreakfastIncluded bool   `yaml:"breakfast_included"`
	NumPeople         int    `yaml:"num_people" validate:"min=0"`
	Consumed          int    `yaml:"consumed" validate:"min=0"`
}

func (r Room) Entitlement() *checkin.Entitlement {
	return &checkin.Entitlement{
		BreakfastIncluded: r.BreakfastIncluded,
		NumPeople:         r.NumPeople,
		Consumed:          r.Consumed,
	}
}

type Store struct {
	database *db.DB
}

func NewStore(database *db.DB) *Store {
	return &Store{database: database}
}

// NormalizeRoomNumber is the lookup key for a room: trimmed and upper-cased.
func NormalizeRoomNumber(number string) string {
	return strings.ToUpper(strings.TrimSpace(number))
}

func (s *Store) GetRoom(ctx context.Context, number string) (Room, error) {
	return getRoom(ctx, s.database.Queries, number)
}

func (s *Store) UpsertRoom(ctx context.Context, room Room) error {
	return upsertRoom(ctx, s.database.Queries, room)
}

// Seed upserts rooms in a single transaction.
func (s *Store) Seed(ctx context.Context, rooms []Room) error {
	return s.database.RunInTx(ctx, func(tx *db.DB) error {
		for _, room := range rooms {
			if err := upsertRoom(ctx, tx.Queries, room); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) CountRooms(ctx context.Context) (int, error) {
	var count int
	if err := s.database.Queries.QueryRowContext(ctx, `SELECT COUNT(*) FROM rooms`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count rooms: %w", err)
	}
	return count, nil
}

func getRoom(ctx context.Context, q db.Querier, number string) (Room, error) {
	var room Room
	err := q.QueryRowContext(ctx, `
		SELECT room_number, breakfast_included, num_people, consumed
		FROM rooms
		WHERE room_number = ?`,
		NormalizeRoomNumber(number),
	).Scan(&room.Number, &room.BreakfastIncluded, &room.NumPeople, &room.Consumed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Room{}, ErrRoomNotFound
		}
		return Room{}, fmt.Errorf("get room %q: %w", number, err)
	}
	return room, nil
}

func upsertRoom(ctx context.Context, q db.Querier, room Room) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO rooms (room_number, breakfast_included, num_people, consumed)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (room_number) DO UPDATE SET
			breakfast_included = excluded.breakfast_included,
			num_people = excluded.num_people,
			consumed = excluded.consumed,
			updated_at = CURRENT_TIMESTAMP`,
		NormalizeRoomNumber(room.Number),
		room.BreakfastIncluded,
		room.NumPeople,
		room.Consumed,
	)
	if err != nil {
		return fmt.Errorf("upsert room %q: %w", room.Number, err)
	}
	return nil
}
