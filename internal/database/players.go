package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrPlayerNotFound is returned when a player lookup fails.
var ErrPlayerNotFound = errors.New("player not found")

// ErrPlayerExists is returned when a player name is already taken.
var ErrPlayerExists = errors.New("player already exists")

// Player owns a roster of creatures.
type Player struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// runner is satisfied by both *sql.DB and *sql.Tx.
type runner interface {
	Exec(query string, args ...any) (sql.Result, error)
	QueryRow(query string, args ...any) *sql.Row
}

// CreatePlayer registers a new player. Names are unique without regard to
// case.
func (d *Database) CreatePlayer(name string) (*Player, error) {
	return d.createPlayer(d.db, name)
}

func (d *Database) createPlayer(r runner, name string) (*Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("player name cannot be empty")
	}

	id, err := d.insert(r, "INSERT INTO players (name) VALUES (?)", name)
	if err != nil {
		if d.dialect.IsDuplicateKeyError(err) {
			return nil, ErrPlayerExists
		}
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return &Player{ID: id, Name: name, CreatedAt: time.Now()}, nil
}

// GetPlayerByName looks a player up by name, ignoring case.
func (d *Database) GetPlayerByName(name string) (*Player, error) {
	return d.getPlayer(d.db, "SELECT id, name, created_at FROM players WHERE name = ?", strings.TrimSpace(name))
}

// GetPlayer looks a player up by ID.
func (d *Database) GetPlayer(id int64) (*Player, error) {
	return d.getPlayer(d.db, "SELECT id, name, created_at FROM players WHERE id = ?", id)
}

func (d *Database) getPlayer(r runner, query string, arg any) (*Player, error) {
	var p Player
	var created sql.NullTime

	err := r.QueryRow(d.qb.Build(query), arg).Scan(&p.ID, &p.Name, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	if created.Valid {
		p.CreatedAt = created.Time
	}
	return &p, nil
}

// ListPlayers returns every player ordered by name.
func (d *Database) ListPlayers() ([]*Player, error) {
	rows, err := d.db.Query("SELECT id, name, created_at FROM players ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	var players []*Player
	for rows.Next() {
		var p Player
		var created sql.NullTime
		if err := rows.Scan(&p.ID, &p.Name, &created); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		if created.Valid {
			p.CreatedAt = created.Time
		}
		players = append(players, &p)
	}
	return players, rows.Err()
}

// DeletePlayer removes a player and, by cascade, their roster.
func (d *Database) DeletePlayer(id int64) error {
	result, err := d.db.Exec(d.qb.Build("DELETE FROM players WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

// insert runs an INSERT and returns the generated id.
func (d *Database) insert(r runner, query string, args ...any) (int64, error) {
	if d.dialect.SupportsLastInsertID() {
		result, err := r.Exec(d.qb.Build(query), args...)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	}

	var id int64
	err := r.QueryRow(d.qb.BuildWithReturning(query, "id"), args...).Scan(&id)
	return id, err
}
