package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lawnchairsociety/enemyforge/internal/creature"
	"github.com/lawnchairsociety/enemyforge/internal/logger"
	"github.com/lawnchairsociety/enemyforge/internal/rarity"
	"github.com/lawnchairsociety/enemyforge/internal/stats"
)

// ErrCreatureExists is returned when a creature ID is already stored.
var ErrCreatureExists = errors.New("creature already exists")

// ErrCreatureNotFound is returned when a creature lookup fails.
var ErrCreatureNotFound = errors.New("creature not found")

const creatureColumns = "creature_id, species_id, form, rarity, energy, strength, magic, stamina, speed, specialties, combination_level"

// SaveCreature adds a creature to a player's roster.
func (d *Database) SaveCreature(playerID int64, c *creature.Creature) error {
	return d.saveCreature(d.db, playerID, c)
}

func (d *Database) saveCreature(r runner, playerID int64, c *creature.Creature) error {
	if c == nil {
		return errors.New("creature cannot be nil")
	}
	if c.ID == "" || c.SpeciesID == "" {
		return errors.New("creature needs an id and species")
	}

	_, err := r.Exec(d.qb.Build(
		"INSERT INTO player_creatures (player_id, "+creatureColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"),
		playerID,
		c.ID,
		c.SpeciesID,
		c.Form,
		c.Rarity.String(),
		c.Stats.Get(stats.Energy),
		c.Stats.Get(stats.Strength),
		c.Stats.Get(stats.Magic),
		c.Stats.Get(stats.Stamina),
		c.Stats.Get(stats.Speed),
		joinSpecialties(c.Specialties),
		c.CombinationLevel,
	)
	if err != nil {
		if d.dialect.IsDuplicateKeyError(err) {
			return ErrCreatureExists
		}
		return fmt.Errorf("failed to save creature: %w", err)
	}
	return nil
}

// ImportRoster stores creatures under the named player, creating the player
// if needed. The import is all-or-nothing.
func (d *Database) ImportRoster(playerName string, creatures []*creature.Creature) (*Player, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	player, err := d.getPlayer(tx, "SELECT id, name, created_at FROM players WHERE name = ?", strings.TrimSpace(playerName))
	if errors.Is(err, ErrPlayerNotFound) {
		player, err = d.createPlayer(tx, playerName)
	}
	if err != nil {
		return nil, err
	}

	for _, c := range creatures {
		if err := d.saveCreature(tx, player.ID, c); err != nil {
			return nil, fmt.Errorf("failed to import %s: %w", describe(c), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit import: %w", err)
	}

	logger.Info("Roster imported", "player", player.Name, "creatures", len(creatures))
	return player, nil
}

// LoadRoster returns every creature a player owns, oldest first.
func (d *Database) LoadRoster(playerID int64) ([]*creature.Creature, error) {
	if _, err := d.GetPlayer(playerID); err != nil {
		return nil, err
	}

	rows, err := d.db.Query(d.qb.Build(
		"SELECT "+creatureColumns+" FROM player_creatures WHERE player_id = ? ORDER BY id"), playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	defer rows.Close()

	var roster []*creature.Creature
	for rows.Next() {
		c, err := scanCreature(rows)
		if err != nil {
			return nil, err
		}
		roster = append(roster, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	return roster, nil
}

// LoadRosterByName resolves the player by name then loads their roster.
func (d *Database) LoadRosterByName(name string) ([]*creature.Creature, error) {
	player, err := d.GetPlayerByName(name)
	if err != nil {
		return nil, err
	}
	return d.LoadRoster(player.ID)
}

// CountCreatures returns the size of a player's roster.
func (d *Database) CountCreatures(playerID int64) (int, error) {
	var n int
	err := d.db.QueryRow(d.qb.Build("SELECT COUNT(*) FROM player_creatures WHERE player_id = ?"), playerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count creatures: %w", err)
	}
	return n, nil
}

// DeleteCreature removes one creature by its ID.
func (d *Database) DeleteCreature(creatureID string) error {
	result, err := d.db.Exec(d.qb.Build("DELETE FROM player_creatures WHERE creature_id = ?"), creatureID)
	if err != nil {
		return fmt.Errorf("failed to delete creature: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrCreatureNotFound
	}
	return nil
}

func scanCreature(rows *sql.Rows) (*creature.Creature, error) {
	var (
		c           creature.Creature
		rarityName  string
		specialties string
		values      [stats.NumAttributes]int
	)
	err := rows.Scan(&c.ID, &c.SpeciesID, &c.Form, &rarityName,
		&values[stats.Energy], &values[stats.Strength], &values[stats.Magic],
		&values[stats.Stamina], &values[stats.Speed],
		&specialties, &c.CombinationLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to scan creature: %w", err)
	}

	r, ok := rarity.Parse(rarityName)
	if !ok {
		logger.Warning("Unknown stored rarity, using Common", "creature", c.ID, "rarity", rarityName)
	}
	c.Rarity = r
	c.Stats = stats.Block(values)
	c.Specialties = splitSpecialties(specialties)
	return &c, nil
}

func joinSpecialties(attrs []stats.Attribute) string {
	names := make([]string, len(attrs))
	for i, a := range attrs {
		names[i] = a.String()
	}
	return strings.Join(names, ",")
}

func splitSpecialties(s string) []stats.Attribute {
	if s == "" {
		return nil
	}
	var attrs []stats.Attribute
	for _, name := range strings.Split(s, ",") {
		if a, ok := stats.ParseAttribute(name); ok {
			attrs = append(attrs, a)
		}
	}
	return attrs
}

func describe(c *creature.Creature) string {
	if c == nil {
		return "nil creature"
	}
	return fmt.Sprintf("creature %q", c.ID)
}
