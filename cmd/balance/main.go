// balance is the enemyforge command-line tool for generating enemy
// loadouts and checking difficulty balance.
//
// Usage:
//
//	balance [command] [options]
//
// Commands:
//
//	loadout  - Generate a complete enemy loadout for a tier
//	rating   - Rate a player roster against one or every tier
//	tips     - Print the flavor tips for a tier
//	sweep    - Monte Carlo sweep of generated loadouts per tier
//	import   - Store a roster YAML file in the roster database
//	export   - Write a stored roster back out as YAML
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/enemyforge/internal/balance"
	"github.com/lawnchairsociety/enemyforge/internal/config"
	"github.com/lawnchairsociety/enemyforge/internal/creature"
	"github.com/lawnchairsociety/enemyforge/internal/database"
	"github.com/lawnchairsociety/enemyforge/internal/difficulty"
	"github.com/lawnchairsociety/enemyforge/internal/items"
	"github.com/lawnchairsociety/enemyforge/internal/loadout"
	"github.com/lawnchairsociety/enemyforge/internal/logger"
	"github.com/lawnchairsociety/enemyforge/internal/rarity"
	"github.com/lawnchairsociety/enemyforge/internal/stats"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "loadout":
		err = runLoadout(os.Args[2:])
	case "rating":
		err = runRating(os.Args[2:])
	case "tips":
		err = runTips(os.Args[2:])
	case "sweep":
		err = runSweep(os.Args[2:])
	case "import":
		err = runImport(os.Args[2:])
	case "export":
		err = runExport(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	logger.Close()
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func printUsage() {
	fmt.Println(`enemyforge balance tool

Usage: balance <command> [options]

Commands:
  loadout   Generate a complete enemy loadout for a tier
  rating    Rate a player roster against one or every tier
  tips      Print the flavor tips for a tier
  sweep     Monte Carlo sweep of generated loadouts per tier
  import    Store a roster YAML file in the roster database
  export    Write a stored roster back out as YAML

Examples:
  balance loadout -tier=hard -roster=data/roster.yaml
  balance rating -player=ash
  balance tips -tier=expert
  balance sweep -iterations=2000
  balance import -roster=data/roster.yaml
  balance export -player=ash > ash.yaml

Use "balance <command> -h" for more information about a command.`)
}

// app holds everything a command needs after configuration is loaded.
type app struct {
	cfg      *config.AppConfig
	profiles *difficulty.Catalog
	species  *creature.Catalog
	dbConfig database.Config
}

// commonFlags registers the flags every command shares.
type commonFlags struct {
	configPath *string
	seed       *int64
	dbPath     *string
	logLevel   *string
}

func registerCommon(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		configPath: fs.String("config", "data/enemyforge.yaml", "Path to config YAML file (also holds the logging section)"),
		seed:       fs.Int64("seed", 0, "Random seed (overrides config; 0 keeps the configured seed)"),
		dbPath:     fs.String("db", "", "SQLite roster database path (overrides config)"),
		logLevel:   fs.String("log-level", "", "Log level (DEBUG, INFO, WARNING, ERROR)"),
	}
}

func (f commonFlags) load() (*app, error) {
	logConfig, err := logger.LoadConfig(*f.configPath)
	if err != nil {
		return nil, err
	}
	if *f.logLevel != "" {
		logConfig.Level = *f.logLevel
	}
	if err := logger.Initialize(logConfig); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	cfg, err := config.LoadConfig(*f.configPath)
	if err != nil {
		return nil, err
	}
	if *f.seed != 0 {
		cfg.Generator.Seed = *f.seed
	}
	if *f.dbPath != "" {
		cfg.Database.SQLitePath = *f.dbPath
	}

	a := &app{
		cfg:      cfg,
		profiles: difficulty.DefaultCatalog(),
		species:  creature.DefaultCatalog(),
		dbConfig: cfg.Database,
	}

	if path := cfg.Generator.DifficultyFile; path != "" {
		if a.profiles, err = difficulty.LoadCatalogFromYAML(path); err != nil {
			return nil, err
		}
		logger.Info("Difficulty overrides loaded", "path", path)
	}
	if path := cfg.Generator.SpeciesFile; path != "" {
		if a.species, err = creature.LoadCatalogFromYAML(path); err != nil {
			return nil, err
		}
		logger.Info("Species loaded", "path", path, "count", a.species.Count())
	}

	return a, nil
}

func (a *app) assembler() *loadout.Assembler {
	rng := a.cfg.NewRand()
	return loadout.NewAssembler(
		creature.NewGenerator(rng, a.profiles, a.species, creature.DefaultFactory{}),
		items.NewGenerator(rng, a.profiles),
		a.profiles,
	)
}

func (a *app) tier(name string) difficulty.Tier {
	if name == "" {
		return a.cfg.Tier()
	}
	return difficulty.ParseTier(name)
}

// roster reads creatures from a YAML file when one is given, otherwise from
// the roster database for the named player.
func (a *app) roster(rosterFile, player string) ([]*creature.Creature, error) {
	if rosterFile != "" {
		_, creatures, err := creature.LoadRosterFromYAML(rosterFile)
		return creatures, err
	}
	if player == "" {
		return nil, nil
	}

	db, err := database.OpenWithConfig(a.dbConfig)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return db.LoadRosterByName(player)
}

func runLoadout(args []string) error {
	fs := flag.NewFlagSet("loadout", flag.ExitOnError)
	common := registerCommon(fs)
	tierName := fs.String("tier", "", "Difficulty tier: easy, medium, hard, expert")
	count := fs.Int("count", 0, "Creatures to generate (0 uses the tier deck size)")
	rosterFile := fs.String("roster", "", "Player roster YAML used for species")
	player := fs.String("player", "", "Player whose stored roster supplies species")
	fs.Parse(args)

	a, err := common.load()
	if err != nil {
		return err
	}
	roster, err := a.roster(*rosterFile, *player)
	if err != nil {
		return err
	}

	tier := a.tier(*tierName)
	asm := a.assembler()
	n := *count
	if n <= 0 {
		n = asm.Profile(tier).DeckSize
	}
	l := asm.Generate(tier, n, roster)

	fmt.Printf("=== Enemy Loadout (%s) ===\n", tier)
	fmt.Println()
	fmt.Printf("Profile: x%.1f stats, forms %d-%d, hand %d, deck %d, field %d, AI level %d\n",
		l.Profile.StatsMultiplier, l.Profile.CreatureLevel.Min, l.Profile.CreatureLevel.Max,
		l.Profile.InitialHandSize, l.Profile.DeckSize, l.Profile.MaxFieldSize, l.Profile.AILevel)
	fmt.Println()

	fmt.Println("Species          | Form | Rarity    | NRG | STR | MAG | STA | SPD | Combo | Specialties")
	fmt.Println("-----------------+------+-----------+-----+-----+-----+-----+-----+-------+------------")
	for _, c := range l.Creatures {
		specialties := make([]string, len(c.Specialties))
		for i, s := range c.Specialties {
			specialties[i] = s.String()
		}
		fmt.Printf("%-16s | %4d | %-9s | %3d | %3d | %3d | %3d | %3d | %5d | %s\n",
			c.SpeciesID, c.Form, c.Rarity,
			c.Stats.Get(stats.Energy), c.Stats.Get(stats.Strength), c.Stats.Get(stats.Magic),
			c.Stats.Get(stats.Stamina), c.Stats.Get(stats.Speed),
			c.CombinationLevel, strings.Join(specialties, ","))
	}
	fmt.Println()

	printItems("Tools", l.Tools)
	printItems("Spells", l.Spells)

	fmt.Printf("Total power: %d  (avg stats %d, forms 0/1/2/3 = %v)\n",
		l.TotalPower, l.Composition.AverageStats, l.Composition.Forms)

	logger.Summary("Loadout generated", "tier", tier.String(), "total_power", l.TotalPower)
	return nil
}

func printItems(title string, list []*items.Item) {
	fmt.Printf("%s (%d):\n", title, len(list))
	for _, item := range list {
		fmt.Printf("  %-36s power %.2f  strategic %3d\n", item.Name, item.PowerLevel, item.StrategicValue)
	}
	fmt.Println()
}

func runRating(args []string) error {
	fs := flag.NewFlagSet("rating", flag.ExitOnError)
	common := registerCommon(fs)
	tierName := fs.String("tier", "all", "Difficulty tier, or \"all\"")
	rosterFile := fs.String("roster", "", "Player roster YAML file")
	player := fs.String("player", "", "Player whose stored roster is rated")
	fs.Parse(args)

	if *rosterFile == "" && *player == "" {
		return errors.New("one of -roster or -player is required")
	}

	a, err := common.load()
	if err != nil {
		return err
	}
	roster, err := a.roster(*rosterFile, *player)
	if err != nil {
		return err
	}

	tiers := difficulty.Tiers
	if !strings.EqualFold(*tierName, "all") {
		tiers = []difficulty.Tier{a.tier(*tierName)}
	}

	fmt.Printf("=== Roster Rating (%d creatures) ===\n", len(roster))
	fmt.Println()
	fmt.Println("Tier   | Player | Enemy | Meets | Avg Stats | Forms 3/2/1")
	fmt.Println("-------+--------+-------+-------+-----------+------------")
	var recommendations []string
	for _, tier := range tiers {
		r := balance.Evaluate(roster, tier)
		fmt.Printf("%-6s | %6d | %5d | %-5v | %9d | %d/%d/%d\n",
			tier, r.PlayerRating, r.EnemyRating, r.MeetsRequirements, r.Composition.AverageStats,
			r.Composition.Form(3), r.Composition.Form(2), r.Composition.Form(1))
		recommendations = append(recommendations, r.Recommendation)
	}
	fmt.Println()
	for _, rec := range recommendations {
		fmt.Println(rec)
	}
	return nil
}

func runTips(args []string) error {
	fs := flag.NewFlagSet("tips", flag.ExitOnError)
	tierName := fs.String("tier", "medium", "Difficulty tier")
	fs.Parse(args)

	tier := difficulty.ParseTier(*tierName)
	req := difficulty.RequirementsFor(tier)

	fmt.Printf("=== %s ===\n", strings.ToUpper(tier.String()))
	for _, tip := range difficulty.Tips(tier) {
		fmt.Printf("  - %s\n", tip)
	}
	fmt.Printf("\nMinimum roster: %d form 3, %d form 2, %d form 1, average stats %d\n",
		req.Form3, req.Form2, req.Form1, req.AvgStats)
	return nil
}

func runSweep(args []string) error {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	common := registerCommon(fs)
	iterations := fs.Int("iterations", 1000, "Loadouts generated per tier")
	tierList := fs.String("tiers", "easy,medium,hard,expert", "Comma-separated tiers to sweep")
	fs.Parse(args)

	a, err := common.load()
	if err != nil {
		return err
	}

	var tiers []difficulty.Tier
	for _, name := range strings.Split(*tierList, ",") {
		if name = strings.TrimSpace(name); name != "" {
			tiers = append(tiers, difficulty.ParseTier(name))
		}
	}

	fmt.Println("=== Loadout Sweep ===")
	fmt.Printf("Iterations per tier: %d\n", *iterations)
	fmt.Println()

	results := balance.Sweep(a.assembler(), tiers, *iterations)

	fmt.Println("Tier   | Avg Power | Min  | Max  | Avg Form | Avg Stats | Stat Range | Items | Combos")
	fmt.Println("-------+-----------+------+------+----------+-----------+------------+-------+-------")
	for _, r := range results {
		fmt.Printf("%-6s | %9.1f | %4d | %4d | %8.2f | %9.1f | %4d - %-4d | %5.1f | %6d\n",
			r.Tier, r.AvgPower, r.MinPower, r.MaxPower, r.AvgForm, r.AvgStats,
			r.MinStat, r.MaxStat, r.AvgTools+r.AvgSpells, r.Combinations)
	}
	fmt.Println()

	fmt.Println("Rarity mix (Common / Rare / Epic / Legendary):")
	for _, r := range results {
		fmt.Printf("  %-6s %5.1f%% / %5.1f%% / %5.1f%% / %5.1f%%\n", r.Tier,
			r.RarityShare[rarity.Common]*100, r.RarityShare[rarity.Rare]*100,
			r.RarityShare[rarity.Epic]*100, r.RarityShare[rarity.Legendary]*100)
	}

	logger.Summary("Sweep complete", "tiers", len(results), "iterations", *iterations)
	return nil
}

func runImport(args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	common := registerCommon(fs)
	rosterFile := fs.String("roster", "", "Roster YAML file to import (required). Re-importing a file fails on its existing creature ids")
	player := fs.String("player", "", "Player name (overrides the file's player)")
	fs.Parse(args)

	if *rosterFile == "" {
		return errors.New("-roster is required")
	}

	a, err := common.load()
	if err != nil {
		return err
	}

	filePlayer, creatures, err := creature.LoadRosterFromYAML(*rosterFile)
	if err != nil {
		return err
	}
	name := *player
	if name == "" {
		name = filePlayer
	}
	if name == "" {
		return errors.New("no player named in the file or with -player")
	}

	db, err := database.OpenWithConfig(a.dbConfig)
	if err != nil {
		return err
	}
	defer db.Close()

	p, err := db.ImportRoster(name, creatures)
	if err != nil {
		return err
	}
	total, err := db.CountCreatures(p.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d creatures for %s (%d in roster)\n", len(creatures), p.Name, total)
	return nil
}

func runExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	common := registerCommon(fs)
	player := fs.String("player", "", "Player to export (required)")
	out := fs.String("out", "", "Output file (default stdout)")
	fs.Parse(args)

	if *player == "" {
		return errors.New("-player is required")
	}

	a, err := common.load()
	if err != nil {
		return err
	}
	creatures, err := a.roster("", *player)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(creature.ToRosterFile(*player, creatures))
	if err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}

	if *out == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		return fmt.Errorf("failed to write roster: %w", err)
	}
	logger.Info("Roster exported", "player", *player, "path", *out, "creatures", len(creatures))
	return nil
}
