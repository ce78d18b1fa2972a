package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/openfooty/match-engine-go/internal/config"
	"github.com/openfooty/match-engine-go/internal/engine"
	"github.com/openfooty/match-engine-go/internal/squad"
	"github.com/openfooty/match-engine-go/internal/trace"
)

var (
	configPath = flag.String("config", "config/config.yaml", "path to configuration file")
	squadPath  = flag.String("squads", "", "path to a squad YAML file (empty: generated demo squads)")
	seed       = flag.Int64("seed", 0, "random seed (0: time-based)")
	teamCount  = flag.Int("teams", 4, "number of generated demo teams")
	showEvents = flag.Bool("events", false, "print the full event log of each match")
	replayDir  = flag.String("replays", "", "directory to write match replays to (empty: disabled)")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := engine.NewRand(rngSeed)
	logger.Info("starting match simulation",
		zap.Int64("seed", rngSeed),
		zap.String("config", *configPath),
	)

	teams, err := loadOrGenerateTeams(rng)
	if err != nil {
		logger.Fatal("failed to assemble teams", zap.Error(err))
	}
	if len(teams) < 2 {
		logger.Fatal("need at least two teams")
	}
	if len(teams)%2 != 0 {
		teams = teams[:len(teams)-1]
		logger.Warn("odd number of teams; dropping the last one")
	}

	var tracer *trace.Emitter
	if cfg.Trace.Enabled {
		tracer = trace.NewEmitter(trace.NewZapSink(logger), cfg.TraceEmitterConfig())
	}

	round, replays := buildRound(teams, cfg, rng, logger, tracer)
	for !round.Finished() {
		round.StepAll()
		// Every demo match is AI vs AI, so half time never needs a human.
		round.ResumeAI()
	}

	printResults(round, teams)

	if *showEvents {
		printEventLogs(round, teams)
	}
	if *replayDir != "" {
		for _, r := range replays {
			if err := r.SaveToFile(*replayDir); err != nil {
				logger.Error("failed to save replay", zap.String("match", r.MatchID), zap.Error(err))
			}
		}
		logger.Info("replays written", zap.String("dir", *replayDir), zap.Int("count", len(replays)))
	}
}

func loadOrGenerateTeams(rng *rand.Rand) ([]*engine.Team, error) {
	if *squadPath != "" {
		return squad.LoadTeams(*squadPath)
	}
	teams := make([]*engine.Team, 0, *teamCount)
	for i := 0; i < *teamCount; i++ {
		quality := 55 + rng.Intn(25)
		teams = append(teams, squad.Generate(fmt.Sprintf("Team %c", 'A'+i), quality, rng))
	}
	return teams, nil
}

// buildRound pairs the teams into one round of fixtures and spins up a live
// match for each, recording replays when requested.
func buildRound(teams []*engine.Team, cfg *config.Config, rng *rand.Rand, logger *zap.Logger, tracer *trace.Emitter) (*engine.Round, []*engine.Replay) {
	round := &engine.Round{}
	var replays []*engine.Replay
	tuning := cfg.Tuning()

	for i := 0; i+1 < len(teams); i += 2 {
		home, away := teams[i], teams[i+1]
		homeTactics, err := squad.DefaultTactics(home, "4-4-2")
		if err != nil {
			logger.Fatal("failed to pick home tactics", zap.String("team", home.Name), zap.Error(err))
		}
		awayTactics, err := squad.DefaultTactics(away, "4-3-3")
		if err != nil {
			logger.Fatal("failed to pick away tactics", zap.String("team", away.Name), zap.Error(err))
		}

		fixture := engine.Fixture{ID: uuid.New(), HomeID: home.ID, AwayID: away.ID, Round: 1}
		opts := []engine.SimOption{engine.WithTuning(tuning), engine.WithTracer(tracer)}
		if *replayDir != "" {
			replay := engine.NewReplay(fixture.ID.String())
			replays = append(replays, replay)
			opts = append(opts, engine.WithReplay(replay))
		}
		matchCfg := engine.MatchConfig{
			Home:        home,
			Away:        away,
			HomeTactics: homeTactics,
			AwayTactics: awayTactics,
		}
		round.Matches = append(round.Matches, engine.NewLiveMatch(fixture, matchCfg, rng, logger, opts...))
	}
	return round, replays
}

func printResults(round *engine.Round, teams []*engine.Team) {
	names := teamNames(teams)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FIXTURE\tSCORE\tATTENDANCE")
	for _, m := range round.Matches {
		result, ok := m.Result()
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s - %s\t%d-%d\t%d\n",
			names[m.Fixture.HomeID], names[m.Fixture.AwayID],
			result.HomeScore, result.AwayScore, result.Attendance)
	}
	w.Flush()
}

func printEventLogs(round *engine.Round, teams []*engine.Team) {
	names := teamNames(teams)
	for _, m := range round.Matches {
		result, ok := m.Result()
		if !ok {
			continue
		}
		fmt.Printf("\n%s - %s\n", names[m.Fixture.HomeID], names[m.Fixture.AwayID])
		for _, e := range result.Events {
			fmt.Println("  " + engine.FormatEvent(e))
		}
	}
}

func teamNames(teams []*engine.Team) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}
	return names
}

// initLogger initializes the zap logger based on configuration.
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
