package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"pursuit/engine"
	"pursuit/game"
	"pursuit/policyfile"
	"pursuit/scenario"
	"pursuit/solver"
	"pursuit/strategies"
)

type config struct {
	mode         string
	scenarioPath string
	evader       int
	pursuers     string
	maxRounds    int
	seed         uint64
	dumpPolicy   string
	loadPolicy   string
	strict       bool
	debug        bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.mode, "mode", "auto", "auto: play a game, solve: compute a forced-escape policy")
	flag.StringVar(&cfg.scenarioPath, "scenario", "", "YAML scenario file")
	flag.IntVar(&cfg.evader, "evader", 1, "starting node for the evader")
	flag.StringVar(&cfg.pursuers, "pursuers", "5,10", "comma-separated starting nodes for the pursuers")
	flag.IntVar(&cfg.maxRounds, "max-rounds", 15, "rounds the evader must survive to win")
	flag.Uint64Var(&cfg.seed, "seed", 0, "random seed for reproducibility")
	flag.StringVar(&cfg.dumpPolicy, "dump-policy", "", "write the solved policy to this JSON file")
	flag.StringVar(&cfg.loadPolicy, "load-policy", "", "play the evader from this policy dump")
	flag.BoolVar(&cfg.strict, "strict", false, "fail on policy lookup misses instead of falling back")
	flag.BoolVar(&cfg.debug, "debug", false, "verbose logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	board := game.CreateTopRightBoard()
	scen, err := buildScenario(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}
	validateStarts(board, scen)

	switch cfg.mode {
	case "solve":
		runSolve(board, scen, cfg)
	case "auto":
		runGame(board, scen, cfg)
	default:
		log.Fatal().Msgf("unknown mode %q (want auto or solve)", cfg.mode)
	}
}

// buildScenario starts from the defaults, applies the scenario file if
// given, then lets explicitly-set flags override either.
func buildScenario(cfg config) (scenario.Scenario, error) {
	scen := scenario.Default()
	if cfg.scenarioPath != "" {
		loaded, err := scenario.Load(cfg.scenarioPath)
		if err != nil {
			return scenario.Scenario{}, err
		}
		scen = loaded
	}

	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "evader":
			scen.EvaderStart = cfg.evader
		case "pursuers":
			starts, err := parseNodes(cfg.pursuers)
			if err != nil {
				flagErr = err
				return
			}
			scen.PursuerStarts = starts
		case "max-rounds":
			scen.MaxRounds = cfg.maxRounds
		case "seed":
			scen.Seed = cfg.seed
		}
	})
	return scen, flagErr
}

func parseNodes(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var nodes []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid node %q: %w", part, err)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func validateStarts(board *game.Board, scen scenario.Scenario) {
	starts := append([]int{scen.EvaderStart}, scen.PursuerStarts...)
	seen := map[int]bool{}
	for _, p := range starts {
		if !board.HasNode(p) {
			log.Fatal().Msgf("node %d is not on the board (valid nodes: %v)", p, board.Nodes())
		}
		if seen[p] {
			log.Fatal().Msgf("all starting positions must be distinct, node %d is shared", p)
		}
		seen[p] = true
	}
}

func runSolve(board *game.Board, scen scenario.Scenario, cfg config) {
	start := scen.GameState()
	log.Info().Msgf("solving: evader at %d, pursuers at %v, max rounds %d",
		start.EvaderPosition, start.PursuerPositions, start.MaxRounds)

	result, err := solver.Solve(board, start)
	if err != nil {
		log.Fatal().Err(err).Msg("solve failed")
	}

	verdict := "no forced escape: pursuers can always win"
	if result.ForcedEscape {
		verdict = "forced escape: the evader beats every pursuer response"
	}
	fmt.Printf("%s\n", verdict)
	fmt.Printf("states evaluated: %d, policy entries: %d\n",
		result.StatesEvaluated, len(result.Policy))

	if cfg.dumpPolicy != "" {
		if err := policyfile.Save(cfg.dumpPolicy, policyfile.New(start, result)); err != nil {
			log.Fatal().Err(err).Msg("dump failed")
		}
		log.Info().Msgf("policy written to %s", cfg.dumpPolicy)
	}
}

func runGame(board *game.Board, scen scenario.Scenario, cfg config) {
	state := scen.GameState()

	var evaderStrategy engine.Strategy = strategies.NewRandom(scen.Seed)
	if cfg.loadPolicy != "" {
		dump, err := policyfile.Load(cfg.loadPolicy)
		if err != nil {
			log.Fatal().Err(err).Msg("could not load policy")
		}
		// The dump carries its own start configuration; play that game.
		state = dump.GameState()
		state.RevealRounds = append([]int(nil), scen.RevealRounds...)
		evaderStrategy = &strategies.SerializedPolicy{Moves: dump.Policy, Strict: cfg.strict}
	}

	pursuerStrategies := make([]engine.Strategy, state.NumPursuers())
	for i := range pursuerStrategies {
		pursuerStrategies[i] = strategies.NewRandom(scen.Seed + uint64(i) + 1)
	}

	e := engine.New(board, state, evaderStrategy, pursuerStrategies, logMove)
	final, err := e.PlayGame()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
	fmt.Printf("%s (round %d)\n", final.ResultString(), final.RoundNumber)
}

func logMove(actor game.Actor, from, to int) {
	if from == to {
		log.Info().Msgf("  %s: stuck at %d", actor, from)
		return
	}
	log.Info().Msgf("  %s: %d -> %d", actor, from, to)
}
