package experiments

import (
	"fmt"
	"kalah/agent"
	"kalah/engine"
	"kalah/experiments/metrics"
	"kalah/game"
	"kalah/meta"

	"github.com/rs/zerolog/log"
)

// Settings shared by every match-up of an experiment.
type Settings struct {
	Games    int    // Per match up
	MaxTurns int    // Per game
	OutDir   string // Root folder for CSV results, nothing is written when empty
}

func (s Settings) withDefaults() Settings {
	if s.Games <= 0 {
		s.Games = meta.GAMES
	}
	if s.MaxTurns <= 0 {
		s.MaxTurns = meta.MAX_TURNS
	}
	return s
}

// Summary counts results from the first agent's point of view.
type Summary struct {
	Games      int
	Wins       int
	Losses     int
	Ties       int
	Unfinished int
}

var evalConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: string(agent.Search), Depth: meta.SEARCH_DEPTH, EvalMethod: game.ByDifference},
	{ID: 2, Kind: string(agent.Search), Depth: meta.SEARCH_DEPTH, EvalMethod: game.ByNormalizedDifference},
	{ID: 3, Kind: string(agent.Search), Depth: meta.SEARCH_DEPTH, EvalMethod: game.ByMaterial},
}

// RunDepthExperiment pairs searchers of increasing depth against a greedy
// baseline that only sees the current turn.
func RunDepthExperiment(settings Settings) (map[int]Summary, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: string(agent.Greedy), Depth: 1, EvalMethod: game.ByDifference}
	depthConfigs := []metrics.AgentConfig{
		{ID: 1, Kind: string(agent.Search), Depth: 1, EvalMethod: game.ByDifference},
		{ID: 2, Kind: string(agent.Search), Depth: 2, EvalMethod: game.ByDifference},
		{ID: 3, Kind: string(agent.Search), Depth: 3, EvalMethod: game.ByDifference},
	}

	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, baseline})
	}

	return runExperiment("depth", append(depthConfigs, baseline), matchUps, settings)
}

// RunEvalExperiment pairs each evaluation method against every other one at
// the same depth.
func RunEvalExperiment(settings Settings) (map[int]Summary, error) {
	matchUps := [][2]metrics.AgentConfig{}
	for i, config := range evalConfigs {
		for _, other := range evalConfigs[i+1:] {
			matchUps = append(matchUps, [2]metrics.AgentConfig{config, other})
		}
	}

	return runExperiment("eval_method", evalConfigs, matchUps, settings)
}

// RunBaselineExperiment pairs a searcher against seeded random agents.
func RunBaselineExperiment(settings Settings) (map[int]Summary, error) {
	searcherConfig := metrics.AgentConfig{ID: 1, Kind: string(agent.Search), Depth: meta.SEARCH_DEPTH, EvalMethod: game.ByDifference, PreferWin: true}
	configs := []metrics.AgentConfig{searcherConfig}
	matchUps := [][2]metrics.AgentConfig{}
	for seed := uint64(1); seed <= 3; seed++ {
		random := metrics.AgentConfig{ID: int(seed) + 1, Kind: string(agent.Random), Seed: seed}
		configs = append(configs, random)
		matchUps = append(matchUps, [2]metrics.AgentConfig{searcherConfig, random})
	}

	return runExperiment("baseline", configs, matchUps, settings)
}

// runExperiment plays settings.Games games per match-up, alternating which
// agent starts, and returns a summary per match-up index.
func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, settings Settings) (map[int]Summary, error) {
	settings = settings.withDefaults()
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	summaries := make(map[int]Summary, len(matchUps))

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		config1 := matchUp[0]
		config2 := matchUp[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		summary := Summary{}
		for i := 0; i < settings.Games; i++ {
			// Agent1 starts on even games
			player, opponent := config1, config2
			if i%2 == 1 {
				player, opponent = config2, config1
			}

			outcome, gameMetric, moveMetrics, err := runGame(player, opponent, settings.MaxTurns)
			if err != nil {
				return nil, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     player.ID,
				Agent2:     opponent.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
			summary.add(outcome, i%2 == 1)

			log.Info().Msgf("completed matchup %d of %d game %d with outcome: %s", mi+1, len(matchUps), i+1, outcome)
		}
		summaries[mi] = summary
		log.Info().Msgf("completed matchup %d of %d: %+v", mi+1, len(matchUps), summary)
	}

	log.Info().Msgf("completed %s experiment", name)

	if settings.OutDir == "" {
		return summaries, nil
	}
	err := store(name, settings.OutDir, configs, gameRecords, moveRecords)
	return summaries, err
}

func (s *Summary) add(outcome game.Outcome, swapped bool) {
	s.Games++
	won, lost := game.PlayerWon, game.OpponentWon
	if swapped {
		won, lost = lost, won
	}
	switch outcome {
	case won:
		s.Wins++
	case lost:
		s.Losses++
	case game.Tie:
		s.Ties++
	default:
		s.Unfinished++
	}
}

func store(name, root string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

// runGame plays a single game from the standard layout, Player moving first
func runGame(player, opponent metrics.AgentConfig, maxTurns int) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	playerAgent, err := agent.FromConfig(player)
	if err != nil {
		return game.NoOutcome, metrics.GameMetric{}, nil, err
	}
	opponentAgent, err := agent.FromConfig(opponent)
	if err != nil {
		return game.NoOutcome, metrics.GameMetric{}, nil, err
	}
	e := engine.NewLocalEngine(game.DefaultGame(), playerAgent, opponentAgent, maxTurns)

	outcome, gameMetric, moveMetrics := e.Run()

	return outcome, gameMetric, moveMetrics, nil
}
