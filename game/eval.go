package game

import (
	"fmt"
	"strings"
)

// EvalMethod names an evaluation strategy.
type EvalMethod int

const (
	ByDifference EvalMethod = iota
	ByNormalizedDifference
	ByMaterial
)

var evalMethodNames = map[EvalMethod]string{
	ByDifference:           "difference",
	ByNormalizedDifference: "normalized",
	ByMaterial:             "material",
}

func (m EvalMethod) String() string {
	if name, ok := evalMethodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("EvalMethod(%d)", int(m))
}

// Valid reports whether the method names a known strategy.
func (m EvalMethod) Valid() bool {
	_, ok := evalMethodNames[m]
	return ok
}

func ParseEvalMethod(name string) (EvalMethod, error) {
	for method, candidate := range evalMethodNames {
		if strings.EqualFold(candidate, name) {
			return method, nil
		}
	}
	return ByDifference, fmt.Errorf("unknown evaluation method %q", name)
}

// Func returns the scoring function behind the method.
func (m EvalMethod) Func() Evaluate {
	switch m {
	case ByDifference:
		return EvaluateDifference
	case ByNormalizedDifference:
		return EvaluateNormalizedDifference
	case ByMaterial:
		return EvaluateMaterial
	}
	panic("unexpected evaluation method")
}

func (m EvalMethod) Evaluate(g Game) float64 {
	return m.Func()(g)
}

// EvaluateDifference is Player's store minus Opponent's store.
func EvaluateDifference(g Game) float64 {
	return float64(g.board.Store(Player) - g.board.Store(Opponent))
}

// EvaluateNormalizedDifference scales the store difference to [-1, 1].
func EvaluateNormalizedDifference(g Game) float64 {
	return normalize(float64(g.board.Store(Player)), float64(g.board.Store(Opponent)))
}

// EvaluateMaterial counts each side's store plus the stones still on its pits.
func EvaluateMaterial(g Game) float64 {
	player := g.board.Store(Player) + g.board.PitStones(Player)
	opponent := g.board.Store(Opponent) + g.board.PitStones(Opponent)
	return float64(player - opponent)
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}

func (m EvalMethod) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *EvalMethod) UnmarshalText(text []byte) error {
	method, err := ParseEvalMethod(string(text))
	if err != nil {
		return err
	}
	*m = method
	return nil
}
