package core

// DefaultMaxPasses bounds a single cascade. Real boards settle in a handful of
// passes; the cap only matters for a pathological RNG.
const DefaultMaxPasses = 100

// CascadeState is the resolver's position in one resolve call.
type CascadeState uint8

const (
	StateScanning CascadeState = iota
	StateClearing
	StateShifting
	StateRefilling
	StateDone
)

// String returns the string representation of a cascade state.
func (s CascadeState) String() string {
	switch s {
	case StateScanning:
		return "scanning"
	case StateClearing:
		return "clearing"
	case StateShifting:
		return "shifting"
	case StateRefilling:
		return "refilling"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// PassResult describes one clear/shift/refill pass.
type PassResult struct {
	Groups  []MatchGroup
	Points  int
	Cleared int
}

// CascadeResult is the outcome of a full resolve.
type CascadeResult struct {
	ScoreDelta int
	Cleared    int
	Passes     []PassResult
	Capped     bool // stopped by MaxPasses before the board was stable
}

// Groups returns the total number of groups scored across all passes.
func (r CascadeResult) Groups() int {
	n := 0
	for _, p := range r.Passes {
		n += len(p.Groups)
	}
	return n
}

// Resolver runs the scan -> clear -> shift -> refill loop until the board is
// stable or MaxPasses is reached.
type Resolver struct {
	Finder    MatchFinder
	Scorer    Scorer
	Rand      Rand
	MaxPasses int
}

// NewResolver creates a resolver with the standard finder and scorer.
func NewResolver(rng Rand) *Resolver {
	return &Resolver{
		Finder:    RunFinder{},
		Scorer:    DefaultScorer(),
		Rand:      rng,
		MaxPasses: DefaultMaxPasses,
	}
}

// Resolve settles g in place and adds every scored group to score.
// score may be nil when only the board outcome matters.
func (r *Resolver) Resolve(g *Grid, score *Score) CascadeResult {
	maxPasses := r.MaxPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}

	var (
		result   CascadeResult
		groups   []MatchGroup
		clearSet []Coord
		pass     PassResult
	)

	state := StateScanning
	for state != StateDone {
		switch state {
		case StateScanning:
			groups = r.Finder.FindRuns(g)
			if len(groups) == 0 {
				state = StateDone
				break
			}
			if len(result.Passes) >= maxPasses {
				result.Capped = true
				state = StateDone
				break
			}
			pass = PassResult{Groups: groups}
			for _, grp := range groups {
				pass.Points += r.Scorer.ValueOf(grp)
			}
			clearSet = ClearSet(groups)
			pass.Cleared = len(clearSet)
			state = StateClearing

		case StateClearing:
			g.Clear(clearSet)
			state = StateShifting

		case StateShifting:
			g.ShiftColumnDown()
			state = StateRefilling

		case StateRefilling:
			g.RefillEmpties(r.Rand)
			result.Passes = append(result.Passes, pass)
			result.ScoreDelta += pass.Points
			result.Cleared += pass.Cleared
			if score != nil {
				score.Add(pass.Points)
			}
			state = StateScanning
		}
	}

	return result
}
