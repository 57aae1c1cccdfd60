package engine

import (
	"math/rand"

	"warehouse-crawler/internal/component"
	"warehouse-crawler/internal/ecs"
	"warehouse-crawler/internal/factory"
	"warehouse-crawler/internal/gamemap"
	"warehouse-crawler/internal/generate"
	"warehouse-crawler/internal/system"
)

// floorSeedMix decorrelates per-floor generation streams drawn from one seed.
const floorSeedMix = 0x9E3779B9

// floorState is everything the session keeps per generated floor. Floors are
// cached so climbing back up restores the floor exactly as it was left.
type floorState struct {
	world    *ecs.World
	grid     *gamemap.Grid
	fov      *system.FOVMap
	playerID ecs.EntityID
	spawnX   int
	spawnY   int

	// patrolSpawned records watch windows that already produced a guard,
	// keyed by turn/PatrolPeriod.
	patrolSpawned map[int]bool
}

// Session is one run of the warehouse. All mutation goes through Submit;
// View is a pure read. A Session is not safe for concurrent use.
type Session struct {
	seed    int64
	rng     *rand.Rand // hazard and enemy stream, advanced only by consumed turns
	floors  map[int]*floorState
	floor   int
	turn    int
	state   GameState
	intents []Intent
	stats   RunLog
}

// NewSession starts a run from the given seed. The same seed always
// produces the same warehouse and, given the same intents, the same run.
func NewSession(seed int64) (*Session, error) {
	s := &Session{
		seed:   seed,
		rng:    rand.New(rand.NewSource(seed)),
		floors: make(map[int]*floorState),
		floor:  1,
		stats:  newRunLog(seed),
	}
	fs, err := s.loadFloor(1)
	if err != nil {
		return nil, err
	}
	fs.playerID = factory.NewPlayer(fs.world, fs.spawnX, fs.spawnY)
	s.updateFOV(fs)
	return s, nil
}

// Seed returns the seed the session was created from.
func (s *Session) Seed() int64 { return s.seed }

// Turn returns the number of consumed turns.
func (s *Session) Turn() int { return s.turn }

// State returns the session state machine.
func (s *Session) State() GameState { return s.state }

// Floor returns the 1-based current floor number.
func (s *Session) Floor() int { return s.floor }

// current returns the active floor state.
func (s *Session) current() *floorState {
	return s.floors[s.floor]
}

// loadFloor returns the cached floor or generates it. Generation draws from
// a per-floor stream derived from the seed, so the layout of floor n does
// not depend on how the player got there.
func (s *Session) loadFloor(floor int) (*floorState, error) {
	if fs, ok := s.floors[floor]; ok {
		return fs, nil
	}

	genRNG := rand.New(rand.NewSource(s.seed + int64(floor)*floorSeedMix))
	cfg := levelConfig(floor, genRNG)
	grid, px, py, err := generate.Generate(cfg)
	if err != nil {
		return nil, err
	}

	fs := &floorState{
		world:         ecs.NewWorld(),
		grid:          grid,
		fov:           system.NewFOVMap(grid),
		spawnX:        px,
		spawnY:        py,
		patrolSpawned: make(map[int]bool),
	}
	pop := generate.Populate(grid, px, py, cfg)
	for _, es := range pop.Enemies {
		guard := component.Zone{X1: es.Guard.X1, Y1: es.Guard.Y1, X2: es.Guard.X2, Y2: es.Guard.Y2}
		factory.NewEnemy(fs.world, es.Entry, es.X, es.Y, guard)
	}
	for _, is := range pop.Items {
		factory.NewItem(fs.world, is.Entry, is.X, is.Y)
	}

	s.floors[floor] = fs
	return fs, nil
}

// changeFloor moves the run to target. Arriving downward puts the player on
// the spawn tile, upward on the stairs tile, nudged to the nearest free
// tile if something stands there.
func (s *Session) changeFloor(target int, downward bool) error {
	from := s.current()
	fs, err := s.loadFloor(target)
	if err != nil {
		return err
	}

	x, y := fs.grid.StairsX, fs.grid.StairsY
	if downward {
		x, y = fs.spawnX, fs.spawnY
	}
	x, y = nearestFree(fs, x, y)

	if fs.playerID == ecs.NilEntity || !fs.world.Alive(fs.playerID) {
		fs.playerID = factory.NewPlayer(fs.world, x, y)
	} else {
		fs.world.Add(fs.playerID, component.Position{X: x, Y: y})
	}
	transferPlayer(from.world, from.playerID, fs.world, fs.playerID)

	s.floor = target
	if target > s.stats.FloorsReached {
		s.stats.FloorsReached = target
	}
	s.updateFOV(fs)
	return nil
}

// transferPlayer copies the run-persistent player components between floor
// worlds.
func transferPlayer(from *ecs.World, fromID ecs.EntityID, to *ecs.World, toID ecs.EntityID) {
	for _, t := range []ecs.ComponentType{
		component.CHealth, component.CCombat, component.CEquipment, component.CProgression,
	} {
		if c := from.Get(fromID, t); c != nil {
			to.Add(toID, c)
		}
	}
}

// nearestFree returns (x, y) or the closest walkable unoccupied tile,
// scanning outward ring by ring in fixed order.
func nearestFree(fs *floorState, x, y int) (int, int) {
	free := func(tx, ty int) bool {
		return fs.grid.IsWalkable(tx, ty) &&
			system.BlockerAt(fs.world, tx, ty, ecs.NilEntity) == ecs.NilEntity
	}
	if free(x, y) {
		return x, y
	}
	for r := 1; r < fs.grid.Width+fs.grid.Height; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if abs(dx)+abs(dy) != r {
					continue
				}
				if free(x+dx, y+dy) {
					return x + dx, y + dy
				}
			}
		}
	}
	return x, y
}

// playerPos returns the player's position on the current floor.
func (s *Session) playerPos() component.Position {
	fs := s.current()
	return fs.world.Get(fs.playerID, component.CPosition).(component.Position)
}

// updateFOV recomputes visibility from the player with the floor's radius.
func (s *Session) updateFOV(fs *floorState) {
	if fs.playerID == ecs.NilEntity {
		return
	}
	posComp := fs.world.Get(fs.playerID, component.CPosition)
	if posComp == nil {
		return
	}
	pos := posComp.(component.Position)
	system.UpdateFOV(fs.fov, fs.grid, pos.X, pos.Y, system.VisibilityRadius(fs.grid))
}

// tileName names the obstacle at (x, y) for rejection messages.
func tileName(g *gamemap.Grid, x, y int) string {
	if !g.InBounds(x, y) {
		return "wall"
	}
	return g.At(x, y).Kind.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
