package system

import (
	"math/rand"
	"testing"

	"warehouse-crawler/internal/component"
	"warehouse-crawler/internal/ecs"
	"warehouse-crawler/internal/gamemap"
)

// openGrid returns a grid of the given size with an all-floor interior.
func openGrid(w, h int) *gamemap.Grid {
	g := gamemap.New(w, h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			g.Set(x, y, gamemap.MakeFloor())
		}
	}
	return g
}

func spawnPlayer(w *ecs.World, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Health{Current: 30, Max: 30})
	w.Add(id, component.Combat{Attack: 5, Defense: 2})
	w.Add(id, component.Name{Name: "Employee", Glyph: '@'})
	w.Add(id, component.Equipment{})
	w.Add(id, component.Progression{Level: 1})
	w.Add(id, component.TagPlayer{})
	w.Add(id, component.TagBlocking{})
	return id
}

func spawnEnemy(w *ecs.World, x, y, atk, def, hp int, behavior component.AIBehavior) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Health{Current: hp, Max: hp})
	w.Add(id, component.Combat{Attack: atk, Defense: def, Tier: component.TierEmployee})
	w.Add(id, component.Name{Name: "Sorting Bot", Glyph: 'r'})
	w.Add(id, component.AI{Behavior: behavior})
	w.Add(id, component.TagBlocking{})
	return id
}

func posOf(w *ecs.World, id ecs.EntityID) component.Position {
	return w.Get(id, component.CPosition).(component.Position)
}

func TestTryMoveOpenFloor(t *testing.T) {
	w := ecs.NewWorld()
	g := openGrid(10, 10)
	id := spawnPlayer(w, 4, 4)

	res, _ := TryMove(w, g, id, 1, 0)
	if res != MoveOK {
		t.Fatalf("result = %v, want MoveOK", res)
	}
	if p := posOf(w, id); p.X != 5 || p.Y != 4 {
		t.Errorf("position = (%d,%d), want (5,4)", p.X, p.Y)
	}
}

func TestTryMoveBlockedByWall(t *testing.T) {
	w := ecs.NewWorld()
	g := openGrid(10, 10)
	id := spawnPlayer(w, 1, 1)

	res, _ := TryMove(w, g, id, -1, 0)
	if res != MoveBlocked {
		t.Fatalf("result = %v, want MoveBlocked", res)
	}
	if p := posOf(w, id); p.X != 1 || p.Y != 1 {
		t.Errorf("position moved to (%d,%d) on a blocked step", p.X, p.Y)
	}
}

func TestTryMoveBumpIsAttack(t *testing.T) {
	w := ecs.NewWorld()
	g := openGrid(10, 10)
	player := spawnPlayer(w, 4, 4)
	enemy := spawnEnemy(w, 5, 4, 3, 0, 8, component.BehaviorWander)

	res, target := TryMove(w, g, player, 1, 0)
	if res != MoveAttack {
		t.Fatalf("result = %v, want MoveAttack", res)
	}
	if target != enemy {
		t.Errorf("target = %d, want %d", target, enemy)
	}
	if p := posOf(w, player); p.X != 4 {
		t.Errorf("player moved into occupied tile")
	}
}

func TestCheckpointRefusesWithoutBadge(t *testing.T) {
	w := ecs.NewWorld()
	g := openGrid(10, 10)
	g.Set(5, 4, gamemap.MakeCheckpoint())
	player := spawnPlayer(w, 4, 4)

	res, _ := TryMove(w, g, player, 1, 0)
	if res != MoveCheckpoint {
		t.Fatalf("result = %v, want MoveCheckpoint", res)
	}
	if p := posOf(w, player); p.X != 4 {
		t.Errorf("player passed a checkpoint without the badge")
	}

	prog := w.Get(player, component.CProgression).(component.Progression)
	prog.HasBadge = true
	w.Add(player, prog)

	res, _ = TryMove(w, g, player, 1, 0)
	if res != MoveOK {
		t.Fatalf("with badge: result = %v, want MoveOK", res)
	}
}

func TestCheckpointAlwaysRefusesEnemies(t *testing.T) {
	w := ecs.NewWorld()
	g := openGrid(10, 10)
	g.Set(5, 4, gamemap.MakeCheckpoint())
	enemy := spawnEnemy(w, 4, 4, 3, 0, 8, component.BehaviorAggressive)

	res, _ := TryMove(w, g, enemy, 1, 0)
	if res != MoveCheckpoint {
		t.Fatalf("result = %v, want MoveCheckpoint", res)
	}
}

func TestAttackDamageFormula(t *testing.T) {
	w := ecs.NewWorld()
	player := spawnPlayer(w, 4, 4) // atk 5
	enemy := spawnEnemy(w, 5, 4, 3, 2, 8, component.BehaviorWander)

	res := Attack(w, player, enemy)
	if res.Damage != 3 {
		t.Errorf("damage = %d, want 3 (5 atk vs 2 def)", res.Damage)
	}
	hp := w.Get(enemy, component.CHealth).(component.Health)
	if hp.Current != 5 {
		t.Errorf("enemy HP = %d, want 5", hp.Current)
	}
}

func TestAttackDamageFloorIsOne(t *testing.T) {
	w := ecs.NewWorld()
	weak := spawnEnemy(w, 4, 4, 1, 0, 8, component.BehaviorWander)
	tank := spawnEnemy(w, 5, 4, 3, 99, 8, component.BehaviorWander)

	res := Attack(w, weak, tank)
	if res.Damage != 1 {
		t.Errorf("damage = %d, want floor of 1", res.Damage)
	}
}

func TestAttackWeaponAndArmorBonuses(t *testing.T) {
	w := ecs.NewWorld()
	player := spawnPlayer(w, 4, 4)
	w.Add(player, component.Equipment{WeaponName: "Box Cutter", WeaponBonus: 3})
	enemy := spawnEnemy(w, 5, 4, 3, 2, 20, component.BehaviorWander)

	res := Attack(w, player, enemy)
	if res.Damage != 6 {
		t.Errorf("damage = %d, want 6 (5+3 atk vs 2 def)", res.Damage)
	}
}

func TestLethalHitDefersRemoval(t *testing.T) {
	w := ecs.NewWorld()
	player := spawnPlayer(w, 4, 4)
	enemy := spawnEnemy(w, 5, 4, 3, 0, 2, component.BehaviorWander)

	res := Attack(w, player, enemy)
	if !res.Killed {
		t.Fatal("lethal hit not reported as kill")
	}
	if !w.Dead(enemy) {
		t.Error("enemy not marked dead")
	}
	if w.Get(enemy, component.CName) == nil {
		t.Error("components gone before Reap")
	}
	w.Reap()
	if w.Get(enemy, component.CName) != nil {
		t.Error("components survive Reap")
	}
}

func TestGrantXPLevelUp(t *testing.T) {
	w := ecs.NewWorld()
	player := spawnPlayer(w, 4, 4)

	// Employee kills are worth 10 XP; level 2 needs 28.
	for i := 0; i < 2; i++ {
		if gained := GrantXP(w, player, component.TierEmployee); gained != 0 {
			t.Fatalf("leveled after %d kills", i+1)
		}
	}
	if gained := GrantXP(w, player, component.TierEmployee); gained != 1 {
		t.Fatal("third employee kill should reach level 2")
	}

	prog := w.Get(player, component.CProgression).(component.Progression)
	if prog.Level != 2 || prog.XP != 30 {
		t.Errorf("progression = level %d XP %d, want level 2 XP 30", prog.Level, prog.XP)
	}
	hp := w.Get(player, component.CHealth).(component.Health)
	if hp.Max != 34 || hp.Current != 34 {
		t.Errorf("HP = %d/%d, want 34/34 after level-up refill", hp.Current, hp.Max)
	}
	cbt := w.Get(player, component.CCombat).(component.Combat)
	if cbt.Attack != 6 {
		t.Errorf("attack = %d, want 6", cbt.Attack)
	}
}

func TestGrantXPManagementWorthMore(t *testing.T) {
	w := ecs.NewWorld()
	player := spawnPlayer(w, 4, 4)
	if gained := GrantXP(w, player, component.TierManagement); gained != 1 {
		t.Error("one management kill (35 XP) should reach level 2 (28)")
	}
}

func TestChaseClosesAndAttacks(t *testing.T) {
	w := ecs.NewWorld()
	g := openGrid(12, 12)
	player := spawnPlayer(w, 4, 4)
	enemy := spawnEnemy(w, 7, 4, 3, 0, 8, component.BehaviorAggressive)
	rng := rand.New(rand.NewSource(1))

	// Two steps to close, third turn attacks.
	for i := 0; i < 2; i++ {
		if hits := ProcessEnemies(w, g, player, rng); len(hits) != 0 {
			t.Fatalf("turn %d: attacked from range", i)
		}
	}
	hits := ProcessEnemies(w, g, player, rng)
	if len(hits) != 1 {
		t.Fatalf("adjacent enemy did not attack, got %d hits", len(hits))
	}
	if hits[0].AttackerID != enemy || hits[0].Damage != 1 {
		t.Errorf("hit = %+v, want attacker %d damage 1 (3 atk vs 2 def)", hits[0], enemy)
	}
}

func TestGuardIdlesOutsideZone(t *testing.T) {
	w := ecs.NewWorld()
	g := openGrid(20, 12)
	player := spawnPlayer(w, 2, 2)
	enemy := spawnEnemy(w, 15, 5, 5, 2, 12, component.BehaviorGuardZone)
	ai := w.Get(enemy, component.CAI).(component.AI)
	ai.Guard = component.Zone{X1: 13, Y1: 3, X2: 18, Y2: 8}
	w.Add(enemy, ai)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 5; i++ {
		ProcessEnemies(w, g, player, rng)
	}
	if p := posOf(w, enemy); p.X != 15 || p.Y != 5 {
		t.Errorf("guard moved to (%d,%d) while its zone was empty", p.X, p.Y)
	}

	// Player steps inside the zone; the guard closes in.
	w.Add(player, component.Position{X: 13, Y: 5})
	ProcessEnemies(w, g, player, rng)
	if p := posOf(w, enemy); p.X != 14 {
		t.Errorf("guard at x=%d, want 14 after one chase step", p.X)
	}
}

func TestGuardAdjacentOutsideZoneAttacks(t *testing.T) {
	w := ecs.NewWorld()
	g := openGrid(20, 12)
	player := spawnPlayer(w, 2, 5)
	enemy := spawnEnemy(w, 3, 5, 5, 2, 12, component.BehaviorGuardZone)
	ai := w.Get(enemy, component.CAI).(component.AI)
	ai.Guard = component.Zone{X1: 10, Y1: 3, X2: 15, Y2: 8}
	w.Add(enemy, ai)
	rng := rand.New(rand.NewSource(1))

	// The player is next to the guard but outside its zone; adjacency
	// still wins over the behavior tag.
	hits := ProcessEnemies(w, g, player, rng)
	if len(hits) != 1 {
		t.Fatalf("adjacent guard outside its zone: %d hits, want 1", len(hits))
	}
	if hits[0].AttackerID != enemy || hits[0].Damage != 3 {
		t.Errorf("hit = %+v, want attacker %d damage 3 (5 atk vs 2 def)", hits[0], enemy)
	}
}

func TestEnemyOrderIsAscendingID(t *testing.T) {
	w := ecs.NewWorld()
	g := openGrid(12, 12)
	player := spawnPlayer(w, 5, 5)
	// Two aggressive enemies flanking the player; both attack each turn.
	first := spawnEnemy(w, 4, 5, 3, 0, 8, component.BehaviorAggressive)
	second := spawnEnemy(w, 6, 5, 3, 0, 8, component.BehaviorAggressive)
	rng := rand.New(rand.NewSource(1))

	hits := ProcessEnemies(w, g, player, rng)
	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2", len(hits))
	}
	if hits[0].AttackerID != first || hits[1].AttackerID != second {
		t.Errorf("attack order %d,%d, want %d,%d",
			hits[0].AttackerID, hits[1].AttackerID, first, second)
	}
}

func TestConveyorShovesAlongBelt(t *testing.T) {
	w := ecs.NewWorld()
	g := openGrid(12, 12)
	g.Set(5, 5, gamemap.MakeConveyorBelt(gamemap.East, 100))
	player := spawnPlayer(w, 5, 5)
	rng := rand.New(rand.NewSource(1))

	shove, moved := ProcessConveyor(w, g, player, rng)
	if !moved {
		t.Fatal("100% belt did not shove")
	}
	if shove.ToX != 6 || shove.ToY != 5 {
		t.Errorf("shoved to (%d,%d), want (6,5)", shove.ToX, shove.ToY)
	}
	if p := posOf(w, player); p.X != 6 {
		t.Errorf("player at x=%d, want 6", p.X)
	}
}

func TestConveyorCarriesToBeltEnd(t *testing.T) {
	w := ecs.NewWorld()
	g := openGrid(12, 12)
	for x := 5; x <= 7; x++ {
		g.Set(x, 5, gamemap.MakeConveyorBelt(gamemap.East, 100))
	}
	g.Set(8, 5, gamemap.MakeWall())
	player := spawnPlayer(w, 5, 5)
	rng := rand.New(rand.NewSource(1))

	shove, moved := ProcessConveyor(w, g, player, rng)
	if !moved {
		t.Fatal("100% belt did not carry")
	}
	if shove.ToX != 7 || shove.ToY != 5 {
		t.Errorf("carried to (%d,%d), want the belt end (7,5)", shove.ToX, shove.ToY)
	}
	if p := posOf(w, player); p.X != 7 {
		t.Errorf("player at x=%d, want 7", p.X)
	}
}

func TestConveyorFacingBeltsStop(t *testing.T) {
	w := ecs.NewWorld()
	g := openGrid(12, 12)
	g.Set(5, 5, gamemap.MakeConveyorBelt(gamemap.East, 100))
	g.Set(6, 5, gamemap.MakeConveyorBelt(gamemap.West, 100))
	player := spawnPlayer(w, 5, 5)
	rng := rand.New(rand.NewSource(1))

	// The second belt points back at the first; the ride must end rather
	// than bounce forever.
	shove, moved := ProcessConveyor(w, g, player, rng)
	if !moved {
		t.Fatal("belt did not carry at all")
	}
	if shove.ToX != 6 || shove.ToY != 5 {
		t.Errorf("carried to (%d,%d), want (6,5)", shove.ToX, shove.ToY)
	}
}

func TestConveyorStopsAtWall(t *testing.T) {
	w := ecs.NewWorld()
	g := openGrid(12, 12)
	g.Set(1, 5, gamemap.MakeConveyorBelt(gamemap.West, 100))
	player := spawnPlayer(w, 1, 5)
	rng := rand.New(rand.NewSource(1))

	if _, moved := ProcessConveyor(w, g, player, rng); moved {
		t.Error("belt shoved into a wall")
	}
	if p := posOf(w, player); p.X != 1 {
		t.Errorf("player at x=%d, want 1", p.X)
	}
}

func TestConveyorStopsAtOccupiedTile(t *testing.T) {
	w := ecs.NewWorld()
	g := openGrid(12, 12)
	g.Set(5, 5, gamemap.MakeConveyorBelt(gamemap.East, 100))
	player := spawnPlayer(w, 5, 5)
	spawnEnemy(w, 6, 5, 3, 0, 8, component.BehaviorWander)
	rng := rand.New(rand.NewSource(1))

	if _, moved := ProcessConveyor(w, g, player, rng); moved {
		t.Error("belt shoved into an occupied tile")
	}
}

func TestConveyorZeroChanceNeverShoves(t *testing.T) {
	w := ecs.NewWorld()
	g := openGrid(12, 12)
	g.Set(5, 5, gamemap.MakeConveyorBelt(gamemap.East, 0))
	player := spawnPlayer(w, 5, 5)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 20; i++ {
		if _, moved := ProcessConveyor(w, g, player, rng); moved {
			t.Fatal("0% belt shoved")
		}
	}
}

func TestPatrolWindow(t *testing.T) {
	g := openGrid(12, 12)
	g.PatrolZones = []gamemap.Rect{{X1: 3, Y1: 3, X2: 8, Y2: 8}}

	if !PatrolTripped(g, 5, 5, 0) {
		t.Error("turn 0 should be inside the watch window")
	}
	if !PatrolTripped(g, 5, 5, PatrolWindow-1) {
		t.Error("last window turn should trip")
	}
	if PatrolTripped(g, 5, 5, PatrolWindow) {
		t.Error("first off-window turn tripped")
	}
	if !PatrolTripped(g, 5, 5, PatrolPeriod) {
		t.Error("window should reopen each period")
	}
	if PatrolTripped(g, 10, 10, 0) {
		t.Error("tripped outside every patrol zone")
	}
}

func TestVisibilityRadius(t *testing.T) {
	g := openGrid(12, 12)
	if r := VisibilityRadius(g); r != VisibilityNormal {
		t.Errorf("radius = %d, want %d", r, VisibilityNormal)
	}
	g.PowerOutage = true
	if r := VisibilityRadius(g); r != VisibilityOutage {
		t.Errorf("outage radius = %d, want %d", r, VisibilityOutage)
	}
}

func TestFOVWallsBlockSight(t *testing.T) {
	g := openGrid(20, 20)
	// A shelf wall between the viewer and the far side.
	for y := 1; y < 19; y++ {
		g.Set(10, y, gamemap.MakeShelf())
	}
	f := NewFOVMap(g)
	UpdateFOV(f, g, 5, 10, 8)

	if !f.IsVisible(5, 10) {
		t.Error("origin not visible")
	}
	if !f.IsVisible(8, 10) {
		t.Error("open tile in range not visible")
	}
	if f.IsVisible(12, 10) {
		t.Error("tile behind shelf wall visible")
	}
}

func TestFOVRadiusLimit(t *testing.T) {
	g := openGrid(30, 30)
	f := NewFOVMap(g)
	UpdateFOV(f, g, 15, 15, 4)

	if f.IsVisible(25, 15) {
		t.Error("tile far beyond the radius visible")
	}
	if !f.IsExplored(15, 15) {
		t.Error("origin not explored")
	}

	// Shrinking the radius keeps old tiles explored but not visible.
	UpdateFOV(f, g, 15, 15, 2)
	if f.IsVisible(18, 15) {
		t.Error("tile outside the narrowed radius still visible")
	}
	if !f.IsExplored(18, 15) {
		t.Error("explored memory lost on FOV update")
	}
}
