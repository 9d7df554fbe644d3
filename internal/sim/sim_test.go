package sim

import (
	"errors"
	"testing"

	"sand-line/internal/app"
	"sand-line/internal/component"
	"sand-line/internal/config"
	"sand-line/internal/event"
)

func newGame(seed int64) *app.Game {
	cfg := config.Default()
	cfg.Seed = seed
	return app.NewGame(cfg)
}

func TestRunRejectsBadOptions(t *testing.T) {
	for _, opts := range []Options{
		{Seconds: 0, Step: 0.1},
		{Seconds: 10, Step: 0},
		{Seconds: 10, Step: 0.1, Speed: -1},
	} {
		if _, err := Run(newGame(1), NewAutoplayer(), opts); !errors.Is(err, ErrInvalidOptions) {
			t.Errorf("%+v: err = %v", opts, err)
		}
	}
}

func TestRunKeepsInvariants(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		rep, err := Run(newGame(seed), NewAutoplayer(), Options{Seconds: 120, Step: 0.05, Check: true})
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if rep.Ticks != 2400 {
			t.Errorf("seed %d: ticks = %d", seed, rep.Ticks)
		}
		if rep.Events[event.EnemySpawned] == 0 || rep.Events[event.CardPlaced] == 0 {
			t.Errorf("seed %d: nothing happened: %v", seed, rep.Events)
		}
	}
}

func TestAutoplayerBuysSupplyFirst(t *testing.T) {
	g := newGame(3)
	if !NewAutoplayer().Turn(g) {
		t.Fatal("first turn should buy supply")
	}
	if r := g.Resources(); r.Supply != 2 || r.Production != 0 {
		t.Errorf("resources = %+v", r)
	}
	if _, ok := g.ECS.CommittedInstallationAt(0, 0); !ok {
		t.Error("supply should sit on the first free cell of column 0")
	}
}

func TestAutoplayerNeverWastesInstallations(t *testing.T) {
	rep, err := Run(newGame(4), NewAutoplayer(), Options{Seconds: 90, Step: 0.1, Check: true})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Events[event.UpgradeRejected] != 0 {
		t.Errorf("autoplayer made %d rejected drops", rep.Events[event.UpgradeRejected])
	}
	if rep.Events[event.UpgradePlaced] == 0 {
		t.Error("autoplayer never placed an installation")
	}
}

func TestAutoplayerRestartsAfterLoss(t *testing.T) {
	g := newGame(1)
	g.ECS.AddUnit(component.SideEnemy, 0, 0, 100)
	g.Tick(1)
	if !g.Capitulated() {
		t.Fatal("setup: expected capitulation")
	}
	if !NewAutoplayer().Turn(g) || g.Capitulated() {
		t.Error("autoplayer should restart a lost game")
	}
}

func TestRunWithSpeed(t *testing.T) {
	g := newGame(2)
	rep, err := Run(g, NewAutoplayer(), Options{Seconds: 2, Step: 0.1, Speed: config.SpeedFast})
	if err != nil {
		t.Fatal(err)
	}
	if g.Speed() != config.SpeedFast {
		t.Errorf("speed = %v", g.Speed())
	}
	if rep.Events[event.EnemySpawned] < 5 {
		t.Errorf("at 5x two seconds should spawn several enemies, got %d", rep.Events[event.EnemySpawned])
	}
}
