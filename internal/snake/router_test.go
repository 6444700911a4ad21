package snake

import "testing"

func TestRouterMovementKeys(t *testing.T) {
	tests := []struct {
		key      string
		expected Direction
	}{
		{"w", DirUp},
		{"up", DirUp},
		{"s", DirDown},
		{"down", DirDown},
		{"d", DirRight},
		{"right", DirRight},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			g := newTestGame(t)
			r := NewRouter(g, DefaultBindings())

			action := r.OnKey(tc.key)
			if action != ActionMove {
				t.Errorf("OnKey(%q) = %v, expected Move", tc.key, action)
			}
			if g.Direction() != tc.expected {
				t.Errorf("Direction = %v, expected %v", g.Direction(), tc.expected)
			}
		})
	}
}

func TestRouterRejectsReversal(t *testing.T) {
	g := newTestGame(t)
	r := NewRouter(g, DefaultBindings())

	if action := r.OnKey("a"); action != ActionNone {
		t.Errorf("OnKey(a) while heading Right = %v, expected None", action)
	}
	if g.Direction() != DirRight {
		t.Errorf("Direction = %v, expected Right", g.Direction())
	}
}

func TestRouterIgnoresUnmappedKeys(t *testing.T) {
	g := newTestGame(t)
	r := NewRouter(g, DefaultBindings())

	for _, key := range []string{"x", "enter", " ", "r"} {
		if action := r.OnKey(key); action != ActionNone {
			t.Errorf("OnKey(%q) = %v, expected None", key, action)
		}
	}
	if g.Direction() != DirRight || g.GameOver() {
		t.Error("Unmapped keys should not change the game")
	}
}

func TestRouterRestartOnlyWhenOver(t *testing.T) {
	g := newTestGame(t)
	r := NewRouter(g, DefaultBindings())

	g.snake = []Position{{X: 29, Y: 5}}
	g.Tick()
	if !g.GameOver() {
		t.Fatal("Expected game over")
	}

	if action := r.OnKey("w"); action != ActionNone {
		t.Errorf("Movement while game over = %v, expected None", action)
	}
	if g.Direction() != DirRight {
		t.Error("Direction changed while game over")
	}

	if action := r.OnKey("r"); action != ActionRestart {
		t.Errorf("OnKey(r) while game over = %v, expected Restart", action)
	}
	if g.GameOver() || g.Head() != (Position{X: 5, Y: 5}) {
		t.Error("Restart did not reset the game")
	}
}

func TestRouterCustomBindings(t *testing.T) {
	g := newTestGame(t)
	r := NewRouter(g, Bindings{
		Moves:   map[string]Direction{"k": DirUp},
		Restart: []string{"enter"},
	})

	if action := r.OnKey("w"); action != ActionNone {
		t.Errorf("Default key should be unbound, got %v", action)
	}
	if action := r.OnKey("k"); action != ActionMove || g.Direction() != DirUp {
		t.Errorf("Custom binding not applied: action=%v dir=%v", action, g.Direction())
	}
	if d, ok := r.DirectionFor("k"); !ok || d != DirUp {
		t.Errorf("DirectionFor(k) = %v, %v", d, ok)
	}
}
