package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-shooter/internal/assets"
	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/storage"
)

// fakeGame records the frames it is stepped with. It ends the session once
// endAfter steps have run and restarts on ActionRestart.
type fakeGame struct {
	frames   []core.InputFrame
	events   []core.Event
	state    core.GameState
	endAfter int
	resized  [2]int
	resets   int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Lives: 3, Level: 1}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	if g.state.GameOver {
		if in.Has(core.ActionRestart) {
			g.state = core.GameState{Lives: 3, Level: 1}
		}
		return core.StepResult{State: g.state}
	}
	g.state.Score += 10
	if g.endAfter > 0 && len(g.frames) >= g.endAfter {
		g.state.GameOver = true
		g.state.Level = 2
		g.state.Lives = 0
	}
	events := g.events
	g.events = nil
	return core.StepResult{State: g.state, Events: events}
}

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake game") }
func (g *fakeGame) State() core.GameState   { return g.state }
func (g *fakeGame) Resize(w, h int)         { g.resized = [2]int{w, h} }
func (g *fakeGame) Survived() time.Duration { return 1500 * time.Millisecond }
func (g *fakeGame) Kills() int              { return 4 }

type recordingPlayer struct {
	played []string
	music  []string
}

func (p *recordingPlayer) Play(s *assets.Sound)      { p.played = append(p.played, s.Name) }
func (p *recordingPlayer) PlayMusic(s *assets.Sound) { p.music = append(p.music, "start:"+s.Name) }
func (p *recordingPlayer) StopMusic()                { p.music = append(p.music, "stop") }
func (p *recordingPlayer) Close()                    {}

var testCfg = core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 7}

// tick delivers one tick of the model's own loop at the given time.
func tick(t *testing.T, m Model, at time.Time) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{At: at, loop: m.loop})
	return next.(Model)
}

func TestModelElapsedFromTicks(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testCfg, Options{})
	m.Init()

	t0 := time.Unix(1000, 0)
	m = tick(t, m, t0)
	m = tick(t, m, t0.Add(16*time.Millisecond))
	m = tick(t, m, t0.Add(50*time.Millisecond))

	want := []time.Duration{0, 16 * time.Millisecond, 34 * time.Millisecond}
	for i, w := range want {
		if g.frames[i].Elapsed != w {
			t.Errorf("frame %d Elapsed = %v, expected %v", i, g.frames[i].Elapsed, w)
		}
	}
}

func TestModelIgnoresForeignTicks(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testCfg, Options{})
	m.Init()

	next, cmd := m.Update(TickMsg{At: time.Unix(1000, 0), loop: m.loop + 1})
	if cmd != nil || len(g.frames) != 0 {
		t.Error("tick from another loop should be ignored")
	}
	_ = next
}

func TestModelHeldKeysReachGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testCfg, Options{HoldWindow: 100 * time.Millisecond})
	m.Init()

	now := time.Now()
	next, _ := m.handleKey(runeKey('a'), now)
	m = next.(Model)
	next, _ = m.handleKey(spaceKey, now)
	m = next.(Model)

	m = tick(t, m, now.Add(10*time.Millisecond))
	m = tick(t, m, now.Add(300*time.Millisecond))

	if !g.frames[0].Has(core.ActionLeft) || !g.frames[0].Has(core.ActionFire) {
		t.Errorf("first frame actions = %v, expected Left and Fire", g.frames[0].Actions)
	}
	if len(g.frames[1].Actions) != 0 {
		t.Errorf("second frame actions = %v, expected none after the hold window", g.frames[1].Actions)
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{endAfter: 3}
	m := NewModel(g, testCfg, Options{Store: store, Player: "ana"})
	m.Init()

	now := time.Unix(1000, 0)
	for i := range 6 {
		m = tick(t, m, now.Add(time.Duration(i)*16*time.Millisecond))
	}

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, expected 1", len(scores))
	}
	got := scores[0]
	if got.Score != 30 || got.Level != 2 || got.Kills != 4 || got.Player != "ana" || got.Duration != 1500*time.Millisecond {
		t.Errorf("saved entry = %+v", got)
	}

	// Restart and end again: a second entry
	next, _ := m.handleKey(spaceKey, now.Add(time.Second))
	m = next.(Model)
	m = tick(t, m, now.Add(time.Second+10*time.Millisecond))
	g.frames = g.frames[:0]
	for i := range 4 {
		m = tick(t, m, now.Add(time.Second+time.Duration(i+1)*16*time.Millisecond))
	}

	scores, _ = store.TopScores("fake", 10)
	if len(scores) != 2 {
		t.Errorf("saved %d scores after second game, expected 2", len(scores))
	}
}

func TestModelHeldFireDoesNotRestart(t *testing.T) {
	g := &fakeGame{endAfter: 2}
	m := NewModel(g, testCfg, Options{})
	m.Init()

	// Fire is held through the end of the session: the terminal repeats
	// space every 30ms.
	t0 := time.Unix(1000, 0)
	for i := range 40 {
		at := t0.Add(time.Duration(i) * 30 * time.Millisecond)
		next, _ := m.handleKey(spaceKey, at)
		m = next.(Model)
		m = tick(t, m, at.Add(15*time.Millisecond))
	}
	if !m.State().GameOver {
		t.Fatal("a held fire key restarted the finished session")
	}

	// Released, then pressed again
	at := t0.Add(40*30*time.Millisecond + time.Second)
	next, _ := m.handleKey(spaceKey, at)
	m = next.(Model)
	m = tick(t, m, at.Add(15*time.Millisecond))
	if m.State().GameOver {
		t.Error("a fresh space press should restart")
	}
}

func TestModelRestartKeyIsImmediate(t *testing.T) {
	g := &fakeGame{endAfter: 1}
	m := NewModel(g, testCfg, Options{})
	m.Init()

	t0 := time.Unix(1000, 0)
	m = tick(t, m, t0)
	if !m.State().GameOver {
		t.Fatal("session should be over after one step")
	}
	next, _ := m.handleKey(runeKey('r'), t0.Add(20*time.Millisecond))
	m = next.(Model)
	m = tick(t, m, t0.Add(30*time.Millisecond))
	if m.State().GameOver {
		t.Error("r should restart right after game over")
	}
}

func TestModelSounds(t *testing.T) {
	g := &fakeGame{endAfter: 2}
	g.events = []core.Event{
		{Kind: core.EventLaserFired},
		{Kind: core.EventExplosion},
		{Kind: core.EventExplosion},
		{Kind: core.EventMeteorDestroyed},
	}
	player := &recordingPlayer{}
	m := NewModel(g, testCfg, Options{Audio: player, Assets: assets.Placeholders()})
	m.Init()

	now := time.Unix(1000, 0)
	m = tick(t, m, now)
	m = tick(t, m, now.Add(16*time.Millisecond))

	if strings.Join(player.played, ",") != "laser,explosion" {
		t.Errorf("played = %v, expected [laser explosion]", player.played)
	}
	if strings.Join(player.music, ",") != "start:music,stop" {
		t.Errorf("music = %v, expected start then stop at game over", player.music)
	}
}

func TestModelQuitAndBack(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testCfg, Options{})
	m.Init()

	// b is ignored while playing
	next, _ := m.handleKey(runeKey('b'), time.Now())
	m = next.(Model)
	if m.BackToMenu() {
		t.Error("b should not leave a running game")
	}

	m.gameState.Paused = true
	next, _ = m.handleKey(runeKey('b'), time.Now())
	m = next.(Model)
	if !m.BackToMenu() {
		t.Error("b should return to the menu while paused")
	}
	if m.View() != "" {
		t.Error("View() should be empty after leaving")
	}

	m2 := NewModel(&fakeGame{}, testCfg, Options{})
	next, cmd := m2.handleKey(runeKey('q'), time.Now())
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelResize(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testCfg, Options{})
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if g.resized != [2]int{100, 30} {
		t.Errorf("Resize() got %v, expected [100 30]", g.resized)
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, a resizable game should not be reset", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(&fakeGame{}, testCfg, Options{ScreenshotDir: dir})
	m.Init()

	path, err := m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot() failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "fake game") {
		t.Errorf("screenshot starts with %q", strings.SplitN(string(data), "\n", 2)[0])
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "HI", core.ColorRed)
	s.DrawText(3, 1, "ok")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() has %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "HI") || !strings.Contains(lines[1], "ok") {
		t.Errorf("RenderScreen() = %q", out)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{1500 * time.Millisecond, "0:02"},
		{75 * time.Second, "1:15"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, expected %q", tt.d, got, tt.want)
		}
	}
}
