package replay

import (
	"bytes"
	"io"
	"testing"

	"github.com/tryjumping/doseresponse/internal/engine"
	"github.com/tryjumping/doseresponse/internal/geom"
	"github.com/tryjumping/doseresponse/internal/world"
)

// TestCommandVerificationRoundTrip mirrors spec.md §8's boundary
// behavior: "JSON-serialize Command/Verification then parse => equal
// value."
func TestCommandVerificationRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteSeed(42); err != nil {
		t.Fatalf("WriteSeed: %v", err)
	}

	wantCmd := Command{Turn: 0, Command: engine.CommandE}
	wantVerification := Verification{
		Turn:       0,
		ChunkCount: 3,
		PlayerPos:  geom.Point{X: 1, Y: 0},
		Monsters: []MonsterSnapshot{
			{Pos: geom.Point{X: 5, Y: 5}, ChunkPos: geom.Point{X: 0, Y: 0}, Kind: world.Anxiety},
		},
	}
	if err := w.WriteCommand(wantCmd); err != nil {
		t.Fatalf("WriteCommand: %v", err)
	}
	if err := w.WriteVerification(wantVerification); err != nil {
		t.Fatalf("WriteVerification: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := NewReader(&buf)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if r.Seed() != 42 {
		t.Fatalf("expected seed 42, got %d", r.Seed())
	}

	cmd, v, err := r.Next()
	if err != nil || cmd == nil || v != nil {
		t.Fatalf("expected first line to decode as a Command, got cmd=%v v=%v err=%v", cmd, v, err)
	}
	if *cmd != wantCmd {
		t.Fatalf("command round-trip mismatch: got %+v, want %+v", *cmd, wantCmd)
	}

	cmd, v, err = r.Next()
	if err != nil || v == nil || cmd != nil {
		t.Fatalf("expected second line to decode as a Verification, got cmd=%v v=%v err=%v", cmd, v, err)
	}
	if len(Diff(wantVerification, *v)) != 0 {
		t.Fatalf("verification round-trip mismatch: got %+v, want %+v", *v, wantVerification)
	}

	if _, _, err := r.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF at end of stream, got %v", err)
	}
}

func TestNewVerification_SortsMonstersByPosThenKind(t *testing.T) {
	generate := func(seed uint32, coord geom.Point) *world.Chunk {
		chunk := &world.Chunk{Coord: coord}
		for x := 0; x < world.ChunkSide; x++ {
			for y := 0; y < world.ChunkSide; y++ {
				chunk.Cells[x][y] = world.Cell{Tile: world.Tile{Kind: world.TileEmpty}}
			}
		}
		return chunk
	}
	w := world.NewWorld(1, generate)
	chunk := w.EnsureChunk(geom.Point{})
	chunk.Monsters = append(chunk.Monsters,
		&world.Monster{ID: 2, Kind: world.Depression, Position: geom.Point{X: 3, Y: 0}},
		&world.Monster{ID: 1, Kind: world.Anxiety, Position: geom.Point{X: 1, Y: 0}},
		&world.Monster{ID: 3, Kind: world.Anxiety, Position: geom.Point{X: 1, Y: 5}},
	)

	v := NewVerification(7, w, geom.Point{X: 0, Y: 0})

	if len(v.Monsters) != 3 {
		t.Fatalf("expected 3 monsters, got %d", len(v.Monsters))
	}
	for i := 1; i < len(v.Monsters); i++ {
		a, b := v.Monsters[i-1], v.Monsters[i]
		less := a.Pos.X < b.Pos.X ||
			(a.Pos.X == b.Pos.X && a.Pos.Y < b.Pos.Y) ||
			(a.Pos.X == b.Pos.X && a.Pos.Y == b.Pos.Y && a.Kind <= b.Kind)
		if !less {
			t.Fatalf("monsters not sorted by (pos.x, pos.y, kind): %+v", v.Monsters)
		}
	}
}

func TestDiff_ReportsEveryMismatchedField(t *testing.T) {
	want := Verification{Turn: 1, ChunkCount: 2, PlayerPos: geom.Point{X: 0, Y: 0}}
	got := Verification{Turn: 2, ChunkCount: 3, PlayerPos: geom.Point{X: 1, Y: 1}}

	mismatches := Diff(want, got)
	if len(mismatches) != 3 {
		t.Fatalf("expected 3 mismatches (turn, chunk_count, player_pos), got %d: %+v", len(mismatches), mismatches)
	}
}
