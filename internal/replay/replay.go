// Package replay reads and writes the turn log a session leaves behind:
// a decimal seed line followed by an interleaved stream of Commands and
// Verifications, one JSON object per line. It is grounded on the
// teacher's server/network/messages.go (small tagged structs marshaled
// independently, no shared envelope) and server/network/protocol.go's
// HandleClient read loop (parse-or-skip per line), adapted from a single
// WebSocket connection to a flat file. Rotated logs are compressed with
// github.com/klauspost/compress/zstd, following oriumgames-pile's
// format/io.go use of the same package for its world snapshots.
package replay

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/tryjumping/doseresponse/internal/engine"
	"github.com/tryjumping/doseresponse/internal/geom"
	"github.com/tryjumping/doseresponse/internal/world"
)

// Command is one logged player action, keyed by turn so a mismatch in
// replay mode can be reported against the exact turn it diverged on.
type Command struct {
	Turn    int           `json:"turn"`
	Command engine.Command `json:"command"`
}

// MonsterSnapshot is one monster's identity and position at the moment a
// Verification was captured.
type MonsterSnapshot struct {
	Pos      geom.Point       `json:"pos"`
	ChunkPos geom.Point       `json:"chunk_pos"`
	Kind     world.MonsterKind `json:"kind"`
}

// Verification is the deterministic snapshot spec.md §4.I defines:
// captured every turn the player spends AP (always in debug builds,
// logged here unconditionally since this package doesn't distinguish
// build modes — the caller decides whether to call WriteVerification).
type Verification struct {
	Turn       int               `json:"turn"`
	ChunkCount int               `json:"chunk_count"`
	PlayerPos  geom.Point        `json:"player_pos"`
	Monsters   []MonsterSnapshot `json:"monsters"`
}

// sortMonsters orders snapshots by (pos.x, pos.y, kind), the order
// spec.md §4.I pins so two independently computed Verifications compare
// equal regardless of map iteration order.
func sortMonsters(snapshots []MonsterSnapshot) {
	sort.Slice(snapshots, func(i, j int) bool {
		a, b := snapshots[i], snapshots[j]
		if a.Pos.X != b.Pos.X {
			return a.Pos.X < b.Pos.X
		}
		if a.Pos.Y != b.Pos.Y {
			return a.Pos.Y < b.Pos.Y
		}
		return a.Kind < b.Kind
	})
}

// NewVerification builds a Verification from live engine state, sorting
// its monster list per spec.md §4.I.
func NewVerification(turn int, w *world.World, playerPos geom.Point) Verification {
	var monsters []MonsterSnapshot
	for _, coord := range w.PositionsOfAllChunks() {
		chunk, ok := w.Chunk(coord)
		if !ok {
			continue
		}
		for _, m := range chunk.Monsters {
			if m.Dead {
				continue
			}
			monsters = append(monsters, MonsterSnapshot{Pos: m.Position, ChunkPos: coord, Kind: m.Kind})
		}
	}
	sortMonsters(monsters)
	return Verification{
		Turn:       turn,
		ChunkCount: len(w.PositionsOfAllChunks()),
		PlayerPos:  playerPos,
		Monsters:   monsters,
	}
}

// Mismatch describes one field that differs between two Verifications of
// the same turn.
type Mismatch struct {
	Field string
	Want  string
	Got   string
}

// Diff compares two Verifications field by field, returning every
// mismatch rather than stopping at the first, so a replay report can
// enumerate everything that diverged per spec.md §4.I.
func Diff(want, got Verification) []Mismatch {
	var mismatches []Mismatch
	if want.Turn != got.Turn {
		mismatches = append(mismatches, Mismatch{"turn", fmt.Sprint(want.Turn), fmt.Sprint(got.Turn)})
	}
	if want.ChunkCount != got.ChunkCount {
		mismatches = append(mismatches, Mismatch{"chunk_count", fmt.Sprint(want.ChunkCount), fmt.Sprint(got.ChunkCount)})
	}
	if want.PlayerPos != got.PlayerPos {
		mismatches = append(mismatches, Mismatch{"player_pos", fmt.Sprint(want.PlayerPos), fmt.Sprint(got.PlayerPos)})
	}
	if len(want.Monsters) != len(got.Monsters) {
		mismatches = append(mismatches, Mismatch{"monsters.len", fmt.Sprint(len(want.Monsters)), fmt.Sprint(len(got.Monsters))})
		return mismatches
	}
	for i := range want.Monsters {
		if want.Monsters[i] != got.Monsters[i] {
			mismatches = append(mismatches, Mismatch{
				Field: fmt.Sprintf("monsters[%d]", i),
				Want:  fmt.Sprintf("%+v", want.Monsters[i]),
				Got:   fmt.Sprintf("%+v", got.Monsters[i]),
			})
		}
	}
	return mismatches
}

// entry is the line-format discriminant: a line decodes as a Command if
// it has a "command" field, else it's treated as a Verification, per
// spec.md §4.I's "a parser must try Command first; on failure, treat the
// line as a Verification."
type entry struct {
	IsCommand    bool
	Command      Command
	Verification Verification
}

func decodeLine(line []byte) (entry, error) {
	var probe struct {
		Command *engine.Command `json:"command"`
	}
	if err := json.Unmarshal(line, &probe); err == nil && probe.Command != nil {
		var cmd Command
		if err := json.Unmarshal(line, &cmd); err != nil {
			return entry{}, fmt.Errorf("decode command: %w", err)
		}
		return entry{IsCommand: true, Command: cmd}, nil
	}
	var v Verification
	if err := json.Unmarshal(line, &v); err != nil {
		return entry{}, fmt.Errorf("decode verification: %w", err)
	}
	return entry{IsCommand: false, Verification: v}, nil
}

// Writer appends a session's seed line, then Commands and Verifications
// as they happen, to an underlying stream. It does not itself compress;
// callers writing to a rotated log file should wrap w in a zstd encoder
// (see NewCompressedWriter).
type Writer struct {
	w          *bufio.Writer
	wroteSeed  bool
	underlying io.Writer
	closer     io.Closer
}

// NewWriter wraps w for plain (uncompressed) replay logging, e.g. a
// live session's in-progress log file.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w), underlying: w}
}

// NewCompressedWriter wraps w with a zstd encoder, for rotated replay
// logs written once a session ends (spec.md's "replays/*.zst").
func NewCompressedWriter(w io.Writer) (*Writer, error) {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	return &Writer{w: bufio.NewWriter(enc), underlying: enc, closer: enc}, nil
}

// WriteSeed writes the mandatory first line: the decimal world seed.
func (rw *Writer) WriteSeed(seed uint32) error {
	if rw.wroteSeed {
		return fmt.Errorf("seed already written")
	}
	rw.wroteSeed = true
	_, err := fmt.Fprintln(rw.w, seed)
	return err
}

// WriteCommand logs one spent-AP player action.
func (rw *Writer) WriteCommand(c Command) error {
	return rw.writeJSON(c)
}

// WriteVerification logs one per-turn snapshot. Callers gate this behind
// a debug-build flag per spec.md's "omitted in release builds to save
// space" guidance; this package always writes what it's told to.
func (rw *Writer) WriteVerification(v Verification) error {
	return rw.writeJSON(v)
}

func (rw *Writer) writeJSON(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := rw.w.Write(data); err != nil {
		return err
	}
	return rw.w.WriteByte('\n')
}

// Close flushes buffered output and, for a compressed writer, closes the
// underlying zstd encoder.
func (rw *Writer) Close() error {
	if err := rw.w.Flush(); err != nil {
		return err
	}
	if rw.closer != nil {
		return rw.closer.Close()
	}
	return nil
}

// Reader streams a replay log's seed, Commands, and Verifications back
// out in file order.
type Reader struct {
	scanner *bufio.Scanner
	seed    uint32
	closer  io.Closer
}

// NewReader opens a plain (uncompressed) replay stream and reads its
// seed line immediately.
func NewReader(r io.Reader) (*Reader, error) {
	return newReader(bufio.NewScanner(r), nil)
}

// NewCompressedReader opens a zstd-compressed replay stream.
func NewCompressedReader(r io.Reader) (*Reader, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	return newReader(bufio.NewScanner(dec), closerFunc(dec.Close))
}

// closerFunc adapts zstd.Decoder.Close (which returns nothing) to
// io.Closer.
type closerFunc func()

func (f closerFunc) Close() error {
	f()
	return nil
}

func newReader(scanner *bufio.Scanner, closer io.Closer) (*Reader, error) {
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !scanner.Scan() {
		return nil, fmt.Errorf("read seed line: %w", scanner.Err())
	}
	seed, err := strconv.ParseUint(strings.TrimSpace(scanner.Text()), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return &Reader{scanner: scanner, seed: uint32(seed), closer: closer}, nil
}

// Seed returns the world seed read from the log's first line.
func (r *Reader) Seed() uint32 {
	return r.seed
}

// Next decodes the next line as either a Command or a Verification. It
// returns io.EOF once the stream is exhausted.
func (r *Reader) Next() (cmd *Command, verification *Verification, err error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return nil, nil, err
		}
		return nil, nil, io.EOF
	}
	line := r.scanner.Bytes()
	if len(strings.TrimSpace(string(line))) == 0 {
		return r.Next()
	}
	e, err := decodeLine(line)
	if err != nil {
		return nil, nil, err
	}
	if e.IsCommand {
		return &e.Command, nil, nil
	}
	return nil, &e.Verification, nil
}

// Close releases the underlying decompressor, if any.
func (r *Reader) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}
