package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tryjumping/doseresponse/internal/engine"
	"github.com/tryjumping/doseresponse/internal/generation"
	"github.com/tryjumping/doseresponse/internal/geom"
	"github.com/tryjumping/doseresponse/internal/player"
	"github.com/tryjumping/doseresponse/internal/replay"
	"github.com/tryjumping/doseresponse/internal/world"
	"github.com/tryjumping/doseresponse/internal/xrand"
)

// newRootCommand builds the doseresponse CLI: the root command starts a
// fresh game (seeded from entropy, or --seed if given); the replay
// subcommand loads a recorded session and verifies it. Grounded on
// spec.md §6's CLI contract ("with no argument, start a fresh game
// seeded from entropy; with a path argument, replay that file").
func newRootCommand(log *logrus.Logger) *cobra.Command {
	var (
		seed           uint32
		headlessTurns  int
		logLevel       string
	)

	root := &cobra.Command{
		Use:   "doseresponse",
		Short: "Run the Dose Response simulation core headlessly",
		RunE: func(cmd *cobra.Command, args []string) error {
			if lvl, err := logrus.ParseLevel(logLevel); err == nil {
				log.SetLevel(lvl)
			}
			if seed == 0 {
				seed = uint32(time.Now().UnixNano())
			}
			return runHeadless(log, seed, headlessTurns, nil)
		},
	}
	root.Flags().Uint32Var(&seed, "seed", 0, "world seed (0 picks one from entropy)")
	root.Flags().IntVar(&headlessTurns, "headless-turns", 200, "number of player turns to simulate before exiting")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(newReplayCommand(log, &logLevel))
	return root
}

// newGame wires a fresh World/Player/State for the given seed, mirroring
// the teacher's main.go init sequence (log each stage of setup) but
// through logrus fields instead of bare log.Printf calls.
func newGame(log *logrus.Logger, seed uint32) *engine.State {
	streams := xrand.NewStreams(seed)
	w := world.NewWorld(seed, generation.Generate)
	spawn := geom.Point{X: 0, Y: 0}
	w.EnsureChunk(world.ChunkCoordOf(spawn))
	p := player.New(spawn, false)
	log.WithFields(logrus.Fields{"seed": seed, "session_id": w.SessionID()}).Info("new game started")
	return engine.NewState(w, p, streams.AI)
}

// runHeadless drives a fresh game, enqueueing the commands in feed one
// per tick, until a spent command's turn number reaches maxTurns or the
// game has resolved with no fade in progress. It writes no replay log;
// replay mode (runReplay) has its own loop.
func runHeadless(log *logrus.Logger, seed uint32, maxTurns int, feed []engine.Command) error {
	state := newGame(log, seed)

	var driveCommands []engine.Command
	driveCommands = append(driveCommands, feed...)

	turn := 0
	for turn < maxTurns {
		if len(driveCommands) > 0 {
			state.EnqueueCommand(driveCommands[0])
			driveCommands = driveCommands[1:]
		}
		spent := state.Update(16*time.Millisecond, log)
		if spent != nil {
			turn = spent.Turn
		}
		if state.Side != engine.SideInProgress && state.Fade == nil {
			break
		}
	}

	v := replay.NewVerification(state.Turn, state.World, state.Player.Pos())
	log.WithFields(logrus.Fields{
		"turn":        v.Turn,
		"chunk_count": v.ChunkCount,
		"player_pos":  fmt.Sprintf("%+v", v.PlayerPos),
		"side":        state.Side,
	}).Info("headless run finished")
	return nil
}
