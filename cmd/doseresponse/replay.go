package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tryjumping/doseresponse/internal/replay"
)

// maxDrainTicksPerCommand bounds how many Update calls runReplay will
// spend waiting for an in-flight animation to clear before giving up on
// a single queued command, so a stuck animation can't hang replay mode.
const maxDrainTicksPerCommand = 1000

func newReplayCommand(log *logrus.Logger, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <path>",
		Short: "Replay a recorded session and verify it against a fresh run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if lvl, err := logrus.ParseLevel(*logLevel); err == nil {
				log.SetLevel(lvl)
			}
			return runReplay(log, args[0])
		},
	}
}

// runReplay implements spec.md §4.I's replay mode: read the seed, create
// a fresh World from it, then feed each logged Command through the same
// pipeline runHeadless uses, asserting structural equality against every
// logged Verification along the way. Any mismatch is reported in full
// and the process exits non-zero — replay divergence is an invariant
// violation per spec.md §7, not a recoverable content error.
func runReplay(log *logrus.Logger, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open replay log %q: %w", path, err)
	}
	defer f.Close()

	var r *replay.Reader
	if strings.HasSuffix(path, ".zst") {
		r, err = replay.NewCompressedReader(f)
	} else {
		r, err = replay.NewReader(f)
	}
	if err != nil {
		return fmt.Errorf("read replay log %q: %w", path, err)
	}
	defer r.Close()

	seed := r.Seed()
	state := newGame(log, seed)
	log.WithField("seed", seed).Info("replay started")

	mismatches := 0
	for {
		cmd, want, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read replay entry: %w", err)
		}

		if cmd != nil {
			state.EnqueueCommand(cmd.Command)
			// Drain animations and the forced-action gate until this
			// command is actually spent, matching spec.md §5: a queued
			// command waits behind any in-flight animation.
			for i := 0; i < maxDrainTicksPerCommand; i++ {
				if spent := state.Update(16*time.Millisecond, log); spent != nil {
					break
				}
			}
			continue
		}

		got := replay.NewVerification(want.Turn, state.World, state.Player.Pos())
		if diff := replay.Diff(*want, got); len(diff) > 0 {
			mismatches++
			log.WithField("turn", want.Turn).Error("replay verification mismatch")
			for _, m := range diff {
				log.WithFields(logrus.Fields{"field": m.Field, "want": m.Want, "got": m.Got}).Error("mismatched field")
			}
		}
	}

	if mismatches > 0 {
		panic(fmt.Sprintf("replay diverged from the recorded session: %d mismatched verification(s)", mismatches))
	}
	log.Info("replay matched the recorded session exactly")
	return nil
}
