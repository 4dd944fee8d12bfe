// Command doseresponse runs the Dose Response simulation core: with no
// arguments it starts a fresh, entropy-seeded game; its replay
// subcommand, given a replay log path, replays that session and verifies
// it against freshly computed state. Rendering, input, and audio are out
// of scope here — this binary drives the headless core per spec.md §6.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := newRootCommand(log).Execute(); err != nil {
		log.WithError(err).Error("doseresponse exited with an error")
		os.Exit(1)
	}
}
