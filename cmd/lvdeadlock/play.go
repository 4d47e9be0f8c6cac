package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdeadlock/scores"
	"github.com/katalvlaran/lvdeadlock/simulator"
)

type playOptions struct {
	game   gameFlags
	level  int
	order  []int
	ticks  int
	scores string
}

func newPlayCmd(o *rootOptions) *cobra.Command {
	var p playOptions

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a level by running processes in a given order",
		Long: `play loads a level and, for each process in --order, selects it and tries
to run it to completion. Rejected moves are reported and leave the state
unchanged. --ticks advances the countdown after every step. The final
score is recorded in --scores when given.`,
		Example: `  lvdeadlock play --level 1 --order 1,0
  lvdeadlock play --level 3 --seed 42 --order 0,1,2,3,4 --ticks 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, o, &p)
		},
	}
	p.game.register(cmd)
	cmd.Flags().IntVar(&p.level, "level", 1, "level number")
	cmd.Flags().IntSliceVar(&p.order, "order", nil, "process indices to execute, in order")
	cmd.Flags().IntVar(&p.ticks, "ticks", 0, "countdown seconds elapsed after each step")
	cmd.Flags().StringVar(&p.scores, "scores", "", "YAML high score file to record the result in")
	_ = cmd.MarkFlagRequired("order")

	return cmd
}

func runPlay(cmd *cobra.Command, o *rootOptions, p *playOptions) error {
	if p.ticks < 0 {
		return errors.New("play: --ticks must not be negative")
	}
	g, err := p.game.newGame(o)
	if err != nil {
		return err
	}
	if _, err = g.LoadLevel(p.level); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	pr := o.printer(cmd)
	pr.Snapshot(g.Snapshot())

	for step, proc := range p.order {
		if !playStep(out, g, step+1, proc) {
			break
		}
		if over := advance(out, g, p.ticks); over {
			break
		}
	}

	// A stalled level ends the way the trainer ends it: by an explicit
	// safety check.
	if g.Phase() == simulator.PhaseLoaded || g.Phase() == simulator.PhaseRunning {
		if _, err := g.CheckSafety(); err != nil {
			fmt.Fprintf(out, "Game over: %s\n", g.Reason())
		}
	}

	snap := g.Snapshot()
	pr.Snapshot(snap)
	switch snap.Phase {
	case simulator.PhaseLevelComplete:
		fmt.Fprintf(out, "Level %d complete. Time bonus %d, score %d.\n", snap.Level, snap.LevelBonus, snap.Score)
	case simulator.PhaseGameOver:
		fmt.Fprintf(out, "Final score %d.\n", snap.Score)
	default:
		fmt.Fprintf(out, "%d process(es) left. Score %d.\n", snap.Remaining(), snap.Score)
	}

	if p.scores == "" {
		return nil
	}

	return recordScore(out, o, p.scores, snap.Score)
}

// playStep selects and executes proc. It reports whether play continues.
func playStep(out io.Writer, g *simulator.Game, step, proc int) bool {
	if err := g.SelectProcess(proc); err != nil {
		fmt.Fprintf(out, "%d. P%d: %s\n", step, proc, describe(err))
		return !errors.Is(err, simulator.ErrGameOver) && !errors.Is(err, simulator.ErrLevelComplete)
	}
	snap, err := g.Execute()
	if err != nil {
		fmt.Fprintf(out, "%d. P%d: %s\n", step, proc, describe(err))
		g.ClearSelection()
		return !errors.Is(err, simulator.ErrGameOver)
	}
	fmt.Fprintf(out, "%d. P%d: completed, available %v, score %d\n", step, proc, snap.Available, snap.Score)

	return snap.Phase != simulator.PhaseLevelComplete
}

// advance ticks the countdown n times. It reports whether time ran out.
func advance(out io.Writer, g *simulator.Game, n int) bool {
	for k := 0; k < n; k++ {
		if reason, over := g.Tick(); over {
			fmt.Fprintf(out, "Game over: %s\n", reason)
			return true
		}
	}

	return false
}

// describe turns a rejected move into the message the trainer shows.
func describe(err error) string {
	switch {
	case errors.Is(err, simulator.ErrInsufficientResources):
		return "rejected, not enough resources available"
	case errors.Is(err, simulator.ErrUnsafeTransition):
		return "rejected, would lead to an unsafe state"
	case errors.Is(err, simulator.ErrProcessCompleted):
		return "already completed"
	case errors.Is(err, simulator.ErrProcessOutOfRange):
		return "no such process"
	default:
		return err.Error()
	}
}

// recordScore adds score to the board at path.
func recordScore(out io.Writer, o *rootOptions, path string, score int) error {
	b, err := scores.LoadFile(path)
	if err != nil {
		return err
	}
	rank, kept := b.Record(score, o.now())
	if !kept {
		fmt.Fprintf(out, "Score %d did not make the top %d.\n", score, scores.MaxEntries)
		return nil
	}
	if err := b.SaveFile(path); err != nil {
		return err
	}
	fmt.Fprintf(out, "New high score #%d.\n", rank)

	return nil
}
