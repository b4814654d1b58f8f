package main

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/felixge/fgprof"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/glowgrid/akari/internal/board"
	"github.com/glowgrid/akari/internal/solver"
)

var (
	solveProfile bool
	solveFgprof  string
	solveTimes   bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve a puzzle from a board file",
		Long: `Read a board file and derive a full assignment. The file format is
one row per line: '_' blank, 'X' wall, '0'-'4' numbered wall, '*' bulb,
'.' mark. Bulbs and marks already in the file are kept.`,
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}
	solveCmd.Flags().BoolVar(&solveProfile, "profile", false, "Write a CPU profile")
	solveCmd.Flags().StringVar(&solveFgprof, "fgprof", "", "Serve fgprof on this address (e.g. :6060)")
	solveCmd.Flags().BoolVar(&solveTimes, "times", false, "Print per-phase timings")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	if solveProfile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}
	if solveFgprof != "" {
		http.DefaultServeMux.Handle("/debug/fgprof", fgprof.Handler())
		go func() {
			if err := http.ListenAndServe(solveFgprof, nil); err != nil {
				logrus.WithError(err).Warn("fgprof server stopped")
			}
		}()
	}

	b, err := board.FromFile(args[0])
	if err != nil {
		return err
	}

	start := time.Now()
	s := solver.New(b)
	s.Progress = make(chan solver.ProgressUpdate, b.Rows*b.Cols)
	var wg sync.WaitGroup
	wg.Add(1)
	go printUpdates(s.Progress, &wg)

	solved := s.Solve()
	close(s.Progress)
	wg.Wait()

	fmt.Println(b.String())
	if !solved {
		if _, reason := b.IsSolved(); reason != nil {
			fmt.Printf("Not solved (%v)\n", reason)
		} else {
			fmt.Println("Not solved")
		}
	}
	fmt.Printf("Total duration: %.4f\n", time.Since(start).Seconds())
	if solveTimes {
		fmt.Print(s.Watch.Results())
	}
	return nil
}

// printUpdates drains the solver's progress channel, redrawing a single
// bar line in place.
func printUpdates(ch <-chan solver.ProgressUpdate, wg *sync.WaitGroup) {
	defer wg.Done()
	fmt.Println("Starting...")
	for {
		select {
		case update, ok := <-ch:
			if !ok {
				return
			}
			bar := ""
			pct := float64(update.LitBlanks) / float64(update.TotalBlanks)
			for i := 0.05; i <= 1.0; i += 0.05 {
				if pct >= i {
					bar += "="
				} else {
					bar += "."
				}
			}
			fmt.Print("\033[1A\033[K")
			fmt.Printf("[%s] %d/%d (%s)\n", bar, update.LitBlanks, update.TotalBlanks, update.CurrentAction)
		default:
			time.Sleep(50 * time.Millisecond)
		}
	}
}
