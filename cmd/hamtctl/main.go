// Command hamtctl is a small diagnostic tool for the hamt package: it
// builds a Map from synthetic data and reports its entry count, checks it
// under concurrent readers, and can diff the key sets of two
// independently-built Maps.
package main

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	hamt "github.com/gil-shafran/go-phamt"
	"github.com/gil-shafran/go-phamt/keys"
)

func main() {
	root := &cobra.Command{
		Use:   "hamtctl",
		Short: "inspect and exercise the hamt package",
	}
	root.AddCommand(buildCmd(), benchCmd(), diffCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func buildCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "build",
		Short: "build a Map of N random string keys and report its size",
		RunE: func(cmd *cobra.Command, args []string) error {
			if n <= 0 {
				return errors.New("build: -n must be positive")
			}
			m, err := buildRandom(n)
			if err != nil {
				return errors.Wrap(err, "build")
			}
			fmt.Fprintf(os.Stdout, "entries: %d\n", m.Size())
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 1000, "number of entries to insert")
	return cmd
}

func benchCmd() *cobra.Command {
	var n, readers int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "build a Map then hammer it with concurrent readers",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := buildRandom(n)
			if err != nil {
				return errors.Wrap(err, "bench")
			}
			allKeys := m.Keys()

			var g errgroup.Group
			for i := 0; i < readers; i++ {
				g.Go(func() error {
					for _, k := range allKeys {
						if !m.Contains(k) {
							return errors.Errorf("bench: reader lost key %v", k)
						}
					}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "%d readers each confirmed all %d entries\n", readers, len(allKeys))
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 1000, "number of entries to insert")
	cmd.Flags().IntVarP(&readers, "readers", "r", 8, "number of concurrent readers")
	return cmd
}

func diffCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "build two random Maps of the same size and report key overlap",
		RunE: func(cmd *cobra.Command, args []string) error {
			var a, b hamt.Map[int]
			var buildErr error
			var wg sync.WaitGroup
			wg.Add(2)
			go func() { defer wg.Done(); a, buildErr = buildRandom(n) }()
			go func() {
				defer wg.Done()
				var err error
				b, err = buildRandom(n)
				if err != nil && buildErr == nil {
					buildErr = err
				}
			}()
			wg.Wait()
			if buildErr != nil {
				return errors.Wrap(buildErr, "diff")
			}

			shared := 0
			for _, k := range a.Keys() {
				if b.Contains(k) {
					shared++
				}
			}
			fmt.Fprintf(os.Stdout, "a: %d entries, b: %d entries, shared keys: %d\n", a.Size(), b.Size(), shared)
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 1000, "number of entries per side")
	return cmd
}

func buildRandom(n int) (hamt.Map[int], error) {
	if n < 0 {
		return hamt.Empty[int](), errors.New("count must be non-negative")
	}
	m := hamt.Empty[int]()
	for i := 0; i < n; i++ {
		m = m.Insert(keys.StringKey(gofakeit.UUID()), i)
	}
	return m, nil
}
