package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/termkit/cache"
	"gitlab.com/tinyland/lab/termkit/internal/format"
)

func newCacheCmd(g *globalOptions) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and clean the render cache",
	}
	cmd.PersistentFlags().StringVar(&dir, "cache-dir", "", "cache directory (default: user cache dir)")

	open := func(cmd *cobra.Command) (*cache.Store, error) {
		d := dir
		if d == "" {
			var err error
			if d, err = cache.DefaultDir(); err != nil {
				return nil, err
			}
		}
		return cache.NewStore(d, newLogger(cmd.ErrOrStderr(), g.verbose))
	}

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show the number and size of cached renders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := open(cmd)
			if err != nil {
				return err
			}
			st, err := store.Stats()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "entries: %d\n", st.Entries)
			fmt.Fprintf(out, "size:    %s\n", humanize.IBytes(uint64(st.Bytes)))
			fmt.Fprintf(out, "oldest:  %s\n", format.FormatAge(st.Oldest, time.Now()))
			return nil
		},
	}

	var ttl time.Duration
	prune := &cobra.Command{
		Use:   "prune",
		Short: "Remove cached renders older than --ttl",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := open(cmd)
			if err != nil {
				return err
			}
			n, err := store.Prune(ttl)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d entries older than %s\n", n, format.FormatDuration(ttl))
			return nil
		},
	}
	prune.Flags().DurationVar(&ttl, "ttl", defaultCacheTTL, "age after which an entry is removed")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached render",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := open(cmd)
			if err != nil {
				return err
			}
			return store.Clear()
		},
	}

	cmd.AddCommand(stats, prune, clearCmd)
	return cmd
}
