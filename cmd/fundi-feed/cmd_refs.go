package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fundi/internal/adapters/recents"
	"fundi/internal/core/feed"
)

var flagForceRefresh bool

var refsCmd = &cobra.Command{
	Use:   "refs",
	Short: "Show the cached reference lists (categories, skills, locations)",
	RunE:  runRefs,
}

var recentsCmd = &cobra.Command{
	Use:   "recents",
	Short: "Show or clear recent search terms",
	RunE:  runRecents,
}

var flagClearRecents bool

func init() {
	refsCmd.Flags().BoolVar(&flagForceRefresh, "refresh", false, "bypass the staleness cache")
	recentsCmd.Flags().BoolVar(&flagClearRecents, "clear", false, "forget all recent searches")
}

func runRefs(cmd *cobra.Command, _ []string) error {
	c := client()
	cache := feed.NewRefCache()
	ctx := cmd.Context()

	lists := []struct {
		name  string
		fetch feed.FetchList
	}{
		{"categories", c.Categories},
		{"skills", c.Skills},
		{"locations", c.Locations},
	}
	for _, l := range lists {
		get := cache.GetOrFetch
		if flagForceRefresh {
			get = cache.Refresh
		}
		vals, err := get(ctx, l.name, l.fetch)
		if err != nil {
			return err
		}
		fmt.Printf("%s (%d):\n", l.name, len(vals))
		for _, v := range vals {
			fmt.Println("  " + v)
		}
	}
	return nil
}

func runRecents(_ *cobra.Command, _ []string) error {
	path, err := recentsPath()
	if err != nil {
		return err
	}
	store, err := recents.Open(path)
	if err != nil {
		return err
	}
	if flagClearRecents {
		return store.Clear()
	}
	terms := store.List()
	if len(terms) == 0 {
		fmt.Println("no recent searches")
		return nil
	}
	for _, t := range terms {
		fmt.Println(t)
	}
	return nil
}
