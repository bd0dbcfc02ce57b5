// fundi-feed is a terminal feed browser against the marketplace API.
// It drives the same feed engine the mobile clients embed, which makes
// it handy for poking at filters, pagination, and envelope quirks
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"fundi/internal/adapters/marketplace"
	"fundi/internal/adapters/recents"
)

var (
	baseURL string
	token   string
	perPage int
	pages   int
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "fundi-feed",
	Short: "Browse the fundi marketplace from the terminal",
	Long: `fundi-feed lists fundis, jobs, and payments against a running
marketplace API, using the shared feed engine: filterable queries,
page accumulation with retry, and a staleness cache for reference
lists.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "http://localhost:4000/api/v1", "API base URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("FUNDI_TOKEN"), "bearer token for authenticated endpoints")
	rootCmd.PersistentFlags().IntVar(&perPage, "per-page", 15, "page size")
	rootCmd.PersistentFlags().IntVar(&pages, "pages", 1, "number of pages to accumulate")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "HTTP timeout")

	rootCmd.AddCommand(fundisCmd, jobsCmd, paymentsCmd, refsCmd, recentsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// client builds the shared REST client from the global flags
func client() *marketplace.Client {
	return marketplace.NewClient(marketplace.Options{
		BaseURL: baseURL,
		Timeout: timeout,
		Tokens:  marketplace.StaticToken(token),
	})
}

// recentsPath stores recent searches next to the user's other app state
func recentsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "fundi-feed")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "recents.json"), nil
}

// rememberSearch records a search term, best effort
func rememberSearch(term string) {
	if term == "" {
		return
	}
	path, err := recentsPath()
	if err != nil {
		return
	}
	store, err := recents.Open(path)
	if err != nil {
		return
	}
	if err := store.Add(term); err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not save recent search:", err)
	}
}
