package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"torrent-picker/internal/catalog"
	"torrent-picker/internal/config"
	"torrent-picker/internal/titles"
)

func newFindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find <title> [year]",
		Short: "Find an already-downloaded torrent for a movie",
		Long: "Looks for a .torrent in the torrents directory whose name matches the title\n" +
			"and year. The year may be given separately or at the end of the title.\n" +
			"Exits with status 2 when nothing matches.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, year, err := titleYearArgs(args)
			if err != nil {
				return err
			}

			dir := config.TorrentsDir()
			files, err := catalog.ListTorrents(dir)
			if err != nil {
				return err
			}
			f, ok := catalog.FindTorrent(files, title, year)
			if !ok {
				log.Printf("[find] no match for %q (%d) among %d torrents in %s", title, year, len(files), dir)
				return fmt.Errorf("%w for %q (%d)", errNoMatch, title, year)
			}
			log.Printf("[find] %q (%d) -> %s", title, year, f)
			fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(dir, f))
			return nil
		},
	}
}

// titleYearArgs accepts ["Title", "2020"] or ["Title 2020"].
func titleYearArgs(args []string) (string, int, error) {
	if len(args) == 2 {
		y, err := strconv.Atoi(strings.TrimSpace(args[1]))
		if err != nil {
			return "", 0, fmt.Errorf("bad year %q", args[1])
		}
		return strings.TrimSpace(args[0]), y, nil
	}
	title, year := titles.ParseRequest(args[0])
	if year == 0 {
		return "", 0, fmt.Errorf("no year in %q; pass it as a second argument", args[0])
	}
	return title, year, nil
}
