package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"torrent-picker/internal/catalog"
	"torrent-picker/internal/config"
)

func newScanCommand() *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "scan <watchlist.csv|->",
		Short: "Check a title,year watchlist against the torrents directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			movies, err := catalog.ReadWatchlist(in)
			if err != nil {
				return err
			}
			dir := config.TorrentsDir()
			files, err := catalog.ListTorrents(dir)
			if err != nil {
				return err
			}
			rep := catalog.Check(movies, files)
			log.Printf("[scan] %d movies: %d matched, %d missing (%s)", len(movies), len(rep.Matched), len(rep.Unmatched), dir)

			if jsonOut {
				return writeJSON(cmd, rep)
			}
			printScanReport(cmd, rep)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func printScanReport(cmd *cobra.Command, rep catalog.Report) {
	out := cmd.OutOrStdout()
	if len(rep.Matched) > 0 {
		rows := make([][]string, 0, len(rep.Matched))
		for _, m := range rep.Matched {
			rows = append(rows, []string{m.Movie.Title, strconv.Itoa(m.Movie.Year), m.File})
		}
		fmt.Fprintln(out, renderTable([]string{"Title", "Year", "Torrent"}, rows, []columnAlignment{alignLeft, alignRight, alignLeft}))
	}
	fmt.Fprintf(out, "Matched: %d  Missing: %d\n", len(rep.Matched), len(rep.Unmatched))
	for _, m := range rep.Unmatched {
		fmt.Fprintf(out, "  missing: %s\n", m)
	}
}
