package main

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"torrent-picker/internal/config"
	"torrent-picker/internal/scoring"
	"torrent-picker/internal/titles"
	"torrent-picker/internal/torrentx"
	"torrent-picker/pkg/types"
)

type rankOutput struct {
	Query       scoring.Query  `json:"query"`
	SearchQuery string         `json:"search_query,omitempty"`
	Tier        string         `json:"tier,omitempty"`
	Best        *types.Ranked  `json:"best,omitempty"`
	Survivors   int            `json:"survivors"`
	Entries     []types.Ranked `json:"entries"`
}

func newRankCommand() *cobra.Command {
	var (
		resultsPath string
		title       string
		year        int
		ceiling     string
		jsonOut     bool
	)
	cmd := &cobra.Command{
		Use:   "rank [\"Movie Name 2024\"]",
		Short: "Pick the best release from a list of search results",
		Long: "Reads search results as a JSON array of {name, size_bytes | size} objects and\n" +
			"picks one release by resolution, codec and size. The title and year come from\n" +
			"--title/--year, from a free-text request, or from the first result's name.\n" +
			"Without a year the title filter is skipped. Exits with status 2 when no\n" +
			"release is acceptable.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := scoring.Query{Title: strings.TrimSpace(title), Year: year, SizeCeiling: config.SizeCeiling()}
			if q.Title == "" && len(args) == 1 {
				t, y := titles.ParseRequest(args[0])
				q.Title = t
				if q.Year == 0 {
					q.Year = y
				}
			}
			if cmd.Flags().Changed("ceiling") {
				n, err := parseCeiling(ceiling)
				if err != nil {
					return err
				}
				q.SizeCeiling = n
			}

			in, err := openInput(cmd, resultsPath)
			if err != nil {
				return err
			}
			defer in.Close()
			results, err := torrentx.ReadResults(in)
			if err != nil {
				return err
			}

			if q.Title == "" && len(args) == 0 && len(results) > 0 {
				if t, y, ok := titles.ExtractTitleYear(results[0].Name); ok {
					q.Title = t
					if q.Year == 0 {
						q.Year = y
					}
					log.Printf("[rank] inferred %q (%d) from %q", q.Title, q.Year, results[0].Name)
				}
			}
			search := titles.SearchQuery(q.Title, q.Year)
			if q.Title != "" && q.Year == 0 {
				log.Printf("[rank] no year for %q; ranking without the title filter", q.Title)
				q.Title = ""
			}

			sel, chooseErr := torrentx.Choose(results, q)
			if chooseErr != nil && !errors.Is(chooseErr, torrentx.ErrNoCandidate) {
				return chooseErr
			}
			if jsonOut {
				o := rankOutput{
					Query:       q,
					SearchQuery: search,
					Tier:        sel.Tier,
					Survivors:   len(sel.Survivors()),
					Entries:     sel.Entries(),
				}
				if best, ok := sel.Best(); ok {
					o.Best = &best
				}
				if err := writeJSON(cmd, o); err != nil {
					return err
				}
				return chooseErr
			}
			printSelection(cmd, sel, search)
			return chooseErr
		},
	}
	cmd.Flags().StringVarP(&resultsPath, "results", "r", "-", "Search results JSON file (- for stdin)")
	cmd.Flags().StringVarP(&title, "title", "t", "", "Movie title; disables title filtering when empty")
	cmd.Flags().IntVarP(&year, "year", "y", 0, "Release year")
	cmd.Flags().StringVar(&ceiling, "ceiling", "", "Size ceiling, bytes or \"4 GB\"; 0 disables (default $PICKER_SIZE_CEILING)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func parseCeiling(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	if n := torrentx.ParseSize(s); n > 0 {
		return n, nil
	}
	return 0, fmt.Errorf("bad size ceiling %q", s)
}

func printSelection(cmd *cobra.Command, sel scoring.Selection, search string) {
	out := cmd.OutOrStdout()
	best, ok := sel.Best()
	entries := sel.Entries()
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		status := "ok"
		switch {
		case e.Reject != "":
			status = e.Reject
		case i == sel.BestIndex():
			status = "BEST"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			e.Name,
			torrentx.FormatSize(e.SizeBytes),
			string(e.Resolution),
			string(e.Codec),
			status,
		})
	}
	if len(rows) > 0 {
		fmt.Fprintln(out, renderTable(
			[]string{"#", "Release", "Size", "Res", "Codec", "Status"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignLeft, alignLeft},
		))
	}
	fmt.Fprintf(out, "Acceptable: %d of %d\n", len(sel.Survivors()), len(entries))
	if !ok {
		if search == "" {
			fmt.Fprintln(out, "No acceptable release.")
		} else {
			fmt.Fprintf(out, "No acceptable release for: %s\n", search)
		}
		return
	}
	fmt.Fprintf(out, "Selected (%s): %s\n", sel.Tier, best.Name)
	if best.DownloadPath != "" {
		fmt.Fprintf(out, "Download: %s\n", best.DownloadPath)
	}
}
