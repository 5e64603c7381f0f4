package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"torrent-picker/internal/bencode"
	"torrent-picker/internal/catalog"
	"torrent-picker/internal/config"
	"torrent-picker/internal/torrentx"
)

type sizeEntry struct {
	File  string `json:"file"`
	Size  int64  `json:"size"`
	Error string `json:"error,omitempty"`
}

type sizeReport struct {
	Dir     string      `json:"dir"`
	Entries []sizeEntry `json:"entries"`
	Total   int64       `json:"total"`
	Invalid int         `json:"invalid"`
}

func newSizeCommand() *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "size [file.torrent...]",
		Short: "Report the content size of .torrent files",
		Long: "Reads the given .torrent files, or every .torrent in the torrents directory,\n" +
			"and reports the total content size declared by each.",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := config.TorrentsDir()
			files := args
			if len(files) == 0 {
				names, err := catalog.ListTorrents(dir)
				if err != nil {
					return err
				}
				for _, n := range names {
					files = append(files, filepath.Join(dir, n))
				}
			}

			rep, err := measure(cmd, files)
			if err != nil {
				return err
			}
			rep.Dir = dir
			if jsonOut {
				return writeJSON(cmd, rep)
			}
			printSizeReport(cmd, rep)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

// measure reads files concurrently, bounded by PICKER_SIZE_WORKERS. A file
// that cannot be read or decoded is reported, not fatal.
func measure(cmd *cobra.Command, files []string) (sizeReport, error) {
	entries := make([]sizeEntry, len(files))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(config.SizeWorkers())
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			e := sizeEntry{File: filepath.Base(f)}
			data, err := os.ReadFile(f)
			if err == nil {
				if err = torrentx.Validate(data); err == nil {
					e.Size, err = bencode.TorrentSize(data)
				}
			}
			if err != nil {
				log.Printf("[size] %s: %v", e.File, err)
				e.Error = err.Error()
			}
			entries[i] = e
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sizeReport{}, err
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Size > entries[j].Size })
	rep := sizeReport{Entries: entries}
	for _, e := range entries {
		if e.Error != "" {
			rep.Invalid++
			continue
		}
		rep.Total += e.Size
	}
	log.Printf("[size] %d files, %d invalid, total %s", len(entries), rep.Invalid, torrentx.FormatSize(rep.Total))
	return rep, nil
}

func printSizeReport(cmd *cobra.Command, rep sizeReport) {
	out := cmd.OutOrStdout()
	if len(rep.Entries) == 0 {
		fmt.Fprintf(out, "No .torrent files in %s\n", rep.Dir)
		return
	}
	rows := make([][]string, 0, len(rep.Entries))
	var invalid []sizeEntry
	for _, e := range rep.Entries {
		if e.Error != "" {
			invalid = append(invalid, e)
			continue
		}
		rows = append(rows, []string{e.File, torrentx.FormatSize(e.Size), humanize.Comma(e.Size)})
	}
	if len(rows) > 0 {
		fmt.Fprintln(out, renderTable([]string{"File", "Size", "Bytes"}, rows, []columnAlignment{alignLeft, alignRight, alignRight}))
	}
	fmt.Fprintf(out, "Total: %s across %s files\n", torrentx.FormatSize(rep.Total), humanize.Comma(int64(len(rows))))
	if len(invalid) > 0 {
		fmt.Fprintf(out, "Invalid (%d):\n", len(invalid))
		for _, e := range invalid {
			fmt.Fprintf(out, "  %s: %s\n", e.File, e.Error)
		}
	}
}
