package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/anacrolix/torrent/metainfo"
	"github.com/spf13/cobra"

	"torrent-picker/internal/torrentx"
)

func newInspectCommand() *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "inspect <file.torrent|magnet|info-hash|->",
		Short: "Show name, info hash, magnet and files of a .torrent",
		Long: "Decodes a .torrent file (or stdin) and shows its name, info hash, magnet,\n" +
			"download filename and files. A magnet URI or 40-char hex info hash is\n" +
			"normalized to its info hash and a tracker-less magnet instead.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] != "-" {
				if _, statErr := os.Stat(args[0]); statErr != nil {
					if ih, err := torrentx.InfoHashOf(args[0]); err == nil {
						return printHashOnly(cmd, ih, jsonOut)
					}
				}
			}

			in, err := openInput(cmd, args[0])
			if err != nil {
				return err
			}
			defer in.Close()
			data, err := io.ReadAll(in)
			if err != nil {
				return err
			}

			s, err := torrentx.Inspect(data)
			if err != nil {
				return fmt.Errorf("inspect %s: %w", args[0], err)
			}
			log.Printf("[inspect] %s: %s (%s)", args[0], s.InfoHash, torrentx.FormatSize(s.TotalSize))
			if jsonOut {
				return writeJSON(cmd, s)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:      %s\n", s.Name)
			fmt.Fprintf(out, "Info hash: %s\n", s.InfoHash)
			fmt.Fprintf(out, "Size:      %s\n", torrentx.FormatSize(s.TotalSize))
			fmt.Fprintf(out, "Magnet:    %s\n", s.Magnet)
			fmt.Fprintf(out, "Save as:   %s.torrent\n", torrentx.SafeFileName(s.Name))
			rows := make([][]string, 0, len(s.Files))
			for _, f := range s.Files {
				rows = append(rows, []string{f.Path, torrentx.FormatSize(f.Length)})
			}
			fmt.Fprintln(out, renderTable([]string{"File", "Size"}, rows, []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func printHashOnly(cmd *cobra.Command, ih metainfo.Hash, jsonOut bool) error {
	s := torrentx.Summary{InfoHash: ih.HexString(), Magnet: torrentx.MagnetFor(ih, "")}
	log.Printf("[inspect] info hash %s", s.InfoHash)
	if jsonOut {
		return writeJSON(cmd, s)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Info hash: %s\n", s.InfoHash)
	fmt.Fprintf(out, "Magnet:    %s\n", s.Magnet)
	return nil
}
