package main

import (
	"github.com/spf13/cobra"

	"torrent-picker/internal/config"
)

func newRootCommand() *cobra.Command {
	var dirFlag string

	rootCmd := &cobra.Command{
		Use:           "picker",
		Short:         "Pick movie torrents and check what is already downloaded",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmd.Flags().Changed("dir") {
				config.SetTorrentsDir(dirFlag)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "d", "", "Torrents directory (default $PICKER_TORRENTS_DIR)")

	rootCmd.AddCommand(newSizeCommand())
	rootCmd.AddCommand(newFindCommand())
	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newRankCommand())
	rootCmd.AddCommand(newInspectCommand())

	return rootCmd
}
