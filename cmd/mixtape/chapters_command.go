package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"mixtape/internal/chapters"
	"mixtape/internal/fileutil"
	"mixtape/internal/logging"
	"mixtape/internal/tracklist"
)

// chaptersFileName is the fixed-name mirror of the chapter list, written
// next to the primary stdout stream so it can be pasted later.
const chaptersFileName = "youtube_chapters.txt"

func newChaptersCommand(ctx *commandContext) *cobra.Command {
	var withNumbers bool

	cmd := &cobra.Command{
		Use:   "chapters <tracklist>",
		Short: "Generate YouTube chapter timestamps from a tracklist",
		Long: `Convert a tracklist into YouTube-compatible chapter lines.

Chapter lines are printed to stdout for pasting into a video description
and mirrored to ` + chaptersFileName + ` in the configured output directory.
Status messages go to stderr so the stdout stream stays clean.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			tracklistPath := args[0]
			if _, err := os.Stat(tracklistPath); err != nil {
				return fmt.Errorf("tracklist not found: %s", tracklistPath)
			}

			errOut := cmd.ErrOrStderr()
			printStatus(errOut, statusInfo, "parsing tracklist: %s", tracklistPath)

			tracks, err := tracklist.ParseFile(tracklistPath, logger)
			if err != nil {
				return err
			}
			if len(tracks) == 0 {
				return fmt.Errorf("no tracks found in %s", tracklistPath)
			}
			printStatus(errOut, statusOK, "found %d tracks", len(tracks))

			lines, err := chapters.Lines(tracks, withNumbers)
			if err != nil {
				return err
			}
			payload := chapters.Render(lines)

			outputPath := filepath.Join(cfg.Paths.OutputDir, chaptersFileName)
			if err := fileutil.WriteFileAtomic(outputPath, []byte(payload), 0o644); err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), payload)

			printStatus(errOut, statusOK, "generated %d chapters", len(lines))
			printStatus(errOut, statusOK, "saved to: %s", outputPath)
			printStatus(errOut, statusInfo, "paste the chapter lines into your video description")
			return nil
		},
	}

	cmd.Flags().BoolVar(&withNumbers, "with-numbers", false, "Include track numbers in chapter names")
	return cmd
}
