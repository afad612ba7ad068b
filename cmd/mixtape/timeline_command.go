package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"mixtape/internal/fcpxml"
	"mixtape/internal/fileutil"
	"mixtape/internal/logging"
	"mixtape/internal/media/ffprobe"
	"mixtape/internal/timecode"
	"mixtape/internal/tracklist"
)

func newTimelineCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeline <tracklist> <name> <image> <audio>",
		Short: "Generate a Final Cut Pro timeline from a tracklist",
		Long: `Generate an FCPXML timeline with one lower-third title per track.

The tracklist file holds one track per line:

  1. Artist 1 - Track 1 - 00:00:00
  2. Artist 2 - Track 2 - 00:05:36

Total program length is read from the audio file with ffprobe. The final
title fades out over the last five seconds and ends on a cross dissolve.
The document is written to <Name_with_underscores>.fcpxml in the configured
output directory; double-click it to open the project in Final Cut Pro.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			tracklistPath, name, imagePath, audioPath := args[0], args[1], args[2], args[3]

			if _, err := os.Stat(tracklistPath); err != nil {
				return fmt.Errorf("tracklist not found: %s", tracklistPath)
			}
			if _, err := os.Stat(imagePath); err != nil {
				return fmt.Errorf("background image not found: %s", imagePath)
			}
			if _, err := os.Stat(audioPath); err != nil {
				return fmt.Errorf("audio file not found: %s", audioPath)
			}

			out := cmd.ErrOrStderr()
			printStatus(out, statusInfo, "parsing tracklist: %s", tracklistPath)

			tracks, err := tracklist.ParseFile(tracklistPath, logger)
			if err != nil {
				return err
			}
			if len(tracks) == 0 {
				return fmt.Errorf("no tracks found in %s", tracklistPath)
			}
			printStatus(out, statusOK, "found %d tracks", len(tracks))

			probe, err := ffprobe.Inspect(cmd.Context(), cfg.FFprobeBinary(), audioPath)
			if err != nil {
				return fmt.Errorf("probe audio duration: %w", err)
			}
			durationSeconds, err := probe.DurationSeconds()
			if err != nil {
				return fmt.Errorf("probe audio duration: %w", err)
			}
			totalSeconds := int64(durationSeconds)
			printStatus(out, statusOK, "total program length (from audio): %s", timecode.FormatTimestamp(totalSeconds))

			doc, err := fcpxml.Build(tracks, totalSeconds, name, imagePath, audioPath, cfg.Paths.LibraryDir)
			if err != nil {
				return err
			}

			outputPath := filepath.Join(cfg.Paths.OutputDir, fcpxml.OutputFileName(name))
			if err := fileutil.WriteFileAtomic(outputPath, []byte(doc.Render()), 0o644); err != nil {
				return err
			}

			printStatus(out, statusOK, "generated timeline with %d tracks", len(tracks))
			printStatus(out, statusOK, "saved to: %s", outputPath)

			fmt.Fprintln(out)
			fmt.Fprintln(out, conversionTable(doc))
			return nil
		},
	}
	return cmd
}

// conversionTable summarizes each track's timestamp to frame-offset
// conversion for a quick visual check after a run.
func conversionTable(doc *fcpxml.Document) string {
	rows := make([][]string, 0, len(doc.Spines))
	for _, spine := range doc.Spines {
		rows = append(rows, []string{
			strconv.Itoa(spine.Index),
			timecode.FormatTimestamp(int64((spine.Offset - timecode.TicksPerFrame) / timecode.Scale)),
			spine.Offset.String(),
			spine.Duration.String(),
			spine.Artist,
		})
	}
	return renderTable(
		[]string{"Track", "Timestamp", "Offset", "Duration", "Artist"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignRight, alignRight, alignLeft},
	)
}
