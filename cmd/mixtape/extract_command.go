package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"mixtape/internal/ableton"
	"mixtape/internal/fileutil"
)

// tracklistFileName is the fixed-name output the other pipelines consume.
const tracklistFileName = "tracklist.txt"

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var titleCase bool

	cmd := &cobra.Command{
		Use:   "extract <project.als>",
		Short: "Extract a tracklist from an Ableton Live set",
		Long: `Extract the audio track names from an Ableton Live set into a numbered
tracklist file.

Track names are expected to follow the "CAMELOT - BPM - TRACK NAME"
convention; the Camelot/BPM prefix and Ableton's numeric index prefix are
stripped, and duplicates are dropped while preserving first-seen order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			projectPath := args[0]
			if !strings.HasSuffix(projectPath, ".als") {
				return fmt.Errorf("project file must have .als extension: %s", projectPath)
			}
			if _, err := os.Stat(projectPath); err != nil {
				return fmt.Errorf("project file not found: %s", projectPath)
			}

			names, err := ableton.ExtractFile(projectPath)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				return fmt.Errorf("no audio tracks found in %s", projectPath)
			}
			if titleCase {
				names = ableton.TitleCase(names)
			}

			outputPath := filepath.Join(cfg.Paths.OutputDir, tracklistFileName)
			if err := fileutil.WriteFileAtomic(outputPath, []byte(ableton.RenderTracklist(names)), 0o644); err != nil {
				return err
			}

			errOut := cmd.ErrOrStderr()
			printStatus(errOut, statusOK, "extracted %d tracks", len(names))
			printStatus(errOut, statusOK, "saved to: %s", outputPath)
			printStatus(errOut, statusInfo, "add timestamps before feeding the list to timeline or chapters")
			return nil
		},
	}

	cmd.Flags().BoolVar(&titleCase, "title-case", false, "Title-case the extracted track names")
	return cmd
}
