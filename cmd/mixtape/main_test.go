package main

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, outputDir string) string {
	t.Helper()
	content := fmt.Sprintf("[paths]\noutput_dir = %q\n", outputDir)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got %q", needle, haystack)
	}
}

const testTracklist = `1. Artist 1 - Track 1 - 00:00:00
2. Artist 2 - Track 2 - 00:05:36
3. Artist 3 - Track 3 - 01:05:09
`

func TestChaptersCommand(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)

	tracklistPath := filepath.Join(base, "tracklist.txt")
	if err := os.WriteFile(tracklistPath, []byte(testTracklist), 0o644); err != nil {
		t.Fatalf("write tracklist: %v", err)
	}

	out, _, err := runCLI(t, []string{"chapters", tracklistPath}, configPath)
	if err != nil {
		t.Fatalf("chapters: %v", err)
	}
	requireContains(t, out, "0:00 Artist 1 - Track 1")
	requireContains(t, out, "5:36 Artist 2 - Track 2")
	requireContains(t, out, "1:05:09 Artist 3 - Track 3")

	saved, err := os.ReadFile(filepath.Join(base, "youtube_chapters.txt"))
	if err != nil {
		t.Fatalf("read saved chapters: %v", err)
	}
	if string(saved) != out {
		t.Fatalf("saved file diverges from stdout:\nfile: %q\nstdout: %q", saved, out)
	}
}

func TestChaptersCommandWithNumbers(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)

	tracklistPath := filepath.Join(base, "tracklist.txt")
	if err := os.WriteFile(tracklistPath, []byte(testTracklist), 0o644); err != nil {
		t.Fatalf("write tracklist: %v", err)
	}

	out, _, err := runCLI(t, []string{"chapters", "--with-numbers", tracklistPath}, configPath)
	if err != nil {
		t.Fatalf("chapters --with-numbers: %v", err)
	}
	requireContains(t, out, "0:00 Track 1: Artist 1 - Track 1")
	requireContains(t, out, "1:05:09 Track 3: Artist 3 - Track 3")
}

func TestChaptersCommandMissingTracklist(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)

	missing := filepath.Join(base, "nope.txt")
	_, _, err := runCLI(t, []string{"chapters", missing}, configPath)
	if err == nil {
		t.Fatal("expected error for missing tracklist")
	}
	requireContains(t, err.Error(), "tracklist not found")
}

func writeTestProject(t *testing.T, path string, trackNames ...string) {
	t.Helper()
	var xml strings.Builder
	xml.WriteString(`<?xml version="1.0" encoding="UTF-8"?><Ableton><LiveSet><Tracks>`)
	for i, name := range trackNames {
		fmt.Fprintf(&xml, `<AudioTrack Id="%d"><Name><EffectiveName Value=%q/></Name></AudioTrack>`, i+1, name)
	}
	xml.WriteString(`</Tracks></LiveSet></Ableton>`)

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte(xml.String())); err != nil {
		t.Fatalf("compress project: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("close gzip writer: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write project: %v", err)
	}
}

func TestExtractCommand(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)

	projectPath := filepath.Join(base, "mix.als")
	writeTestProject(t, projectPath,
		"1-9A - 124 - Daft Punk - One More Time",
		"2-12B - 128 - Justice - Genesis",
		"3-9A - 124 - Daft Punk - One More Time",
	)

	_, stderr, err := runCLI(t, []string{"extract", projectPath}, configPath)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	requireContains(t, stderr, "extracted 2 tracks")

	saved, err := os.ReadFile(filepath.Join(base, "tracklist.txt"))
	if err != nil {
		t.Fatalf("read saved tracklist: %v", err)
	}
	want := "1. Daft Punk - One More Time\n2. Justice - Genesis\n"
	if string(saved) != want {
		t.Fatalf("unexpected tracklist:\ngot:  %q\nwant: %q", saved, want)
	}
}

func TestExtractCommandRequiresALSExtension(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)

	plain := filepath.Join(base, "mix.zip")
	if err := os.WriteFile(plain, []byte("not a project"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	_, _, err := runCLI(t, []string{"extract", plain}, configPath)
	if err == nil {
		t.Fatal("expected error for wrong extension")
	}
	requireContains(t, err.Error(), ".als extension")
}

func TestTimelineCommandMissingInputs(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)

	tracklistPath := filepath.Join(base, "tracklist.txt")
	if err := os.WriteFile(tracklistPath, []byte(testTracklist), 0o644); err != nil {
		t.Fatalf("write tracklist: %v", err)
	}

	_, _, err := runCLI(t, []string{"timeline", filepath.Join(base, "absent.txt"), "Mix", "bg.png", "mix.wav"}, configPath)
	if err == nil {
		t.Fatal("expected error for missing tracklist")
	}
	requireContains(t, err.Error(), "tracklist not found")

	_, _, err = runCLI(t, []string{"timeline", tracklistPath, "Mix", filepath.Join(base, "absent.png"), "mix.wav"}, configPath)
	if err == nil {
		t.Fatal("expected error for missing image")
	}
	requireContains(t, err.Error(), "background image not found")

	imagePath := filepath.Join(base, "bg.png")
	if err := os.WriteFile(imagePath, []byte("png"), 0o644); err != nil {
		t.Fatalf("write image: %v", err)
	}
	_, _, err = runCLI(t, []string{"timeline", tracklistPath, "Mix", imagePath, filepath.Join(base, "absent.wav")}, configPath)
	if err == nil {
		t.Fatal("expected error for missing audio")
	}
	requireContains(t, err.Error(), "audio file not found")
}

func TestTimelineCommandArgCount(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)

	_, _, err := runCLI(t, []string{"timeline", "only-one.txt"}, configPath)
	if err == nil {
		t.Fatal("expected arg count error")
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, _, err := runCLI(t, []string{"config", "validate"}, "")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")

	tmp := t.TempDir()
	target := filepath.Join(tmp, "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	_, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err == nil {
		t.Fatal("expected error when config already exists")
	}
	requireContains(t, err.Error(), "already exists")

	_, _, err = runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, "")
	if err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}
