package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/grid-arcade/internal/registry"
)

func TestPrintGames(t *testing.T) {
	var buf bytes.Buffer
	printGames(&buf, registry.List())
	out := buf.String()

	for _, want := range []string{"snake", "Snake", "tetris", "Tetris", "arcade play <id>"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintGamesEmpty(t *testing.T) {
	var buf bytes.Buffer
	printGames(&buf, nil)
	if !strings.Contains(buf.String(), "No games available.") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestPlayUnknownGame(t *testing.T) {
	err := runPlay(playCmd, []string{"pong"})
	if err == nil || !strings.Contains(err.Error(), "unknown game") {
		t.Errorf("runPlay() error = %v, expected unknown game", err)
	}
}

func TestConfigCommand(t *testing.T) {
	var buf bytes.Buffer
	configCmd.SetOut(&buf)
	defer configCmd.SetOut(nil)

	if err := configCmd.RunE(configCmd, []string{"tetris"}); err != nil {
		t.Fatalf("config tetris failed: %v", err)
	}
	if !strings.Contains(buf.String(), "drop_ms") {
		t.Errorf("output missing drop_ms:\n%s", buf.String())
	}

	if err := configCmd.RunE(configCmd, []string{"pong"}); err == nil {
		t.Error("config pong should fail")
	}
}
