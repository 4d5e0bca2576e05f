package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunToolsBoard(t *testing.T) {
	defer saveRestoreBool(showBoard, true)()
	defer saveRestoreString(fenPosition, "4k3/8/8/8/8/8/8/4K3 b - - 0 1")()

	var buf bytes.Buffer
	if err := runTools(&buf); err != nil {
		t.Fatalf("runTools() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "8 - - - - k - - - 8") {
		t.Errorf("missing black king in:\n%s", out)
	}
	if !strings.HasSuffix(out, "Black to move\n") {
		t.Errorf("missing side to move in:\n%s", out)
	}
}

func TestRunToolsBoardJSON(t *testing.T) {
	defer saveRestoreBool(showBoard, true)()
	defer saveRestoreBool(jsonOutput, true)()

	var buf bytes.Buffer
	if err := runTools(&buf); err != nil {
		t.Fatalf("runTools() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"toMove": "white"`) {
		t.Errorf("runTools() JSON output = %s", buf.String())
	}
}

func TestRunToolsPerft(t *testing.T) {
	defer saveRestoreInt(perftDepth, 2)()
	defer saveRestoreInt(workers, 2)()

	var buf bytes.Buffer
	if err := runTools(&buf); err != nil {
		t.Fatalf("runTools() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "(1,4)-(3,4): 20\n") {
		t.Errorf("missing e2-e4 line in:\n%s", out)
	}
	if !strings.Contains(out, "Nodes searched: 400\n") {
		t.Errorf("missing total in:\n%s", out)
	}
}

func TestRunToolsPerftPromotion(t *testing.T) {
	defer saveRestoreInt(perftDepth, 1)()
	defer saveRestoreString(fenPosition, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")()

	var buf bytes.Buffer
	if err := runTools(&buf); err != nil {
		t.Fatalf("runTools() error = %v", err)
	}
	for _, want := range []string{"(6,0)-(7,0)=Q: 1", "(6,0)-(7,0)=N: 1", "Nodes searched: 9"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("missing %q in:\n%s", want, buf.String())
		}
	}
}

func TestRunToolsBadFEN(t *testing.T) {
	defer saveRestoreBool(showBoard, true)()
	defer saveRestoreString(fenPosition, "garbage")()

	var buf bytes.Buffer
	if err := runTools(&buf); err == nil {
		t.Error("runTools() error = nil for a bad FEN")
	}
}
