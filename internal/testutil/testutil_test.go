package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/banshee-data/gridcoord/internal/coordlist"
)

func TestAssertNoError(t *testing.T) {
	t.Parallel()
	AssertNoError(t, nil)
}

func TestAssertError(t *testing.T) {
	t.Parallel()
	AssertError(t, errors.New("test error"))
}

func TestAssertExitCode(t *testing.T) {
	t.Parallel()
	AssertExitCode(t, nil, 0)
	AssertExitCode(t, errors.New("plain"), coordlist.ExitFailure)
	AssertExitCode(t, &coordlist.Error{Kind: coordlist.KindOutOfBounds}, coordlist.ExitOutOfBounds)
}

func TestWriteTempFile(t *testing.T) {
	t.Parallel()
	path := WriteTempFile(t, "grid.json", `{"dims":[1,2,3]}`)
	if filepath.Base(path) != "grid.json" {
		t.Errorf("unexpected path %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != `{"dims":[1,2,3]}` {
		t.Errorf("content = %q", data)
	}
}
