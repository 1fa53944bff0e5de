package progress

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestReporter_DisabledOnFile(t *testing.T) {
	t.Parallel()

	f, err := os.Create(filepath.Join(t.TempDir(), "stderr"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	r := NewReporter(f, false)
	if r.Enabled() {
		t.Fatal("Enabled() = true for a regular file")
	}

	r.Start("Compute status")
	r.Stop()
	r.Stop()

	info, err := f.Stat()
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Errorf("reporter wrote %d bytes to a non-terminal", info.Size())
	}
}

func TestReporter_Quiet(t *testing.T) {
	t.Parallel()

	r := NewReporter(os.Stderr, true)
	if r.Enabled() {
		t.Error("Enabled() = true with quiet")
	}
}

func TestSpinner_StopWithoutStart(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewSpinner(&buf, "Compute status")
	s.UpdateMessage("other")
	s.Stop()
	s.Start()
	s.Stop()

	if buf.Len() != 0 {
		t.Errorf("spinner wrote %q without running", buf.String())
	}
}
