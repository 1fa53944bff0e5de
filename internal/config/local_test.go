package config

import (
	"reflect"
	"strings"
	"testing"
)

func TestLoadLocal_Missing(t *testing.T) {
	t.Parallel()

	local, err := LoadLocal(t.TempDir())
	if err != nil || local != nil {
		t.Errorf("LoadLocal() = %v, %v; want nil, nil", local, err)
	}
}

func TestLoadLocal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, LocalConfigFileName, `
exclude = ["gen/**"]
[commit]
message = "chore: {names} -> kotlin"
`)

	local, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("LoadLocal() = %v", err)
	}
	if !reflect.DeepEqual(local.Exclude, []string{"gen/**"}) {
		t.Errorf("Exclude = %v", local.Exclude)
	}
	if local.Commit.Message != "chore: {names} -> kotlin" {
		t.Errorf("Commit.Message = %q", local.Commit.Message)
	}
}

func TestLoadLocal_BadPattern(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, LocalConfigFileName, `exclude = ["[z"]`)

	_, err := LoadLocal(dir)
	if err == nil || !strings.Contains(err.Error(), LocalConfigFileName) {
		t.Errorf("LoadLocal() error = %v, want mention of %s", err, LocalConfigFileName)
	}
}

func TestMergeLocal(t *testing.T) {
	t.Parallel()

	global := Default()
	global.Exclude = []string{"**/build/**"}

	t.Run("nil local", func(t *testing.T) {
		t.Parallel()
		merged, err := MergeLocal(global, nil)
		if err != nil || !reflect.DeepEqual(merged, global) {
			t.Errorf("MergeLocal(nil) = %+v, %v", merged, err)
		}
	})

	t.Run("overrides and appends", func(t *testing.T) {
		t.Parallel()
		merged, err := MergeLocal(global, &LocalConfig{
			VCSConfig: "ide/vcs.xml",
			Exclude:   []string{"gen/**"},
			Commit:    CommitConfig{Message: "kt: {names}"},
		})
		if err != nil {
			t.Fatalf("MergeLocal() = %v", err)
		}
		if merged.VCSConfig != "ide/vcs.xml" {
			t.Errorf("VCSConfig = %q", merged.VCSConfig)
		}
		if merged.SourceExt != DefaultSourceExt {
			t.Errorf("SourceExt = %q, want inherited", merged.SourceExt)
		}
		if want := []string{"**/build/**", "gen/**"}; !reflect.DeepEqual(merged.Exclude, want) {
			t.Errorf("Exclude = %v, want %v", merged.Exclude, want)
		}
		if merged.Commit.Message != "kt: {names}" {
			t.Errorf("Commit.Message = %q", merged.Commit.Message)
		}
		if len(global.Exclude) != 1 {
			t.Errorf("global mutated: %v", global.Exclude)
		}
	})

	t.Run("invalid result", func(t *testing.T) {
		t.Parallel()
		_, err := MergeLocal(global, &LocalConfig{TargetExt: ".java"})
		if err == nil {
			t.Error("MergeLocal() = nil error, want must differ")
		}
	})
}
