package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootCmd(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "primary.txt")
	merge := filepath.Join(dir, "merge.txt")
	output := filepath.Join(dir, "out.html")

	if err := os.WriteFile(primary, []byte("Words abate to lessen The storm abated. able lacking strength He is able."), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(merge, []byte("Words banal trite His speech was banal."), 0644); err != nil {
		t.Fatal(err)
	}
	blacklist := filepath.Join(dir, "blacklist.txt")
	if err := os.WriteFile(blacklist, []byte("able"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		extra []string
		check func(t *testing.T, stdout string)
	}{
		{
			name: "text summary",
			check: func(t *testing.T, stdout string) {
				want := "added 1 words to dictionary\nadded 1 words to dictionary\ndisregarded 1 blacklisted words.\n"
				if stdout != want {
					t.Errorf("stdout = %q, want %q", stdout, want)
				}
			},
		},
		{
			name:  "json summary",
			extra: []string{"--json", "--random"},
			check: func(t *testing.T, stdout string) {
				var result struct {
					Stats struct {
						TotalWords int `json:"totalWords"`
						Cards      int `json:"cards"`
					} `json:"stats"`
				}
				if err := json.Unmarshal([]byte(stdout), &result); err != nil {
					t.Fatalf("invalid JSON output: %v", err)
				}
				if result.Stats.TotalWords != 2 || result.Stats.Cards != 2 {
					t.Errorf("unexpected stats: %+v", result.Stats)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			var stdout bytes.Buffer
			cmd.SetOut(&stdout)
			cmd.SetArgs(append([]string{
				"--config", filepath.Join(dir, "missing.yaml"),
				"--primary", primary,
				"--blacklist", blacklist,
				"--merge", merge,
				"--output", output,
			}, tt.extra...))

			if err := cmd.Execute(); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			tt.check(t, stdout.String())

			content, err := os.ReadFile(output)
			if err != nil {
				t.Fatal(err)
			}
			if strings.Count(string(content), "<article>") != 2 {
				t.Errorf("expected 2 cards in %s", output)
			}
		})
	}
}

func TestRootCmd_MissingPrimary(t *testing.T) {
	dir := t.TempDir()
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"--config", filepath.Join(dir, "missing.yaml"),
		"--primary", filepath.Join(dir, "nope.txt"),
		"--merge", filepath.Join(dir, "nope2.txt"),
		"--output", filepath.Join(dir, "out.html"),
	})

	if err := cmd.Execute(); err == nil {
		t.Error("Execute() should fail when the primary file is missing")
	}
}
