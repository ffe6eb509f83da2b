package results

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/crypto/sha3"
)

func TestManifestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run_manifest.json")
	want := Manifest{
		Exponent:   4,
		Bound:      1001805,
		MaxHits:    30000,
		Hits:       30000,
		Outcome:    "cap-reached",
		OutputPath: "results.txt",
		OutputSHA3: strings.Repeat("ab", 32),
		DurationMS: 123456,
	}
	if err := WriteManifest(path, want); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}
	got, err := ReadManifest(path)
	if err != nil {
		t.Fatalf("ReadManifest: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", want, got)
	}
}

func TestManifestFieldNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run_manifest.json")
	if err := WriteManifest(path, Manifest{Outcome: "exhausted"}); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	for _, field := range []string{
		`"exponent"`, `"bound"`, `"max_hits"`, `"hits"`,
		`"outcome"`, `"output_path"`, `"output_sha3_256"`, `"duration_ms"`,
	} {
		if !strings.Contains(string(data), field) {
			t.Fatalf("manifest missing %s: %s", field, data)
		}
	}
}

func TestDigestFile(t *testing.T) {
	path := writeResults(t, "12 1 10 9 1729\n")
	got, err := DigestFile(path)
	if err != nil {
		t.Fatalf("DigestFile: %v", err)
	}
	sum := sha3.Sum256([]byte("12 1 10 9 1729\n"))
	if want := hex.EncodeToString(sum[:]); got != want {
		t.Fatalf("digest: want %s got %s", want, got)
	}
}

func TestDigestMissingFile(t *testing.T) {
	if _, err := DigestFile(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatalf("want error for missing file")
	}
}
