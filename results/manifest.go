// manifest.go — JSON run summary with an integrity digest of the output.

package results

import (
	"encoding/hex"
	"io"
	"os"

	"github.com/sugawarayuuta/sonnet"
	"golang.org/x/crypto/sha3"
)

// Manifest is the persisted summary of one search run. The digest lets an
// archived results file be integrity-checked long after the run.
type Manifest struct {
	Exponent   int    `json:"exponent"`
	Bound      int    `json:"bound"`
	MaxHits    int    `json:"max_hits"`
	Hits       int    `json:"hits"`
	Outcome    string `json:"outcome"`
	OutputPath string `json:"output_path"`
	OutputSHA3 string `json:"output_sha3_256"`
	DurationMS int64  `json:"duration_ms"`
}

// DigestFile streams path through SHA3-256 and returns the hex digest.
func DigestFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha3.New256()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// WriteManifest marshals m and writes it to path, replacing any previous
// manifest.
func WriteManifest(path string, m Manifest) error {
	data, err := sonnet.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// ReadManifest loads a previously written manifest.
func ReadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, err
	}
	var m Manifest
	if err := sonnet.Unmarshal(data, &m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}
