// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: constants.go — Build-Time Search Tunables
//
// Purpose:
//   - Defines the fixed search configuration: exponent, bound, hit cap.
//   - Sizes the result buffer and progress cadence for the output path.
//
// Notes:
//   - The search space and every internal structure are sized from these
//     values at startup; there is no runtime reconfiguration surface.
//   - Bound and exponent must keep i^N + i^N inside 128 bits. The power table
//     verifies this at construction and refuses to start otherwise.
//
// ⚠️ No runtime logic here — all values must be compile-time resolvable
// ─────────────────────────────────────────────────────────────────────────────

package constants

// ───────────────────────────── Search Space ────────────────────────────────

const (
	// Exponent is the fixed power N in a^N + b^N = c^N + d^N.
	// N = 4 targets generalized taxicab quadruples (OEIS A018786 territory).
	Exponent = 4

	// Bound is the inclusive upper limit B for all four coordinates.
	// The frontier holds at most Bound live nodes, and the power table holds
	// Bound+1 entries, so memory stays O(B) even though the pair space is O(B²).
	Bound = 1001805

	// MaxHits caps the number of emitted solutions. 0 means unlimited: the
	// search runs until the frontier is exhausted. Reaching the cap is normal
	// termination, not an error.
	MaxHits = 30000
)

// ─────────────────────────── Result Sink Sizing ────────────────────────────

const (
	// ResultBufferSize is the fixed scratch buffer for formatted solution
	// records. 512 KiB keeps flushes rare without holding output hostage.
	ResultBufferSize = 512 << 10

	// ResultBufferSlack is the headroom that triggers a flush. One record is
	// four 7-digit coordinates plus a u128 decimal sum, well under 200 bytes.
	ResultBufferSlack = 200

	// UpdateInterval is the number of accepted hits between progress-line
	// rewrites. Only consulted when MaxHits > 0.
	UpdateInterval = 100
)

// ─────────────────────────── Run Artifact Paths ────────────────────────────

const (
	// ArchivePath is the SQLite database the finished results file is loaded
	// into after the search completes.
	ArchivePath = "solutions.db"

	// ManifestPath receives the JSON run summary (configuration, outcome,
	// hit count, output digest).
	ManifestPath = "run_manifest.json"
)
