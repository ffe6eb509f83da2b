// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go — alloc-free diagnostic logging helper
//
// Purpose:
//   - Logs stage transitions and failure paths without heap pressure.
//   - Used only in cold paths: startup phases, archive/manifest errors.
//
// Notes:
//   - Avoids fmt.Sprintf to minimize footprint and latency.
//   - Plain string concatenation, no interfaces, no structured fields.
//
// ⚠️ Never invoke in the extraction loop — use only outside the hot path.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import "taxicab/utils"

// DropError logs error messages with a custom alloc-free print strategy.
// It writes directly to stderr, bypassing any formatting machinery.
//
//go:nosplit
//go:inline
func DropError(prefix string, err error) {
	if err != nil {
		msg := prefix + ": " + err.Error() + "\n"
		utils.PrintWarning(msg)
	} else {
		msg := prefix + "\n"
		utils.PrintWarning(msg)
	}
}

// DropMessage logs diagnostic messages with zero-allocation print strategy.
// Used for cold-path diagnostics: phase markers, archive stats, teardown.
//
//go:nosplit
//go:inline
func DropMessage(prefix, message string) {
	msg := prefix + ": " + message + "\n"
	utils.PrintWarning(msg)
}
