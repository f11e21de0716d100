// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go — Cold-path logging helper (zero-alloc)
//
// Purpose:
//   - Logs infrequent events and error paths without heap pressure.
//   - Used for pipeline lifecycle messages, decode failures, DB errors.
//
// Notes:
//   - Avoids fmt to keep the footprint flat; plain concatenation only.
//
// ⚠️ Never invoke in hot loops — diagnostics only.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import "main/utils"

// DropError logs prefix plus the error text to stderr.  A nil error logs
// just the prefix, which doubles as a tagged trace.
func DropError(prefix string, err error) {
	if err != nil {
		utils.PrintWarning(prefix + ": " + err.Error() + "\n")
	} else {
		utils.PrintWarning(prefix + "\n")
	}
}

// DropMessage logs a tagged cold-path message to stderr.
func DropMessage(prefix, message string) {
	utils.PrintWarning(prefix + ": " + message + "\n")
}
