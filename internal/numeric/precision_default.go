//go:build !tsa_extended && !tsa_quad

package numeric

// PrecisionTag identifies the numeric precision a build was compiled
// with, matching the original engine's "d"/"ld"/"qd" tag used in the log
// file and in the reconstructed downstream command line.
const PrecisionTag = "d"
