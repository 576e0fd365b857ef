//go:build tsa_quad

package numeric

// PrecisionTag for a build selecting the "quad" precision variant.
const PrecisionTag = "qd"
