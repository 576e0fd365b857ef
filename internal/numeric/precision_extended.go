//go:build tsa_extended

package numeric

// PrecisionTag for a build selecting the "extended" precision variant.
// Real remains float64 (see numeric.go) and the numeric constants are
// unchanged; only the reported tag differs.
const PrecisionTag = "ld"
