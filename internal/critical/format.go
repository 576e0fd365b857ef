package critical

import (
	"github.com/agbru/tsapredictor/internal/numeric"
	"strconv"
)

func formatComplex(re, im numeric.Real) string {
	return strconv.FormatFloat(re, 'g', -1, 64) + "," + strconv.FormatFloat(im, 'g', -1, 64)
}
