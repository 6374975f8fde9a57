package searcher

import (
	"math"

	"github.com/pkg/errors"
)

const DefaultTieBreak = 0.1

// Search values are bounded by the infinities so that any evaluation,
// including one returning very large magnitudes, improves on the initial bound.
var (
	MinScore = math.Inf(-1)
	MaxScore = math.Inf(1)
)

var ErrInvalidDepth = errors.New("search depth must be at least 1")
