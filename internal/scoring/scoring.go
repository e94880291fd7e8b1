// Package scoring turns a completed answer set into scores, category
// labels, an Indonesian interpretation and recommendations. Scoring is
// pure computation; persistence and completion rules live in services.
package scoring

import (
	"fmt"
	"math"

	"github.com/sehat-jiwa/assessment-service/internal/catalog"
	"github.com/sehat-jiwa/assessment-service/internal/models"
)

// Score computes the result for the given instrument and answers. The
// caller is responsible for ensuring the answer set is complete; missing
// likert answers score as 0 and missing boolean answers never match the
// answer key.
func Score(instrumentID string, answers models.AnswerSet) (*models.ScoreResult, error) {
	inst, err := catalog.Get(instrumentID)
	if err != nil {
		return nil, err
	}

	switch inst.ID {
	case "dass42":
		return scoreDASS42(inst, answers), nil
	case "gse":
		return scoreGSE(inst, answers), nil
	case "mhkq":
		return scoreMHKQ(inst, answers), nil
	case "mscs":
		return scoreMSCS(inst, answers), nil
	case "pdd":
		return scorePDD(inst, answers), nil
	default:
		// A catalog entry without a scoring function must not silently
		// fall through to another instrument's rubric.
		return nil, fmt.Errorf("no scoring function for %q: %w", inst.ID, catalog.ErrUnknownInstrument)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
