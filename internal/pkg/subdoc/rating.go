package subdoc

import (
	"github.com/campuskit/admitportal/internal/app/models"
	"github.com/campuskit/admitportal/internal/pkg/apperrors"
)

// RatingToStorage maps a numeric 1-5 rating to its stored qualitative
// bucket. The mapping is not bijective: 2 and 3 both land in the average
// bucket, so a stored rating of average reads back as 3 regardless of which
// was submitted. This collapse predates this service and is kept verbatim
// for compatibility with existing rows.
func RatingToStorage(n int) (models.PerformanceRating, error) {
	switch n {
	case 1:
		return models.RatingPoor, nil
	case 2, 3:
		return models.RatingAverage, nil
	case 4:
		return models.RatingGood, nil
	case 5:
		return models.RatingExcellent, nil
	default:
		return "", apperrors.NewFieldError("performanceRating", "performanceRating must be between 1 and 5")
	}
}

// StorageToRating maps a stored qualitative bucket back to the numeric
// boundary value. Unknown buckets (bad historical data) read as 0 so callers
// can omit the field rather than fail the read.
func StorageToRating(r models.PerformanceRating) int {
	switch r {
	case models.RatingPoor:
		return 1
	case models.RatingAverage:
		return 3
	case models.RatingGood:
		return 4
	case models.RatingExcellent:
		return 5
	default:
		return 0
	}
}
