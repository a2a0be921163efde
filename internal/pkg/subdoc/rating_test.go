package subdoc

import (
	"testing"

	"github.com/campuskit/admitportal/internal/app/models"
)

func TestRatingTranscoding(t *testing.T) {
	tests := []struct {
		in     int
		bucket models.PerformanceRating
		back   int
	}{
		{1, models.RatingPoor, 1},
		{2, models.RatingAverage, 3}, // 2 and 3 collapse into average; 2 reads back as 3
		{3, models.RatingAverage, 3},
		{4, models.RatingGood, 4},
		{5, models.RatingExcellent, 5},
	}
	for _, tt := range tests {
		bucket, err := RatingToStorage(tt.in)
		if err != nil {
			t.Fatalf("RatingToStorage(%d): %v", tt.in, err)
		}
		if bucket != tt.bucket {
			t.Errorf("RatingToStorage(%d) = %q, want %q", tt.in, bucket, tt.bucket)
		}
		if got := StorageToRating(bucket); got != tt.back {
			t.Errorf("StorageToRating(RatingToStorage(%d)) = %d, want %d", tt.in, got, tt.back)
		}
	}
}

func TestRatingOutOfRange(t *testing.T) {
	for _, n := range []int{0, -1, 6, 100} {
		if _, err := RatingToStorage(n); err == nil {
			t.Errorf("RatingToStorage(%d) succeeded, want error", n)
		}
	}
}

func TestUnknownBucketReadsAsZero(t *testing.T) {
	if got := StorageToRating(models.PerformanceRating("stellar")); got != 0 {
		t.Errorf("unknown bucket = %d, want 0", got)
	}
}
