package models

// Subject is a sub-document embedded in an AcademicRecord's subjects column.
// Marks are split into internal/external/total for theory and practical.
// Records written before the split carry only the combined TheoryMarks and
// PracticalMarks figures; the subdoc package synthesizes the split on read.
type Subject struct {
	Code              string   `json:"code" example:"CS301"`
	Name              string   `json:"name" example:"Operating Systems"`
	Credits           float64  `json:"credits" example:"4"`
	TheoryInternal    *float64 `json:"theoryInternal,omitempty"`
	TheoryExternal    *float64 `json:"theoryExternal,omitempty"`
	TheoryTotal       *float64 `json:"theoryTotal,omitempty"`
	PracticalInternal *float64 `json:"practicalInternal,omitempty"`
	PracticalExternal *float64 `json:"practicalExternal,omitempty"`
	PracticalTotal    *float64 `json:"practicalTotal,omitempty"`

	// Legacy combined figures, only present on rows stored before the
	// internal/external split was introduced.
	TheoryMarks    *float64 `json:"theoryMarks,omitempty"`
	PracticalMarks *float64 `json:"practicalMarks,omitempty"`
}
