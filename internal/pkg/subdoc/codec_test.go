package subdoc

import (
	"reflect"
	"testing"

	"github.com/campuskit/admitportal/internal/app/models"
)

func strPtr(s string) *string { return &s }

func TestStringListRoundTrip(t *testing.T) {
	cases := [][]string{
		{},
		{"golang"},
		{"sql", "docker", "react"},
		{"has space", "has \"quotes\"", "unicode ✓"},
	}
	for _, in := range cases {
		stored := EncodeStringList(in)
		out := DecodeStringList(&stored)
		if !reflect.DeepEqual(out, in) {
			t.Errorf("round trip %v: got %v", in, out)
		}
	}
}

func TestDecodeStringListShapes(t *testing.T) {
	tests := []struct {
		name   string
		stored *string
		want   []string
	}{
		{"nil column", nil, []string{}},
		{"empty string", strPtr(""), []string{}},
		{"null literal", strPtr("null"), []string{}},
		{"json array", strPtr(`["a","b"]`), []string{"a", "b"}},
		{"empty json array", strPtr(`[]`), []string{}},
		{"bare scalar wraps", strPtr(`"leadership"`), []string{"leadership"}},
		{"double encoded array", strPtr(`"[\"x\",\"y\"]"`), []string{"x", "y"}},
		{"double encoded empty array", strPtr(`"[]"`), []string{}},
		{"encoded null", strPtr(`"null"`), []string{}},
		{"encoded junk array wraps", strPtr(`"[not json"`), []string{"[not json"}},
		{"malformed yields empty", strPtr(`{not json`), []string{}},
		{"wrong type yields empty", strPtr(`42`), []string{}},
		{"whitespace only", strPtr("   "), []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeStringList(tt.stored)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodeStringList(%v) = %v, want %v", tt.stored, got, tt.want)
			}
		})
	}
}

func TestDecodeSubjectsShapes(t *testing.T) {
	array := `[{"code":"CS301","name":"Operating Systems","credits":4}]`

	t.Run("json array", func(t *testing.T) {
		got := DecodeSubjects(&array)
		if len(got) != 1 || got[0].Code != "CS301" {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("single object wraps", func(t *testing.T) {
		single := `{"code":"CS302","name":"Databases","credits":3}`
		got := DecodeSubjects(&single)
		if len(got) != 1 || got[0].Code != "CS302" {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("json encoded string", func(t *testing.T) {
		encoded := `"[{\"code\":\"CS303\",\"name\":\"Networks\",\"credits\":3}]"`
		got := DecodeSubjects(&encoded)
		if len(got) != 1 || got[0].Code != "CS303" {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("nil and malformed yield empty", func(t *testing.T) {
		for _, stored := range []*string{nil, strPtr(""), strPtr("null"), strPtr("{{bad")} {
			if got := DecodeSubjects(stored); len(got) != 0 {
				t.Errorf("DecodeSubjects(%v) = %+v, want empty", stored, got)
			}
		}
	})
}

func TestSubjectsRoundTrip(t *testing.T) {
	ti, te, tt_ := 28.0, 62.0, 90.0
	in := []models.Subject{{
		Code:           "CS304",
		Name:           "Compilers",
		Credits:        4,
		TheoryInternal: &ti,
		TheoryExternal: &te,
		TheoryTotal:    &tt_,
	}}
	stored, err := EncodeSubjects(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out := DecodeSubjects(&stored)
	if !reflect.DeepEqual(out, in) {
		t.Errorf("round trip: got %+v want %+v", out, in)
	}
}

func TestLegacySubjectMigration(t *testing.T) {
	legacy := `[{"code":"CS101","name":"Programming","credits":4,"theoryMarks":80,"practicalMarks":40}]`
	got := DecodeSubjects(&legacy)
	if len(got) != 1 {
		t.Fatalf("got %d subjects", len(got))
	}
	s := got[0]
	if s.TheoryInternal == nil || *s.TheoryInternal != 24 {
		t.Errorf("theory internal = %v, want 24", s.TheoryInternal)
	}
	if s.TheoryExternal == nil || *s.TheoryExternal != 56 {
		t.Errorf("theory external = %v, want 56", s.TheoryExternal)
	}
	if s.TheoryTotal == nil || *s.TheoryTotal != 80 {
		t.Errorf("theory total = %v, want 80", s.TheoryTotal)
	}
	if s.PracticalInternal == nil || *s.PracticalInternal != 20 {
		t.Errorf("practical internal = %v, want 20", s.PracticalInternal)
	}
	if s.PracticalExternal == nil || *s.PracticalExternal != 20 {
		t.Errorf("practical external = %v, want 20", s.PracticalExternal)
	}
	// The combined figures stay so a re-encode is lossless.
	if s.TheoryMarks == nil || *s.TheoryMarks != 80 {
		t.Errorf("theoryMarks = %v, want kept", s.TheoryMarks)
	}
}

func TestLegacyMigrationSkipsSplitRecords(t *testing.T) {
	// A record that already has the split must not be rewritten even if a
	// stray combined figure is present.
	both := `[{"code":"CS102","name":"Math","credits":3,"theoryInternal":25,"theoryExternal":60,"theoryTotal":85,"theoryMarks":99}]`
	got := DecodeSubjects(&both)
	if len(got) != 1 {
		t.Fatalf("got %d subjects", len(got))
	}
	if *got[0].TheoryInternal != 25 || *got[0].TheoryTotal != 85 {
		t.Errorf("split fields were rewritten: %+v", got[0])
	}
}
