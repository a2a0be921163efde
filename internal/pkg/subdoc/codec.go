// Package subdoc handles the serialized sub-document columns: JSON lists
// stored as text, the internship rating transcoder, and the legacy subject
// shape migration. Decoding is deliberately forgiving because corrupt
// historical rows must not break reads.
package subdoc

import (
	"bytes"
	"encoding/json"

	"github.com/campuskit/admitportal/internal/app/models"
)

// maxEncodingDepth bounds how many layers of string-encoded JSON a decode
// will peel. Historical rows were observed double-encoded at most.
const maxEncodingDepth = 3

// EncodeStringList serializes a list of strings for storage. A nil list
// encodes as an empty JSON array so DecodeStringList round-trips it.
func EncodeStringList(values []string) string {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		// A []string cannot fail to marshal; keep the column well-formed anyway.
		return "[]"
	}
	return string(data)
}

// DecodeStringList deserializes a stored list column. It tolerates a JSON
// array, a bare scalar string (wrapped into a one-element list), a
// JSON-encoded string containing the array, and null/empty/malformed input
// (all of which yield an empty list, never an error).
func DecodeStringList(stored *string) []string {
	if stored == nil {
		return []string{}
	}
	return decodeStringList([]byte(*stored), 0)
}

func decodeStringList(data []byte, depth int) []string {
	trim := bytes.TrimSpace(data)
	if len(trim) == 0 || bytes.Equal(trim, []byte("null")) {
		return []string{}
	}

	var list []string
	if err := json.Unmarshal(trim, &list); err == nil {
		if list == nil {
			return []string{}
		}
		return list
	}

	var encoded string
	if err := json.Unmarshal(trim, &encoded); err == nil {
		inner := bytes.TrimSpace([]byte(encoded))
		if len(inner) == 0 || bytes.Equal(inner, []byte("null")) {
			return []string{}
		}
		// An inner payload that is itself JSON (an array, possibly empty, or
		// another layer of string encoding) decodes on its own terms.
		if depth < maxEncodingDepth && (inner[0] == '[' || inner[0] == '"') && json.Valid(inner) {
			return decodeStringList(inner, depth+1)
		}
		// A plain scalar wraps into a one-element list.
		return []string{encoded}
	}

	return []string{}
}

// EncodeSubjects serializes a subject list for storage.
func EncodeSubjects(subjects []models.Subject) (string, error) {
	if subjects == nil {
		subjects = []models.Subject{}
	}
	data, err := json.Marshal(subjects)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeSubjects deserializes a stored subjects column. The same four input
// shapes as DecodeStringList are tolerated: a JSON array, a single JSON
// object (wrapped into a one-element list), a JSON-encoded string of either,
// and null/empty/malformed input yielding an empty list. Every decoded
// subject is passed through the legacy shape migration.
func DecodeSubjects(stored *string) []models.Subject {
	if stored == nil {
		return []models.Subject{}
	}
	return decodeSubjects([]byte(*stored), 0)
}

func decodeSubjects(data []byte, depth int) []models.Subject {
	trim := bytes.TrimSpace(data)
	if len(trim) == 0 || bytes.Equal(trim, []byte("null")) {
		return []models.Subject{}
	}

	switch trim[0] {
	case '[':
		var list []models.Subject
		if err := json.Unmarshal(trim, &list); err == nil {
			for i := range list {
				migrateLegacySubject(&list[i])
			}
			if list == nil {
				return []models.Subject{}
			}
			return list
		}
	case '{':
		var single models.Subject
		if err := json.Unmarshal(trim, &single); err == nil {
			migrateLegacySubject(&single)
			return []models.Subject{single}
		}
	case '"':
		var encoded string
		if err := json.Unmarshal(trim, &encoded); err == nil && depth < maxEncodingDepth {
			return decodeSubjects([]byte(encoded), depth+1)
		}
	}

	return []models.Subject{}
}

// migrateLegacySubject synthesizes the internal/external split for subjects
// that carry only the combined theoryMarks/practicalMarks figures. The split
// is a heuristic (theory 30/70, practical 50/50), not a recovery of ground
// truth; the combined figures stay on the struct so a re-encode is lossless.
func migrateLegacySubject(s *models.Subject) {
	if s.TheoryInternal == nil && s.TheoryExternal == nil && s.TheoryTotal == nil && s.TheoryMarks != nil {
		internal := *s.TheoryMarks * 0.3
		external := *s.TheoryMarks * 0.7
		total := *s.TheoryMarks
		s.TheoryInternal = &internal
		s.TheoryExternal = &external
		s.TheoryTotal = &total
	}
	if s.PracticalInternal == nil && s.PracticalExternal == nil && s.PracticalTotal == nil && s.PracticalMarks != nil {
		internal := *s.PracticalMarks * 0.5
		external := *s.PracticalMarks * 0.5
		total := *s.PracticalMarks
		s.PracticalInternal = &internal
		s.PracticalExternal = &external
		s.PracticalTotal = &total
	}
}
