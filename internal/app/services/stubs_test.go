package services

import (
	"context"
	"sort"

	"github.com/jackc/pgx/v5"

	"github.com/campuskit/admitportal/internal/app/models"
)

// In-memory store stubs. They keep just enough bookkeeping for the service
// flows under test; ids are assigned sequentially per stub.

type stubStudentStore struct {
	students map[int64]*models.Student
	// last ApplyFieldUpdates call, for assertions
	appliedUpdates  map[string]string
	appliedStatus   models.StudentStatus
	appliedDeclined []string
}

func newStubStudentStore(students ...*models.Student) *stubStudentStore {
	s := &stubStudentStore{students: make(map[int64]*models.Student)}
	for _, st := range students {
		s.students[st.ID] = st
	}
	return s
}

func (s *stubStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	st, ok := s.students[id]
	if !ok {
		return nil, nil
	}
	copied := *st
	copied.DeclinedFields = append([]string(nil), st.DeclinedFields...)
	return &copied, nil
}

func (s *stubStudentStore) List(_ context.Context, status *models.StudentStatus, offset uint64, limit int) ([]models.Student, int64, error) {
	ids := make([]int64, 0, len(s.students))
	for id := range s.students {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	matched := make([]models.Student, 0)
	for _, id := range ids {
		st := s.students[id]
		if status != nil && st.Status != *status {
			continue
		}
		matched = append(matched, *st)
	}
	total := int64(len(matched))

	if offset >= uint64(len(matched)) {
		return []models.Student{}, total, nil
	}
	matched = matched[offset:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (s *stubStudentStore) UpdateStatus(_ context.Context, id int64, status models.StudentStatus, declinedFields []string) error {
	st, ok := s.students[id]
	if !ok {
		return pgx.ErrNoRows
	}
	st.Status = status
	st.DeclinedFields = declinedFields
	return nil
}

func (s *stubStudentStore) ApplyFieldUpdates(_ context.Context, id int64, updates map[string]string, status models.StudentStatus, declinedFields []string) error {
	st, ok := s.students[id]
	if !ok {
		return pgx.ErrNoRows
	}
	s.appliedUpdates = updates
	s.appliedStatus = status
	s.appliedDeclined = declinedFields

	for path, value := range updates {
		v := value
		switch path {
		case "course":
			st.Course = v
		case "father.mobile":
			st.FatherMobile = &v
		case "mother.name":
			st.MotherName = &v
		case "mobile":
			st.Mobile = &v
		}
	}
	st.Status = status
	st.DeclinedFields = declinedFields
	return nil
}

type stubHeaderStore struct {
	headers map[int64]*models.SARHeader // keyed by student id
	nextID  int64
}

func newStubHeaderStore() *stubHeaderStore {
	return &stubHeaderStore{headers: make(map[int64]*models.SARHeader), nextID: 1}
}

func (s *stubHeaderStore) GetByStudentID(_ context.Context, studentID int64) (*models.SARHeader, error) {
	h, ok := s.headers[studentID]
	if !ok {
		return nil, nil
	}
	return h, nil
}

func (s *stubHeaderStore) GetOrCreateForStudent(_ context.Context, studentID int64) (*models.SARHeader, error) {
	if h, ok := s.headers[studentID]; ok {
		return h, nil
	}
	h := &models.SARHeader{ID: s.nextID, StudentID: studentID, CurrentSemester: 1}
	s.nextID++
	s.headers[studentID] = h
	return h, nil
}

func (s *stubHeaderStore) Update(_ context.Context, header *models.SARHeader) error {
	s.headers[header.StudentID] = header
	return nil
}

func (s *stubHeaderStore) UpdateCompletion(_ context.Context, headerID int64, percentage float64) error {
	for _, h := range s.headers {
		if h.ID == headerID {
			h.ProfileCompletionPercentage = percentage
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (s *stubHeaderStore) GetByEnrollmentNo(_ context.Context, enrollmentNo string) (*models.SARHeader, error) {
	for _, h := range s.headers {
		if h.EnrollmentNo == enrollmentNo {
			return h, nil
		}
	}
	return nil, nil
}

type stubAcademicStore struct {
	records map[int64]*models.AcademicRecord
	nextID  int64
}

func newStubAcademicStore() *stubAcademicStore {
	return &stubAcademicStore{records: make(map[int64]*models.AcademicRecord), nextID: 1}
}

func (s *stubAcademicStore) ListBySAR(_ context.Context, sarID int64) ([]models.AcademicRecord, error) {
	out := make([]models.AcademicRecord, 0)
	for _, r := range s.records {
		if r.SARID == sarID {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Semester < out[j].Semester })
	return out, nil
}

func (s *stubAcademicStore) GetByID(_ context.Context, sarID, id int64) (*models.AcademicRecord, error) {
	r, ok := s.records[id]
	if !ok || r.SARID != sarID {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (s *stubAcademicStore) ExistsForSemester(_ context.Context, sarID int64, semester int) (bool, error) {
	for _, r := range s.records {
		if r.SARID == sarID && r.Semester == semester {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubAcademicStore) Create(_ context.Context, rec *models.AcademicRecord) (int64, error) {
	id := s.nextID
	s.nextID++
	copied := *rec
	copied.ID = id
	s.records[id] = &copied
	return id, nil
}

func (s *stubAcademicStore) Update(_ context.Context, rec *models.AcademicRecord) error {
	r, ok := s.records[rec.ID]
	if !ok || r.SARID != rec.SARID {
		return pgx.ErrNoRows
	}
	copied := *rec
	s.records[rec.ID] = &copied
	return nil
}

func (s *stubAcademicStore) Delete(_ context.Context, sarID, id int64) error {
	r, ok := s.records[id]
	if !ok || r.SARID != sarID {
		return pgx.ErrNoRows
	}
	delete(s.records, id)
	return nil
}

type stubInternshipStore struct {
	records map[int64]*models.InternshipRecord
	nextID  int64
}

func newStubInternshipStore() *stubInternshipStore {
	return &stubInternshipStore{records: make(map[int64]*models.InternshipRecord), nextID: 1}
}

func (s *stubInternshipStore) ListBySAR(_ context.Context, sarID int64) ([]models.InternshipRecord, error) {
	out := make([]models.InternshipRecord, 0)
	for _, r := range s.records {
		if r.SARID == sarID {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubInternshipStore) GetByID(_ context.Context, sarID, id int64) (*models.InternshipRecord, error) {
	r, ok := s.records[id]
	if !ok || r.SARID != sarID {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (s *stubInternshipStore) Create(_ context.Context, rec *models.InternshipRecord) (int64, error) {
	id := s.nextID
	s.nextID++
	copied := *rec
	copied.ID = id
	s.records[id] = &copied
	return id, nil
}

func (s *stubInternshipStore) Update(_ context.Context, rec *models.InternshipRecord) error {
	r, ok := s.records[rec.ID]
	if !ok || r.SARID != rec.SARID {
		return pgx.ErrNoRows
	}
	copied := *rec
	s.records[rec.ID] = &copied
	return nil
}

func (s *stubInternshipStore) Delete(_ context.Context, sarID, id int64) error {
	r, ok := s.records[id]
	if !ok || r.SARID != sarID {
		return pgx.ErrNoRows
	}
	delete(s.records, id)
	return nil
}

type stubAchievementStore struct {
	records map[int64]*models.AchievementRecord
	nextID  int64
}

func newStubAchievementStore() *stubAchievementStore {
	return &stubAchievementStore{records: make(map[int64]*models.AchievementRecord), nextID: 1}
}

func (s *stubAchievementStore) ListBySAR(_ context.Context, sarID int64) ([]models.AchievementRecord, error) {
	out := make([]models.AchievementRecord, 0)
	for _, r := range s.records {
		if r.SARID == sarID {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubAchievementStore) GetByID(_ context.Context, sarID, id int64) (*models.AchievementRecord, error) {
	r, ok := s.records[id]
	if !ok || r.SARID != sarID {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (s *stubAchievementStore) Create(_ context.Context, rec *models.AchievementRecord) (int64, error) {
	id := s.nextID
	s.nextID++
	copied := *rec
	copied.ID = id
	s.records[id] = &copied
	return id, nil
}

func (s *stubAchievementStore) Update(_ context.Context, rec *models.AchievementRecord) error {
	r, ok := s.records[rec.ID]
	if !ok || r.SARID != rec.SARID {
		return pgx.ErrNoRows
	}
	copied := *rec
	s.records[rec.ID] = &copied
	return nil
}

func (s *stubAchievementStore) Delete(_ context.Context, sarID, id int64) error {
	r, ok := s.records[id]
	if !ok || r.SARID != sarID {
		return pgx.ErrNoRows
	}
	delete(s.records, id)
	return nil
}

// stubMailer records notification calls for the review workflow tests.
type stubMailer struct {
	approvals []string
	declines  []string
	fields    [][]string
	err       error
}

func (m *stubMailer) SendApprovalNotification(toEmail, _ string) error {
	m.approvals = append(m.approvals, toEmail)
	return m.err
}

func (m *stubMailer) SendDeclineNotification(toEmail, _ string, declinedFields []string) error {
	m.declines = append(m.declines, toEmail)
	m.fields = append(m.fields, declinedFields)
	return m.err
}
