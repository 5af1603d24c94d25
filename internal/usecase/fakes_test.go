package usecase

import (
	"context"
	"io"
	"sync"
	"time"

	"patients-care-api/internal/domain/entity"
	"patients-care-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fakeAppointmentRepo mimics the partial unique index on (doctor_id, appointment_date)
type fakeAppointmentRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*entity.Appointment
	order []uuid.UUID
}

func newFakeAppointmentRepo(list ...entity.Appointment) *fakeAppointmentRepo {
	r := &fakeAppointmentRepo{items: map[uuid.UUID]*entity.Appointment{}}
	for i := range list {
		a := list[i]
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		r.items[a.ID] = &a
		r.order = append(r.order, a.ID)
	}
	return r
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, a *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.DoctorID == a.DoctorID && existing.AppointmentDate.Equal(a.AppointmentDate) && !existing.IsCanceled() {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_appointments_doctor_slot"}
		}
	}
	a.ID = uuid.New()
	stored := *a
	r.items[a.ID] = &stored
	r.order = append(r.order, a.ID)
	return nil
}

func (r *fakeAppointmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAppointmentRepo) FindAll(ctx context.Context, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []entity.Appointment
	for _, id := range r.order {
		a := r.items[id]
		if filter != nil && filter.DoctorID != nil && a.DoctorID != *filter.DoctorID {
			continue
		}
		if filter != nil && filter.PatientID != nil && a.PatientID != *filter.PatientID {
			continue
		}
		list = append(list, *a)
	}
	return list, nil
}

func (r *fakeAppointmentRepo) MarkCompleted(ctx context.Context, ids []uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, id := range ids {
		if a, ok := r.items[id]; ok && !a.IsFinal() {
			a.Complete()
			n++
		}
	}
	return n, nil
}

func (r *fakeAppointmentRepo) Cancel(ctx context.Context, id uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.items[id]
	if !ok || a.IsFinal() {
		return 0, nil
	}
	a.Cancel()
	return 1, nil
}

func (r *fakeAppointmentRepo) status(id uuid.UUID) entity.AppointmentStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[id].Status
}

type fakeAffiliationRepo struct {
	items map[uuid.UUID]*entity.ClinicAffiliation
}

func newFakeAffiliationRepo(list ...*entity.ClinicAffiliation) *fakeAffiliationRepo {
	r := &fakeAffiliationRepo{items: map[uuid.UUID]*entity.ClinicAffiliation{}}
	for _, a := range list {
		r.items[a.ID] = a
	}
	return r
}

func (r *fakeAffiliationRepo) Create(ctx context.Context, a *entity.ClinicAffiliation) error {
	for _, existing := range r.items {
		if existing.DoctorID == a.DoctorID && existing.ClinicID == a.ClinicID {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_clinic_affiliations_doctor_clinic"}
		}
	}
	a.ID = uuid.New()
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *fakeAffiliationRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.ClinicAffiliation, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAffiliationRepo) FindAll(ctx context.Context) ([]entity.ClinicAffiliation, error) {
	var list []entity.ClinicAffiliation
	for _, a := range r.items {
		list = append(list, *a)
	}
	return list, nil
}

func (r *fakeAffiliationRepo) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.ClinicAffiliation, error) {
	var list []entity.ClinicAffiliation
	for _, a := range r.items {
		if a.DoctorID == doctorID {
			list = append(list, *a)
		}
	}
	return list, nil
}

func (r *fakeAffiliationRepo) FindByDoctorAndClinic(ctx context.Context, doctorID, clinicID uuid.UUID) (*entity.ClinicAffiliation, error) {
	for _, a := range r.items {
		if a.DoctorID == doctorID && a.ClinicID == clinicID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAffiliationRepo) Update(ctx context.Context, a *entity.ClinicAffiliation) error {
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *fakeAffiliationRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

type fakeClinicRepo struct {
	items map[uuid.UUID]*entity.Clinic
}

func newFakeClinicRepo(list ...*entity.Clinic) *fakeClinicRepo {
	r := &fakeClinicRepo{items: map[uuid.UUID]*entity.Clinic{}}
	for _, c := range list {
		r.items[c.ID] = c
	}
	return r
}

func (r *fakeClinicRepo) Create(ctx context.Context, c *entity.Clinic) error {
	c.ID = uuid.New()
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeClinicRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Clinic, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClinicRepo) FindAll(ctx context.Context) ([]entity.Clinic, error) {
	var list []entity.Clinic
	for _, c := range r.items {
		list = append(list, *c)
	}
	return list, nil
}

func (r *fakeClinicRepo) Update(ctx context.Context, c *entity.Clinic) error {
	photo := r.items[c.ID].Photo
	cp := *c
	cp.Photo = photo
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeClinicRepo) UpdatePhoto(ctx context.Context, id uuid.UUID, photo *string) error {
	r.items[id].Photo = photo
	return nil
}

func (r *fakeClinicRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.items[id]; !ok {
		return 0, nil
	}
	delete(r.items, id)
	return 1, nil
}

type fakeDoctorRepo struct {
	items map[uuid.UUID]*entity.Doctor
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{items: map[uuid.UUID]*entity.Doctor{}}
}

func (r *fakeDoctorRepo) Create(ctx context.Context, d *entity.Doctor) error {
	for _, existing := range r.items {
		if existing.Email == d.Email {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_doctors_email"}
		}
	}
	d.ID = uuid.New()
	cp := *d
	r.items[d.ID] = &cp
	return nil
}

func (r *fakeDoctorRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	d, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDoctorRepo) FindByEmail(ctx context.Context, email string) (*entity.Doctor, error) {
	for _, d := range r.items {
		if d.Email == email {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeDoctorRepo) FindAll(ctx context.Context, filter *entity.DoctorFilter) ([]entity.Doctor, error) {
	var list []entity.Doctor
	for _, d := range r.items {
		list = append(list, *d)
	}
	return list, nil
}

func (r *fakeDoctorRepo) UpdateProfile(ctx context.Context, d *entity.Doctor) error {
	existing := r.items[d.ID]
	existing.Name, existing.Surname, existing.Email = d.Name, d.Surname, d.Email
	existing.ProfessionalStatement = d.ProfessionalStatement
	return nil
}

func (r *fakeDoctorRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	r.items[id].Password = hash
	return nil
}

func (r *fakeDoctorRepo) UpdatePhoto(ctx context.Context, id uuid.UUID, photo *string) error {
	r.items[id].Photo = photo
	return nil
}

func (r *fakeDoctorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

type fakePatientRepo struct {
	items map[uuid.UUID]*entity.Patient
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{items: map[uuid.UUID]*entity.Patient{}}
}

func (r *fakePatientRepo) Create(ctx context.Context, p *entity.Patient) error {
	for _, existing := range r.items {
		if existing.Email == p.Email {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_patients_email"}
		}
	}
	p.ID = uuid.New()
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakePatientRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePatientRepo) FindByEmail(ctx context.Context, email string) (*entity.Patient, error) {
	for _, p := range r.items {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakePatientRepo) FindAll(ctx context.Context) ([]entity.Patient, error) {
	var list []entity.Patient
	for _, p := range r.items {
		list = append(list, *p)
	}
	return list, nil
}

func (r *fakePatientRepo) UpdateProfile(ctx context.Context, p *entity.Patient) error {
	existing := r.items[p.ID]
	existing.Name, existing.Surname, existing.Email = p.Name, p.Surname, p.Email
	existing.PhoneNumber, existing.Address = p.PhoneNumber, p.Address
	return nil
}

func (r *fakePatientRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	r.items[id].Password = hash
	return nil
}

func (r *fakePatientRepo) UpdatePhoto(ctx context.Context, id uuid.UUID, photo *string) error {
	r.items[id].Photo = photo
	return nil
}

func (r *fakePatientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

type auditEntry struct {
	actor  entity.Identity
	action string
}

type fakeAuditService struct {
	mu      sync.Mutex
	entries []auditEntry
}

func (s *fakeAuditService) add(actor entity.Identity, action string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, auditEntry{actor: actor, action: action})
}

func (s *fakeAuditService) LogCreate(ctx context.Context, actor entity.Identity, action, entityName, entityID string, newValue interface{}) {
	s.add(actor, action)
}

func (s *fakeAuditService) LogUpdate(ctx context.Context, actor entity.Identity, action, entityName, entityID string, oldValue, newValue interface{}) {
	s.add(actor, action)
}

func (s *fakeAuditService) LogDelete(ctx context.Context, actor entity.Identity, action, entityName, entityID string, oldValue interface{}) {
	s.add(actor, action)
}

func (s *fakeAuditService) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.action
	}
	return out
}

type fakeTokenStore struct {
	tokens map[string]bool
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: map[string]bool{}}
}

func (s *fakeTokenStore) key(tokenType jwt.TokenType, userID uuid.UUID, tokenID string) string {
	return string(tokenType) + ":" + userID.String() + ":" + tokenID
}

func (s *fakeTokenStore) Store(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	s.tokens[s.key(tokenType, userID, tokenID)] = true
	return nil
}

func (s *fakeTokenStore) Exists(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) (bool, error) {
	return s.tokens[s.key(tokenType, userID, tokenID)], nil
}

func (s *fakeTokenStore) Revoke(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) error {
	delete(s.tokens, s.key(tokenType, userID, tokenID))
	return nil
}

func (s *fakeTokenStore) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	for k := range s.tokens {
		for _, t := range []jwt.TokenType{jwt.AccessToken, jwt.RefreshToken} {
			prefix := string(t) + ":" + userID.String() + ":"
			if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
				delete(s.tokens, k)
			}
		}
	}
	return nil
}

type fakePhotoStorage struct {
	saved   int
	removed []string
}

func (s *fakePhotoStorage) Save(r io.Reader) (string, error) {
	s.saved++
	return "uploads/" + uuid.NewString() + ".png", nil
}

func (s *fakePhotoStorage) Remove(publicPath string) error {
	s.removed = append(s.removed, publicPath)
	return nil
}
