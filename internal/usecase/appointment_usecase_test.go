package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"patients-care-api/internal/delivery/dto"
	"patients-care-api/internal/domain/entity"
	"patients-care-api/pkg/paginate"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type appointmentFixture struct {
	usecase      *appointmentUsecase
	repo         *fakeAppointmentRepo
	audit        *fakeAuditService
	affiliation  *entity.ClinicAffiliation
	doctor       entity.Identity
	patient      entity.Identity
	otherPatient entity.Identity
}

func newAppointmentFixture(now time.Time, existing ...entity.Appointment) *appointmentFixture {
	f := &appointmentFixture{
		repo:         newFakeAppointmentRepo(existing...),
		audit:        &fakeAuditService{},
		doctor:       entity.Identity{UserID: uuid.New(), Name: "Anna", Surname: "Nowak", Role: entity.RoleDoctor},
		patient:      entity.Identity{UserID: uuid.New(), Name: "Jan", Surname: "Kowalski", Role: entity.RolePatient},
		otherPatient: entity.Identity{UserID: uuid.New(), Name: "Ewa", Surname: "Lis", Role: entity.RolePatient},
	}
	f.affiliation = &entity.ClinicAffiliation{
		ID:              uuid.New(),
		DoctorID:        f.doctor.UserID,
		ClinicID:        uuid.New(),
		ClinicName:      "Smith Clinic",
		ConsultationFee: decimal.NewFromInt(150),
		TimePerPatient:  30,
	}
	uc := NewAppointmentUsecase(newTestLogger(), f.repo, newFakeAffiliationRepo(f.affiliation), f.audit, time.UTC).(*appointmentUsecase)
	uc.now = func() time.Time { return now }
	f.usecase = uc
	return f
}

func (f *appointmentFixture) request(date string) *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		DoctorID:            f.affiliation.DoctorID,
		ClinicID:            f.affiliation.ClinicID,
		ClinicAffiliationID: f.affiliation.ID,
		AppointmentDate:     date,
		ConsultationFee:     decimal.NewFromInt(150),
		AppointmentAddress:  &dto.AddressRequest{Street: "Main 1", City: "Warsaw", PostalCode: "00-001"},
		AppointmentStatus:   "active",
		TimePerPatient:      30,
	}
}

func TestCreateAppointment(t *testing.T) {
	f := newAppointmentFixture(time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC))

	resp, err := f.usecase.Create(context.Background(), f.patient, f.request("2024-01-01 10:00"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if resp.AppointmentDate != "2024-01-01 10:00" {
		t.Errorf("AppointmentDate = %q, want %q", resp.AppointmentDate, "2024-01-01 10:00")
	}
	if resp.EstimatedEndDate != "2024-01-01 10:30" {
		t.Errorf("EstimatedEndDate = %q, want %q", resp.EstimatedEndDate, "2024-01-01 10:30")
	}
	if resp.PatientID != f.patient.UserID {
		t.Errorf("PatientID = %s, want caller %s", resp.PatientID, f.patient.UserID)
	}
	if resp.AppointmentStatus != "active" {
		t.Errorf("AppointmentStatus = %q, want active", resp.AppointmentStatus)
	}
	if got := f.audit.actions(); len(got) != 1 || got[0] != entity.AuditActionAppointmentCreate {
		t.Errorf("audit actions = %v, want [%s]", got, entity.AuditActionAppointmentCreate)
	}
}

func TestCreateAppointmentRejectsTakenSlot(t *testing.T) {
	f := newAppointmentFixture(time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC))
	ctx := context.Background()

	first, err := f.usecase.Create(ctx, f.patient, f.request("2024-01-01 10:00"))
	if err != nil {
		t.Fatalf("first Create() error = %v", err)
	}

	_, err = f.usecase.Create(ctx, f.otherPatient, f.request("2024-01-01 10:00"))
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("second Create() error = %v, want %v", err, ErrSlotTaken)
	}

	// a canceled appointment frees its slot
	if err := f.usecase.Cancel(ctx, f.patient, first.ID); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if _, err := f.usecase.Create(ctx, f.otherPatient, f.request("2024-01-01 10:00")); err != nil {
		t.Fatalf("Create() after cancel error = %v", err)
	}
}

func TestCreateAppointmentValidation(t *testing.T) {
	f := newAppointmentFixture(time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC))

	tests := []struct {
		name   string
		modify func(*dto.CreateAppointmentRequest)
		want   error
	}{
		{
			name:   "unparseable date",
			modify: func(r *dto.CreateAppointmentRequest) { r.AppointmentDate = "tomorrow" },
			want:   ErrInvalidDate,
		},
		{
			name:   "zero fee",
			modify: func(r *dto.CreateAppointmentRequest) { r.ConsultationFee = decimal.Zero },
			want:   ErrBadObjectStructure,
		},
		{
			name:   "unknown affiliation",
			modify: func(r *dto.CreateAppointmentRequest) { r.ClinicAffiliationID = uuid.New() },
			want:   ErrAffiliationNotFound,
		},
		{
			name:   "affiliation of another doctor",
			modify: func(r *dto.CreateAppointmentRequest) { r.DoctorID = uuid.New() },
			want:   ErrBadObjectStructure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := f.request("2024-01-02 12:00")
			tt.modify(req)
			_, err := f.usecase.Create(context.Background(), f.patient, req)
			if !errors.Is(err, tt.want) {
				t.Errorf("Create() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCancelAppointment(t *testing.T) {
	f := newAppointmentFixture(time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC))
	ctx := context.Background()

	created, err := f.usecase.Create(ctx, f.patient, f.request("2024-01-01 10:00"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := f.usecase.Cancel(ctx, f.otherPatient, created.ID); !errors.Is(err, ErrNoActionAllowed) {
		t.Errorf("Cancel() by stranger error = %v, want %v", err, ErrNoActionAllowed)
	}
	if err := f.usecase.Cancel(ctx, f.doctor, created.ID); err != nil {
		t.Fatalf("Cancel() by owning doctor error = %v", err)
	}
	if got := f.repo.status(created.ID); got != entity.AppointmentStatusCanceled {
		t.Errorf("status = %q, want canceled", got)
	}
	if err := f.usecase.Cancel(ctx, f.patient, created.ID); !errors.Is(err, ErrAlreadyCanceled) {
		t.Errorf("second Cancel() error = %v, want %v", err, ErrAlreadyCanceled)
	}
	if err := f.usecase.Cancel(ctx, f.patient, uuid.New()); !errors.Is(err, ErrAppointmentNotFound) {
		t.Errorf("Cancel() of missing error = %v, want %v", err, ErrAppointmentNotFound)
	}
}

func TestCancelCompletedAppointment(t *testing.T) {
	f := newAppointmentFixture(time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC))
	done := entity.Appointment{
		ID:        uuid.New(),
		PatientID: f.patient.UserID,
		DoctorID:  f.doctor.UserID,
		Status:    entity.AppointmentStatusCompleted,
	}
	f.repo = newFakeAppointmentRepo(done)
	f.usecase.appointmentRepo = f.repo

	if err := f.usecase.Cancel(context.Background(), f.patient, done.ID); !errors.Is(err, ErrAlreadyCompleted) {
		t.Errorf("Cancel() error = %v, want %v", err, ErrAlreadyCompleted)
	}
}

func TestListMineCompletesDueAppointments(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 30, 0, time.UTC)
	f := newAppointmentFixture(now)

	at := func(hour int, status entity.AppointmentStatus) entity.Appointment {
		return entity.Appointment{
			ID:              uuid.New(),
			PatientID:       f.patient.UserID,
			DoctorID:        f.doctor.UserID,
			AppointmentDate: time.Date(2024, 1, 1, hour, 0, 0, 0, time.UTC),
			Status:          status,
		}
	}
	past := at(8, entity.AppointmentStatusActive)
	sameMinute := at(9, entity.AppointmentStatusPostponed)
	future := at(10, entity.AppointmentStatusActive)
	canceled := at(7, entity.AppointmentStatusCanceled)

	f.repo = newFakeAppointmentRepo(past, sameMinute, future, canceled)
	f.usecase.appointmentRepo = f.repo

	result, err := f.usecase.ListMine(context.Background(), f.patient, paginate.Query{PageSize: 10, Page: 1})
	if err != nil {
		t.Fatalf("ListMine() error = %v", err)
	}
	if result.TotalItems != 4 {
		t.Errorf("TotalItems = %d, want 4", result.TotalItems)
	}

	want := map[uuid.UUID]entity.AppointmentStatus{
		past.ID:       entity.AppointmentStatusCompleted,
		sameMinute.ID: entity.AppointmentStatusCompleted,
		future.ID:     entity.AppointmentStatusActive,
		canceled.ID:   entity.AppointmentStatusCanceled,
	}
	for id, status := range want {
		if got := f.repo.status(id); got != status {
			t.Errorf("stored status of %s = %q, want %q", id, got, status)
		}
	}
	for _, a := range result.Data {
		if a.AppointmentStatus != string(want[a.ID]) {
			t.Errorf("returned status of %s = %q, want %q", a.ID, a.AppointmentStatus, want[a.ID])
		}
	}

	f.audit.mu.Lock()
	entries := append([]auditEntry(nil), f.audit.entries...)
	f.audit.mu.Unlock()
	if len(entries) != 1 || entries[0].action != entity.AuditActionAppointmentDone {
		t.Fatalf("audit entries = %+v, want one %s", entries, entity.AuditActionAppointmentDone)
	}
	if entries[0].actor != (entity.Identity{}) {
		t.Errorf("completion audited as %+v, want the system actor", entries[0].actor)
	}
}

func TestListMineSearchSortPaginate(t *testing.T) {
	f := newAppointmentFixture(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	clinic := func(name string) *entity.Clinic {
		return &entity.Clinic{ID: uuid.New(), ClinicName: name}
	}
	var list []entity.Appointment
	for i, name := range []string{"Smith Clinic", "Blacksmith Care", "Smile Dental", "Alpha Med"} {
		list = append(list, entity.Appointment{
			ID:              uuid.New(),
			PatientID:       f.patient.UserID,
			DoctorID:        f.doctor.UserID,
			AppointmentDate: time.Date(2024, 2, 1+i, 10, 0, 0, 0, time.UTC),
			Status:          entity.AppointmentStatusActive,
			Clinic:          clinic(name),
		})
	}
	// belongs to someone else
	list = append(list, entity.Appointment{
		ID:              uuid.New(),
		PatientID:       f.otherPatient.UserID,
		DoctorID:        f.doctor.UserID,
		AppointmentDate: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Status:          entity.AppointmentStatusActive,
		Clinic:          clinic("Smith Clinic"),
	})
	f.repo = newFakeAppointmentRepo(list...)
	f.usecase.appointmentRepo = f.repo

	tests := []struct {
		name      string
		query     paginate.Query
		wantNames []string
		wantTotal int
		wantPages int
	}{
		{
			name:      "prefix search ignores inner matches",
			query:     paginate.Query{Search: "sm", PageSize: 10, Page: 1},
			wantNames: []string{"Smith Clinic", "Smile Dental"},
			wantTotal: 2,
			wantPages: 1,
		},
		{
			name:      "sort by clinic name descending",
			query:     paginate.Query{SortBy: "clinicName", Direction: paginate.Desc, PageSize: 10, Page: 1},
			wantNames: []string{"Smith Clinic", "Smile Dental", "Blacksmith Care", "Alpha Med"},
			wantTotal: 4,
			wantPages: 1,
		},
		{
			name:      "second page",
			query:     paginate.Query{SortBy: "clinicName", PageSize: 3, Page: 2},
			wantNames: []string{"Smith Clinic"},
			wantTotal: 4,
			wantPages: 2,
		},
		{
			name:      "page past the end",
			query:     paginate.Query{PageSize: 3, Page: 5},
			wantNames: []string{},
			wantTotal: 4,
			wantPages: 2,
		},
		{
			name:      "status filter",
			query:     paginate.Query{Filter: "canceled", PageSize: 10, Page: 1},
			wantNames: []string{},
			wantTotal: 0,
			wantPages: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := f.usecase.ListMine(context.Background(), f.patient, tt.query)
			if err != nil {
				t.Fatalf("ListMine() error = %v", err)
			}
			if result.TotalItems != tt.wantTotal || result.NumOfPages != tt.wantPages {
				t.Errorf("totals = (%d, %d), want (%d, %d)", result.TotalItems, result.NumOfPages, tt.wantTotal, tt.wantPages)
			}
			if len(result.Data) != len(tt.wantNames) {
				t.Fatalf("len(Data) = %d, want %d", len(result.Data), len(tt.wantNames))
			}
			for i, a := range result.Data {
				if a.ClinicInfo == nil || a.ClinicInfo.ClinicName != tt.wantNames[i] {
					t.Errorf("Data[%d] clinic = %+v, want %q", i, a.ClinicInfo, tt.wantNames[i])
				}
			}
		})
	}
}

func TestListByDoctorHidesPatients(t *testing.T) {
	f := newAppointmentFixture(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	f.repo = newFakeAppointmentRepo(entity.Appointment{
		PatientID:       f.patient.UserID,
		DoctorID:        f.doctor.UserID,
		AppointmentDate: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
		Status:          entity.AppointmentStatusActive,
		Patient:         &entity.Patient{ID: f.patient.UserID, Name: "Jan", PhoneNumber: "123456789"},
	})
	f.usecase.appointmentRepo = f.repo

	list, err := f.usecase.ListByDoctor(context.Background(), f.doctor.UserID)
	if err != nil {
		t.Fatalf("ListByDoctor() error = %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1", len(list))
	}
	if list[0].PatientInfo != nil {
		t.Errorf("PatientInfo = %+v, want nil", list[0].PatientInfo)
	}
}
