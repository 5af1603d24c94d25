package usecase

import (
	"context"
	"strings"
	"time"

	"patients-care-api/internal/converter"
	"patients-care-api/internal/delivery/dto"
	"patients-care-api/internal/domain/entity"
	"patients-care-api/internal/domain/repository"
	"patients-care-api/internal/infrastructure/metrics"
	"patients-care-api/internal/service"
	"patients-care-api/pkg/paginate"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type AppointmentUsecase interface {
	Create(ctx context.Context, actor entity.Identity, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	ListMine(ctx context.Context, actor entity.Identity, q paginate.Query) (*paginate.Result[dto.AppointmentResponse], error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]dto.AppointmentResponse, error)
	Cancel(ctx context.Context, actor entity.Identity, appointmentID uuid.UUID) error
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	affiliationRepo repository.ClinicAffiliationRepository
	auditService    service.AuditService
	loc             *time.Location
	now             func() time.Time
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	affiliationRepo repository.ClinicAffiliationRepository,
	auditService service.AuditService,
	loc *time.Location,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		affiliationRepo: affiliationRepo,
		auditService:    auditService,
		loc:             loc,
		now:             time.Now,
	}
}

// Create books a slot for the calling patient. The slot check and the insert are a
// single statement: the partial unique index on (doctor_id, appointment_date)
// rejects a second live appointment.
func (u *appointmentUsecase) Create(ctx context.Context, actor entity.Identity, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := parseAppointmentDate(req.AppointmentDate, u.loc)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if !req.ConsultationFee.GreaterThan(decimal.Zero) {
		return nil, ErrBadObjectStructure
	}

	affiliation, err := u.affiliationRepo.FindByID(ctx, req.ClinicAffiliationID)
	if err != nil {
		u.log.Warnf("Failed to find clinic affiliation %s: %+v", req.ClinicAffiliationID, err)
		return nil, err
	}
	if affiliation == nil {
		return nil, ErrAffiliationNotFound
	}
	if affiliation.DoctorID != req.DoctorID || affiliation.ClinicID != req.ClinicID {
		return nil, ErrBadObjectStructure
	}

	appointment := &entity.Appointment{
		PatientID:           actor.UserID,
		DoctorID:            req.DoctorID,
		ClinicID:            req.ClinicID,
		ClinicAffiliationID: req.ClinicAffiliationID,
		AppointmentDate:     date,
		EstimatedEndDate:    date.Add(time.Duration(req.TimePerPatient) * time.Minute),
		AppointmentAddress:  converter.AddressFromRequest(req.AppointmentAddress),
		Status:              entity.AppointmentStatus(req.AppointmentStatus),
		ConsultationFee:     req.ConsultationFee,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		if isDuplicateKeyError(err, "uq_appointments_doctor_slot") {
			metrics.RecordAppointmentConflict()
			return nil, ErrSlotTaken
		}
		if isForeignKeyError(err, "patient_id") {
			return nil, ErrPatientNotFound
		}
		if isForeignKeyError(err, "") {
			return nil, ErrAffiliationNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	metrics.RecordAppointmentTransition("created", 1)
	u.auditService.LogCreate(ctx, actor, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), map[string]interface{}{
		"doctor_id":        appointment.DoctorID,
		"appointment_date": appointment.AppointmentDate,
		"status":           appointment.Status,
	})

	return converter.AppointmentToResponse(appointment, u.loc), nil
}

// ListMine returns the caller's appointments after completing the ones already due,
// then applies search, status filter, sort and paging
func (u *appointmentUsecase) ListMine(ctx context.Context, actor entity.Identity, q paginate.Query) (*paginate.Result[dto.AppointmentResponse], error) {
	filter := &entity.AppointmentFilter{}
	switch actor.Role {
	case entity.RoleDoctor:
		filter.DoctorID = &actor.UserID
	case entity.RolePatient:
		filter.PatientID = &actor.UserID
	default:
		return nil, ErrNoActionAllowed
	}

	appointments, err := u.appointmentRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to find appointments for %s: %+v", actor.UserID, err)
		return nil, err
	}

	if err := u.completeDue(ctx, appointments); err != nil {
		return nil, err
	}

	matched := make([]entity.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if q.Filter != "" && string(a.Status) != q.Filter {
			continue
		}
		if !matchesAppointmentSearch(&a, q.Search) {
			continue
		}
		matched = append(matched, a)
	}

	sortAppointments(matched, q.SortBy, q.Direction)

	page := paginate.Apply(matched, q)
	return &paginate.Result[dto.AppointmentResponse]{
		Data:       converter.AppointmentsToResponses(page.Data, u.loc),
		TotalItems: page.TotalItems,
		NumOfPages: page.NumOfPages,
	}, nil
}

// ListByDoctor lists a doctor's appointments so a patient can see taken slots.
// Other patients' details are not exposed.
func (u *appointmentUsecase) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx, &entity.AppointmentFilter{DoctorID: &doctorID})
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	if err := u.completeDue(ctx, appointments); err != nil {
		return nil, err
	}

	for i := range appointments {
		appointments[i].Patient = nil
	}
	return converter.AppointmentsToResponses(appointments, u.loc), nil
}

// Cancel moves an appointment owned by the caller to canceled. Final appointments are rejected.
func (u *appointmentUsecase) Cancel(ctx context.Context, actor entity.Identity, appointmentID uuid.UUID) error {
	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if !appointment.IsOwnedBy(actor.UserID) {
		return ErrNoActionAllowed
	}
	if appointment.IsCanceled() {
		return ErrAlreadyCanceled
	}
	if appointment.IsCompleted() {
		return ErrAlreadyCompleted
	}

	rows, err := u.appointmentRepo.Cancel(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", appointmentID, err)
		return err
	}
	if rows == 0 {
		// lost a race with another cancel or an auto-completion
		return ErrAlreadyCanceled
	}

	metrics.RecordAppointmentTransition("canceled", 1)
	u.auditService.LogUpdate(ctx, actor, entity.AuditActionAppointmentCancel, "appointment", appointmentID.String(),
		map[string]interface{}{"status": appointment.Status},
		map[string]interface{}{"status": entity.AppointmentStatusCanceled},
	)
	return nil
}

// completeDue marks every non-final appointment whose time has come as completed,
// in storage and in the given slice. The transition is audited under the system actor.
func (u *appointmentUsecase) completeDue(ctx context.Context, appointments []entity.Appointment) error {
	now := u.now()

	var due []uuid.UUID
	for i := range appointments {
		if !appointments[i].IsFinal() && appointments[i].IsDue(now) {
			due = append(due, appointments[i].ID)
		}
	}
	if len(due) == 0 {
		return nil
	}

	rows, err := u.appointmentRepo.MarkCompleted(ctx, due)
	if err != nil {
		u.log.Warnf("Failed to complete %d due appointments: %+v", len(due), err)
		return err
	}

	for i := range appointments {
		if !appointments[i].IsFinal() && appointments[i].IsDue(now) {
			appointments[i].Complete()
		}
	}

	metrics.RecordAppointmentTransition("completed", int(rows))
	u.auditService.LogUpdate(ctx, entity.Identity{}, entity.AuditActionAppointmentDone, "appointment", "", nil, map[string]interface{}{"ids": due})
	u.log.Infof("Completed %d due appointments", rows)
	return nil
}

// parseAppointmentDate accepts "YYYY-MM-DD HH:mm" in loc or RFC3339, truncated to the minute
func parseAppointmentDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.ParseInLocation(dto.DateTimeLayout, s, loc)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, err
		}
	}
	return t.Truncate(time.Minute), nil
}

func matchesAppointmentSearch(a *entity.Appointment, term string) bool {
	if term == "" {
		return true
	}
	fields := []string{
		a.ClinicName(),
		a.AppointmentAddress.Street,
		a.AppointmentAddress.City,
		a.AppointmentAddress.PostalCode,
	}
	if a.Clinic != nil {
		fields = append(fields, a.Clinic.PhoneNumber)
	}
	if a.Doctor != nil {
		fields = append(fields, a.Doctor.Name, a.Doctor.Surname, a.Doctor.Name+" "+a.Doctor.Surname)
	}
	if a.Patient != nil {
		fields = append(fields, a.Patient.Name, a.Patient.Surname, a.Patient.Name+" "+a.Patient.Surname, a.Patient.PhoneNumber)
	}
	return paginate.MatchesPrefix(term, fields...)
}

func sortAppointments(list []entity.Appointment, sortBy string, dir paginate.Direction) {
	switch sortBy {
	case "appointmentDate":
		paginate.Sort(list, dir, func(a, b entity.Appointment) int {
			return a.AppointmentDate.Compare(b.AppointmentDate)
		})
	case "clinicName":
		paginate.Sort(list, dir, func(a, b entity.Appointment) int {
			return strings.Compare(strings.ToLower(a.ClinicName()), strings.ToLower(b.ClinicName()))
		})
	}
}
