package services

import (
	"errors"
	"fmt"
	"time"

	"agendly-backend/internal/booking"
	"agendly-backend/internal/dto"
	"agendly-backend/internal/models"
	"agendly-backend/internal/tenant"
	"agendly-backend/pkg/authz"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidStatus       = errors.New("invalid appointment status")
	ErrCancelNotAllowed    = errors.New("appointment can no longer be cancelled")
)

// AppointmentFilter narrows List to one user or one tenant.
type AppointmentFilter struct {
	UserID   *uuid.UUID
	TenantID *uuid.UUID
}

type AppointmentService struct {
	db *gorm.DB
}

func NewAppointmentService(db *gorm.DB) *AppointmentService {
	return &AppointmentService{db: db}
}

func (s *AppointmentService) List(filter AppointmentFilter) ([]models.Appointment, error) {
	var appts []models.Appointment
	q := s.db.Preload("User").Preload("Service").Preload("Staff").Preload("Tenant").
		Order("scheduled_at")
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.TenantID != nil {
		q = q.Scopes(tenant.Scoped(*filter.TenantID))
	}
	if err := q.Find(&appts).Error; err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}

func (s *AppointmentService) Get(id uuid.UUID) (*models.Appointment, error) {
	var appt models.Appointment
	err := s.db.Preload("User").Preload("Service").Preload("Staff").Preload("Tenant").
		First(&appt, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return &appt, nil
}

// Create books an appointment with status pending. The referenced rows
// must exist; the wizard's sequencing is what keeps service, staff and
// tenant in agreement.
func (s *AppointmentService) Create(req *dto.CreateAppointmentRequest) (*models.Appointment, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, errors.New("userId is not a valid id")
	}
	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return nil, errors.New("serviceId is not a valid id")
	}
	staffID, err := uuid.Parse(req.StaffID)
	if err != nil {
		return nil, errors.New("staffId is not a valid id")
	}
	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		return nil, errors.New("tenantId is not a valid id")
	}
	if req.ScheduledAt.IsZero() {
		return nil, errors.New("scheduledAt is required")
	}

	var svc models.Service
	if err := s.db.First(&svc, "id = ?", serviceID).Error; err != nil {
		return nil, ErrServiceNotFound
	}
	var st models.Staff
	if err := s.db.First(&st, "id = ?", staffID).Error; err != nil {
		return nil, ErrStaffNotFound
	}
	var t models.Tenant
	if err := s.db.First(&t, "id = ?", tenantID).Error; err != nil {
		return nil, ErrTenantNotFound
	}

	appt := models.Appointment{
		ID:          uuid.New(),
		UserID:      userID,
		ServiceID:   serviceID,
		StaffID:     staffID,
		TenantID:    tenantID,
		ScheduledAt: req.ScheduledAt,
		Status:      models.StatusPending,
	}

	if err := s.db.Create(&appt).Error; err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return s.Get(appt.ID)
}

// Update applies a partial patch. When the acting user is the booking
// end user and the patch moves the status to cancelled, the cancel rule
// applies: only pending/confirmed appointments with a future scheduled
// time may be cancelled. Admins and managers may set any valid status.
func (s *AppointmentService) Update(id uuid.UUID, req *dto.UpdateAppointmentRequest, actorRole string) (*models.Appointment, error) {
	appt, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.ServiceID != nil {
		serviceID, err := uuid.Parse(*req.ServiceID)
		if err != nil {
			return nil, errors.New("serviceId is not a valid id")
		}
		var svc models.Service
		if err := s.db.First(&svc, "id = ?", serviceID).Error; err != nil {
			return nil, ErrServiceNotFound
		}
		updates["service_id"] = serviceID
	}
	if req.StaffID != nil {
		staffID, err := uuid.Parse(*req.StaffID)
		if err != nil {
			return nil, errors.New("staffId is not a valid id")
		}
		var st models.Staff
		if err := s.db.First(&st, "id = ?", staffID).Error; err != nil {
			return nil, ErrStaffNotFound
		}
		updates["staff_id"] = staffID
	}
	if req.ScheduledAt != nil {
		updates["scheduled_at"] = *req.ScheduledAt
	}
	if req.Status != nil {
		if !models.ValidStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		if *req.Status == models.StatusCancelled && actorRole == authz.RoleUser {
			if !booking.CanCancel(*appt, time.Now()) {
				return nil, ErrCancelNotAllowed
			}
		}
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := s.db.Model(appt).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update appointment: %w", err)
		}
	}
	return s.Get(id)
}

// Delete hard-removes an appointment. Exposed on the API but not wired
// to any user-facing flow, which only ever cancels.
func (s *AppointmentService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Appointment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

// CompletePast transitions confirmed appointments whose time has passed
// to completed. Run periodically by the completer job.
func (s *AppointmentService) CompletePast(now time.Time) (int64, error) {
	result := s.db.Model(&models.Appointment{}).
		Where("status = ? AND scheduled_at < ?", models.StatusConfirmed, now).
		Update("status", models.StatusCompleted)
	return result.RowsAffected, result.Error
}
