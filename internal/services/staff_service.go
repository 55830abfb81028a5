package services

import (
	"errors"
	"fmt"
	"log/slog"

	"agendly-backend/internal/dto"
	"agendly-backend/internal/models"
	"agendly-backend/internal/tenant"
	"agendly-backend/internal/validate"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrStaffNotFound   = errors.New("staff member not found")
	ErrStaffEmailTaken = errors.New("staff email already in use")
)

type StaffService struct {
	db *gorm.DB
}

func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{db: db}
}

func (s *StaffService) List(tenantID *uuid.UUID) ([]models.Staff, error) {
	var staff []models.Staff
	q := s.db.Preload("Tenant").Order("created_at")
	if tenantID != nil {
		q = q.Scopes(tenant.Scoped(*tenantID))
	}
	if err := q.Find(&staff).Error; err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return staff, nil
}

func (s *StaffService) Get(id uuid.UUID) (*models.Staff, error) {
	var st models.Staff
	if err := s.db.Preload("Tenant").First(&st, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}
	return &st, nil
}

// Create adds a staff member to a tenant. When no password is supplied
// a random one is generated.
func (s *StaffService) Create(req *dto.CreateStaffRequest) (*models.Staff, error) {
	if req.Name == "" || req.Email == "" || req.TenantID == "" {
		return nil, errors.New("name, email and tenantId are required")
	}
	if !validate.Email(req.Email) {
		return nil, errors.New("email is not a valid email address")
	}

	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		return nil, errors.New("tenantId is not a valid id")
	}
	var t models.Tenant
	if err := s.db.First(&t, "id = ?", tenantID).Error; err != nil {
		return nil, ErrTenantNotFound
	}

	var existing models.Staff
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrStaffEmailTaken
	}

	password := req.Password
	if password == "" {
		password, err = randomToken()
		if err != nil {
			return nil, err
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	st := models.Staff{
		ID:       uuid.New(),
		Name:     req.Name,
		Role:     req.Role,
		Email:    req.Email,
		Password: string(hash),
		TenantID: tenantID,
	}

	if err := s.db.Create(&st).Error; err != nil {
		slog.Error("staff create failed",
			"tenant_id", tenantID.String(), "action", "staff.create", "error", err)
		return nil, fmt.Errorf("failed to create staff member: %w", err)
	}
	return &st, nil
}

func (s *StaffService) Update(id uuid.UUID, req *dto.UpdateStaffRequest) (*models.Staff, error) {
	st, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Email != nil && *req.Email != st.Email {
		if !validate.Email(*req.Email) {
			return nil, errors.New("email is not a valid email address")
		}
		var existing models.Staff
		if err := s.db.Where("email = ? AND id <> ?", *req.Email, id).First(&existing).Error; err == nil {
			return nil, ErrStaffEmailTaken
		}
		updates["email"] = *req.Email
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		updates["password"] = string(hash)
	}

	if len(updates) > 0 {
		if err := s.db.Model(st).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update staff member: %w", err)
		}
	}
	return s.Get(id)
}

func (s *StaffService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Staff{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStaffNotFound
	}
	return nil
}
