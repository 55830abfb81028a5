package services

import (
	"errors"
	"fmt"
	"log/slog"

	"agendly-backend/internal/dto"
	"agendly-backend/internal/models"
	"agendly-backend/internal/validate"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTenantNotFound  = errors.New("tenant not found")
	ErrOwnerNotFound   = errors.New("owner not found")
	ErrOwnerEmailTaken = errors.New("owner email already in use by another tenant")
)

type TenantService struct {
	db *gorm.DB
}

func NewTenantService(db *gorm.DB) *TenantService {
	return &TenantService{db: db}
}

func (s *TenantService) List() ([]models.Tenant, error) {
	var tenants []models.Tenant
	err := s.db.Preload("Plan").Preload("Owners").Order("created_at").Find(&tenants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	return tenants, nil
}

func (s *TenantService) Get(id uuid.UUID) (*models.Tenant, error) {
	var t models.Tenant
	err := s.db.Preload("Plan").Preload("Owners").Preload("Services").Preload("Staff").
		First(&t, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Create validates the plan reference and the owner email uniqueness,
// then creates the tenant with its primary owner in one transaction.
func (s *TenantService) Create(req *dto.CreateTenantRequest) (*models.Tenant, error) {
	if req.Name == "" || req.OwnerEmail == "" || req.PlanID == "" {
		return nil, errors.New("name, ownerEmail and planId are required")
	}
	if !validate.Email(req.OwnerEmail) {
		return nil, errors.New("ownerEmail is not a valid email address")
	}

	planID, err := uuid.Parse(req.PlanID)
	if err != nil {
		return nil, errors.New("planId is not a valid id")
	}

	var plan models.Plan
	if err := s.db.First(&plan, "id = ?", planID).Error; err != nil {
		return nil, ErrPlanNotFound
	}

	var existing models.Owner
	if err := s.db.Where("email = ?", req.OwnerEmail).First(&existing).Error; err == nil {
		return nil, ErrOwnerEmailTaken
	}

	t := models.Tenant{
		ID:     uuid.New(),
		Name:   req.Name,
		PlanID: planID,
	}
	owner := models.Owner{
		ID:       uuid.New(),
		Email:    req.OwnerEmail,
		Name:     req.OwnerName,
		TenantID: t.ID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&t).Error; err != nil {
			return err
		}
		return tx.Create(&owner).Error
	})
	if err != nil {
		slog.Error("tenant create failed",
			"tenant_id", t.ID.String(), "action", "tenant.create", "error", err)
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	return s.Get(t.ID)
}

func (s *TenantService) Update(id uuid.UUID, req *dto.UpdateTenantRequest) (*models.Tenant, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.PlanID != nil {
		planID, err := uuid.Parse(*req.PlanID)
		if err != nil {
			return nil, errors.New("planId is not a valid id")
		}
		var plan models.Plan
		if err := s.db.First(&plan, "id = ?", planID).Error; err != nil {
			return nil, ErrPlanNotFound
		}
		updates["plan_id"] = planID
	}

	if len(updates) > 0 {
		if err := s.db.Model(t).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update tenant: %w", err)
		}
	}
	return s.Get(id)
}

// Delete removes the tenant and everything scoped to it.
func (s *TenantService) Delete(id uuid.UUID) error {
	var t models.Tenant
	if err := s.db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTenantNotFound
		}
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		tx.Where("tenant_id = ?", id).Delete(&models.Appointment{})
		tx.Where("tenant_id = ?", id).Delete(&models.Service{})
		tx.Where("tenant_id = ?", id).Delete(&models.Staff{})
		tx.Where("tenant_id = ?", id).Delete(&models.Owner{})
		return tx.Delete(&t).Error
	})
	if err != nil {
		slog.Error("tenant cascade delete failed",
			"tenant_id", id.String(), "action", "tenant.delete", "error", err)
		return err
	}
	return nil
}

// OwnerByEmail resolves a manager account to its tenant.
func (s *TenantService) OwnerByEmail(email string) (*models.Owner, error) {
	var owner models.Owner
	err := s.db.Preload("Tenant").Preload("Tenant.Plan").
		Where("email = ?", email).First(&owner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}
	return &owner, nil
}
