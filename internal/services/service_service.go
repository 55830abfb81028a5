package services

import (
	"errors"
	"fmt"

	"agendly-backend/internal/dto"
	"agendly-backend/internal/models"
	"agendly-backend/internal/tenant"
	"agendly-backend/internal/validate"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrServiceNotFound = errors.New("service not found")

type ServiceService struct {
	db *gorm.DB
}

func NewServiceService(db *gorm.DB) *ServiceService {
	return &ServiceService{db: db}
}

func (s *ServiceService) List(tenantID *uuid.UUID) ([]models.Service, error) {
	var svcs []models.Service
	q := s.db.Preload("Tenant").Order("created_at")
	if tenantID != nil {
		q = q.Scopes(tenant.Scoped(*tenantID))
	}
	if err := q.Find(&svcs).Error; err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return svcs, nil
}

func (s *ServiceService) Get(id uuid.UUID) (*models.Service, error) {
	var svc models.Service
	if err := s.db.Preload("Tenant").First(&svc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &svc, nil
}

func (s *ServiceService) Create(req *dto.CreateServiceRequest) (*models.Service, error) {
	if req.Name == "" || req.TenantID == "" {
		return nil, errors.New("name and tenantId are required")
	}
	if !validate.Duration(req.Duration) {
		return nil, errors.New("duration must be a positive number of minutes")
	}
	if !validate.Price(req.Price) {
		return nil, errors.New("price must be non-negative")
	}

	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		return nil, errors.New("tenantId is not a valid id")
	}
	var t models.Tenant
	if err := s.db.First(&t, "id = ?", tenantID).Error; err != nil {
		return nil, ErrTenantNotFound
	}

	svc := models.Service{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		TenantID:    tenantID,
	}

	if err := s.db.Create(&svc).Error; err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return &svc, nil
}

func (s *ServiceService) Update(id uuid.UUID, req *dto.UpdateServiceRequest) (*models.Service, error) {
	svc, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Duration != nil {
		if !validate.Duration(*req.Duration) {
			return nil, errors.New("duration must be a positive number of minutes")
		}
		updates["duration"] = *req.Duration
	}
	if req.Price != nil {
		if !validate.Price(*req.Price) {
			return nil, errors.New("price must be non-negative")
		}
		updates["price"] = *req.Price
	}

	if len(updates) > 0 {
		if err := s.db.Model(svc).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update service: %w", err)
		}
	}
	return s.Get(id)
}

func (s *ServiceService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Service{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}
