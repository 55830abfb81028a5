package services

import (
	"errors"
	"fmt"

	"agendly-backend/internal/dto"
	"agendly-backend/internal/models"
	"agendly-backend/internal/validate"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrPlanNotFound = errors.New("plan not found")
	ErrPlanInUse    = errors.New("plan is referenced by existing tenants")
)

type PlanService struct {
	db *gorm.DB
}

func NewPlanService(db *gorm.DB) *PlanService {
	return &PlanService{db: db}
}

func (s *PlanService) List() ([]models.Plan, error) {
	var plans []models.Plan
	if err := s.db.Order("created_at").Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return plans, nil
}

func (s *PlanService) Get(id uuid.UUID) (*models.Plan, error) {
	var plan models.Plan
	if err := s.db.First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (s *PlanService) Create(req *dto.CreatePlanRequest) (*models.Plan, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	if !validate.Price(req.Price) {
		return nil, errors.New("price must be non-negative")
	}

	features := req.Features
	if features == nil {
		features = map[string]interface{}{}
	}

	plan := models.Plan{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Features:    datatypes.JSONMap(features),
	}

	if err := s.db.Create(&plan).Error; err != nil {
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}
	return &plan, nil
}

func (s *PlanService) Update(id uuid.UUID, req *dto.UpdatePlanRequest) (*models.Plan, error) {
	plan, err := s.Get(id)
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
	if req.Price != nil {
		if !validate.Price(*req.Price) {
			return nil, errors.New("price must be non-negative")
		}
		updates["price"] = *req.Price
	}
	if req.Features != nil {
		updates["features"] = datatypes.JSONMap(req.Features)
	}

	if len(updates) > 0 {
		if err := s.db.Model(plan).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update plan: %w", err)
		}
	}
	return s.Get(id)
}

func (s *PlanService) Delete(id uuid.UUID) error {
	var count int64
	if err := s.db.Model(&models.Tenant{}).Where("plan_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrPlanInUse
	}

	result := s.db.Delete(&models.Plan{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}
