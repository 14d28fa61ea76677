package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/algonotes/backend/internal/model"
	"github.com/algonotes/backend/internal/repository"
)

// StudyPlanRequest 学习计划写入请求
type StudyPlanRequest struct {
	Week             *int    `json:"week" binding:"omitempty,min=0"`
	Target           *string `json:"target" binding:"omitempty,max=120"`
	Focus            *string `json:"focus" binding:"omitempty,max=200"`
	RecommendedHours *int    `json:"recommended_hours" binding:"omitempty,min=0"`
}

// StudyPlanService 学习计划服务接口
type StudyPlanService interface {
	List(ctx context.Context) ([]StudyPlanDTO, error)

	Page(ctx context.Context, q repository.ListQuery) (*PageResult[StudyPlanDTO], error)
	Get(ctx context.Context, id uint) (*StudyPlanDTO, error)
	Create(ctx context.Context, req StudyPlanRequest) (*StudyPlanDTO, error)
	Update(ctx context.Context, id uint, req StudyPlanRequest, partial bool) (*StudyPlanDTO, error)
	Delete(ctx context.Context, id uint) error
}

type studyPlanService struct {
	planRepo repository.StudyPlanRepository
}

// NewStudyPlanService 创建服务实例
func NewStudyPlanService(planRepo repository.StudyPlanRepository) StudyPlanService {
	return &studyPlanService{planRepo: planRepo}
}

// List 按周次列出学习计划
func (s *studyPlanService) List(ctx context.Context) ([]StudyPlanDTO, error) {
	plans, err := s.planRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list study plans: %w", err)
	}
	result := make([]StudyPlanDTO, 0, len(plans))
	for i := range plans {
		result = append(result, toStudyPlanDTO(&plans[i]))
	}
	return result, nil
}

func (s *studyPlanService) Page(ctx context.Context, q repository.ListQuery) (*PageResult[StudyPlanDTO], error) {
	plans, total, err := s.planRepo.Page(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to page study plans: %w", err)
	}
	results := make([]StudyPlanDTO, 0, len(plans))
	for i := range plans {
		results = append(results, toStudyPlanDTO(&plans[i]))
	}
	return &PageResult[StudyPlanDTO]{Count: total, Results: results}, nil
}

func (s *studyPlanService) Get(ctx context.Context, id uint) (*StudyPlanDTO, error) {
	plan, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toStudyPlanDTO(plan)
	return &dto, nil
}

func (s *studyPlanService) Create(ctx context.Context, req StudyPlanRequest) (*StudyPlanDTO, error) {
	plan := &model.StudyPlan{RecommendedHours: 12}
	if err := s.apply(ctx, plan, req, false); err != nil {
		return nil, err
	}
	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to create study plan: %w", err)
	}
	dto := toStudyPlanDTO(plan)
	return &dto, nil
}

func (s *studyPlanService) Update(ctx context.Context, id uint, req StudyPlanRequest, partial bool) (*StudyPlanDTO, error) {
	plan, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, plan, req, partial); err != nil {
		return nil, err
	}
	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to update study plan: %w", err)
	}
	dto := toStudyPlanDTO(plan)
	return &dto, nil
}

func (s *studyPlanService) Delete(ctx context.Context, id uint) error {
	if err := s.planRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrStudyPlanNotFound
		}
		return fmt.Errorf("failed to delete study plan: %w", err)
	}
	return nil
}

func (s *studyPlanService) find(ctx context.Context, id uint) (*model.StudyPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStudyPlanNotFound
		}
		return nil, fmt.Errorf("failed to get study plan: %w", err)
	}
	return plan, nil
}

func (s *studyPlanService) apply(ctx context.Context, plan *model.StudyPlan, req StudyPlanRequest, partial bool) error {
	errs := ValidationError{}
	week, hasWeek := intField(errs, "week", req.Week, true, partial)
	target, hasTarget := stringField(errs, "target", req.Target, true, false, partial, 120)
	focus, hasFocus := stringField(errs, "focus", req.Focus, true, false, partial, 200)
	hours, hasHours := intField(errs, "recommended_hours", req.RecommendedHours, false, partial)

	if hasWeek {
		taken, err := s.planRepo.WeekTaken(ctx, week, plan.ID)
		if err != nil {
			return fmt.Errorf("failed to check study plan week: %w", err)
		}
		if taken {
			errs.Addf("week", msgUnique, "week", "学习计划")
		}
	}
	if err := errs.Err(); err != nil {
		return err
	}

	if hasWeek {
		plan.Week = week
	}
	if hasTarget {
		plan.Target = target
	}
	if hasFocus {
		plan.Focus = focus
	}
	if hasHours {
		plan.RecommendedHours = hours
	}
	return nil
}
