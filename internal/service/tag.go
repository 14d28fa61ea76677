package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/algonotes/backend/internal/model"
	"github.com/algonotes/backend/internal/repository"
)

// TagRequest 标签写入请求
type TagRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=60"`
	Category *string `json:"category" binding:"omitempty,oneof=hot100 exam template"`
	Topics   *[]uint `json:"topics"`
}

// TagService 标签服务接口
type TagService interface {
	List(ctx context.Context) ([]TagDTO, error)

	Page(ctx context.Context, q repository.ListQuery) (*PageResult[AdminTagDTO], error)
	Get(ctx context.Context, id uint) (*AdminTagDTO, error)
	Create(ctx context.Context, req TagRequest) (*AdminTagDTO, error)
	Update(ctx context.Context, id uint, req TagRequest, partial bool) (*AdminTagDTO, error)
	Delete(ctx context.Context, id uint) error
}

type tagService struct {
	tagRepo   repository.TagRepository
	topicRepo repository.TopicRepository
}

// NewTagService 创建服务实例
func NewTagService(tagRepo repository.TagRepository, topicRepo repository.TopicRepository) TagService {
	return &tagService{tagRepo: tagRepo, topicRepo: topicRepo}
}

// List 公开标签列表
func (s *tagService) List(ctx context.Context) ([]TagDTO, error) {
	tags, err := s.tagRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	result := make([]TagDTO, 0, len(tags))
	for i := range tags {
		result = append(result, toTagDTO(&tags[i]))
	}
	return result, nil
}

// Page 后台分页列表
func (s *tagService) Page(ctx context.Context, q repository.ListQuery) (*PageResult[AdminTagDTO], error) {
	tags, total, err := s.tagRepo.Page(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to page tags: %w", err)
	}
	results := make([]AdminTagDTO, 0, len(tags))
	for i := range tags {
		results = append(results, toAdminTagDTO(&tags[i]))
	}
	return &PageResult[AdminTagDTO]{Count: total, Results: results}, nil
}

// Get 后台获取单个标签
func (s *tagService) Get(ctx context.Context, id uint) (*AdminTagDTO, error) {
	tag, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toAdminTagDTO(tag)
	return &dto, nil
}

// Create 创建标签
func (s *tagService) Create(ctx context.Context, req TagRequest) (*AdminTagDTO, error) {
	tag := &model.ProblemTag{Category: model.TagCategoryExam}
	topicIDs, err := s.apply(ctx, tag, req, false)
	if err != nil {
		return nil, err
	}
	if topicIDs == nil {
		topicIDs = []uint{}
	}
	if err := s.tagRepo.Create(ctx, tag, topicIDs); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return s.Get(ctx, tag.ID)
}

// Update 更新标签，请求未携带 topics 时保留原有关联
func (s *tagService) Update(ctx context.Context, id uint, req TagRequest, partial bool) (*AdminTagDTO, error) {
	tag, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	topicIDs, err := s.apply(ctx, tag, req, partial)
	if err != nil {
		return nil, err
	}
	tag.Topics = nil
	if err := s.tagRepo.Update(ctx, tag, topicIDs); err != nil {
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}
	return s.Get(ctx, id)
}

// Delete 删除标签，知识点保留
func (s *tagService) Delete(ctx context.Context, id uint) error {
	if err := s.tagRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTagNotFound
		}
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	return nil
}

func (s *tagService) find(ctx context.Context, id uint) (*model.ProblemTag, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return tag, nil
}

func (s *tagService) apply(ctx context.Context, tag *model.ProblemTag, req TagRequest, partial bool) ([]uint, error) {
	errs := ValidationError{}
	name, hasName := stringField(errs, "name", req.Name, true, false, partial, 60)

	var category model.TagCategory
	hasCategory := req.Category != nil
	if hasCategory {
		category = model.TagCategory(*req.Category)
		if !category.Valid() {
			errs.Addf("category", msgChoice, *req.Category)
			hasCategory = false
		}
	}

	if hasName {
		taken, err := s.tagRepo.NameTaken(ctx, name, tag.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check tag name: %w", err)
		}
		if taken {
			errs.Addf("name", msgUnique, "name", "题目标签")
		}
	}

	var topicIDs []uint
	if req.Topics != nil {
		topicIDs = append([]uint{}, (*req.Topics)...)
		if len(topicIDs) > 0 {
			missing, err := firstMissing(ctx, topicIDs, s.topicRepo.CountByIDs)
			if err != nil {
				return nil, err
			}
			if missing != 0 {
				errs.Addf("topics", msgMissingPK, missing)
			}
		}
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}
	if hasName {
		tag.Name = name
	}
	if hasCategory {
		tag.Category = category
	}
	return topicIDs, nil
}
