package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/algonotes/backend/internal/model"
	"github.com/algonotes/backend/internal/repository"
)

// ChapterRequest 章节写入请求，指针为 nil 表示请求中未携带该字段
type ChapterRequest struct {
	Title          *string `json:"title" binding:"omitempty,max=100"`
	Summary        *string `json:"summary"`
	Order          *int    `json:"order" binding:"omitempty,min=0"`
	Difficulty     *string `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	EstimatedHours *int    `json:"estimated_hours" binding:"omitempty,min=0"`
}

// ChapterService 章节服务接口
type ChapterService interface {
	// List 公开章节列表，difficulty 为空时不过滤
	List(ctx context.Context, difficulty string) ([]ChapterItem, error)
	Detail(ctx context.Context, id uint) (*ChapterDetail, error)

	Page(ctx context.Context, q repository.ListQuery) (*PageResult[AdminChapterDTO], error)
	Get(ctx context.Context, id uint) (*AdminChapterDTO, error)
	Create(ctx context.Context, req ChapterRequest) (*AdminChapterDTO, error)
	// Update partial 为 true 时只校验并更新请求中携带的字段
	Update(ctx context.Context, id uint, req ChapterRequest, partial bool) (*AdminChapterDTO, error)
	Delete(ctx context.Context, id uint) error
}

type chapterService struct {
	chapterRepo repository.ChapterRepository
}

// NewChapterService 创建服务实例
func NewChapterService(chapterRepo repository.ChapterRepository) ChapterService {
	return &chapterService{chapterRepo: chapterRepo}
}

// List 获取章节列表并附带知识点数量
func (s *chapterService) List(ctx context.Context, difficulty string) ([]ChapterItem, error) {
	chapters, err := s.chapterRepo.List(ctx, difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to list chapters: %w", err)
	}
	counts, err := s.chapterRepo.TopicCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count topics: %w", err)
	}

	items := make([]ChapterItem, 0, len(chapters))
	for i := range chapters {
		items = append(items, toChapterItem(&chapters[i], counts[chapters[i].ID]))
	}
	return items, nil
}

// Detail 获取章节详情
func (s *chapterService) Detail(ctx context.Context, id uint) (*ChapterDetail, error) {
	chapter, err := s.chapterRepo.GetWithTopics(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrChapterNotFound
		}
		return nil, fmt.Errorf("failed to get chapter: %w", err)
	}

	topics := make([]TopicDTO, 0, len(chapter.Topics))
	for i := range chapter.Topics {
		dto := toTopicDTO(&chapter.Topics[i])
		dto.ChapterTitle = chapter.Title
		topics = append(topics, dto)
	}
	return &ChapterDetail{
		ID:             chapter.ID,
		Title:          chapter.Title,
		Summary:        chapter.Summary,
		Order:          chapter.Order,
		Difficulty:     chapter.Difficulty,
		EstimatedHours: chapter.EstimatedHours,
		Topics:         topics,
	}, nil
}

// Page 后台分页列表
func (s *chapterService) Page(ctx context.Context, q repository.ListQuery) (*PageResult[AdminChapterDTO], error) {
	chapters, total, err := s.chapterRepo.Page(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to page chapters: %w", err)
	}
	results := make([]AdminChapterDTO, 0, len(chapters))
	for i := range chapters {
		results = append(results, toAdminChapterDTO(&chapters[i]))
	}
	return &PageResult[AdminChapterDTO]{Count: total, Results: results}, nil
}

// Get 后台获取单个章节
func (s *chapterService) Get(ctx context.Context, id uint) (*AdminChapterDTO, error) {
	chapter, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toAdminChapterDTO(chapter)
	return &dto, nil
}

// Create 创建章节
func (s *chapterService) Create(ctx context.Context, req ChapterRequest) (*AdminChapterDTO, error) {
	chapter := &model.Chapter{
		Order:          1,
		Difficulty:     model.DifficultyMedium,
		EstimatedHours: 4,
	}
	if err := s.apply(ctx, chapter, req, false); err != nil {
		return nil, err
	}
	if err := s.chapterRepo.Create(ctx, chapter); err != nil {
		return nil, fmt.Errorf("failed to create chapter: %w", err)
	}
	dto := toAdminChapterDTO(chapter)
	return &dto, nil
}

// Update 更新章节
func (s *chapterService) Update(ctx context.Context, id uint, req ChapterRequest, partial bool) (*AdminChapterDTO, error) {
	chapter, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, chapter, req, partial); err != nil {
		return nil, err
	}
	if err := s.chapterRepo.Update(ctx, chapter); err != nil {
		return nil, fmt.Errorf("failed to update chapter: %w", err)
	}
	dto := toAdminChapterDTO(chapter)
	return &dto, nil
}

// Delete 删除章节，知识点随之删除
func (s *chapterService) Delete(ctx context.Context, id uint) error {
	if err := s.chapterRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrChapterNotFound
		}
		return fmt.Errorf("failed to delete chapter: %w", err)
	}
	return nil
}

func (s *chapterService) find(ctx context.Context, id uint) (*model.Chapter, error) {
	chapter, err := s.chapterRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrChapterNotFound
		}
		return nil, fmt.Errorf("failed to get chapter: %w", err)
	}
	return chapter, nil
}

// apply 校验请求并写入 chapter，校验失败时 chapter 不变
func (s *chapterService) apply(ctx context.Context, chapter *model.Chapter, req ChapterRequest, partial bool) error {
	errs := ValidationError{}
	title, hasTitle := stringField(errs, "title", req.Title, true, false, partial, 100)
	summary, hasSummary := stringField(errs, "summary", req.Summary, true, false, partial, 0)
	order, hasOrder := intField(errs, "order", req.Order, false, partial)
	hours, hasHours := intField(errs, "estimated_hours", req.EstimatedHours, false, partial)

	var difficulty model.Difficulty
	hasDifficulty := req.Difficulty != nil
	if hasDifficulty {
		difficulty = model.Difficulty(*req.Difficulty)
		if !difficulty.Valid() {
			errs.Addf("difficulty", msgChoice, *req.Difficulty)
			hasDifficulty = false
		}
	}

	if hasTitle {
		taken, err := s.chapterRepo.TitleTaken(ctx, title, chapter.ID)
		if err != nil {
			return fmt.Errorf("failed to check chapter title: %w", err)
		}
		if taken {
			errs.Addf("title", msgUnique, "title", "章节")
		}
	}
	if err := errs.Err(); err != nil {
		return err
	}

	if hasTitle {
		chapter.Title = title
	}
	if hasSummary {
		chapter.Summary = summary
	}
	if hasOrder {
		chapter.Order = order
	}
	if hasDifficulty {
		chapter.Difficulty = difficulty
	}
	if hasHours {
		chapter.EstimatedHours = hours
	}
	return nil
}
