package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/datatypes"

	"github.com/algonotes/backend/internal/model"
	"github.com/algonotes/backend/internal/repository"
)

// TopicListParams 公开知识点列表的原始查询参数
type TopicListParams struct {
	Keyword     string
	ChapterID   string
	KeyExamOnly string
	Year        string
}

// TopicPageParams 后台知识点列表的原始过滤参数
type TopicPageParams struct {
	ChapterID    string
	Difficulty   string
	IsKeyForExam string
}

// TopicRequest 知识点写入请求，JSON 字段保留原文以便做结构校验
type TopicRequest struct {
	Chapter        *uint           `json:"chapter"`
	Title          *string         `json:"title" binding:"omitempty,max=120"`
	KnowledgePoint *string         `json:"knowledge_point" binding:"omitempty,max=180"`
	Note           *string         `json:"note"`
	TemplateCode   *string         `json:"template_code"`
	TemplateCodes  json.RawMessage `json:"template_codes"`
	TemplateModes  json.RawMessage `json:"template_modes"`
	PracticeLinks  json.RawMessage `json:"practice_links"`
	ExamTip        *string         `json:"exam_tip"`
	ExamYears      json.RawMessage `json:"exam_years"`
	IsKeyForExam   *bool           `json:"is_key_for_exam"`
	Tags           *[]uint         `json:"tags"`
}

// TopicService 知识点服务接口
type TopicService interface {
	List(ctx context.Context, params TopicListParams) ([]TopicDTO, error)
	Detail(ctx context.Context, id uint) (*TopicDTO, error)

	Page(ctx context.Context, q repository.ListQuery, params TopicPageParams) (*PageResult[AdminTopicDTO], error)
	Get(ctx context.Context, id uint) (*AdminTopicDTO, error)
	Create(ctx context.Context, req TopicRequest) (*AdminTopicDTO, error)
	Update(ctx context.Context, id uint, req TopicRequest, partial bool) (*AdminTopicDTO, error)
	Delete(ctx context.Context, id uint) error
}

type topicService struct {
	topicRepo   repository.TopicRepository
	chapterRepo repository.ChapterRepository
	tagRepo     repository.TagRepository
}

// NewTopicService 创建服务实例
func NewTopicService(topicRepo repository.TopicRepository, chapterRepo repository.ChapterRepository, tagRepo repository.TagRepository) TopicService {
	return &topicService{
		topicRepo:   topicRepo,
		chapterRepo: chapterRepo,
		tagRepo:     tagRepo,
	}
}

// truthy 识别 1/true/True
func truthy(v string) bool {
	switch v {
	case "1", "true", "True":
		return true
	}
	return false
}

// List 公开知识点列表。chapter_id 或 year 不是整数时返回空列表
func (s *topicService) List(ctx context.Context, params TopicListParams) ([]TopicDTO, error) {
	filter := repository.TopicFilter{
		Keyword:     strings.TrimSpace(params.Keyword),
		KeyExamOnly: truthy(params.KeyExamOnly),
	}
	if params.ChapterID != "" {
		id, err := strconv.ParseUint(params.ChapterID, 10, 64)
		if err != nil {
			return []TopicDTO{}, nil
		}
		chapterID := uint(id)
		filter.ChapterID = &chapterID
	}

	year, hasYear := 0, params.Year != ""
	if hasYear {
		y, err := strconv.Atoi(strings.TrimSpace(params.Year))
		if err != nil {
			return []TopicDTO{}, nil
		}
		year = y
	}

	topics, err := s.topicRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}

	result := make([]TopicDTO, 0, len(topics))
	for i := range topics {
		if hasYear && !topics[i].HasExamYear(year) {
			continue
		}
		result = append(result, toTopicDTO(&topics[i]))
	}
	return result, nil
}

// Detail 公开知识点详情
func (s *topicService) Detail(ctx context.Context, id uint) (*TopicDTO, error) {
	topic, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toTopicDTO(topic)
	return &dto, nil
}

// Page 后台分页列表，非法的过滤值被忽略
func (s *topicService) Page(ctx context.Context, q repository.ListQuery, params TopicPageParams) (*PageResult[AdminTopicDTO], error) {
	var filter repository.TopicAdminFilter
	if id, err := strconv.ParseUint(params.ChapterID, 10, 64); err == nil {
		chapterID := uint(id)
		filter.ChapterID = &chapterID
	}
	if model.Difficulty(params.Difficulty).Valid() {
		filter.Difficulty = params.Difficulty
	}
	switch params.IsKeyForExam {
	case "1", "true", "True":
		v := true
		filter.IsKeyForExam = &v
	case "0", "false", "False":
		v := false
		filter.IsKeyForExam = &v
	}

	topics, total, err := s.topicRepo.Page(ctx, q, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to page topics: %w", err)
	}
	results := make([]AdminTopicDTO, 0, len(topics))
	for i := range topics {
		results = append(results, toAdminTopicDTO(&topics[i]))
	}
	return &PageResult[AdminTopicDTO]{Count: total, Results: results}, nil
}

// Get 后台获取单个知识点
func (s *topicService) Get(ctx context.Context, id uint) (*AdminTopicDTO, error) {
	topic, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toAdminTopicDTO(topic)
	return &dto, nil
}

// Create 创建知识点
func (s *topicService) Create(ctx context.Context, req TopicRequest) (*AdminTopicDTO, error) {
	topic := &model.Topic{
		TemplateCodes: datatypes.NewJSONType(model.CodeMap{}),
		TemplateModes: datatypes.NewJSONType(model.ModeMap{}),
		PracticeLinks: datatypes.NewJSONType(model.PracticeLinks{}),
		ExamYears:     datatypes.NewJSONType([]int{}),
		IsKeyForExam:  true,
	}
	tagIDs, err := s.apply(ctx, topic, req, false)
	if err != nil {
		return nil, err
	}
	if tagIDs == nil {
		tagIDs = []uint{}
	}
	if err := s.topicRepo.Create(ctx, topic, tagIDs); err != nil {
		return nil, fmt.Errorf("failed to create topic: %w", err)
	}
	return s.Get(ctx, topic.ID)
}

// Update 更新知识点，请求未携带的字段（包括 tags）保持不变
func (s *topicService) Update(ctx context.Context, id uint, req TopicRequest, partial bool) (*AdminTopicDTO, error) {
	topic, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	tagIDs, err := s.apply(ctx, topic, req, partial)
	if err != nil {
		return nil, err
	}
	topic.Chapter = nil
	topic.Tags = nil
	if err := s.topicRepo.Update(ctx, topic, tagIDs); err != nil {
		return nil, fmt.Errorf("failed to update topic: %w", err)
	}
	return s.Get(ctx, id)
}

// Delete 删除知识点
func (s *topicService) Delete(ctx context.Context, id uint) error {
	if err := s.topicRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTopicNotFound
		}
		return fmt.Errorf("failed to delete topic: %w", err)
	}
	return nil
}

func (s *topicService) find(ctx context.Context, id uint) (*model.Topic, error) {
	topic, err := s.topicRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTopicNotFound
		}
		return nil, fmt.Errorf("failed to get topic: %w", err)
	}
	return topic, nil
}

// apply 校验请求并写入 topic，返回请求中的标签 ID（未携带时为 nil）
func (s *topicService) apply(ctx context.Context, topic *model.Topic, req TopicRequest, partial bool) ([]uint, error) {
	errs := ValidationError{}

	if req.Chapter == nil {
		if !partial {
			errs.Add("chapter", msgRequired)
		}
	} else {
		if _, err := s.chapterRepo.GetByID(ctx, *req.Chapter); err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("failed to get chapter: %w", err)
			}
			errs.Addf("chapter", msgMissingPK, *req.Chapter)
		}
	}

	title, hasTitle := stringField(errs, "title", req.Title, true, false, partial, 120)
	point, hasPoint := stringField(errs, "knowledge_point", req.KnowledgePoint, true, false, partial, 180)
	note, hasNote := stringField(errs, "note", req.Note, true, false, partial, 0)
	code, hasCode := stringField(errs, "template_code", req.TemplateCode, false, true, partial, 0)
	tip, hasTip := stringField(errs, "exam_tip", req.ExamTip, false, true, partial, 0)

	codes, hasCodes := jsonField(errs, "template_codes", req.TemplateCodes, parseTemplateCodes)
	modes, hasModes := jsonField(errs, "template_modes", req.TemplateModes, parseTemplateModes)
	links, hasLinks := jsonField(errs, "practice_links", req.PracticeLinks, parsePracticeLinks)
	years, hasYears := jsonField(errs, "exam_years", req.ExamYears, parseExamYears)

	var tagIDs []uint
	if req.Tags != nil {
		tagIDs = append([]uint{}, (*req.Tags)...)
		missing, err := s.missingTag(ctx, tagIDs)
		if err != nil {
			return nil, err
		}
		if missing != 0 {
			errs.Addf("tags", msgMissingPK, missing)
		}
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}

	if req.Chapter != nil {
		topic.ChapterID = *req.Chapter
	}
	if hasTitle {
		topic.Title = title
	}
	if hasPoint {
		topic.KnowledgePoint = point
	}
	if hasNote {
		topic.Note = note
	}
	if hasCode {
		topic.TemplateCode = code
	}
	if hasTip {
		topic.ExamTip = tip
	}
	if hasCodes {
		topic.TemplateCodes = datatypes.NewJSONType(codes)
	}
	if hasModes {
		topic.TemplateModes = datatypes.NewJSONType(modes)
	}
	if hasLinks {
		topic.PracticeLinks = datatypes.NewJSONType(links)
	}
	if hasYears {
		topic.ExamYears = datatypes.NewJSONType(years)
	}
	if req.IsKeyForExam != nil {
		topic.IsKeyForExam = *req.IsKeyForExam
	}
	return tagIDs, nil
}

// missingTag 返回第一个不存在的标签 ID，全部存在时返回 0
func (s *topicService) missingTag(ctx context.Context, ids []uint) (uint, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return firstMissing(ctx, ids, s.tagRepo.CountByIDs)
}

// firstMissing 先整体计数，数量不符时逐个定位缺失的 ID
func firstMissing(ctx context.Context, ids []uint, count func(context.Context, []uint) (int64, error)) (uint, error) {
	unique := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}
	total, err := count(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to check ids: %w", err)
	}
	if total == int64(len(unique)) {
		return 0, nil
	}
	for _, id := range ids {
		n, err := count(ctx, []uint{id})
		if err != nil {
			return 0, fmt.Errorf("failed to check ids: %w", err)
		}
		if n == 0 {
			return id, nil
		}
	}
	return 0, nil
}
