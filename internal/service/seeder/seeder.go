// Package seeder 用目录数据重建整套学习内容。
//
// 每次运行都会先清空章节、知识点、标签、学习计划，再在同一个事务里重新写入，
// 因此重复执行得到的数据量不变，中途失败不会留下半成品。
package seeder

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"k8s.io/klog/v2"

	"github.com/algonotes/backend/internal/catalog"
	"github.com/algonotes/backend/internal/model"
	"github.com/algonotes/backend/internal/service/templategen"
)

// Summary 初始化结果统计
type Summary struct {
	Chapters   int
	Topics     int
	Tags       int
	StudyPlans int
}

// Seeder 初始化服务
type Seeder struct {
	db          *gorm.DB
	transformer *templategen.Transformer
}

// New 创建初始化服务
func New(db *gorm.DB) *Seeder {
	return &Seeder{
		db:          db,
		transformer: templategen.New(catalog.Library{}),
	}
}

// Run 清空并重建全部数据
func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	var summary Summary
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := clearAll(tx); err != nil {
			return err
		}

		chapterIDs, err := createChapters(tx)
		if err != nil {
			return err
		}
		summary.Chapters = len(chapterIDs)

		topics, err := s.createTopics(tx, chapterIDs)
		if err != nil {
			return err
		}
		summary.Topics = len(topics)

		summary.Tags, err = createTags(tx, topics)
		if err != nil {
			return err
		}

		summary.StudyPlans, err = createStudyPlans(tx)
		return err
	})
	if err != nil {
		klog.Errorf("[Seeder] 初始化失败: %v", err)
		return Summary{}, err
	}

	klog.Infof("初始化完成：%d 个章节，%d 个知识点，%d 周学习计划。", summary.Chapters, summary.Topics, summary.StudyPlans)
	return summary, nil
}

func clearAll(tx *gorm.DB) error {
	klog.V(6).Infof("[Seeder] 清空旧数据")
	if err := tx.Exec("DELETE FROM problem_tag_topics").Error; err != nil {
		return fmt.Errorf("clear tag links: %w", err)
	}
	all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, m := range []any{&model.ProblemTag{}, &model.Topic{}, &model.Chapter{}, &model.StudyPlan{}} {
		if err := all.Delete(m).Error; err != nil {
			return fmt.Errorf("clear %T: %w", m, err)
		}
	}
	return nil
}

func createChapters(tx *gorm.DB) (map[string]uint, error) {
	ids := make(map[string]uint)
	for _, seed := range catalog.Chapters() {
		chapter := &model.Chapter{
			Title:          seed.Title,
			Summary:        seed.Summary,
			Order:          seed.Order,
			Difficulty:     seed.Difficulty,
			EstimatedHours: seed.EstimatedHours,
		}
		if err := tx.Create(chapter).Error; err != nil {
			return nil, fmt.Errorf("create chapter %s: %w", seed.Title, err)
		}
		ids[seed.Key] = chapter.ID
	}
	klog.V(6).Infof("[Seeder] 写入章节 %d 个", len(ids))
	return ids, nil
}

func (s *Seeder) createTopics(tx *gorm.DB, chapterIDs map[string]uint) ([]model.Topic, error) {
	seeds := catalog.Topics()
	topics := make([]model.Topic, 0, len(seeds))
	for _, seed := range seeds {
		chapterID, ok := chapterIDs[seed.ChapterKey]
		if !ok {
			return nil, fmt.Errorf("topic %s: unknown chapter key %q", seed.Title, seed.ChapterKey)
		}

		generated := s.transformer.Transform(seed.Title, seed.BaseCode)
		years := seed.ExamYears
		if years == nil {
			years = []int{}
		}

		topic := model.Topic{
			ChapterID:      chapterID,
			Title:          seed.Title,
			KnowledgePoint: seed.KnowledgePoint,
			Note:           Enrich(seed),
			TemplateCode:   seed.BaseCode,
			TemplateCodes:  datatypes.NewJSONType(generated.Codes),
			TemplateModes:  datatypes.NewJSONType(generated.Modes()),
			PracticeLinks:  datatypes.NewJSONType(Resolve(seed.Title)),
			ExamTip:        seed.ExamTip,
			ExamYears:      datatypes.NewJSONType(years),
			IsKeyForExam:   seed.IsKeyForExam,
		}
		if err := tx.Create(&topic).Error; err != nil {
			return nil, fmt.Errorf("create topic %s: %w", seed.Title, err)
		}
		topics = append(topics, topic)
	}
	klog.V(6).Infof("[Seeder] 写入知识点 %d 个", len(topics))
	return topics, nil
}

func createTags(tx *gorm.DB, topics []model.Topic) (int, error) {
	members := make(map[string][]model.Topic)
	for _, topic := range topics {
		for _, key := range catalog.TagKeysFor(topic.Title) {
			members[key] = append(members[key], model.Topic{ID: topic.ID})
		}
	}

	seeds := catalog.Tags()
	for _, seed := range seeds {
		tag := &model.ProblemTag{
			Name:     seed.Name,
			Category: seed.Category,
			Topics:   members[seed.Key],
		}
		// 知识点已存在，只写关联表
		if err := tx.Omit("Topics.*").Create(tag).Error; err != nil {
			return 0, fmt.Errorf("create tag %s: %w", seed.Name, err)
		}
		klog.V(6).Infof("[Seeder] 标签 %s 关联知识点 %d 个", seed.Name, len(tag.Topics))
	}
	return len(seeds), nil
}

func createStudyPlans(tx *gorm.DB) (int, error) {
	plans := catalog.StudyPlans()
	for _, seed := range plans {
		plan := &model.StudyPlan{
			Week:             seed.Week,
			Target:           seed.Target,
			Focus:            seed.Focus,
			RecommendedHours: seed.RecommendedHours,
		}
		if err := tx.Create(plan).Error; err != nil {
			return 0, fmt.Errorf("create study plan week %d: %w", seed.Week, err)
		}
	}
	return len(plans), nil
}
