package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/algonotes/backend/internal/repository"
)

// ExamYearService 真题年份统计
type ExamYearService interface {
	// Histogram 按年份倒序返回每年涉及的知识点条目数，同一知识点重复列出的年份重复计数
	Histogram(ctx context.Context) ([]ExamYearDTO, error)
}

type examYearService struct {
	topicRepo repository.TopicRepository
}

// NewExamYearService 创建服务实例
func NewExamYearService(topicRepo repository.TopicRepository) ExamYearService {
	return &examYearService{topicRepo: topicRepo}
}

func (s *examYearService) Histogram(ctx context.Context) ([]ExamYearDTO, error) {
	all, err := s.topicRepo.ExamYears(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load exam years: %w", err)
	}

	counts := make(map[int]int)
	for _, years := range all {
		for _, y := range years {
			counts[y]++
		}
	}

	result := make([]ExamYearDTO, 0, len(counts))
	for year, n := range counts {
		result = append(result, ExamYearDTO{Year: year, TopicCount: n})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Year > result[j].Year
	})
	return result, nil
}
