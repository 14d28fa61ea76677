package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound 记录不存在错误
var ErrNotFound = errors.New("record not found")

// 标签与知识点的多对多关联表
const tagTopicTable = "problem_tag_topics"

// translate 把 gorm 的未找到错误统一成 ErrNotFound
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// replaceTopicTags 重建某个知识点的标签关联
func replaceTopicTags(tx *gorm.DB, topicID uint, tagIDs []uint) error {
	if err := tx.Exec("DELETE FROM "+tagTopicTable+" WHERE topic_id = ?", topicID).Error; err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}
	rows := make([]map[string]any, 0, len(tagIDs))
	for _, id := range uniqueIDs(tagIDs) {
		rows = append(rows, map[string]any{"problem_tag_id": id, "topic_id": topicID})
	}
	return tx.Table(tagTopicTable).Create(&rows).Error
}

// replaceTagTopics 重建某个标签的知识点关联
func replaceTagTopics(tx *gorm.DB, tagID uint, topicIDs []uint) error {
	if err := tx.Exec("DELETE FROM "+tagTopicTable+" WHERE problem_tag_id = ?", tagID).Error; err != nil {
		return err
	}
	if len(topicIDs) == 0 {
		return nil
	}
	rows := make([]map[string]any, 0, len(topicIDs))
	for _, id := range uniqueIDs(topicIDs) {
		rows = append(rows, map[string]any{"problem_tag_id": tagID, "topic_id": id})
	}
	return tx.Table(tagTopicTable).Create(&rows).Error
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
