package repository

import (
	"strings"

	"gorm.io/gorm"
)

// 分页默认值
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// OrderField 单个排序字段
type OrderField struct {
	Column string
	Desc   bool
}

// ListQuery 后台列表通用查询参数
type ListQuery struct {
	// Search 按空白切分，每个词需命中任一搜索列
	Search   string
	Ordering []OrderField
	Page     int
	PageSize int
}

// Offset 根据 1 起始的页码计算偏移量
func (q ListQuery) Offset() int {
	page := q.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * q.Limit()
}

// Limit 返回规范化后的每页条数
func (q ListQuery) Limit() int {
	if q.PageSize <= 0 {
		return DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		return MaxPageSize
	}
	return q.PageSize
}

// ParseOrdering 解析 "a,-b" 形式的排序参数，allowed 为对外字段到列名的白名单。
// 不在白名单中的字段直接忽略。
func ParseOrdering(raw string, allowed map[string]string) []OrderField {
	var fields []OrderField
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		desc := strings.HasPrefix(part, "-")
		name := strings.TrimPrefix(part, "-")
		column, ok := allowed[name]
		if !ok {
			continue
		}
		fields = append(fields, OrderField{Column: column, Desc: desc})
	}
	return fields
}

// likeEscape 是 LIKE 转义字符，sqlite/mysql/postgres 中都无需额外转义
const likeEscape = "!"

var likeReplacer = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

// applyContains 要求 term 作为整体命中任一列，不区分大小写，% 和 _ 按字面匹配
func applyContains(db *gorm.DB, term string, columns ...string) *gorm.DB {
	if term == "" || len(columns) == 0 {
		return db
	}
	pattern := "%" + likeReplacer.Replace(strings.ToLower(term)) + "%"
	clause := " LIKE ? ESCAPE '" + likeEscape + "'"
	cond := db.Session(&gorm.Session{NewDB: true})
	for i, col := range columns {
		if i == 0 {
			cond = cond.Where("LOWER("+col+")"+clause, pattern)
		} else {
			cond = cond.Or("LOWER("+col+")"+clause, pattern)
		}
	}
	return db.Where(cond)
}

// applySearch 按空白切分 search，每个词都要命中任一列
func applySearch(db *gorm.DB, search string, columns ...string) *gorm.DB {
	for _, term := range strings.Fields(search) {
		db = applyContains(db, term, columns...)
	}
	return db
}

func applyOrdering(db *gorm.DB, fields []OrderField, fallback string) *gorm.DB {
	if len(fields) == 0 {
		return db.Order(fallback)
	}
	for _, f := range fields {
		if f.Desc {
			db = db.Order(f.Column + " DESC")
		} else {
			db = db.Order(f.Column + " ASC")
		}
	}
	// 保证分页稳定
	return db.Order("id ASC")
}

// paginate 统计总数后取当前页，preloads 只作用于取数据的查询
func paginate[T any](db *gorm.DB, q ListQuery, fallback string, preloads ...string) ([]T, int64, error) {
	base := db.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	find := base
	for _, p := range preloads {
		find = find.Preload(p)
	}
	items := make([]T, 0)
	err := applyOrdering(find, q.Ordering, fallback).
		Offset(q.Offset()).
		Limit(q.Limit()).
		Find(&items).Error
	return items, total, err
}
