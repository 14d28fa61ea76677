package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/algonotes/backend/internal/repository"
	"github.com/algonotes/backend/internal/service"
)

// pageResponse 后台分页响应
type pageResponse[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// parseListQuery 读取 search、ordering、page、page_size，页码非法时返回 404
func parseListQuery(c *gin.Context, ordering map[string]string) (repository.ListQuery, bool) {
	q := repository.ListQuery{
		Search:   c.Query("search"),
		Ordering: repository.ParseOrdering(c.Query("ordering"), ordering),
		Page:     1,
	}
	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			c.JSON(http.StatusNotFound, gin.H{"error": msgInvalidPage})
			return q, false
		}
		q.Page = page
	}
	if raw := c.Query("page_size"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			q.PageSize = size
		}
	}
	return q, true
}

// writePage 输出分页结果，超出范围的页码返回 404
func writePage[T any](c *gin.Context, q repository.ListQuery, result *service.PageResult[T]) {
	if q.Page > 1 && int64(q.Offset()) >= result.Count {
		c.JSON(http.StatusNotFound, gin.H{"error": msgInvalidPage})
		return
	}

	resp := pageResponse[T]{Count: result.Count, Results: result.Results}
	if resp.Results == nil {
		resp.Results = []T{}
	}
	if int64(q.Offset()+len(result.Results)) < result.Count {
		next := pageURL(c, q.Page+1)
		resp.Next = &next
	}
	if q.Page > 1 {
		prev := pageURL(c, q.Page-1)
		resp.Previous = &prev
	}
	c.JSON(http.StatusOK, resp)
}

// pageURL 基于当前请求生成指定页的绝对地址，第一页不带 page 参数
func pageURL(c *gin.Context, page int) string {
	u := *c.Request.URL
	u.Scheme = "http"
	if c.Request.TLS != nil {
		u.Scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		u.Scheme = proto
	}
	u.Host = c.Request.Host

	query := u.Query()
	if page <= 1 {
		query.Del("page")
	} else {
		query.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = query.Encode()
	return u.String()
}
