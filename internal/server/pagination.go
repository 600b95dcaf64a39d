package server

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type pageMeta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"perPage"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func parsePagination(c *gin.Context, defaultPerPage, maxPerPage int) (int, int) {
	page := 1
	perPage := defaultPerPage
	if raw := strings.TrimSpace(c.Query("page")); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			page = value
		}
	}
	if raw := strings.TrimSpace(c.Query("per_page")); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			perPage = value
		}
	}
	if maxPerPage > 0 && perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

func buildPageMeta(page, perPage int, total int64) pageMeta {
	if perPage <= 0 {
		perPage = 1
	}
	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	if totalPages == 0 {
		totalPages = 1
	}
	if page <= 0 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return pageMeta{Page: page, PerPage: perPage, Total: total, TotalPages: totalPages}
}
