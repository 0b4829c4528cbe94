package usecase

import (
	"truedoc-admin/config"
	"truedoc-admin/internal/delivery/dto"
	"truedoc-admin/internal/domain/entity"
)

// Paginator clamps requested pages to the configured sizes
type Paginator struct {
	defaultSize int
	maxSize     int
}

func NewPaginator(cfg config.PaginationConfig) Paginator {
	p := Paginator{defaultSize: cfg.DefaultPageSize, maxSize: cfg.MaxPageSize}
	if p.defaultSize < 1 {
		p.defaultSize = 10
	}
	if p.maxSize < p.defaultSize {
		p.maxSize = p.defaultSize
	}
	return p
}

func (p Paginator) Page(number, size int) entity.Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = p.defaultSize
	}
	if size > p.maxSize {
		size = p.maxSize
	}
	return entity.Page{Number: number, Size: size}
}

func pageInfo(page entity.Page, total int64) *dto.PageInfo {
	return &dto.PageInfo{Page: page.Number, Limit: page.Size, Total: total}
}

func sortOrder(column, order string) entity.Sort {
	return entity.Sort{Column: column, Desc: order == "desc"}
}
