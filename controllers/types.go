package controllers

// pageParams normalizes page/limit query values into offsets.
type pageParams struct {
	Page  int `form:"page,default=1" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (p pageParams) offset() int {
	return (p.Page - 1) * p.Limit
}

func totalPages(totalCount int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(totalCount) / limit
	if int(totalCount)%limit != 0 {
		pages++
	}
	return pages
}
