package models

import "math"

// PaginationParams ค่าการแบ่งหน้า (page เริ่มที่ 1)
type PaginationParams struct {
	Page     int `json:"page" query:"page" example:"1"`
	PageSize int `json:"pageSize" query:"pageSize" example:"10"`
}

// PaginationMeta ข้อมูลหน้าที่ส่งกลับ
type PaginationMeta struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
}

// PaginatedStudents โครงสร้างการตอบกลับแบบแบ่งหน้า
type PaginatedStudents struct {
	Data       []Student      `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

// DefaultPagination ค่าตั้งต้นสำหรับ Pagination
func DefaultPagination() PaginationParams {
	return PaginationParams{
		Page:     1,
		PageSize: 10,
	}
}

// NewPaginationMeta คำนวณ totalPages = ceil(totalItems / pageSize)
func NewPaginationMeta(total int64, params PaginationParams) PaginationMeta {
	totalPages := 0
	if params.PageSize > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(params.PageSize)))
	}
	return PaginationMeta{
		CurrentPage: params.Page,
		TotalPages:  totalPages,
		TotalItems:  total,
	}
}

// GetSkip คำนวณจำนวนรายการที่ต้องข้าม
func (p *PaginationParams) GetSkip() int64 {
	return int64((p.Page - 1) * p.PageSize)
}

// InRange บอกว่าหน้านี้มีข้อมูลให้ดึงหรือไม่
func (p *PaginationParams) InRange(meta PaginationMeta) bool {
	return p.Page >= 1 && p.Page <= meta.TotalPages
}
