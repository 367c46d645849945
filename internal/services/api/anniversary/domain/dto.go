// Package domain holds DTOs for anniversary http and service contracts
package domain

// Download filenames for the two result workbooks
const (
	FileIncluded = "符合条件人员列表.xlsx"
	FileSummary  = "入职周年统计表.xlsx"
)

// AnalyzeRowsInput is the JSON-body variant of an analysis request, for
// callers that already hold tabular data instead of an xlsx file
type AnalyzeRowsInput struct {
	Year    int        `json:"year"    validate:"required,min=1900,max=9999" example:"2025"`
	Month   int        `json:"month"   validate:"required,min=1,max=12"      example:"4"`
	Columns []string   `json:"columns" validate:"required,min=1"`
	Rows    [][]string `json:"rows"`
}

// IncludedRecord is one surviving roster row with its derived fields
type IncludedRecord struct {
	Cells        []string `json:"cells"`
	Name         string   `json:"name"          example:"张三"`
	OrgLevel3    string   `json:"org_level3"    example:"技术中心"`
	HireDate     string   `json:"hire_date"     example:"2020-05-04"`
	ServiceYears int      `json:"service_years" example:"5"`
	Remark       string   `json:"remark,omitempty" example:"注意外包人员"`
	DisplayLabel string   `json:"display_label" example:"技术中心-张三（小张）"`
}

// SummaryRow is one anniversary group
type SummaryRow struct {
	Years  int    `json:"years"  example:"5"`
	Label  string `json:"label"  example:"5周年"`
	People string `json:"people" example:"技术中心-张三（小张）、产品中心-王五"`
}

// ExcludedRecord retains identity and org fields for a filtered-out row
type ExcludedRecord struct {
	Name      string `json:"name"       example:"吴十"`
	OrgLevel3 string `json:"org_level3" example:"财务中心"`
	OrgLevel4 string `json:"org_level4" example:"证照支持部"`
}

// RunStats summarizes one analysis run
type RunStats struct {
	Total         int      `json:"total"           example:"120"`
	Included      int      `json:"included"        example:"7"`
	Excluded      int      `json:"excluded"        example:"110"`
	DroppedTooNew int      `json:"dropped_too_new" example:"3"`
	CarveOut      int      `json:"carve_out"       example:"2"`
	HasOutsourced bool     `json:"has_outsourced"  example:"true"`
	Livewater     []string `json:"livewater,omitempty"`
}

// RunView is the full JSON view of a stored analysis run
type RunView struct {
	RunID     string           `json:"run_id" example:"6fa459ea-ee8a-3ca4-894e-db77e160355e"`
	Year      int              `json:"year"   example:"2025"`
	Month     int              `json:"month"  example:"4"`
	Columns   []string         `json:"columns"`
	Included  []IncludedRecord `json:"included"`
	Summary   []SummaryRow     `json:"summary"`
	Excluded  []ExcludedRecord `json:"excluded"`
	Stats     RunStats         `json:"stats"`
	Messages  []string         `json:"messages"`
	Warnings  []string         `json:"warnings"`
	CreatedAt string           `json:"created_at" example:"2025-04-01T09:00:00Z"`
}
