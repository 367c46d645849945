// Package roster implements the anniversary analysis over an employee roster
// Pipeline order
// 1 Schema check for the required columns
// 2 Per-row parse of hire dates and text fields
// 3 Partition by hire month, department carve-out and formal-employee gate
// 4 Compute service years and drop hires younger than one full year
// 5 Flag outsourced rows and livewater transfers
// 6 Group by service years into a descending anniversary summary
package roster

import "strings"

// Canonical column headers as they appear in the source roster
const (
	ColHireDate     = "入职日期"
	ColOrgLevel3    = "三级组织"
	ColOrgLevel4    = "四级组织"
	ColCategory2    = "员工二级类别"
	ColCategory1    = "员工一级类别"
	ColName         = "姓名"
	ColNickname     = "花名"
	ColEmployeeType = "员工类型" // optional, drives livewater detection
)

// RequiredColumns lists the headers the analyzer refuses to run without,
// in the order missing ones are reported
var RequiredColumns = []string{
	ColHireDate,
	ColOrgLevel3,
	ColOrgLevel4,
	ColCategory2,
	ColCategory1,
	ColName,
	ColNickname,
}

// Table is a rectangular slice of the source spreadsheet. Cells are raw
// strings exactly as read; the analyzer does all parsing itself
type Table struct {
	Columns []string
	Rows    [][]string
}

// index maps trimmed header names to their column position. The first
// occurrence wins when a header repeats
func (t Table) index() map[string]int {
	idx := make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		c = strings.TrimSpace(c)
		if _, ok := idx[c]; !ok {
			idx[c] = i
		}
	}
	return idx
}

// cell returns the trimmed value at col for row, tolerating ragged rows
func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
