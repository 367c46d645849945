package roster

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Fixed business strings from the source roster conventions
const (
	orgFinanceCenter      = "财务中心"
	orgLicenseSupport     = "证照支持部"
	categoryFormal        = "正式员工"
	categoryOutsourced    = "外包"
	employeeTypeLivewater = "活水"

	// RemarkOutsourced is attached to included outsourced employees
	RemarkOutsourced = "注意外包人员"

	// PeopleSeparator joins display labels within a summary group
	PeopleSeparator = "、"
)

// Included is a roster row that passed both filters, with its derived fields.
// Cells preserves the original row for export alongside the derivations
type Included struct {
	Cells        []string
	Name         string
	OrgLevel3    string
	HireDate     time.Time
	ServiceYears int
	Remark       string
	DisplayLabel string
}

// Excluded retains only identity and org fields for a row that failed the
// inclusion predicate
type Excluded struct {
	Name      string
	OrgLevel3 string
	OrgLevel4 string
}

// SummaryRow is one anniversary group, people joined in roster order
type SummaryRow struct {
	Years  int
	Label  string
	People string
}

// Stats describes a completed run. DroppedTooNew counts predicate-passing
// rows under one full year of service, which appear in neither output
type Stats struct {
	Total         int
	Included      int
	Excluded      int
	DroppedTooNew int
	CarveOut      int
	HasOutsourced bool
	Livewater     []string
}

// Result is the full outcome of one analysis run
type Result struct {
	Columns  []string
	Included []Included
	Summary  []SummaryRow
	Excluded []Excluded
	Stats    Stats
}

// Analyze runs the anniversary pipeline over tbl for the given reference
// year and month. Pure: no I/O, no logging, deterministic for equal inputs
func Analyze(tbl Table, year, month int) (*Result, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: %d", ErrMonthOutOfRange, month)
	}

	idx := tbl.index()
	var missing []string
	for _, c := range RequiredColumns {
		if _, ok := idx[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}
	typeCol, hasType := idx[ColEmployeeType]

	res := &Result{Columns: tbl.Columns}
	res.Stats.Total = len(tbl.Rows)
	groups := make(map[int][]string)

	for i, row := range tbl.Rows {
		raw := cell(row, idx[ColHireDate])
		hired, err := parseHireDate(raw)
		if err != nil {
			return nil, &DataTypeError{Row: i + 1, Column: ColHireDate, Value: raw, cause: err}
		}

		name := cell(row, idx[ColName])
		org3 := cell(row, idx[ColOrgLevel3])
		org4 := cell(row, idx[ColOrgLevel4])

		carveOut := org3 == orgFinanceCenter && org4 == orgLicenseSupport
		switch {
		case int(hired.Month()) != month:
			res.Excluded = append(res.Excluded, Excluded{Name: name, OrgLevel3: org3, OrgLevel4: org4})
			continue
		case carveOut:
			res.Stats.CarveOut++
			res.Excluded = append(res.Excluded, Excluded{Name: name, OrgLevel3: org3, OrgLevel4: org4})
			continue
		case cell(row, idx[ColCategory2]) != categoryFormal:
			res.Excluded = append(res.Excluded, Excluded{Name: name, OrgLevel3: org3, OrgLevel4: org4})
			continue
		}

		years := year - hired.Year()
		if years < 1 {
			// too new to have an anniversary, appears in neither output
			res.Stats.DroppedTooNew++
			continue
		}

		var remark string
		if cell(row, idx[ColCategory1]) == categoryOutsourced {
			remark = RemarkOutsourced
			res.Stats.HasOutsourced = true
		}

		label := org3 + "-" + name
		if nick := cell(row, idx[ColNickname]); nick != "" {
			label += "（" + nick + "）"
		}

		if hasType && cell(row, typeCol) == employeeTypeLivewater {
			res.Stats.Livewater = append(res.Stats.Livewater, name)
		}

		res.Included = append(res.Included, Included{
			Cells:        row,
			Name:         name,
			OrgLevel3:    org3,
			HireDate:     hired,
			ServiceYears: years,
			Remark:       remark,
			DisplayLabel: label,
		})
		groups[years] = append(groups[years], label)
	}

	years := make([]int, 0, len(groups))
	for y := range groups {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	for _, y := range years {
		res.Summary = append(res.Summary, SummaryRow{
			Years:  y,
			Label:  fmt.Sprintf("%d周年", y),
			People: strings.Join(groups[y], PeopleSeparator),
		})
	}

	res.Stats.Included = len(res.Included)
	res.Stats.Excluded = len(res.Excluded)
	return res, nil
}
