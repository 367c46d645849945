package batch

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"jubilee/internal/adapters/roster/xlsxio"
	perr "jubilee/internal/platform/errors"
)

func workbook(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestRun(t *testing.T) {
	wb := workbook(t, [][]any{
		{"姓名", "花名", "入职日期", "三级组织", "四级组织", "员工一级类别", "员工二级类别", "员工类型"},
		{"张三", "小张", "2020-05-04", "技术中心", "平台部", "正式", "正式员工", "活水"},
		{"王五", "", "2018-05-01", "产品中心", "设计部", "外包", "正式员工", ""},
		{"吴十", "", "2015-05-02", "财务中心", "证照支持部", "正式", "正式员工", ""},
	})

	out, err := Run(Job{Reader: bytes.NewReader(wb), Year: 2023, Month: 5})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.Stats.Included != 2 || out.Stats.Excluded != 1 {
		t.Fatalf("stats mismatch: %+v", out.Stats)
	}
	if len(out.Warnings) != 2 || !strings.Contains(out.Warnings[1], "张三") {
		t.Fatalf("warnings mismatch: %v", out.Warnings)
	}

	sum, err := xlsxio.ReadTable(bytes.NewReader(out.SummaryXLSX))
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if len(sum.Rows) != 2 || sum.Rows[0][1] != "5周年" {
		t.Fatalf("summary mismatch: %v", sum.Rows)
	}
	inc, err := xlsxio.ReadTable(bytes.NewReader(out.IncludedXLSX))
	if err != nil {
		t.Fatalf("read included: %v", err)
	}
	if len(inc.Rows) != 2 {
		t.Fatalf("included mismatch: %v", inc.Rows)
	}
}

func TestRun_ErrorCodes(t *testing.T) {
	// missing columns
	wb := workbook(t, [][]any{{"姓名", "入职日期"}, {"张三", "2020-05-04"}})
	_, err := Run(Job{Reader: bytes.NewReader(wb), Year: 2023, Month: 5})
	if !perr.IsCode(err, perr.ErrorCodeSchema) {
		t.Fatalf("expected schema code, got %v", err)
	}

	// not a workbook at all
	_, err = Run(Job{Reader: strings.NewReader("nope"), Year: 2023, Month: 5})
	if !perr.IsCode(err, perr.ErrorCodeDataType) {
		t.Fatalf("expected data type code, got %v", err)
	}
}
