package service

import (
	"bytes"
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"jubilee/internal/adapters/roster/xlsxio"
	"jubilee/internal/core/roster"
	modkit "jubilee/internal/modkit"
	"jubilee/internal/platform/config"
	perr "jubilee/internal/platform/errors"
)

func testDeps() modkit.Deps {
	return modkit.Deps{Log: zerolog.Nop(), Cfg: config.New()}
}

func testTable() roster.Table {
	return roster.Table{
		Columns: []string{
			roster.ColName, roster.ColNickname, roster.ColHireDate, roster.ColOrgLevel3,
			roster.ColOrgLevel4, roster.ColCategory1, roster.ColCategory2, roster.ColEmployeeType,
		},
		Rows: [][]string{
			{"张三", "小张", "2020-05-04", "技术中心", "平台部", "正式", "正式员工", "活水"},
			{"王五", "", "2018-05-01", "产品中心", "设计部", "外包", "正式员工", ""},
			{"吴十", "", "2015-05-02", "财务中心", "证照支持部", "正式", "正式员工", ""},
			{"钱七", "", "2019-03-02", "技术中心", "平台部", "正式", "正式员工", ""},
		},
	}
}

func TestAnalyzeAndFetch(t *testing.T) {
	s := New(testDeps())
	ctx := context.Background()

	view, err := s.Analyze(ctx, testTable(), 2023, 5)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if view.RunID == "" {
		t.Fatalf("expected a run id")
	}
	if view.Stats.Included != 2 || view.Stats.Excluded != 2 {
		t.Fatalf("stats mismatch: %+v", view.Stats)
	}
	if len(view.Messages) != 1 || view.Messages[0] != "分析完成！请下载结果文件" {
		t.Fatalf("messages mismatch: %v", view.Messages)
	}
	if len(view.Warnings) != 2 {
		t.Fatalf("expected exclusion and livewater warnings: %v", view.Warnings)
	}
	if view.Warnings[0] != "已排除特殊部门人员: 2人" {
		t.Fatalf("exclusion warning mismatch: %q", view.Warnings[0])
	}
	if !strings.Contains(view.Warnings[1], "张三") {
		t.Fatalf("livewater warning mismatch: %q", view.Warnings[1])
	}

	again, err := s.Run(ctx, view.RunID)
	if err != nil {
		t.Fatalf("fetch run: %v", err)
	}
	if again.RunID != view.RunID || !reflect.DeepEqual(again.Stats, view.Stats) {
		t.Fatalf("stored run differs: %+v vs %+v", again, view)
	}
}

func TestAnalyze_ErrorMapping(t *testing.T) {
	s := New(testDeps())
	ctx := context.Background()

	_, err := s.Analyze(ctx, roster.Table{Columns: []string{roster.ColName}}, 2023, 5)
	if !perr.IsCode(err, perr.ErrorCodeSchema) {
		t.Fatalf("expected schema code, got %v", err)
	}
	if !strings.Contains(err.Error(), "缺失关键字段") {
		t.Fatalf("schema message mismatch: %v", err)
	}

	bad := testTable()
	bad.Rows[0][2] = "someday"
	_, err = s.Analyze(ctx, bad, 2023, 5)
	if !perr.IsCode(err, perr.ErrorCodeDataType) {
		t.Fatalf("expected data type code, got %v", err)
	}

	_, err = s.Analyze(ctx, testTable(), 2023, 13)
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument code, got %v", err)
	}
}

func TestWorkbooks(t *testing.T) {
	s := New(testDeps())
	ctx := context.Background()

	view, err := s.Analyze(ctx, testTable(), 2023, 5)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	inc, err := s.IncludedWorkbook(ctx, view.RunID)
	if err != nil {
		t.Fatalf("included workbook: %v", err)
	}
	tbl, err := xlsxio.ReadTable(bytes.NewReader(inc))
	if err != nil {
		t.Fatalf("read included: %v", err)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("included rows mismatch: %v", tbl.Rows)
	}

	sum, err := s.SummaryWorkbook(ctx, view.RunID)
	if err != nil {
		t.Fatalf("summary workbook: %v", err)
	}
	tbl, err = xlsxio.ReadTable(bytes.NewReader(sum))
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if len(tbl.Rows) != 2 || tbl.Rows[0][1] != "5周年" {
		t.Fatalf("summary rows mismatch: %v", tbl.Rows)
	}

	if _, err := s.IncludedWorkbook(ctx, "nope"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteAndReset(t *testing.T) {
	s := New(testDeps())
	ctx := context.Background()

	view, err := s.Analyze(ctx, testTable(), 2023, 5)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if err := s.Delete(ctx, view.RunID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Run(ctx, view.RunID); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if err := s.Delete(ctx, view.RunID); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("double delete should be not found, got %v", err)
	}

	v1, _ := s.Analyze(ctx, testTable(), 2023, 5)
	v2, _ := s.Analyze(ctx, testTable(), 2024, 5)
	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	for _, id := range []string{v1.RunID, v2.RunID} {
		if _, err := s.Run(ctx, id); !perr.IsCode(err, perr.ErrorCodeNotFound) {
			t.Fatalf("run %s should be gone after reset", id)
		}
	}
}

func TestRunStore_EvictsOldest(t *testing.T) {
	st := newRunStore(2)
	a := &run{}
	b := &run{}
	c := &run{}
	st.put(a)
	st.put(b)
	st.put(c)

	if st.len() != 2 {
		t.Fatalf("store should hold 2 runs, has %d", st.len())
	}
	if _, ok := st.get(a.ID); ok {
		t.Fatalf("oldest run should have been evicted")
	}
	if _, ok := st.get(c.ID); !ok {
		t.Fatalf("newest run should be present")
	}
}
