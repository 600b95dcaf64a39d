// Package export renders administrative exports: the awards workbook and the
// data behind the printable pages.
package export

import (
	"github.com/xuri/excelize/v2"

	"showbench/internal/awards"
	"showbench/internal/db"
)

// AwardsWorkbook builds one spreadsheet for an event: a summary sheet with
// the overall ranking plus one sheet per category.
func AwardsWorkbook(event db.Event, categories []db.Category, ranking []awards.RankingEntry) (*excelize.File, error) {
	f := excelize.NewFile()
	const summary = "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return nil, err
	}
	if err := writeRankingSheet(f, summary, event.Name, ranking); err != nil {
		return nil, err
	}

	byCategory := awards.SplitByCategory(ranking)
	for _, category := range categories {
		sheet := sheetName(category.Name)
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
		if err := writeRankingSheet(f, sheet, category.Name, byCategory[category.ID]); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func writeRankingSheet(f *excelize.File, sheet, title string, entries []awards.RankingEntry) error {
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return err
	}
	for col, header := range []string{"Place", "Model", "Average rank", "Votes"} {
		cell, err := excelize.CoordinatesToCellName(col+1, 2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}
	for i, entry := range entries {
		row := i + 3
		values := []any{i + 1, entry.ModelName, averageCell(entry), entry.VoteCount}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return f.SetColWidth(sheet, "B", "B", 40)
}

func averageCell(entry awards.RankingEntry) any {
	if entry.AverageRank == nil {
		return "-"
	}
	return *entry.AverageRank
}

// sheetName trims a category name to excelize's 31-character sheet limit.
func sheetName(name string) string {
	if name == "" {
		return "Category"
	}
	if len(name) > 31 {
		return name[:31]
	}
	return name
}
