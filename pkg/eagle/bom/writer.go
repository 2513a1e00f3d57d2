package bom

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/codec"
	"github.com/xuri/excelize/v2"
)

// Sheet names used by WriteXLSX
const (
	BOMSheet = "BOM"
	CPLSheet = "CPL"
)

var (
	bomHeader = []string{"Designators", "Quantity", "Value", "Package", "Library"}
	cplHeader = []string{"Designator", "Value", "Package", "X", "Y", "Rotation", "Side"}
)

func (e Entry) row() []string {
	return []string{strings.Join(e.Designators, " "), strconv.Itoa(e.Quantity()), e.Value, e.Package, e.Library}
}

func (p Placement) row() []string {
	return []string{p.Designator, p.Value, p.Package,
		codec.FormatFloat(p.X), codec.FormatFloat(p.Y), codec.FormatFloat(p.Rotation), string(p.Side)}
}

// WriteCSV writes the BOM with a header row
func WriteCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(bomHeader); err != nil {
		return fmt.Errorf("failed to write BOM header: %w", err)
	}
	for _, e := range entries {
		if err := cw.Write(e.row()); err != nil {
			return fmt.Errorf("failed to write BOM row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePlacementsCSV writes the placement list with a header row
func WritePlacementsCSV(w io.Writer, placements []Placement) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(cplHeader); err != nil {
		return fmt.Errorf("failed to write CPL header: %w", err)
	}
	for _, p := range placements {
		if err := cw.Write(p.row()); err != nil {
			return fmt.Errorf("failed to write CPL row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes a workbook with a BOM sheet and, if placements is not
// empty, a CPL sheet
func WriteXLSX(w io.Writer, entries []Entry, placements []Placement) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", BOMSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	rows := make([][]string, 0, len(entries)+1)
	rows = append(rows, bomHeader)
	for _, e := range entries {
		rows = append(rows, e.row())
	}
	if err := writeRows(f, BOMSheet, rows); err != nil {
		return err
	}

	if len(placements) > 0 {
		if _, err := f.NewSheet(CPLSheet); err != nil {
			return fmt.Errorf("failed to create sheet: %w", err)
		}
		rows = rows[:0]
		rows = append(rows, cplHeader)
		for _, p := range placements {
			rows = append(rows, p.row())
		}
		if err := writeRows(f, CPLSheet, rows); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]string) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
