package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"go-ehs/pkg/utils"

	"github.com/xuri/excelize/v2"
)

// exportRows flattens a report into metric/value pairs shared by both
// export formats.
func exportRows(r *Report) [][]string {
	num := func(v float64) string {
		return fmt.Sprintf("%g", v)
	}

	rows := [][]string{
		{"Company", r.CompanyName},
		{"Report Period", r.ReportPeriod},
		{"Report Type", string(r.ReportType)},
		{"Report Date", r.ReportDate.Format("2006-01-02")},
		{"", ""},
		{"Incidents", fmt.Sprint(r.Metrics.Lagging.IncidentCount)},
		{"Near Misses", fmt.Sprint(r.Metrics.Lagging.NearMissCount)},
		{"First Aid Cases", fmt.Sprint(r.Metrics.Lagging.FirstAidCount)},
		{"Medical Treatments", fmt.Sprint(r.Metrics.Lagging.MedicalTreatmentCount)},
		{"Lost Time Incidents", fmt.Sprint(r.Metrics.Lagging.LostTimeIncidents)},
		{"TRIR", num(r.Metrics.Lagging.TotalRecordableIncidentRate)},
		{"LTIR", num(r.Metrics.Lagging.LostTimeIncidentRate)},
		{"Severity Rate", num(r.Metrics.Lagging.SeverityRate)},
		{"", ""},
		{"Inspections Completed", fmt.Sprint(r.Metrics.Leading.InspectionsCompleted)},
		{"Inspections Planned", fmt.Sprint(r.Metrics.Leading.InspectionsPlanned)},
		{"Safety Observations", fmt.Sprint(r.Metrics.Leading.SafetyObservations)},
		{"Safety Meetings", fmt.Sprint(r.Metrics.Leading.SafetyMeetings)},
		{"Hazards Identified", fmt.Sprint(r.Metrics.Leading.HazardsIdentified)},
		{"Hazards Closed", fmt.Sprint(r.Metrics.Leading.HazardsClosed)},
	}

	if r.Metrics.Leading.TrainingCompleted != nil {
		rows = append(rows, []string{"Training Completion %", num(*r.Metrics.Leading.TrainingCompleted)})
	}

	rows = append(rows, []string{"", ""},
		[]string{"Compliance Status", string(r.Compliance.Status)},
		[]string{"OHSMS Score", num(r.Compliance.OhsmsScore)})

	if len(r.RiskAssessment) > 0 {
		rows = append(rows, []string{"", ""}, []string{"Risk Area", "Rating"})
		for _, risk := range r.RiskAssessment {
			rows = append(rows, []string{risk.Risk, string(risk.Rating)})
		}
	}

	for _, protocol := range RiskProtocols {
		if risk, ok := r.CriticalRisks[protocol]; ok {
			rows = append(rows, []string{risk.Name, string(risk.Status)})
		}
	}

	return rows
}

func exportFilename(r *Report, ext string) string {
	return fmt.Sprintf("%s_%s_%s.%s",
		utils.Slugify(r.CompanyName),
		utils.Slugify(r.ReportPeriod),
		time.Now().Format("20060102"),
		ext)
}

// ExportCSV renders a report as a two-column CSV.
func ExportCSV(r *Report) ([]byte, string, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Metric", "Value"}); err != nil {
		return nil, "", err
	}
	for _, row := range exportRows(r) {
		if err := writer.Write(row); err != nil {
			return nil, "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), exportFilename(r, "csv"), nil
}

// ExportXLSX renders a report as a styled single-sheet workbook.
func ExportXLSX(r *Report) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Safety Report"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	for i, header := range []string{"Metric", "Value"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, row := range exportRows(r) {
		for colIdx, val := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, val)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), exportFilename(r, "xlsx"), nil
}
