package report

import (
	"encoding/csv"
	"io"
	"strconv"
)

var csvHeader = []string{"ID", "Tanggal", "Service", "Harga", "Member"}

// WriteCSV renders the service report as comma-separated text with a header
// row. Text fields are quoted by the writer as needed; the member column is
// empty when the job has no member.
func WriteCSV(w io.Writer, rows []ServiceRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			strconv.FormatInt(row.ID, 10),
			row.ServiceDate.Format("2006-01-02"),
			row.ServiceType,
			strconv.FormatFloat(row.Price, 'f', -1, 64),
			row.MemberName,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
