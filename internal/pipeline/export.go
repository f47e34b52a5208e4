package pipeline

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/rotisserie/eris"
)

var exportColumns = []string{
	"Business Name",
	"Email",
	"Phone",
	"Website",
	"City",
	"Size Category",
	"Total Score",
	"Tier",
	"Estimated Value",
	"Needs Redesign",
	"Needs Reviews",
}

// WriteCSV writes ranked items as CSV, header first.
func WriteCSV(w io.Writer, items []Item) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(exportColumns); err != nil {
		return eris.Wrap(err, "export: write header")
	}

	for _, item := range items {
		lead := item.Lead
		row := []string{
			lead.BusinessName,
			lead.Email,
			lead.Phone,
			lead.Website,
			lead.City,
			string(lead.SizeCategory),
			strconv.Itoa(lead.TotalScore),
			lead.Tier,
			lead.EstimatedValue,
			strconv.FormatBool(lead.NeedsRedesign),
			strconv.FormatBool(lead.NeedsReviews),
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrapf(err, "export: write row for %s", lead.BusinessName)
		}
	}

	cw.Flush()
	return eris.Wrap(cw.Error(), "export: flush")
}

// ExportCSV writes ranked items to a CSV file at outputPath.
func ExportCSV(items []Item, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return eris.Wrap(err, "export: create file")
	}
	defer f.Close()

	return WriteCSV(f, items)
}
