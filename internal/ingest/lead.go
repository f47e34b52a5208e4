package ingest

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/Kleo12345/lead-scoring-system/internal/model"
)

// headerAliases maps normalized column names to LeadAttributes fields.
// Spreadsheet exports are inconsistent about naming, so several aliases
// resolve to the same field.
var headerAliases = map[string]string{
	"businessname": "business_name",
	"business":     "business_name",
	"name":         "business_name",
	"address":      "address",
	"street":       "address",
	"city":         "city",
	"zip":          "zip",
	"zipcode":      "zip",
	"postalcode":   "zip",
	"email":        "email",
	"emailaddress": "email",
	"phone":        "phone",
	"telephone":    "phone",
	"phonenumber":  "phone",
	"website":      "website",
	"websiteurl":   "website",
	"url":          "website",
	"gmapsurl":     "maps_url",
	"mapsurl":      "maps_url",
	"googlemaps":   "maps_url",
	"instagram":    "instagram",
	"instagramurl": "instagram",
	"facebook":     "facebook",
	"facebookurl":  "facebook",
}

// MapRows converts raw spreadsheet rows (header first) to LeadAttributes.
// Unrecognized columns are ignored; rows without a business name are
// skipped. Ragged rows are tolerated.
func MapRows(rows [][]string, sourceFile string) ([]model.LeadAttributes, error) {
	if len(rows) == 0 {
		return nil, eris.Errorf("ingest: %s has no rows", sourceFile)
	}

	fieldByCol := make(map[int]string)
	for i, h := range rows[0] {
		if field, ok := headerAliases[NormalizeHeader(h)]; ok {
			fieldByCol[i] = field
		}
	}
	if len(fieldByCol) == 0 {
		return nil, eris.Errorf("ingest: %s has no recognizable columns", sourceFile)
	}

	var leads []model.LeadAttributes
	skipped := 0
	for _, row := range rows[1:] {
		var lead model.LeadAttributes
		lead.SourceFile = sourceFile

		for i, cell := range row {
			field, ok := fieldByCol[i]
			if !ok {
				continue
			}
			value := strings.TrimSpace(cell)
			switch field {
			case "business_name":
				lead.BusinessName = value
			case "address":
				lead.Address = value
			case "city":
				lead.City = value
			case "zip":
				lead.Zip = value
			case "email":
				lead.Email = strings.ToLower(value)
			case "phone":
				lead.Phone = value
			case "website":
				lead.WebsiteURL = value
			case "maps_url":
				lead.MapsURL = value
			case "instagram":
				lead.InstagramURL = value
			case "facebook":
				lead.FacebookURL = value
			}
		}

		if lead.BusinessName == "" {
			skipped++
			continue
		}
		leads = append(leads, lead)
	}

	if skipped > 0 {
		zap.L().Debug("ingest: skipped rows without business name",
			zap.String("file", sourceFile),
			zap.Int("skipped", skipped),
		)
	}

	return leads, nil
}

// LoadFile reads one spreadsheet by extension and maps its rows to leads.
func LoadFile(path string) ([]model.LeadAttributes, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = ReadXLSX(path, XLSXOptions{})
	case ".csv":
		rows, err = ReadCSV(path)
	default:
		return nil, eris.Errorf("ingest: unsupported file type %s", path)
	}
	if err != nil {
		return nil, err
	}

	return MapRows(rows, filepath.Base(path))
}

// LoadFiles loads and combines multiple spreadsheets. A file that fails to
// load is logged and skipped so one bad export does not abort a batch.
func LoadFiles(paths []string) []model.LeadAttributes {
	var combined []model.LeadAttributes
	for _, path := range paths {
		leads, err := LoadFile(path)
		if err != nil {
			zap.L().Error("ingest: failed to load file", zap.String("path", path), zap.Error(err))
			continue
		}
		zap.L().Info("ingest: loaded file",
			zap.String("path", path),
			zap.Int("leads", len(leads)),
		)
		combined = append(combined, leads...)
	}
	return combined
}
