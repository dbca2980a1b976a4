package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Joeseb100/realprops/models"
)

// FlexString accepts either a JSON string or a JSON number, mirroring the
// loosely typed rows the bulk form and CSV paste produce.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	if string(data) == "null" {
		*s = ""
		return nil
	}
	*s = FlexString(data)
	return nil
}

func (s FlexString) String() string { return string(s) }

// ImportRow is one raw property-like record. All scalar fields stay strings
// until the engine coerces them.
type ImportRow struct {
	Title       FlexString `json:"title"`
	Price       FlexString `json:"price"`
	Location    FlexString `json:"location"`
	Type        FlexString `json:"type"`
	AreaSqft    FlexString `json:"areaSqft"`
	Bedrooms    FlexString `json:"bedrooms"`
	Bathrooms   FlexString `json:"bathrooms"`
	Description FlexString `json:"description"`
	PhoneNumber FlexString `json:"phoneNumber"`
	Status      FlexString `json:"status"`
	Images      []string   `json:"images"`
}

type ImportResult struct {
	Row   int    `json:"row"`
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type ImportError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ImportSummary is what callers use to report "N uploaded, M failed".
type ImportSummary struct {
	Success int            `json:"success"`
	Failed  int            `json:"failed"`
	Results []ImportResult `json:"results"`
	Errors  []ImportError  `json:"errors"`
}

const missingFieldsMessage = "Missing required fields (title, price, location, areaSqft, phoneNumber, description)"

// Importer validates and creates properties one row at a time. Rows are
// processed sequentially so error attribution stays deterministic; no row
// failure aborts the batch.
type Importer struct {
	Properties *PropertyRepository
}

func NewImporter(properties *PropertyRepository) *Importer {
	return &Importer{Properties: properties}
}

// Import walks the rows in order, 1-indexed. Every row either shows up in
// Results or in Errors; Success+Failed always equals len(rows).
func (im *Importer) Import(rows []ImportRow) ImportSummary {
	summary := ImportSummary{
		Results: []ImportResult{},
		Errors:  []ImportError{},
	}

	for i, row := range rows {
		rowNum := i + 1

		if row.Title == "" || row.Price == "" || row.Location == "" ||
			row.AreaSqft == "" || row.PhoneNumber == "" || row.Description == "" {
			summary.Errors = append(summary.Errors, ImportError{Row: rowNum, Error: missingFieldsMessage})
			continue
		}

		property, err := im.buildProperty(row)
		if err == nil {
			err = im.Properties.Create(property, row.Images)
		}
		if err != nil {
			summary.Errors = append(summary.Errors, ImportError{Row: rowNum, Error: err.Error()})
			continue
		}

		summary.Results = append(summary.Results, ImportResult{
			Row:   rowNum,
			ID:    property.ID,
			Title: property.Title,
		})
	}

	summary.Success = len(summary.Results)
	summary.Failed = len(summary.Errors)
	return summary
}

func (im *Importer) buildProperty(row ImportRow) (*models.Property, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(row.Price.String()), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q", row.Price.String())
	}
	areaSqft, err := strconv.Atoi(strings.TrimSpace(row.AreaSqft.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid areaSqft %q", row.AreaSqft.String())
	}

	// Bedrooms/bathrooms fall back to 0 when absent or non-numeric.
	bedrooms, _ := strconv.Atoi(strings.TrimSpace(row.Bedrooms.String()))
	bathrooms, _ := strconv.Atoi(strings.TrimSpace(row.Bathrooms.String()))

	propertyType := row.Type.String()
	if propertyType == "" {
		propertyType = models.PropertyTypeHouse
	}
	status := row.Status.String()
	if status == "" {
		status = models.PropertyStatusAvailable
	}

	return &models.Property{
		Title:       row.Title.String(),
		Price:       price,
		Location:    row.Location.String(),
		Type:        propertyType,
		AreaSqft:    areaSqft,
		Bedrooms:    bedrooms,
		Bathrooms:   bathrooms,
		Description: row.Description.String(),
		PhoneNumber: row.PhoneNumber.String(),
		Status:      status,
	}, nil
}

// ParseCSV turns pasted delimited text into import rows. The first line is a
// header row matched case-insensitively against recognized aliases;
// unrecognized headers are ignored. Rows with an empty title or price are
// dropped here, before row numbering, so they never reach the error report.
func ParseCSV(text string) []ImportRow {
	reader := csv.NewReader(strings.NewReader(strings.TrimSpace(text)))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil || len(records) < 2 {
		return nil
	}

	headers := records[0]
	for i, h := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var rows []ImportRow
	for _, record := range records[1:] {
		var row ImportRow
		for idx, header := range headers {
			if idx >= len(record) {
				break
			}
			val := FlexString(strings.TrimSpace(record[idx]))
			switch header {
			case "title":
				row.Title = val
			case "price":
				row.Price = val
			case "location":
				row.Location = val
			case "type":
				row.Type = val
			case "areasqft", "area":
				row.AreaSqft = val
			case "bedrooms", "beds":
				row.Bedrooms = val
			case "bathrooms", "baths":
				row.Bathrooms = val
			case "description":
				row.Description = val
			case "phone", "phonenumber":
				row.PhoneNumber = val
			}
		}
		if row.Title != "" && row.Price != "" {
			rows = append(rows, row)
		}
	}
	return rows
}
