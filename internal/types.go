package internal

// RawNutrient is one entry of a food's nutrient list as the FDC API returns
// it. Number is a string-encoded integer nutrient id.
type RawNutrient struct {
	Number   string  `json:"number"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	UnitName string  `json:"unitName"`
}

// FoodRecord is one food object from the abridged /foods response.
// DataType, PublicationDate and NbdNumber are carried for the run archive but
// never used by the extractor.
type FoodRecord struct {
	FdcID           int           `json:"fdcId"`
	Description     string        `json:"description"`
	DataType        string        `json:"dataType"`
	PublicationDate string        `json:"publicationDate"`
	NbdNumber       string        `json:"nbdNumber"`
	FoodNutrients   []RawNutrient `json:"foodNutrients"`
}

// ReportRow is one output row: sanitized description, food id, and one
// formatted amount per catalog entry, in catalog order.
type ReportRow struct {
	FdcID       int
	Description string
	Amounts     []string
}

// RunRow describes one archived pipeline run.
type RunRow struct {
	ID         int
	TraceID    string
	InputPath  string
	OutputPath string
	FoodCount  int
	CreatedAt  string
}
