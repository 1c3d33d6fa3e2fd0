package report

import "fdcreport/internal/util"

// IDUnavailable marks a catalog slot for a nutrient the FDC abridged feed
// does not expose. The column is reserved so the report shape stays stable
// if the source ever adds it; the slot can never match a real nutrient
// number.
const IDUnavailable = -1

// NutrientSpec ties a nutrient number to the unit and column name it is
// reported in.
type NutrientSpec struct {
	ID   int
	Unit util.Unit
	Name string
}

// Catalog is the fixed ordered list of reported nutrients. Its order defines
// the CSV column order and is never re-sorted.
var Catalog = []NutrientSpec{
	{ID: 203, Unit: util.Gram, Name: "Protein"},
	{ID: 204, Unit: util.Gram, Name: "Total fat"},
	{ID: 205, Unit: util.Gram, Name: "Carbohydrate"},
	{ID: 291, Unit: util.Gram, Name: "Fiber"},
	{ID: 269, Unit: util.Gram, Name: "Sugars"},
	{ID: 301, Unit: util.Milligram, Name: "Calcium"},
	{ID: 303, Unit: util.Milligram, Name: "Iron"},
	{ID: 304, Unit: util.Milligram, Name: "Magnesium"},
	{ID: 305, Unit: util.Milligram, Name: "Phosphorus"},
	{ID: 306, Unit: util.Milligram, Name: "Potassium"},
	{ID: 307, Unit: util.Milligram, Name: "Sodium"},
	{ID: 309, Unit: util.Milligram, Name: "Zinc"},
	{ID: 312, Unit: util.Milligram, Name: "Copper"},
	{ID: 315, Unit: util.Milligram, Name: "Manganese"},
	{ID: 317, Unit: util.Microgram, Name: "Selenium"},
	{ID: 401, Unit: util.Milligram, Name: "Vitamin C"},
	{ID: 404, Unit: util.Milligram, Name: "Thiamin"},
	{ID: 405, Unit: util.Milligram, Name: "Riboflavin"},
	{ID: 406, Unit: util.Milligram, Name: "Niacin"},
	{ID: 410, Unit: util.Milligram, Name: "Pantothenic acid"},
	{ID: 415, Unit: util.Milligram, Name: "Vitamin B-6"},
	{ID: 417, Unit: util.Microgram, Name: "Folate"},
	{ID: 418, Unit: util.Microgram, Name: "Vitamin B-12"},
	{ID: 320, Unit: util.Microgram, Name: "Vitamin A"},
	{ID: 323, Unit: util.Milligram, Name: "Vitamin E"},
	{ID: 328, Unit: util.Microgram, Name: "Vitamin D"},
	{ID: 430, Unit: util.Microgram, Name: "Vitamin K"},
	{ID: IDUnavailable, Unit: util.Microgram, Name: "Biotin"},
	{ID: IDUnavailable, Unit: util.Microgram, Name: "Chromium"},
	{ID: IDUnavailable, Unit: util.Microgram, Name: "Molybdenum"},
	{ID: IDUnavailable, Unit: util.Microgram, Name: "Iodine"},
}
