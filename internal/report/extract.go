package report

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"fdcreport/internal"
	"fdcreport/internal/util"
)

type Extractor struct {
	logger zerolog.Logger
}

func NewExtractor(logger zerolog.Logger) *Extractor {
	return &Extractor{logger: logger.With().Str("component", "extractor").Logger()}
}

type measured struct {
	amount float64
	unit   util.Unit
}

// Row flattens one food into a report row against the fixed catalog.
// Commas in the description become semicolons; catalog entries without a
// matching nutrient emit 0. The row always has len(Catalog) amounts.
func (e *Extractor) Row(food internal.FoodRecord) internal.ReportRow {
	byNumber := make(map[int]measured, len(food.FoodNutrients))
	for _, n := range food.FoodNutrients {
		number, err := strconv.Atoi(strings.TrimSpace(n.Number))
		if err != nil {
			continue
		}
		unit, ok := util.ParseUnit(n.UnitName)
		if !ok {
			e.logger.Warn().
				Int("fdcId", food.FdcID).
				Str("nutrient", n.Name).
				Str("unitName", n.UnitName).
				Msg("unrecognized unit name, amount passes through unscaled")
		}
		// last occurrence wins on duplicate numbers
		byNumber[number] = measured{amount: n.Amount, unit: unit}
	}

	amounts := make([]string, 0, len(Catalog))
	for _, spec := range Catalog {
		value := 0.0
		if spec.ID != IDUnavailable {
			if m, ok := byNumber[spec.ID]; ok {
				value = util.Convert(m.amount, m.unit, spec.Unit)
			}
		}
		amounts = append(amounts, FormatAmount(value))
	}

	return internal.ReportRow{
		FdcID:       food.FdcID,
		Description: strings.ReplaceAll(food.Description, ",", ";"),
		Amounts:     amounts,
	}
}

// FormatAmount renders an amount with at most three decimal places, rounding
// half away from zero and trimming trailing zeros. Rounding works on the
// decimal representation: scaling through float64 (math.Round(v*1000)/1000)
// misrounds values like 1.2345, whose nearest double sits just below the
// midpoint.
func FormatAmount(v float64) string {
	s := roundDecimal(strconv.FormatFloat(v, 'f', -1, 64), 3)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if s == "" || s == "-0" {
		s = "0"
	}
	return s
}

func roundDecimal(s string, places int) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if !hasFrac || len(fracPart) <= places {
		if neg {
			return "-" + s
		}
		return s
	}

	digits := []byte(intPart + fracPart[:places])
	if fracPart[places] >= '5' {
		i := len(digits) - 1
		for ; i >= 0; i-- {
			if digits[i] < '9' {
				digits[i]++
				break
			}
			digits[i] = '0'
		}
		if i < 0 {
			digits = append([]byte{'1'}, digits...)
		}
	}

	out := string(digits[:len(digits)-places]) + "." + string(digits[len(digits)-places:])
	if neg {
		out = "-" + out
	}
	return out
}
