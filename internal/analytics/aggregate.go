package analytics

import "sort"

// NameValue is one bar or slice in an admin chart
type NameValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// DatePoint is one point in a per-day series
type DatePoint struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// CountValues folds a list of categorical values into chart rows, largest
// bucket first. Ties break alphabetically so the output is stable.
func CountValues(values []string) []NameValue {
	counts := make(map[string]int)
	for _, v := range values {
		counts[v]++
	}

	rows := make([]NameValue, 0, len(counts))
	for name, value := range counts {
		rows = append(rows, NameValue{Name: name, Value: value})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Value != rows[j].Value {
			return rows[i].Value > rows[j].Value
		}
		return rows[i].Name < rows[j].Name
	})

	return rows
}

// DateSeries folds a list of YYYY-MM-DD dates into a per-day series in
// ascending date order, keeping at most the latest maxPoints days.
func DateSeries(dates []string, maxPoints int) []DatePoint {
	counts := make(map[string]int)
	for _, d := range dates {
		counts[d]++
	}

	points := make([]DatePoint, 0, len(counts))
	for date, count := range counts {
		points = append(points, DatePoint{Date: date, Count: count})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})

	if maxPoints > 0 && len(points) > maxPoints {
		points = points[len(points)-maxPoints:]
	}

	return points
}
