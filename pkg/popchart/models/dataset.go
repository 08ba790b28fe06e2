package models

import "sort"

// Dataset represents the ordered sequence of records read from one source.
type Dataset struct {
	// Source is the file path or URL the records were read from.
	Source string `json:"source"`
	// Records holds rows in source order.
	Records []Record `json:"records"`
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// YearExtent returns the smallest and largest year over all records.
// ok is false for an empty dataset.
func (d *Dataset) YearExtent() (min, max int, ok bool) {
	if d.Len() == 0 {
		return 0, 0, false
	}
	min, max = d.Records[0].Year, d.Records[0].Year
	for _, r := range d.Records[1:] {
		if r.Year < min {
			min = r.Year
		}
		if r.Year > max {
			max = r.Year
		}
	}
	return min, max, true
}

// PopulationExtent returns the smallest and largest population over all records.
// ok is false for an empty dataset.
func (d *Dataset) PopulationExtent() (min, max float64, ok bool) {
	if d.Len() == 0 {
		return 0, 0, false
	}
	min, max = d.Records[0].Population, d.Records[0].Population
	for _, r := range d.Records[1:] {
		if r.Population < min {
			min = r.Population
		}
		if r.Population > max {
			max = r.Population
		}
	}
	return min, max, true
}

// Series returns the records of one category sorted by year.
// Records sharing a year keep their source order.
func (d *Dataset) Series(c Category) []Record {
	if d.Len() == 0 {
		return nil
	}

	var out []Record
	for _, r := range d.Records {
		if r.Category == c.Name {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Year < out[j].Year
	})
	return out
}

// Categories returns the distinct category tags in order of first appearance.
func (d *Dataset) Categories() []string {
	if d.Len() == 0 {
		return nil
	}

	seen := make(map[string]bool)
	var out []string
	for _, r := range d.Records {
		if !seen[r.Category] {
			seen[r.Category] = true
			out = append(out, r.Category)
		}
	}
	return out
}
