package domain

import (
	"sort"
	"strings"
)

// startsAfter orders by (year, month) descending.
func startsAfter(y1, m1, y2, m2 int) bool {
	if y1 != y2 {
		return y1 > y2
	}
	return m1 > m2
}

// SortWorkExperience orders by explicit order ascending, then most recent start first.
func SortWorkExperience(items []WorkExperience) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return startsAfter(a.StartYear, a.StartMonth, b.StartYear, b.StartMonth)
	})
}

func SortEducation(items []Education) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return startsAfter(a.StartYear, a.StartMonth, b.StartYear, b.StartMonth)
	})
}

func SortSkills(items []Skill) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
}
