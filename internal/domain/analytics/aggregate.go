package analytics

import "sort"

// FillMonths returns 12 buckets, January first, zero where rows has no entry.
func FillMonths(rows []MonthlyCount) []MonthlyCount {
	out := make([]MonthlyCount, 12)
	for i := range out {
		out[i].Month = i + 1
	}
	for _, r := range rows {
		if r.Month >= 1 && r.Month <= 12 {
			out[r.Month-1].Count += r.Count
		}
	}
	return out
}

func FillRevenueMonths(rows []MonthlyRevenue) []MonthlyRevenue {
	out := make([]MonthlyRevenue, 12)
	for i := range out {
		out[i].Month = i + 1
	}
	for _, r := range rows {
		if r.Month >= 1 && r.Month <= 12 {
			m := &out[r.Month-1]
			m.Billed += r.Billed
			m.Collected += r.Collected
			m.Outstanding += r.Outstanding
		}
	}
	return out
}

func SumCounts(rows []MonthlyCount) int64 {
	var total int64
	for _, r := range rows {
		total += r.Count
	}
	return total
}

// NormalizeLabels replaces empty labels with "unspecified", merges
// duplicates and sorts by count desc, then label.
func NormalizeLabels(rows []LabelCount) []LabelCount {
	merged := map[string]int64{}
	for _, r := range rows {
		label := r.Label
		if label == "" {
			label = "unspecified"
		}
		merged[label] += r.Count
	}

	out := make([]LabelCount, 0, len(merged))
	for label, count := range merged {
		out = append(out, LabelCount{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}
