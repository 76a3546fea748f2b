package aggregate

import "math"

// TotalComplaints sums every company count in the group.
func TotalComplaints(counter Counter) int {
	total := 0
	for _, n := range counter {
		total += n
	}
	return total
}

// TotalCompanies is the number of distinct companies in the group.
func TotalCompanies(counter Counter) int {
	return len(counter)
}

// HighestPercentage is the share of total held by the company with the most
// complaints, as a percentage rounded half away from zero. The caller's total
// is used as is. A non-positive total or an empty counter gives 0.
func HighestPercentage(counter Counter, total int) int {
	if total <= 0 {
		return 0
	}

	top := 0
	for _, n := range counter {
		if n > top {
			top = n
		}
	}

	return int(math.Round(float64(top) / float64(total) * 100))
}
