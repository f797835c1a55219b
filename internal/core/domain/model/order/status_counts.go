package order

// CountByStatus tallies orders per status for dashboards. Every business status
// is present in the result; unknown statuses are counted under their own key.
func CountByStatus(orders []*Order) map[Status]int {
	counts := make(map[Status]int, len(AllStatuses()))
	for _, s := range AllStatuses() {
		counts[s] = 0
	}
	for _, o := range orders {
		if o == nil {
			continue
		}
		counts[o.status]++
	}
	return counts
}
