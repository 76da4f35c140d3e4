package tournament

// Merge combines the scraped dataset with the manually maintained one
// into a single deduplicated catalog sorted ascending by start date.
//
// Scraped records win: they are inserted first, and a manual record is
// added only when no scraped record shares its uniqueness key. Scraped
// data is presumed fresher, while manual entries fill genuine gaps.
func Merge(scraped, manual []Record) []Record {
	seen := make(map[string]bool, len(scraped)+len(manual))
	merged := make([]Record, 0, len(scraped)+len(manual))

	for _, r := range scraped {
		key := Key(r)
		if !seen[key] {
			seen[key] = true
			merged = append(merged, r)
		}
	}

	for _, r := range manual {
		key := Key(r)
		if !seen[key] {
			seen[key] = true
			merged = append(merged, r)
		}
	}

	SortByStartDate(merged)
	return merged
}
