package catalog

// Page returns the 1-based page of list, clamped to its bounds.
func Page[T any](list []T, page, size int) []T {
	if page < 1 || size < 1 || len(list) == 0 {
		return []T{}
	}

	// compare by division so huge page numbers cannot overflow start
	if page-1 > (len(list)-1)/size {
		return []T{}
	}

	start := (page - 1) * size
	end := start + min(size, len(list)-start)

	return list[start:end]
}

// TotalPages is ceil(n/size), zero for an empty list.
func TotalPages(n, size int) int {
	if n <= 0 || size < 1 {
		return 0
	}

	return (n + size - 1) / size
}

// Window is the storefront "load more" view: everything up to and including
// page, plus whether more products remain.
func Window[T any](list []T, page, size int) ([]T, bool) {
	if size < 1 {
		return []T{}, false
	}

	page = max(page, 1)
	end := len(list)
	if page <= len(list)/size {
		end = page * size
	}

	return list[:end], end < len(list)
}
