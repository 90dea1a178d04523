package services

// ItemRequest is one requested line of an incoming order: the catalog item id
// and the quantity the caller wants. Prices never appear here; they are taken
// from the stock snapshot during validation.
type ItemRequest struct {
	ItemID   string
	Quantity int
}

// HasRepeatedItemIDs reports whether any item id occurs more than once in the
// requested list. It scans left to right and returns on the first repeat.
// Empty and singleton lists never have repeats.
func HasRepeatedItemIDs(items []ItemRequest) bool {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.ItemID]; ok {
			return true
		}
		seen[item.ItemID] = struct{}{}
	}
	return false
}

// IsAvailable reports whether the available stock quantity covers the
// requested quantity. A requested quantity of zero is considered available by
// this primitive alone; guarding against zero-quantity requests is the
// caller's responsibility.
func IsAvailable(availableQuantity, requestedQuantity int) bool {
	return availableQuantity >= requestedQuantity
}
