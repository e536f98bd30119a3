package crt

// SeparateChaining - Buckets hold unordered singly linked chains, new entries are prepended
const SeparateChaining int = 1

// LinearProbing - Open addressing over one flat slot array with tombstone deletion and automatic resize
const LinearProbing int = 2

// OrderedChaining - Separate chaining where every bucket chain is kept sorted by key
const OrderedChaining int = 3

// Name - Returns a readable name of the collision resolution technique
func Name(technique int) string {
	switch technique {
	case SeparateChaining:
		return "SeparateChaining"
	case LinearProbing:
		return "LinearProbing"
	case OrderedChaining:
		return "OrderedChaining"
	}

	return "Unknown"
}
