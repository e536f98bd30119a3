package utils

import (
	"fmt"

	"github.com/gostonefire/symtab/crt"
	"github.com/gostonefire/symtab/interfaces"
	"github.com/pkg/errors"
)

// CheckTableArguments - Validates the arguments common to every hash table constructor
func CheckTableArguments[K any](capacity int, hasher interfaces.Hasher[K], cmp interfaces.Comparator[K]) (err error) {
	if capacity <= 0 {
		err = errors.Wrapf(crt.InvalidArgument{}, "capacity must be a positive value higher than 0 (zero), got %d", capacity)
		return
	}
	if hasher == nil {
		err = errors.Wrap(crt.InvalidArgument{}, "hasher can not be nil")
		return
	}
	if cmp == nil {
		err = errors.Wrap(crt.InvalidArgument{}, "comparator can not be nil")
		return
	}

	return
}

// BucketNo - Returns the bucket number that the hasher gives for key.
// A hasher returning a number outside the permitted range breaks the table contract and panics.
func BucketNo[K any](hasher interfaces.Hasher[K], key K, capacity int) int {
	bucketNo := hasher(key, capacity)
	if bucketNo < 0 || bucketNo >= capacity {
		panic(fmt.Sprintf("received bucket number %d from hasher is outside permitted range [0, %d)", bucketNo, capacity))
	}

	return bucketNo
}

// LoadFactor - Returns size / capacity, or 0 for a table without capacity
func LoadFactor(size, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}

	return float64(size) / float64(capacity)
}
