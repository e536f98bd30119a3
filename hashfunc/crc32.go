package hashfunc

import "hash/crc32"

// CRC32 - Hashes an arbitrary byte key using crc32.ChecksumIEEE and maps the checksum onto [0, m)
func CRC32(key []byte, m int) int {
	mustHaveCapacity(m)

	h := uint64(crc32.ChecksumIEEE(key))
	return int(h % uint64(m))
}

// CRC32String - Same as CRC32 but for string keys
func CRC32String(key string, m int) int {
	return CRC32([]byte(key), m)
}
