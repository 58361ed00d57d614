package protocol

// Nibble lookup table for the standard CRC-32 polynomial. Sixteen
// entries keep the table small enough for the embedded peers of this
// protocol, at the cost of two lookups per byte.
var crcTable = [16]uint32{
	0x00000000, 0x1db71064, 0x3b6e20c8, 0x26d930ac,
	0x76dc4190, 0x6b6b51f4, 0x4db26158, 0x5005713c,
	0xedb88320, 0xf00f9344, 0xd6d6a3e8, 0xcb61b38c,
	0x9b64c2b0, 0x86d3d2d4, 0xa00ae278, 0xbdbdf21c,
}

// Checksum computes the CRC-32 of data, initialized to all-ones and
// complemented at the end. The same routine verifies inbound messages
// and signs outbound ones.
func Checksum(data []byte) uint32 {
	crc := ^uint32(0)
	for _, b := range data {
		crc = crcTable[(crc^uint32(b))&0x0f] ^ (crc >> 4)
		crc = crcTable[(crc^uint32(b>>4))&0x0f] ^ (crc >> 4)
	}
	return ^crc
}
