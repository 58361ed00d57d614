package protocol

import (
	"hash/crc32"
	"testing"
)

// The nibble-table implementation must agree with the full-table
// standard CRC-32 for any input.
func TestChecksum_MatchesStandardCRC32(t *testing.T) {
	inputs := []string{
		"",
		"0,1",
		"2,1,1",
		"1,0,9,4,85",
		"3,2,255,127,0",
		"DISCOVERY_PACKET",
	}
	for _, in := range inputs {
		got := Checksum([]byte(in))
		want := crc32.ChecksumIEEE([]byte(in))
		if got != want {
			t.Errorf("Checksum(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestChecksum_SensitiveToEveryByte(t *testing.T) {
	base := []byte("2,1,1")
	ref := Checksum(base)
	for i := range base {
		mutated := append([]byte(nil), base...)
		mutated[i] ^= 0x01
		if Checksum(mutated) == ref {
			t.Errorf("flipping byte %d left the checksum unchanged", i)
		}
	}
}
