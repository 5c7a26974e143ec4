package aclmgr

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/rigado/aclmgr/sliceops"
)

// Addr is a 6-byte Bluetooth device address, stored little-endian as it
// appears on the wire.
type Addr [6]byte

// NewAddr parses a colon-separated address string ("aa:bb:cc:dd:ee:ff").
func NewAddr(s string) (Addr, error) {
	hexStr := strings.Replace(strings.ToLower(s), ":", "", -1)

	out, err := hex.DecodeString(hexStr)
	if err != nil || len(out) != 6 {
		return Addr{}, fmt.Errorf("invalid address %q", s)
	}

	a := Addr{}
	copy(a[:], sliceops.SwapBuf(out))
	return a, nil
}

func (a Addr) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", a[5], a[4], a[3], a[2], a[1], a[0])
}

// Bytes returns the address in wire order.
func (a Addr) Bytes() []byte {
	out := make([]byte, 6)
	copy(out, a[:])
	return out
}

// AddrType is the address type carried alongside an LE peer address.
type AddrType uint8

const (
	PublicDevice   AddrType = 0x00
	RandomDevice   AddrType = 0x01
	PublicIdentity AddrType = 0x02
	RandomIdentity AddrType = 0x03
)

func (t AddrType) String() string {
	switch t {
	case PublicDevice:
		return "public"
	case RandomDevice:
		return "random"
	case PublicIdentity:
		return "public-identity"
	case RandomIdentity:
		return "random-identity"
	}
	return fmt.Sprintf("unknown(%d)", uint8(t))
}

// AddrWithType pairs a device address with its type.
type AddrWithType struct {
	Addr Addr
	Type AddrType
}

func (a AddrWithType) String() string {
	return fmt.Sprintf("%s(%s)", a.Addr, a.Type)
}

// IsZero reports whether the address is all zeroes (an absent resolvable
// private address in enhanced connection complete events).
func (a Addr) IsZero() bool {
	return a == Addr{}
}
