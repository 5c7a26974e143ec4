package hci

import "encoding/binary"

// AclPacket implements a view over an HCI ACL Data Packet, excluding the
// 1-byte HCI packet type indicator [Vol 2, Part E, 5.4.2].
// Packet boundary flags occupy bits [5:4] of the handle field's MSB;
// broadcast flags bits [7:6]. Handles are 12 bits.
type AclPacket []byte

func (a AclPacket) Handle() uint16 { return uint16(a[0]) | (uint16(a[1]&0x0f) << 8) }
func (a AclPacket) Pbf() int       { return (int(a[1]) >> 4) & 0x3 }
func (a AclPacket) Bcf() int       { return (int(a[1]) >> 6) & 0x3 }
func (a AclPacket) Dlen() int      { return int(a[2]) | (int(a[3]) << 8) }
func (a AclPacket) Payload() []byte {
	if len(a) < 4 {
		return nil
	}
	return a[4:]
}

// Valid reports whether the header is present and the declared data
// length matches the payload.
func (a AclPacket) Valid() bool {
	return len(a) >= 4 && a.Dlen() == len(a)-4
}

// BuildAclPacket assembles a full ACL packet (including the HCI packet
// type byte) for one fragment of an L2CAP PDU.
func BuildAclPacket(handle uint16, pbf uint8, fragment []byte) []byte {
	b := make([]byte, 5+len(fragment))
	b[0] = PktTypeACLData
	binary.LittleEndian.PutUint16(b[1:], handle|uint16(pbf)<<12)
	binary.LittleEndian.PutUint16(b[3:], uint16(len(fragment)))
	copy(b[5:], fragment)
	return b
}

// Pdu is a view over a reassembled L2CAP Basic Frame.
type Pdu []byte

func (p Pdu) Dlen() int       { return int(binary.LittleEndian.Uint16(p[0:2])) }
func (p Pdu) Cid() uint16     { return binary.LittleEndian.Uint16(p[2:4]) }
func (p Pdu) Payload() []byte { return p[4:] }
