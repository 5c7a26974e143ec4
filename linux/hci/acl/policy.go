package acl

import (
	"crypto/rand"

	"github.com/rigado/aclmgr"
)

// LeAddressPolicy supplies the random device address set on the
// controller before an extended create connection. Production stacks
// plug in a rotation policy; the default generates one static random
// address and keeps it for the lifetime of the manager.
type LeAddressPolicy interface {
	NextRandomAddress() aclmgr.Addr
}

type staticRandomAddressPolicy struct {
	addr aclmgr.Addr
}

// NewStaticRandomAddressPolicy generates a static random address
// [Vol 6, Part B, 1.3.2.1]: random bytes with the two most significant
// bits set.
func NewStaticRandomAddressPolicy() LeAddressPolicy {
	p := &staticRandomAddressPolicy{}
	if _, err := rand.Read(p.addr[:]); err != nil {
		logger.Error("can't generate static random address", "err", err)
	}
	p.addr[5] |= 0xc0
	return p
}

func (p *staticRandomAddressPolicy) NextRandomAddress() aclmgr.Addr {
	return p.addr
}
