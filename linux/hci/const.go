package hci

// HCI Packet types
const (
	PktTypeCommand uint8 = 0x01
	PktTypeACLData uint8 = 0x02
	PktTypeSCOData uint8 = 0x03
	PktTypeEvent   uint8 = 0x04
	PktTypeVendor  uint8 = 0xFF
)

// Packet boundary flags of HCI ACL Data Packet [Vol 2, Part E, 5.4.2].
const (
	PbfFirstNonFlushable = 0x00 // First non-automatically-flushable, host to controller only.
	PbfContinuing        = 0x01 // Continuing fragment.
	PbfFirstFlushable    = 0x02 // First automatically-flushable, starts a new L2CAP PDU.
	PbfComplete          = 0x03 // A complete automatically-flushable L2CAP PDU.
)

const (
	RoleMaster = 0x00
	RoleSlave  = 0x01
)

// QualcommDebugHandle is a vendor debug connection handle some controllers
// emit ACL traffic on. Dropped silently on ingress.
const QualcommDebugHandle uint16 = 0xEDC

// L2CAP Basic Frame header: length (2) + channel id (2).
const L2capHeaderSize = 4

// MaxQueuedPacketsPerConnection bounds both per-connection PDU queues.
const MaxQueuedPacketsPerConnection = 10
