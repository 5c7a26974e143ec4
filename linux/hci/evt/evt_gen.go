package evt

import "encoding/binary"

const ConnectionCompleteCode = 0x03

// ConnectionComplete implements Connection Complete (0x03) [Vol 2, Part E, 7.7.3].
type ConnectionComplete []byte

func (r ConnectionComplete) Status() uint8            { return r[0] }
func (r ConnectionComplete) ConnectionHandle() uint16 { return binary.LittleEndian.Uint16(r[1:]) }
func (r ConnectionComplete) BdAddr() [6]byte {
	b := [6]byte{}
	copy(b[:], r[3:])
	return b
}
func (r ConnectionComplete) LinkType() uint8          { return r[9] }
func (r ConnectionComplete) EncryptionEnabled() uint8 { return r[10] }

const ConnectionRequestCode = 0x04

// ConnectionRequest implements Connection Request (0x04) [Vol 2, Part E, 7.7.4].
type ConnectionRequest []byte

func (r ConnectionRequest) BdAddr() [6]byte {
	b := [6]byte{}
	copy(b[:], r[0:])
	return b
}
func (r ConnectionRequest) ClassOfDevice() [3]byte {
	b := [3]byte{}
	copy(b[:], r[6:])
	return b
}
func (r ConnectionRequest) LinkType() uint8 { return r[9] }

const DisconnectionCompleteCode = 0x05

// DisconnectionComplete implements Disconnection Complete (0x05) [Vol 2, Part E, 7.7.5].
type DisconnectionComplete []byte

func (r DisconnectionComplete) Status() uint8            { return r[0] }
func (r DisconnectionComplete) ConnectionHandle() uint16 { return binary.LittleEndian.Uint16(r[1:]) }
func (r DisconnectionComplete) Reason() uint8            { return r[3] }

const AuthenticationCompleteCode = 0x06

// AuthenticationComplete implements Authentication Complete (0x06) [Vol 2, Part E, 7.7.6].
type AuthenticationComplete []byte

func (r AuthenticationComplete) Status() uint8            { return r[0] }
func (r AuthenticationComplete) ConnectionHandle() uint16 { return binary.LittleEndian.Uint16(r[1:]) }

const EncryptionChangeCode = 0x08

// EncryptionChange implements Encryption Change (0x08) [Vol 2, Part E, 7.7.8].
type EncryptionChange []byte

func (r EncryptionChange) Status() uint8            { return r[0] }
func (r EncryptionChange) ConnectionHandle() uint16 { return binary.LittleEndian.Uint16(r[1:]) }
func (r EncryptionChange) EncryptionEnabled() uint8 { return r[3] }

const ChangeConnectionLinkKeyCompleteCode = 0x09

// ChangeConnectionLinkKeyComplete implements Change Connection Link Key Complete (0x09) [Vol 2, Part E, 7.7.9].
type ChangeConnectionLinkKeyComplete []byte

func (r ChangeConnectionLinkKeyComplete) Status() uint8 { return r[0] }
func (r ChangeConnectionLinkKeyComplete) ConnectionHandle() uint16 {
	return binary.LittleEndian.Uint16(r[1:])
}

const MasterLinkKeyCompleteCode = 0x0A

// MasterLinkKeyComplete implements Master Link Key Complete (0x0A) [Vol 2, Part E, 7.7.10].
type MasterLinkKeyComplete []byte

func (r MasterLinkKeyComplete) Status() uint8            { return r[0] }
func (r MasterLinkKeyComplete) ConnectionHandle() uint16 { return binary.LittleEndian.Uint16(r[1:]) }
func (r MasterLinkKeyComplete) KeyFlag() uint8           { return r[3] }

const ReadRemoteSupportedFeaturesCompleteCode = 0x0B

// ReadRemoteSupportedFeaturesComplete implements Read Remote Supported Features Complete (0x0B) [Vol 2, Part E, 7.7.11].
type ReadRemoteSupportedFeaturesComplete []byte

func (r ReadRemoteSupportedFeaturesComplete) Status() uint8 { return r[0] }
func (r ReadRemoteSupportedFeaturesComplete) ConnectionHandle() uint16 {
	return binary.LittleEndian.Uint16(r[1:])
}
func (r ReadRemoteSupportedFeaturesComplete) LmpFeatures() uint64 {
	return binary.LittleEndian.Uint64(r[3:])
}

const ReadRemoteVersionInformationCompleteCode = 0x0C

// ReadRemoteVersionInformationComplete implements Read Remote Version Information Complete (0x0C) [Vol 2, Part E, 7.7.12].
type ReadRemoteVersionInformationComplete []byte

func (r ReadRemoteVersionInformationComplete) Status() uint8 { return r[0] }
func (r ReadRemoteVersionInformationComplete) ConnectionHandle() uint16 {
	return binary.LittleEndian.Uint16(r[1:])
}
func (r ReadRemoteVersionInformationComplete) Version() uint8 { return r[3] }
func (r ReadRemoteVersionInformationComplete) ManufacturerName() uint16 {
	return binary.LittleEndian.Uint16(r[4:])
}
func (r ReadRemoteVersionInformationComplete) Subversion() uint16 {
	return binary.LittleEndian.Uint16(r[6:])
}

const QosSetupCompleteCode = 0x0D

// QosSetupComplete implements QoS Setup Complete (0x0D) [Vol 2, Part E, 7.7.13].
type QosSetupComplete []byte

func (r QosSetupComplete) Status() uint8            { return r[0] }
func (r QosSetupComplete) ConnectionHandle() uint16 { return binary.LittleEndian.Uint16(r[1:]) }
func (r QosSetupComplete) ServiceType() uint8       { return r[4] }
func (r QosSetupComplete) TokenRate() uint32        { return binary.LittleEndian.Uint32(r[5:]) }
func (r QosSetupComplete) PeakBandwidth() uint32    { return binary.LittleEndian.Uint32(r[9:]) }
func (r QosSetupComplete) Latency() uint32          { return binary.LittleEndian.Uint32(r[13:]) }
func (r QosSetupComplete) DelayVariation() uint32   { return binary.LittleEndian.Uint32(r[17:]) }

const CommandCompleteCode = 0x0E

// CommandComplete implements Command Complete (0x0E) [Vol 2, Part E, 7.7.14].
type CommandComplete []byte

const CommandStatusCode = 0x0F

// CommandStatus implements Command Status (0x0F) [Vol 2, Part E, 7.7.15].
type CommandStatus []byte

func (r CommandStatus) Status() uint8               { return r[0] }
func (r CommandStatus) NumHCICommandPackets() uint8 { return r[1] }
func (r CommandStatus) CommandOpcode() uint16       { return binary.LittleEndian.Uint16(r[2:]) }

const HardwareErrorCode = 0x10

// HardwareError implements Hardware Error (0x10) [Vol 2, Part E, 7.7.16].
type HardwareError []byte

func (r HardwareError) HardwareCode() uint8 { return r[0] }

const FlushOccurredCode = 0x11

// FlushOccurred implements Flush Occurred (0x11) [Vol 2, Part E, 7.7.17].
type FlushOccurred []byte

func (r FlushOccurred) Handle() uint16 { return binary.LittleEndian.Uint16(r[0:]) }

const RoleChangeCode = 0x12

// RoleChange implements Role Change (0x12) [Vol 2, Part E, 7.7.18].
type RoleChange []byte

func (r RoleChange) Status() uint8 { return r[0] }
func (r RoleChange) BdAddr() [6]byte {
	b := [6]byte{}
	copy(b[:], r[1:])
	return b
}
func (r RoleChange) NewRole() uint8 { return r[7] }

const NumberOfCompletedPacketsCode = 0x13

// NumberOfCompletedPackets implements Number Of Completed Packets (0x13) [Vol 2, Part E, 7.7.19].
type NumberOfCompletedPackets []byte

const ModeChangeCode = 0x14

// ModeChange implements Mode Change (0x14) [Vol 2, Part E, 7.7.20].
type ModeChange []byte

func (r ModeChange) Status() uint8            { return r[0] }
func (r ModeChange) ConnectionHandle() uint16 { return binary.LittleEndian.Uint16(r[1:]) }
func (r ModeChange) CurrentMode() uint8       { return r[3] }
func (r ModeChange) Interval() uint16         { return binary.LittleEndian.Uint16(r[4:]) }

const ReadClockOffsetCompleteCode = 0x1C

// ReadClockOffsetComplete implements Read Clock Offset Complete (0x1C) [Vol 2, Part E, 7.7.23].
type ReadClockOffsetComplete []byte

func (r ReadClockOffsetComplete) Status() uint8            { return r[0] }
func (r ReadClockOffsetComplete) ConnectionHandle() uint16 { return binary.LittleEndian.Uint16(r[1:]) }
func (r ReadClockOffsetComplete) ClockOffset() uint16      { return binary.LittleEndian.Uint16(r[3:]) }

const ConnectionPacketTypeChangedCode = 0x1D

// ConnectionPacketTypeChanged implements Connection Packet Type Changed (0x1D) [Vol 2, Part E, 7.7.24].
type ConnectionPacketTypeChanged []byte

func (r ConnectionPacketTypeChanged) Status() uint8 { return r[0] }
func (r ConnectionPacketTypeChanged) ConnectionHandle() uint16 {
	return binary.LittleEndian.Uint16(r[1:])
}
func (r ConnectionPacketTypeChanged) PacketType() uint16 { return binary.LittleEndian.Uint16(r[3:]) }

const FlowSpecificationCompleteCode = 0x21

// FlowSpecificationComplete implements Flow Specification Complete (0x21) [Vol 2, Part E, 7.7.32].
type FlowSpecificationComplete []byte

func (r FlowSpecificationComplete) Status() uint8 { return r[0] }
func (r FlowSpecificationComplete) ConnectionHandle() uint16 {
	return binary.LittleEndian.Uint16(r[1:])
}
func (r FlowSpecificationComplete) FlowDirection() uint8   { return r[4] }
func (r FlowSpecificationComplete) ServiceType() uint8     { return r[5] }
func (r FlowSpecificationComplete) TokenRate() uint32      { return binary.LittleEndian.Uint32(r[6:]) }
func (r FlowSpecificationComplete) TokenBucketSize() uint32 {
	return binary.LittleEndian.Uint32(r[10:])
}
func (r FlowSpecificationComplete) PeakBandwidth() uint32 { return binary.LittleEndian.Uint32(r[14:]) }
func (r FlowSpecificationComplete) AccessLatency() uint32 { return binary.LittleEndian.Uint32(r[18:]) }

const ReadRemoteExtendedFeaturesCompleteCode = 0x23

// ReadRemoteExtendedFeaturesComplete implements Read Remote Extended Features Complete (0x23) [Vol 2, Part E, 7.7.34].
type ReadRemoteExtendedFeaturesComplete []byte

func (r ReadRemoteExtendedFeaturesComplete) Status() uint8 { return r[0] }
func (r ReadRemoteExtendedFeaturesComplete) ConnectionHandle() uint16 {
	return binary.LittleEndian.Uint16(r[1:])
}
func (r ReadRemoteExtendedFeaturesComplete) PageNumber() uint8    { return r[3] }
func (r ReadRemoteExtendedFeaturesComplete) MaxPageNumber() uint8 { return r[4] }
func (r ReadRemoteExtendedFeaturesComplete) ExtendedLmpFeatures() uint64 {
	return binary.LittleEndian.Uint64(r[5:])
}

const LinkSupervisionTimeoutChangedCode = 0x38

// LinkSupervisionTimeoutChanged implements Link Supervision Timeout Changed (0x38) [Vol 2, Part E, 7.7.46].
type LinkSupervisionTimeoutChanged []byte

func (r LinkSupervisionTimeoutChanged) ConnectionHandle() uint16 {
	return binary.LittleEndian.Uint16(r[0:])
}
func (r LinkSupervisionTimeoutChanged) LinkSupervisionTimeout() uint16 {
	return binary.LittleEndian.Uint16(r[2:])
}

const LEMetaCode = 0x3E

const LEConnectionCompleteSubCode = 0x01

// LEConnectionComplete implements LE Connection Complete (0x3E:0x01) [Vol 2, Part E, 7.7.65.1].
type LEConnectionComplete []byte

func (r LEConnectionComplete) SubeventCode() uint8      { return r[0] }
func (r LEConnectionComplete) Status() uint8            { return r[1] }
func (r LEConnectionComplete) ConnectionHandle() uint16 { return binary.LittleEndian.Uint16(r[2:]) }
func (r LEConnectionComplete) Role() uint8              { return r[4] }
func (r LEConnectionComplete) PeerAddressType() uint8   { return r[5] }
func (r LEConnectionComplete) PeerAddress() [6]byte {
	b := [6]byte{}
	copy(b[:], r[6:])
	return b
}
func (r LEConnectionComplete) ConnInterval() uint16       { return binary.LittleEndian.Uint16(r[12:]) }
func (r LEConnectionComplete) ConnLatency() uint16        { return binary.LittleEndian.Uint16(r[14:]) }
func (r LEConnectionComplete) SupervisionTimeout() uint16 { return binary.LittleEndian.Uint16(r[16:]) }
func (r LEConnectionComplete) MasterClockAccuracy() uint8 { return r[18] }

const LEConnectionUpdateCompleteSubCode = 0x03

// LEConnectionUpdateComplete implements LE Connection Update Complete (0x3E:0x03) [Vol 2, Part E, 7.7.65.3].
type LEConnectionUpdateComplete []byte

func (r LEConnectionUpdateComplete) SubeventCode() uint8 { return r[0] }
func (r LEConnectionUpdateComplete) Status() uint8       { return r[1] }
func (r LEConnectionUpdateComplete) ConnectionHandle() uint16 {
	return binary.LittleEndian.Uint16(r[2:])
}
func (r LEConnectionUpdateComplete) ConnInterval() uint16 { return binary.LittleEndian.Uint16(r[4:]) }
func (r LEConnectionUpdateComplete) ConnLatency() uint16  { return binary.LittleEndian.Uint16(r[6:]) }
func (r LEConnectionUpdateComplete) SupervisionTimeout() uint16 {
	return binary.LittleEndian.Uint16(r[8:])
}

const LEEnhancedConnectionCompleteSubCode = 0x0A

// LEEnhancedConnectionComplete implements LE Enhanced Connection Complete (0x3E:0x0A) [Vol 2, Part E, 7.7.65.10].
type LEEnhancedConnectionComplete []byte

func (r LEEnhancedConnectionComplete) SubeventCode() uint8 { return r[0] }
func (r LEEnhancedConnectionComplete) Status() uint8       { return r[1] }
func (r LEEnhancedConnectionComplete) ConnectionHandle() uint16 {
	return binary.LittleEndian.Uint16(r[2:])
}
func (r LEEnhancedConnectionComplete) Role() uint8            { return r[4] }
func (r LEEnhancedConnectionComplete) PeerAddressType() uint8 { return r[5] }
func (r LEEnhancedConnectionComplete) PeerAddress() [6]byte {
	b := [6]byte{}
	copy(b[:], r[6:])
	return b
}
func (r LEEnhancedConnectionComplete) LocalResolvablePrivateAddress() [6]byte {
	b := [6]byte{}
	copy(b[:], r[12:])
	return b
}
func (r LEEnhancedConnectionComplete) PeerResolvablePrivateAddress() [6]byte {
	b := [6]byte{}
	copy(b[:], r[18:])
	return b
}
func (r LEEnhancedConnectionComplete) ConnInterval() uint16 {
	return binary.LittleEndian.Uint16(r[24:])
}
func (r LEEnhancedConnectionComplete) ConnLatency() uint16 {
	return binary.LittleEndian.Uint16(r[26:])
}
func (r LEEnhancedConnectionComplete) SupervisionTimeout() uint16 {
	return binary.LittleEndian.Uint16(r[28:])
}
func (r LEEnhancedConnectionComplete) MasterClockAccuracy() uint8 { return r[30] }
