package cmd

// CreateConnection implements Create Connection (0x01|0x0005) [Vol 2, Part E, 7.1.5]
type CreateConnection struct {
	BDADDR                 [6]byte
	PacketType             uint16
	PageScanRepetitionMode uint8
	Reserved               uint8
	ClockOffset            uint16
	AllowRoleSwitch        uint8
}

func (c *CreateConnection) String() string {
	return "Create Connection (0x01|0x0005)"
}

// OpCode returns the opcode of the command.
func (c *CreateConnection) OpCode() int { return 0x01<<10 | 0x0005 }

// Len returns the length of the command.
func (c *CreateConnection) Len() int { return 13 }

// Marshal serializes the command parameters into binary form.
func (c *CreateConnection) Marshal(b []byte) error {
	return marshal(c, b)
}

// Disconnect implements Disconnect (0x01|0x0006) [Vol 2, Part E, 7.1.6]
type Disconnect struct {
	ConnectionHandle uint16
	Reason           uint8
}

func (c *Disconnect) String() string {
	return "Disconnect (0x01|0x0006)"
}

// OpCode returns the opcode of the command.
func (c *Disconnect) OpCode() int { return 0x01<<10 | 0x0006 }

// Len returns the length of the command.
func (c *Disconnect) Len() int { return 3 }

// Marshal serializes the command parameters into binary form.
func (c *Disconnect) Marshal(b []byte) error {
	return marshal(c, b)
}

// CreateConnectionCancel implements Create Connection Cancel (0x01|0x0008) [Vol 2, Part E, 7.1.7]
type CreateConnectionCancel struct {
	BDADDR [6]byte
}

func (c *CreateConnectionCancel) String() string {
	return "Create Connection Cancel (0x01|0x0008)"
}

// OpCode returns the opcode of the command.
func (c *CreateConnectionCancel) OpCode() int { return 0x01<<10 | 0x0008 }

// Len returns the length of the command.
func (c *CreateConnectionCancel) Len() int { return 6 }

// Marshal serializes the command parameters into binary form.
func (c *CreateConnectionCancel) Marshal(b []byte) error {
	return marshal(c, b)
}

// CreateConnectionCancelRP returns the return parameter of Create Connection Cancel
type CreateConnectionCancelRP struct {
	Status uint8
	BDADDR [6]byte
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *CreateConnectionCancelRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// AcceptConnectionRequest implements Accept Connection Request (0x01|0x0009) [Vol 2, Part E, 7.1.8]
type AcceptConnectionRequest struct {
	BDADDR [6]byte
	Role   uint8
}

func (c *AcceptConnectionRequest) String() string {
	return "Accept Connection Request (0x01|0x0009)"
}

// OpCode returns the opcode of the command.
func (c *AcceptConnectionRequest) OpCode() int { return 0x01<<10 | 0x0009 }

// Len returns the length of the command.
func (c *AcceptConnectionRequest) Len() int { return 7 }

// Marshal serializes the command parameters into binary form.
func (c *AcceptConnectionRequest) Marshal(b []byte) error {
	return marshal(c, b)
}

// RejectConnectionRequest implements Reject Connection Request (0x01|0x000A) [Vol 2, Part E, 7.1.9]
type RejectConnectionRequest struct {
	BDADDR [6]byte
	Reason uint8
}

func (c *RejectConnectionRequest) String() string {
	return "Reject Connection Request (0x01|0x000A)"
}

// OpCode returns the opcode of the command.
func (c *RejectConnectionRequest) OpCode() int { return 0x01<<10 | 0x000A }

// Len returns the length of the command.
func (c *RejectConnectionRequest) Len() int { return 7 }

// Marshal serializes the command parameters into binary form.
func (c *RejectConnectionRequest) Marshal(b []byte) error {
	return marshal(c, b)
}

// ChangeConnectionPacketType implements Change Connection Packet Type (0x01|0x000F) [Vol 2, Part E, 7.1.14]
type ChangeConnectionPacketType struct {
	ConnectionHandle uint16
	PacketType       uint16
}

func (c *ChangeConnectionPacketType) String() string {
	return "Change Connection Packet Type (0x01|0x000F)"
}

// OpCode returns the opcode of the command.
func (c *ChangeConnectionPacketType) OpCode() int { return 0x01<<10 | 0x000F }

// Len returns the length of the command.
func (c *ChangeConnectionPacketType) Len() int { return 4 }

// Marshal serializes the command parameters into binary form.
func (c *ChangeConnectionPacketType) Marshal(b []byte) error {
	return marshal(c, b)
}

// AuthenticationRequested implements Authentication Requested (0x01|0x0011) [Vol 2, Part E, 7.1.15]
type AuthenticationRequested struct {
	ConnectionHandle uint16
}

func (c *AuthenticationRequested) String() string {
	return "Authentication Requested (0x01|0x0011)"
}

// OpCode returns the opcode of the command.
func (c *AuthenticationRequested) OpCode() int { return 0x01<<10 | 0x0011 }

// Len returns the length of the command.
func (c *AuthenticationRequested) Len() int { return 2 }

// Marshal serializes the command parameters into binary form.
func (c *AuthenticationRequested) Marshal(b []byte) error {
	return marshal(c, b)
}

// SetConnectionEncryption implements Set Connection Encryption (0x01|0x0013) [Vol 2, Part E, 7.1.16]
type SetConnectionEncryption struct {
	ConnectionHandle uint16
	EncryptionEnable uint8
}

func (c *SetConnectionEncryption) String() string {
	return "Set Connection Encryption (0x01|0x0013)"
}

// OpCode returns the opcode of the command.
func (c *SetConnectionEncryption) OpCode() int { return 0x01<<10 | 0x0013 }

// Len returns the length of the command.
func (c *SetConnectionEncryption) Len() int { return 3 }

// Marshal serializes the command parameters into binary form.
func (c *SetConnectionEncryption) Marshal(b []byte) error {
	return marshal(c, b)
}

// ChangeConnectionLinkKey implements Change Connection Link Key (0x01|0x0015) [Vol 2, Part E, 7.1.17]
type ChangeConnectionLinkKey struct {
	ConnectionHandle uint16
}

func (c *ChangeConnectionLinkKey) String() string {
	return "Change Connection Link Key (0x01|0x0015)"
}

// OpCode returns the opcode of the command.
func (c *ChangeConnectionLinkKey) OpCode() int { return 0x01<<10 | 0x0015 }

// Len returns the length of the command.
func (c *ChangeConnectionLinkKey) Len() int { return 2 }

// Marshal serializes the command parameters into binary form.
func (c *ChangeConnectionLinkKey) Marshal(b []byte) error {
	return marshal(c, b)
}

// MasterLinkKey implements Master Link Key (0x01|0x0017) [Vol 2, Part E, 7.1.18]
type MasterLinkKey struct {
	KeyFlag uint8
}

func (c *MasterLinkKey) String() string {
	return "Master Link Key (0x01|0x0017)"
}

// OpCode returns the opcode of the command.
func (c *MasterLinkKey) OpCode() int { return 0x01<<10 | 0x0017 }

// Len returns the length of the command.
func (c *MasterLinkKey) Len() int { return 1 }

// Marshal serializes the command parameters into binary form.
func (c *MasterLinkKey) Marshal(b []byte) error {
	return marshal(c, b)
}

// ReadRemoteSupportedFeatures implements Read Remote Supported Features (0x01|0x001B) [Vol 2, Part E, 7.1.21]
type ReadRemoteSupportedFeatures struct {
	ConnectionHandle uint16
}

func (c *ReadRemoteSupportedFeatures) String() string {
	return "Read Remote Supported Features (0x01|0x001B)"
}

// OpCode returns the opcode of the command.
func (c *ReadRemoteSupportedFeatures) OpCode() int { return 0x01<<10 | 0x001B }

// Len returns the length of the command.
func (c *ReadRemoteSupportedFeatures) Len() int { return 2 }

// Marshal serializes the command parameters into binary form.
func (c *ReadRemoteSupportedFeatures) Marshal(b []byte) error {
	return marshal(c, b)
}

// ReadRemoteExtendedFeatures implements Read Remote Extended Features (0x01|0x001C) [Vol 2, Part E, 7.1.22]
type ReadRemoteExtendedFeatures struct {
	ConnectionHandle uint16
	PageNumber       uint8
}

func (c *ReadRemoteExtendedFeatures) String() string {
	return "Read Remote Extended Features (0x01|0x001C)"
}

// OpCode returns the opcode of the command.
func (c *ReadRemoteExtendedFeatures) OpCode() int { return 0x01<<10 | 0x001C }

// Len returns the length of the command.
func (c *ReadRemoteExtendedFeatures) Len() int { return 3 }

// Marshal serializes the command parameters into binary form.
func (c *ReadRemoteExtendedFeatures) Marshal(b []byte) error {
	return marshal(c, b)
}

// ReadRemoteVersionInformation implements Read Remote Version Information (0x01|0x001D) [Vol 2, Part E, 7.1.23]
type ReadRemoteVersionInformation struct {
	ConnectionHandle uint16
}

func (c *ReadRemoteVersionInformation) String() string {
	return "Read Remote Version Information (0x01|0x001D)"
}

// OpCode returns the opcode of the command.
func (c *ReadRemoteVersionInformation) OpCode() int { return 0x01<<10 | 0x001D }

// Len returns the length of the command.
func (c *ReadRemoteVersionInformation) Len() int { return 2 }

// Marshal serializes the command parameters into binary form.
func (c *ReadRemoteVersionInformation) Marshal(b []byte) error {
	return marshal(c, b)
}

// ReadClockOffset implements Read Clock Offset (0x01|0x001F) [Vol 2, Part E, 7.1.24]
type ReadClockOffset struct {
	ConnectionHandle uint16
}

func (c *ReadClockOffset) String() string {
	return "Read Clock Offset (0x01|0x001F)"
}

// OpCode returns the opcode of the command.
func (c *ReadClockOffset) OpCode() int { return 0x01<<10 | 0x001F }

// Len returns the length of the command.
func (c *ReadClockOffset) Len() int { return 2 }

// Marshal serializes the command parameters into binary form.
func (c *ReadClockOffset) Marshal(b []byte) error {
	return marshal(c, b)
}

// HoldMode implements Hold Mode (0x02|0x0001) [Vol 2, Part E, 7.2.1]
type HoldMode struct {
	ConnectionHandle uint16
	HoldModeMaxInterval uint16
	HoldModeMinInterval uint16
}

func (c *HoldMode) String() string {
	return "Hold Mode (0x02|0x0001)"
}

// OpCode returns the opcode of the command.
func (c *HoldMode) OpCode() int { return 0x02<<10 | 0x0001 }

// Len returns the length of the command.
func (c *HoldMode) Len() int { return 6 }

// Marshal serializes the command parameters into binary form.
func (c *HoldMode) Marshal(b []byte) error {
	return marshal(c, b)
}

// SniffMode implements Sniff Mode (0x02|0x0003) [Vol 2, Part E, 7.2.2]
type SniffMode struct {
	ConnectionHandle     uint16
	SniffMaxInterval     uint16
	SniffMinInterval     uint16
	SniffAttempt         uint16
	SniffTimeout         uint16
}

func (c *SniffMode) String() string {
	return "Sniff Mode (0x02|0x0003)"
}

// OpCode returns the opcode of the command.
func (c *SniffMode) OpCode() int { return 0x02<<10 | 0x0003 }

// Len returns the length of the command.
func (c *SniffMode) Len() int { return 10 }

// Marshal serializes the command parameters into binary form.
func (c *SniffMode) Marshal(b []byte) error {
	return marshal(c, b)
}

// ExitSniffMode implements Exit Sniff Mode (0x02|0x0004) [Vol 2, Part E, 7.2.3]
type ExitSniffMode struct {
	ConnectionHandle uint16
}

func (c *ExitSniffMode) String() string {
	return "Exit Sniff Mode (0x02|0x0004)"
}

// OpCode returns the opcode of the command.
func (c *ExitSniffMode) OpCode() int { return 0x02<<10 | 0x0004 }

// Len returns the length of the command.
func (c *ExitSniffMode) Len() int { return 2 }

// Marshal serializes the command parameters into binary form.
func (c *ExitSniffMode) Marshal(b []byte) error {
	return marshal(c, b)
}

// QoSSetup implements QoS Setup (0x02|0x0007) [Vol 2, Part E, 7.2.6]
type QoSSetup struct {
	ConnectionHandle uint16
	Flags            uint8
	ServiceType      uint8
	TokenRate        uint32
	PeakBandwidth    uint32
	Latency          uint32
	DelayVariation   uint32
}

func (c *QoSSetup) String() string {
	return "QoS Setup (0x02|0x0007)"
}

// OpCode returns the opcode of the command.
func (c *QoSSetup) OpCode() int { return 0x02<<10 | 0x0007 }

// Len returns the length of the command.
func (c *QoSSetup) Len() int { return 20 }

// Marshal serializes the command parameters into binary form.
func (c *QoSSetup) Marshal(b []byte) error {
	return marshal(c, b)
}

// RoleDiscovery implements Role Discovery (0x02|0x0009) [Vol 2, Part E, 7.2.7]
type RoleDiscovery struct {
	ConnectionHandle uint16
}

func (c *RoleDiscovery) String() string {
	return "Role Discovery (0x02|0x0009)"
}

// OpCode returns the opcode of the command.
func (c *RoleDiscovery) OpCode() int { return 0x02<<10 | 0x0009 }

// Len returns the length of the command.
func (c *RoleDiscovery) Len() int { return 2 }

// Marshal serializes the command parameters into binary form.
func (c *RoleDiscovery) Marshal(b []byte) error {
	return marshal(c, b)
}

// RoleDiscoveryRP returns the return parameter of Role Discovery
type RoleDiscoveryRP struct {
	Status           uint8
	ConnectionHandle uint16
	CurrentRole      uint8
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *RoleDiscoveryRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// SwitchRole implements Switch Role (0x02|0x000B) [Vol 2, Part E, 7.2.8]
type SwitchRole struct {
	BDADDR [6]byte
	Role   uint8
}

func (c *SwitchRole) String() string {
	return "Switch Role (0x02|0x000B)"
}

// OpCode returns the opcode of the command.
func (c *SwitchRole) OpCode() int { return 0x02<<10 | 0x000B }

// Len returns the length of the command.
func (c *SwitchRole) Len() int { return 7 }

// Marshal serializes the command parameters into binary form.
func (c *SwitchRole) Marshal(b []byte) error {
	return marshal(c, b)
}

// ReadLinkPolicySettings implements Read Link Policy Settings (0x02|0x000C) [Vol 2, Part E, 7.2.9]
type ReadLinkPolicySettings struct {
	ConnectionHandle uint16
}

func (c *ReadLinkPolicySettings) String() string {
	return "Read Link Policy Settings (0x02|0x000C)"
}

// OpCode returns the opcode of the command.
func (c *ReadLinkPolicySettings) OpCode() int { return 0x02<<10 | 0x000C }

// Len returns the length of the command.
func (c *ReadLinkPolicySettings) Len() int { return 2 }

// Marshal serializes the command parameters into binary form.
func (c *ReadLinkPolicySettings) Marshal(b []byte) error {
	return marshal(c, b)
}

// ReadLinkPolicySettingsRP returns the return parameter of Read Link Policy Settings
type ReadLinkPolicySettingsRP struct {
	Status             uint8
	ConnectionHandle   uint16
	LinkPolicySettings uint16
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *ReadLinkPolicySettingsRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// WriteLinkPolicySettings implements Write Link Policy Settings (0x02|0x000D) [Vol 2, Part E, 7.2.10]
type WriteLinkPolicySettings struct {
	ConnectionHandle   uint16
	LinkPolicySettings uint16
}

func (c *WriteLinkPolicySettings) String() string {
	return "Write Link Policy Settings (0x02|0x000D)"
}

// OpCode returns the opcode of the command.
func (c *WriteLinkPolicySettings) OpCode() int { return 0x02<<10 | 0x000D }

// Len returns the length of the command.
func (c *WriteLinkPolicySettings) Len() int { return 4 }

// Marshal serializes the command parameters into binary form.
func (c *WriteLinkPolicySettings) Marshal(b []byte) error {
	return marshal(c, b)
}

// WriteLinkPolicySettingsRP returns the return parameter of Write Link Policy Settings
type WriteLinkPolicySettingsRP struct {
	Status           uint8
	ConnectionHandle uint16
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *WriteLinkPolicySettingsRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// ReadDefaultLinkPolicySettings implements Read Default Link Policy Settings (0x02|0x000E) [Vol 2, Part E, 7.2.11]
type ReadDefaultLinkPolicySettings struct {
}

func (c *ReadDefaultLinkPolicySettings) String() string {
	return "Read Default Link Policy Settings (0x02|0x000E)"
}

// OpCode returns the opcode of the command.
func (c *ReadDefaultLinkPolicySettings) OpCode() int { return 0x02<<10 | 0x000E }

// Len returns the length of the command.
func (c *ReadDefaultLinkPolicySettings) Len() int { return 0 }

// Marshal serializes the command parameters into binary form.
func (c *ReadDefaultLinkPolicySettings) Marshal(b []byte) error {
	return marshal(c, b)
}

// ReadDefaultLinkPolicySettingsRP returns the return parameter of Read Default Link Policy Settings
type ReadDefaultLinkPolicySettingsRP struct {
	Status                    uint8
	DefaultLinkPolicySettings uint16
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *ReadDefaultLinkPolicySettingsRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// WriteDefaultLinkPolicySettings implements Write Default Link Policy Settings (0x02|0x000F) [Vol 2, Part E, 7.2.12]
type WriteDefaultLinkPolicySettings struct {
	DefaultLinkPolicySettings uint16
}

func (c *WriteDefaultLinkPolicySettings) String() string {
	return "Write Default Link Policy Settings (0x02|0x000F)"
}

// OpCode returns the opcode of the command.
func (c *WriteDefaultLinkPolicySettings) OpCode() int { return 0x02<<10 | 0x000F }

// Len returns the length of the command.
func (c *WriteDefaultLinkPolicySettings) Len() int { return 2 }

// Marshal serializes the command parameters into binary form.
func (c *WriteDefaultLinkPolicySettings) Marshal(b []byte) error {
	return marshal(c, b)
}

// FlowSpecification implements Flow Specification (0x02|0x0010) [Vol 2, Part E, 7.2.13]
type FlowSpecification struct {
	ConnectionHandle uint16
	Flags            uint8
	FlowDirection    uint8
	ServiceType      uint8
	TokenRate        uint32
	TokenBucketSize  uint32
	PeakBandwidth    uint32
	AccessLatency    uint32
}

func (c *FlowSpecification) String() string {
	return "Flow Specification (0x02|0x0010)"
}

// OpCode returns the opcode of the command.
func (c *FlowSpecification) OpCode() int { return 0x02<<10 | 0x0010 }

// Len returns the length of the command.
func (c *FlowSpecification) Len() int { return 21 }

// Marshal serializes the command parameters into binary form.
func (c *FlowSpecification) Marshal(b []byte) error {
	return marshal(c, b)
}

// SniffSubrating implements Sniff Subrating (0x02|0x0011) [Vol 2, Part E, 7.2.14]
type SniffSubrating struct {
	ConnectionHandle     uint16
	MaximumLatency       uint16
	MinimumRemoteTimeout uint16
	MinimumLocalTimeout  uint16
}

func (c *SniffSubrating) String() string {
	return "Sniff Subrating (0x02|0x0011)"
}

// OpCode returns the opcode of the command.
func (c *SniffSubrating) OpCode() int { return 0x02<<10 | 0x0011 }

// Len returns the length of the command.
func (c *SniffSubrating) Len() int { return 8 }

// Marshal serializes the command parameters into binary form.
func (c *SniffSubrating) Marshal(b []byte) error {
	return marshal(c, b)
}

// SniffSubratingRP returns the return parameter of Sniff Subrating
type SniffSubratingRP struct {
	Status           uint8
	ConnectionHandle uint16
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *SniffSubratingRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// SetEventMask implements Set Event Mask (0x03|0x0001) [Vol 2, Part E, 7.3.1]
type SetEventMask struct {
	EventMask uint64
}

func (c *SetEventMask) String() string {
	return "Set Event Mask (0x03|0x0001)"
}

// OpCode returns the opcode of the command.
func (c *SetEventMask) OpCode() int { return 0x03<<10 | 0x0001 }

// Len returns the length of the command.
func (c *SetEventMask) Len() int { return 8 }

// Marshal serializes the command parameters into binary form.
func (c *SetEventMask) Marshal(b []byte) error {
	return marshal(c, b)
}

// SetEventMaskRP returns the return parameter of Set Event Mask
type SetEventMaskRP struct {
	Status uint8
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *SetEventMaskRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// Reset implements Reset (0x03|0x0003) [Vol 2, Part E, 7.3.2]
type Reset struct {
}

func (c *Reset) String() string {
	return "Reset (0x03|0x0003)"
}

// OpCode returns the opcode of the command.
func (c *Reset) OpCode() int { return 0x03<<10 | 0x0003 }

// Len returns the length of the command.
func (c *Reset) Len() int { return 0 }

// Marshal serializes the command parameters into binary form.
func (c *Reset) Marshal(b []byte) error {
	return marshal(c, b)
}

// ResetRP returns the return parameter of Reset
type ResetRP struct {
	Status uint8
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *ResetRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// Flush implements Flush (0x03|0x0008) [Vol 2, Part E, 7.3.4]
type Flush struct {
	ConnectionHandle uint16
}

func (c *Flush) String() string {
	return "Flush (0x03|0x0008)"
}

// OpCode returns the opcode of the command.
func (c *Flush) OpCode() int { return 0x03<<10 | 0x0008 }

// Len returns the length of the command.
func (c *Flush) Len() int { return 2 }

// Marshal serializes the command parameters into binary form.
func (c *Flush) Marshal(b []byte) error {
	return marshal(c, b)
}

// FlushRP returns the return parameter of Flush
type FlushRP struct {
	Status           uint8
	ConnectionHandle uint16
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *FlushRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// ReadAutomaticFlushTimeout implements Read Automatic Flush Timeout (0x03|0x0027) [Vol 2, Part E, 7.3.29]
type ReadAutomaticFlushTimeout struct {
	ConnectionHandle uint16
}

func (c *ReadAutomaticFlushTimeout) String() string {
	return "Read Automatic Flush Timeout (0x03|0x0027)"
}

// OpCode returns the opcode of the command.
func (c *ReadAutomaticFlushTimeout) OpCode() int { return 0x03<<10 | 0x0027 }

// Len returns the length of the command.
func (c *ReadAutomaticFlushTimeout) Len() int { return 2 }

// Marshal serializes the command parameters into binary form.
func (c *ReadAutomaticFlushTimeout) Marshal(b []byte) error {
	return marshal(c, b)
}

// ReadAutomaticFlushTimeoutRP returns the return parameter of Read Automatic Flush Timeout
type ReadAutomaticFlushTimeoutRP struct {
	Status           uint8
	ConnectionHandle uint16
	FlushTimeout     uint16
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *ReadAutomaticFlushTimeoutRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// WriteAutomaticFlushTimeout implements Write Automatic Flush Timeout (0x03|0x0028) [Vol 2, Part E, 7.3.30]
type WriteAutomaticFlushTimeout struct {
	ConnectionHandle uint16
	FlushTimeout     uint16
}

func (c *WriteAutomaticFlushTimeout) String() string {
	return "Write Automatic Flush Timeout (0x03|0x0028)"
}

// OpCode returns the opcode of the command.
func (c *WriteAutomaticFlushTimeout) OpCode() int { return 0x03<<10 | 0x0028 }

// Len returns the length of the command.
func (c *WriteAutomaticFlushTimeout) Len() int { return 4 }

// Marshal serializes the command parameters into binary form.
func (c *WriteAutomaticFlushTimeout) Marshal(b []byte) error {
	return marshal(c, b)
}

// WriteAutomaticFlushTimeoutRP returns the return parameter of Write Automatic Flush Timeout
type WriteAutomaticFlushTimeoutRP struct {
	Status           uint8
	ConnectionHandle uint16
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *WriteAutomaticFlushTimeoutRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// ReadTransmitPowerLevel implements Read Transmit Power Level (0x03|0x002D) [Vol 2, Part E, 7.3.35]
type ReadTransmitPowerLevel struct {
	ConnectionHandle uint16
	Type             uint8
}

func (c *ReadTransmitPowerLevel) String() string {
	return "Read Transmit Power Level (0x03|0x002D)"
}

// OpCode returns the opcode of the command.
func (c *ReadTransmitPowerLevel) OpCode() int { return 0x03<<10 | 0x002D }

// Len returns the length of the command.
func (c *ReadTransmitPowerLevel) Len() int { return 3 }

// Marshal serializes the command parameters into binary form.
func (c *ReadTransmitPowerLevel) Marshal(b []byte) error {
	return marshal(c, b)
}

// ReadTransmitPowerLevelRP returns the return parameter of Read Transmit Power Level
type ReadTransmitPowerLevelRP struct {
	Status             uint8
	ConnectionHandle   uint16
	TransmitPowerLevel int8
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *ReadTransmitPowerLevelRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// ReadLinkSupervisionTimeout implements Read Link Supervision Timeout (0x03|0x0036) [Vol 2, Part E, 7.3.41]
type ReadLinkSupervisionTimeout struct {
	ConnectionHandle uint16
}

func (c *ReadLinkSupervisionTimeout) String() string {
	return "Read Link Supervision Timeout (0x03|0x0036)"
}

// OpCode returns the opcode of the command.
func (c *ReadLinkSupervisionTimeout) OpCode() int { return 0x03<<10 | 0x0036 }

// Len returns the length of the command.
func (c *ReadLinkSupervisionTimeout) Len() int { return 2 }

// Marshal serializes the command parameters into binary form.
func (c *ReadLinkSupervisionTimeout) Marshal(b []byte) error {
	return marshal(c, b)
}

// ReadLinkSupervisionTimeoutRP returns the return parameter of Read Link Supervision Timeout
type ReadLinkSupervisionTimeoutRP struct {
	Status                 uint8
	ConnectionHandle       uint16
	LinkSupervisionTimeout uint16
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *ReadLinkSupervisionTimeoutRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// WriteLinkSupervisionTimeout implements Write Link Supervision Timeout (0x03|0x0037) [Vol 2, Part E, 7.3.42]
type WriteLinkSupervisionTimeout struct {
	ConnectionHandle       uint16
	LinkSupervisionTimeout uint16
}

func (c *WriteLinkSupervisionTimeout) String() string {
	return "Write Link Supervision Timeout (0x03|0x0037)"
}

// OpCode returns the opcode of the command.
func (c *WriteLinkSupervisionTimeout) OpCode() int { return 0x03<<10 | 0x0037 }

// Len returns the length of the command.
func (c *WriteLinkSupervisionTimeout) Len() int { return 4 }

// Marshal serializes the command parameters into binary form.
func (c *WriteLinkSupervisionTimeout) Marshal(b []byte) error {
	return marshal(c, b)
}

// WriteLinkSupervisionTimeoutRP returns the return parameter of Write Link Supervision Timeout
type WriteLinkSupervisionTimeoutRP struct {
	Status           uint8
	ConnectionHandle uint16
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *WriteLinkSupervisionTimeoutRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// ReadBufferSize implements Read Buffer Size (0x04|0x0005) [Vol 2, Part E, 7.4.5]
type ReadBufferSize struct {
}

func (c *ReadBufferSize) String() string {
	return "Read Buffer Size (0x04|0x0005)"
}

// OpCode returns the opcode of the command.
func (c *ReadBufferSize) OpCode() int { return 0x04<<10 | 0x0005 }

// Len returns the length of the command.
func (c *ReadBufferSize) Len() int { return 0 }

// Marshal serializes the command parameters into binary form.
func (c *ReadBufferSize) Marshal(b []byte) error {
	return marshal(c, b)
}

// ReadBufferSizeRP returns the return parameter of Read Buffer Size
type ReadBufferSizeRP struct {
	Status                   uint8
	HCACLDataPacketLength    uint16
	HCSynchronousDataPacketLength uint8
	HCTotalNumACLDataPackets uint16
	HCTotalNumSynchronousDataPackets uint16
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *ReadBufferSizeRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// ReadBDADDR implements Read BD_ADDR (0x04|0x0009) [Vol 2, Part E, 7.4.6]
type ReadBDADDR struct {
}

func (c *ReadBDADDR) String() string {
	return "Read BD_ADDR (0x04|0x0009)"
}

// OpCode returns the opcode of the command.
func (c *ReadBDADDR) OpCode() int { return 0x04<<10 | 0x0009 }

// Len returns the length of the command.
func (c *ReadBDADDR) Len() int { return 0 }

// Marshal serializes the command parameters into binary form.
func (c *ReadBDADDR) Marshal(b []byte) error {
	return marshal(c, b)
}

// ReadBDADDRRP returns the return parameter of Read BD_ADDR
type ReadBDADDRRP struct {
	Status uint8
	BDADDR [6]byte
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *ReadBDADDRRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// ReadFailedContactCounter implements Read Failed Contact Counter (0x05|0x0001) [Vol 2, Part E, 7.5.1]
type ReadFailedContactCounter struct {
	ConnectionHandle uint16
}

func (c *ReadFailedContactCounter) String() string {
	return "Read Failed Contact Counter (0x05|0x0001)"
}

// OpCode returns the opcode of the command.
func (c *ReadFailedContactCounter) OpCode() int { return 0x05<<10 | 0x0001 }

// Len returns the length of the command.
func (c *ReadFailedContactCounter) Len() int { return 2 }

// Marshal serializes the command parameters into binary form.
func (c *ReadFailedContactCounter) Marshal(b []byte) error {
	return marshal(c, b)
}

// ReadFailedContactCounterRP returns the return parameter of Read Failed Contact Counter
type ReadFailedContactCounterRP struct {
	Status               uint8
	ConnectionHandle     uint16
	FailedContactCounter uint16
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *ReadFailedContactCounterRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// ResetFailedContactCounter implements Reset Failed Contact Counter (0x05|0x0002) [Vol 2, Part E, 7.5.2]
type ResetFailedContactCounter struct {
	ConnectionHandle uint16
}

func (c *ResetFailedContactCounter) String() string {
	return "Reset Failed Contact Counter (0x05|0x0002)"
}

// OpCode returns the opcode of the command.
func (c *ResetFailedContactCounter) OpCode() int { return 0x05<<10 | 0x0002 }

// Len returns the length of the command.
func (c *ResetFailedContactCounter) Len() int { return 2 }

// Marshal serializes the command parameters into binary form.
func (c *ResetFailedContactCounter) Marshal(b []byte) error {
	return marshal(c, b)
}

// ResetFailedContactCounterRP returns the return parameter of Reset Failed Contact Counter
type ResetFailedContactCounterRP struct {
	Status           uint8
	ConnectionHandle uint16
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *ResetFailedContactCounterRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// ReadLinkQuality implements Read Link Quality (0x05|0x0003) [Vol 2, Part E, 7.5.3]
type ReadLinkQuality struct {
	ConnectionHandle uint16
}

func (c *ReadLinkQuality) String() string {
	return "Read Link Quality (0x05|0x0003)"
}

// OpCode returns the opcode of the command.
func (c *ReadLinkQuality) OpCode() int { return 0x05<<10 | 0x0003 }

// Len returns the length of the command.
func (c *ReadLinkQuality) Len() int { return 2 }

// Marshal serializes the command parameters into binary form.
func (c *ReadLinkQuality) Marshal(b []byte) error {
	return marshal(c, b)
}

// ReadLinkQualityRP returns the return parameter of Read Link Quality
type ReadLinkQualityRP struct {
	Status           uint8
	ConnectionHandle uint16
	LinkQuality      uint8
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *ReadLinkQualityRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// ReadRSSI implements Read RSSI (0x05|0x0005) [Vol 2, Part E, 7.5.4]
type ReadRSSI struct {
	ConnectionHandle uint16
}

func (c *ReadRSSI) String() string {
	return "Read RSSI (0x05|0x0005)"
}

// OpCode returns the opcode of the command.
func (c *ReadRSSI) OpCode() int { return 0x05<<10 | 0x0005 }

// Len returns the length of the command.
func (c *ReadRSSI) Len() int { return 2 }

// Marshal serializes the command parameters into binary form.
func (c *ReadRSSI) Marshal(b []byte) error {
	return marshal(c, b)
}

// ReadRSSIRP returns the return parameter of Read RSSI
type ReadRSSIRP struct {
	Status           uint8
	ConnectionHandle uint16
	RSSI             int8
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *ReadRSSIRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// ReadAFHChannelMap implements Read AFH Channel Map (0x05|0x0006) [Vol 2, Part E, 7.5.5]
type ReadAFHChannelMap struct {
	ConnectionHandle uint16
}

func (c *ReadAFHChannelMap) String() string {
	return "Read AFH Channel Map (0x05|0x0006)"
}

// OpCode returns the opcode of the command.
func (c *ReadAFHChannelMap) OpCode() int { return 0x05<<10 | 0x0006 }

// Len returns the length of the command.
func (c *ReadAFHChannelMap) Len() int { return 2 }

// Marshal serializes the command parameters into binary form.
func (c *ReadAFHChannelMap) Marshal(b []byte) error {
	return marshal(c, b)
}

// ReadAFHChannelMapRP returns the return parameter of Read AFH Channel Map
type ReadAFHChannelMapRP struct {
	Status           uint8
	ConnectionHandle uint16
	AFHMode          uint8
	AFHChannelMap    [10]byte
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *ReadAFHChannelMapRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// ReadClock implements Read Clock (0x05|0x0007) [Vol 2, Part E, 7.5.6]
type ReadClock struct {
	ConnectionHandle uint16
	WhichClock       uint8
}

func (c *ReadClock) String() string {
	return "Read Clock (0x05|0x0007)"
}

// OpCode returns the opcode of the command.
func (c *ReadClock) OpCode() int { return 0x05<<10 | 0x0007 }

// Len returns the length of the command.
func (c *ReadClock) Len() int { return 3 }

// Marshal serializes the command parameters into binary form.
func (c *ReadClock) Marshal(b []byte) error {
	return marshal(c, b)
}

// ReadClockRP returns the return parameter of Read Clock
type ReadClockRP struct {
	Status           uint8
	ConnectionHandle uint16
	Clock            uint32
	Accuracy         uint16
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *ReadClockRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// LESetEventMask implements LE Set Event Mask (0x08|0x0001) [Vol 2, Part E, 7.8.1]
type LESetEventMask struct {
	LEEventMask uint64
}

func (c *LESetEventMask) String() string {
	return "LE Set Event Mask (0x08|0x0001)"
}

// OpCode returns the opcode of the command.
func (c *LESetEventMask) OpCode() int { return 0x08<<10 | 0x0001 }

// Len returns the length of the command.
func (c *LESetEventMask) Len() int { return 8 }

// Marshal serializes the command parameters into binary form.
func (c *LESetEventMask) Marshal(b []byte) error {
	return marshal(c, b)
}

// LESetEventMaskRP returns the return parameter of LE Set Event Mask
type LESetEventMaskRP struct {
	Status uint8
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *LESetEventMaskRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// LEReadBufferSize implements LE Read Buffer Size (0x08|0x0002) [Vol 2, Part E, 7.8.2]
type LEReadBufferSize struct {
}

func (c *LEReadBufferSize) String() string {
	return "LE Read Buffer Size (0x08|0x0002)"
}

// OpCode returns the opcode of the command.
func (c *LEReadBufferSize) OpCode() int { return 0x08<<10 | 0x0002 }

// Len returns the length of the command.
func (c *LEReadBufferSize) Len() int { return 0 }

// Marshal serializes the command parameters into binary form.
func (c *LEReadBufferSize) Marshal(b []byte) error {
	return marshal(c, b)
}

// LEReadBufferSizeRP returns the return parameter of LE Read Buffer Size
type LEReadBufferSizeRP struct {
	Status                  uint8
	HCLEDataPacketLength    uint16
	HCTotalNumLEDataPackets uint8
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *LEReadBufferSizeRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// LEReadLocalSupportedFeatures implements LE Read Local Supported Features (0x08|0x0003) [Vol 2, Part E, 7.8.3]
type LEReadLocalSupportedFeatures struct {
}

func (c *LEReadLocalSupportedFeatures) String() string {
	return "LE Read Local Supported Features (0x08|0x0003)"
}

// OpCode returns the opcode of the command.
func (c *LEReadLocalSupportedFeatures) OpCode() int { return 0x08<<10 | 0x0003 }

// Len returns the length of the command.
func (c *LEReadLocalSupportedFeatures) Len() int { return 0 }

// Marshal serializes the command parameters into binary form.
func (c *LEReadLocalSupportedFeatures) Marshal(b []byte) error {
	return marshal(c, b)
}

// LEReadLocalSupportedFeaturesRP returns the return parameter of LE Read Local Supported Features
type LEReadLocalSupportedFeaturesRP struct {
	Status     uint8
	LEFeatures uint64
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *LEReadLocalSupportedFeaturesRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// LESetRandomAddress implements LE Set Random Address (0x08|0x0005) [Vol 2, Part E, 7.8.4]
type LESetRandomAddress struct {
	RandomAddress [6]byte
}

func (c *LESetRandomAddress) String() string {
	return "LE Set Random Address (0x08|0x0005)"
}

// OpCode returns the opcode of the command.
func (c *LESetRandomAddress) OpCode() int { return 0x08<<10 | 0x0005 }

// Len returns the length of the command.
func (c *LESetRandomAddress) Len() int { return 6 }

// Marshal serializes the command parameters into binary form.
func (c *LESetRandomAddress) Marshal(b []byte) error {
	return marshal(c, b)
}

// LESetRandomAddressRP returns the return parameter of LE Set Random Address
type LESetRandomAddressRP struct {
	Status uint8
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *LESetRandomAddressRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// LECreateConnection implements LE Create Connection (0x08|0x000D) [Vol 2, Part E, 7.8.12]
type LECreateConnection struct {
	LEScanInterval        uint16
	LEScanWindow          uint16
	InitiatorFilterPolicy uint8
	PeerAddressType       uint8
	PeerAddress           [6]byte
	OwnAddressType        uint8
	ConnIntervalMin       uint16
	ConnIntervalMax       uint16
	ConnLatency           uint16
	SupervisionTimeout    uint16
	MinimumCELength       uint16
	MaximumCELength       uint16
}

func (c *LECreateConnection) String() string {
	return "LE Create Connection (0x08|0x000D)"
}

// OpCode returns the opcode of the command.
func (c *LECreateConnection) OpCode() int { return 0x08<<10 | 0x000D }

// Len returns the length of the command.
func (c *LECreateConnection) Len() int { return 25 }

// Marshal serializes the command parameters into binary form.
func (c *LECreateConnection) Marshal(b []byte) error {
	return marshal(c, b)
}

// LECreateConnectionCancel implements LE Create Connection Cancel (0x08|0x000E) [Vol 2, Part E, 7.8.13]
type LECreateConnectionCancel struct {
}

func (c *LECreateConnectionCancel) String() string {
	return "LE Create Connection Cancel (0x08|0x000E)"
}

// OpCode returns the opcode of the command.
func (c *LECreateConnectionCancel) OpCode() int { return 0x08<<10 | 0x000E }

// Len returns the length of the command.
func (c *LECreateConnectionCancel) Len() int { return 0 }

// Marshal serializes the command parameters into binary form.
func (c *LECreateConnectionCancel) Marshal(b []byte) error {
	return marshal(c, b)
}

// LECreateConnectionCancelRP returns the return parameter of LE Create Connection Cancel
type LECreateConnectionCancelRP struct {
	Status uint8
}

// Unmarshal de-serializes the binary data and stores the result in the receiver.
func (c *LECreateConnectionCancelRP) Unmarshal(b []byte) error {
	return unmarshal(c, b)
}

// LEConnectionUpdate implements LE Connection Update (0x08|0x0013) [Vol 2, Part E, 7.8.18]
type LEConnectionUpdate struct {
	ConnectionHandle   uint16
	ConnIntervalMin    uint16
	ConnIntervalMax    uint16
	ConnLatency        uint16
	SupervisionTimeout uint16
	MinimumCELength    uint16
	MaximumCELength    uint16
}

func (c *LEConnectionUpdate) String() string {
	return "LE Connection Update (0x08|0x0013)"
}

// OpCode returns the opcode of the command.
func (c *LEConnectionUpdate) OpCode() int { return 0x08<<10 | 0x0013 }

// Len returns the length of the command.
func (c *LEConnectionUpdate) Len() int { return 14 }

// Marshal serializes the command parameters into binary form.
func (c *LEConnectionUpdate) Marshal(b []byte) error {
	return marshal(c, b)
}

// LEExtendedCreateConnection implements LE Extended Create Connection (0x08|0x0043)
// [Vol 2, Part E, 7.8.66], restricted to a single initiating PHY (1M).
type LEExtendedCreateConnection struct {
	InitiatorFilterPolicy uint8
	OwnAddressType        uint8
	PeerAddressType       uint8
	PeerAddress           [6]byte
	InitiatingPHYs        uint8
	ScanInterval          uint16
	ScanWindow            uint16
	ConnIntervalMin       uint16
	ConnIntervalMax       uint16
	ConnLatency           uint16
	SupervisionTimeout    uint16
	MinimumCELength       uint16
	MaximumCELength       uint16
}

func (c *LEExtendedCreateConnection) String() string {
	return "LE Extended Create Connection (0x08|0x0043)"
}

// OpCode returns the opcode of the command.
func (c *LEExtendedCreateConnection) OpCode() int { return 0x08<<10 | 0x0043 }

// Len returns the length of the command.
func (c *LEExtendedCreateConnection) Len() int { return 26 }

// Marshal serializes the command parameters into binary form.
func (c *LEExtendedCreateConnection) Marshal(b []byte) error {
	return marshal(c, b)
}
