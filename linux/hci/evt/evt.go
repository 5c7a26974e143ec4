package evt

// Valid checks report whether a view carries at least the fields its
// accessors index. Handlers must check before reading; a short packet is
// a controller bug and is dropped with an error log, never a panic.

func (r ConnectionComplete) Valid() bool                   { return len(r) >= 11 }
func (r ConnectionRequest) Valid() bool                    { return len(r) >= 10 }
func (r DisconnectionComplete) Valid() bool                { return len(r) >= 4 }
func (r AuthenticationComplete) Valid() bool               { return len(r) >= 3 }
func (r EncryptionChange) Valid() bool                     { return len(r) >= 4 }
func (r ChangeConnectionLinkKeyComplete) Valid() bool      { return len(r) >= 3 }
func (r MasterLinkKeyComplete) Valid() bool                { return len(r) >= 4 }
func (r ReadRemoteSupportedFeaturesComplete) Valid() bool  { return len(r) >= 11 }
func (r ReadRemoteVersionInformationComplete) Valid() bool { return len(r) >= 8 }
func (r QosSetupComplete) Valid() bool                     { return len(r) >= 21 }
func (r FlushOccurred) Valid() bool                        { return len(r) >= 2 }
func (r RoleChange) Valid() bool                           { return len(r) >= 8 }
func (r ModeChange) Valid() bool                           { return len(r) >= 6 }
func (r ReadClockOffsetComplete) Valid() bool              { return len(r) >= 5 }
func (r ConnectionPacketTypeChanged) Valid() bool          { return len(r) >= 5 }
func (r FlowSpecificationComplete) Valid() bool            { return len(r) >= 22 }
func (r ReadRemoteExtendedFeaturesComplete) Valid() bool   { return len(r) >= 13 }
func (r LinkSupervisionTimeoutChanged) Valid() bool        { return len(r) >= 4 }
func (r LEConnectionComplete) Valid() bool                 { return len(r) >= 19 }
func (r LEConnectionUpdateComplete) Valid() bool           { return len(r) >= 10 }
func (r LEEnhancedConnectionComplete) Valid() bool         { return len(r) >= 31 }
func (r CommandStatus) Valid() bool                        { return len(r) >= 4 }

func (e CommandComplete) NumHCICommandPackets() uint8 {
	v, _ := e.NumHCICommandPacketsWErr()
	return v
}

func (e CommandComplete) CommandOpcode() uint16 {
	v, _ := e.CommandOpcodeWErr()
	return v
}

func (e CommandComplete) ReturnParameters() []byte {
	v, _ := e.ReturnParametersWErr()
	return v
}

func (e CommandComplete) Valid() bool {
	_, err := e.CommandOpcodeWErr()
	return err == nil
}

// Per-spec [Vol 2, Part E, 7.7.19], the packet structure should be:
//
//     NumOfHandle, HandleA, HandleB, CompPktNumA, CompPktNumB
//
// But we got the actual packet from BCM20702A1 with the following structure instead.
//
//     NumOfHandle, HandleA, CompPktNumA, HandleB, CompPktNumB
//              02,   40 00,       01 00,   41 00,       01 00

func (e NumberOfCompletedPackets) NumberOfHandles() uint8 {
	v, _ := e.NumberOfHandlesWErr()
	return v
}

func (e NumberOfCompletedPackets) ConnectionHandle(i int) uint16 {
	v, _ := e.ConnectionHandleWErr(i)
	return v
}

func (e NumberOfCompletedPackets) HCNumOfCompletedPackets(i int) uint16 {
	v, _ := e.HCNumOfCompletedPacketsWErr(i)
	return v
}

func (e NumberOfCompletedPackets) Valid() bool {
	n, err := e.NumberOfHandlesWErr()
	if err != nil {
		return false
	}
	return len(e) >= 1+int(n)*4
}
