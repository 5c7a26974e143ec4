package evt

import (
	"encoding/binary"
	"fmt"
)

func (e CommandComplete) NumHCICommandPacketsWErr() (uint8, error) {
	return getByte(e, 0, 0)
}

func (e CommandComplete) CommandOpcodeWErr() (uint16, error) {
	return getUint16LE(e, 1, 0xffff)
}

func (e CommandComplete) ReturnParametersWErr() ([]byte, error) {
	return getBytes(e, 3, -1)
}

func (e NumberOfCompletedPackets) NumberOfHandlesWErr() (uint8, error) {
	return getByte(e, 0, 0)
}

func (e NumberOfCompletedPackets) ConnectionHandleWErr(i int) (uint16, error) {
	si := 1 + (i * 4)
	return getUint16LE(e, si, 0xffff)
}

func (e NumberOfCompletedPackets) HCNumOfCompletedPacketsWErr(i int) (uint16, error) {
	si := 1 + (i * 4) + 2
	return getUint16LE(e, si, 0)
}

func getByte(b []byte, i int, dflt uint8) (uint8, error) {
	if len(b) < i+1 {
		return dflt, fmt.Errorf("buffer too short (%d < %d)", len(b), i+1)
	}
	return b[i], nil
}

func getUint16LE(b []byte, i int, dflt uint16) (uint16, error) {
	if len(b) < i+2 {
		return dflt, fmt.Errorf("buffer too short (%d < %d)", len(b), i+2)
	}
	return binary.LittleEndian.Uint16(b[i:]), nil
}

func getBytes(b []byte, i, count int) ([]byte, error) {
	if count == -1 {
		count = len(b) - i
	}
	if count < 0 || len(b) < i+count {
		return nil, fmt.Errorf("buffer too short (%d < %d)", len(b), i+count)
	}
	return b[i : i+count], nil
}
