// Copyright (c) 2022 0x9ef. All rights reserved.
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.
package dot11

// ManagementHeader is the fixed 24-byte header shared by every
// management frame: FrameControl, Duration, three addresses, and
// SequenceControl.
type ManagementHeader struct {
	FrameControl    FrameControl
	Duration        uint16
	Address1        MacAddress
	Address2        MacAddress
	Address3        MacAddress
	SequenceControl SequenceControl
}

func decodeManagementHeader(fc FrameControl, b []byte) (ManagementHeader, []byte, error) {
	// 2 (duration) + 6*3 (addresses) + 2 (sequence control) = 22 bytes
	// after the already-decoded 2-byte Frame Control.
	if len(b) < 22 {
		return ManagementHeader{}, nil, newIncomplete(22, len(b))
	}
	h := ManagementHeader{FrameControl: fc}
	h.Duration = uint16(b[0]) | uint16(b[1])<<8
	copy(h.Address1[:], b[2:8])
	copy(h.Address2[:], b[8:14])
	copy(h.Address3[:], b[14:20])
	sc, err := DecodeSequenceControl(b[20:22])
	if err != nil {
		return ManagementHeader{}, nil, err
	}
	h.SequenceControl = sc
	return h, b[22:], nil
}

// Encode serializes the header back to the 22 bytes that follow the Frame
// Control field on the wire (FrameControl not included — callers prepend
// it since it's shared with the dispatch logic that picked this header in
// the first place).
func (h ManagementHeader) Encode() []byte {
	b := make([]byte, 0, 22)
	b = append(b, byte(h.Duration), byte(h.Duration>>8))
	b = append(b, h.Address1[:]...)
	b = append(b, h.Address2[:]...)
	b = append(b, h.Address3[:]...)
	b = append(b, h.SequenceControl.Encode()...)
	return b
}

// Src returns the logical source address, per spec.md §4.4's address
// resolution table.
func (h ManagementHeader) Src() *MacAddress {
	src, _, _ := resolveAddresses(h.FrameControl.Flags, h.Address1, h.Address2, h.Address3, nil)
	return src
}

// Dest returns the logical destination address. Always present.
func (h ManagementHeader) Dest() MacAddress {
	_, dest, _ := resolveAddresses(h.FrameControl.Flags, h.Address1, h.Address2, h.Address3, nil)
	return dest
}

// BSSID returns the logical BSSID, when resolvable.
func (h ManagementHeader) BSSID() *MacAddress {
	_, _, bssid := resolveAddresses(h.FrameControl.Flags, h.Address1, h.Address2, h.Address3, nil)
	return bssid
}

// DataHeader is the header used by every data frame: the ManagementHeader
// fields plus an optional fourth address (present iff to_ds ∧ from_ds)
// and an optional QoS Control field (present iff the subtype is one of
// the QoS subtypes).
type DataHeader struct {
	FrameControl    FrameControl
	Duration        uint16
	Address1        MacAddress
	Address2        MacAddress
	Address3        MacAddress
	SequenceControl SequenceControl
	Address4        *MacAddress
	QoS             *[2]byte
}

func decodeDataHeader(fc FrameControl, b []byte) (DataHeader, []byte, error) {
	if len(b) < 22 {
		return DataHeader{}, nil, newIncomplete(22, len(b))
	}
	h := DataHeader{FrameControl: fc}
	h.Duration = uint16(b[0]) | uint16(b[1])<<8
	copy(h.Address1[:], b[2:8])
	copy(h.Address2[:], b[8:14])
	copy(h.Address3[:], b[14:20])
	sc, err := DecodeSequenceControl(b[20:22])
	if err != nil {
		return DataHeader{}, nil, err
	}
	h.SequenceControl = sc
	rest := b[22:]

	// Order is fixed: Address 4 (iff to_ds && from_ds) before QoS (iff a
	// QoS subtype), each consumed immediately after whatever preceded it.
	if fc.Flags.ToDS() && fc.Flags.FromDS() {
		if len(rest) < 6 {
			return DataHeader{}, nil, newIncomplete(6, len(rest))
		}
		var a4 MacAddress
		copy(a4[:], rest[:6])
		h.Address4 = &a4
		rest = rest[6:]
	}
	if fc.SubType.isQoS() {
		if len(rest) < 2 {
			return DataHeader{}, nil, newIncomplete(2, len(rest))
		}
		var qos [2]byte
		copy(qos[:], rest[:2])
		h.QoS = &qos
		rest = rest[2:]
	}
	return h, rest, nil
}

// Encode serializes the header back to its wire form (FrameControl is
// not included, see ManagementHeader.Encode).
func (h DataHeader) Encode() []byte {
	b := make([]byte, 0, 32)
	b = append(b, byte(h.Duration), byte(h.Duration>>8))
	b = append(b, h.Address1[:]...)
	b = append(b, h.Address2[:]...)
	b = append(b, h.Address3[:]...)
	b = append(b, h.SequenceControl.Encode()...)
	if h.Address4 != nil {
		b = append(b, h.Address4[:]...)
	}
	if h.QoS != nil {
		b = append(b, h.QoS[:]...)
	}
	return b
}

// RA is the Receiver Address: always Address 1.
func (h DataHeader) RA() MacAddress { return h.Address1 }

// TA is the Transmitter Address: always Address 2.
func (h DataHeader) TA() MacAddress { return h.Address2 }

// Src returns the logical source address, per spec.md §4.4's address
// resolution table.
func (h DataHeader) Src() *MacAddress {
	src, _, _ := resolveAddresses(h.FrameControl.Flags, h.Address1, h.Address2, h.Address3, h.Address4)
	return src
}

// Dest returns the logical destination address. Always present.
func (h DataHeader) Dest() MacAddress {
	_, dest, _ := resolveAddresses(h.FrameControl.Flags, h.Address1, h.Address2, h.Address3, h.Address4)
	return dest
}

// DA is an alias for Dest, named per the standard's Destination Address
// terminology.
func (h DataHeader) DA() MacAddress { return h.Dest() }

// SA is an alias for Src, named per the standard's Source Address
// terminology.
func (h DataHeader) SA() *MacAddress { return h.Src() }

// BSSID returns the logical BSSID. Absent exactly when to_ds ∧ from_ds
// (WDS), since all four address slots are then spoken for by RA/TA/DA/SA.
func (h DataHeader) BSSID() *MacAddress {
	_, _, bssid := resolveAddresses(h.FrameControl.Flags, h.Address1, h.Address2, h.Address3, h.Address4)
	return bssid
}

// resolveAddresses applies spec.md §4.4's (to_ds, from_ds) address table,
// shared by both ManagementHeader and DataHeader.
func resolveAddresses(flags Flags, a1, a2, a3 MacAddress, a4 *MacAddress) (src *MacAddress, dest MacAddress, bssid *MacAddress) {
	toDS, fromDS := flags.ToDS(), flags.FromDS()
	switch {
	case !toDS && !fromDS:
		s := a2
		return &s, a1, addrPtr(a3)
	case !toDS && fromDS:
		s := a3
		return &s, a1, addrPtr(a2)
	case toDS && !fromDS:
		s := a2
		return &s, a3, addrPtr(a1)
	default: // toDS && fromDS: WDS, data frames only
		if a4 != nil {
			s := *a4
			return &s, a3, nil
		}
		return nil, a3, nil
	}
}

func addrPtr(a MacAddress) *MacAddress {
	return &a
}
