// Copyright (c) 2022 0x9ef. All rights reserved.
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.
package dot11

// Beacon is a Beacon management frame body: timestamp, beacon interval,
// capability info, then an Information Element stream. §4.7.
type Beacon struct {
	Header           ManagementHeader
	Timestamp        uint64
	BeaconInterval   uint16
	CapabilityInfo   uint16
	StationInfo      StationInfo
}

func decodeBeacon(header ManagementHeader, rest []byte) (Beacon, error) {
	if len(rest) < 12 {
		return Beacon{}, newIncomplete(12, len(rest))
	}
	info, err := decodeStationInfo(rest[12:])
	if err != nil {
		return Beacon{}, err
	}
	return Beacon{
		Header:         header,
		Timestamp:      le64(rest[0:8]),
		BeaconInterval: le16(rest[8:10]),
		CapabilityInfo: le16(rest[10:12]),
		StationInfo:    info,
	}, nil
}

func (f Beacon) Encode() []byte {
	b := make([]byte, 0, 12)
	b = append(b, putLE64(f.Timestamp)...)
	b = append(b, putLE16(f.BeaconInterval)...)
	b = append(b, putLE16(f.CapabilityInfo)...)
	b = append(b, encodeStationInfo(f.StationInfo)...)
	return b
}

func (f Beacon) Src() *MacAddress  { return f.Header.Src() }
func (f Beacon) Dest() MacAddress  { return f.Header.Dest() }
func (f Beacon) BSSID() *MacAddress { return f.Header.BSSID() }

// ProbeResponse has the identical wire shape to Beacon. §4.7.
type ProbeResponse struct {
	Header         ManagementHeader
	Timestamp      uint64
	BeaconInterval uint16
	CapabilityInfo uint16
	StationInfo    StationInfo
}

func decodeProbeResponse(header ManagementHeader, rest []byte) (ProbeResponse, error) {
	b, err := decodeBeacon(header, rest)
	if err != nil {
		return ProbeResponse{}, err
	}
	return ProbeResponse(b), nil
}

func (f ProbeResponse) Encode() []byte {
	return Beacon(f).Encode()
}

func (f ProbeResponse) Src() *MacAddress  { return f.Header.Src() }
func (f ProbeResponse) Dest() MacAddress  { return f.Header.Dest() }
func (f ProbeResponse) BSSID() *MacAddress { return f.Header.BSSID() }

// ProbeRequest is an Information Element stream with no fixed fields.
// §4.7.
type ProbeRequest struct {
	Header      ManagementHeader
	StationInfo StationInfo
}

func decodeProbeRequest(header ManagementHeader, rest []byte) (ProbeRequest, error) {
	info, err := decodeStationInfo(rest)
	if err != nil {
		return ProbeRequest{}, err
	}
	return ProbeRequest{Header: header, StationInfo: info}, nil
}

func (f ProbeRequest) Encode() []byte {
	return encodeStationInfo(f.StationInfo)
}

func (f ProbeRequest) Src() *MacAddress  { return f.Header.Src() }
func (f ProbeRequest) Dest() MacAddress  { return f.Header.Dest() }
func (f ProbeRequest) BSSID() *MacAddress { return f.Header.BSSID() }

// AssociationRequest carries a beacon interval, capability info, then
// the IE stream. §4.7.
type AssociationRequest struct {
	Header         ManagementHeader
	BeaconInterval uint16
	CapabilityInfo uint16
	StationInfo    StationInfo
}

func decodeAssociationRequest(header ManagementHeader, rest []byte) (AssociationRequest, error) {
	if len(rest) < 4 {
		return AssociationRequest{}, newIncomplete(4, len(rest))
	}
	info, err := decodeStationInfo(rest[4:])
	if err != nil {
		return AssociationRequest{}, err
	}
	return AssociationRequest{
		Header:         header,
		BeaconInterval: le16(rest[0:2]),
		CapabilityInfo: le16(rest[2:4]),
		StationInfo:    info,
	}, nil
}

func (f AssociationRequest) Encode() []byte {
	b := make([]byte, 0, 4)
	b = append(b, putLE16(f.BeaconInterval)...)
	b = append(b, putLE16(f.CapabilityInfo)...)
	b = append(b, encodeStationInfo(f.StationInfo)...)
	return b
}

func (f AssociationRequest) Src() *MacAddress  { return f.Header.Src() }
func (f AssociationRequest) Dest() MacAddress  { return f.Header.Dest() }
func (f AssociationRequest) BSSID() *MacAddress { return f.Header.BSSID() }

// ReassociationRequest replaces the beacon interval slot with the
// current AP's address, per spec.md §4.7's explicit field ordering for
// this variant.
type ReassociationRequest struct {
	Header          ManagementHeader
	CurrentAPAddress MacAddress
	CapabilityInfo  uint16
	StationInfo     StationInfo
}

func decodeReassociationRequest(header ManagementHeader, rest []byte) (ReassociationRequest, error) {
	if len(rest) < 8 {
		return ReassociationRequest{}, newIncomplete(8, len(rest))
	}
	info, err := decodeStationInfo(rest[8:])
	if err != nil {
		return ReassociationRequest{}, err
	}
	var ap MacAddress
	copy(ap[:], rest[0:6])
	return ReassociationRequest{
		Header:           header,
		CurrentAPAddress: ap,
		CapabilityInfo:   le16(rest[6:8]),
		StationInfo:      info,
	}, nil
}

func (f ReassociationRequest) Encode() []byte {
	b := make([]byte, 0, 8)
	b = append(b, f.CurrentAPAddress[:]...)
	b = append(b, putLE16(f.CapabilityInfo)...)
	b = append(b, encodeStationInfo(f.StationInfo)...)
	return b
}

func (f ReassociationRequest) Src() *MacAddress  { return f.Header.Src() }
func (f ReassociationRequest) Dest() MacAddress  { return f.Header.Dest() }
func (f ReassociationRequest) BSSID() *MacAddress { return f.Header.BSSID() }

// AssociationResponse carries capability info, status code,
// association id, then the IE stream. §4.7.
type AssociationResponse struct {
	Header         ManagementHeader
	CapabilityInfo uint16
	StatusCode     uint16
	AssociationID  uint16
	StationInfo    StationInfo
}

func decodeAssociationResponse(header ManagementHeader, rest []byte) (AssociationResponse, error) {
	if len(rest) < 6 {
		return AssociationResponse{}, newIncomplete(6, len(rest))
	}
	info, err := decodeStationInfo(rest[6:])
	if err != nil {
		return AssociationResponse{}, err
	}
	return AssociationResponse{
		Header:         header,
		CapabilityInfo: le16(rest[0:2]),
		StatusCode:     le16(rest[2:4]),
		AssociationID:  le16(rest[4:6]),
		StationInfo:    info,
	}, nil
}

func (f AssociationResponse) Encode() []byte {
	b := make([]byte, 0, 6)
	b = append(b, putLE16(f.CapabilityInfo)...)
	b = append(b, putLE16(f.StatusCode)...)
	b = append(b, putLE16(f.AssociationID)...)
	b = append(b, encodeStationInfo(f.StationInfo)...)
	return b
}

func (f AssociationResponse) Src() *MacAddress  { return f.Header.Src() }
func (f AssociationResponse) Dest() MacAddress  { return f.Header.Dest() }
func (f AssociationResponse) BSSID() *MacAddress { return f.Header.BSSID() }

// ReassociationResponse has the identical wire shape to
// AssociationResponse. §4.7.
type ReassociationResponse struct {
	Header         ManagementHeader
	CapabilityInfo uint16
	StatusCode     uint16
	AssociationID  uint16
	StationInfo    StationInfo
}

func decodeReassociationResponse(header ManagementHeader, rest []byte) (ReassociationResponse, error) {
	r, err := decodeAssociationResponse(header, rest)
	if err != nil {
		return ReassociationResponse{}, err
	}
	return ReassociationResponse(r), nil
}

func (f ReassociationResponse) Encode() []byte {
	return AssociationResponse(f).Encode()
}

func (f ReassociationResponse) Src() *MacAddress  { return f.Header.Src() }
func (f ReassociationResponse) Dest() MacAddress  { return f.Header.Dest() }
func (f ReassociationResponse) BSSID() *MacAddress { return f.Header.BSSID() }

// Authentication carries the algorithm, transaction sequence, status,
// then the IE stream (needed by SAE/FT exchanges). §4.7.
type Authentication struct {
	Header          ManagementHeader
	Algorithm       uint16
	SequenceNumber  uint16
	StatusCode      uint16
	StationInfo     StationInfo
}

func decodeAuthentication(header ManagementHeader, rest []byte) (Authentication, error) {
	if len(rest) < 6 {
		return Authentication{}, newIncomplete(6, len(rest))
	}
	info, err := decodeStationInfo(rest[6:])
	if err != nil {
		return Authentication{}, err
	}
	return Authentication{
		Header:         header,
		Algorithm:      le16(rest[0:2]),
		SequenceNumber: le16(rest[2:4]),
		StatusCode:     le16(rest[4:6]),
		StationInfo:    info,
	}, nil
}

func (f Authentication) Encode() []byte {
	b := make([]byte, 0, 6)
	b = append(b, putLE16(f.Algorithm)...)
	b = append(b, putLE16(f.SequenceNumber)...)
	b = append(b, putLE16(f.StatusCode)...)
	b = append(b, encodeStationInfo(f.StationInfo)...)
	return b
}

func (f Authentication) Src() *MacAddress  { return f.Header.Src() }
func (f Authentication) Dest() MacAddress  { return f.Header.Dest() }
func (f Authentication) BSSID() *MacAddress { return f.Header.BSSID() }

// Deauthentication carries only a reason code. §4.7.
type Deauthentication struct {
	Header     ManagementHeader
	ReasonCode uint16
}

func decodeDeauthentication(header ManagementHeader, rest []byte) (Deauthentication, error) {
	if len(rest) < 2 {
		return Deauthentication{}, newIncomplete(2, len(rest))
	}
	return Deauthentication{Header: header, ReasonCode: le16(rest[0:2])}, nil
}

func (f Deauthentication) Encode() []byte { return putLE16(f.ReasonCode) }

func (f Deauthentication) Src() *MacAddress  { return f.Header.Src() }
func (f Deauthentication) Dest() MacAddress  { return f.Header.Dest() }
func (f Deauthentication) BSSID() *MacAddress { return f.Header.BSSID() }

// Disassociation has the identical wire shape to Deauthentication.
// §4.7.
type Disassociation struct {
	Header     ManagementHeader
	ReasonCode uint16
}

func decodeDisassociation(header ManagementHeader, rest []byte) (Disassociation, error) {
	d, err := decodeDeauthentication(header, rest)
	if err != nil {
		return Disassociation{}, err
	}
	return Disassociation(d), nil
}

func (f Disassociation) Encode() []byte { return putLE16(f.ReasonCode) }

func (f Disassociation) Src() *MacAddress  { return f.Header.Src() }
func (f Disassociation) Dest() MacAddress  { return f.Header.Dest() }
func (f Disassociation) BSSID() *MacAddress { return f.Header.BSSID() }

// Action and ActionNoAck carry a category byte followed by a
// category-specific body, which this decoder preserves verbatim rather
// than further dispatching (no category sub-parsers are in scope).
// §4.7.
type Action struct {
	Header   ManagementHeader
	Category uint8
	Body     []byte
}

func decodeAction(header ManagementHeader, rest []byte) (Action, error) {
	if len(rest) < 1 {
		return Action{}, newIncomplete(1, len(rest))
	}
	return Action{Header: header, Category: rest[0], Body: append([]byte(nil), rest[1:]...)}, nil
}

func (f Action) Encode() []byte { return append([]byte{f.Category}, f.Body...) }

func (f Action) Src() *MacAddress  { return f.Header.Src() }
func (f Action) Dest() MacAddress  { return f.Header.Dest() }
func (f Action) BSSID() *MacAddress { return f.Header.BSSID() }

// ActionNoAck has the identical wire shape to Action. §4.7.
type ActionNoAck struct {
	Header   ManagementHeader
	Category uint8
	Body     []byte
}

func decodeActionNoAck(header ManagementHeader, rest []byte) (ActionNoAck, error) {
	a, err := decodeAction(header, rest)
	if err != nil {
		return ActionNoAck{}, err
	}
	return ActionNoAck(a), nil
}

func (f ActionNoAck) Encode() []byte { return append([]byte{f.Category}, f.Body...) }

func (f ActionNoAck) Src() *MacAddress  { return f.Header.Src() }
func (f ActionNoAck) Dest() MacAddress  { return f.Header.Dest() }
func (f ActionNoAck) BSSID() *MacAddress { return f.Header.BSSID() }

func le16(b []byte) uint16 { return uint16(b[0]) | uint16(b[1])<<8 }

func le64(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * i)
	}
	return v
}

func putLE16(v uint16) []byte { return []byte{byte(v), byte(v >> 8)} }

func putLE64(v uint64) []byte {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
	return b
}
