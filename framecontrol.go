// Copyright (c) 2022 0x9ef. All rights reserved.
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.
package dot11

import "fmt"

// ProtocolVersion is the 2-bit protocol version sub-field. Every frame
// observed in practice carries version 0; a non-zero value is preserved
// verbatim so callers can still log/route it.
type ProtocolVersion uint8

// IsKnown reports whether this is the only version defined by the
// standard (0).
func (v ProtocolVersion) IsKnown() bool { return v == 0 }

func (v ProtocolVersion) String() string {
	if v == 0 {
		return "0"
	}
	return fmt.Sprintf("Unknown(%d)", uint8(v))
}

// FrameType is the 2-bit frame type sub-field. All four codepoints are
// assigned by the standard, so unlike FrameSubType there is no Unknown
// variant here; an out-of-range value cannot occur from a genuine 2-bit
// decode.
type FrameType uint8

const (
	FrameTypeManagement FrameType = 0
	FrameTypeControl    FrameType = 1
	FrameTypeData       FrameType = 2
	FrameTypeExtension  FrameType = 3
)

func (t FrameType) String() string {
	switch t {
	case FrameTypeManagement:
		return "Management"
	case FrameTypeControl:
		return "Control"
	case FrameTypeData:
		return "Data"
	case FrameTypeExtension:
		return "Extension"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}

// SubTypeKind names the recognized frame subtypes, plus the two catch-all
// kinds: Reserved for standard-defined-but-unused codepoints, and
// Unhandled for codepoints outside the (type, subtype) matrix entirely
// (always true for Unknown frame types, since their subtype table isn't
// defined).
type SubTypeKind uint8

const (
	SubTypeUnhandled SubTypeKind = iota
	SubTypeReserved

	// Management
	SubTypeAssociationRequest
	SubTypeAssociationResponse
	SubTypeReassociationRequest
	SubTypeReassociationResponse
	SubTypeProbeRequest
	SubTypeProbeResponse
	SubTypeTimingAdvertisement
	SubTypeBeacon
	SubTypeAtim
	SubTypeDisassociation
	SubTypeAuthentication
	SubTypeDeauthentication
	SubTypeAction
	SubTypeActionNoAck

	// Control
	SubTypeTrigger
	SubTypeTack
	SubTypeBeamformingReportPoll
	SubTypeNdpAnnouncement
	SubTypeControlFrameExtension
	SubTypeControlWrapper
	SubTypeBlockAckRequest
	SubTypeBlockAck
	SubTypePsPoll
	SubTypeRts
	SubTypeCts
	SubTypeAck
	SubTypeCfEnd
	SubTypeCfEndCfAck

	// Data
	SubTypeData
	SubTypeDataCfAck
	SubTypeDataCfPoll
	SubTypeDataCfAckCfPoll
	SubTypeNullData
	SubTypeCfAck
	SubTypeCfPoll
	SubTypeCfAckCfPoll
	SubTypeQosData
	SubTypeQosDataCfAck
	SubTypeQosDataCfPoll
	SubTypeQosDataCfAckCfPoll
	SubTypeQosNull
	SubTypeQosCfPoll
	SubTypeQosCfAckCfPoll

	// Extension
	SubTypeDMGBeacon
	SubTypeS1GBeacon
)

var subTypeNames = map[SubTypeKind]string{
	SubTypeAssociationRequest:     "AssociationRequest",
	SubTypeAssociationResponse:    "AssociationResponse",
	SubTypeReassociationRequest:   "ReassociationRequest",
	SubTypeReassociationResponse:  "ReassociationResponse",
	SubTypeProbeRequest:           "ProbeRequest",
	SubTypeProbeResponse:          "ProbeResponse",
	SubTypeTimingAdvertisement:    "TimingAdvertisement",
	SubTypeBeacon:                 "Beacon",
	SubTypeAtim:                   "Atim",
	SubTypeDisassociation:         "Disassociation",
	SubTypeAuthentication:         "Authentication",
	SubTypeDeauthentication:       "Deauthentication",
	SubTypeAction:                 "Action",
	SubTypeActionNoAck:            "ActionNoAck",
	SubTypeTrigger:                "Trigger",
	SubTypeTack:                   "Tack",
	SubTypeBeamformingReportPoll:  "BeamformingReportPoll",
	SubTypeNdpAnnouncement:        "NdpAnnouncement",
	SubTypeControlFrameExtension:  "ControlFrameExtension",
	SubTypeControlWrapper:         "ControlWrapper",
	SubTypeBlockAckRequest:        "BlockAckRequest",
	SubTypeBlockAck:               "BlockAck",
	SubTypePsPoll:                 "PsPoll",
	SubTypeRts:                    "Rts",
	SubTypeCts:                    "Cts",
	SubTypeAck:                    "Ack",
	SubTypeCfEnd:                  "CfEnd",
	SubTypeCfEndCfAck:             "CfEndCfAck",
	SubTypeData:                   "Data",
	SubTypeDataCfAck:              "DataCfAck",
	SubTypeDataCfPoll:             "DataCfPoll",
	SubTypeDataCfAckCfPoll:        "DataCfAckCfPoll",
	SubTypeNullData:               "NullData",
	SubTypeCfAck:                  "CfAck",
	SubTypeCfPoll:                 "CfPoll",
	SubTypeCfAckCfPoll:            "CfAckCfPoll",
	SubTypeQosData:                "QosData",
	SubTypeQosDataCfAck:           "QosDataCfAck",
	SubTypeQosDataCfPoll:          "QosDataCfPoll",
	SubTypeQosDataCfAckCfPoll:     "QosDataCfAckCfPoll",
	SubTypeQosNull:                "QosNull",
	SubTypeQosCfPoll:              "QosCfPoll",
	SubTypeQosCfAckCfPoll:         "QosCfAckCfPoll",
	SubTypeDMGBeacon:              "DMGBeacon",
	SubTypeS1GBeacon:              "S1GBeacon",
}

// FrameSubType is the 4-bit frame subtype sub-field, tagged with its raw
// nibble so Reserved/Unhandled codepoints round-trip through the encoder.
type FrameSubType struct {
	Kind SubTypeKind
	Raw  uint8
}

func (s FrameSubType) String() string {
	switch s.Kind {
	case SubTypeReserved:
		return fmt.Sprintf("Reserved(%d)", s.Raw)
	case SubTypeUnhandled:
		return fmt.Sprintf("Unhandled(%d)", s.Raw)
	default:
		if name, ok := subTypeNames[s.Kind]; ok {
			return name
		}
		return fmt.Sprintf("Unhandled(%d)", s.Raw)
	}
}

// isQoS reports whether the subtype is one of the data subtypes that
// carry a QoS Control field, per spec.md §4.3.
func (s FrameSubType) isQoS() bool {
	switch s.Kind {
	case SubTypeQosData, SubTypeQosDataCfAck, SubTypeQosDataCfPoll,
		SubTypeQosDataCfAckCfPoll, SubTypeQosNull, SubTypeQosCfPoll,
		SubTypeQosCfAckCfPoll:
		return true
	default:
		return false
	}
}

// Flags is the second octet of the Frame Control field.
type Flags uint8

func (f Flags) ToDS() bool          { return f&0x01 != 0 }
func (f Flags) FromDS() bool        { return f&0x02 != 0 }
func (f Flags) MoreFragments() bool { return f&0x04 != 0 }
func (f Flags) Retry() bool         { return f&0x08 != 0 }
func (f Flags) PowerMgmt() bool     { return f&0x10 != 0 }
func (f Flags) MoreData() bool      { return f&0x20 != 0 }
func (f Flags) Protected() bool     { return f&0x40 != 0 }
func (f Flags) Order() bool         { return f&0x80 != 0 }

// FrameControl is the decoded 2-byte Frame Control field opening every
// 802.11 frame.
type FrameControl struct {
	ProtocolVersion ProtocolVersion
	Type            FrameType
	SubType         FrameSubType
	Flags           Flags
}

// DecodeFrameControl decodes the first two octets of a frame, using
// Decode80211Fc as the underlying bit-packing primitive.
func DecodeFrameControl(b []byte) (FrameControl, error) {
	if len(b) < 2 {
		return FrameControl{}, newIncomplete(2, len(b))
	}
	fields := Decode80211Fc(uint16(b[0]) | uint16(b[1])<<8)
	version := ProtocolVersion(fields[0])
	ftype := FrameType(fields[1])
	subtypeRaw := uint8(fields[2])
	flags := Flags(b[1])

	var kind SubTypeKind
	switch ftype {
	case FrameTypeManagement:
		kind = managementSubtype(subtypeRaw)
	case FrameTypeControl:
		kind = controlSubtype(subtypeRaw)
	case FrameTypeData:
		kind = dataSubtype(subtypeRaw)
	case FrameTypeExtension:
		kind = extensionSubtype(subtypeRaw)
	default:
		kind = SubTypeUnhandled
	}

	return FrameControl{
		ProtocolVersion: version,
		Type:            ftype,
		SubType:         FrameSubType{Kind: kind, Raw: subtypeRaw},
		Flags:           flags,
	}, nil
}

// Encode serializes the FrameControl back to its 2-byte wire form,
// using Encode80211Fc as the underlying bit-packing primitive.
func (fc FrameControl) Encode() []byte {
	flags := uint16(fc.Flags)
	encoded := Encode80211Fc(
		uint16(fc.ProtocolVersion)&0x03,
		uint16(fc.Type)&0x03,
		uint16(fc.SubType.Raw)&0x0F,
		flags&1, (flags>>1)&1, (flags>>2)&1, (flags>>3)&1,
		(flags>>4)&1, (flags>>5)&1, (flags>>6)&1, (flags>>7)&1,
	)
	return []byte{byte(encoded), byte(encoded >> 8)}
}

func managementSubtype(n uint8) SubTypeKind {
	switch n {
	case 0:
		return SubTypeAssociationRequest
	case 1:
		return SubTypeAssociationResponse
	case 2:
		return SubTypeReassociationRequest
	case 3:
		return SubTypeReassociationResponse
	case 4:
		return SubTypeProbeRequest
	case 5:
		return SubTypeProbeResponse
	case 6:
		return SubTypeTimingAdvertisement
	case 7:
		return SubTypeReserved
	case 8:
		return SubTypeBeacon
	case 9:
		return SubTypeAtim
	case 10:
		return SubTypeDisassociation
	case 11:
		return SubTypeAuthentication
	case 12:
		return SubTypeDeauthentication
	case 13:
		return SubTypeAction
	case 14:
		return SubTypeActionNoAck
	case 15:
		return SubTypeReserved
	default:
		return SubTypeUnhandled
	}
}

func controlSubtype(n uint8) SubTypeKind {
	switch n {
	case 0, 1:
		return SubTypeReserved
	case 2:
		return SubTypeTrigger
	case 3:
		return SubTypeTack
	case 4:
		return SubTypeBeamformingReportPoll
	case 5:
		return SubTypeNdpAnnouncement
	case 6:
		return SubTypeControlFrameExtension
	case 7:
		return SubTypeControlWrapper
	case 8:
		return SubTypeBlockAckRequest
	case 9:
		return SubTypeBlockAck
	case 10:
		return SubTypePsPoll
	case 11:
		return SubTypeRts
	case 12:
		return SubTypeCts
	case 13:
		return SubTypeAck
	case 14:
		return SubTypeCfEnd
	case 15:
		return SubTypeCfEndCfAck
	default:
		return SubTypeUnhandled
	}
}

func dataSubtype(n uint8) SubTypeKind {
	switch n {
	case 0:
		return SubTypeData
	case 1:
		return SubTypeDataCfAck
	case 2:
		return SubTypeDataCfPoll
	case 3:
		return SubTypeDataCfAckCfPoll
	case 4:
		return SubTypeNullData
	case 5:
		return SubTypeCfAck
	case 6:
		return SubTypeCfPoll
	case 7:
		return SubTypeCfAckCfPoll
	case 8:
		return SubTypeQosData
	case 9:
		return SubTypeQosDataCfAck
	case 10:
		return SubTypeQosDataCfPoll
	case 11:
		return SubTypeQosDataCfAckCfPoll
	case 12:
		return SubTypeQosNull
	case 13:
		return SubTypeReserved
	case 14:
		return SubTypeQosCfPoll
	case 15:
		return SubTypeQosCfAckCfPoll
	default:
		return SubTypeUnhandled
	}
}

func extensionSubtype(n uint8) SubTypeKind {
	switch n {
	case 0:
		return SubTypeDMGBeacon
	case 1:
		return SubTypeS1GBeacon
	default:
		return SubTypeReserved
	}
}
