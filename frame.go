// Copyright (c) 2022 0x9ef. All rights reserved.
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.
package dot11

// FrameKind tags which variant of Frame is populated.
type FrameKind uint8

const (
	FrameKindUnknown FrameKind = iota
	FrameKindBeacon
	FrameKindProbeRequest
	FrameKindProbeResponse
	FrameKindAssociationRequest
	FrameKindAssociationResponse
	FrameKindReassociationRequest
	FrameKindReassociationResponse
	FrameKindAuthentication
	FrameKindDeauthentication
	FrameKindDisassociation
	FrameKindAction
	FrameKindActionNoAck
	FrameKindRTS
	FrameKindCTS
	FrameKindACK
	FrameKindBlockAckRequest
	FrameKindBlockAck
	FrameKindData
	FrameKindQosData
	FrameKindNullData
	FrameKindQosNull
)

// addressable is implemented by every frame body and exposes the
// src/dest/bssid capability set spec.md §3 requires of every variant.
type addressable interface {
	Src() *MacAddress
	Dest() MacAddress
	BSSID() *MacAddress
}

// Frame is a tagged union over every frame body this decoder
// recognizes. Exactly one of the variant fields matching Kind is
// non-nil.
type Frame struct {
	Kind FrameKind

	Beacon                *Beacon
	ProbeRequest          *ProbeRequest
	ProbeResponse         *ProbeResponse
	AssociationRequest    *AssociationRequest
	AssociationResponse   *AssociationResponse
	ReassociationRequest  *ReassociationRequest
	ReassociationResponse *ReassociationResponse
	Authentication        *Authentication
	Deauthentication      *Deauthentication
	Disassociation        *Disassociation
	Action                *Action
	ActionNoAck           *ActionNoAck

	RTS              *RTSFrame
	CTS              *CTSFrame
	ACK              *ACKFrame
	BlockAckRequest  *BlockAckRequestFrame
	BlockAck         *BlockAckFrame

	Data     *DataFrame
	QosData  *QosDataFrame
	NullData *NullDataFrame
	QosNull  *QosNullFrame
}

func (f Frame) body() addressable {
	switch f.Kind {
	case FrameKindBeacon:
		return f.Beacon
	case FrameKindProbeRequest:
		return f.ProbeRequest
	case FrameKindProbeResponse:
		return f.ProbeResponse
	case FrameKindAssociationRequest:
		return f.AssociationRequest
	case FrameKindAssociationResponse:
		return f.AssociationResponse
	case FrameKindReassociationRequest:
		return f.ReassociationRequest
	case FrameKindReassociationResponse:
		return f.ReassociationResponse
	case FrameKindAuthentication:
		return f.Authentication
	case FrameKindDeauthentication:
		return f.Deauthentication
	case FrameKindDisassociation:
		return f.Disassociation
	case FrameKindAction:
		return f.Action
	case FrameKindActionNoAck:
		return f.ActionNoAck
	case FrameKindRTS:
		return *f.RTS
	case FrameKindCTS:
		return *f.CTS
	case FrameKindACK:
		return *f.ACK
	case FrameKindBlockAckRequest:
		return *f.BlockAckRequest
	case FrameKindBlockAck:
		return *f.BlockAck
	case FrameKindData:
		return *f.Data
	case FrameKindQosData:
		return *f.QosData
	case FrameKindNullData:
		return *f.NullData
	case FrameKindQosNull:
		return *f.QosNull
	default:
		return nil
	}
}

// Src returns the logical source address, when the variant has one.
func (f Frame) Src() *MacAddress {
	if b := f.body(); b != nil {
		return b.Src()
	}
	return nil
}

// Dest returns the logical destination address. Always defined for a
// successfully decoded Frame.
func (f Frame) Dest() MacAddress {
	if b := f.body(); b != nil {
		return b.Dest()
	}
	return MacAddress{}
}

// BSSID returns the logical BSSID, when resolvable for this variant.
func (f Frame) BSSID() *MacAddress {
	if b := f.body(); b != nil {
		return b.BSSID()
	}
	return nil
}

// Decode parses a single 802.11 MAC-layer frame starting at the Frame
// Control field. When fcsPresent is true the trailing 4 bytes are
// treated as the frame check sequence and excluded from the payload
// with no validation performed.
func Decode(octets []byte, fcsPresent bool) (Frame, error) {
	body := octets
	if fcsPresent {
		if len(body) < 4 {
			return Frame{}, newIncomplete(4, len(body))
		}
		body = body[:len(body)-4]
	}

	fc, err := DecodeFrameControl(body)
	if err != nil {
		return Frame{}, err
	}
	rest := body[2:]

	switch fc.Type {
	case FrameTypeManagement:
		return decodeManagementFrame(fc, rest)
	case FrameTypeControl:
		return decodeControlFrame(fc, rest)
	case FrameTypeData:
		return decodeDataTypeFrame(fc, rest)
	default:
		return Frame{}, newUnhandledFrameSubtype(fc, rest)
	}
}

func decodeManagementFrame(fc FrameControl, rest []byte) (Frame, error) {
	header, body, err := decodeManagementHeader(fc, rest)
	if err != nil {
		return Frame{}, err
	}

	switch fc.SubType.Kind {
	case SubTypeBeacon:
		v, err := decodeBeacon(header, body)
		if err != nil {
			return Frame{}, err
		}
		return Frame{Kind: FrameKindBeacon, Beacon: &v}, nil
	case SubTypeProbeRequest:
		v, err := decodeProbeRequest(header, body)
		if err != nil {
			return Frame{}, err
		}
		return Frame{Kind: FrameKindProbeRequest, ProbeRequest: &v}, nil
	case SubTypeProbeResponse:
		v, err := decodeProbeResponse(header, body)
		if err != nil {
			return Frame{}, err
		}
		return Frame{Kind: FrameKindProbeResponse, ProbeResponse: &v}, nil
	case SubTypeAssociationRequest:
		v, err := decodeAssociationRequest(header, body)
		if err != nil {
			return Frame{}, err
		}
		return Frame{Kind: FrameKindAssociationRequest, AssociationRequest: &v}, nil
	case SubTypeAssociationResponse:
		v, err := decodeAssociationResponse(header, body)
		if err != nil {
			return Frame{}, err
		}
		return Frame{Kind: FrameKindAssociationResponse, AssociationResponse: &v}, nil
	case SubTypeReassociationRequest:
		v, err := decodeReassociationRequest(header, body)
		if err != nil {
			return Frame{}, err
		}
		return Frame{Kind: FrameKindReassociationRequest, ReassociationRequest: &v}, nil
	case SubTypeReassociationResponse:
		v, err := decodeReassociationResponse(header, body)
		if err != nil {
			return Frame{}, err
		}
		return Frame{Kind: FrameKindReassociationResponse, ReassociationResponse: &v}, nil
	case SubTypeAuthentication:
		v, err := decodeAuthentication(header, body)
		if err != nil {
			return Frame{}, err
		}
		return Frame{Kind: FrameKindAuthentication, Authentication: &v}, nil
	case SubTypeDeauthentication:
		v, err := decodeDeauthentication(header, body)
		if err != nil {
			return Frame{}, err
		}
		return Frame{Kind: FrameKindDeauthentication, Deauthentication: &v}, nil
	case SubTypeDisassociation:
		v, err := decodeDisassociation(header, body)
		if err != nil {
			return Frame{}, err
		}
		return Frame{Kind: FrameKindDisassociation, Disassociation: &v}, nil
	case SubTypeAction:
		v, err := decodeAction(header, body)
		if err != nil {
			return Frame{}, err
		}
		return Frame{Kind: FrameKindAction, Action: &v}, nil
	case SubTypeActionNoAck:
		v, err := decodeActionNoAck(header, body)
		if err != nil {
			return Frame{}, err
		}
		return Frame{Kind: FrameKindActionNoAck, ActionNoAck: &v}, nil
	default:
		return Frame{}, newUnhandledFrameSubtype(fc, body)
	}
}

func decodeControlFrame(fc FrameControl, rest []byte) (Frame, error) {
	switch fc.SubType.Kind {
	case SubTypeRts:
		v, err := decodeRTSFrame(fc, rest)
		if err != nil {
			return Frame{}, err
		}
		return Frame{Kind: FrameKindRTS, RTS: &v}, nil
	case SubTypeCts:
		v, err := decodeCTSFrame(fc, rest)
		if err != nil {
			return Frame{}, err
		}
		return Frame{Kind: FrameKindCTS, CTS: &v}, nil
	case SubTypeAck:
		v, err := decodeACKFrame(fc, rest)
		if err != nil {
			return Frame{}, err
		}
		return Frame{Kind: FrameKindACK, ACK: &v}, nil
	case SubTypeBlockAckRequest:
		v, err := decodeBlockAckRequestFrame(fc, rest)
		if err != nil {
			return Frame{}, err
		}
		return Frame{Kind: FrameKindBlockAckRequest, BlockAckRequest: &v}, nil
	case SubTypeBlockAck:
		v, err := decodeBlockAckFrame(fc, rest)
		if err != nil {
			return Frame{}, err
		}
		return Frame{Kind: FrameKindBlockAck, BlockAck: &v}, nil
	default:
		return Frame{}, newUnhandledFrameSubtype(fc, rest)
	}
}

func decodeDataTypeFrame(fc FrameControl, rest []byte) (Frame, error) {
	header, body, err := decodeDataHeader(fc, rest)
	if err != nil {
		return Frame{}, err
	}

	switch fc.SubType.Kind {
	case SubTypeData, SubTypeDataCfAck, SubTypeDataCfPoll, SubTypeDataCfAckCfPoll:
		v, err := decodeDataFrame(header, body)
		if err != nil {
			return Frame{}, err
		}
		return Frame{Kind: FrameKindData, Data: &v}, nil
	case SubTypeQosData, SubTypeQosDataCfAck, SubTypeQosDataCfPoll, SubTypeQosDataCfAckCfPoll:
		v, err := decodeQosDataFrame(header, body)
		if err != nil {
			return Frame{}, err
		}
		return Frame{Kind: FrameKindQosData, QosData: &v}, nil
	case SubTypeNullData, SubTypeCfAck, SubTypeCfPoll, SubTypeCfAckCfPoll:
		v, err := decodeNullDataFrame(header)
		if err != nil {
			return Frame{}, err
		}
		return Frame{Kind: FrameKindNullData, NullData: &v}, nil
	case SubTypeQosNull, SubTypeQosCfPoll, SubTypeQosCfAckCfPoll:
		v, err := decodeQosNullFrame(header)
		if err != nil {
			return Frame{}, err
		}
		return Frame{Kind: FrameKindQosNull, QosNull: &v}, nil
	default:
		return Frame{}, newUnhandledFrameSubtype(fc, body)
	}
}
