// Copyright (c) 2022 0x9ef. All rights reserved.
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.
package dot11

import "fmt"

// extensionIDHECapabilities is the sub-id within the extended-tag family
// (element 255) that carries HE (802.11ax) Capabilities, per spec.md
// §4.5's extension-tag table.
const extensionIDHECapabilities = 35

// InformationElement is a single unrecognized (element_id, payload) TLV,
// preserved verbatim for round-tripping and forensic inspection.
type InformationElement struct {
	ID      uint8
	Payload []byte
}

// StationInfo is the decoded form of an Information Element stream: the
// variable-length tail of every management-frame body. Recognized IEs
// populate named fields; everything else is appended, in order, to
// Residual. Repeated IDs (vendor-specific, supported rates variants) are
// preserved in encounter order.
type StationInfo struct {
	SSID       *string
	SSIDLength *int

	SupportedRates         []SupportedRate
	ExtendedSupportedRates []SupportedRate

	DSParameterSet   *uint8
	TIM              []byte
	IBSSParameterSet *uint16
	CountryInfo      []byte
	PowerConstraint  *uint8
	ChannelSwitch    *ChannelSwitchAnnouncement

	HTCapabilities *HTCapabilities
	HTInformation  *HTInformation

	RSNInformation *RSNInformation
	WPAInformation *WPAInformation
	WPSInformation *WPSInformation

	ExtendedCapabilities *ExtendedCapabilities
	MultipleBSSID        *MultipleBSSID
	VHTCapabilities      []byte
	HECapabilities       []byte

	VendorSpecific []VendorSpecificInfo
	ExtensionTags  []ExtensionTag

	Residual []InformationElement

	// TrailingBytes holds the final (<4-byte) remainder the IE walker
	// stopped on, per spec.md §4.5's termination rule. Normally empty or
	// padding; DecodeOptions.Strict treats a non-empty remainder as a
	// Failure.
	TrailingBytes []byte
}

// VendorSpecificInfo is a vendor-specific IE (element 221) that isn't one
// of the two specially-recognized WPA1/WPS blobs.
type VendorSpecificInfo struct {
	OUI     [3]byte
	OUIType uint8
	Data    []byte
}

// ExtensionTag is a residual extension-tag family IE (element 255) for a
// sub-id this decoder doesn't have a typed field for (everything except
// HE Capabilities at sub-id 35).
type ExtensionTag struct {
	ExtensionID uint8
	Payload     []byte
}

// Channel returns the channel advertised by the DS Parameter Set IE
// (element 3), if present.
func (s StationInfo) Channel() (uint8, bool) {
	if s.DSParameterSet == nil {
		return 0, false
	}
	return *s.DSParameterSet, true
}

// SSIDDisplay renders the SSID the way a monitor UI should: the decoded
// string when present and non-empty, "<hidden: N>" for a hidden network
// (empty string but a non-zero advertised length), or "" when no SSID IE
// was present at all.
func (s StationInfo) SSIDDisplay() string {
	if s.SSID == nil {
		return ""
	}
	if *s.SSID == "" && s.SSIDLength != nil && *s.SSIDLength > 0 {
		return fmt.Sprintf("<hidden: %d>", *s.SSIDLength)
	}
	return *s.SSID
}

// decodeStationInfo walks the Information Element stream, dispatching
// each (id, payload) pair to its typed sub-parser. Per spec.md §4.5/§7,
// a malformed optional IE is isolated: the field is simply left nil and
// the walk continues. The lone exception is a WPA1 vendor IE that claims
// the WPA OUI/type but fails to parse, which is a hard Failure per
// spec.md §7's explicit carve-out.
func decodeStationInfo(input []byte) (StationInfo, error) {
	var info StationInfo
	for len(input) >= 2 {
		id := input[0]
		length := int(input[1])
		input = input[2:]
		if length > len(input) {
			length = len(input)
		}
		data := input[:length]
		input = input[length:]

		if len(data) > 0 {
			switch id {
			case 0:
				ssid := string(data)
				n := length
				info.SSID = &ssid
				info.SSIDLength = &n
			case 1:
				info.SupportedRates = append(info.SupportedRates, decodeSupportedRates(data)...)
			case 3:
				v := data[0]
				info.DSParameterSet = &v
			case 5:
				info.TIM = append([]byte(nil), data...)
			case 6:
				if len(data) >= 2 {
					v := uint16(data[0]) | uint16(data[1])<<8
					info.IBSSParameterSet = &v
				}
			case 7:
				info.CountryInfo = append([]byte(nil), data...)
			case 32:
				v := data[0]
				info.PowerConstraint = &v
			case 37:
				info.ChannelSwitch = decodeChannelSwitch(data)
			case 45:
				info.HTCapabilities = decodeHTCapabilities(data)
			case 48:
				if rsn, err := decodeRSNInformation(data); err == nil {
					info.RSNInformation = &rsn
				}
			case 50:
				info.ExtendedSupportedRates = append(info.ExtendedSupportedRates, decodeSupportedRates(data)...)
			case 61:
				if ht, err := decodeHTInformation(data); err == nil {
					info.HTInformation = &ht
				}
			case 71:
				if mb, err := decodeMultipleBSSID(data); err == nil {
					info.MultipleBSSID = &mb
				}
			case 127:
				if ec, err := decodeExtendedCapabilities(data); err == nil {
					info.ExtendedCapabilities = &ec
				}
			case 191:
				info.VHTCapabilities = append([]byte(nil), data...)
			case 221:
				if len(data) >= 4 {
					oui := [3]byte{data[0], data[1], data[2]}
					ouiType := data[3]
					vendorData := data[4:]
					switch {
					case oui == wpsOUI && ouiType == wpaOUIType:
						wpa, err := decodeWPAInformation(vendorData)
						if err != nil {
							return StationInfo{}, newFailure(fmt.Sprintf("wpa information element: %v", err), data)
						}
						info.WPAInformation = &wpa
					case oui == wpsOUI && ouiType == wpsOUIType:
						if wps, err := decodeWPSInformation(vendorData); err == nil {
							info.WPSInformation = &wps
						}
					default:
						info.VendorSpecific = append(info.VendorSpecific, VendorSpecificInfo{
							OUI:     oui,
							OUIType: ouiType,
							Data:    append([]byte(nil), vendorData...),
						})
					}
				}
			case 255:
				extID := data[0]
				if extID == extensionIDHECapabilities {
					info.HECapabilities = append([]byte(nil), data...)
				} else {
					info.ExtensionTags = append(info.ExtensionTags, ExtensionTag{
						ExtensionID: extID,
						Payload:     append([]byte(nil), data[1:]...),
					})
				}
			default:
				info.Residual = append(info.Residual, InformationElement{ID: id, Payload: append([]byte(nil), data...)})
			}
		}

		if len(input) < 4 {
			break
		}
	}
	info.TrailingBytes = append([]byte(nil), input...)
	return info, nil
}

// encodeStationInfo re-emits every recognized field, in the fixed order
// below, followed by residual IEs verbatim in their original relative
// order (spec.md §4.8's encoder symmetry law; element order otherwise
// carries no semantic weight).
func encodeStationInfo(info StationInfo) []byte {
	var b []byte
	appendIE := func(id uint8, payload []byte) {
		b = append(b, id, uint8(len(payload)))
		b = append(b, payload...)
	}

	if info.SSID != nil {
		appendIE(0, []byte(*info.SSID))
	}
	if len(info.SupportedRates) > 0 {
		appendIE(1, encodeSupportedRates(info.SupportedRates))
	}
	if info.DSParameterSet != nil {
		appendIE(3, []byte{*info.DSParameterSet})
	}
	if info.TIM != nil {
		appendIE(5, info.TIM)
	}
	if info.IBSSParameterSet != nil {
		v := *info.IBSSParameterSet
		appendIE(6, []byte{byte(v), byte(v >> 8)})
	}
	if info.CountryInfo != nil {
		appendIE(7, info.CountryInfo)
	}
	if info.PowerConstraint != nil {
		appendIE(32, []byte{*info.PowerConstraint})
	}
	if info.ChannelSwitch != nil {
		appendIE(37, encodeChannelSwitch(*info.ChannelSwitch))
	}
	if info.HTCapabilities != nil {
		appendIE(45, encodeHTCapabilities(*info.HTCapabilities))
	}
	if info.RSNInformation != nil {
		appendIE(48, encodeRSNInformation(*info.RSNInformation))
	}
	if len(info.ExtendedSupportedRates) > 0 {
		appendIE(50, encodeSupportedRates(info.ExtendedSupportedRates))
	}
	if info.HTInformation != nil {
		appendIE(61, encodeHTInformation(*info.HTInformation))
	}
	if info.MultipleBSSID != nil {
		appendIE(71, encodeMultipleBSSID(*info.MultipleBSSID))
	}
	if info.ExtendedCapabilities != nil {
		appendIE(127, encodeExtendedCapabilities(*info.ExtendedCapabilities))
	}
	if info.VHTCapabilities != nil {
		appendIE(191, info.VHTCapabilities)
	}
	if info.WPAInformation != nil {
		payload := append(append([]byte{}, wpsOUI[:]...), wpaOUIType)
		payload = append(payload, encodeWPAInformation(*info.WPAInformation)...)
		appendIE(221, payload)
	}
	if info.WPSInformation != nil {
		payload := append(append([]byte{}, wpsOUI[:]...), wpsOUIType)
		payload = append(payload, encodeWPSInformation(*info.WPSInformation)...)
		appendIE(221, payload)
	}
	for _, v := range info.VendorSpecific {
		payload := append(append([]byte{}, v.OUI[:]...), v.OUIType)
		payload = append(payload, v.Data...)
		appendIE(221, payload)
	}
	if info.HECapabilities != nil {
		appendIE(255, info.HECapabilities)
	}
	for _, ext := range info.ExtensionTags {
		payload := append([]byte{ext.ExtensionID}, ext.Payload...)
		appendIE(255, payload)
	}
	for _, r := range info.Residual {
		appendIE(r.ID, r.Payload)
	}
	b = append(b, info.TrailingBytes...)
	return b
}
