// Copyright (c) 2022 0x9ef. All rights reserved.
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.
package dot11

import "fmt"

// HTCapabilities is the decoded 2-byte HT Capabilities Info field
// (element 45, §4.5.2).
type HTCapabilities struct {
	LDPCCodingCapability  bool
	SupportedChannelWidth bool
	SMPowerSave           uint8 // 2 bits
	GreenField            bool
	ShortGI20MHz          bool
	ShortGI40MHz          bool
	TxSTBC                bool
	RxSTBC                uint8 // 2 bits
	DelayedBlockAck       bool
	MaxAMSDULength        bool
	DSSSSupport           bool
	PSMPSupport           bool
	FortyMHzIntolerant    bool
	LSigTxOpProtection    bool
}

func decodeHTCapabilities(data []byte) *HTCapabilities {
	if len(data) < 2 {
		return nil
	}
	bits := uint16(data[0]) | uint16(data[1])<<8
	bit := func(i uint) bool { return bits&(1<<i) != 0 }
	return &HTCapabilities{
		LDPCCodingCapability:  bit(0),
		SupportedChannelWidth: bit(1),
		SMPowerSave:           uint8((bits >> 2) & 0x3),
		GreenField:            bit(4),
		ShortGI20MHz:          bit(5),
		ShortGI40MHz:          bit(6),
		TxSTBC:                bit(7),
		RxSTBC:                uint8((bits >> 8) & 0x3),
		DelayedBlockAck:       bit(10),
		MaxAMSDULength:        bit(11),
		DSSSSupport:           bit(12),
		PSMPSupport:           bit(13),
		FortyMHzIntolerant:    bit(14),
		LSigTxOpProtection:    bit(15),
	}
}

func encodeHTCapabilities(c HTCapabilities) []byte {
	var bits uint16
	set := func(i uint, v bool) {
		if v {
			bits |= 1 << i
		}
	}
	set(0, c.LDPCCodingCapability)
	set(1, c.SupportedChannelWidth)
	bits |= uint16(c.SMPowerSave&0x3) << 2
	set(4, c.GreenField)
	set(5, c.ShortGI20MHz)
	set(6, c.ShortGI40MHz)
	set(7, c.TxSTBC)
	bits |= uint16(c.RxSTBC&0x3) << 8
	set(10, c.DelayedBlockAck)
	set(11, c.MaxAMSDULength)
	set(12, c.DSSSSupport)
	set(13, c.PSMPSupport)
	set(14, c.FortyMHzIntolerant)
	set(15, c.LSigTxOpProtection)
	return []byte{byte(bits), byte(bits >> 8)}
}

// HTInformation is the decoded HT Information element (61). Only the
// first two bytes are given named fields; the remainder (basic MCS set,
// operation element, etc.) is preserved verbatim in Rest.
type HTInformation struct {
	PrimaryChannel              uint8
	SecondaryChannelOffset      uint8 // 2 bits
	SupportedChannelWidth       bool
	Rest []byte
}

func decodeHTInformation(data []byte) (HTInformation, error) {
	if len(data) < 2 {
		return HTInformation{}, fmt.Errorf("HT information too short: %d bytes", len(data))
	}
	return HTInformation{
		PrimaryChannel:         data[0],
		SecondaryChannelOffset: data[1] & 0x03,
		SupportedChannelWidth:  data[1]&0x04 != 0,
		Rest:                   append([]byte(nil), data[2:]...),
	}, nil
}

func encodeHTInformation(h HTInformation) []byte {
	b := make([]byte, 0, 2+len(h.Rest))
	second := h.SecondaryChannelOffset & 0x03
	if h.SupportedChannelWidth {
		second |= 0x04
	}
	b = append(b, h.PrimaryChannel, second)
	b = append(b, h.Rest...)
	return b
}

// ChannelSwitchMode names the Channel Switch Announcement's mode byte
// (element 37).
type ChannelSwitchMode uint8

const (
	ChannelSwitchUnrestricted ChannelSwitchMode = 0
	ChannelSwitchRestrict     ChannelSwitchMode = 1
)

// ChannelSwitchAnnouncement is the decoded Channel Switch Announcement
// element.
type ChannelSwitchAnnouncement struct {
	Mode       ChannelSwitchMode
	NewChannel uint8
	Count      uint8
}

func decodeChannelSwitch(data []byte) *ChannelSwitchAnnouncement {
	if len(data) < 3 {
		return nil
	}
	mode := ChannelSwitchUnrestricted
	if data[0] == 1 {
		mode = ChannelSwitchRestrict
	}
	return &ChannelSwitchAnnouncement{Mode: mode, NewChannel: data[1], Count: data[2]}
}

func encodeChannelSwitch(c ChannelSwitchAnnouncement) []byte {
	return []byte{uint8(c.Mode), c.NewChannel, c.Count}
}

// MultipleBSSID is the decoded Multiple BSSID element (71): only the
// leading Max BSSID Indicator is given a named field, the remaining
// nested subelements are preserved verbatim.
type MultipleBSSID struct {
	MaxBSSIDIndicator uint8
	Rest              []byte
}

func decodeMultipleBSSID(data []byte) (MultipleBSSID, error) {
	if len(data) < 1 {
		return MultipleBSSID{}, fmt.Errorf("multiple bssid element is empty")
	}
	return MultipleBSSID{MaxBSSIDIndicator: data[0], Rest: append([]byte(nil), data[1:]...)}, nil
}

func encodeMultipleBSSID(m MultipleBSSID) []byte {
	return append([]byte{m.MaxBSSIDIndicator}, m.Rest...)
}
