// Copyright (c) 2022 0x9ef. All rights reserved.
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.
package dot11

import "fmt"

// RsnCipherSuite names an 802.11i (RSN) cipher suite, keyed off the
// 00-0F-AC vendor OUI. Anything else is preserved as Unknown.
type RsnCipherSuite struct {
	Name  string // "", "None", "WEP", "TKIP", "WRAP", "CCMP", "WEP104" or "" for Unknown
	Raw   [4]byte
}

// IsUnknown reports whether this suite fell outside the named set.
func (c RsnCipherSuite) IsUnknown() bool { return c.Name == "" }

func (c RsnCipherSuite) String() string {
	if c.IsUnknown() {
		return fmt.Sprintf("Unknown(% x)", c.Raw)
	}
	return c.Name
}

var rsnOUI = [3]byte{0x00, 0x0F, 0xAC}

func decodeRsnCipherSuite(data []byte) RsnCipherSuite {
	var raw [4]byte
	copy(raw[:], data)
	if raw[0] == rsnOUI[0] && raw[1] == rsnOUI[1] && raw[2] == rsnOUI[2] {
		switch raw[3] {
		case 0x00:
			return RsnCipherSuite{Name: "None", Raw: raw}
		case 0x01:
			return RsnCipherSuite{Name: "WEP", Raw: raw}
		case 0x02:
			return RsnCipherSuite{Name: "TKIP", Raw: raw}
		case 0x03:
			return RsnCipherSuite{Name: "WRAP", Raw: raw}
		case 0x04:
			return RsnCipherSuite{Name: "CCMP", Raw: raw}
		case 0x05:
			return RsnCipherSuite{Name: "WEP104", Raw: raw}
		}
	}
	return RsnCipherSuite{Raw: raw}
}

// RsnAkmSuite names an 802.11i Authentication and Key Management suite.
type RsnAkmSuite struct {
	Name string // "EAP", "PSK", "EAPFT", "PSKFT", "EAP256", "PSK256", "SAE", "SUITEBEAP256" or "" for Unknown
	Raw  [4]byte
}

func (a RsnAkmSuite) IsUnknown() bool { return a.Name == "" }

func (a RsnAkmSuite) String() string {
	if a.IsUnknown() {
		return fmt.Sprintf("Unknown(% x)", a.Raw)
	}
	return a.Name
}

func decodeRsnAkmSuite(data []byte) RsnAkmSuite {
	var raw [4]byte
	copy(raw[:], data)
	if raw[0] == rsnOUI[0] && raw[1] == rsnOUI[1] && raw[2] == rsnOUI[2] {
		switch raw[3] {
		case 0x01:
			return RsnAkmSuite{Name: "EAP", Raw: raw}
		case 0x02:
			return RsnAkmSuite{Name: "PSK", Raw: raw}
		case 0x03:
			return RsnAkmSuite{Name: "EAPFT", Raw: raw}
		case 0x04:
			return RsnAkmSuite{Name: "PSKFT", Raw: raw}
		case 0x05:
			return RsnAkmSuite{Name: "EAP256", Raw: raw}
		case 0x06:
			return RsnAkmSuite{Name: "PSK256", Raw: raw}
		case 0x08:
			return RsnAkmSuite{Name: "SAE", Raw: raw}
		case 0x0b:
			return RsnAkmSuite{Name: "SUITEBEAP256", Raw: raw}
		}
	}
	return RsnAkmSuite{Raw: raw}
}

// RSNInformation is the decoded RSN Information element (48, 802.11i).
//
// The wire layout reads version and suite counts little-endian, per
// spec.md's explicit correction of the upstream implementation's
// native-endian bug (see DESIGN.md Open Question #1).
type RSNInformation struct {
	Version                uint16
	GroupCipherSuite       RsnCipherSuite
	PairwiseCipherSuites   []RsnCipherSuite
	AKMSuites              []RsnAkmSuite
	PreAuth                bool
	NoPairwise             bool
	PTKSAReplayCounter     uint8 // 2 bits
	GTKSAReplayCounter     uint8 // 2 bits
	MFPRequired            bool
	MFPCapable             bool
	JointMultiBand         bool
	Peerkey                bool
	ExtendedKeyID          bool
	OCVC                   bool
}

func decodeRSNInformation(data []byte) (RSNInformation, error) {
	if len(data) < 10 {
		return RSNInformation{}, fmt.Errorf("rsn information too short: %d bytes", len(data))
	}
	version := uint16(data[0]) | uint16(data[1])<<8
	if version != 1 {
		return RSNInformation{}, fmt.Errorf("unsupported rsn version %d", version)
	}
	group := decodeRsnCipherSuite(data[2:6])
	offset := 8
	pairwiseCount := int(uint16(data[6]) | uint16(data[7])<<8)

	var pairwise []RsnCipherSuite
	for i := 0; i < pairwiseCount; i++ {
		if len(data) < offset+4 {
			return RSNInformation{}, fmt.Errorf("rsn information too short for pairwise cipher suite %d", i)
		}
		pairwise = append(pairwise, decodeRsnCipherSuite(data[offset:offset+4]))
		offset += 4
	}

	if len(data) < offset+2 {
		return RSNInformation{}, fmt.Errorf("rsn information too short for akm suite count")
	}
	akmCount := int(uint16(data[offset]) | uint16(data[offset+1])<<8)
	offset += 2

	var akms []RsnAkmSuite
	for i := 0; i < akmCount; i++ {
		if len(data) < offset+4 {
			return RSNInformation{}, fmt.Errorf("rsn information too short for akm suite %d", i)
		}
		akms = append(akms, decodeRsnAkmSuite(data[offset:offset+4]))
		offset += 4
	}

	if len(data) < offset+2 {
		return RSNInformation{}, fmt.Errorf("rsn information too short for rsn capabilities")
	}
	caps := uint16(data[offset]) | uint16(data[offset+1])<<8

	return RSNInformation{
		Version:              version,
		GroupCipherSuite:     group,
		PairwiseCipherSuites: pairwise,
		AKMSuites:            akms,
		PreAuth:              caps&(1<<0) != 0,
		NoPairwise:           caps&(1<<1) != 0,
		PTKSAReplayCounter:   uint8((caps >> 2) & 0x3),
		GTKSAReplayCounter:   uint8((caps >> 4) & 0x3),
		MFPRequired:          caps&(1<<6) != 0,
		MFPCapable:           caps&(1<<7) != 0,
		JointMultiBand:       caps&(1<<8) != 0,
		Peerkey:              caps&(1<<9) != 0,
		ExtendedKeyID:        caps&(1<<13) != 0,
		OCVC:                 caps&(1<<14) != 0,
	}, nil
}

func encodeRSNInformation(r RSNInformation) []byte {
	b := make([]byte, 0, 18)
	b = append(b, byte(r.Version), byte(r.Version>>8))
	b = append(b, r.GroupCipherSuite.Raw[:]...)

	n := uint16(len(r.PairwiseCipherSuites))
	b = append(b, byte(n), byte(n>>8))
	for _, s := range r.PairwiseCipherSuites {
		b = append(b, s.Raw[:]...)
	}

	n = uint16(len(r.AKMSuites))
	b = append(b, byte(n), byte(n>>8))
	for _, a := range r.AKMSuites {
		b = append(b, a.Raw[:]...)
	}

	var caps uint16
	setCap := func(bit uint, v bool) {
		if v {
			caps |= 1 << bit
		}
	}
	setCap(0, r.PreAuth)
	setCap(1, r.NoPairwise)
	caps |= uint16(r.PTKSAReplayCounter&0x3) << 2
	caps |= uint16(r.GTKSAReplayCounter&0x3) << 4
	setCap(6, r.MFPRequired)
	setCap(7, r.MFPCapable)
	setCap(8, r.JointMultiBand)
	setCap(9, r.Peerkey)
	setCap(13, r.ExtendedKeyID)
	setCap(14, r.OCVC)
	b = append(b, byte(caps), byte(caps>>8))
	return b
}
