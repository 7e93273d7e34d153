// Copyright (c) 2022 0x9ef. All rights reserved.
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.
package dot11

import "fmt"

// wpsOUI is the Microsoft vendor OUI (00-50-F2) shared by the WPA1
// vendor IE and the WPS vendor IE, distinguished by OUI type.
var wpsOUI = [3]byte{0x00, 0x50, 0xF2}

const (
	wpaOUIType = uint8(1)
	wpsOUIType = uint8(4)
)

// WpaCipherSuite names a WPA1 (00-50-F2 OUI) cipher suite.
type WpaCipherSuite struct {
	Name string // "None", "WEP", "TKIP", "CCMP", "WEP104" or "" for Unknown
	Raw  [4]byte
}

func (c WpaCipherSuite) IsUnknown() bool { return c.Name == "" }

func (c WpaCipherSuite) String() string {
	if c.IsUnknown() {
		return fmt.Sprintf("Unknown(% x)", c.Raw)
	}
	return c.Name
}

func decodeWpaCipherSuite(data []byte) WpaCipherSuite {
	var raw [4]byte
	copy(raw[:], data)
	if raw[0] == wpsOUI[0] && raw[1] == wpsOUI[1] && raw[2] == wpsOUI[2] {
		switch raw[3] {
		case 0x00:
			return WpaCipherSuite{Name: "None", Raw: raw}
		case 0x01:
			return WpaCipherSuite{Name: "WEP", Raw: raw}
		case 0x02:
			return WpaCipherSuite{Name: "TKIP", Raw: raw}
		case 0x04:
			return WpaCipherSuite{Name: "CCMP", Raw: raw}
		case 0x05:
			return WpaCipherSuite{Name: "WEP104", Raw: raw}
		}
	}
	return WpaCipherSuite{Raw: raw}
}

// WpaAkmSuite names a WPA1 Authentication and Key Management suite.
type WpaAkmSuite struct {
	Name string // "8021X", "PSK" or "" for Unknown
	Raw  [4]byte
}

func (a WpaAkmSuite) IsUnknown() bool { return a.Name == "" }

func (a WpaAkmSuite) String() string {
	if a.IsUnknown() {
		return fmt.Sprintf("Unknown(% x)", a.Raw)
	}
	return a.Name
}

func decodeWpaAkmSuite(data []byte) WpaAkmSuite {
	var raw [4]byte
	copy(raw[:], data)
	if raw[0] == wpsOUI[0] && raw[1] == wpsOUI[1] && raw[2] == wpsOUI[2] {
		switch raw[3] {
		case 0x01:
			return WpaAkmSuite{Name: "8021X", Raw: raw}
		case 0x02:
			return WpaAkmSuite{Name: "PSK", Raw: raw}
		}
	}
	return WpaAkmSuite{Raw: raw}
}

// WPAInformation is the decoded WPA1 vendor element payload (the bytes
// following the 00-50-F2/01 OUI+type prefix inside element 221).
//
// Unlike every other optional IE, a malformed WPA1 vendor element is a
// hard failure (spec.md §7): the payload claims to be WPA1 by OUI and
// type, so a parse error here means the frame itself is malformed
// rather than merely carrying an IE this decoder doesn't recognize.
type WPAInformation struct {
	Version              uint16
	MulticastCipherSuite WpaCipherSuite
	UnicastCipherSuites  []WpaCipherSuite
	AKMSuites            []WpaAkmSuite
}

func decodeWPAInformation(data []byte) (WPAInformation, error) {
	if len(data) < 8 {
		return WPAInformation{}, fmt.Errorf("wpa information too short: %d bytes", len(data))
	}
	version := uint16(data[0]) | uint16(data[1])<<8
	if version != 1 {
		return WPAInformation{}, fmt.Errorf("unsupported wpa version %d", version)
	}
	multicast := decodeWpaCipherSuite(data[2:6])
	offset := 8
	unicastCount := int(uint16(data[6]) | uint16(data[7])<<8)

	var unicast []WpaCipherSuite
	for i := 0; i < unicastCount; i++ {
		if len(data) < offset+4 {
			return WPAInformation{}, fmt.Errorf("wpa information too short for unicast cipher suite %d", i)
		}
		unicast = append(unicast, decodeWpaCipherSuite(data[offset:offset+4]))
		offset += 4
	}

	if len(data) < offset+2 {
		return WPAInformation{}, fmt.Errorf("wpa information too short for akm suite count")
	}
	akmCount := int(uint16(data[offset]) | uint16(data[offset+1])<<8)
	offset += 2

	var akms []WpaAkmSuite
	for i := 0; i < akmCount; i++ {
		if len(data) < offset+4 {
			return WPAInformation{}, fmt.Errorf("wpa information too short for akm suite %d", i)
		}
		akms = append(akms, decodeWpaAkmSuite(data[offset:offset+4]))
		offset += 4
	}

	return WPAInformation{
		Version:              version,
		MulticastCipherSuite: multicast,
		UnicastCipherSuites:  unicast,
		AKMSuites:            akms,
	}, nil
}

func encodeWPAInformation(w WPAInformation) []byte {
	b := make([]byte, 0, 18)
	b = append(b, byte(w.Version), byte(w.Version>>8))
	b = append(b, w.MulticastCipherSuite.Raw[:]...)

	n := uint16(len(w.UnicastCipherSuites))
	b = append(b, byte(n), byte(n>>8))
	for _, s := range w.UnicastCipherSuites {
		b = append(b, s.Raw[:]...)
	}

	n = uint16(len(w.AKMSuites))
	b = append(b, byte(n), byte(n>>8))
	for _, a := range w.AKMSuites {
		b = append(b, a.Raw[:]...)
	}
	return b
}
