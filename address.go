// Copyright (c) 2022 0x9ef. All rights reserved.
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.
package dot11

import (
	"fmt"
	"strconv"
	"strings"
)

// BroadcastAddr addresses every station on the medium.
var BroadcastAddr = MacAddress{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

// ZeroAddr is the unset/all-zero address, used as a placeholder in some
// vendor extensions and as the encoder default.
var ZeroAddr = MacAddress{0x00, 0x00, 0x00, 0x00, 0x00, 0x00}

// MacAddress is a IEEE 802 media access control address: exactly six
// octets, rendered as lower-hex colon-separated groups.
type MacAddress [6]byte

// NewMacAddress builds a MacAddress from six individual octets.
func NewMacAddress(b0, b1, b2, b3, b4, b5 byte) MacAddress {
	return MacAddress{b0, b1, b2, b3, b4, b5}
}

// ParseMacAddress parses a MAC address from its "xx:xx:xx:xx:xx:xx" form.
func ParseMacAddress(addr string) (MacAddress, error) {
	parts := strings.SplitN(addr, ":", 6)
	if len(parts) != 6 {
		return MacAddress{}, fmt.Errorf("dot11: invalid mac address %q: expected 6 colon-separated groups", addr)
	}
	var m MacAddress
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 16, 8)
		if err != nil {
			return MacAddress{}, fmt.Errorf("dot11: invalid mac address %q: %w", addr, err)
		}
		m[i] = byte(v)
	}
	return m, nil
}

// Oui returns the Organizationally Unique Identifier (the first 3 octets).
func (m MacAddress) Oui() [3]byte { return [3]byte{m[0], m[1], m[2]} }

// Nic returns the NIC-specific portion (the last 3 octets).
func (m MacAddress) Nic() [3]byte { return [3]byte{m[3], m[4], m[5]} }

// String renders the address as lower-hex colon-separated octets.
func (m MacAddress) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", m[0], m[1], m[2], m[3], m[4], m[5])
}

// Encode returns the 6-byte wire representation.
func (m MacAddress) Encode() []byte {
	b := make([]byte, 6)
	copy(b, m[:])
	return b
}

// IsBroadcast reports whether the address is ff:ff:ff:ff:ff:ff.
func (m MacAddress) IsBroadcast() bool {
	return m == BroadcastAddr
}

// IsZero reports whether the address is all zero.
func (m MacAddress) IsZero() bool {
	return m == ZeroAddr
}

// IsMulticast reports whether the individual/group bit (LSB of the first
// octet) is set.
func (m MacAddress) IsMulticast() bool {
	return m[0]&0x01 != 0
}

// IsIPv6Multicast reports whether the address falls in the 33:33:*
// range reserved for IPv6 multicast.
func (m MacAddress) IsIPv6Multicast() bool {
	return m[0] == 0x33 && m[1] == 0x33
}

// IsIPv6NeighborDiscovery reports whether the address is the
// 33:33:00:00:00:00 IPv6 neighbor-discovery address.
func (m MacAddress) IsIPv6NeighborDiscovery() bool {
	return m == (MacAddress{0x33, 0x33, 0x00, 0x00, 0x00, 0x00})
}
