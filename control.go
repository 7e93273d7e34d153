// Copyright (c) 2022 0x9ef. All rights reserved.
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.
package dot11

// RTSFrame is a Request-To-Send control frame: FrameControl, duration,
// receiver address, transmitter address. §4.6.
type RTSFrame struct {
	FrameControl FrameControl
	Duration     uint16
	Address1     MacAddress // receiver / destination
	Address2     MacAddress // transmitter / source
}

func decodeRTSFrame(fc FrameControl, b []byte) (RTSFrame, error) {
	if len(b) < 14 {
		return RTSFrame{}, newIncomplete(14, len(b))
	}
	f := RTSFrame{FrameControl: fc, Duration: uint16(b[0]) | uint16(b[1])<<8}
	copy(f.Address1[:], b[2:8])
	copy(f.Address2[:], b[8:14])
	return f, nil
}

func (f RTSFrame) Encode() []byte {
	b := make([]byte, 0, 14)
	b = append(b, byte(f.Duration), byte(f.Duration>>8))
	b = append(b, f.Address1[:]...)
	b = append(b, f.Address2[:]...)
	return b
}

func (f RTSFrame) Src() *MacAddress  { a := f.Address2; return &a }
func (f RTSFrame) Dest() MacAddress  { return f.Address1 }
func (f RTSFrame) BSSID() *MacAddress { return nil }

// CTSFrame is a Clear-To-Send control frame: FrameControl, duration,
// receiver address only. §4.6.
type CTSFrame struct {
	FrameControl FrameControl
	Duration     uint16
	Address1     MacAddress
}

func decodeCTSFrame(fc FrameControl, b []byte) (CTSFrame, error) {
	if len(b) < 8 {
		return CTSFrame{}, newIncomplete(8, len(b))
	}
	f := CTSFrame{FrameControl: fc, Duration: uint16(b[0]) | uint16(b[1])<<8}
	copy(f.Address1[:], b[2:8])
	return f, nil
}

func (f CTSFrame) Encode() []byte {
	b := make([]byte, 0, 8)
	b = append(b, byte(f.Duration), byte(f.Duration>>8))
	b = append(b, f.Address1[:]...)
	return b
}

func (f CTSFrame) Src() *MacAddress  { return nil }
func (f CTSFrame) Dest() MacAddress  { return f.Address1 }
func (f CTSFrame) BSSID() *MacAddress { return nil }

// ACKFrame is an Acknowledgement control frame: FrameControl, duration,
// receiver address only. Same wire shape as CTSFrame. §4.6.
type ACKFrame struct {
	FrameControl FrameControl
	Duration     uint16
	Address1     MacAddress
}

func decodeACKFrame(fc FrameControl, b []byte) (ACKFrame, error) {
	if len(b) < 8 {
		return ACKFrame{}, newIncomplete(8, len(b))
	}
	f := ACKFrame{FrameControl: fc, Duration: uint16(b[0]) | uint16(b[1])<<8}
	copy(f.Address1[:], b[2:8])
	return f, nil
}

func (f ACKFrame) Encode() []byte {
	b := make([]byte, 0, 8)
	b = append(b, byte(f.Duration), byte(f.Duration>>8))
	b = append(b, f.Address1[:]...)
	return b
}

func (f ACKFrame) Src() *MacAddress  { return nil }
func (f ACKFrame) Dest() MacAddress  { return f.Address1 }
func (f ACKFrame) BSSID() *MacAddress { return nil }

// BlockAckMode is the BlockAck/BlockAckRequest control field's
// (multi_tid, compressed_bitmap) mode table, §4.6.
type BlockAckMode uint8

const (
	BlockAckModeBasic      BlockAckMode = iota // multi_tid=0, compressed=0
	BlockAckModeCompressed                     // multi_tid=0, compressed=1
	BlockAckModeReserved                       // multi_tid=1, compressed=0
	BlockAckModeMultiTid                       // multi_tid=1, compressed=1
)

func (m BlockAckMode) String() string {
	switch m {
	case BlockAckModeBasic:
		return "Basic"
	case BlockAckModeCompressed:
		return "Compressed"
	case BlockAckModeMultiTid:
		return "MultiTid"
	default:
		return "Reserved"
	}
}

// blockAckControl is the decoded 2-byte BAR/BA control field: a
// little-endian u16 with policy at bit 0, multi_tid at bit 1,
// compressed_bitmap at bit 2, and tid_info in bits 12..15.
type blockAckControl struct {
	Policy bool
	Mode   BlockAckMode
	TID    uint8
}

func decodeBlockAckControl(b []byte) blockAckControl {
	word := uint16(b[0]) | uint16(b[1])<<8
	multiTid := word&(1<<1) != 0
	compressed := word&(1<<2) != 0
	var mode BlockAckMode
	switch {
	case !multiTid && !compressed:
		mode = BlockAckModeBasic
	case !multiTid && compressed:
		mode = BlockAckModeCompressed
	case multiTid && !compressed:
		mode = BlockAckModeReserved
	default:
		mode = BlockAckModeMultiTid
	}
	return blockAckControl{
		Policy: word&(1<<0) != 0,
		Mode:   mode,
		TID:    uint8((word >> 12) & 0xF),
	}
}

func encodeBlockAckControl(c blockAckControl) []byte {
	var word uint16
	if c.Policy {
		word |= 1 << 0
	}
	switch c.Mode {
	case BlockAckModeCompressed:
		word |= 1 << 2
	case BlockAckModeReserved:
		word |= 1 << 1
	case BlockAckModeMultiTid:
		word |= 1<<1 | 1<<2
	}
	word |= uint16(c.TID&0xF) << 12
	return []byte{byte(word), byte(word >> 8)}
}

// TIDSequenceControl pairs a traffic identifier with the sequence
// control value requested or acknowledged for it.
type TIDSequenceControl struct {
	TID             uint8
	SequenceControl SequenceControl
}

// BlockAckRequestFrame is a BlockAckRequest control frame: FrameControl,
// duration, receiver/transmitter addresses, BAR control, and a mode
// dependent body. §4.6.
type BlockAckRequestFrame struct {
	FrameControl FrameControl
	Duration     uint16
	Address1     MacAddress // receiver
	Address2     MacAddress // transmitter
	Policy       bool
	Mode         BlockAckMode
	RequestedTIDs []TIDSequenceControl
}

func decodeBlockAckRequestFrame(fc FrameControl, b []byte) (BlockAckRequestFrame, error) {
	if len(b) < 16 {
		return BlockAckRequestFrame{}, newIncomplete(16, len(b))
	}
	f := BlockAckRequestFrame{FrameControl: fc, Duration: uint16(b[0]) | uint16(b[1])<<8}
	copy(f.Address1[:], b[2:8])
	copy(f.Address2[:], b[8:14])
	ctrl := decodeBlockAckControl(b[14:16])
	f.Policy = ctrl.Policy
	f.Mode = ctrl.Mode
	rest := b[16:]

	switch ctrl.Mode {
	case BlockAckModeBasic, BlockAckModeCompressed:
		if len(rest) < 2 {
			return BlockAckRequestFrame{}, newIncomplete(2, len(rest))
		}
		sc, err := DecodeSequenceControl(rest[:2])
		if err != nil {
			return BlockAckRequestFrame{}, err
		}
		f.RequestedTIDs = []TIDSequenceControl{{TID: ctrl.TID, SequenceControl: sc}}
	case BlockAckModeMultiTid:
		count := int(ctrl.TID) + 1
		for i := 0; i < count; i++ {
			if len(rest) < 4 {
				return BlockAckRequestFrame{}, newIncomplete(4, len(rest))
			}
			perTid := uint16(rest[0]) | uint16(rest[1])<<8
			sc, err := DecodeSequenceControl(rest[2:4])
			if err != nil {
				return BlockAckRequestFrame{}, err
			}
			f.RequestedTIDs = append(f.RequestedTIDs, TIDSequenceControl{
				TID:             uint8((perTid >> 12) & 0xF),
				SequenceControl: sc,
			})
			rest = rest[4:]
		}
	default:
		return BlockAckRequestFrame{}, newFailure("block ack request: reserved mode", b)
	}
	return f, nil
}

func (f BlockAckRequestFrame) Encode() []byte {
	b := make([]byte, 0, 18)
	b = append(b, byte(f.Duration), byte(f.Duration>>8))
	b = append(b, f.Address1[:]...)
	b = append(b, f.Address2[:]...)

	ctrl := blockAckControl{Policy: f.Policy, Mode: f.Mode}
	if f.Mode == BlockAckModeMultiTid && len(f.RequestedTIDs) > 0 {
		ctrl.TID = uint8(len(f.RequestedTIDs) - 1)
	} else if len(f.RequestedTIDs) > 0 {
		ctrl.TID = f.RequestedTIDs[0].TID
	}
	b = append(b, encodeBlockAckControl(ctrl)...)

	switch f.Mode {
	case BlockAckModeBasic, BlockAckModeCompressed:
		if len(f.RequestedTIDs) > 0 {
			b = append(b, f.RequestedTIDs[0].SequenceControl.Encode()...)
		}
	case BlockAckModeMultiTid:
		for _, r := range f.RequestedTIDs {
			perTid := uint16(r.TID&0xF) << 12
			b = append(b, byte(perTid), byte(perTid>>8))
			b = append(b, r.SequenceControl.Encode()...)
		}
	}
	return b
}

func (f BlockAckRequestFrame) Src() *MacAddress  { a := f.Address2; return &a }
func (f BlockAckRequestFrame) Dest() MacAddress  { return f.Address1 }
func (f BlockAckRequestFrame) BSSID() *MacAddress { return nil }

// CompressedBlockAckEntry is a single TID's acknowledgment within a
// CompressedBlockAck body: a starting sequence control plus a 64-bit
// bitmap, bit i acknowledging frame (start_seq + i) mod 4096.
type CompressedBlockAckEntry struct {
	TID        uint8
	StartingSequenceControl SequenceControl
	Bitmap     uint64
}

// AckedSequences expands the bitmap into the list of acknowledged
// 12-bit sequence numbers, in ascending bit order.
func (e CompressedBlockAckEntry) AckedSequences() []uint16 {
	var acked []uint16
	for i := uint(0); i < 64; i++ {
		if e.Bitmap&(1<<i) != 0 {
			acked = append(acked, (e.StartingSequenceControl.SequenceNumber+uint16(i))%4096)
		}
	}
	return acked
}

// BasicBlockAckEntry is a single TID's acknowledgment within a
// BasicBlockAck body: a starting sequence control plus the full
// 128-byte (1024-fragment) bitmap, preserved verbatim.
type BasicBlockAckEntry struct {
	TID        uint8
	StartingSequenceControl SequenceControl
	Bitmap     [128]byte
}

// BlockAckFrame is a BlockAck control frame acknowledging one or more
// TIDs, in one of three mutually exclusive body shapes selected by
// Mode. §4.6.
type BlockAckFrame struct {
	FrameControl FrameControl
	Duration     uint16
	Address1     MacAddress // receiver
	Address2     MacAddress // transmitter
	Policy       bool
	Mode         BlockAckMode

	Basic      []BasicBlockAckEntry
	Compressed []CompressedBlockAckEntry
	MultiTid   []TIDSequenceControl
}

func decodeBlockAckFrame(fc FrameControl, b []byte) (BlockAckFrame, error) {
	if len(b) < 16 {
		return BlockAckFrame{}, newIncomplete(16, len(b))
	}
	f := BlockAckFrame{FrameControl: fc, Duration: uint16(b[0]) | uint16(b[1])<<8}
	copy(f.Address1[:], b[2:8])
	copy(f.Address2[:], b[8:14])
	ctrl := decodeBlockAckControl(b[14:16])
	f.Policy = ctrl.Policy
	f.Mode = ctrl.Mode
	rest := b[16:]

	switch ctrl.Mode {
	case BlockAckModeBasic:
		if len(rest) < 2+128 {
			return BlockAckFrame{}, newIncomplete(2+128, len(rest))
		}
		sc, err := DecodeSequenceControl(rest[:2])
		if err != nil {
			return BlockAckFrame{}, err
		}
		var bitmap [128]byte
		copy(bitmap[:], rest[2:2+128])
		f.Basic = []BasicBlockAckEntry{{TID: ctrl.TID, StartingSequenceControl: sc, Bitmap: bitmap}}
	case BlockAckModeCompressed:
		if len(rest) < 2+8 {
			return BlockAckFrame{}, newIncomplete(2+8, len(rest))
		}
		sc, err := DecodeSequenceControl(rest[:2])
		if err != nil {
			return BlockAckFrame{}, err
		}
		bitmap := uint64(0)
		for i := 0; i < 8; i++ {
			bitmap |= uint64(rest[2+i]) << (8 * i)
		}
		f.Compressed = []CompressedBlockAckEntry{{TID: ctrl.TID, StartingSequenceControl: sc, Bitmap: bitmap}}
	case BlockAckModeMultiTid:
		count := int(ctrl.TID) + 1
		for i := 0; i < count; i++ {
			if len(rest) < 4 {
				return BlockAckFrame{}, newIncomplete(4, len(rest))
			}
			perTid := uint16(rest[0]) | uint16(rest[1])<<8
			sc, err := DecodeSequenceControl(rest[2:4])
			if err != nil {
				return BlockAckFrame{}, err
			}
			f.MultiTid = append(f.MultiTid, TIDSequenceControl{
				TID:             uint8((perTid >> 12) & 0xF),
				SequenceControl: sc,
			})
			rest = rest[4:]
		}
	default:
		return BlockAckFrame{}, newFailure("block ack: reserved mode", b)
	}
	return f, nil
}

func (f BlockAckFrame) Encode() []byte {
	b := make([]byte, 0, 32)
	b = append(b, byte(f.Duration), byte(f.Duration>>8))
	b = append(b, f.Address1[:]...)
	b = append(b, f.Address2[:]...)

	ctrl := blockAckControl{Policy: f.Policy, Mode: f.Mode}
	switch f.Mode {
	case BlockAckModeBasic:
		if len(f.Basic) > 0 {
			ctrl.TID = f.Basic[0].TID
		}
	case BlockAckModeCompressed:
		if len(f.Compressed) > 0 {
			ctrl.TID = f.Compressed[0].TID
		}
	case BlockAckModeMultiTid:
		if len(f.MultiTid) > 0 {
			ctrl.TID = uint8(len(f.MultiTid) - 1)
		}
	}
	b = append(b, encodeBlockAckControl(ctrl)...)

	switch f.Mode {
	case BlockAckModeBasic:
		if len(f.Basic) > 0 {
			e := f.Basic[0]
			b = append(b, e.StartingSequenceControl.Encode()...)
			b = append(b, e.Bitmap[:]...)
		}
	case BlockAckModeCompressed:
		if len(f.Compressed) > 0 {
			e := f.Compressed[0]
			b = append(b, e.StartingSequenceControl.Encode()...)
			for i := 0; i < 8; i++ {
				b = append(b, byte(e.Bitmap>>(8*i)))
			}
		}
	case BlockAckModeMultiTid:
		for _, r := range f.MultiTid {
			perTid := uint16(r.TID&0xF) << 12
			b = append(b, byte(perTid), byte(perTid>>8))
			b = append(b, r.SequenceControl.Encode()...)
		}
	}
	return b
}

func (f BlockAckFrame) Src() *MacAddress  { a := f.Address2; return &a }
func (f BlockAckFrame) Dest() MacAddress  { return f.Address1 }
func (f BlockAckFrame) BSSID() *MacAddress { return nil }
