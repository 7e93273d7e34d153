// Copyright (c) 2022 0x9ef. All rights reserved.
// Use of this source code is governed by an MIT license
// that can be found in the LICENSE file.
package dot11

// extCapsBits is the length, in bits, of the Extended Capabilities
// bitmap (element 127, §4.5.4). Input shorter than this is
// right-extended with zero bits; output is truncated after the last
// set bit's byte.
const extCapsBits = 90
const extCapsBytes = (extCapsBits + 7) / 8

// ExtendedCapabilities is the decoded 90-bit Extended Capabilities
// bitmap. Two positions are multi-bit fields rather than flags;
// everything else is a single named boolean. Bit positions with no
// assigned meaning in the standard are left unnamed (not represented).
type ExtendedCapabilities struct {
	BSSCoexistenceManagement      bool // bit 0
	ExtendedChannelSwitching      bool // bit 2
	PSMPCapability                bool // bit 4
	SPSMPSupport                  bool // bit 6
	Event                         bool // bit 7
	Diagnostics                   bool // bit 8
	MulticastDiagnostics          bool // bit 9
	LocationTracking              bool // bit 10
	FMS                           bool // bit 11
	ProxyARPService               bool // bit 12
	CollocatedInterferenceReport  bool // bit 13
	CivicLocation                 bool // bit 14
	GeospatialLocation            bool // bit 15
	TFS                           bool // bit 16
	WNMSleepMode                  bool // bit 17
	TIMBroadcast                  bool // bit 18
	BSSTransition                 bool // bit 19
	QoSTrafficCapability          bool // bit 20
	ACStationCount                bool // bit 21
	MultipleBSSID                 bool // bit 22
	TimingMeasurement             bool // bit 23
	ChannelUsage                  bool // bit 24
	SSIDList                      bool // bit 25
	DMS                           bool // bit 26
	UTCTSFOffset                  bool // bit 27
	TDLSPeerUAPSDBufferSTA        bool // bit 28
	TDLSPeerPSMSupport            bool // bit 29
	TDLSChannelSwitching          bool // bit 30
	Interworking                  bool // bit 31
	QoSMap                        bool // bit 32
	EBR                           bool // bit 33
	SSPNInterface                 bool // bit 34
	MSGCFCapability               bool // bit 36
	TDLSSupport                   bool // bit 37
	TDLSProhibited                bool // bit 38
	TDLSChannelSwitchingProhibited bool // bit 39
	RejectUnadmittedFrame         bool // bit 40
	ServiceIntervalGranularity    uint8 // bits 41..=43
	IdentifierLocation            bool // bit 44
	UAPSDCoexistence               bool // bit 45
	WNMNotification                bool // bit 46
	QABCapability                   bool // bit 47
	UTF8SSID                        bool // bit 48
	QMFActivated                    bool // bit 49
	QMFReconfigurationActivated     bool // bit 50
	RobustAVStreaming               bool // bit 51
	AdvancedGCR                     bool // bit 52
	MeshGCR                         bool // bit 53
	SCS                             bool // bit 54
	QLoadReport                     bool // bit 55
	AlternateEDCA                   bool // bit 56
	UnprotectedTXOPNegotiation      bool // bit 57
	ProtectedTXOPNegotiation        bool // bit 58
	ProtectedQLoadReport            bool // bit 60
	TDLSWiderBandwidth              bool // bit 61
	OperatingModeNotification       bool // bit 62
	MaxNumberOfMSDUsInAMSDU         uint8 // bits 63..=64
	ChannelScheduleManagement       bool // bit 65
	GeodatabaseInbandEnablingSignal bool // bit 66
	NetworkChannelControl           bool // bit 67
	WhiteSpaceMap                   bool // bit 68
	ChannelAvailabilityQuery        bool // bit 69
	FTMResponder                    bool // bit 70
	FTMInitiator                    bool // bit 71
	ExtendedSpectrumManagement      bool // bit 73
	FutureChannelGuidance           bool // bit 74
}

func decodeExtendedCapabilities(data []byte) (ExtendedCapabilities, error) {
	b := make([]byte, extCapsBytes)
	copy(b, data)

	bit := func(i int) bool { return bitAt(b, i) }

	return ExtendedCapabilities{
		BSSCoexistenceManagement:       bit(0),
		ExtendedChannelSwitching:       bit(2),
		PSMPCapability:                 bit(4),
		SPSMPSupport:                   bit(6),
		Event:                          bit(7),
		Diagnostics:                    bit(8),
		MulticastDiagnostics:           bit(9),
		LocationTracking:               bit(10),
		FMS:                            bit(11),
		ProxyARPService:                bit(12),
		CollocatedInterferenceReport:   bit(13),
		CivicLocation:                  bit(14),
		GeospatialLocation:             bit(15),
		TFS:                            bit(16),
		WNMSleepMode:                   bit(17),
		TIMBroadcast:                   bit(18),
		BSSTransition:                  bit(19),
		QoSTrafficCapability:           bit(20),
		ACStationCount:                 bit(21),
		MultipleBSSID:                  bit(22),
		TimingMeasurement:              bit(23),
		ChannelUsage:                   bit(24),
		SSIDList:                       bit(25),
		DMS:                            bit(26),
		UTCTSFOffset:                   bit(27),
		TDLSPeerUAPSDBufferSTA:         bit(28),
		TDLSPeerPSMSupport:             bit(29),
		TDLSChannelSwitching:           bit(30),
		Interworking:                   bit(31),
		QoSMap:                         bit(32),
		EBR:                            bit(33),
		SSPNInterface:                  bit(34),
		MSGCFCapability:                bit(36),
		TDLSSupport:                    bit(37),
		TDLSProhibited:                 bit(38),
		TDLSChannelSwitchingProhibited: bit(39),
		RejectUnadmittedFrame:          bit(40),
		ServiceIntervalGranularity:     bitsLSB(b, 41, 43),
		IdentifierLocation:             bit(44),
		UAPSDCoexistence:               bit(45),
		WNMNotification:                bit(46),
		QABCapability:                  bit(47),
		UTF8SSID:                       bit(48),
		QMFActivated:                   bit(49),
		QMFReconfigurationActivated:    bit(50),
		RobustAVStreaming:              bit(51),
		AdvancedGCR:                    bit(52),
		MeshGCR:                        bit(53),
		SCS:                            bit(54),
		QLoadReport:                    bit(55),
		AlternateEDCA:                  bit(56),
		UnprotectedTXOPNegotiation:     bit(57),
		ProtectedTXOPNegotiation:       bit(58),
		ProtectedQLoadReport:           bit(60),
		TDLSWiderBandwidth:             bit(61),
		OperatingModeNotification:      bit(62),
		MaxNumberOfMSDUsInAMSDU:        bitsLSB(b, 63, 64),
		ChannelScheduleManagement:       bit(65),
		GeodatabaseInbandEnablingSignal: bit(66),
		NetworkChannelControl:           bit(67),
		WhiteSpaceMap:                   bit(68),
		ChannelAvailabilityQuery:        bit(69),
		FTMResponder:                    bit(70),
		FTMInitiator:                    bit(71),
		ExtendedSpectrumManagement:      bit(73),
		FutureChannelGuidance:           bit(74),
	}, nil
}

// encodeExtendedCapabilities packs the bitmap LSB-first into a 90-bit
// (12-byte) buffer and strips trailing all-zero bytes, per spec.md
// §4.5.4's encoder rule.
func encodeExtendedCapabilities(c ExtendedCapabilities) []byte {
	b := make([]byte, extCapsBytes)
	set := func(i int, v bool) { setBit(b, i, v) }

	set(0, c.BSSCoexistenceManagement)
	set(2, c.ExtendedChannelSwitching)
	set(4, c.PSMPCapability)
	set(6, c.SPSMPSupport)
	set(7, c.Event)
	set(8, c.Diagnostics)
	set(9, c.MulticastDiagnostics)
	set(10, c.LocationTracking)
	set(11, c.FMS)
	set(12, c.ProxyARPService)
	set(13, c.CollocatedInterferenceReport)
	set(14, c.CivicLocation)
	set(15, c.GeospatialLocation)
	set(16, c.TFS)
	set(17, c.WNMSleepMode)
	set(18, c.TIMBroadcast)
	set(19, c.BSSTransition)
	set(20, c.QoSTrafficCapability)
	set(21, c.ACStationCount)
	set(22, c.MultipleBSSID)
	set(23, c.TimingMeasurement)
	set(24, c.ChannelUsage)
	set(25, c.SSIDList)
	set(26, c.DMS)
	set(27, c.UTCTSFOffset)
	set(28, c.TDLSPeerUAPSDBufferSTA)
	set(29, c.TDLSPeerPSMSupport)
	set(30, c.TDLSChannelSwitching)
	set(31, c.Interworking)
	set(32, c.QoSMap)
	set(33, c.EBR)
	set(34, c.SSPNInterface)
	set(36, c.MSGCFCapability)
	set(37, c.TDLSSupport)
	set(38, c.TDLSProhibited)
	set(39, c.TDLSChannelSwitchingProhibited)
	set(40, c.RejectUnadmittedFrame)
	setBitsLSB(b, 41, 43, c.ServiceIntervalGranularity)
	set(44, c.IdentifierLocation)
	set(45, c.UAPSDCoexistence)
	set(46, c.WNMNotification)
	set(47, c.QABCapability)
	set(48, c.UTF8SSID)
	set(49, c.QMFActivated)
	set(50, c.QMFReconfigurationActivated)
	set(51, c.RobustAVStreaming)
	set(52, c.AdvancedGCR)
	set(53, c.MeshGCR)
	set(54, c.SCS)
	set(55, c.QLoadReport)
	set(56, c.AlternateEDCA)
	set(57, c.UnprotectedTXOPNegotiation)
	set(58, c.ProtectedTXOPNegotiation)
	set(60, c.ProtectedQLoadReport)
	set(61, c.TDLSWiderBandwidth)
	set(62, c.OperatingModeNotification)
	setBitsLSB(b, 63, 64, c.MaxNumberOfMSDUsInAMSDU)
	set(65, c.ChannelScheduleManagement)
	set(66, c.GeodatabaseInbandEnablingSignal)
	set(67, c.NetworkChannelControl)
	set(68, c.WhiteSpaceMap)
	set(69, c.ChannelAvailabilityQuery)
	set(70, c.FTMResponder)
	set(71, c.FTMInitiator)
	set(73, c.ExtendedSpectrumManagement)
	set(74, c.FutureChannelGuidance)

	last := -1
	for i, v := range b {
		if v != 0 {
			last = i
		}
	}
	return b[:last+1]
}
