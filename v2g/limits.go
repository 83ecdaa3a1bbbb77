package v2g

// Per-field capacity constants derived from the ISO 15118-2 schemas'
// xs:maxLength / xs:maxOccurs restrictions and this profile's defaults
// (spec §4.4). Exceeding any of these during decode or encode yields
// CapacityExceeded (spec §3.2, §8 property 5).
const (
	MaxSessionIDBytes      = 8
	MaxEVCCIDBytes         = 6
	MaxEVSEIDChars         = 37
	MaxGenericStringChars  = 255
	MaxSalesTariffDescLen  = 32
	MaxSalesTariffEntries  = 1024
	MaxSAScheduleTuples    = 3
	MaxRelativeTimeEntries = 1024
	MaxPMaxScheduleEntries = 1024
	MaxServicesPerResponse = 8
	MaxPaymentOptions      = 2
	MaxCertificatesInChain = 4
	MaxCertificateBytes    = 800
	MaxSignatureBytes      = 256
	MaxDigestBytes         = 64
	MaxKeyBytes            = 512
	MaxMeterIDBytes        = 32
	MaxReceiptBytes        = 512
	MaxMultiplexedMessages = 1
	MaxChallengeBytes      = 16
	MaxEMAIDChars          = 20
	MaxRootCertIDs         = 4
)
