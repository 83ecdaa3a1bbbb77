package v2g

// The enumerations below mirror the ISO 15118-2 XML Schema simple-type
// enumerations named in spec §3.1/§4.4: each decodes as an
// ceil(log2(cardinality))-bit unsigned value, in the EXI-canonical order
// (alphabetical by local name in the schema, preserved verbatim per §4.4).

// EnergyTransferMode is the EnergyTransferModeType enumeration. Schema order
// is alphabetical by local name.
type EnergyTransferMode int

const (
	EnergyTransferModeACSinglePhase EnergyTransferMode = iota
	EnergyTransferModeACThreePhase
	EnergyTransferModeDCBasic
	EnergyTransferModeDCCombo
	EnergyTransferModeDCExtended
	EnergyTransferModeDCUnique
	energyTransferModeCardinality
)

// MaxSupportedEnergyTransferModes is the maximum number of distinct
// EnergyTransferMode values a SupportedEnergyTransferMode array may carry —
// one of each declared member (spec §8 scenario S3).
const MaxSupportedEnergyTransferModes = int(energyTransferModeCardinality)

// ResponseCode is the responseCodeType enumeration.
type ResponseCode int

const (
	ResponseCodeOK ResponseCode = iota
	ResponseCodeOKCertificateExpiresSoon
	ResponseCodeOKNewSessionEstablished
	ResponseCodeOKOldSessionJoined
	ResponseCodeOKPowerToleranceConfirmed
	ResponseCodeFailed
	ResponseCodeFailedSequenceError
	ResponseCodeFailedServiceIDInvalid
	ResponseCodeFailedUnknownSession
	ResponseCodeFailedServiceSelectionInvalid
	ResponseCodeFailedPaymentSelectionInvalid
	ResponseCodeFailedCertificateExpired
	ResponseCodeFailedSignatureError
	ResponseCodeFailedNoCertificateAvailable
	ResponseCodeFailedCertChainError
	ResponseCodeFailedChallengeInvalid
	ResponseCodeFailedContractCanceled
	ResponseCodeFailedWrongChargeParameter
	ResponseCodeFailedPowerDeliveryNotApplied
	ResponseCodeFailedTariffSelectionInvalid
	ResponseCodeFailedChargingProfileInvalid
	ResponseCodeFailedMeteringSignatureNotValid
	ResponseCodeFailedWrongEnergyTransferMode
	ResponseCodeFailedNoChargeServiceSelected
	ResponseCodeFailedWrongChargeParameterInvalid
	ResponseCodeFailedCertificateNotAllowedAtThisEVSE
	ResponseCodeFailedCertificateRevoked
	responseCodeCardinality
)

// EVSEProcessing is the EVSEProcessingType enumeration.
type EVSEProcessing int

const (
	EVSEProcessingFinished EVSEProcessing = iota
	EVSEProcessingOngoing
	EVSEProcessingOngoingWaitingForCustomerInteraction
	evseProcessingCardinality
)

// EVSENotification is the EVSENotificationType enumeration.
type EVSENotification int

const (
	EVSENotificationNone EVSENotification = iota
	EVSENotificationReNegotiation
	EVSENotificationStopCharging
	evseNotificationCardinality
)

// PaymentOption is the PaymentOptionType enumeration.
type PaymentOption int

const (
	PaymentOptionContract PaymentOption = iota
	PaymentOptionExternalPayment
	paymentOptionCardinality
)

// ServiceCategory is the serviceCategoryType enumeration.
type ServiceCategory int

const (
	ServiceCategoryEVCharging ServiceCategory = iota
	ServiceCategoryInternet
	ServiceCategoryOtherCustom
	ServiceCategoryContractCertificate
	serviceCategoryCardinality
)

// UnitSymbol is the unitSymbolType enumeration (physical unit of a
// PhysicalValueType).
type UnitSymbol int

const (
	UnitSymbolHours UnitSymbol = iota
	UnitSymbolMinutes
	UnitSymbolSeconds
	UnitSymbolAmpere
	UnitSymbolVolt
	UnitSymbolWatt
	UnitSymbolWattHours
	unitSymbolCardinality
)

// CostKind is the costKindType enumeration.
type CostKind int

const (
	CostKindRelativePricePercentage CostKind = iota
	CostKindRenewableGenerationPercentage
	CostKindCarbonDioxideEmission
	costKindCardinality
)

// ChargingSessionState is the chargingSessionType enumeration used by
// SessionStopReq (Terminate vs. Pause a session).
type ChargingSessionState int

const (
	ChargingSessionTerminate ChargingSessionState = iota
	ChargingSessionPause
	chargingSessionCardinality
)

// IsolationStatus is the isolationLevelType enumeration reported by
// CableCheckRes.
type IsolationStatus int

const (
	IsolationStatusInvalid IsolationStatus = iota
	IsolationStatusValid
	IsolationStatusWarning
	IsolationStatusFault
	IsolationStatusNoIMD
	isolationStatusCardinality
)

// DCEVSEStatusCode is the DC_EVSEStatusCodeType enumeration.
type DCEVSEStatusCode int

const (
	DCEVSEStatusCodeEVSENotReady DCEVSEStatusCode = iota
	DCEVSEStatusCodeEVSEReady
	DCEVSEStatusCodeEVSEShutdown
	DCEVSEStatusCodeEVSEUtilityInterruptEvent
	DCEVSEStatusCodeEVSEIsolationMonitoringActive
	DCEVSEStatusCodeEVSEEmergencyShutdown
	DCEVSEStatusCodeEVSEMalfunction
	DCEVSEStatusCodeReservedA
	DCEVSEStatusCodeReservedB
	DCEVSEStatusCodeReservedC
	dcEVSEStatusCodeCardinality
)

// DCEVErrorCode is the DC_EVStatusType.DC_EVErrorCode enumeration.
type DCEVErrorCode int

const (
	DCEVErrorCodeNoError DCEVErrorCode = iota
	DCEVErrorCodeFailRESSTemperatureInhibit
	DCEVErrorCodeFailEVShiftPosition
	DCEVErrorCodeFailChargerConnectorLockFault
	DCEVErrorCodeFailEVRESSMalfunction
	DCEVErrorCodeFailChargingCurrentDifferential
	DCEVErrorCodeFailChargingVoltageOutOfRange
	DCEVErrorCodeReserved_A
	DCEVErrorCodeReserved_B
	DCEVErrorCodeReserved_C
	DCEVErrorCodeFailChargingSystemIncompatibility
	DCEVErrorCodeNoData
	dcEVErrorCodeCardinality
)
