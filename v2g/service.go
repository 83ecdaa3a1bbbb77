package v2g

import (
	"github.com/v2g-exi/codec/grammar"
	"github.com/v2g-exi/codec/v2gerr"
	"github.com/v2g-exi/codec/wire"
)

// Service is ServiceType: a single offered service (charging or a
// value-added service) identified by ServiceID, with a free-form name,
// a category, and whether it requires its own payment.
type Service struct {
	ID             uint16
	Name           string
	HasName        bool
	Category       ServiceCategory
	Scope          string
	HasScope       bool
	IsFreeOfCharge bool
}

const (
	serviceS0 = iota
	serviceS1
	serviceS2
	serviceS3
	serviceS4
)

func serviceTable(v *Service) grammar.Table {
	return grammar.Table{
		serviceS0: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: serviceS1, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeVarUint(r, 16)
					v.ID = uint16(val)
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeVarUint(w, uint64(v.ID))
				},
			},
		}},
		serviceS1: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: serviceS2, Simple: true,
				Present: func() bool { return v.HasName },
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeString(r, MaxGenericStringChars)
					v.Name = val
					v.HasName = true
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeString(w, v.Name, MaxGenericStringChars)
				},
			},
			{Kind: grammar.EventEnd, Next: serviceS2},
		}},
		serviceS2: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: serviceS3, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeEnum(r, int(serviceCategoryCardinality))
					v.Category = ServiceCategory(val)
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeEnum(w, int(v.Category), int(serviceCategoryCardinality))
				},
			},
		}},
		serviceS3: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: serviceS4, Simple: true,
				Present: func() bool { return v.HasScope },
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeString(r, MaxGenericStringChars)
					v.Scope = val
					v.HasScope = true
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeString(w, v.Scope, MaxGenericStringChars)
				},
			},
			{Kind: grammar.EventEnd, Next: serviceS4},
		}},
		serviceS4: {Transitions: []grammar.Transition{
			{Kind: grammar.EventStart, Next: grammar.EEOnly, Simple: true,
				Decode: func(r grammar.BitSource) error {
					val, err := wire.DecodeBool(r)
					v.IsFreeOfCharge = val
					return err
				},
				Encode: func(w grammar.BitSink) error {
					return wire.EncodeBool(w, v.IsFreeOfCharge)
				},
			},
		}},
	}
}

// DecodeService decodes a ServiceType from r.
func DecodeService(r grammar.BitSource) (Service, error) {
	var v Service
	err := grammar.Decode(r, serviceTable(&v), serviceS0)
	return v, err
}

// EncodeService encodes v to w.
func EncodeService(w grammar.BitSink, v Service) error {
	return grammar.Encode(w, serviceTable(&v), serviceS0)
}

// ServiceList is ServiceListType: up to MaxServicesPerResponse offered
// services.
type ServiceList struct {
	Services []Service
}

const serviceListBase = 0

func serviceListTable(v *ServiceList) grammar.Table {
	next := serviceListBase + MaxServicesPerResponse + 1
	chain := grammar.ArrayChain(serviceListBase, MaxServicesPerResponse, next, false,
		func(i int) bool { return i < len(v.Services) },
		func(r grammar.BitSource, i int) error {
			s, err := DecodeService(r)
			v.Services = append(v.Services, s)
			return err
		},
		func(w grammar.BitSink, i int) error {
			return EncodeService(w, v.Services[i])
		},
	)
	table := make(grammar.Table, len(chain)+1)
	copy(table, chain)
	table[next] = grammar.State{Transitions: []grammar.Transition{
		{Kind: grammar.EventEnd, Next: grammar.EEOnly},
	}}
	return table
}

// DecodeServiceList decodes a ServiceListType from r.
func DecodeServiceList(r grammar.BitSource) (ServiceList, error) {
	var v ServiceList
	err := grammar.Decode(r, serviceListTable(&v), serviceListBase)
	return v, err
}

// EncodeServiceList encodes v to w. See EncodePMaxSchedule for why the
// bound is checked explicitly.
func EncodeServiceList(w grammar.BitSink, v ServiceList) error {
	if len(v.Services) > MaxServicesPerResponse {
		return v2gerr.New(v2gerr.CapacityExceeded, []string{"Services"}, "ServiceList count exceeds bound")
	}
	return grammar.Encode(w, serviceListTable(&v), serviceListBase)
}

// ChargeService is ChargeServiceType: ServiceType plus the list of
// energy transfer modes the EVSE supports, at most
// MaxSupportedEnergyTransferModes entries (spec §8 scenario S3: six
// distinct values round-trip; a seventh is CapacityExceeded).
type ChargeService struct {
	Service        Service
	SupportedModes []EnergyTransferMode
}

const (
	chargeServiceS0 = iota
	chargeServiceModesBase
)

func chargeServiceTable(v *ChargeService) grammar.Table {
	next := chargeServiceModesBase + MaxSupportedEnergyTransferModes + 1
	chain := grammar.ArrayChain(chargeServiceModesBase, MaxSupportedEnergyTransferModes, next, true,
		func(i int) bool { return i < len(v.SupportedModes) },
		func(r grammar.BitSource, i int) error {
			val, err := wire.DecodeEnum(r, int(energyTransferModeCardinality))
			v.SupportedModes = append(v.SupportedModes, EnergyTransferMode(val))
			return err
		},
		func(w grammar.BitSink, i int) error {
			return wire.EncodeEnum(w, int(v.SupportedModes[i]), int(energyTransferModeCardinality))
		},
	)
	table := make(grammar.Table, next+1)
	table[chargeServiceS0] = grammar.State{Transitions: []grammar.Transition{
		{Kind: grammar.EventStart, Next: chargeServiceModesBase,
			Decode: func(r grammar.BitSource) error {
				val, err := DecodeService(r)
				v.Service = val
				return err
			},
			Encode: func(w grammar.BitSink) error {
				return EncodeService(w, v.Service)
			},
		},
	}}
	copy(table[chargeServiceModesBase:], chain)
	table[next] = grammar.State{Transitions: []grammar.Transition{
		{Kind: grammar.EventEnd, Next: grammar.EEOnly},
	}}
	return table
}

// DecodeChargeService decodes a ChargeServiceType from r.
func DecodeChargeService(r grammar.BitSource) (ChargeService, error) {
	var v ChargeService
	err := grammar.Decode(r, chargeServiceTable(&v), chargeServiceS0)
	return v, err
}

// EncodeChargeService encodes v to w. See EncodePMaxSchedule for why the
// bound is checked explicitly rather than relying on the grammar's
// structural refusal alone.
func EncodeChargeService(w grammar.BitSink, v ChargeService) error {
	if len(v.SupportedModes) > MaxSupportedEnergyTransferModes {
		return v2gerr.New(v2gerr.CapacityExceeded, []string{"SupportedModes"}, "ChargeService mode count exceeds bound")
	}
	return grammar.Encode(w, chargeServiceTable(&v), chargeServiceS0)
}
