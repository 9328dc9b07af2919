// Package addrpayload maps a Soroban address to the kind and 32-byte
// payload it wraps, and builds addresses back from that pair.
package addrpayload

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/Assetsadapter/soroban-adapter/host"
	"github.com/juju/errors"
	"github.com/stellar/go/xdr"
)

// PayloadKind tells how the payload of an address is interpreted.
type PayloadKind int

const (
	AccountEd25519PublicKey PayloadKind = iota
	ContractHash
)

func (k PayloadKind) String() string {
	switch k {
	case AccountEd25519PublicKey:
		return "AccountEd25519PublicKey"
	case ContractHash:
		return "ContractHash"
	}
	return "PayloadKind(" + strconv.Itoa(int(k)) + ")"
}

// ParsePayloadKind accepts "account" or "contract" in any case.
func ParsePayloadKind(s string) (PayloadKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "account":
		return AccountEd25519PublicKey, nil
	case "contract":
		return ContractHash, nil
	}
	return 0, errors.NotValidf("payload kind %q", s)
}

// Payload is the identifier embedded in an address.
type Payload [host.PayloadSize]byte

func (p Payload) Bytes() []byte {
	return append([]byte(nil), p[:]...)
}

func (p Payload) String() string {
	return hex.EncodeToString(p[:])
}

// Env is the subset of the host environment used for conversion.
type Env interface {
	ScAddress(a host.Address) xdr.ScAddress
	AddressFromPayload(t xdr.ScAddressType, p host.BytesN32) (host.Address, error)
	BytesN32(b []byte) (host.BytesN32, error)
}

// Extract returns the kind and payload of addr. ok is false for address
// shapes other than a contract or an ed25519 account; those are valid host
// addresses that have no payload form.
func Extract(env Env, addr host.Address) (kind PayloadKind, payload Payload, ok bool) {
	sc := env.ScAddress(addr)
	switch sc.Type {
	case xdr.ScAddressTypeScAddressTypeAccount:
		aid := sc.AccountId
		if aid == nil || aid.Type != xdr.PublicKeyTypePublicKeyTypeEd25519 || aid.Ed25519 == nil {
			return 0, Payload{}, false
		}
		return AccountEd25519PublicKey, Payload(*aid.Ed25519), true
	case xdr.ScAddressTypeScAddressTypeContract:
		if sc.ContractId == nil {
			return 0, Payload{}, false
		}
		return ContractHash, Payload(*sc.ContractId), true
	}
	return 0, Payload{}, false
}

// FromPayload builds the address of the given kind wrapping payload.
// payload must be exactly 32 bytes; the host's conversion error is
// returned as is otherwise.
func FromPayload(env Env, kind PayloadKind, payload []byte) (host.Address, error) {
	var t xdr.ScAddressType
	switch kind {
	case AccountEd25519PublicKey:
		t = xdr.ScAddressTypeScAddressTypeAccount
	case ContractHash:
		t = xdr.ScAddressTypeScAddressTypeContract
	default:
		return host.Address{}, errors.NotValidf("payload kind %d", int(kind))
	}

	p, err := env.BytesN32(payload)
	if err != nil {
		return host.Address{}, err
	}
	return env.AddressFromPayload(t, p)
}
