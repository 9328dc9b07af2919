package host

import (
	"github.com/blocktree/openwallet/log"
	"github.com/juju/errors"
	"github.com/stellar/go/xdr"
)

// PayloadSize is the length of the identifier wrapped by every supported address.
const PayloadSize = 32

// BytesN32 is the host's fixed-size buffer.
type BytesN32 [PayloadSize]byte

// Env is the host environment. Every address operation goes through it.
type Env struct {
	Debug bool
}

func NewEnv() *Env {
	return &Env{}
}

// BytesN32 converts b into a fixed-size buffer. The length must match
// exactly; the returned error satisfies IsInvalidInput otherwise.
func (env *Env) BytesN32(b []byte) (BytesN32, error) {
	var out BytesN32
	if len(b) != PayloadSize {
		if env.Debug {
			log.Debugf("BytesN32: rejected buffer of %d bytes", len(b))
		}
		return out, errors.NotValidf("buffer of %d bytes for BytesN<%d>", len(b), PayloadSize)
	}
	copy(out[:], b)
	return out, nil
}

// IsInvalidInput reports whether err was raised for malformed input.
func IsInvalidInput(err error) bool {
	return errors.IsNotValid(err)
}

// ScAddress returns a copy of the discriminated representation behind a.
func (env *Env) ScAddress(a Address) xdr.ScAddress {
	return copyScAddress(a.sc)
}

// NewAddress wraps a representation held by the host. No validation is
// done: the host may carry address shapes newer than its callers.
func (env *Env) NewAddress(sc xdr.ScAddress) Address {
	return Address{sc: copyScAddress(sc)}
}

// AddressFromPayload is the host's address factory. Accounts are always
// built with an ed25519 public key.
func (env *Env) AddressFromPayload(t xdr.ScAddressType, p BytesN32) (Address, error) {
	switch t {
	case xdr.ScAddressTypeScAddressTypeAccount:
		key := xdr.Uint256(p)
		aid := xdr.AccountId(xdr.PublicKey{
			Type:    xdr.PublicKeyTypePublicKeyTypeEd25519,
			Ed25519: &key,
		})
		return Address{sc: xdr.ScAddress{Type: t, AccountId: &aid}}, nil
	case xdr.ScAddressTypeScAddressTypeContract:
		hash := xdr.Hash(p)
		return Address{sc: xdr.ScAddress{Type: t, ContractId: &hash}}, nil
	}
	return Address{}, errors.NotSupportedf("address type %d", int32(t))
}

func copyScAddress(sc xdr.ScAddress) xdr.ScAddress {
	out := xdr.ScAddress{Type: sc.Type}
	if sc.AccountId != nil {
		aid := *sc.AccountId
		if aid.Ed25519 != nil {
			key := *aid.Ed25519
			aid.Ed25519 = &key
		}
		out.AccountId = &aid
	}
	if sc.ContractId != nil {
		hash := *sc.ContractId
		out.ContractId = &hash
	}
	return out
}
