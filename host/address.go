package host

import (
	"github.com/blocktree/openwallet/log"
	"github.com/juju/errors"
	"github.com/stellar/go/strkey"
	"github.com/stellar/go/xdr"
)

// Address identifies a contract or an account. Its representation is owned
// by the host and only reachable through an Env.
type Address struct {
	sc xdr.ScAddress
}

// Equal compares the representations of two addresses. Shapes the host
// cannot serialize still compare field by field.
func (a Address) Equal(o Address) bool {
	if a.sc.Type != o.sc.Type {
		return false
	}
	return equalAccountId(a.sc.AccountId, o.sc.AccountId) &&
		equalHash(a.sc.ContractId, o.sc.ContractId)
}

func equalAccountId(a, o *xdr.AccountId) bool {
	if a == nil || o == nil {
		return a == o
	}
	if a.Type != o.Type {
		return false
	}
	if a.Ed25519 == nil || o.Ed25519 == nil {
		return a.Ed25519 == o.Ed25519
	}
	return *a.Ed25519 == *o.Ed25519
}

func equalHash(a, o *xdr.Hash) bool {
	if a == nil || o == nil {
		return a == o
	}
	return *a == *o
}

// encodable rejects representations with a missing or unknown variant.
func encodable(sc xdr.ScAddress) error {
	switch sc.Type {
	case xdr.ScAddressTypeScAddressTypeAccount:
		if sc.AccountId == nil || sc.AccountId.Type != xdr.PublicKeyTypePublicKeyTypeEd25519 || sc.AccountId.Ed25519 == nil {
			return errors.NotValidf("account address without ed25519 key")
		}
	case xdr.ScAddressTypeScAddressTypeContract:
		if sc.ContractId == nil {
			return errors.NotValidf("contract address without hash")
		}
	default:
		return errors.NotValidf("address type %d", int32(sc.Type))
	}
	return nil
}

func scVal(sc xdr.ScAddress) xdr.ScVal {
	return xdr.ScVal{Type: xdr.ScValTypeScvAddress, Address: &sc}
}

/**
Account strings are the ed25519 key behind version byte 'G' (6 << 3),
contract strings the contract hash behind 'C' (2 << 3). Both are
version byte + 32 bytes + crc16 checksum, base32 without padding.
*/

// AddressFromString parses the strkey form of an address.
func (env *Env) AddressFromString(s string) (Address, error) {
	vb, raw, err := strkey.DecodeAny(s)
	if err != nil {
		if env.Debug {
			log.Debugf("AddressFromString: %q: %v", s, err)
		}
		return Address{}, errors.NewNotValid(err, "address "+s)
	}

	var t xdr.ScAddressType
	switch vb {
	case strkey.VersionByteAccountID:
		t = xdr.ScAddressTypeScAddressTypeAccount
	case strkey.VersionByteContract:
		t = xdr.ScAddressTypeScAddressTypeContract
	default:
		return Address{}, errors.NotSupportedf("strkey version byte %d", byte(vb))
	}

	p, err := env.BytesN32(raw)
	if err != nil {
		return Address{}, errors.Annotatef(err, "address %s", s)
	}
	return env.AddressFromPayload(t, p)
}

// AddressToString formats a as a strkey.
func (env *Env) AddressToString(a Address) (string, error) {
	switch a.sc.Type {
	case xdr.ScAddressTypeScAddressTypeAccount:
		aid := a.sc.AccountId
		if aid == nil || aid.Type != xdr.PublicKeyTypePublicKeyTypeEd25519 || aid.Ed25519 == nil {
			return "", errors.NotSupportedf("account key type")
		}
		return strkey.Encode(strkey.VersionByteAccountID, aid.Ed25519[:])
	case xdr.ScAddressTypeScAddressTypeContract:
		if a.sc.ContractId == nil {
			return "", errors.NotValidf("contract address without hash")
		}
		return strkey.Encode(strkey.VersionByteContract, a.sc.ContractId[:])
	}
	return "", errors.NotSupportedf("address type %d", int32(a.sc.Type))
}

// ToXDR serializes a as an address ScVal.
func (env *Env) ToXDR(a Address) ([]byte, error) {
	if err := encodable(a.sc); err != nil {
		return nil, err
	}
	b, err := scVal(a.sc).MarshalBinary()
	if err != nil {
		return nil, errors.Annotate(err, "marshal address")
	}
	return b, nil
}

// AddressFromXDR decodes an address ScVal.
func (env *Env) AddressFromXDR(b []byte) (Address, error) {
	var val xdr.ScVal
	if err := xdr.SafeUnmarshal(b, &val); err != nil {
		return Address{}, errors.NewNotValid(err, "address xdr")
	}
	if val.Type != xdr.ScValTypeScvAddress || val.Address == nil {
		return Address{}, errors.NotValidf("scval of type %d as address", int32(val.Type))
	}
	return env.NewAddress(*val.Address), nil
}
