package host

import (
	"encoding/hex"
	"testing"

	"github.com/juju/errors"
	"github.com/stellar/go/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	contractAddr = "CDLZFC3SYJYDZT7K67VZ75HPJVIEUVNIXF47ZG2FB2RMQQVU2HHGCYSC"
	contractHash = "d7928b72c2703ccfeaf7eb9ff4ef4d504a55a8b979fc9b450ea2c842b4d1ce61"
	accountAddr  = "GCEZWKCA5VLDNRLN3RPRJMRZOX3Z6G5CHCGSNFHEYVXM3XOJMDS674JZ"
	accountKey   = "899b2840ed5636c56ddc5f14b23975f79f1ba2388d2694e4c56ecdddc960e5ef"
	// hash-x signer, a valid strkey that is not an address
	hashXAddr = "XAAACAQDAQCQMBYIBEFAWDANBYHRAEISCMKBKFQXDAMRUGY4DUPB7QO7"
)

func mustHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestBytesN32(t *testing.T) {
	env := NewEnv()
	for _, n := range []int{0, 1, 31, 33, 64} {
		_, err := env.BytesN32(make([]byte, n))
		assert.Error(t, err, "length %d", n)
		assert.True(t, IsInvalidInput(err), "length %d", n)
	}

	in := mustHex(t, contractHash)
	out, err := env.BytesN32(in)
	require.NoError(t, err)
	assert.Equal(t, in, out[:])

	// the buffer is copied
	in[0] ^= 0xff
	assert.NotEqual(t, in[0], out[0])
}

var addressStringTests = []struct {
	Name    string
	Addr    string
	Type    xdr.ScAddressType
	Payload string
}{{
	Name:    "contract",
	Addr:    contractAddr,
	Type:    xdr.ScAddressTypeScAddressTypeContract,
	Payload: contractHash,
}, {
	Name:    "account",
	Addr:    accountAddr,
	Type:    xdr.ScAddressTypeScAddressTypeAccount,
	Payload: accountKey,
}}

func TestAddressString(t *testing.T) {
	env := NewEnv()
	for _, test := range addressStringTests {
		t.Run(test.Name, func(t *testing.T) {
			a, err := env.AddressFromString(test.Addr)
			require.NoError(t, err)

			sc := env.ScAddress(a)
			assert.Equal(t, test.Type, sc.Type)
			switch sc.Type {
			case xdr.ScAddressTypeScAddressTypeContract:
				require.NotNil(t, sc.ContractId)
				assert.Equal(t, test.Payload, hex.EncodeToString(sc.ContractId[:]))
			case xdr.ScAddressTypeScAddressTypeAccount:
				require.NotNil(t, sc.AccountId)
				require.NotNil(t, sc.AccountId.Ed25519)
				assert.Equal(t, xdr.PublicKeyTypePublicKeyTypeEd25519, sc.AccountId.Type)
				assert.Equal(t, test.Payload, hex.EncodeToString(sc.AccountId.Ed25519[:]))
			}

			s, err := env.AddressToString(a)
			require.NoError(t, err)
			assert.Equal(t, test.Addr, s)

			p, err := env.BytesN32(mustHex(t, test.Payload))
			require.NoError(t, err)
			built, err := env.AddressFromPayload(test.Type, p)
			require.NoError(t, err)
			assert.True(t, built.Equal(a))
		})
	}
}

func TestAddressFromStringErrors(t *testing.T) {
	env := NewEnv()

	_, err := env.AddressFromString("not an address")
	assert.True(t, errors.IsNotValid(err))

	// flip a character to break the checksum
	_, err = env.AddressFromString(contractAddr[:len(contractAddr)-1] + "D")
	assert.True(t, errors.IsNotValid(err))

	_, err = env.AddressFromString(hashXAddr)
	assert.True(t, errors.IsNotSupported(err))
}

func TestAddressFromPayloadUnknownType(t *testing.T) {
	env := NewEnv()
	_, err := env.AddressFromPayload(xdr.ScAddressType(7), BytesN32{})
	assert.True(t, errors.IsNotSupported(err))
}

func TestToXDR(t *testing.T) {
	env := NewEnv()

	contract, err := env.AddressFromString(contractAddr)
	require.NoError(t, err)
	b, err := env.ToXDR(contract)
	require.NoError(t, err)
	// ScVal SCV_ADDRESS, ScAddress contract, hash
	assert.Equal(t, "00000012"+"00000001"+contractHash, hex.EncodeToString(b))

	back, err := env.AddressFromXDR(b)
	require.NoError(t, err)
	assert.True(t, back.Equal(contract))

	account, err := env.AddressFromString(accountAddr)
	require.NoError(t, err)
	b, err = env.ToXDR(account)
	require.NoError(t, err)
	// ScVal SCV_ADDRESS, ScAddress account, PublicKey ed25519, key
	assert.Equal(t, "00000012"+"00000000"+"00000000"+accountKey, hex.EncodeToString(b))

	back, err = env.AddressFromXDR(b)
	require.NoError(t, err)
	assert.True(t, back.Equal(account))
	assert.False(t, back.Equal(contract))
}

func TestAddressFromXDRErrors(t *testing.T) {
	env := NewEnv()

	_, err := env.AddressFromXDR([]byte{0, 0})
	assert.True(t, IsInvalidInput(err))

	// SCV_VOID
	_, err = env.AddressFromXDR([]byte{0, 0, 0, 1})
	assert.True(t, IsInvalidInput(err))
}

func TestScAddressIsACopy(t *testing.T) {
	env := NewEnv()
	a, err := env.AddressFromString(contractAddr)
	require.NoError(t, err)

	sc := env.ScAddress(a)
	sc.ContractId[0] ^= 0xff

	s, err := env.AddressToString(a)
	require.NoError(t, err)
	assert.Equal(t, contractAddr, s)
}

func TestIncompleteAddress(t *testing.T) {
	env := NewEnv()
	key := xdr.Uint256{1, 2, 3}
	hash := xdr.Hash{4, 5, 6}

	tests := []struct {
		Name string
		Addr Address
	}{{
		Name: "zero",
		Addr: Address{},
	}, {
		Name: "contract without hash",
		Addr: env.NewAddress(xdr.ScAddress{Type: xdr.ScAddressTypeScAddressTypeContract}),
	}, {
		Name: "account without key",
		Addr: env.NewAddress(xdr.ScAddress{
			Type:      xdr.ScAddressTypeScAddressTypeAccount,
			AccountId: &xdr.AccountId{Type: xdr.PublicKeyTypePublicKeyTypeEd25519},
		}),
	}, {
		Name: "account with unknown key type",
		Addr: env.NewAddress(xdr.ScAddress{
			Type:      xdr.ScAddressTypeScAddressTypeAccount,
			AccountId: &xdr.AccountId{Type: xdr.PublicKeyType(1), Ed25519: &key},
		}),
	}, {
		Name: "unknown address type",
		Addr: env.NewAddress(xdr.ScAddress{Type: xdr.ScAddressType(2), ContractId: &hash}),
	}}

	contract, err := env.AddressFromString(contractAddr)
	require.NoError(t, err)

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			_, err := env.ToXDR(test.Addr)
			assert.True(t, IsInvalidInput(err))

			assert.True(t, test.Addr.Equal(test.Addr))
			assert.True(t, test.Addr.Equal(env.NewAddress(env.ScAddress(test.Addr))))
			assert.False(t, test.Addr.Equal(contract))
			assert.False(t, contract.Equal(test.Addr))
		})
	}
}

func TestAddressEqual(t *testing.T) {
	env := NewEnv()
	a, err := env.AddressFromPayload(xdr.ScAddressTypeScAddressTypeContract, BytesN32{1})
	require.NoError(t, err)
	b, err := env.AddressFromPayload(xdr.ScAddressTypeScAddressTypeContract, BytesN32{1})
	require.NoError(t, err)
	c, err := env.AddressFromPayload(xdr.ScAddressTypeScAddressTypeContract, BytesN32{2})
	require.NoError(t, err)
	d, err := env.AddressFromPayload(xdr.ScAddressTypeScAddressTypeAccount, BytesN32{1})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
}
