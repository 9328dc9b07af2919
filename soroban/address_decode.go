package soroban

import (
	"github.com/Assetsadapter/soroban-adapter/addrpayload"
	"github.com/blocktree/openwallet/openwallet"
	"github.com/juju/errors"
)

// AddressDecoderV2 converts between 32-byte payloads and Soroban address strings.
type AddressDecoderV2 struct {
	*openwallet.AddressDecoderV2Base
	wm *WalletManager //钱包管理者
}

var (
	ErrorInvalidAddress = errors.New("Invalid address!")
)

//NewAddressDecoderV2 地址解析器
func NewAddressDecoderV2(wm *WalletManager) *AddressDecoderV2 {
	decoder := AddressDecoderV2{}
	decoder.AddressDecoderV2Base = &openwallet.AddressDecoderV2Base{}
	decoder.wm = wm
	return &decoder
}

// payloadKind picks the first PayloadKind in opts.
func payloadKind(opts []interface{}) (addrpayload.PayloadKind, bool) {
	for _, opt := range opts {
		if kind, ok := opt.(addrpayload.PayloadKind); ok {
			return kind, true
		}
	}
	return 0, false
}

//AddressEncode encode address bytes
func (dec *AddressDecoderV2) AddressEncode(pub []byte, opts ...interface{}) (string, error) {
	kind, ok := payloadKind(opts)
	if !ok {
		kind = dec.wm.Config.DefaultPayloadKind
	}

	addr, err := addrpayload.FromPayload(dec.wm.Env, kind, pub)
	if err != nil {
		return "", errors.Annotatef(err, "encode %v", kind)
	}
	return dec.wm.Env.AddressToString(addr)
}

//AddressDecode decode address to payload bytes
func (dec *AddressDecoderV2) AddressDecode(address string, opts ...interface{}) ([]byte, error) {
	addr, err := dec.wm.Env.AddressFromString(address)
	if err != nil {
		if dec.wm.Config.Debug {
			dec.wm.Log.Debugf("decode %s failed: %v", address, err)
		}
		return nil, ErrorInvalidAddress
	}

	kind, payload, ok := addrpayload.Extract(dec.wm.Env, addr)
	if !ok {
		return nil, ErrorInvalidAddress
	}
	if want, has := payloadKind(opts); has && want != kind {
		return nil, ErrorInvalidAddress
	}
	return payload.Bytes(), nil
}

// AddressVerify 地址校验
func (dec *AddressDecoderV2) AddressVerify(address string, opts ...interface{}) bool {
	_, err := dec.AddressDecode(address, opts...)
	return err == nil
}
