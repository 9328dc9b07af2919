/*
 * Copyright 2018 The OpenWallet Authors
 * This file is part of the OpenWallet library.
 *
 * The OpenWallet library is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * The OpenWallet library is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
 * GNU Lesser General Public License for more details.
 */

package soroban

import (
	"github.com/Assetsadapter/soroban-adapter/addrpayload"
	"github.com/astaxie/beego/config"
	"github.com/juju/errors"
)

const (
	Symbol   = "XLM"
	FullName = "Stellar Soroban"
	// 1 XLM = 10^7 stroops
	Decimal = 7
)

type WalletConfig struct {
	Symbol string
	//AddressEncode 未指定类型时使用的地址类型
	DefaultPayloadKind addrpayload.PayloadKind
	//调试日志
	Debug bool
}

func NewConfig(symbol string) *WalletConfig {
	c := WalletConfig{}
	c.Symbol = symbol
	c.DefaultPayloadKind = addrpayload.AccountEd25519PublicKey
	return &c
}

//defaultConfig 默认配置内容
const defaultConfig = `
# address kind used by AddressEncode when none is given: account or contract
defaultPayloadKind = account
# print debug logs
logDebug = false
`

//Load 从配置读取
func (wc *WalletConfig) Load(c config.Configer) error {
	kind, err := addrpayload.ParsePayloadKind(c.DefaultString("defaultPayloadKind", "account"))
	if err != nil {
		return errors.Annotate(err, "defaultPayloadKind")
	}
	wc.DefaultPayloadKind = kind
	wc.Debug = c.DefaultBool("logDebug", false)
	return nil
}
