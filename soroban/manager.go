package soroban

import (
	"github.com/Assetsadapter/soroban-adapter/host"
	"github.com/astaxie/beego/config"
	"github.com/blocktree/go-owcrypt"
	"github.com/blocktree/openwallet/log"
	"github.com/blocktree/openwallet/openwallet"
)

type WalletManager struct {
	openwallet.AssetsAdapterBase

	Config  *WalletConfig     // 节点配置
	Env     *host.Env         // 地址宿主环境
	Decoder *AddressDecoderV2 //地址编码器
	Log     *log.OWLogger     //日志工具
}

func NewWalletManager() *WalletManager {
	wm := WalletManager{}
	wm.Config = NewConfig(Symbol)
	wm.Env = host.NewEnv()
	wm.Decoder = NewAddressDecoderV2(&wm)
	wm.Log = log.NewOWLogger(wm.Symbol())
	return &wm
}

//Symbol 币种标识
func (wm *WalletManager) Symbol() string {
	return wm.Config.Symbol
}

//FullName 币种全名
func (wm *WalletManager) FullName() string {
	return FullName
}

//CurveType 曲线类型
func (wm *WalletManager) CurveType() uint32 {
	return owcrypt.ECC_CURVE_ED25519
}

//Decimal 小数位精度
func (wm *WalletManager) Decimal() int32 {
	return Decimal
}

//GetAddressDecoderV2 地址解析器V2
func (wm *WalletManager) GetAddressDecoderV2() openwallet.AddressDecoderV2 {
	return wm.Decoder
}

//GetAssetsLogger 获取资产账户日志工具
func (wm *WalletManager) GetAssetsLogger() *log.OWLogger {
	return wm.Log
}

//LoadAssetsConfig 加载外部配置
func (wm *WalletManager) LoadAssetsConfig(c config.Configer) error {
	if err := wm.Config.Load(c); err != nil {
		wm.Log.Errorf("load %s config failed, err=%v", wm.Symbol(), err)
		return err
	}
	wm.Env.Debug = wm.Config.Debug
	return nil
}

//InitAssetsConfig 初始化默认配置
func (wm *WalletManager) InitAssetsConfig() (config.Configer, error) {
	return config.NewConfigData("ini", []byte(defaultConfig))
}
