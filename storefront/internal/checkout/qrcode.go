package checkout

import (
	"github.com/skip2/go-qrcode"
)

type OrderQRGenerator struct {
	BaseURL string
}

func (g OrderQRGenerator) Generate(orderID string) ([]byte, error) {
	return qrcode.Encode(g.BaseURL+"/track.html?order_id="+orderID, qrcode.Medium, 256)
}

var _ QRGenerator = OrderQRGenerator{}
