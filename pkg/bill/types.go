package bill

// Resource は請求書の取得対象となる公共料金・サービスの種類を表す。
type Resource string

const (
	// ResourceElectricity は電気料金を表す。
	ResourceElectricity Resource = "electricity"
	// ResourceWater は水道料金を表す。
	ResourceWater Resource = "water"
	// ResourceSchool は学費を表す。
	ResourceSchool Resource = "school"
)

// mockBarcode はすべてのモック請求書に設定されるバーコード。
const mockBarcode = "MOCKED_BARCODE"

// Record は1件の請求書を表す。
// リクエストごとに固定値から生成され、生成後に変更されることはない。
type Record struct {
	// Provider は請求元の名称。
	Provider string `json:"provider"`
	// Amount は請求金額。
	Amount int `json:"amount"`
	// Barcode は支払い用バーコード。
	Barcode string `json:"barcode"`
}

// Resources は対応しているリソースを固定順で返す。
func Resources() []Resource {
	return []Resource{ResourceElectricity, ResourceWater, ResourceSchool}
}

// Mock は指定されたリソースのモック請求書を生成する。
// 未知のリソースの場合は false を返す。
func Mock(r Resource) (Record, bool) {
	switch r {
	case ResourceElectricity:
		return Record{Provider: "Energia", Amount: 627, Barcode: mockBarcode}, true
	case ResourceWater:
		return Record{Provider: "Água", Amount: 120, Barcode: mockBarcode}, true
	case ResourceSchool:
		return Record{Provider: "Escola", Amount: 900, Barcode: mockBarcode}, true
	default:
		return Record{}, false
	}
}
