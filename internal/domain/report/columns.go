package report

// PlatformName fills the Platform column; the report only ever covers one
// marketplace.
const PlatformName = "Shopee"

// columns is the fixed output schema. Downstream spreadsheets are consumed by
// tooling that matches these headers by position, so the order must never
// change.
var columns = []string{
	"Kode Pesanan",
	"Status Pesanan",
	"Status Terverifikasi",
	"Waktu Pesanan",
	"Waktu Pesanan Selesai",
	"Waktu Konversi Selesai",
	"ID Affiliate",
	"Nama Affiliate",
	"Username Affiliate",
	"MCN Terhubung",
	"Channel",
	"Tipe Pesanan",
	"Status Pembeli",
	"Kode Produk",
	"Nama Produk",
	"ID Model",
	"L1 Kategori Global",
	"L2 Kategori Global",
	"L3 Kategori Global",
	"Kode Promo",
	"Harga(Rp)",
	"Jumlah",
	"Nilai Pembelian(Rp)",
	"Jumlah Pengembalian(Rp)",
	"Estimasi Komisi per Produk(Rp)",
	"Estimasi Komisi Affiliate per Produk(Rp)",
	"Persentase Komisi Affiliate per Produk",
	"Estimasi Komisi MCN per Produk(Rp)",
	"Persentase Komisi MCN per Produk",
	"Estimasi Komisi per Pesanan(Rp)",
	"Estimasi Komisi Affiliate per Pesanan(Rp)",
	"Estimasi Komisi MCN per Pesanan(Rp)",
	"Tipe Campaign",
	"ID Campaign",
	"Partner Campaign",
	"Platform",
	"Pengeluaran(Rp)",
}

// Columns returns the fixed column headers in presentation order.
func Columns() []string {
	out := make([]string, len(columns))
	copy(out, columns)
	return out
}

// Values returns the row's cells in the same order as Columns.
func (r *Row) Values() []any {
	return []any{
		r.OrderSN,
		r.OrderStatus,
		r.VerifiedStatus,
		r.OrderTime,
		r.CompletedTime,
		r.ConversionTime,
		r.AffiliateID,
		r.AffiliateName,
		r.AffiliateUsername,
		r.LinkedMCN,
		r.Channel,
		r.OrderType,
		r.BuyerStatus,
		r.ItemID,
		r.ItemName,
		r.ModelID,
		r.CategoryL1,
		r.CategoryL2,
		r.CategoryL3,
		r.PromoCode,
		r.Price,
		r.Qty,
		r.PurchaseValue,
		r.RefundAmount,
		r.ItemCommission,
		r.ItemAffiliateCommission,
		r.ItemAffiliateCommissionPct,
		r.ItemMCNCommission,
		r.ItemMCNCommissionPct,
		r.OrderCommission,
		r.OrderAffiliateCommission,
		r.OrderMCNCommission,
		r.CampaignType,
		r.CampaignID,
		r.CampaignPartner,
		r.Platform,
		r.Expense,
	}
}
