package report

// Vocabulary tables translating upstream codes into the labels the Indonesian
// seller dashboard shows. Unknown codes pass through unchanged: upstream adds
// vocabulary without notice and a new code must never fail a report.

// orderStatusLabels maps order_status codes to dashboard wording.
var orderStatusLabels = map[string]string{
	"UNPAID":             "Belum Dibayar",
	"READY_TO_SHIP":      "Sedang Diproses",
	"PROCESSED":          "Sedang Diproses",
	"SHIPPED":            "Sedang Diproses",
	"TO_CONFIRM_RECEIVE": "Sedang Diproses",
	"COMPLETED":          "Selesai",
	"CANCELLED":          "Dibatalkan",
	"IN_CANCEL":          "Dibatalkan",
}

// verifiedStatusLabels maps the conversion verification state.
var verifiedStatusLabels = map[string]string{
	"UNVERIFIED": "Belum Diverifikasi",
	"VERIFIED":   "Terverifikasi",
	"FRAUD":      "Tidak Sah",
}

// orderTypeLabels distinguishes direct checkouts from attributed ones.
var orderTypeLabels = map[string]string{
	"DIRECT":   "Pesanan Langsung",
	"INDIRECT": "Pesanan Tidak Langsung",
}

// campaignTypeLabels maps seller_campaign_type codes.
var campaignTypeLabels = map[string]string{
	"OPEN":      "Campaign Terbuka",
	"TARGETED":  "Campaign Khusus",
	"EXCLUSIVE": "Campaign Eksklusif",
}

// categoryLabels maps Shopee global category ids to display names. The feed
// carries up to three levels per item; ids without an entry here surface as
// the raw id.
var categoryLabels = map[string]string{
	"100001": "Kesehatan",
	"100009": "Pakaian Wanita",
	"100010": "Pakaian Pria",
	"100011": "Sepatu Wanita",
	"100012": "Sepatu Pria",
	"100013": "Tas Wanita",
	"100015": "Jam Tangan",
	"100016": "Aksesoris Fashion",
	"100017": "Kecantikan",
	"100533": "Perawatan Wajah",
	"100630": "Handphone & Aksesoris",
	"100644": "Elektronik",
	"100711": "Komputer & Aksesoris",
	"101698": "Makanan & Minuman",
	"101739": "Ibu & Bayi",
	"101784": "Perlengkapan Rumah",
	"101871": "Hobi & Koleksi",
	"102273": "Olahraga & Outdoor",
}

// translate looks up code in table, passing unknown codes through unchanged.
func translate(table map[string]string, code string) string {
	if label, ok := table[code]; ok {
		return label
	}
	return code
}
