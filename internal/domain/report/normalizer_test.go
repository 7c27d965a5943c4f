package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myams/ams-backend/internal/shopee"
)

func item(commissionToAffiliate float64) shopee.RawItem {
	return shopee.RawItem{
		ItemID:                         "111",
		ItemName:                       "Produk Uji",
		Qty:                            1,
		Price:                          10000,
		ItemBrandCommissionToAffiliate: shopee.FlexFloat(commissionToAffiliate),
	}
}

func TestFlattenEmitsOneRowPerItem(t *testing.T) {
	orders := []shopee.RawOrder{
		{OrderSN: "A1", Items: []shopee.RawItem{item(0), item(0)}},
		{OrderSN: "A2", Items: []shopee.RawItem{item(0)}},
		{OrderSN: "A3"}, // no items, no rows
	}

	rows := Flatten(orders)
	require.Len(t, rows, 3)
	assert.Equal(t, "A1", rows[0].OrderSN)
	assert.Equal(t, "A1", rows[1].OrderSN)
	assert.Equal(t, "A2", rows[2].OrderSN)
}

func TestFlattenEmptyInput(t *testing.T) {
	assert.Empty(t, Flatten(nil))
	assert.Empty(t, Flatten([]shopee.RawOrder{}))
}

func TestCommissionAttribution(t *testing.T) {
	// Three items, only item 2 has a positive affiliate commission.
	order := shopee.RawOrder{
		OrderSN: "B1",
		Items:   []shopee.RawItem{item(0), item(20000), item(0)},
	}

	rows := Flatten([]shopee.RawOrder{order})
	require.Len(t, rows, 3)

	// Expense follows the item that earned the commission.
	assert.Equal(t, 0.0, rows[0].Expense)
	assert.Equal(t, 22200.0, rows[1].Expense, "20000 * 1.11")
	assert.Equal(t, 0.0, rows[2].Expense)

	// Order-level totals sit on the first row regardless of which item earned.
	assert.Equal(t, 20000.0, rows[0].OrderAffiliateCommission)
	assert.Equal(t, 0.0, rows[1].OrderAffiliateCommission)
	assert.Equal(t, 0.0, rows[2].OrderAffiliateCommission)
}

func TestOrderLevelFallback(t *testing.T) {
	t.Run("item sums win when nonzero", func(t *testing.T) {
		order := shopee.RawOrder{
			OrderSN: "C1",
			Items: []shopee.RawItem{
				{ItemBrandCommission: 1000, ItemBrandCommissionToAffiliate: 800, ItemBrandCommissionToMcn: 200},
				{ItemBrandCommission: 500, ItemBrandCommissionToAffiliate: 400, ItemBrandCommissionToMcn: 100},
			},
			TotalBrandCommission:            9999,
			TotalBrandCommissionToAffiliate: 9999,
			TotalBrandCommissionToMcn:       9999,
		}

		rows := Flatten([]shopee.RawOrder{order})
		require.Len(t, rows, 2)
		assert.Equal(t, 1500.0, rows[0].OrderCommission)
		assert.Equal(t, 1200.0, rows[0].OrderAffiliateCommission)
		assert.Equal(t, 300.0, rows[0].OrderMCNCommission)
	})

	t.Run("each figure falls back independently", func(t *testing.T) {
		order := shopee.RawOrder{
			OrderSN: "C2",
			Items: []shopee.RawItem{
				{ItemBrandCommission: 1500}, // affiliate and mcn sums are zero
			},
			TotalBrandCommission:            4000,
			TotalBrandCommissionToAffiliate: 1200,
			TotalBrandCommissionToMcn:       300,
		}

		rows := Flatten([]shopee.RawOrder{order})
		require.Len(t, rows, 1)
		assert.Equal(t, 1500.0, rows[0].OrderCommission, "nonzero item sum keeps priority")
		assert.Equal(t, 1200.0, rows[0].OrderAffiliateCommission, "zero sum falls back to order total")
		assert.Equal(t, 300.0, rows[0].OrderMCNCommission)
	})
}

func TestZeroCommissionScenario(t *testing.T) {
	order := shopee.RawOrder{
		OrderSN: "A1",
		Items: []shopee.RawItem{
			{Price: 1000, Qty: 2, ItemBrandCommissionToAffiliate: 0},
		},
	}

	rows := Flatten([]shopee.RawOrder{order})
	require.Len(t, rows, 1)
	assert.Equal(t, 0.0, rows[0].Expense)
	assert.Equal(t, 1000.0, rows[0].Price)
	assert.Equal(t, 2, rows[0].Qty)
}

func TestVocabularyTranslation(t *testing.T) {
	order := shopee.RawOrder{
		OrderSN:        "D1",
		OrderStatus:    "COMPLETED",
		VerifiedStatus: "UNVERIFIED",
		OrderType:      "DIRECT",
		Items: []shopee.RawItem{
			{SellerCampaignType: "OPEN", CategoryIDs: []shopee.FlexString{"100644", "999999"}},
		},
	}

	rows := Flatten([]shopee.RawOrder{order})
	require.Len(t, rows, 1)

	assert.Equal(t, "Selesai", rows[0].OrderStatus)
	assert.Equal(t, "Belum Diverifikasi", rows[0].VerifiedStatus)
	assert.Equal(t, "Pesanan Langsung", rows[0].OrderType)
	assert.Equal(t, "Campaign Terbuka", rows[0].CampaignType)

	assert.Equal(t, "Elektronik", rows[0].CategoryL1)
	assert.Equal(t, "999999", rows[0].CategoryL2, "unknown category id passes through")
	assert.Equal(t, "", rows[0].CategoryL3, "absent level renders empty")
}

func TestUnknownCodesPassThrough(t *testing.T) {
	order := shopee.RawOrder{
		OrderSN:        "E1",
		OrderStatus:    "SOME_NEW_STATUS",
		VerifiedStatus: "PENDING_REVIEW",
		OrderType:      "HYBRID",
		Items:          []shopee.RawItem{item(0)},
	}

	rows := Flatten([]shopee.RawOrder{order})
	require.Len(t, rows, 1)
	assert.Equal(t, "SOME_NEW_STATUS", rows[0].OrderStatus)
	assert.Equal(t, "PENDING_REVIEW", rows[0].VerifiedStatus)
	assert.Equal(t, "HYBRID", rows[0].OrderType)
}

func TestPercentRendering(t *testing.T) {
	assert.Equal(t, "15%", percentString(15))
	assert.Equal(t, "13%", percentString(12.7))
	assert.Equal(t, "0%", percentString(0))
}

func TestExpenseRounding(t *testing.T) {
	assert.Equal(t, 0.0, expense(0))
	assert.Equal(t, 0.0, expense(-500))
	assert.Equal(t, 111.0, expense(100))
	assert.Equal(t, 1.0, expense(1)) // 1.11 rounds to 1
}

func TestTimestampFieldsFormatted(t *testing.T) {
	order := shopee.RawOrder{
		OrderSN:                 "F1",
		PlaceOrderTime:          1735664400, // 2025-01-01 00:00:00 WIB
		OrderCompletedTime:      0,
		ConversionCompletedTime: 0,
		Items:                   []shopee.RawItem{item(0)},
	}

	rows := Flatten([]shopee.RawOrder{order})
	require.Len(t, rows, 1)
	assert.Equal(t, "2025-01-01 00:00:00", rows[0].OrderTime)
	assert.Equal(t, "", rows[0].CompletedTime, "unset epoch renders empty")
	assert.Equal(t, "", rows[0].ConversionTime)
}

func TestColumnsAndValuesAlign(t *testing.T) {
	cols := Columns()
	assert.Len(t, cols, 37)

	row := Flatten([]shopee.RawOrder{{OrderSN: "G1", Items: []shopee.RawItem{item(100)}}})[0]
	assert.Len(t, row.Values(), len(cols))

	// Spot-check positions that downstream consumers rely on
	assert.Equal(t, "Kode Pesanan", cols[0])
	assert.Equal(t, "G1", row.Values()[0])
	assert.Equal(t, "Platform", cols[35])
	assert.Equal(t, PlatformName, row.Values()[35])
	assert.Equal(t, "Pengeluaran(Rp)", cols[36])
	assert.Equal(t, 111.0, row.Values()[36])
}
