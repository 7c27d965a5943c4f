// Package report flattens raw conversion orders into the fixed tabular schema
// the affiliate dashboard exports.
package report

import (
	"fmt"
	"math"

	"github.com/myams/ams-backend/internal/domain/timezone"
	"github.com/myams/ams-backend/internal/shopee"
)

// expenseUpliftRate is the multiplier from affiliate commission to booked
// expense. The platform adds an 11% uplift on top of the commission paid out;
// the figure is carried as observed from the dashboard's own accounting.
const expenseUpliftRate = 1.11

// Row is one line of the final report: one (order, item) pair, display-ready.
// A Row is immutable once emitted.
type Row struct {
	OrderSN           string
	OrderStatus       string
	VerifiedStatus    string
	OrderTime         string
	CompletedTime     string
	ConversionTime    string
	AffiliateID       string
	AffiliateName     string
	AffiliateUsername string
	LinkedMCN         string
	Channel           string
	OrderType         string
	BuyerStatus       string

	ItemID     string
	ItemName   string
	ModelID    string
	CategoryL1 string
	CategoryL2 string
	CategoryL3 string
	PromoCode  string

	Price         float64
	Qty           int
	PurchaseValue float64
	RefundAmount  float64

	ItemCommission             float64
	ItemAffiliateCommission    float64
	ItemAffiliateCommissionPct string
	ItemMCNCommission          float64
	ItemMCNCommissionPct       string

	// Order-level totals appear on the first row of each order only, so a
	// column sum over the report never double-counts an order.
	OrderCommission          float64
	OrderAffiliateCommission float64
	OrderMCNCommission       float64

	CampaignType    string
	CampaignID      string
	CampaignPartner string
	Platform        string
	Expense         float64
}

// Flatten explodes orders into one Row per line item, preserving (order, item)
// emission order. Orders without items emit nothing; the absence of rows is a
// valid empty report, not an error.
func Flatten(orders []shopee.RawOrder) []Row {
	var rows []Row
	for i := range orders {
		rows = append(rows, flattenOrder(&orders[i])...)
	}
	return rows
}

func flattenOrder(order *shopee.RawOrder) []Row {
	total, toAffiliate, toMCN := orderCommissions(order)

	rows := make([]Row, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]

		row := Row{
			OrderSN:           order.OrderSN.String(),
			OrderStatus:       translate(orderStatusLabels, order.OrderStatus.String()),
			VerifiedStatus:    translate(verifiedStatusLabels, order.VerifiedStatus.String()),
			OrderTime:         timezone.FormatEpoch(order.PlaceOrderTime.Int64()),
			CompletedTime:     timezone.FormatEpoch(order.OrderCompletedTime.Int64()),
			ConversionTime:    timezone.FormatEpoch(order.ConversionCompletedTime.Int64()),
			AffiliateID:       order.AffiliateID.String(),
			AffiliateName:     order.AffiliateName.String(),
			AffiliateUsername: order.AffiliateUsername.String(),
			LinkedMCN:         order.LinkedMCN.String(),
			Channel:           order.Channel.String(),
			OrderType:         translate(orderTypeLabels, order.OrderType.String()),
			BuyerStatus:       order.BuyerStatus.String(),

			ItemID:     item.ItemID.String(),
			ItemName:   item.ItemName.String(),
			ModelID:    item.ModelID.String(),
			CategoryL1: categoryLevel(item.CategoryIDs, 0),
			CategoryL2: categoryLevel(item.CategoryIDs, 1),
			CategoryL3: categoryLevel(item.CategoryIDs, 2),
			PromoCode:  item.PromotionID.String(),

			Price:         item.Price.Float64(),
			Qty:           int(item.Qty.Float64()),
			PurchaseValue: item.PurchaseValue.Float64(),
			RefundAmount:  item.RefundAmount.Float64(),

			ItemCommission:             item.ItemBrandCommission.Float64(),
			ItemAffiliateCommission:    item.ItemBrandCommissionToAffiliate.Float64(),
			ItemAffiliateCommissionPct: percentString(item.ItemBrandCommissionRateToAffiliate.Float64()),
			ItemMCNCommission:          item.ItemBrandCommissionToMcn.Float64(),
			ItemMCNCommissionPct:       percentString(item.ItemBrandCommissionRateToMcn.Float64()),

			CampaignType:    translate(campaignTypeLabels, item.SellerCampaignType.String()),
			CampaignID:      item.AttrCampaignID.String(),
			CampaignPartner: item.CampaignPartner.String(),
			Platform:        PlatformName,
			Expense:         expense(item.ItemBrandCommissionToAffiliate.Float64()),
		}

		// Order-level figures go on the first emitted row only.
		if len(rows) == 0 {
			row.OrderCommission = total
			row.OrderAffiliateCommission = toAffiliate
			row.OrderMCNCommission = toMCN
		}

		rows = append(rows, row)
	}
	return rows
}

// orderCommissions computes the three order-level commission figures: the sum
// of the item-level fields, falling back per figure to the order-level total
// when the item sum is exactly zero. Older orders populate only one of the
// two levels, and which one changed over time upstream.
func orderCommissions(order *shopee.RawOrder) (total, toAffiliate, toMCN float64) {
	for i := range order.Items {
		item := &order.Items[i]
		total += item.ItemBrandCommission.Float64()
		toAffiliate += item.ItemBrandCommissionToAffiliate.Float64()
		toMCN += item.ItemBrandCommissionToMcn.Float64()
	}
	if total == 0 {
		total = order.TotalBrandCommission.Float64()
	}
	if toAffiliate == 0 {
		toAffiliate = order.TotalBrandCommissionToAffiliate.Float64()
	}
	if toMCN == 0 {
		toMCN = order.TotalBrandCommissionToMcn.Float64()
	}
	return total, toAffiliate, toMCN
}

// expense books the affiliate commission with the platform uplift applied.
// Only positive commissions carry an expense.
func expense(commissionToAffiliate float64) float64 {
	if commissionToAffiliate <= 0 {
		return 0
	}
	return math.Round(commissionToAffiliate * expenseUpliftRate)
}

// percentString renders a rate as an integer percent, e.g. "15%".
func percentString(rate float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(rate)))
}

// categoryLevel resolves the category id at the given depth, passing unknown
// ids through as the raw id and absent levels as empty.
func categoryLevel(ids []shopee.FlexString, level int) string {
	if level >= len(ids) {
		return ""
	}
	id := ids[level].String()
	if id == "" {
		return ""
	}
	return translate(categoryLabels, id)
}
