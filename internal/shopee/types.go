package shopee

import (
	"encoding/json"
	"strconv"
	"strings"
)

// The conversion report feed is not strict about field types: numeric fields
// arrive as numbers, quoted numbers, empty strings or null depending on the
// order's age and channel. FlexFloat, FlexInt and FlexString absorb all of
// those shapes without ever failing a decode; unparsable input degrades to the
// zero value so one bad field can't abort a whole page.

// FlexFloat is a float64 that decodes from number, string or null.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler. It never returns an error.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	*f = FlexFloat(ParseNumber(string(data), 0))
	return nil
}

// Float64 returns the underlying value.
func (f FlexFloat) Float64() float64 {
	return float64(f)
}

// FlexInt is an int64 that decodes from number, string or null.
// Used for epoch-second timestamps and numeric ids.
type FlexInt int64

// UnmarshalJSON implements json.Unmarshaler. It never returns an error.
func (i *FlexInt) UnmarshalJSON(data []byte) error {
	*i = FlexInt(ParseNumber(string(data), 0))
	return nil
}

// Int64 returns the underlying value.
func (i FlexInt) Int64() int64 {
	return int64(i)
}

// FlexString is a string that also decodes from numbers and null.
// Identifier fields (item_id, model_id, category ids) flip between string and
// integer representations upstream.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler. It never returns an error.
func (s *FlexString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = FlexString(str)
		return nil
	}
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		raw = ""
	}
	*s = FlexString(strings.Trim(raw, `"`))
	return nil
}

// String returns the underlying value.
func (s FlexString) String() string {
	return string(s)
}

// ParseNumber parses a loosely-typed numeric token, returning def when the
// input is empty, null or unparsable. The default-on-failure contract is
// deliberate: upstream data is known to be inconsistent and a malformed field
// must not abort the batch.
func ParseNumber(raw string, def float64) float64 {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, `"`)
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

// RawItem is one line item of a conversion order, as returned by the AMS
// conversion report endpoint.
type RawItem struct {
	ItemID                             FlexString   `json:"item_id"`
	ItemName                           FlexString   `json:"item_name"`
	ModelID                            FlexString   `json:"model_id"`
	CategoryIDs                        []FlexString `json:"category_ids"`
	PromotionID                        FlexString   `json:"promotion_id"`
	Price                              FlexFloat    `json:"price"`
	Qty                                FlexFloat    `json:"qty"`
	PurchaseValue                      FlexFloat    `json:"purchase_value"`
	RefundAmount                       FlexFloat    `json:"refund_amount"`
	ItemBrandCommission                FlexFloat    `json:"item_brand_commission"`
	ItemBrandCommissionToAffiliate     FlexFloat    `json:"item_brand_commission_to_affiliate"`
	ItemBrandCommissionRateToAffiliate FlexFloat    `json:"item_brand_commission_rate_to_affiliate"`
	ItemBrandCommissionToMcn           FlexFloat    `json:"item_brand_commission_to_mcn"`
	ItemBrandCommissionRateToMcn       FlexFloat    `json:"item_brand_commission_rate_to_mcn"`
	SellerCampaignType                 FlexString   `json:"seller_campaign_type"`
	AttrCampaignID                     FlexString   `json:"attr_campaign_id"`
	CampaignPartner                    FlexString   `json:"campaign_partner"`
}

// RawOrder is one conversion order. Orders own their items exclusively; the
// order-level commission totals are a fallback used only when the item-level
// sums come out zero.
type RawOrder struct {
	OrderSN                 FlexString `json:"order_sn"`
	OrderStatus             FlexString `json:"order_status"`
	VerifiedStatus          FlexString `json:"verified_status"`
	PlaceOrderTime          FlexInt    `json:"place_order_time"`
	OrderCompletedTime      FlexInt    `json:"order_completed_time"`
	ConversionCompletedTime FlexInt    `json:"conversion_completed_time"`
	AffiliateID             FlexString `json:"affiliate_id"`
	AffiliateName           FlexString `json:"affiliate_name"`
	AffiliateUsername       FlexString `json:"affiliate_username"`
	LinkedMCN               FlexString `json:"linked_mcn"`
	Channel                 FlexString `json:"channel"`
	OrderType               FlexString `json:"order_type"`
	BuyerStatus             FlexString `json:"buyer_status"`
	Items                   []RawItem  `json:"items"`

	TotalBrandCommission            FlexFloat `json:"total_brand_commission"`
	TotalBrandCommissionToAffiliate FlexFloat `json:"total_brand_commission_to_affiliate"`
	TotalBrandCommissionToMcn       FlexFloat `json:"total_brand_commission_to_mcn"`
}

// ReportPage is the payload of one conversion-report page.
type ReportPage struct {
	List       []RawOrder `json:"list"`
	HasMore    bool       `json:"has_more"`
	TotalCount int        `json:"total_count"`
}

// envelope is the common Shopee response wrapper. A non-empty Error field
// marks an upstream failure even on HTTP 200.
type envelope struct {
	Error     string          `json:"error"`
	Message   string          `json:"message"`
	RequestID string          `json:"request_id"`
	Response  json.RawMessage `json:"response"`
}

// TokenResult is the outcome of a successful token exchange.
type TokenResult struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
