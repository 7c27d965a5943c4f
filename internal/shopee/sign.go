package shopee

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Signer computes request signatures for the Shopee open platform.
//
// Two schemes exist:
//   - basic: partner-level calls (auth URL, token exchange), signed over
//     partner_id + path + timestamp
//   - full: shop-authenticated calls, signed over
//     partner_id + path + timestamp + access_token + shop_id
//
// Both are HMAC-SHA256 keyed by the partner key, hex-encoded.
type Signer struct {
	partnerID  int64
	partnerKey []byte
}

// NewSigner creates a signer from the partner credentials.
func NewSigner(partnerID int64, partnerKey string) (*Signer, error) {
	if partnerID == 0 {
		return nil, fmt.Errorf("shopee: partner id is required")
	}
	if partnerKey == "" {
		return nil, fmt.Errorf("shopee: partner key is required")
	}
	return &Signer{partnerID: partnerID, partnerKey: []byte(partnerKey)}, nil
}

// PartnerID returns the partner id the signer was built with.
func (s *Signer) PartnerID() int64 {
	return s.partnerID
}

// SignBasic signs a partner-level request.
func (s *Signer) SignBasic(path string, timestamp int64) string {
	base := fmt.Sprintf("%d%s%d", s.partnerID, path, timestamp)
	return s.sign(base)
}

// SignFull signs a shop-authenticated request.
func (s *Signer) SignFull(path string, timestamp int64, accessToken string, shopID int64) string {
	base := fmt.Sprintf("%d%s%d%s%d", s.partnerID, path, timestamp, accessToken, shopID)
	return s.sign(base)
}

func (s *Signer) sign(base string) string {
	mac := hmac.New(sha256.New, s.partnerKey)
	mac.Write([]byte(base))
	return hex.EncodeToString(mac.Sum(nil))
}
