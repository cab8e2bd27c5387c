package models

import (
	"encoding/json"
	"regexp"
	"strconv"
)

var offerPercent = regexp.MustCompile(`(\d+)%`)

// Offer is a restaurant coupon. On the wire it is the bare label
// ("20% OFF"); Percent is derived from the label when decoding.
type Offer struct {
	Label   string
	Percent int
}

// NewOffer builds an offer from its display label
func NewOffer(label string) Offer {
	return Offer{Label: label, Percent: ParseOfferPercent(label)}
}

// ParseOfferPercent extracts the first integer followed by '%'.
// Labels without one ("FREE DRINK") are worth 0.
func ParseOfferPercent(label string) int {
	m := offerPercent.FindStringSubmatch(label)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

func (o Offer) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Label)
}

// UnmarshalJSON accepts the legacy string form and the {label, percent}
// object form. The percent is always re-derived from the label.
func (o *Offer) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		var obj struct {
			Label string `json:"label"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		label = obj.Label
	}
	*o = NewOffer(label)
	return nil
}

// OffersFromLabels converts legacy labels to offers
func OffersFromLabels(labels ...string) []Offer {
	offers := make([]Offer, 0, len(labels))
	for _, l := range labels {
		offers = append(offers, NewOffer(l))
	}
	return offers
}
