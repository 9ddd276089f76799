package night

import (
	"context"
	"fmt"

	"github.com/radekwlsk/go-lasttrain/utils"
	"googlemaps.github.io/maps"
)

// ErrZeroResults is returned when a place lookup produced no match.
var ErrZeroResults = fmt.Errorf("zero results")

// Description resolves a configured place to a Maps place ID. The
// resolved ID is handed to the Directions oracle in "place_id:" form,
// which pins the endpoint regardless of how ambiguous the description
// text was.
type Description interface {
	MapsPlaceID(ctx context.Context, c *maps.Client) (string, error)
}

type AddressDescription struct {
	Name       string `json:"name"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

func (ad *AddressDescription) IsEmpty() bool {
	return ad.Name == "" && ad.Street == "" && ad.City == ""
}

func (ad *AddressDescription) toAddressString() string {
	return fmt.Sprintf(
		"%s, %s %s, %s%s",
		ad.Name,
		ad.Street,
		ad.Number,
		utils.IfThenElse(
			ad.PostalCode == "",
			ad.City,
			fmt.Sprintf("%s %s", ad.PostalCode, ad.City)),
		utils.IfThenElse(
			ad.Country == "",
			"",
			fmt.Sprintf(", %s", ad.Country)),
	)
}

func (ad *AddressDescription) MapsPlaceID(ctx context.Context, c *maps.Client) (string, error) {
	r := &maps.GeocodingRequest{
		Address: ad.toAddressString(),
	}
	resp, err := c.Geocode(ctx, r)
	if err != nil {
		return "", err
	}
	if len(resp) == 0 {
		return "", ErrZeroResults
	}
	return resp[0].PlaceID, nil
}

type NameDescription struct {
	Name string `json:"name"`
}

func (nd *NameDescription) MapsPlaceID(ctx context.Context, c *maps.Client) (string, error) {
	r := &maps.TextSearchRequest{
		Query: nd.Name,
	}
	resp, err := c.TextSearch(ctx, r)
	if err != nil {
		return "", err
	}
	if len(resp.Results) == 0 {
		return "", ErrZeroResults
	}
	return resp.Results[0].PlaceID, nil
}

type PlaceIDDescription struct {
	PlaceID string `json:"place_id"`
}

func (pid *PlaceIDDescription) MapsPlaceID(ctx context.Context, c *maps.Client) (string, error) {
	return pid.PlaceID, nil
}
