package engine

import (
	"fmt"
	"io"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// EncodeVCards writes one vCard 4.0 per record, in order.
func EncodeVCards(w io.Writer, records []Record) error {
	enc := vcard.NewEncoder(w)
	for _, r := range records {
		if err := enc.Encode(toCard(r)); err != nil {
			return fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
	}
	return nil
}

func toCard(r Record) vcard.Card {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, config.VCardVersion)
	card.SetValue(vcard.FieldFormattedName, r.Name)
	card.SetName(&vcard.Name{GivenName: r.Name})
	card.Add(vcard.FieldTelephone, &vcard.Field{
		Value:  r.Phone,
		Params: vcard.Params{vcard.ParamType: {config.TelTypeVoice}},
	})
	if r.Birthday != nil {
		card.SetValue(vcard.FieldBirthday, r.Birthday.Date().Format(config.DateFormatVCard))
	}
	return card
}
