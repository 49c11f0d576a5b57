// Package booking turns a submitted appointment form into a WhatsApp deep link.
//
// Every field is validated with package sanitizer before it is embedded in the
// message. An invalid name, phone or date is reported with the matching
// sentinel error and no link is produced:
//
//	b, err := booking.NewBuilder("529992010898")
//	if err != nil {
//		return err
//	}
//	link, err := b.Link(booking.Request{
//		Service: "Consulta general",
//		Name:    "Ana López",
//		Phone:   "+52 999 123 4567",
//	})
//	if errors.Is(err, booking.ErrInvalidPhone) {
//		// show the inline error
//	}
//
// The link has the form https://wa.me/<number>?text=<message> with the message
// percent-encoded. A missing date is written as "Por definir".
package booking
