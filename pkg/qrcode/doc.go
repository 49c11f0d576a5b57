// Package qrcode renders QR codes for the clinic's contact links.
//
// Generate and DataURI wrap github.com/skip2/go-qrcode with input
// validation and a default size. WhatsApp encodes the pre-filled chat link
// for a number so printed material and the desktop site can hand visitors
// straight to a conversation. Handler serves a fixed PNG over HTTP.
package qrcode
