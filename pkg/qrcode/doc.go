// Package qrcode renders strings as QR code images. The second-factor
// enrollment flow uses it to turn provisioning URIs into scannable payloads.
package qrcode
