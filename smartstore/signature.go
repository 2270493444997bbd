package smartstore

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// CalculateRequestSignature calculates the x-api-sign header value.
// The signature is calculated from: CLIENT_ID_TIMESTAMP, keyed with the
// client secret.
func CalculateRequestSignature(clientID, clientSecret, timestamp string) string {
	var msg strings.Builder
	msg.WriteString(clientID)
	msg.WriteString("_")
	msg.WriteString(timestamp)

	h := hmac.New(sha256.New, []byte(clientSecret))
	h.Write([]byte(msg.String()))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}
