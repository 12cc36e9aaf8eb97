package crypto

import "encoding/base64"

func encodeTag(b []byte) string { return base64.RawURLEncoding.EncodeToString(b) }

func decodeTag(s string) ([]byte, error) { return base64.RawURLEncoding.DecodeString(s) }
