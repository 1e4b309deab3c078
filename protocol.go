package resource

import "strings"

// ProtocolSeparator separates the protocol from the payload of an identifier.
const ProtocolSeparator = "://"

// Protocol returns the protocol of location: the text before the first
// ProtocolSeparator. It reports false when location carries no protocol.
func Protocol(location string) (string, bool) {
	i := strings.Index(location, ProtocolSeparator)
	if i < 0 {
		return "", false
	}
	return location[:i], true
}

// StripProtocol returns location without its protocol prefix.
func StripProtocol(location string) string {
	i := strings.Index(location, ProtocolSeparator)
	if i < 0 {
		return location
	}
	return location[i+len(ProtocolSeparator):]
}
