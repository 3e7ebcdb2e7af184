package intel

import (
	"regexp"

	"threatboard/internal/common"
)

// Pattern pairs an IOC type with the regex its values must match.
type Pattern struct {
	Name  string
	Type  common.IOCType
	Regex *regexp.Regexp
}

// Ordered so more specific shapes win: a sha256 hex string would also
// satisfy a loose domain pattern.
var iocPatterns = []Pattern{
	{
		Name:  "url",
		Type:  common.IOCURL,
		Regex: regexp.MustCompile(`^https?://\S+$`),
	},
	{
		Name:  "ip_address",
		Type:  common.IOCIPAddress,
		Regex: regexp.MustCompile(`^(?:\d{1,3}\.){3}\d{1,3}$`),
	},
	{
		Name:  "file_hash",
		Type:  common.IOCFileHash,
		Regex: regexp.MustCompile(`^[a-fA-F0-9]{64}$`),
	},
	{
		Name:  "domain",
		Type:  common.IOCDomain,
		Regex: regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]*(?:\.[a-zA-Z0-9-]+)+$`),
	},
}

// Classify infers the IOC type of a raw value. The second return is
// false when the value matches no known shape.
func Classify(value string) (common.IOCType, bool) {
	for _, p := range iocPatterns {
		if p.Regex.MatchString(value) {
			return p.Type, true
		}
	}
	return "", false
}
